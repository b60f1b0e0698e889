package i18n

var messages = map[string]map[string]string{
	LocaleZhCN: {
		"error.bad_request":               "请求参数错误",
		"error.internal":                  "服务器内部错误",
		"error.not_found":                 "资源不存在",
		"error.rate_limited":              "请求过于频繁，请 %d 秒后再试",
		"error.customer_required":         "缺少顾客标识",
		"error.product_not_found":         "商品不存在",
		"error.product_fetch_failed":      "获取商品失败",
		"error.cart_not_found":            "购物车不存在",
		"error.cart_fetch_failed":         "获取购物车失败",
		"error.order_not_found":           "订单不存在",
		"error.order_fetch_failed":        "获取订单失败",
		"error.order_update_failed":       "更新订单失败",
		"error.order_status_invalid":      "订单状态不允许该操作",
		"error.snapshot_not_found":        "订单快照不存在",
		"error.snapshot_in_progress":      "订单快照正在生成",
		"error.snapshot_write_failed":     "写入订单快照失败",
		"error.service_fee_not_found":     "服务费不存在",
		"error.service_fee_invalid":       "服务费参数错误",
		"error.service_fee_rate_invalid":  "服务费费率必须为非负数",
		"error.service_fee_window":        "服务费生效开始时间不能晚于结束时间",
		"error.service_fee_level_invalid": "服务费计费层级无效",
		"error.service_fee_config":        "服务费适用范围配置与计费层级不符",
		"error.service_fee_save_failed":   "保存服务费失败",
		"error.service_fee_apply_failed":  "计算服务费失败",
	},
	LocaleEnUS: {
		"error.bad_request":               "Invalid request parameters",
		"error.internal":                  "Internal server error",
		"error.not_found":                 "Resource not found",
		"error.rate_limited":              "Too many requests, retry in %d seconds",
		"error.customer_required":         "Customer identifier is required",
		"error.product_not_found":         "Product not found",
		"error.product_fetch_failed":      "Failed to fetch products",
		"error.cart_not_found":            "Cart not found",
		"error.cart_fetch_failed":         "Failed to fetch cart",
		"error.order_not_found":           "Order not found",
		"error.order_fetch_failed":        "Failed to fetch orders",
		"error.order_update_failed":       "Failed to update order",
		"error.order_status_invalid":      "Order status does not allow this action",
		"error.snapshot_not_found":        "Order snapshot not found",
		"error.snapshot_in_progress":      "Order snapshot is being written",
		"error.snapshot_write_failed":     "Failed to write order snapshot",
		"error.service_fee_not_found":     "Service fee not found",
		"error.service_fee_invalid":       "Invalid service fee",
		"error.service_fee_rate_invalid":  "Service fee rate must be a non-negative number",
		"error.service_fee_window":        "Service fee valid_from must not be after valid_to",
		"error.service_fee_level_invalid": "Invalid service fee charging level",
		"error.service_fee_config":        "Eligibility config does not match the charging level",
		"error.service_fee_save_failed":   "Failed to save service fee",
		"error.service_fee_apply_failed":  "Failed to apply service fees",
	},
}
