package constants

// 订单状态常量
const (
	OrderStatusPending        = "pending"
	OrderStatusCompleted      = "completed"
	OrderStatusCanceled       = "canceled"
	OrderStatusRequiresAction = "requires_action"
)

// 商品状态常量
const (
	ProductStatusDraft     = "draft"
	ProductStatusPublished = "published"
)

// 服务费收费层级常量
const (
	ServiceFeeLevelGlobal = "GLOBAL"
	ServiceFeeLevelItem   = "ITEM_LEVEL"
	ServiceFeeLevelShop   = "SHOP_LEVEL"
)

// 服务费状态常量
const (
	ServiceFeeStatusActive   = "ACTIVE"
	ServiceFeeStatusPending  = "PENDING"
	ServiceFeeStatusInactive = "INACTIVE"
)

// 店铺级规则中表示“全部商家”的取值
const ServiceFeeVendorsAll = "all"

// 商家-商品关联读取方式
const (
	VendorLinkModeModule   = "module"
	VendorLinkModeRegistry = "registry"
)

// 通用关联登记表实体类型
const (
	LinkEntityVendor      = "vendor"
	LinkEntityProduct     = "product"
	LinkEntityVendorGroup = "vendor_group"
)

// ID 前缀常量
const (
	IDPrefixServiceFee     = "sfee"
	IDPrefixProduct        = "prod"
	IDPrefixVariant        = "variant"
	IDPrefixCategory       = "pcat"
	IDPrefixCollection     = "pcol"
	IDPrefixVendor         = "vendor"
	IDPrefixVendorGroup    = "vgroup"
	IDPrefixLink           = "link"
	IDPrefixCart           = "cart"
	IDPrefixCartItem       = "cali"
	IDPrefixOrder          = "order"
	IDPrefixOrderItem      = "ordli"
	IDPrefixShippingMethod = "sm"
	IDPrefixSnapshot       = "snap"
	IDPrefixSnapshotItem   = "snapli"
)

// 队列常量
const (
	QueueDefault      = "default"
	QueueSnapshot     = "snapshot"
	TaskOrderSnapshot = "order:snapshot"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "mf"
)

// 币种常量
const (
	CurrencyDefault = "usd"
)

// 请求头常量
const (
	HeaderCustomerID = "X-Customer-ID"
	HeaderRequestID  = "X-Request-ID"
)
