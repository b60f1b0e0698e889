package service

import "errors"

// 服务费管理
var (
	ErrServiceFeeNotFound     = errors.New("service fee not found")
	ErrServiceFeeInvalid      = errors.New("service fee invalid")
	ErrServiceFeeRateInvalid  = errors.New("service fee rate invalid")
	ErrServiceFeeWindow       = errors.New("service fee valid window invalid")
	ErrServiceFeeLevelInvalid = errors.New("service fee charging level invalid")
	ErrServiceFeeConfig       = errors.New("service fee eligibility config invalid")
	ErrServiceFeeSaveFailed   = errors.New("service fee save failed")
)

// 商品
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductFetchFailed = errors.New("product fetch failed")
)

// 购物车
var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrCartFetchFailed = errors.New("cart fetch failed")
)

// 订单
var (
	ErrCustomerRequired   = errors.New("customer id required")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderFetchFailed   = errors.New("order fetch failed")
	ErrOrderUpdateFailed  = errors.New("order update failed")
	ErrOrderStatusInvalid = errors.New("order status invalid")
)

// 快照
var (
	ErrSnapshotNotFound    = errors.New("snapshot not found")
	ErrSnapshotInProgress  = errors.New("snapshot in progress")
	ErrSnapshotWriteFailed = errors.New("snapshot write failed")
)

// ErrServiceFeeApplyFailed 服务费计算失败
var ErrServiceFeeApplyFailed = errors.New("service fee apply failed")
