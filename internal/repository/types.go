package repository

import "time"

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   string
	CollectionID string
	Search       string
	OnlyActive   bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page        int
	PageSize    int
	CustomerID  string
	Status      string
	Email       string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// ServiceFeeListFilter 查询服务费列表的过滤条件
type ServiceFeeListFilter struct {
	Page          int
	PageSize      int
	ChargingLevel string
	Status        string
	Search        string
}

// SnapshotListFilter 查询订单快照的过滤条件
type SnapshotListFilter struct {
	Page        int
	PageSize    int
	CustomerID  string
	Email       string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
