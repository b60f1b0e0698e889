package provider

import (
	"time"

	"github.com/marketfee-next/internal/cache"
	"github.com/marketfee-next/internal/config"
	"github.com/marketfee-next/internal/logger"
	"github.com/marketfee-next/internal/metrics"
	"github.com/marketfee-next/internal/models"
	"github.com/marketfee-next/internal/queue"
	"github.com/marketfee-next/internal/repository"
	"github.com/marketfee-next/internal/service"
	"github.com/marketfee-next/internal/servicefee"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	Metrics     *metrics.FeeMetrics

	// Repositories
	ServiceFeeRepo      repository.ServiceFeeRepository
	ProductRepo         repository.ProductRepository
	CartRepo            repository.CartRepository
	OrderRepo           repository.OrderRepository
	SnapshotRepo        repository.SnapshotRepository
	VendorLinkReader    servicefee.VendorProductLinkReader
	VendorGroupLinkRepo *repository.GormVendorGroupLinkRepository

	// Engine
	FeeEngine *servicefee.Engine

	// Services
	ProductService         *service.ProductService
	CartService            *service.CartService
	OrderService           *service.OrderService
	SnapshotService        *service.SnapshotService
	ServiceFeeAdminService *service.ServiceFeeAdminService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	return NewContainerWithDB(cfg, models.DB, queueClient)
}

// NewContainerWithDB 基于已有数据库连接组装容器
func NewContainerWithDB(cfg *config.Config, db *gorm.DB, queueClient *queue.Client) *Container {
	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}
	if cfg.Metrics.Enabled {
		c.Metrics = metrics.NewFeeMetrics()
	}

	c.initRepositories(db)
	c.initEngine()
	c.initServices()
	return c
}

func (c *Container) initRepositories(db *gorm.DB) {
	c.ServiceFeeRepo = repository.NewServiceFeeRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.SnapshotRepo = repository.NewSnapshotRepository(db)
	c.VendorLinkReader = repository.NewVendorProductLinkReader(db, c.Config.ServiceFee.VendorLinkMode)
	c.VendorGroupLinkRepo = repository.NewVendorGroupLinkRepository(db)
}

// initEngine 商家关联读取方式在启动时确定一次
func (c *Container) initEngine() {
	opts := servicefee.EngineOptions{
		Fees:                 c.ServiceFeeRepo,
		Products:             c.ProductRepo,
		Variants:             c.ProductRepo,
		VendorLinks:          c.VendorLinkReader,
		VendorGroups:         c.VendorGroupLinkRepo,
		AdjustOnlyItemFields: c.Config.ServiceFee.AdjustOnlyItemFields,
	}
	if c.Metrics != nil {
		opts.Observer = c.Metrics
	}
	c.FeeEngine = servicefee.NewEngine(opts)
	logger.Infow("provider_fee_engine_ready",
		"vendor_link_mode", c.Config.ServiceFee.VendorLinkMode,
		"metrics_enabled", c.Metrics != nil,
	)
}

func (c *Container) initServices() {
	feeCfg := c.Config.ServiceFee
	lockTTL := time.Duration(feeCfg.SnapshotLockSeconds) * time.Second

	c.ProductService = service.NewProductService(c.ProductRepo, c.FeeEngine)
	c.CartService = service.NewCartService(c.CartRepo, c.FeeEngine)
	c.SnapshotService = service.NewSnapshotService(c.OrderRepo, c.SnapshotRepo, c.FeeEngine, lockTTL)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.FeeEngine, c.SnapshotService, c.QueueClient, service.OrderServiceOptions{
		Fanout:        feeCfg.OrderFanout,
		SnapshotAsync: feeCfg.SnapshotAsync,
	})
	c.ServiceFeeAdminService = service.NewServiceFeeAdminService(c.ServiceFeeRepo)
}
