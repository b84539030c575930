package container

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/services"
	"github.com/Ngan0209/QuanLyChungCu/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// 基础服务
	jwtService services.InterfaceJWTService

	// 数据存储服务
	redisService services.InterfaceRedisService

	// 业务服务
	userService      services.InterfaceUserService
	buildingService  services.InterfaceBuildingService
	apartmentService services.InterfaceApartmentService
	residentService  services.InterfaceResidentService
	lockerService    services.InterfaceLockerService
	visitorService   services.InterfaceVisitorService
	parkingService   services.InterfaceParkingService
	feeService       services.InterfaceFeeService
	paymentService   services.InterfacePaymentService
	complaintService services.InterfaceComplaintService
	surveyService    services.InterfaceSurveyService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	// 测试Redis连接
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis连接测试失败: %v，将不使用Redis缓存", err)
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config, c.db)

	// 初始化Redis服务
	c.redisService = services.NewRedisService(c.config)

	// 初始化业务服务
	c.userService = services.NewUserService(c.db, c.config)
	c.buildingService = services.NewBuildingService(c.db, c.config)
	c.apartmentService = services.NewApartmentService(c.db, c.config)
	c.residentService = services.NewResidentService(c.db, c.config)
	c.lockerService = services.NewLockerService(c.db, c.config)
	c.visitorService = services.NewVisitorService(c.db, c.config)
	c.parkingService = services.NewParkingService(c.db, c.config)
	c.feeService = services.NewFeeService(c.db, c.config)
	c.paymentService = services.NewPaymentService(c.db, c.config)
	c.complaintService = services.NewComplaintService(c.db, c.config)
	c.surveyService = services.NewSurveyService(c.db, c.config, c.redisService)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "user":
		return c.userService
	case "building":
		return c.buildingService
	case "apartment":
		return c.apartmentService
	case "resident":
		return c.residentService
	case "locker":
		return c.lockerService
	case "visitor":
		return c.visitorService
	case "parking":
		return c.parkingService
	case "fee":
		return c.feeService
	case "payment":
		return c.paymentService
	case "complaint":
		return c.complaintService
	case "survey":
		return c.surveyService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
