package routes

import (
	"time"

	_ "github.com/Ngan0209/QuanLyChungCu/docs"
	"github.com/Ngan0209/QuanLyChungCu/internal/app/controllers"
	"github.com/Ngan0209/QuanLyChungCu/internal/app/middleware"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/services/container"
	"github.com/Ngan0209/QuanLyChungCu/internal/infrastructure/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "Accept", "Origin", "Cache-Control", "X-Requested-With"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg, db)
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	// 上传文件（头像、缴费凭证）静态服务
	r.Static("/uploads", cfg.UploadDir)

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
	// 注册仅限管理人员的路由
	registerStaffRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 公共路由单独一个分组，限流不影响认证分组 - 每秒允许10个请求，最多突发20个请求
	public := api.Group("/")
	public.Use(middleware.IPRateLimiter(10, 20))

	// 健康检查路由
	public.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	public.GET("/health", controllers.HandleHealthFunc(container, "ping")) // 兼容Docker健康检查的路由

	// 认证路由
	public.POST("/auth/login", controllers.HandleJWTFunc(container, "login"))
	// 账号注册路由
	public.POST("/users", controllers.HandleUserFunc(container, "createUser"))
}

// registerAuthenticatedRoutes 注册需要认证的路由，管理人员和居民均可访问，
// 对象级权限在控制器和服务层判定
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加认证中间件
	auth := api.Group("/")
	auth.Use(middleware.Authentication())

	// 添加通用限流中间件 - 每秒30个请求，最多突发50个请求
	auth.Use(middleware.IPRateLimiter(30, 50))

	// 账号路由
	userGroup := auth.Group("/users")
	userGroup.GET("/me", controllers.HandleUserFunc(container, "getCurrentUser"))
	userGroup.GET("/:id", controllers.HandleUserFunc(container, "getUser"))
	userGroup.PUT("/:id", controllers.HandleUserFunc(container, "updateUser"))

	// 楼栋路由（读取）
	buildingGroup := auth.Group("/buildings")
	buildingGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Minute}), controllers.HandleBuildingFunc(container, "getBuildings"))
	buildingGroup.GET("/:id", middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Minute}), controllers.HandleBuildingFunc(container, "getBuilding"))
	buildingGroup.GET("/:id/apartments", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleBuildingFunc(container, "getBuildingApartments"))

	// 公寓路由（读取）
	apartmentGroup := auth.Group("/apartments")
	apartmentGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Minute}), controllers.HandleApartmentFunc(container, "getApartments"))
	apartmentGroup.GET("/:id", middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Minute}), controllers.HandleApartmentFunc(container, "getApartment"))
	apartmentGroup.GET("/:id/residents", controllers.HandleApartmentFunc(container, "getApartmentResidents"))

	// 居民路由（本人信息及关联数据）
	residentGroup := auth.Group("/residents")
	residentGroup.GET("/:id", controllers.HandleResidentFunc(container, "getResident"))
	residentGroup.GET("/:id/invoices", controllers.HandleResidentFunc(container, "getResidentInvoices"))
	residentGroup.GET("/:id/parking_cards", controllers.HandleResidentFunc(container, "getResidentParkingCards"))
	residentGroup.GET("/:id/locker", controllers.HandleResidentFunc(container, "getResidentLockerItem"))
	residentGroup.GET("/:id/complaints", controllers.HandleResidentFunc(container, "getResidentComplaints"))
	residentGroup.GET("/:id/visitors", controllers.HandleResidentFunc(container, "getResidentVisitors"))
	residentGroup.POST("/:id/visitors", controllers.HandleResidentFunc(container, "createResidentVisitor"))
	residentGroup.GET("/:id/answers", controllers.HandleResidentFunc(container, "getResidentAnswers"))

	// 储物柜路由
	lockerGroup := auth.Group("/lockers")
	lockerGroup.GET("", controllers.HandleLockerFunc(container, "getLockerItems"))
	lockerGroup.GET("/:id", controllers.HandleLockerFunc(container, "getLockerItem"))
	lockerGroup.PUT("/:id/items/:item_id", controllers.HandleLockerFunc(container, "updateItem"))

	// 访客路由
	visitorGroup := auth.Group("/visitors")
	visitorGroup.GET("", controllers.HandleVisitorFunc(container, "getVisitors"))
	visitorGroup.GET("/:id", controllers.HandleVisitorFunc(container, "getVisitor"))
	visitorGroup.POST("", controllers.HandleVisitorFunc(container, "createVisitor"))
	visitorGroup.PUT("/:id", controllers.HandleVisitorFunc(container, "updateVisitor"))

	// 停车卡路由（读取）
	parkingGroup := auth.Group("/parking_cards")
	parkingGroup.GET("", controllers.HandleParkingCardFunc(container, "getParkingCards"))
	parkingGroup.GET("/:id", controllers.HandleParkingCardFunc(container, "getParkingCard"))

	// 费用类别路由（读取）
	feeTypeGroup := auth.Group("/fee_types")
	feeTypeGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Minute}), controllers.HandleFeeFunc(container, "getFeeTypes"))
	feeTypeGroup.GET("/:id", middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Minute}), controllers.HandleFeeFunc(container, "getFeeType"))

	// 账单路由（读取）
	invoiceGroup := auth.Group("/invoices")
	invoiceGroup.GET("", controllers.HandleFeeFunc(container, "getInvoices"))
	invoiceGroup.GET("/:id", controllers.HandleFeeFunc(container, "getInvoice"))

	// 缴费路由
	paymentGroup := auth.Group("/payments")
	paymentGroup.GET("", controllers.HandlePaymentFunc(container, "getPayments"))
	paymentGroup.GET("/:id", controllers.HandlePaymentFunc(container, "getPayment"))
	paymentGroup.POST("", controllers.HandlePaymentFunc(container, "createPayment"))

	// 投诉路由
	complaintGroup := auth.Group("/complaints")
	complaintGroup.GET("", controllers.HandleComplaintFunc(container, "getComplaints"))
	complaintGroup.GET("/:id", controllers.HandleComplaintFunc(container, "getComplaint"))
	complaintGroup.POST("", controllers.HandleComplaintFunc(container, "createComplaint"))
	complaintGroup.PUT("/:id", controllers.HandleComplaintFunc(container, "updateComplaint"))

	// 问卷路由（读取和作答）
	surveyGroup := auth.Group("/surveys")
	surveyGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleSurveyFunc(container, "getSurveys"))
	surveyGroup.GET("/:id", controllers.HandleSurveyFunc(container, "getSurvey"))

	// 答卷路由
	responseGroup := auth.Group("/survey_responses")
	responseGroup.GET("", controllers.HandleSurveyFunc(container, "getAllSurveyResponses"))
	responseGroup.GET("/:id", controllers.HandleSurveyFunc(container, "getSurveyResponse"))
	responseGroup.POST("", controllers.HandleSurveyFunc(container, "createSurveyResponse"))
}

// registerStaffRoutes 注册仅限管理人员的路由
func registerStaffRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加管理人员认证中间件
	staff := api.Group("/")
	staff.Use(middleware.AuthenticateStaff())

	// 添加通用限流中间件 - 每秒30个请求，最多突发50个请求
	staff.Use(middleware.IPRateLimiter(30, 50))

	// 账号管理路由
	userGroup := staff.Group("/users")
	userGroup.GET("", controllers.HandleUserFunc(container, "getUsers"))

	// 楼栋管理路由
	buildingGroup := staff.Group("/buildings")
	buildingGroup.POST("", controllers.HandleBuildingFunc(container, "createBuilding"))
	buildingGroup.PUT("/:id", controllers.HandleBuildingFunc(container, "updateBuilding"))
	buildingGroup.DELETE("/:id", controllers.HandleBuildingFunc(container, "deleteBuilding"))

	// 公寓管理路由
	apartmentGroup := staff.Group("/apartments")
	apartmentGroup.POST("", controllers.HandleApartmentFunc(container, "createApartment"))
	apartmentGroup.PUT("/:id", controllers.HandleApartmentFunc(container, "updateApartment"))
	apartmentGroup.DELETE("/:id", controllers.HandleApartmentFunc(container, "deleteApartment"))

	// 居民管理路由
	residentGroup := staff.Group("/residents")
	residentGroup.GET("", controllers.HandleResidentFunc(container, "getResidents"))
	residentGroup.POST("", controllers.HandleResidentFunc(container, "createResident"))
	residentGroup.PUT("/:id", controllers.HandleResidentFunc(container, "updateResident"))
	residentGroup.DELETE("/:id", controllers.HandleResidentFunc(container, "deleteResident"))

	// 储物柜管理路由
	lockerGroup := staff.Group("/lockers")
	lockerGroup.POST("", controllers.HandleLockerFunc(container, "createLockerItem"))
	lockerGroup.POST("/:id/items", controllers.HandleLockerFunc(container, "addItem"))

	// 访客管理路由
	visitorGroup := staff.Group("/visitors")
	visitorGroup.DELETE("/:id", controllers.HandleVisitorFunc(container, "deleteVisitor"))

	// 停车卡管理路由
	parkingGroup := staff.Group("/parking_cards")
	parkingGroup.POST("", controllers.HandleParkingCardFunc(container, "createParkingCard"))
	parkingGroup.PUT("/:id", controllers.HandleParkingCardFunc(container, "updateParkingCard"))
	parkingGroup.DELETE("/:id", controllers.HandleParkingCardFunc(container, "deleteParkingCard"))

	// 费用类别管理路由
	feeTypeGroup := staff.Group("/fee_types")
	feeTypeGroup.POST("", controllers.HandleFeeFunc(container, "createFeeType"))
	feeTypeGroup.PUT("/:id", controllers.HandleFeeFunc(container, "updateFeeType"))
	feeTypeGroup.DELETE("/:id", controllers.HandleFeeFunc(container, "deleteFeeType"))

	// 账单管理路由
	invoiceGroup := staff.Group("/invoices")
	invoiceGroup.POST("", controllers.HandleFeeFunc(container, "createInvoice"))
	invoiceGroup.PUT("/:id", controllers.HandleFeeFunc(container, "updateInvoice"))
	invoiceGroup.DELETE("/:id", controllers.HandleFeeFunc(container, "deleteInvoice"))
	invoiceGroup.GET("/export", controllers.HandleFeeFunc(container, "exportInvoices"))

	// 缴费审核路由
	paymentGroup := staff.Group("/payments")
	paymentGroup.PUT("/:id/review", controllers.HandlePaymentFunc(container, "reviewPayment"))

	// 投诉管理路由
	complaintGroup := staff.Group("/complaints")
	complaintGroup.DELETE("/:id", controllers.HandleComplaintFunc(container, "deleteComplaint"))
	complaintGroup.POST("/:id/responses", controllers.HandleComplaintFunc(container, "addResponse"))

	// 问卷管理路由
	surveyGroup := staff.Group("/surveys")
	surveyGroup.POST("", controllers.HandleSurveyFunc(container, "createSurvey"))
	surveyGroup.DELETE("/:id", controllers.HandleSurveyFunc(container, "deleteSurvey"))
	surveyGroup.GET("/:id/responses", controllers.HandleSurveyFunc(container, "getSurveyResponses"))
}
