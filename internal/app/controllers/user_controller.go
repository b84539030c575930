package controllers

import (
	"net/http"
	"strconv"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/perms"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/services"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/services/container"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/response"
	"github.com/Ngan0209/QuanLyChungCu/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// InterfaceUserController 定义账号控制器接口
type InterfaceUserController interface {
	GetUsers()
	GetUser()
	CreateUser()
	UpdateUser()
	GetCurrentUser()
}

// UserController 处理登录账号相关的请求
type UserController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUserController 创建一个新的账号控制器
func NewUserController(ctx *gin.Context, container *container.ServiceContainer) *UserController {
	return &UserController{
		Ctx:       ctx,
		Container: container,
	}
}

// UserRequest 表示注册账号请求
type UserRequest struct {
	Username   string `json:"username" binding:"required" example:"nguyenvanan"`
	Password   string `json:"password" binding:"required,min=6" example:"secret123"`
	FirstName  string `json:"first_name" example:"Van An"`
	LastName   string `json:"last_name" example:"Nguyen"`
	ResidentID *uint  `json:"resident_id"` // 关联的居民ID，可选
}

// UserUpdateRequest 表示账号更新请求，所有字段可选
type UserUpdateRequest struct {
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Avatar    string `json:"avatar"`
}

// HandleUserFunc 返回一个处理账号请求的Gin处理函数
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUserController(ctx, container)

		switch method {
		case "getUsers":
			controller.GetUsers()
		case "getUser":
			controller.GetUser()
		case "createUser":
			controller.CreateUser()
		case "updateUser":
			controller.UpdateUser()
		case "getCurrentUser":
			controller.GetCurrentUser()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetUsers 获取所有账号列表
// @Summary 获取所有账号
// @Description 获取系统中所有登录账号的列表，仅限管理人员
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /users [get]
func (c *UserController) GetUsers() {
	query := parsePagination(c.Ctx)

	// 获取账号服务
	userService := c.Container.GetService("user").(services.InterfaceUserService)
	users, total, err := userService.GetAllUsers(query.Page, query.PageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取账号列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, models.NewPaginationResult(total, query, users))
}

// 2. GetUser 获取单个账号详情
// @Summary 获取账号详情
// @Description 根据ID获取账号详细信息，普通账号只能查看本人
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "账号ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{id} [get]
func (c *UserController) GetUser() {
	id := c.Ctx.Param("id")
	userID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的账号ID")
		return
	}

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	// 获取账号服务
	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.GetUserByID(uint(userID))
	if err != nil {
		failWithError(c.Ctx, err, "获取账号失败")
		return
	}

	if !perms.CanAccess(c.Container.GetDB(), actor, user) {
		response.Forbidden(c.Ctx)
		return
	}

	// 头像在详情中解析为绝对URL
	cfg := c.Container.GetService("config").(*config.Config)
	user.Avatar = resolveUploadURL(cfg, user.Avatar)

	response.Success(c.Ctx, user)
}

// 3. CreateUser 注册新账号
// @Summary 注册账号
// @Description 注册一个新的登录账号，可同时关联已有居民，无需认证
// @Tags User
// @Accept json
// @Produce json
// @Param user body UserRequest true "账号信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users [post]
func (c *UserController) CreateUser() {
	var req UserRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	// 创建账号对象，注册入口不允许提升为管理人员
	user := &models.User{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsStaff:   false,
		IsActive:  true,
	}

	// 获取账号服务
	userService := c.Container.GetService("user").(services.InterfaceUserService)
	if err := userService.CreateUser(user, req.ResidentID); err != nil {
		failWithError(c.Ctx, err, "注册账号失败")
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, user)
}

// 4. UpdateUser 更新账号信息
// @Summary 更新账号
// @Description 更新账号信息，普通账号只能更新本人
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "账号ID"
// @Param user body UserUpdateRequest true "账号信息"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{id} [put]
func (c *UserController) UpdateUser() {
	id := c.Ctx.Param("id")
	userID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的账号ID")
		return
	}

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}
	if !actor.IsStaff && actor.UserID != uint(userID) {
		response.Forbidden(c.Ctx)
		return
	}

	var req UserUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	// 创建更新映射
	updates := make(map[string]interface{})
	if req.Password != "" {
		updates["password"] = req.Password
	}
	if req.FirstName != "" {
		updates["first_name"] = req.FirstName
	}
	if req.LastName != "" {
		updates["last_name"] = req.LastName
	}
	if req.Avatar != "" {
		updates["avatar"] = req.Avatar
	}

	// 获取账号服务
	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.UpdateUser(uint(userID), updates)
	if err != nil {
		failWithError(c.Ctx, err, "更新账号失败")
		return
	}

	response.Success(c.Ctx, user)
}

// 5. GetCurrentUser 获取当前登录账号
// @Summary 获取当前账号
// @Description 获取当前登录账号的详细信息，包含关联居民
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/me [get]
func (c *UserController) GetCurrentUser() {
	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	// 获取账号服务
	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.GetUserByID(actor.UserID)
	if err != nil {
		failWithError(c.Ctx, err, "获取当前账号失败")
		return
	}

	cfg := c.Container.GetService("config").(*config.Config)
	user.Avatar = resolveUploadURL(cfg, user.Avatar)

	response.Success(c.Ctx, user)
}
