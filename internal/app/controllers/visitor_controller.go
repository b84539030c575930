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

	"github.com/gin-gonic/gin"
)

// InterfaceVisitorController 定义访客控制器接口
type InterfaceVisitorController interface {
	GetVisitors()
	GetVisitor()
	CreateVisitor()
	UpdateVisitor()
	DeleteVisitor()
}

// VisitorController 处理访客相关的请求
type VisitorController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewVisitorController 创建一个新的访客控制器
func NewVisitorController(ctx *gin.Context, container *container.ServiceContainer) *VisitorController {
	return &VisitorController{
		Ctx:       ctx,
		Container: container,
	}
}

// VisitorRequest 表示访客登记请求
type VisitorRequest struct {
	FullName               string `json:"full_name" binding:"required" example:"黎氏花"`
	IdentityCard           string `json:"identity_card" binding:"required" example:"079203005678"`
	Phone                  string `json:"phone" example:"0907654321"`
	RelationshipToResident string `json:"relationship_to_resident" example:"朋友"`
	ResidentID             *uint  `json:"resident_id"` // 管理人员可代任意居民登记
}

// VisitorUpdateRequest 表示访客更新请求，所有字段可选。
// is_approved仅对管理人员生效
type VisitorUpdateRequest struct {
	FullName               string `json:"full_name"`
	IdentityCard           string `json:"identity_card"`
	Phone                  string `json:"phone"`
	RelationshipToResident string `json:"relationship_to_resident"`
	IsApproved             *bool  `json:"is_approved"`
}

// HandleVisitorFunc 返回一个处理访客请求的Gin处理函数
func HandleVisitorFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewVisitorController(ctx, container)

		switch method {
		case "getVisitors":
			controller.GetVisitors()
		case "getVisitor":
			controller.GetVisitor()
		case "createVisitor":
			controller.CreateVisitor()
		case "updateVisitor":
			controller.UpdateVisitor()
		case "deleteVisitor":
			controller.DeleteVisitor()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetVisitors 获取访客列表
// @Summary 获取访客列表
// @Description 获取访客列表，居民只能看到本人登记的访客
// @Tags Visitor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /visitors [get]
func (c *VisitorController) GetVisitors() {
	query := parsePagination(c.Ctx)

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	// 获取访客服务
	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	visitors, total, err := visitorService.GetAllVisitors(actor, query.Page, query.PageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取访客列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, models.NewPaginationResult(total, query, visitors))
}

// 2. GetVisitor 获取单个访客详情
// @Summary 获取访客详情
// @Description 根据ID获取访客详细信息，居民只能查看本人登记的访客
// @Tags Visitor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "访客ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /visitors/{id} [get]
func (c *VisitorController) GetVisitor() {
	id := c.Ctx.Param("id")
	visitorID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的访客ID")
		return
	}

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	// 获取访客服务
	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	visitor, err := visitorService.GetVisitorByID(uint(visitorID))
	if err != nil {
		failWithError(c.Ctx, err, "获取访客失败")
		return
	}

	if !perms.CanAccess(c.Container.GetDB(), actor, visitor) {
		response.Forbidden(c.Ctx)
		return
	}

	response.Success(c.Ctx, visitor)
}

// 3. CreateVisitor 登记访客
// @Summary 登记访客
// @Description 登记一名访客，新访客默认未审批；居民只能为本人登记，管理人员可指定居民
// @Tags Visitor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param visitor body VisitorRequest true "访客信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /visitors [post]
func (c *VisitorController) CreateVisitor() {
	var req VisitorRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	// 确定访客归属的居民：管理人员可指定，居民固定为本人
	var residentID uint
	if actor.IsStaff && req.ResidentID != nil {
		residentID = *req.ResidentID
	} else {
		if !actor.HasResident() {
			response.Fail(c.Ctx, code.ErrUserNoResident, nil)
			return
		}
		residentID = actor.ResidentID
	}

	// 创建访客对象
	visitor := &models.Visitor{
		FullName:               req.FullName,
		IdentityCard:           req.IdentityCard,
		Phone:                  req.Phone,
		RelationshipToResident: req.RelationshipToResident,
		Active:                 true,
	}

	// 获取访客服务
	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	if err := visitorService.CreateVisitor(residentID, visitor); err != nil {
		failWithError(c.Ctx, err, "登记访客失败")
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, visitor)
}

// 4. UpdateVisitor 更新访客信息
// @Summary 更新访客
// @Description 更新访客信息，审批标志仅管理人员可修改，居民只能更新本人登记的访客
// @Tags Visitor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "访客ID"
// @Param visitor body VisitorUpdateRequest true "访客信息"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /visitors/{id} [put]
func (c *VisitorController) UpdateVisitor() {
	id := c.Ctx.Param("id")
	visitorID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的访客ID")
		return
	}

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	// 获取访客服务
	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	existing, err := visitorService.GetVisitorByID(uint(visitorID))
	if err != nil {
		failWithError(c.Ctx, err, "获取访客失败")
		return
	}

	if !perms.CanAccess(c.Container.GetDB(), actor, existing) {
		response.Forbidden(c.Ctx)
		return
	}

	var req VisitorUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	// 创建更新映射
	updates := make(map[string]interface{})
	if req.FullName != "" {
		updates["full_name"] = req.FullName
	}
	if req.IdentityCard != "" {
		updates["identity_card"] = req.IdentityCard
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.RelationshipToResident != "" {
		updates["relationship_to_resident"] = req.RelationshipToResident
	}
	if req.IsApproved != nil {
		updates["is_approved"] = *req.IsApproved
	}

	visitor, err := visitorService.UpdateVisitor(actor, uint(visitorID), updates)
	if err != nil {
		failWithError(c.Ctx, err, "更新访客失败")
		return
	}

	response.Success(c.Ctx, visitor)
}

// 5. DeleteVisitor 删除访客
// @Summary 删除访客
// @Description 删除指定的访客及其停车卡，仅限管理人员
// @Tags Visitor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "访客ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /visitors/{id} [delete]
func (c *VisitorController) DeleteVisitor() {
	id := c.Ctx.Param("id")
	visitorID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的访客ID")
		return
	}

	// 获取访客服务
	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	if err := visitorService.DeleteVisitor(uint(visitorID)); err != nil {
		failWithError(c.Ctx, err, "删除访客失败")
		return
	}

	response.Success(c.Ctx, nil)
}
