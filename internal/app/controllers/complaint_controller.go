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

// InterfaceComplaintController 定义投诉控制器接口
type InterfaceComplaintController interface {
	GetComplaints()
	GetComplaint()
	CreateComplaint()
	UpdateComplaint()
	DeleteComplaint()
	AddResponse()
}

// ComplaintController 处理投诉相关的请求
type ComplaintController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewComplaintController 创建一个新的投诉控制器
func NewComplaintController(ctx *gin.Context, container *container.ServiceContainer) *ComplaintController {
	return &ComplaintController{
		Ctx:       ctx,
		Container: container,
	}
}

// ComplaintRequest 表示提交投诉请求
type ComplaintRequest struct {
	Title      string `json:"title" binding:"required" example:"电梯故障"`
	Content    string `json:"content" example:"A栋2号电梯已停运三天"`
	ResidentID *uint  `json:"resident_id"` // 管理人员可代任意居民提交
}

// ComplaintUpdateRequest 表示投诉更新请求，
// status和is_resolved仅对管理人员生效
type ComplaintUpdateRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Status     string `json:"status" example:"resolved"` // pending, resolved
	IsResolved *bool  `json:"is_resolved"`
}

// ComplaintResponseRequest 表示回复投诉请求
type ComplaintResponseRequest struct {
	Content string `json:"content" binding:"required" example:"已安排维修，预计明天恢复"`
}

// HandleComplaintFunc 返回一个处理投诉请求的Gin处理函数
func HandleComplaintFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewComplaintController(ctx, container)

		switch method {
		case "getComplaints":
			controller.GetComplaints()
		case "getComplaint":
			controller.GetComplaint()
		case "createComplaint":
			controller.CreateComplaint()
		case "updateComplaint":
			controller.UpdateComplaint()
		case "deleteComplaint":
			controller.DeleteComplaint()
		case "addResponse":
			controller.AddResponse()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetComplaints 获取投诉列表
// @Summary 获取投诉列表
// @Description 获取投诉列表，居民只能看到本人提交的投诉
// @Tags Complaint
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /complaints [get]
func (c *ComplaintController) GetComplaints() {
	query := parsePagination(c.Ctx)

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	// 获取投诉服务
	complaintService := c.Container.GetService("complaint").(services.InterfaceComplaintService)
	complaints, total, err := complaintService.GetAllComplaints(actor, query.Page, query.PageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取投诉列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, models.NewPaginationResult(total, query, complaints))
}

// 2. GetComplaint 获取单条投诉详情
// @Summary 获取投诉详情
// @Description 根据ID获取投诉及其回复，居民只能查看本人提交的
// @Tags Complaint
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "投诉ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /complaints/{id} [get]
func (c *ComplaintController) GetComplaint() {
	id := c.Ctx.Param("id")
	complaintID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的投诉ID")
		return
	}

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	// 获取投诉服务
	complaintService := c.Container.GetService("complaint").(services.InterfaceComplaintService)
	complaint, err := complaintService.GetComplaintByID(uint(complaintID))
	if err != nil {
		failWithError(c.Ctx, err, "获取投诉失败")
		return
	}

	if !perms.CanAccess(c.Container.GetDB(), actor, complaint) {
		response.Forbidden(c.Ctx)
		return
	}

	response.Success(c.Ctx, complaint)
}

// 3. CreateComplaint 提交投诉
// @Summary 提交投诉
// @Description 提交一条投诉，新投诉固定为待处理状态；居民只能以本人名义提交
// @Tags Complaint
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param complaint body ComplaintRequest true "投诉信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /complaints [post]
func (c *ComplaintController) CreateComplaint() {
	var req ComplaintRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	// 创建投诉对象，居民归属由服务层根据调用者确定
	complaint := &models.Complaint{
		Title:   req.Title,
		Content: req.Content,
	}
	if actor.IsStaff && req.ResidentID != nil {
		complaint.ResidentID = *req.ResidentID
	}

	// 获取投诉服务
	complaintService := c.Container.GetService("complaint").(services.InterfaceComplaintService)
	if err := complaintService.CreateComplaint(actor, complaint); err != nil {
		failWithError(c.Ctx, err, "提交投诉失败")
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, complaint)
}

// 4. UpdateComplaint 更新投诉
// @Summary 更新投诉
// @Description 更新投诉信息，处理状态仅管理人员可修改，居民只能更新本人提交的
// @Tags Complaint
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "投诉ID"
// @Param complaint body ComplaintUpdateRequest true "投诉信息"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /complaints/{id} [put]
func (c *ComplaintController) UpdateComplaint() {
	id := c.Ctx.Param("id")
	complaintID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的投诉ID")
		return
	}

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	// 获取投诉服务
	complaintService := c.Container.GetService("complaint").(services.InterfaceComplaintService)
	existing, err := complaintService.GetComplaintByID(uint(complaintID))
	if err != nil {
		failWithError(c.Ctx, err, "获取投诉失败")
		return
	}

	if !perms.CanAccess(c.Container.GetDB(), actor, existing) {
		response.Forbidden(c.Ctx)
		return
	}

	var req ComplaintUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	// 创建更新映射
	updates := make(map[string]interface{})
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Content != "" {
		updates["content"] = req.Content
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.IsResolved != nil {
		updates["is_resolved"] = *req.IsResolved
	}

	complaint, err := complaintService.UpdateComplaint(actor, uint(complaintID), updates)
	if err != nil {
		failWithError(c.Ctx, err, "更新投诉失败")
		return
	}

	response.Success(c.Ctx, complaint)
}

// 5. DeleteComplaint 删除投诉
// @Summary 删除投诉
// @Description 删除指定的投诉及其回复，仅限管理人员
// @Tags Complaint
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "投诉ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /complaints/{id} [delete]
func (c *ComplaintController) DeleteComplaint() {
	id := c.Ctx.Param("id")
	complaintID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的投诉ID")
		return
	}

	// 获取投诉服务
	complaintService := c.Container.GetService("complaint").(services.InterfaceComplaintService)
	if err := complaintService.DeleteComplaint(uint(complaintID)); err != nil {
		failWithError(c.Ctx, err, "删除投诉失败")
		return
	}

	response.Success(c.Ctx, nil)
}

// 6. AddResponse 回复投诉
// @Summary 回复投诉
// @Description 管理人员对投诉添加一条回复
// @Tags Complaint
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "投诉ID"
// @Param response body ComplaintResponseRequest true "回复内容"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /complaints/{id}/responses [post]
func (c *ComplaintController) AddResponse() {
	id := c.Ctx.Param("id")
	complaintID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的投诉ID")
		return
	}

	var req ComplaintResponseRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	// 获取投诉服务
	complaintService := c.Container.GetService("complaint").(services.InterfaceComplaintService)
	resp, err := complaintService.AddResponse(actor.UserID, uint(complaintID), req.Content)
	if err != nil {
		failWithError(c.Ctx, err, "回复投诉失败")
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, resp)
}
