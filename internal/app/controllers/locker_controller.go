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

// InterfaceLockerController 定义储物柜控制器接口
type InterfaceLockerController interface {
	GetLockerItems()
	GetLockerItem()
	CreateLockerItem()
	AddItem()
	UpdateItem()
}

// LockerController 处理收件储物柜相关的请求
type LockerController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewLockerController 创建一个新的储物柜控制器
func NewLockerController(ctx *gin.Context, container *container.ServiceContainer) *LockerController {
	return &LockerController{
		Ctx:       ctx,
		Container: container,
	}
}

// LockerItemRequest 表示创建储物柜请求
type LockerItemRequest struct {
	LockerNumber string `json:"locker_number" binding:"required" example:"L001"`
	Description  string `json:"description" example:"一楼大厅东侧"`
	ResidentID   uint   `json:"resident_id" binding:"required" example:"1"`
}

// ItemRequest 表示登记包裹请求
type ItemRequest struct {
	NameItem        string `json:"name_item" binding:"required" example:"快递包裹"`
	DescriptionItem string `json:"description_item" example:"Shopee订单"`
}

// ItemUpdateRequest 表示包裹更新请求
type ItemUpdateRequest struct {
	NameItem        string `json:"name_item"`
	DescriptionItem string `json:"description_item"`
	Status          string `json:"status" example:"received"` // waiting, received
}

// HandleLockerFunc 返回一个处理储物柜请求的Gin处理函数
func HandleLockerFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewLockerController(ctx, container)

		switch method {
		case "getLockerItems":
			controller.GetLockerItems()
		case "getLockerItem":
			controller.GetLockerItem()
		case "createLockerItem":
			controller.CreateLockerItem()
		case "addItem":
			controller.AddItem()
		case "updateItem":
			controller.UpdateItem()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetLockerItems 获取储物柜列表
// @Summary 获取储物柜列表
// @Description 获取储物柜列表，居民只能看到本人的储物柜
// @Tags Locker
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /lockers [get]
func (c *LockerController) GetLockerItems() {
	query := parsePagination(c.Ctx)

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	// 获取储物柜服务
	lockerService := c.Container.GetService("locker").(services.InterfaceLockerService)
	lockers, total, err := lockerService.GetAllLockerItems(actor, query.Page, query.PageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取储物柜列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, models.NewPaginationResult(total, query, lockers))
}

// 2. GetLockerItem 获取单个储物柜详情
// @Summary 获取储物柜详情
// @Description 根据ID获取储物柜及柜内包裹，居民只能查看本人的
// @Tags Locker
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "储物柜ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /lockers/{id} [get]
func (c *LockerController) GetLockerItem() {
	id := c.Ctx.Param("id")
	lockerID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的储物柜ID")
		return
	}

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	// 获取储物柜服务
	lockerService := c.Container.GetService("locker").(services.InterfaceLockerService)
	locker, err := lockerService.GetLockerItemByID(uint(lockerID))
	if err != nil {
		failWithError(c.Ctx, err, "获取储物柜失败")
		return
	}

	if !perms.CanAccess(c.Container.GetDB(), actor, locker) {
		response.Forbidden(c.Ctx)
		return
	}

	response.Success(c.Ctx, locker)
}

// 3. CreateLockerItem 创建储物柜
// @Summary 创建储物柜
// @Description 为居民分配一个收件储物柜，每个居民只能有一个，仅限管理人员
// @Tags Locker
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param locker body LockerItemRequest true "储物柜信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /lockers [post]
func (c *LockerController) CreateLockerItem() {
	var req LockerItemRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	// 创建储物柜对象
	locker := &models.LockerItem{
		LockerNumber: req.LockerNumber,
		Description:  req.Description,
		ResidentID:   req.ResidentID,
	}

	// 获取储物柜服务
	lockerService := c.Container.GetService("locker").(services.InterfaceLockerService)
	if err := lockerService.CreateLockerItem(locker); err != nil {
		failWithError(c.Ctx, err, "创建储物柜失败")
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, locker)
}

// 4. AddItem 向储物柜登记包裹
// @Summary 登记包裹
// @Description 向指定储物柜登记一件待领取的包裹，仅限管理人员
// @Tags Locker
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "储物柜ID"
// @Param item body ItemRequest true "包裹信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /lockers/{id}/items [post]
func (c *LockerController) AddItem() {
	id := c.Ctx.Param("id")
	lockerID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的储物柜ID")
		return
	}

	var req ItemRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	// 创建包裹对象
	item := &models.Item{
		NameItem:        req.NameItem,
		DescriptionItem: req.DescriptionItem,
	}

	// 获取储物柜服务
	lockerService := c.Container.GetService("locker").(services.InterfaceLockerService)
	if err := lockerService.AddItem(uint(lockerID), item); err != nil {
		failWithError(c.Ctx, err, "登记包裹失败")
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, item)
}

// 5. UpdateItem 更新包裹信息
// @Summary 更新包裹
// @Description 更新包裹信息，状态变为received时记录领取时间，居民只能操作本人储物柜内的包裹
// @Tags Locker
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "储物柜ID"
// @Param item_id path int true "包裹ID"
// @Param item body ItemUpdateRequest true "包裹信息"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /lockers/{id}/items/{item_id} [put]
func (c *LockerController) UpdateItem() {
	id := c.Ctx.Param("id")
	lockerID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的储物柜ID")
		return
	}

	itemIDParam := c.Ctx.Param("item_id")
	itemID, err := strconv.Atoi(itemIDParam)
	if err != nil {
		response.ParamError(c.Ctx, "无效的包裹ID")
		return
	}

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	// 获取储物柜服务
	lockerService := c.Container.GetService("locker").(services.InterfaceLockerService)
	locker, err := lockerService.GetLockerItemByID(uint(lockerID))
	if err != nil {
		failWithError(c.Ctx, err, "获取储物柜失败")
		return
	}

	if !perms.CanAccess(c.Container.GetDB(), actor, locker) {
		response.Forbidden(c.Ctx)
		return
	}

	var req ItemUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	// 创建更新映射
	updates := make(map[string]interface{})
	if req.NameItem != "" {
		updates["name_item"] = req.NameItem
	}
	if req.DescriptionItem != "" {
		updates["description_item"] = req.DescriptionItem
	}
	if req.Status != "" {
		if req.Status != models.ItemStatusWaiting && req.Status != models.ItemStatusReceived {
			response.ParamError(c.Ctx, "无效的包裹状态")
			return
		}
		updates["status"] = req.Status
	}

	item, err := lockerService.UpdateItem(uint(lockerID), uint(itemID), updates)
	if err != nil {
		failWithError(c.Ctx, err, "更新包裹失败")
		return
	}

	response.Success(c.Ctx, item)
}
