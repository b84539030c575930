package controllers

import (
	"net/http"
	"strconv"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/services"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/services/container"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceApartmentController 定义公寓控制器接口
type InterfaceApartmentController interface {
	GetApartments()
	GetApartment()
	CreateApartment()
	UpdateApartment()
	DeleteApartment()
	GetApartmentResidents()
}

// ApartmentController 处理公寓相关的请求
type ApartmentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewApartmentController 创建一个新的公寓控制器
func NewApartmentController(ctx *gin.Context, container *container.ServiceContainer) *ApartmentController {
	return &ApartmentController{
		Ctx:       ctx,
		Container: container,
	}
}

// ApartmentRequest 表示公寓请求
type ApartmentRequest struct {
	Number      string  `json:"number" binding:"required" example:"A101"`
	Floor       uint    `json:"floor" binding:"required,min=1" example:"1"`
	Price       float64 `json:"price" example:"500000"`
	Area        float64 `json:"area" example:"75.5"`
	Description string  `json:"description" example:"两室一厅"`
	BuildingID  uint    `json:"building_id" binding:"required" example:"1"`
}

// ApartmentUpdateRequest 表示公寓更新请求，所有字段可选。
// 户主字段不在此处，户主只能通过居民关系写入
type ApartmentUpdateRequest struct {
	Number      string   `json:"number" example:"A101"`
	Floor       *uint    `json:"floor"`
	Price       *float64 `json:"price"`
	Area        *float64 `json:"area"`
	Description string   `json:"description"`
	BuildingID  *uint    `json:"building_id"`
}

// HandleApartmentFunc 返回一个处理公寓请求的Gin处理函数
func HandleApartmentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewApartmentController(ctx, container)

		switch method {
		case "getApartments":
			controller.GetApartments()
		case "getApartment":
			controller.GetApartment()
		case "createApartment":
			controller.CreateApartment()
		case "updateApartment":
			controller.UpdateApartment()
		case "deleteApartment":
			controller.DeleteApartment()
		case "getApartmentResidents":
			controller.GetApartmentResidents()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetApartments 获取所有公寓列表
// @Summary 获取所有公寓
// @Description 获取系统中所有启用状态公寓的列表
// @Tags Apartment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /apartments [get]
func (c *ApartmentController) GetApartments() {
	query := parsePagination(c.Ctx)

	// 获取公寓服务
	apartmentService := c.Container.GetService("apartment").(services.InterfaceApartmentService)
	apartments, total, err := apartmentService.GetAllApartments(query.Page, query.PageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取公寓列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, models.NewPaginationResult(total, query, apartments))
}

// 2. GetApartment 获取单个公寓详情
// @Summary 获取公寓详情
// @Description 根据ID获取公寓详细信息，包含所属楼栋
// @Tags Apartment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "公寓ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /apartments/{id} [get]
func (c *ApartmentController) GetApartment() {
	id := c.Ctx.Param("id")
	apartmentID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的公寓ID")
		return
	}

	// 获取公寓服务
	apartmentService := c.Container.GetService("apartment").(services.InterfaceApartmentService)
	apartment, err := apartmentService.GetApartmentByID(uint(apartmentID))
	if err != nil {
		failWithError(c.Ctx, err, "获取公寓失败")
		return
	}

	response.Success(c.Ctx, apartment)
}

// 3. CreateApartment 创建新公寓
// @Summary 创建公寓
// @Description 创建一个新的公寓，编号在同一楼栋内唯一，仅限管理人员
// @Tags Apartment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param apartment body ApartmentRequest true "公寓信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /apartments [post]
func (c *ApartmentController) CreateApartment() {
	var req ApartmentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	// 创建公寓对象
	apartment := &models.Apartment{
		Number:      req.Number,
		Floor:       req.Floor,
		Price:       req.Price,
		Area:        req.Area,
		Description: req.Description,
		BuildingID:  req.BuildingID,
		Active:      true,
	}

	// 获取公寓服务
	apartmentService := c.Container.GetService("apartment").(services.InterfaceApartmentService)
	if err := apartmentService.CreateApartment(apartment); err != nil {
		failWithError(c.Ctx, err, "创建公寓失败")
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, apartment)
}

// 4. UpdateApartment 更新公寓信息
// @Summary 更新公寓
// @Description 更新公寓信息，户主字段忽略，仅限管理人员
// @Tags Apartment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "公寓ID"
// @Param apartment body ApartmentUpdateRequest true "公寓信息"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /apartments/{id} [put]
func (c *ApartmentController) UpdateApartment() {
	id := c.Ctx.Param("id")
	apartmentID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的公寓ID")
		return
	}

	var req ApartmentUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	// 创建更新映射
	updates := make(map[string]interface{})
	if req.Number != "" {
		updates["number"] = req.Number
	}
	if req.Floor != nil {
		updates["floor"] = *req.Floor
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Area != nil {
		updates["area"] = *req.Area
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.BuildingID != nil {
		updates["building_id"] = *req.BuildingID
	}

	// 获取公寓服务
	apartmentService := c.Container.GetService("apartment").(services.InterfaceApartmentService)
	apartment, err := apartmentService.UpdateApartment(uint(apartmentID), updates)
	if err != nil {
		failWithError(c.Ctx, err, "更新公寓失败")
		return
	}

	response.Success(c.Ctx, apartment)
}

// 5. DeleteApartment 删除公寓
// @Summary 删除公寓
// @Description 停用指定的公寓，仅限管理人员
// @Tags Apartment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "公寓ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /apartments/{id} [delete]
func (c *ApartmentController) DeleteApartment() {
	id := c.Ctx.Param("id")
	apartmentID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的公寓ID")
		return
	}

	// 获取公寓服务
	apartmentService := c.Container.GetService("apartment").(services.InterfaceApartmentService)
	if err := apartmentService.DeleteApartment(uint(apartmentID)); err != nil {
		failWithError(c.Ctx, err, "删除公寓失败")
		return
	}

	response.Success(c.Ctx, nil)
}

// 6. GetApartmentResidents 获取公寓内的居民
// @Summary 获取公寓内的居民
// @Description 获取指定公寓内的所有居民
// @Tags Apartment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "公寓ID"
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /apartments/{id}/residents [get]
func (c *ApartmentController) GetApartmentResidents() {
	id := c.Ctx.Param("id")
	apartmentID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的公寓ID")
		return
	}

	query := parsePagination(c.Ctx)

	// 获取公寓服务
	apartmentService := c.Container.GetService("apartment").(services.InterfaceApartmentService)
	residents, total, err := apartmentService.GetApartmentResidents(uint(apartmentID), query.Page, query.PageSize)
	if err != nil {
		failWithError(c.Ctx, err, "获取公寓内居民失败")
		return
	}

	response.Success(c.Ctx, models.NewPaginationResult(total, query, residents))
}
