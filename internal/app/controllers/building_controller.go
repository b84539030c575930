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

// InterfaceBuildingController 定义楼栋控制器接口
type InterfaceBuildingController interface {
	GetBuildings()
	GetBuilding()
	CreateBuilding()
	UpdateBuilding()
	DeleteBuilding()
	GetBuildingApartments()
}

// BuildingController 处理楼栋相关的请求
type BuildingController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewBuildingController 创建一个新的楼栋控制器
func NewBuildingController(ctx *gin.Context, container *container.ServiceContainer) *BuildingController {
	return &BuildingController{
		Ctx:       ctx,
		Container: container,
	}
}

// BuildingRequest 表示楼栋请求
type BuildingRequest struct {
	Name           string  `json:"name" binding:"required" example:"A栋"`
	Address        string  `json:"address" binding:"required" example:"小区东南角"`
	Description    string  `json:"description" example:"临街楼栋"`
	Area           float64 `json:"area" example:"1200.5"`
	TotalApartment float64 `json:"total_apartment" example:"48"`
}

// BuildingUpdateRequest 表示楼栋更新请求，所有字段可选
type BuildingUpdateRequest struct {
	Name           string   `json:"name" example:"A栋"`
	Address        string   `json:"address" example:"小区东南角"`
	Description    string   `json:"description" example:"临街楼栋"`
	Area           *float64 `json:"area"`
	TotalApartment *float64 `json:"total_apartment"`
}

// HandleBuildingFunc 返回一个处理楼栋请求的Gin处理函数
func HandleBuildingFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewBuildingController(ctx, container)

		switch method {
		case "getBuildings":
			controller.GetBuildings()
		case "getBuilding":
			controller.GetBuilding()
		case "createBuilding":
			controller.CreateBuilding()
		case "updateBuilding":
			controller.UpdateBuilding()
		case "deleteBuilding":
			controller.DeleteBuilding()
		case "getBuildingApartments":
			controller.GetBuildingApartments()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetBuildings 获取所有楼栋列表
// @Summary 获取所有楼栋
// @Description 获取系统中所有启用状态楼栋的列表
// @Tags Building
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /buildings [get]
func (c *BuildingController) GetBuildings() {
	// 获取分页参数
	query := parsePagination(c.Ctx)

	// 获取楼栋服务
	buildingService := c.Container.GetService("building").(services.InterfaceBuildingService)
	buildings, total, err := buildingService.GetAllBuildings(query.Page, query.PageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取楼栋列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, models.NewPaginationResult(total, query, buildings))
}

// 2. GetBuilding 获取单个楼栋详情
// @Summary 获取楼栋详情
// @Description 根据ID获取楼栋详细信息
// @Tags Building
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "楼栋ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /buildings/{id} [get]
func (c *BuildingController) GetBuilding() {
	id := c.Ctx.Param("id")
	buildingID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的楼栋ID")
		return
	}

	// 获取楼栋服务
	buildingService := c.Container.GetService("building").(services.InterfaceBuildingService)
	building, err := buildingService.GetBuildingByID(uint(buildingID))
	if err != nil {
		failWithError(c.Ctx, err, "获取楼栋失败")
		return
	}

	response.Success(c.Ctx, building)
}

// 3. CreateBuilding 创建新楼栋
// @Summary 创建楼栋
// @Description 创建一个新的楼栋，仅限管理人员
// @Tags Building
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param building body BuildingRequest true "楼栋信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /buildings [post]
func (c *BuildingController) CreateBuilding() {
	var req BuildingRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	// 创建楼栋对象
	building := &models.Building{
		Name:           req.Name,
		Address:        req.Address,
		Description:    req.Description,
		Area:           req.Area,
		TotalApartment: req.TotalApartment,
		Active:         true,
	}

	// 获取楼栋服务
	buildingService := c.Container.GetService("building").(services.InterfaceBuildingService)
	if err := buildingService.CreateBuilding(building); err != nil {
		failWithError(c.Ctx, err, "创建楼栋失败")
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, building)
}

// 4. UpdateBuilding 更新楼栋信息
// @Summary 更新楼栋
// @Description 更新楼栋信息，仅限管理人员
// @Tags Building
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "楼栋ID"
// @Param building body BuildingUpdateRequest true "楼栋信息"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /buildings/{id} [put]
func (c *BuildingController) UpdateBuilding() {
	id := c.Ctx.Param("id")
	buildingID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的楼栋ID")
		return
	}

	var req BuildingUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	// 创建更新映射
	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Area != nil {
		updates["area"] = *req.Area
	}
	if req.TotalApartment != nil {
		updates["total_apartment"] = *req.TotalApartment
	}

	// 获取楼栋服务
	buildingService := c.Container.GetService("building").(services.InterfaceBuildingService)
	building, err := buildingService.UpdateBuilding(uint(buildingID), updates)
	if err != nil {
		failWithError(c.Ctx, err, "更新楼栋失败")
		return
	}

	response.Success(c.Ctx, building)
}

// 5. DeleteBuilding 删除楼栋
// @Summary 删除楼栋
// @Description 停用指定的楼栋，关联公寓一并停用，仅限管理人员
// @Tags Building
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "楼栋ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /buildings/{id} [delete]
func (c *BuildingController) DeleteBuilding() {
	id := c.Ctx.Param("id")
	buildingID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的楼栋ID")
		return
	}

	// 获取楼栋服务
	buildingService := c.Container.GetService("building").(services.InterfaceBuildingService)
	if err := buildingService.DeleteBuilding(uint(buildingID)); err != nil {
		failWithError(c.Ctx, err, "删除楼栋失败")
		return
	}

	response.Success(c.Ctx, nil)
}

// 6. GetBuildingApartments 获取楼栋下的公寓
// @Summary 获取楼栋下的公寓
// @Description 获取指定楼栋下的所有公寓
// @Tags Building
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "楼栋ID"
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /buildings/{id}/apartments [get]
func (c *BuildingController) GetBuildingApartments() {
	id := c.Ctx.Param("id")
	buildingID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的楼栋ID")
		return
	}

	query := parsePagination(c.Ctx)

	// 获取楼栋服务
	buildingService := c.Container.GetService("building").(services.InterfaceBuildingService)
	apartments, total, err := buildingService.GetBuildingApartments(uint(buildingID), query.Page, query.PageSize)
	if err != nil {
		failWithError(c.Ctx, err, "获取楼栋下公寓失败")
		return
	}

	response.Success(c.Ctx, models.NewPaginationResult(total, query, apartments))
}
