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

// InterfaceParkingCardController 定义停车卡控制器接口
type InterfaceParkingCardController interface {
	GetParkingCards()
	GetParkingCard()
	CreateParkingCard()
	UpdateParkingCard()
	DeleteParkingCard()
}

// ParkingCardController 处理停车卡相关的请求
type ParkingCardController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewParkingCardController 创建一个新的停车卡控制器
func NewParkingCardController(ctx *gin.Context, container *container.ServiceContainer) *ParkingCardController {
	return &ParkingCardController{
		Ctx:       ctx,
		Container: container,
	}
}

// ParkingCardRequest 表示停车卡请求，
// resident_id与visitor_id必须恰好提供一个
type ParkingCardRequest struct {
	CardNumber   string `json:"card_number" binding:"required" example:"P0001"`
	LicensePlate string `json:"license_plate" example:"59A-123.45"`
	VehicleType  string `json:"vehicle_type" example:"car"` // car, motorbike, bike, other
	Color        string `json:"color" example:"white"`
	ResidentID   *uint  `json:"resident_id"`
	VisitorID    *uint  `json:"visitor_id"`
}

// ParkingCardUpdateRequest 表示停车卡更新请求，所有字段可选
type ParkingCardUpdateRequest struct {
	CardNumber   string `json:"card_number"`
	LicensePlate string `json:"license_plate"`
	VehicleType  string `json:"vehicle_type"`
	Color        string `json:"color"`
	ResidentID   *uint  `json:"resident_id"`
	VisitorID    *uint  `json:"visitor_id"`
}

// HandleParkingCardFunc 返回一个处理停车卡请求的Gin处理函数
func HandleParkingCardFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewParkingCardController(ctx, container)

		switch method {
		case "getParkingCards":
			controller.GetParkingCards()
		case "getParkingCard":
			controller.GetParkingCard()
		case "createParkingCard":
			controller.CreateParkingCard()
		case "updateParkingCard":
			controller.UpdateParkingCard()
		case "deleteParkingCard":
			controller.DeleteParkingCard()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetParkingCards 获取停车卡列表
// @Summary 获取停车卡列表
// @Description 获取停车卡列表，居民只能看到本人及本人访客的停车卡
// @Tags ParkingCard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /parking_cards [get]
func (c *ParkingCardController) GetParkingCards() {
	query := parsePagination(c.Ctx)

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	// 获取停车卡服务
	parkingService := c.Container.GetService("parking").(services.InterfaceParkingService)
	cards, total, err := parkingService.GetAllParkingCards(actor, query.Page, query.PageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取停车卡列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, models.NewPaginationResult(total, query, cards))
}

// 2. GetParkingCard 获取单张停车卡详情
// @Summary 获取停车卡详情
// @Description 根据ID获取停车卡详细信息，居民只能查看本人的
// @Tags ParkingCard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "停车卡ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /parking_cards/{id} [get]
func (c *ParkingCardController) GetParkingCard() {
	id := c.Ctx.Param("id")
	cardID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的停车卡ID")
		return
	}

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	// 获取停车卡服务
	parkingService := c.Container.GetService("parking").(services.InterfaceParkingService)
	card, err := parkingService.GetParkingCardByID(uint(cardID))
	if err != nil {
		failWithError(c.Ctx, err, "获取停车卡失败")
		return
	}

	if !perms.CanAccess(c.Container.GetDB(), actor, card) {
		response.Forbidden(c.Ctx)
		return
	}

	response.Success(c.Ctx, card)
}

// 3. CreateParkingCard 创建停车卡
// @Summary 创建停车卡
// @Description 创建一张停车卡，必须恰好属于一名居民或一名访客，仅限管理人员
// @Tags ParkingCard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param card body ParkingCardRequest true "停车卡信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /parking_cards [post]
func (c *ParkingCardController) CreateParkingCard() {
	var req ParkingCardRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	// 创建停车卡对象
	card := &models.ParkingCard{
		CardNumber:   req.CardNumber,
		LicensePlate: req.LicensePlate,
		VehicleType:  req.VehicleType,
		Color:        req.Color,
		ResidentID:   req.ResidentID,
		VisitorID:    req.VisitorID,
	}

	// 获取停车卡服务
	parkingService := c.Container.GetService("parking").(services.InterfaceParkingService)
	if err := parkingService.CreateParkingCard(card); err != nil {
		failWithError(c.Ctx, err, "创建停车卡失败")
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, card)
}

// 4. UpdateParkingCard 更新停车卡信息
// @Summary 更新停车卡
// @Description 更新停车卡信息，更新后仍须恰好有一个所属人，仅限管理人员
// @Tags ParkingCard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "停车卡ID"
// @Param card body ParkingCardUpdateRequest true "停车卡信息"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /parking_cards/{id} [put]
func (c *ParkingCardController) UpdateParkingCard() {
	id := c.Ctx.Param("id")
	cardID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的停车卡ID")
		return
	}

	var req ParkingCardUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	// 创建更新映射
	updates := make(map[string]interface{})
	if req.CardNumber != "" {
		updates["card_number"] = req.CardNumber
	}
	if req.LicensePlate != "" {
		updates["license_plate"] = req.LicensePlate
	}
	if req.VehicleType != "" {
		updates["vehicle_type"] = req.VehicleType
	}
	if req.Color != "" {
		updates["color"] = req.Color
	}
	if req.ResidentID != nil {
		updates["resident_id"] = req.ResidentID
	}
	if req.VisitorID != nil {
		updates["visitor_id"] = req.VisitorID
	}

	// 获取停车卡服务
	parkingService := c.Container.GetService("parking").(services.InterfaceParkingService)
	card, err := parkingService.UpdateParkingCard(uint(cardID), updates)
	if err != nil {
		failWithError(c.Ctx, err, "更新停车卡失败")
		return
	}

	response.Success(c.Ctx, card)
}

// 5. DeleteParkingCard 删除停车卡
// @Summary 删除停车卡
// @Description 删除指定的停车卡，仅限管理人员
// @Tags ParkingCard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "停车卡ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /parking_cards/{id} [delete]
func (c *ParkingCardController) DeleteParkingCard() {
	id := c.Ctx.Param("id")
	cardID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的停车卡ID")
		return
	}

	// 获取停车卡服务
	parkingService := c.Container.GetService("parking").(services.InterfaceParkingService)
	if err := parkingService.DeleteParkingCard(uint(cardID)); err != nil {
		failWithError(c.Ctx, err, "删除停车卡失败")
		return
	}

	response.Success(c.Ctx, nil)
}
