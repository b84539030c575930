package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/perms"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/services"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/services/container"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceResidentController 定义居民控制器接口
type InterfaceResidentController interface {
	GetResidents()
	GetResident()
	CreateResident()
	UpdateResident()
	DeleteResident()
	GetResidentInvoices()
	GetResidentParkingCards()
	GetResidentLockerItem()
	GetResidentComplaints()
	GetResidentVisitors()
	CreateResidentVisitor()
	GetResidentAnswers()
}

// ResidentController 处理居民相关的请求
type ResidentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewResidentController 创建一个新的居民控制器
func NewResidentController(ctx *gin.Context, container *container.ServiceContainer) *ResidentController {
	return &ResidentController{
		Ctx:       ctx,
		Container: container,
	}
}

// ResidentRequest 表示居民请求
type ResidentRequest struct {
	Name               string     `json:"name" binding:"required" example:"阮文安"`
	IdentityCard       string     `json:"identity_card" binding:"required" example:"079203001234"`
	Gender             string     `json:"gender" example:"Male"`
	Birthday           *time.Time `json:"birthday"`
	Phone              string     `json:"phone" example:"0901234567"`
	RelationshipToHead string     `json:"relationship_to_head" example:"owner"`
	ApartmentID        uint       `json:"apartment_id" binding:"required" example:"1"`
	UserID             *uint      `json:"user_id"` // 关联的登录账号ID，可选
}

// ResidentUpdateRequest 表示居民更新请求，所有字段可选
type ResidentUpdateRequest struct {
	Name               string     `json:"name"`
	IdentityCard       string     `json:"identity_card"`
	Gender             string     `json:"gender"`
	Birthday           *time.Time `json:"birthday"`
	Phone              string     `json:"phone"`
	RelationshipToHead string     `json:"relationship_to_head"`
	ApartmentID        *uint      `json:"apartment_id"`
	UserID             *uint      `json:"user_id"`
}

// HandleResidentFunc 返回一个处理居民请求的Gin处理函数
func HandleResidentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewResidentController(ctx, container)

		switch method {
		case "getResidents":
			controller.GetResidents()
		case "getResident":
			controller.GetResident()
		case "createResident":
			controller.CreateResident()
		case "updateResident":
			controller.UpdateResident()
		case "deleteResident":
			controller.DeleteResident()
		case "getResidentInvoices":
			controller.GetResidentInvoices()
		case "getResidentParkingCards":
			controller.GetResidentParkingCards()
		case "getResidentLockerItem":
			controller.GetResidentLockerItem()
		case "getResidentComplaints":
			controller.GetResidentComplaints()
		case "getResidentVisitors":
			controller.GetResidentVisitors()
		case "createResidentVisitor":
			controller.CreateResidentVisitor()
		case "getResidentAnswers":
			controller.GetResidentAnswers()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// loadAccessibleResident 解析路径中的居民ID并做对象级权限检查。
// 居民不存在返回404，存在但无权访问返回403
func (c *ResidentController) loadAccessibleResident() (*models.Resident, *perms.Actor, bool) {
	id := c.Ctx.Param("id")
	residentID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的居民ID")
		return nil, nil, false
	}

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return nil, nil, false
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	resident, err := residentService.GetResidentByID(uint(residentID))
	if err != nil {
		failWithError(c.Ctx, err, "获取居民失败")
		return nil, nil, false
	}

	if !perms.CanAccess(c.Container.GetDB(), actor, resident) {
		response.Forbidden(c.Ctx)
		return nil, nil, false
	}

	return resident, actor, true
}

// 1. GetResidents 获取所有居民列表
// @Summary 获取所有居民
// @Description 获取系统中所有居民的列表，仅限管理人员
// @Tags Resident
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /residents [get]
func (c *ResidentController) GetResidents() {
	query := parsePagination(c.Ctx)

	// 获取居民服务
	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	residents, total, err := residentService.GetAllResidents(query.Page, query.PageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取居民列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, models.NewPaginationResult(total, query, residents))
}

// 2. GetResident 获取单个居民详情
// @Summary 获取居民详情
// @Description 根据ID获取居民详细信息，居民只能查看本人信息
// @Tags Resident
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "居民ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /residents/{id} [get]
func (c *ResidentController) GetResident() {
	resident, _, ok := c.loadAccessibleResident()
	if !ok {
		return
	}

	response.Success(c.Ctx, resident)
}

// 3. CreateResident 创建新居民
// @Summary 创建居民
// @Description 创建一个新的居民，关系为owner时自动成为所在公寓的户主，仅限管理人员
// @Tags Resident
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param resident body ResidentRequest true "居民信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /residents [post]
func (c *ResidentController) CreateResident() {
	var req ResidentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	// 创建居民对象
	resident := &models.Resident{
		Name:               req.Name,
		IdentityCard:       req.IdentityCard,
		Gender:             req.Gender,
		Phone:              req.Phone,
		RelationshipToHead: req.RelationshipToHead,
		ApartmentID:        req.ApartmentID,
		UserID:             req.UserID,
		Active:             true,
	}
	if req.Birthday != nil {
		resident.Birthday = *req.Birthday
	}
	if resident.Gender == "" {
		resident.Gender = models.GenderMale
	}
	if resident.RelationshipToHead == "" {
		resident.RelationshipToHead = models.RelationshipOther
	}

	// 获取居民服务
	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	if err := residentService.CreateResident(resident); err != nil {
		failWithError(c.Ctx, err, "创建居民失败")
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, resident)
}

// 4. UpdateResident 更新居民信息
// @Summary 更新居民
// @Description 更新居民信息，关系变更为owner时自动接任所在公寓的户主，仅限管理人员
// @Tags Resident
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "居民ID"
// @Param resident body ResidentUpdateRequest true "居民信息"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /residents/{id} [put]
func (c *ResidentController) UpdateResident() {
	id := c.Ctx.Param("id")
	residentID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的居民ID")
		return
	}

	var req ResidentUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	// 创建更新映射
	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.IdentityCard != "" {
		updates["identity_card"] = req.IdentityCard
	}
	if req.Gender != "" {
		updates["gender"] = req.Gender
	}
	if req.Birthday != nil {
		updates["birthday"] = *req.Birthday
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.RelationshipToHead != "" {
		updates["relationship_to_head"] = req.RelationshipToHead
	}
	if req.ApartmentID != nil {
		updates["apartment_id"] = *req.ApartmentID
	}
	if req.UserID != nil {
		updates["user_id"] = *req.UserID
	}

	// 获取居民服务
	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	resident, err := residentService.UpdateResident(uint(residentID), updates)
	if err != nil {
		failWithError(c.Ctx, err, "更新居民失败")
		return
	}

	response.Success(c.Ctx, resident)
}

// 5. DeleteResident 删除居民
// @Summary 删除居民
// @Description 删除指定的居民，若为户主则同时清空所在公寓的户主，仅限管理人员
// @Tags Resident
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "居民ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /residents/{id} [delete]
func (c *ResidentController) DeleteResident() {
	id := c.Ctx.Param("id")
	residentID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的居民ID")
		return
	}

	// 获取居民服务
	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	if err := residentService.DeleteResident(uint(residentID)); err != nil {
		failWithError(c.Ctx, err, "删除居民失败")
		return
	}

	response.Success(c.Ctx, nil)
}

// 6. GetResidentInvoices 获取居民的账单
// @Summary 获取居民的账单
// @Description 获取指定居民的所有账单，居民只能查看本人的
// @Tags Resident
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "居民ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /residents/{id}/invoices [get]
func (c *ResidentController) GetResidentInvoices() {
	resident, _, ok := c.loadAccessibleResident()
	if !ok {
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	invoices, err := residentService.GetResidentInvoices(resident.ID)
	if err != nil {
		failWithError(c.Ctx, err, "获取居民账单失败")
		return
	}

	response.Success(c.Ctx, invoices)
}

// 7. GetResidentParkingCards 获取居民的停车卡
// @Summary 获取居民的停车卡
// @Description 获取指定居民的所有停车卡，居民只能查看本人的
// @Tags Resident
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "居民ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /residents/{id}/parking_cards [get]
func (c *ResidentController) GetResidentParkingCards() {
	resident, _, ok := c.loadAccessibleResident()
	if !ok {
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	cards, err := residentService.GetResidentParkingCards(resident.ID)
	if err != nil {
		failWithError(c.Ctx, err, "获取居民停车卡失败")
		return
	}

	response.Success(c.Ctx, cards)
}

// 8. GetResidentLockerItem 获取居民的储物柜
// @Summary 获取居民的储物柜
// @Description 获取指定居民的储物柜及柜内包裹，居民只能查看本人的
// @Tags Resident
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "居民ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /residents/{id}/locker [get]
func (c *ResidentController) GetResidentLockerItem() {
	resident, _, ok := c.loadAccessibleResident()
	if !ok {
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	locker, err := residentService.GetResidentLockerItem(resident.ID)
	if err != nil {
		failWithError(c.Ctx, err, "获取居民储物柜失败")
		return
	}

	response.Success(c.Ctx, locker)
}

// 9. GetResidentComplaints 获取居民的投诉
// @Summary 获取居民的投诉
// @Description 获取指定居民提交的所有投诉，居民只能查看本人的
// @Tags Resident
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "居民ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /residents/{id}/complaints [get]
func (c *ResidentController) GetResidentComplaints() {
	resident, _, ok := c.loadAccessibleResident()
	if !ok {
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	complaints, err := residentService.GetResidentComplaints(resident.ID)
	if err != nil {
		failWithError(c.Ctx, err, "获取居民投诉失败")
		return
	}

	response.Success(c.Ctx, complaints)
}

// 10. GetResidentVisitors 获取居民的访客
// @Summary 获取居民的访客
// @Description 获取指定居民登记的所有访客，居民只能查看本人的
// @Tags Resident
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "居民ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /residents/{id}/visitors [get]
func (c *ResidentController) GetResidentVisitors() {
	resident, _, ok := c.loadAccessibleResident()
	if !ok {
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	visitors, err := residentService.GetResidentVisitors(resident.ID)
	if err != nil {
		failWithError(c.Ctx, err, "获取居民访客失败")
		return
	}

	response.Success(c.Ctx, visitors)
}

// 11. CreateResidentVisitor 为指定居民登记访客
// @Summary 为指定居民登记访客
// @Description 为路径指定的居民登记一名访客，居民只能为本人登记，管理人员可为任意居民登记
// @Tags Resident
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "居民ID"
// @Param visitor body VisitorRequest true "访客信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /residents/{id}/visitors [post]
func (c *ResidentController) CreateResidentVisitor() {
	resident, _, ok := c.loadAccessibleResident()
	if !ok {
		return
	}

	var req VisitorRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	// 访客归属以路径中的居民为准
	visitor := &models.Visitor{
		FullName:               req.FullName,
		IdentityCard:           req.IdentityCard,
		Phone:                  req.Phone,
		RelationshipToResident: req.RelationshipToResident,
		Active:                 true,
	}

	visitorService := c.Container.GetService("visitor").(services.InterfaceVisitorService)
	if err := visitorService.CreateVisitor(resident.ID, visitor); err != nil {
		failWithError(c.Ctx, err, "登记访客失败")
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, visitor)
}

// 12. GetResidentAnswers 获取居民的问卷作答
// @Summary 获取居民的问卷作答
// @Description 获取指定居民在所有问卷中的作答记录，居民只能查看本人的
// @Tags Resident
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "居民ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /residents/{id}/answers [get]
func (c *ResidentController) GetResidentAnswers() {
	resident, _, ok := c.loadAccessibleResident()
	if !ok {
		return
	}

	residentService := c.Container.GetService("resident").(services.InterfaceResidentService)
	answers, err := residentService.GetResidentAnswers(resident.ID)
	if err != nil {
		failWithError(c.Ctx, err, "获取居民问卷作答失败")
		return
	}

	response.Success(c.Ctx, answers)
}
