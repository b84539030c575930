package controllers

import (
	"fmt"
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

// InterfaceFeeController 定义费用控制器接口
type InterfaceFeeController interface {
	GetFeeTypes()
	GetFeeType()
	CreateFeeType()
	UpdateFeeType()
	DeleteFeeType()
	GetInvoices()
	GetInvoice()
	CreateInvoice()
	UpdateInvoice()
	DeleteInvoice()
	ExportInvoices()
}

// FeeController 处理费用类别和账单相关的请求
type FeeController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewFeeController 创建一个新的费用控制器
func NewFeeController(ctx *gin.Context, container *container.ServiceContainer) *FeeController {
	return &FeeController{
		Ctx:       ctx,
		Container: container,
	}
}

// FeeTypeRequest 表示费用类别请求
type FeeTypeRequest struct {
	Name        string `json:"name" binding:"required" example:"物业费"`
	Description string `json:"description" example:"按月收取"`
}

// InvoiceRequest 表示账单请求，
// 公寓由居民推导，不能单独指定
type InvoiceRequest struct {
	Amount     float64    `json:"amount" binding:"required" example:"500000"`
	DueDate    *time.Time `json:"due_date"`
	ResidentID uint       `json:"resident_id" binding:"required" example:"1"`
	FeeTypeID  uint       `json:"fee_type_id" binding:"required" example:"1"`
}

// InvoiceUpdateRequest 表示账单更新请求，所有字段可选
type InvoiceUpdateRequest struct {
	Amount     *float64   `json:"amount"`
	DueDate    *time.Time `json:"due_date"`
	ResidentID *uint      `json:"resident_id"`
	FeeTypeID  *uint      `json:"fee_type_id"`
}

// HandleFeeFunc 返回一个处理费用请求的Gin处理函数
func HandleFeeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewFeeController(ctx, container)

		switch method {
		case "getFeeTypes":
			controller.GetFeeTypes()
		case "getFeeType":
			controller.GetFeeType()
		case "createFeeType":
			controller.CreateFeeType()
		case "updateFeeType":
			controller.UpdateFeeType()
		case "deleteFeeType":
			controller.DeleteFeeType()
		case "getInvoices":
			controller.GetInvoices()
		case "getInvoice":
			controller.GetInvoice()
		case "createInvoice":
			controller.CreateInvoice()
		case "updateInvoice":
			controller.UpdateInvoice()
		case "deleteInvoice":
			controller.DeleteInvoice()
		case "exportInvoices":
			controller.ExportInvoices()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetFeeTypes 获取费用类别列表
// @Summary 获取费用类别列表
// @Description 获取所有费用类别
// @Tags Fee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /fee_types [get]
func (c *FeeController) GetFeeTypes() {
	query := parsePagination(c.Ctx)

	// 获取费用服务
	feeService := c.Container.GetService("fee").(services.InterfaceFeeService)
	feeTypes, total, err := feeService.GetAllFeeTypes(query.Page, query.PageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取费用类别列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, models.NewPaginationResult(total, query, feeTypes))
}

// 2. GetFeeType 获取单个费用类别
// @Summary 获取费用类别详情
// @Description 根据ID获取费用类别
// @Tags Fee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "费用类别ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /fee_types/{id} [get]
func (c *FeeController) GetFeeType() {
	id := c.Ctx.Param("id")
	feeTypeID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的费用类别ID")
		return
	}

	feeService := c.Container.GetService("fee").(services.InterfaceFeeService)
	feeType, err := feeService.GetFeeTypeByID(uint(feeTypeID))
	if err != nil {
		failWithError(c.Ctx, err, "获取费用类别失败")
		return
	}

	response.Success(c.Ctx, feeType)
}

// 3. CreateFeeType 创建费用类别
// @Summary 创建费用类别
// @Description 创建一个新的费用类别，仅限管理人员
// @Tags Fee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param fee_type body FeeTypeRequest true "费用类别信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /fee_types [post]
func (c *FeeController) CreateFeeType() {
	var req FeeTypeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	feeType := &models.FeeType{
		Name:        req.Name,
		Description: req.Description,
	}

	feeService := c.Container.GetService("fee").(services.InterfaceFeeService)
	if err := feeService.CreateFeeType(feeType); err != nil {
		failWithError(c.Ctx, err, "创建费用类别失败")
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, feeType)
}

// 4. UpdateFeeType 更新费用类别
// @Summary 更新费用类别
// @Description 更新费用类别信息，仅限管理人员
// @Tags Fee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "费用类别ID"
// @Param fee_type body FeeTypeRequest true "费用类别信息"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /fee_types/{id} [put]
func (c *FeeController) UpdateFeeType() {
	id := c.Ctx.Param("id")
	feeTypeID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的费用类别ID")
		return
	}

	var req FeeTypeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}

	feeService := c.Container.GetService("fee").(services.InterfaceFeeService)
	feeType, err := feeService.UpdateFeeType(uint(feeTypeID), updates)
	if err != nil {
		failWithError(c.Ctx, err, "更新费用类别失败")
		return
	}

	response.Success(c.Ctx, feeType)
}

// 5. DeleteFeeType 删除费用类别
// @Summary 删除费用类别
// @Description 删除指定的费用类别，仅限管理人员
// @Tags Fee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "费用类别ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /fee_types/{id} [delete]
func (c *FeeController) DeleteFeeType() {
	id := c.Ctx.Param("id")
	feeTypeID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的费用类别ID")
		return
	}

	feeService := c.Container.GetService("fee").(services.InterfaceFeeService)
	if err := feeService.DeleteFeeType(uint(feeTypeID)); err != nil {
		failWithError(c.Ctx, err, "删除费用类别失败")
		return
	}

	response.Success(c.Ctx, nil)
}

// 6. GetInvoices 获取账单列表
// @Summary 获取账单列表
// @Description 获取账单列表，居民只能看到本人的账单
// @Tags Fee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /invoices [get]
func (c *FeeController) GetInvoices() {
	query := parsePagination(c.Ctx)

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	feeService := c.Container.GetService("fee").(services.InterfaceFeeService)
	invoices, total, err := feeService.GetAllInvoices(actor, query.Page, query.PageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取账单列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, models.NewPaginationResult(total, query, invoices))
}

// 7. GetInvoice 获取单张账单详情
// @Summary 获取账单详情
// @Description 根据ID获取账单详细信息，居民只能查看本人的
// @Tags Fee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "账单ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{id} [get]
func (c *FeeController) GetInvoice() {
	id := c.Ctx.Param("id")
	invoiceID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的账单ID")
		return
	}

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	feeService := c.Container.GetService("fee").(services.InterfaceFeeService)
	invoice, err := feeService.GetInvoiceByID(uint(invoiceID))
	if err != nil {
		failWithError(c.Ctx, err, "获取账单失败")
		return
	}

	if !perms.CanAccess(c.Container.GetDB(), actor, invoice) {
		response.Forbidden(c.Ctx)
		return
	}

	response.Success(c.Ctx, invoice)
}

// 8. CreateInvoice 创建账单
// @Summary 创建账单
// @Description 向居民开具一张账单，所属公寓由居民推导，仅限管理人员
// @Tags Fee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param invoice body InvoiceRequest true "账单信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /invoices [post]
func (c *FeeController) CreateInvoice() {
	var req InvoiceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	invoice := &models.Invoice{
		Amount:     req.Amount,
		ResidentID: req.ResidentID,
		FeeTypeID:  req.FeeTypeID,
	}
	if req.DueDate != nil {
		invoice.DueDate = *req.DueDate
	}

	feeService := c.Container.GetService("fee").(services.InterfaceFeeService)
	if err := feeService.CreateInvoice(invoice); err != nil {
		failWithError(c.Ctx, err, "创建账单失败")
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, invoice)
}

// 9. UpdateInvoice 更新账单
// @Summary 更新账单
// @Description 更新账单信息，居民变更时重新推导所属公寓，仅限管理人员
// @Tags Fee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "账单ID"
// @Param invoice body InvoiceUpdateRequest true "账单信息"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{id} [put]
func (c *FeeController) UpdateInvoice() {
	id := c.Ctx.Param("id")
	invoiceID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的账单ID")
		return
	}

	var req InvoiceUpdateRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.DueDate != nil {
		updates["due_date"] = *req.DueDate
	}
	if req.ResidentID != nil {
		updates["resident_id"] = *req.ResidentID
	}
	if req.FeeTypeID != nil {
		updates["fee_type_id"] = *req.FeeTypeID
	}

	feeService := c.Container.GetService("fee").(services.InterfaceFeeService)
	invoice, err := feeService.UpdateInvoice(uint(invoiceID), updates)
	if err != nil {
		failWithError(c.Ctx, err, "更新账单失败")
		return
	}

	response.Success(c.Ctx, invoice)
}

// 10. DeleteInvoice 删除账单
// @Summary 删除账单
// @Description 删除指定的账单及其缴费记录，仅限管理人员
// @Tags Fee
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "账单ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{id} [delete]
func (c *FeeController) DeleteInvoice() {
	id := c.Ctx.Param("id")
	invoiceID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的账单ID")
		return
	}

	feeService := c.Container.GetService("fee").(services.InterfaceFeeService)
	if err := feeService.DeleteInvoice(uint(invoiceID)); err != nil {
		failWithError(c.Ctx, err, "删除账单失败")
		return
	}

	response.Success(c.Ctx, nil)
}

// 11. ExportInvoices 导出账单报表
// @Summary 导出账单报表
// @Description 将所有账单导出为Excel文件下载，仅限管理人员
// @Tags Fee
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 500 {object} ErrorResponse
// @Router /invoices/export [get]
func (c *FeeController) ExportInvoices() {
	feeService := c.Container.GetService("fee").(services.InterfaceFeeService)
	file, err := feeService.ExportInvoices()
	if err != nil {
		failWithError(c.Ctx, err, "导出账单失败")
		return
	}

	filename := fmt.Sprintf("invoices_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Ctx.Header("Content-Disposition", "attachment; filename="+filename)
	c.Ctx.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := file.Write(c.Ctx.Writer); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUnknown, "写入导出文件失败: "+err.Error(), nil)
		return
	}
}
