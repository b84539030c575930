package controllers

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/perms"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/services"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/services/container"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/response"
	"github.com/Ngan0209/QuanLyChungCu/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InterfacePaymentController 定义缴费控制器接口
type InterfacePaymentController interface {
	GetPayments()
	GetPayment()
	CreatePayment()
	ReviewPayment()
}

// PaymentController 处理缴费相关的请求
type PaymentController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPaymentController 创建一个新的缴费控制器
func NewPaymentController(ctx *gin.Context, container *container.ServiceContainer) *PaymentController {
	return &PaymentController{
		Ctx:       ctx,
		Container: container,
	}
}

// PaymentReviewRequest 表示审核缴费请求
type PaymentReviewRequest struct {
	Status string `json:"status" binding:"required" example:"approved"` // approved, rejected
}

// HandlePaymentFunc 返回一个处理缴费请求的Gin处理函数
func HandlePaymentFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPaymentController(ctx, container)

		switch method {
		case "getPayments":
			controller.GetPayments()
		case "getPayment":
			controller.GetPayment()
		case "createPayment":
			controller.CreatePayment()
		case "reviewPayment":
			controller.ReviewPayment()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetPayments 获取缴费记录列表
// @Summary 获取缴费记录列表
// @Description 获取缴费记录列表，居民只能看到本人的缴费记录
// @Tags Payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /payments [get]
func (c *PaymentController) GetPayments() {
	query := parsePagination(c.Ctx)

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	// 获取缴费服务
	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payments, total, err := paymentService.GetAllPayments(actor, query.Page, query.PageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取缴费记录列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, models.NewPaginationResult(total, query, payments))
}

// 2. GetPayment 获取单条缴费记录详情
// @Summary 获取缴费记录详情
// @Description 根据ID获取缴费记录，居民只能查看本人的
// @Tags Payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "缴费记录ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /payments/{id} [get]
func (c *PaymentController) GetPayment() {
	id := c.Ctx.Param("id")
	paymentID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的缴费记录ID")
		return
	}

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	// 获取缴费服务
	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payment, err := paymentService.GetPaymentByID(uint(paymentID))
	if err != nil {
		failWithError(c.Ctx, err, "获取缴费记录失败")
		return
	}

	if !perms.CanAccess(c.Container.GetDB(), actor, payment) {
		response.Forbidden(c.Ctx)
		return
	}

	// 凭证图片在详情中解析为绝对URL
	cfg := c.Container.GetService("config").(*config.Config)
	payment.ProofImage = resolveUploadURL(cfg, payment.ProofImage)

	response.Success(c.Ctx, payment)
}

// 3. CreatePayment 提交缴费
// @Summary 提交缴费
// @Description 居民针对本人的未缴账单提交缴费，可附带缴费凭证图片（multipart表单）
// @Tags Payment
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param invoice_id formData int true "账单ID"
// @Param method formData string true "缴费方式：momo或vnpay"
// @Param proof_image formData file false "缴费凭证图片"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /payments [post]
func (c *PaymentController) CreatePayment() {
	invoiceID, err := strconv.Atoi(c.Ctx.PostForm("invoice_id"))
	if err != nil || invoiceID <= 0 {
		response.ParamError(c.Ctx, "无效的账单ID")
		return
	}
	method := c.Ctx.PostForm("method")
	if method == "" {
		response.ParamError(c.Ctx, "缴费方式不能为空")
		return
	}

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	// 保存缴费凭证图片，文件名使用UUID避免冲突
	var proofImage string
	if file, err := c.Ctx.FormFile("proof_image"); err == nil && file != nil {
		cfg := c.Container.GetService("config").(*config.Config)
		filename := uuid.New().String() + filepath.Ext(file.Filename)
		relPath := filepath.Join("payments", filename)
		dst := filepath.Join(cfg.UploadDir, relPath)
		if err := c.Ctx.SaveUploadedFile(file, dst); err != nil {
			response.FailWithMessage(c.Ctx, code.ErrUnknown, "保存缴费凭证失败: "+err.Error(), nil)
			return
		}
		proofImage = relPath
	}

	// 获取缴费服务
	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payment, err := paymentService.CreatePayment(actor, uint(invoiceID), method, proofImage)
	if err != nil {
		failWithError(c.Ctx, err, "提交缴费失败")
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, payment)
}

// 4. ReviewPayment 审核缴费
// @Summary 审核缴费
// @Description 管理人员审核缴费记录，通过时对应账单标记为已缴清
// @Tags Payment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "缴费记录ID"
// @Param review body PaymentReviewRequest true "审核结果"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /payments/{id}/review [put]
func (c *PaymentController) ReviewPayment() {
	id := c.Ctx.Param("id")
	paymentID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的缴费记录ID")
		return
	}

	var req PaymentReviewRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	// 获取缴费服务
	paymentService := c.Container.GetService("payment").(services.InterfacePaymentService)
	payment, err := paymentService.ReviewPayment(actor.UserID, uint(paymentID), req.Status)
	if err != nil {
		failWithError(c.Ctx, err, "审核缴费失败")
		return
	}

	response.Success(c.Ctx, payment)
}
