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

// InterfaceSurveyController 定义问卷控制器接口
type InterfaceSurveyController interface {
	GetSurveys()
	GetSurvey()
	CreateSurvey()
	DeleteSurvey()
	GetSurveyResponses()
	GetAllSurveyResponses()
	GetSurveyResponse()
	CreateSurveyResponse()
}

// SurveyController 处理问卷相关的请求
type SurveyController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSurveyController 创建一个新的问卷控制器
func NewSurveyController(ctx *gin.Context, container *container.ServiceContainer) *SurveyController {
	return &SurveyController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleSurveyFunc 返回一个处理问卷请求的Gin处理函数
func HandleSurveyFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSurveyController(ctx, container)

		switch method {
		case "getSurveys":
			controller.GetSurveys()
		case "getSurvey":
			controller.GetSurvey()
		case "createSurvey":
			controller.CreateSurvey()
		case "deleteSurvey":
			controller.DeleteSurvey()
		case "getSurveyResponses":
			controller.GetSurveyResponses()
		case "getAllSurveyResponses":
			controller.GetAllSurveyResponses()
		case "getSurveyResponse":
			controller.GetSurveyResponse()
		case "createSurveyResponse":
			controller.CreateSurveyResponse()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetSurveys 获取问卷列表
// @Summary 获取问卷列表
// @Description 获取所有问卷的列表
// @Tags Survey
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /surveys [get]
func (c *SurveyController) GetSurveys() {
	query := parsePagination(c.Ctx)

	// 获取问卷服务
	surveyService := c.Container.GetService("survey").(services.InterfaceSurveyService)
	surveys, total, err := surveyService.GetAllSurveys(query.Page, query.PageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取问卷列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, models.NewPaginationResult(total, query, surveys))
}

// 2. GetSurvey 获取问卷详情
// @Summary 获取问卷详情
// @Description 根据ID获取问卷，嵌套返回问题和选项
// @Tags Survey
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "问卷ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /surveys/{id} [get]
func (c *SurveyController) GetSurvey() {
	id := c.Ctx.Param("id")
	surveyID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的问卷ID")
		return
	}

	// 获取问卷服务
	surveyService := c.Container.GetService("survey").(services.InterfaceSurveyService)
	survey, err := surveyService.GetSurveyByID(uint(surveyID))
	if err != nil {
		failWithError(c.Ctx, err, "获取问卷失败")
		return
	}

	response.Success(c.Ctx, survey)
}

// 3. CreateSurvey 创建问卷
// @Summary 创建问卷
// @Description 创建一份问卷，问题和选项随问卷一次性提交，仅限管理人员
// @Tags Survey
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param survey body services.SurveyInput true "问卷信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /surveys [post]
func (c *SurveyController) CreateSurvey() {
	var input services.SurveyInput
	if err := c.Ctx.ShouldBindJSON(&input); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	// 获取问卷服务
	surveyService := c.Container.GetService("survey").(services.InterfaceSurveyService)
	survey, err := surveyService.CreateSurvey(&input)
	if err != nil {
		failWithError(c.Ctx, err, "创建问卷失败")
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, survey)
}

// 4. DeleteSurvey 删除问卷
// @Summary 删除问卷
// @Description 删除指定的问卷及其问题、选项和答卷，仅限管理人员
// @Tags Survey
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "问卷ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /surveys/{id} [delete]
func (c *SurveyController) DeleteSurvey() {
	id := c.Ctx.Param("id")
	surveyID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的问卷ID")
		return
	}

	// 获取问卷服务
	surveyService := c.Container.GetService("survey").(services.InterfaceSurveyService)
	if err := surveyService.DeleteSurvey(uint(surveyID)); err != nil {
		failWithError(c.Ctx, err, "删除问卷失败")
		return
	}

	response.Success(c.Ctx, nil)
}

// 5. GetSurveyResponses 获取指定问卷的答卷
// @Summary 获取问卷的答卷
// @Description 获取指定问卷收到的所有答卷，仅限管理人员
// @Tags Survey
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "问卷ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /surveys/{id}/responses [get]
func (c *SurveyController) GetSurveyResponses() {
	id := c.Ctx.Param("id")
	surveyID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的问卷ID")
		return
	}

	// 获取问卷服务
	surveyService := c.Container.GetService("survey").(services.InterfaceSurveyService)
	responses, err := surveyService.GetSurveyResponses(uint(surveyID))
	if err != nil {
		failWithError(c.Ctx, err, "获取问卷答卷失败")
		return
	}

	response.Success(c.Ctx, responses)
}

// 6. GetAllSurveyResponses 获取答卷列表
// @Summary 获取答卷列表
// @Description 获取答卷列表，普通账号只能看到本人提交的答卷
// @Tags Survey
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认为1"
// @Param page_size query int false "每页条数，默认为10"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /survey_responses [get]
func (c *SurveyController) GetAllSurveyResponses() {
	query := parsePagination(c.Ctx)

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	// 获取问卷服务
	surveyService := c.Container.GetService("survey").(services.InterfaceSurveyService)
	responses, total, err := surveyService.GetAllSurveyResponses(actor, query.Page, query.PageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取答卷列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, models.NewPaginationResult(total, query, responses))
}

// 7. GetSurveyResponse 获取答卷详情
// @Summary 获取答卷详情
// @Description 根据ID获取答卷，答案附带问题和选项；普通账号只能查看本人提交的
// @Tags Survey
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "答卷ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /survey_responses/{id} [get]
func (c *SurveyController) GetSurveyResponse() {
	id := c.Ctx.Param("id")
	responseID, err := strconv.Atoi(id)
	if err != nil {
		response.ParamError(c.Ctx, "无效的答卷ID")
		return
	}

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	// 获取问卷服务
	surveyService := c.Container.GetService("survey").(services.InterfaceSurveyService)
	surveyResponse, err := surveyService.GetSurveyResponseByID(uint(responseID))
	if err != nil {
		failWithError(c.Ctx, err, "获取答卷失败")
		return
	}

	if !perms.CanAccess(c.Container.GetDB(), actor, surveyResponse) {
		response.Forbidden(c.Ctx)
		return
	}

	response.Success(c.Ctx, surveyResponse)
}

// 8. CreateSurveyResponse 提交答卷
// @Summary 提交答卷
// @Description 以当前账号提交一份答卷，任一选项无效时整份答卷不保存
// @Tags Survey
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param response body services.SurveyResponseInput true "答卷信息"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /survey_responses [post]
func (c *SurveyController) CreateSurveyResponse() {
	var input services.SurveyResponseInput
	if err := c.Ctx.ShouldBindJSON(&input); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "无效的请求参数: "+err.Error(), nil)
		return
	}

	actor, err := currentActor(c.Ctx, c.Container)
	if err != nil {
		response.Unauthorized(c.Ctx)
		return
	}

	// 获取问卷服务
	surveyService := c.Container.GetService("survey").(services.InterfaceSurveyService)
	surveyResponse, err := surveyService.CreateSurveyResponse(actor, &input)
	if err != nil {
		failWithError(c.Ctx, err, "提交答卷失败")
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, surveyResponse)
}
