package controllers

import (
	"errors"
	"strings"

	"github.com/Ngan0209/QuanLyChungCu/internal/domain/models"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/perms"
	"github.com/Ngan0209/QuanLyChungCu/internal/domain/services/container"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/code"
	"github.com/Ngan0209/QuanLyChungCu/internal/error/response"
	"github.com/Ngan0209/QuanLyChungCu/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 表示错误响应
type ErrorResponse struct {
	Code    int         `json:"code" example:"401"`
	Message string      `json:"message" example:"Invalid username or password"`
	Data    interface{} `json:"data"`
}

// currentActor 从请求上下文解析当前调用者。
// JWT中间件写入的userID来自MapClaims，数值型字段统一是float64
func currentActor(ctx *gin.Context, container *container.ServiceContainer) (*perms.Actor, error) {
	raw, exists := ctx.Get("userID")
	if !exists {
		return nil, errors.New("未认证的请求")
	}

	var userID uint
	switch v := raw.(type) {
	case float64:
		userID = uint(v)
	case uint:
		userID = v
	case int:
		userID = uint(v)
	default:
		return nil, errors.New("无效的用户标识")
	}

	return perms.ResolveActor(container.GetDB(), userID)
}

// resolveUploadURL 将上传文件的相对路径拼接为绝对URL，路径为空时返回空字符串
func resolveUploadURL(cfg *config.Config, relPath string) string {
	if relPath == "" {
		return ""
	}
	if strings.HasPrefix(relPath, "http://") || strings.HasPrefix(relPath, "https://") {
		return relPath
	}
	return strings.TrimRight(cfg.BaseURL, "/") + "/" + strings.TrimLeft(relPath, "/")
}

// parsePagination 解析列表接口的分页参数
func parsePagination(ctx *gin.Context) models.PaginationQuery {
	var query models.PaginationQuery
	_ = ctx.ShouldBindQuery(&query)
	query.Normalize()
	return query
}

// failWithError 将服务层错误映射为HTTP响应，
// 业务错误携带自己的错误码，其余归为数据库错误
func failWithError(ctx *gin.Context, err error, fallback string) {
	var coded *code.CodedError
	if errors.As(err, &coded) {
		if coded.Message != "" {
			response.FailWithMessage(ctx, coded.Code, coded.Message, nil)
		} else {
			response.Fail(ctx, coded.Code, nil)
		}
		return
	}
	response.FailWithMessage(ctx, code.ErrDatabase, fallback+": "+err.Error(), nil)
}
