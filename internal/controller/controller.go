package controller

import (
	"errors"

	"gradebook_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// DefaultOwner 未指定 owner 时使用的本地账本，对应单机模式
const DefaultOwner = "local"

// ownerID 从 X-Owner 头或 owner 查询参数取当前账本标识
func ownerID(ctx *gin.Context) string {
	if owner := ctx.GetHeader("X-Owner"); owner != "" {
		return owner
	}
	if owner := ctx.Query("owner"); owner != "" {
		return owner
	}
	return DefaultOwner
}

// fail 把业务错误映射为统一响应
func fail(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrNameRequired),
		errors.Is(err, util.ErrMissingTitleColumn):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrStudentNotFound),
		errors.Is(err, util.ErrSubjectNotFound),
		errors.Is(err, util.ErrAssignmentNotFound):
		util.NotFound(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
