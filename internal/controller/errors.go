package controller

import (
	"errors"
	"ielts_tracker_backend/internal/planner"
	"ielts_tracker_backend/internal/util"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var notFoundErrors = []error{
	util.ErrUserNotFound,
	util.ErrTestNotFound,
	util.ErrWeakAreaNotFound,
	util.ErrSessionNotFound,
	util.ErrGoalNotFound,
	util.ErrResourceNotFound,
	util.ErrPlanNotFound,
	util.ErrPlanItemNotFound,
}

var conflictErrors = []error{
	util.ErrEmailRegistered,
	util.ErrUsernameTaken,
	util.ErrScoreExists,
	util.ErrWeakAreaExists,
	util.ErrSessionActive,
	util.ErrSessionEnded,
	util.ErrResourceCollected,
	util.ErrPlanOverlap,
}

var badRequestErrors = []error{
	util.ErrWeakPassword,
	util.ErrInvalidScore,
	util.ErrInvalidPriority,
	util.ErrInvalidDate,
	util.ErrInvalidSection,
	util.ErrInvalidRating,
	util.ErrInvalidDateRange,
	util.ErrInvalidPlanStatus,
	util.ErrInvalidPeriod,
	util.ErrInvalidResourceType,
	util.ErrInvalidFileType,
	util.ErrFileTooLarge,
	util.ErrTestDateNotSet,
	planner.ErrNoTimeRemaining,
}

func matches(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// respondError 业务错误映射为 HTTP 状态码，其余按 500 记录日志
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Error(ctx, http.StatusUnauthorized, err.Error())
	case matches(err, notFoundErrors):
		util.NotFoundMessage(ctx, err.Error())
	case matches(err, conflictErrors):
		util.Conflict(ctx, err.Error())
	case matches(err, badRequestErrors):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// pathID 解析路径参数，非法时直接返回 400
func pathID(ctx *gin.Context, name string) (uint, bool) {
	id := util.MustParseUint(ctx.Param(name))
	if id == 0 {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return id, true
}

// currentUserID 未登录时返回 401
func currentUserID(ctx *gin.Context) (uint, bool) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return 0, false
	}
	return user.UserID, true
}

// queryDate 可选的 YYYY-MM-DD 查询参数，为空时返回零值
func queryDate(ctx *gin.Context, key string) (time.Time, bool) {
	raw := ctx.Query(key)
	if raw == "" {
		return time.Time{}, true
	}
	t, err := util.ParseDate(raw)
	if err != nil {
		util.BadRequest(ctx, key+": "+err.Error())
		return time.Time{}, false
	}
	return t, true
}
