package controller

import (
	"ielts_tracker_backend/internal/service"
	"ielts_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// @Summary 首页概览
// @Description 今日任务、最新成绩、距考试天数等；refresh=true 时跳过缓存
// @Tags 仪表盘
// @Produce json
// @Security ApiKeyAuth
// @Param refresh query bool false "是否刷新缓存"
// @Success 200 {object} util.Response{data=service.Dashboard}
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	if ctx.Query("refresh") == "true" {
		c.DashboardService.InvalidateDashboard(ctx.Request.Context(), userID)
	}

	dashboard, err := c.DashboardService.GetDashboard(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, dashboard)
}

// @Summary 学习进度
// @Tags 仪表盘
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.Progress}
// @Router /api/dashboard/progress [get]
func (c *DashboardController) GetProgress(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	progress, err := c.DashboardService.GetProgress(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// @Summary 学习分析
// @Description 不传日期时统计最近三个月
// @Tags 仪表盘
// @Produce json
// @Security ApiKeyAuth
// @Param from query string false "开始日期 YYYY-MM-DD"
// @Param to query string false "结束日期 YYYY-MM-DD"
// @Success 200 {object} util.Response{data=service.Analytics}
// @Router /api/dashboard/analytics [get]
func (c *DashboardController) GetAnalytics(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	from, ok := queryDate(ctx, "from")
	if !ok {
		return
	}
	to, ok := queryDate(ctx, "to")
	if !ok {
		return
	}

	analytics, err := c.DashboardService.GetAnalytics(userID, from, to)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, analytics)
}

// @Summary 备考汇总
// @Description 需要先设置考试日期
// @Tags 仪表盘
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.TestPrepSummary}
// @Failure 400 {object} util.Response "未设置考试日期"
// @Router /api/dashboard/test-prep [get]
func (c *DashboardController) GetTestPrepSummary(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	summary, err := c.DashboardService.GetTestPrepSummary(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, summary)
}
