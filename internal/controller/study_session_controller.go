package controller

import (
	"ielts_tracker_backend/internal/service"
	"ielts_tracker_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

type StudySessionController struct {
	SessionService *service.StudySessionService
}

func NewStudySessionController(sessionService *service.StudySessionService) *StudySessionController {
	return &StudySessionController{SessionService: sessionService}
}

// @Summary 开始学习
// @Description 同一时间只能有一条进行中的记录
// @Tags 学习记录
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.StartSessionRequest false "学习内容"
// @Success 201 {object} util.Response{data=model.StudySession}
// @Failure 409 {object} util.Response "已有进行中的学习"
// @Router /api/study-sessions/start [post]
func (c *StudySessionController) Start(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req service.StartSessionRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}

	session, err := c.SessionService.Start(userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, session)
}

// @Summary 结束学习
// @Description 时长按整分钟计算
// @Tags 学习记录
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "记录ID"
// @Param body body service.EndSessionRequest false "备注"
// @Success 200 {object} util.Response{data=model.StudySession}
// @Router /api/study-sessions/{id}/end [put]
func (c *StudySessionController) End(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.EndSessionRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
	}

	session, err := c.SessionService.End(userID, id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, session)
}

// @Summary 补录学习记录
// @Tags 学习记录
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ManualSessionRequest true "起止时间 2006-01-02 15:04:05"
// @Success 201 {object} util.Response{data=model.StudySession}
// @Router /api/study-sessions [post]
func (c *StudySessionController) AddManual(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req service.ManualSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.SessionService.AddManual(userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, session)
}

// @Summary 学习记录列表
// @Description 传 sectionId 时按部分过滤，传 from/to 时按日期区间过滤，否则分页
// @Tags 学习记录
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Param sectionId query int false "部分ID"
// @Param from query string false "开始日期 YYYY-MM-DD"
// @Param to query string false "结束日期 YYYY-MM-DD"
// @Success 200 {object} util.Response
// @Router /api/study-sessions [get]
func (c *StudySessionController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	if sectionID := util.MustParseUint(ctx.Query("sectionId")); sectionID != 0 {
		sessions, err := c.SessionService.ListBySection(userID, sectionID)
		if err != nil {
			respondError(ctx, err)
			return
		}
		util.Success(ctx, sessions)
		return
	}

	if ctx.Query("from") != "" || ctx.Query("to") != "" {
		from, ok := queryDate(ctx, "from")
		if !ok {
			return
		}
		to, ok := queryDate(ctx, "to")
		if !ok {
			return
		}
		if to.IsZero() {
			to = util.Today(time.Now().UTC())
		}
		sessions, err := c.SessionService.Between(userID, from, to)
		if err != nil {
			respondError(ctx, err)
			return
		}
		util.Success(ctx, sessions)
		return
	}

	page := util.ParseIntDefault(ctx.Query("page"), 1)
	limit := util.ParseIntDefault(ctx.Query("limit"), 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	sessions, total, err := c.SessionService.List(userID, page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, util.NewPage(sessions, total, page, limit))
}

// @Summary 进行中的学习
// @Description 没有时 data 为 null
// @Tags 学习记录
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.StudySession}
// @Router /api/study-sessions/active [get]
func (c *StudySessionController) Active(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	session, err := c.SessionService.Active(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, session)
}

// @Summary 学习记录详情
// @Tags 学习记录
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "记录ID"
// @Success 200 {object} util.Response{data=model.StudySession}
// @Router /api/study-sessions/{id} [get]
func (c *StudySessionController) Get(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	session, err := c.SessionService.Get(userID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, session)
}

// @Summary 删除学习记录
// @Tags 学习记录
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "记录ID"
// @Success 200 {object} util.Response
// @Router /api/study-sessions/{id} [delete]
func (c *StudySessionController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.SessionService.Delete(userID, id); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary 各部分学习时长
// @Tags 学习记录
// @Produce json
// @Security ApiKeyAuth
// @Param from query string false "开始日期 YYYY-MM-DD"
// @Param to query string false "结束日期 YYYY-MM-DD"
// @Success 200 {object} util.Response{data=[]model.SectionMinutes}
// @Router /api/study-sessions/time-per-section [get]
func (c *StudySessionController) TimePerSection(ctx *gin.Context) {
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

	rows, err := c.SessionService.TimePerSection(userID, from, to)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, rows)
}

// @Summary 学习总时长
// @Tags 学习记录
// @Produce json
// @Security ApiKeyAuth
// @Param period query string false "统计周期" Enums(day, week, month, all)
// @Success 200 {object} util.Response{data=service.StudyTotal}
// @Router /api/study-sessions/total [get]
func (c *StudySessionController) TotalTime(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	total, err := c.SessionService.TotalTime(userID, ctx.DefaultQuery("period", util.PeriodAll))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, total)
}
