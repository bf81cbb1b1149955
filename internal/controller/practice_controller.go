package controller

import (
	"ielts_tracker_backend/internal/service"
	"ielts_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PracticeController struct {
	PracticeService *service.PracticeService
}

func NewPracticeController(practiceService *service.PracticeService) *PracticeController {
	return &PracticeController{PracticeService: practiceService}
}

// @Summary 模考列表
// @Description 按考试日期倒序分页
// @Tags 模考成绩
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(10)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/practice-tests [get]
func (c *PracticeController) ListTests(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	page := util.ParseIntDefault(ctx.Query("page"), 1)
	limit := util.ParseIntDefault(ctx.Query("limit"), 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	tests, total, err := c.PracticeService.ListTests(userID, page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, util.NewPage(tests, total, page, limit))
}

// @Summary 新建模考
// @Description 可同时录入各部分成绩，分数 0-9，步长 0.5
// @Tags 模考成绩
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateTestRequest true "模考信息"
// @Success 201 {object} util.Response{data=service.TestDetail}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response "同一部分重复录入"
// @Router /api/practice-tests [post]
func (c *PracticeController) CreateTest(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req service.CreateTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	detail, err := c.PracticeService.CreateTest(userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, detail)
}

// @Summary 模考详情
// @Tags 模考成绩
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "模考ID"
// @Success 200 {object} util.Response{data=service.TestDetail}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/practice-tests/{id} [get]
func (c *PracticeController) GetTest(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	detail, err := c.PracticeService.GetTest(userID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}

// @Summary 修改模考
// @Tags 模考成绩
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "模考ID"
// @Param body body service.UpdateTestRequest true "模考信息"
// @Success 200 {object} util.Response{data=service.TestDetail}
// @Router /api/practice-tests/{id} [put]
func (c *PracticeController) UpdateTest(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.UpdateTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	detail, err := c.PracticeService.UpdateTest(userID, id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}

// @Summary 删除模考
// @Description 同时删除全部成绩
// @Tags 模考成绩
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "模考ID"
// @Success 200 {object} util.Response
// @Router /api/practice-tests/{id} [delete]
func (c *PracticeController) DeleteTest(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.PracticeService.DeleteTest(userID, id); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary 录入单项成绩
// @Tags 模考成绩
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "模考ID"
// @Param body body service.ScoreInput true "成绩"
// @Success 201 {object} util.Response{data=model.TestScore}
// @Failure 409 {object} util.Response "该部分已有成绩"
// @Router /api/practice-tests/{id}/scores [post]
func (c *PracticeController) AddScore(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.ScoreInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	score, err := c.PracticeService.AddScore(userID, id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, score)
}

// @Summary 修改单项成绩
// @Tags 模考成绩
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "成绩ID"
// @Param body body service.UpdateScoreRequest true "成绩"
// @Success 200 {object} util.Response{data=model.TestScore}
// @Router /api/scores/{id} [put]
func (c *PracticeController) UpdateScore(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.UpdateScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	score, err := c.PracticeService.UpdateScore(userID, id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, score)
}

// @Summary 删除单项成绩
// @Tags 模考成绩
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "成绩ID"
// @Success 200 {object} util.Response
// @Router /api/scores/{id} [delete]
func (c *PracticeController) DeleteScore(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.PracticeService.DeleteScore(userID, id); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary 各部分最新成绩
// @Tags 模考成绩
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.LatestScore}
// @Router /api/scores/latest [get]
func (c *PracticeController) LatestScores(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	scores, err := c.PracticeService.LatestScores(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, scores)
}

// @Summary 某部分历史成绩
// @Tags 模考成绩
// @Produce json
// @Security ApiKeyAuth
// @Param sectionId path int true "部分ID"
// @Param limit query int false "条数，0 表示全部"
// @Success 200 {object} util.Response{data=[]model.SectionScorePoint}
// @Router /api/scores/history/{sectionId} [get]
func (c *PracticeController) SectionHistory(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	sectionID, ok := pathID(ctx, "sectionId")
	if !ok {
		return
	}

	points, err := c.PracticeService.SectionHistory(userID, sectionID, util.ParseIntDefault(ctx.Query("limit"), 0))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, points)
}

// @Summary 薄弱部分
// @Description 按平均分从低到高
// @Tags 模考成绩
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "条数" default(2)
// @Success 200 {object} util.Response{data=[]model.SectionAverage}
// @Router /api/scores/weak-sections [get]
func (c *PracticeController) WeakSections(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	rows, err := c.PracticeService.WeakSections(userID, util.ParseIntDefault(ctx.Query("limit"), 2))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, rows)
}
