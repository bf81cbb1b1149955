package controller

import (
	"ielts_tracker_backend/internal/service"
	"ielts_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	GoalService *service.GoalService
}

func NewGoalController(goalService *service.GoalService) *GoalController {
	return &GoalController{GoalService: goalService}
}

type AchievedRequest struct {
	Achieved *bool `json:"achieved" binding:"required"`
}

// @Summary 目标列表
// @Description 按目标日期升序
// @Tags 目标
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.StudyGoal}
// @Router /api/goals [get]
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	goals, err := c.GoalService.List(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, goals)
}

// @Summary 新建目标
// @Description sectionId 为空表示总分目标
// @Tags 目标
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.GoalRequest true "目标"
// @Success 201 {object} util.Response{data=model.StudyGoal}
// @Router /api/goals [post]
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req service.GoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.Create(userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, goal)
}

// @Summary 目标详情
// @Tags 目标
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "目标ID"
// @Success 200 {object} util.Response{data=model.StudyGoal}
// @Router /api/goals/{id} [get]
func (c *GoalController) Get(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	goal, err := c.GoalService.Get(userID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, goal)
}

// @Summary 修改目标
// @Tags 目标
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "目标ID"
// @Param body body service.GoalRequest true "目标"
// @Success 200 {object} util.Response{data=model.StudyGoal}
// @Router /api/goals/{id} [put]
func (c *GoalController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.GoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.GoalService.Update(userID, id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, goal)
}

// @Summary 删除目标
// @Tags 目标
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "目标ID"
// @Success 200 {object} util.Response
// @Router /api/goals/{id} [delete]
func (c *GoalController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.GoalService.Delete(userID, id); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary 标记目标达成状态
// @Tags 目标
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "目标ID"
// @Param body body AchievedRequest true "是否达成"
// @Success 200 {object} util.Response
// @Router /api/goals/{id}/achieved [patch]
func (c *GoalController) SetAchieved(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req AchievedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.GoalService.SetAchieved(userID, id, *req.Achieved); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"achieved": *req.Achieved})
}

// @Summary 即将到期的目标
// @Description 未达成且在 days 天内到期，缺省使用配置的天数
// @Tags 目标
// @Produce json
// @Security ApiKeyAuth
// @Param days query int false "天数"
// @Success 200 {object} util.Response{data=[]model.StudyGoal}
// @Router /api/goals/upcoming [get]
func (c *GoalController) Upcoming(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	goals, err := c.GoalService.Upcoming(userID, util.ParseIntDefault(ctx.Query("days"), 0))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, goals)
}

// @Summary 目标进度
// @Description 当前平均分与目标分的差距及剩余天数
// @Tags 目标
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.GoalProgress}
// @Router /api/goals/progress [get]
func (c *GoalController) Progress(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	progress, err := c.GoalService.Progress(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// @Summary 检查目标达成
// @Description 平均分达到目标的目标会被标记为已达成
// @Tags 目标
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.StudyGoal}
// @Router /api/goals/check [post]
func (c *GoalController) CheckAchievements(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	achieved, err := c.GoalService.CheckAchievements(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"achieved": achieved, "count": len(achieved)})
}
