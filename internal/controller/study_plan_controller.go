package controller

import (
	"ielts_tracker_backend/internal/planner"
	"ielts_tracker_backend/internal/service"
	"ielts_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudyPlanController struct {
	PlanService *service.StudyPlanService
}

func NewStudyPlanController(planService *service.StudyPlanService) *StudyPlanController {
	return &StudyPlanController{PlanService: planService}
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CompletedRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

type RescheduleRequest struct {
	ScheduledDate string `json:"scheduledDate" binding:"required"`
}

// PlanPreview 生成计划的预览，不落库
type PlanPreview struct {
	Name       string            `json:"name"`
	StartDate  string            `json:"startDate"`
	EndDate    string            `json:"endDate"`
	StudyDays  int               `json:"studyDays"`
	Allocation []SectionDays     `json:"allocation"`
	Items      []PreviewPlanItem `json:"items"`
}

type SectionDays struct {
	SectionID uint `json:"sectionId"`
	Days      int  `json:"days"`
}

type PreviewPlanItem struct {
	SectionID       *uint  `json:"sectionId"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	ScheduledDate   string `json:"scheduledDate"`
	DurationMinutes int    `json:"durationMinutes"`
}

func newPlanPreview(s *planner.Schedule) PlanPreview {
	p := PlanPreview{
		Name:       s.Plan.Name,
		StartDate:  s.Plan.StartDate.Format(util.DateFormat),
		EndDate:    s.Plan.EndDate.Format(util.DateFormat),
		StudyDays:  s.Distribution.Total(),
		Allocation: make([]SectionDays, 0, len(s.Distribution)),
		Items:      make([]PreviewPlanItem, 0, len(s.Items)),
	}
	for _, a := range s.Distribution {
		p.Allocation = append(p.Allocation, SectionDays{SectionID: a.SectionID, Days: a.Days})
	}
	for _, item := range s.Items {
		p.Items = append(p.Items, PreviewPlanItem{
			SectionID:       item.SectionID,
			Title:           item.Title,
			Description:     item.Description,
			ScheduledDate:   item.ScheduledDate.Format(util.DateFormat),
			DurationMinutes: item.DurationMinutes,
		})
	}
	return p
}

// @Summary 生成学习计划
// @Description 根据最新成绩和弱项生成到考试日期为止的计划，考试日期必须晚于今天
// @Tags 学习计划
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.GeneratePlanRequest true "考试日期 YYYY-MM-DD 与计划名称"
// @Success 201 {object} util.Response{data=model.StudyPlan}
// @Failure 400 {object} util.Response "考试日期无效"
// @Router /api/study-plans/generate [post]
func (c *StudyPlanController) Generate(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req service.GeneratePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	plan, err := c.PlanService.Generate(ctx.Request.Context(), userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, plan)
}

// @Summary 预览学习计划
// @Description 与生成相同的算法，但不保存
// @Tags 学习计划
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.GeneratePlanRequest true "考试日期 YYYY-MM-DD 与计划名称"
// @Success 200 {object} util.Response{data=PlanPreview}
// @Router /api/study-plans/preview [post]
func (c *StudyPlanController) Preview(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req service.GeneratePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	schedule, err := c.PlanService.Preview(ctx.Request.Context(), userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, newPlanPreview(schedule))
}

// @Summary 学习计划列表
// @Tags 学习计划
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "计划状态" Enums(active, completed, cancelled)
// @Success 200 {object} util.Response{data=[]service.PlanSummary}
// @Router /api/study-plans [get]
func (c *StudyPlanController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	plans, err := c.PlanService.List(userID, ctx.Query("status"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, plans)
}

// @Summary 手动新建计划
// @Description 与进行中的计划日期重叠时拒绝
// @Tags 学习计划
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.PlanRequest true "计划信息"
// @Success 201 {object} util.Response{data=model.StudyPlan}
// @Failure 409 {object} util.Response "日期重叠"
// @Router /api/study-plans [post]
func (c *StudyPlanController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req service.PlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	plan, err := c.PlanService.Create(userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, plan)
}

// @Summary 计划详情
// @Description 包含全部任务、完成百分比和各部分时长
// @Tags 学习计划
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "计划ID"
// @Success 200 {object} util.Response{data=service.PlanDetail}
// @Router /api/study-plans/{id} [get]
func (c *StudyPlanController) Get(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	detail, err := c.PlanService.Get(userID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}

// @Summary 修改计划
// @Tags 学习计划
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "计划ID"
// @Param body body service.PlanRequest true "计划信息"
// @Success 200 {object} util.Response{data=model.StudyPlan}
// @Router /api/study-plans/{id} [put]
func (c *StudyPlanController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.PlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	plan, err := c.PlanService.Update(userID, id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, plan)
}

// @Summary 删除计划
// @Description 同时删除全部任务
// @Tags 学习计划
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "计划ID"
// @Success 200 {object} util.Response
// @Router /api/study-plans/{id} [delete]
func (c *StudyPlanController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.PlanService.Delete(userID, id); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary 修改计划状态
// @Tags 学习计划
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "计划ID"
// @Param body body StatusRequest true "active / completed / cancelled"
// @Success 200 {object} util.Response
// @Router /api/study-plans/{id}/status [patch]
func (c *StudyPlanController) UpdateStatus(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req StatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.PlanService.UpdateStatus(userID, id, req.Status); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"status": req.Status})
}

// @Summary 计划内各部分时长
// @Tags 学习计划
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "计划ID"
// @Success 200 {object} util.Response{data=[]model.SectionMinutes}
// @Router /api/study-plans/{id}/time-by-section [get]
func (c *StudyPlanController) TimeBySection(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	rows, err := c.PlanService.TimeBySection(userID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, rows)
}

// @Summary 计划内各部分任务数
// @Description 综合任务计为 General
// @Tags 学习计划
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "计划ID"
// @Success 200 {object} util.Response{data=[]model.SectionCount}
// @Router /api/study-plans/{id}/count-by-section [get]
func (c *StudyPlanController) CountBySection(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	rows, err := c.PlanService.CountBySection(userID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, rows)
}

// @Summary 添加任务
// @Tags 学习计划
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "计划ID"
// @Param body body service.PlanItemRequest true "任务"
// @Success 201 {object} util.Response{data=model.StudyPlanItem}
// @Router /api/study-plans/{id}/items [post]
func (c *StudyPlanController) AddItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.PlanItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item, err := c.PlanService.AddItem(userID, id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, item)
}

// @Summary 修改任务
// @Tags 学习计划
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "任务ID"
// @Param body body service.PlanItemRequest true "任务"
// @Success 200 {object} util.Response{data=model.StudyPlanItem}
// @Router /api/plan-items/{id} [put]
func (c *StudyPlanController) UpdateItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.PlanItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item, err := c.PlanService.UpdateItem(userID, id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, item)
}

// @Summary 删除任务
// @Tags 学习计划
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "任务ID"
// @Success 200 {object} util.Response
// @Router /api/plan-items/{id} [delete]
func (c *StudyPlanController) DeleteItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.PlanService.DeleteItem(userID, id); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary 标记任务完成
// @Tags 学习计划
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "任务ID"
// @Param body body CompletedRequest true "是否完成"
// @Success 200 {object} util.Response
// @Router /api/plan-items/{id}/complete [patch]
func (c *StudyPlanController) SetItemCompleted(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req CompletedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.PlanService.SetItemCompleted(userID, id, *req.Completed); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"completed": *req.Completed})
}

// @Summary 调整任务日期
// @Tags 学习计划
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "任务ID"
// @Param body body RescheduleRequest true "新日期 YYYY-MM-DD"
// @Success 200 {object} util.Response{data=model.StudyPlanItem}
// @Router /api/plan-items/{id}/reschedule [patch]
func (c *StudyPlanController) RescheduleItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req RescheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item, err := c.PlanService.RescheduleItem(userID, id, req.ScheduledDate)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, item)
}

// @Summary 今日任务
// @Description 同时返回逾期未完成的任务
// @Tags 学习计划
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.TodayPlan}
// @Router /api/study-plans/today [get]
func (c *StudyPlanController) Today(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	today, err := c.PlanService.Today(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, today)
}

// @Summary 近期任务
// @Description days 取 1-30，超出范围使用缺省值 7，按日期分组
// @Tags 学习计划
// @Produce json
// @Security ApiKeyAuth
// @Param days query int false "天数" default(7)
// @Success 200 {object} util.Response{data=[]service.DayItems}
// @Router /api/study-plans/upcoming [get]
func (c *StudyPlanController) Upcoming(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	days := c.PlanService.UpcomingDays(util.ParseIntDefault(ctx.Query("days"), 0))
	groups, err := c.PlanService.Upcoming(userID, days)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"days": days, "items": groups})
}

// @Summary 逾期任务
// @Tags 学习计划
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.StudyPlanItem}
// @Router /api/study-plans/overdue [get]
func (c *StudyPlanController) Overdue(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	items, err := c.PlanService.Overdue(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, items)
}
