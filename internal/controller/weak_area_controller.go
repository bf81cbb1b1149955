package controller

import (
	"ielts_tracker_backend/internal/service"
	"ielts_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type WeakAreaController struct {
	WeakAreaService *service.WeakAreaService
}

func NewWeakAreaController(weakAreaService *service.WeakAreaService) *WeakAreaController {
	return &WeakAreaController{WeakAreaService: weakAreaService}
}

// PriorityRequest 优先级 1-5
type PriorityRequest struct {
	Priority int `json:"priority" binding:"required"`
}

// @Summary 弱项列表
// @Description 按优先级从高到低，可按部分过滤
// @Tags 弱项
// @Produce json
// @Security ApiKeyAuth
// @Param sectionId query int false "部分ID"
// @Success 200 {object} util.Response{data=[]model.WeakArea}
// @Router /api/weak-areas [get]
func (c *WeakAreaController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var (
		err   error
		areas interface{}
	)
	if sectionID := util.MustParseUint(ctx.Query("sectionId")); sectionID != 0 {
		areas, err = c.WeakAreaService.ListBySection(userID, sectionID)
	} else {
		areas, err = c.WeakAreaService.List(userID)
	}
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, areas)
}

// @Summary 新增弱项
// @Description 优先级缺省为 3，同一部分的子技能不能重复
// @Tags 弱项
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.WeakAreaRequest true "弱项"
// @Success 201 {object} util.Response{data=model.WeakArea}
// @Failure 409 {object} util.Response
// @Router /api/weak-areas [post]
func (c *WeakAreaController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req service.WeakAreaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	area, err := c.WeakAreaService.Create(userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, area)
}

// @Summary 弱项详情
// @Tags 弱项
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "弱项ID"
// @Success 200 {object} util.Response{data=model.WeakArea}
// @Router /api/weak-areas/{id} [get]
func (c *WeakAreaController) Get(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	area, err := c.WeakAreaService.Get(userID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, area)
}

// @Summary 修改弱项
// @Tags 弱项
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "弱项ID"
// @Param body body service.WeakAreaRequest true "弱项"
// @Success 200 {object} util.Response{data=model.WeakArea}
// @Router /api/weak-areas/{id} [put]
func (c *WeakAreaController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.WeakAreaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	area, err := c.WeakAreaService.Update(userID, id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, area)
}

// @Summary 修改弱项优先级
// @Tags 弱项
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "弱项ID"
// @Param body body PriorityRequest true "优先级"
// @Success 200 {object} util.Response
// @Router /api/weak-areas/{id}/priority [patch]
func (c *WeakAreaController) UpdatePriority(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req PriorityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.WeakAreaService.UpdatePriority(userID, id, req.Priority); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"priority": req.Priority})
}

// @Summary 删除弱项
// @Tags 弱项
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "弱项ID"
// @Success 200 {object} util.Response
// @Router /api/weak-areas/{id} [delete]
func (c *WeakAreaController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.WeakAreaService.Delete(userID, id); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary 优先级最高的弱项
// @Tags 弱项
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "条数" default(5)
// @Success 200 {object} util.Response{data=[]model.WeakArea}
// @Router /api/weak-areas/top [get]
func (c *WeakAreaController) Top(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	areas, err := c.WeakAreaService.Top(userID, util.ParseIntDefault(ctx.Query("limit"), 5))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, areas)
}

// @Summary 各部分弱项数量
// @Tags 弱项
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.SectionCount}
// @Router /api/weak-areas/count-by-section [get]
func (c *WeakAreaController) CountBySection(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	counts, err := c.WeakAreaService.CountBySection(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, counts)
}

// @Summary 根据成绩自动识别弱项
// @Description 为每个有成绩的部分补充两个常见弱项，已存在的跳过
// @Tags 弱项
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.WeakArea}
// @Router /api/weak-areas/auto-identify [post]
func (c *WeakAreaController) AutoIdentify(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	added, err := c.WeakAreaService.AutoIdentify(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"added": added, "count": len(added)})
}
