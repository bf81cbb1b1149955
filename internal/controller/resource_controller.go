package controller

import (
	"errors"
	"ielts_tracker_backend/internal/repository"
	"ielts_tracker_backend/internal/service"
	"ielts_tracker_backend/internal/util"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type ResourceController struct {
	ResourceService *service.ResourceService
}

func NewResourceController(resourceService *service.ResourceService) *ResourceController {
	return &ResourceController{ResourceService: resourceService}
}

// uploadedFile multipart 请求中的可选 file 字段
func uploadedFile(ctx *gin.Context) (*multipart.FileHeader, error) {
	if !strings.HasPrefix(ctx.ContentType(), "multipart/") {
		return nil, nil
	}
	file, err := ctx.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	return file, err
}

// @Summary 搜索资源
// @Tags 学习资源
// @Produce json
// @Security ApiKeyAuth
// @Param keyword query string false "标题或描述关键字"
// @Param sectionId query int false "部分ID"
// @Param type query string false "资源类型" Enums(book, video, audio, website, exercise, document)
// @Success 200 {object} util.Response{data=[]model.StudyResource}
// @Router /api/resources [get]
func (c *ResourceController) Search(ctx *gin.Context) {
	filter := repository.ResourceFilter{
		Keyword:   strings.TrimSpace(ctx.Query("keyword")),
		SectionID: util.OptionalUint(util.MustParseUint(ctx.Query("sectionId"))),
		Type:      ctx.Query("type"),
	}

	resources, err := c.ResourceService.Search(filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, resources)
}

// @Summary 新增资源
// @Description 支持 JSON 或 multipart（可附带 file 字段，最大 200MB）
// @Tags 学习资源
// @Accept json,mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ResourceRequest true "资源信息"
// @Success 201 {object} util.Response{data=model.StudyResource}
// @Failure 400 {object} util.Response
// @Router /api/resources [post]
func (c *ResourceController) Create(ctx *gin.Context) {
	var req service.ResourceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	file, err := uploadedFile(ctx)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resource, err := c.ResourceService.Create(ctx.Request.Context(), req, file)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, resource)
}

// @Summary 资源详情
// @Description 已收藏的资源会记录访问时间
// @Tags 学习资源
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "资源ID"
// @Success 200 {object} util.Response{data=model.StudyResource}
// @Router /api/resources/{id} [get]
func (c *ResourceController) Get(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	resource, err := c.ResourceService.Open(userID, id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, resource)
}

// @Summary 修改资源
// @Description 附带新文件时替换原文件
// @Tags 学习资源
// @Accept json,mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "资源ID"
// @Param body body service.ResourceRequest true "资源信息"
// @Success 200 {object} util.Response{data=model.StudyResource}
// @Router /api/resources/{id} [put]
func (c *ResourceController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req service.ResourceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	file, err := uploadedFile(ctx)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resource, err := c.ResourceService.Update(ctx.Request.Context(), id, req, file)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, resource)
}

// @Summary 删除资源
// @Tags 学习资源
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "资源ID"
// @Success 200 {object} util.Response
// @Router /api/resources/{id} [delete]
func (c *ResourceController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.ResourceService.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary 资源类型
// @Tags 学习资源
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/resources/types [get]
func (c *ResourceController) Types(ctx *gin.Context) {
	types, err := c.ResourceService.Types()
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, types)
}

// @Summary 各部分资源数量
// @Tags 学习资源
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.SectionCount}
// @Router /api/resources/count-by-section [get]
func (c *ResourceController) CountBySection(ctx *gin.Context) {
	counts, err := c.ResourceService.CountBySection()
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, counts)
}

// @Summary 各类型资源数量
// @Tags 学习资源
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.TypeCount}
// @Router /api/resources/count-by-type [get]
func (c *ResourceController) CountByType(ctx *gin.Context) {
	counts, err := c.ResourceService.CountByType()
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, counts)
}

// @Summary 我的收藏
// @Tags 资源收藏
// @Produce json
// @Security ApiKeyAuth
// @Param completed query bool false "按完成状态过滤"
// @Success 200 {object} util.Response{data=[]model.UserResource}
// @Router /api/collection [get]
func (c *ResourceController) Collection(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var completed *bool
	if raw := ctx.Query("completed"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			util.BadRequest(ctx, "completed must be true or false")
			return
		}
		completed = &v
	}

	list, err := c.ResourceService.Collection(userID, completed)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, list)
}

// @Summary 收藏资源
// @Tags 资源收藏
// @Produce json
// @Security ApiKeyAuth
// @Param resourceId path int true "资源ID"
// @Success 201 {object} util.Response{data=model.UserResource}
// @Failure 409 {object} util.Response "已收藏"
// @Router /api/collection/{resourceId} [post]
func (c *ResourceController) AddToCollection(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	resourceID, ok := pathID(ctx, "resourceId")
	if !ok {
		return
	}

	ur, err := c.ResourceService.AddToCollection(userID, resourceID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, ur)
}

// @Summary 修改收藏状态
// @Description 标记完成或评分 1-5
// @Tags 资源收藏
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param resourceId path int true "资源ID"
// @Param body body service.CollectionUpdateRequest true "完成状态与评分"
// @Success 200 {object} util.Response{data=model.UserResource}
// @Router /api/collection/{resourceId} [put]
func (c *ResourceController) UpdateCollection(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	resourceID, ok := pathID(ctx, "resourceId")
	if !ok {
		return
	}

	var req service.CollectionUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ur, err := c.ResourceService.UpdateCollection(userID, resourceID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, ur)
}

// @Summary 取消收藏
// @Tags 资源收藏
// @Produce json
// @Security ApiKeyAuth
// @Param resourceId path int true "资源ID"
// @Success 200 {object} util.Response
// @Router /api/collection/{resourceId} [delete]
func (c *ResourceController) RemoveFromCollection(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	resourceID, ok := pathID(ctx, "resourceId")
	if !ok {
		return
	}

	if err := c.ResourceService.RemoveFromCollection(userID, resourceID); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary 各部分已完成资源数量
// @Tags 资源收藏
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.SectionCount}
// @Router /api/collection/completed-by-section [get]
func (c *ResourceController) CompletedBySection(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	counts, err := c.ResourceService.CompletedBySection(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, counts)
}
