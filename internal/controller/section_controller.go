package controller

import (
	"errors"
	"ielts_tracker_backend/internal/repository"
	"ielts_tracker_backend/internal/service"
	"ielts_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SectionController 考试部分是只读目录
type SectionController struct {
	SectionRepo *repository.SectionRepository
}

func NewSectionController(sectionRepo *repository.SectionRepository) *SectionController {
	return &SectionController{SectionRepo: sectionRepo}
}

// @Summary 考试部分列表
// @Tags 考试部分
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Section}
// @Router /api/sections [get]
func (c *SectionController) List(ctx *gin.Context) {
	sections, err := c.SectionRepo.FindAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, sections)
}

// @Summary 考试部分详情
// @Description 附带该部分常见的子技能
// @Tags 考试部分
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "部分ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/sections/{id} [get]
func (c *SectionController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	section, err := c.SectionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFoundMessage(ctx, util.ErrInvalidSection.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"section":   section,
		"subSkills": service.CommonSubSkills(id),
	})
}
