package controller

import (
	"ielts_tracker_backend/internal/service"
	"ielts_tracker_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// @Summary 更新个人资料
// @Description 目标分数和考试日期为空时清除
// @Tags 用户
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.UpdateProfileRequest true "个人资料"
// @Success 200 {object} util.Response{data=service.Profile}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response "邮箱已被使用"
// @Router /api/user/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req service.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.UserService.UpdateProfile(userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}

// @Summary 修改密码
// @Tags 用户
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ChangePasswordRequest true "新旧密码"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response "当前密码错误"
// @Router /api/user/password [put]
func (c *UserController) ChangePassword(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req service.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.ChangePassword(userID, req); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"updated": true})
}
