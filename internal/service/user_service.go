package service

import (
	"errors"
	"ielts_tracker_backend/internal/model"
	"ielts_tracker_backend/internal/planner"
	"ielts_tracker_backend/internal/repository"
	"ielts_tracker_backend/internal/util"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService 处理个人资料相关的业务逻辑
type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{
		UserRepo: userRepo,
	}
}

type Profile struct {
	*model.User
	DaysUntilTest *int `json:"daysUntilTest"`
}

// UpdateProfileRequest 目标分和考试日期为空时清除
type UpdateProfileRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Email       string   `json:"email" binding:"required,email,max=100"`
	TargetScore *float64 `json:"targetScore"`
	TestDate    string   `json:"testDate"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=NewPassword"`
}

func (s *UserService) GetProfile(userID uint) (*Profile, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, mapNotFound(err, util.ErrUserNotFound)
	}
	return &Profile{User: user, DaysUntilTest: DaysUntil(user.TestDate, now())}, nil
}

func (s *UserService) UpdateProfile(userID uint, req UpdateProfileRequest) (*Profile, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, mapNotFound(err, util.ErrUserNotFound)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != user.Email {
		if _, err := s.UserRepo.FindByEmail(email); err == nil {
			return nil, util.ErrEmailRegistered
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if req.TargetScore != nil && !util.ValidBandScore(*req.TargetScore) {
		return nil, util.ErrInvalidScore
	}

	var testDate *time.Time
	if strings.TrimSpace(req.TestDate) != "" {
		d, err := util.ParseDate(req.TestDate)
		if err != nil {
			return nil, err
		}
		testDate = &d
	}

	user.Name = strings.TrimSpace(req.Name)
	user.Email = email
	user.TargetScore = req.TargetScore
	user.TestDate = testDate

	if err := s.UserRepo.UpdateProfile(user); err != nil {
		return nil, err
	}
	return &Profile{User: user, DaysUntilTest: DaysUntil(user.TestDate, now())}, nil
}

func (s *UserService) ChangePassword(userID uint, req ChangePasswordRequest) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return mapNotFound(err, util.ErrUserNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return util.ErrInvalidCredentials
	}
	if !util.StrongPassword(req.NewPassword) {
		return util.ErrWeakPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.UserRepo.UpdatePassword(userID, string(hashed))
}

// DaysUntil 距考试的天数，考试已过时为 0，未设置时为 nil
func DaysUntil(testDate *time.Time, at time.Time) *int {
	if testDate == nil {
		return nil
	}
	days := planner.DaysBetween(util.Today(at), planner.DateOf(*testDate))
	if days < 0 {
		days = 0
	}
	return &days
}
