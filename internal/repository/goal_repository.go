package repository

import (
	"ielts_tracker_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type GoalRepository struct {
	DB *gorm.DB
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{DB: db}
}

func (r *GoalRepository) Create(goal *model.StudyGoal) error {
	return r.DB.Create(goal).Error
}

func (r *GoalRepository) FindByID(id uint) (*model.StudyGoal, error) {
	var goal model.StudyGoal
	err := r.DB.Preload("Section").First(&goal, id).Error
	return &goal, err
}

func (r *GoalRepository) FindByUser(userID uint) ([]model.StudyGoal, error) {
	var goals []model.StudyGoal
	err := r.DB.Preload("Section").
		Where("user_id = ?", userID).
		Order("target_date ASC, id ASC").
		Find(&goals).Error
	return goals, err
}

// FindOpen 尚未达成的目标
func (r *GoalRepository) FindOpen(userID uint) ([]model.StudyGoal, error) {
	var goals []model.StudyGoal
	err := r.DB.Where("user_id = ? AND achieved = ?", userID, false).Find(&goals).Error
	return goals, err
}

// FindUpcoming 目标日期在 [from, to] 内且未达成
func (r *GoalRepository) FindUpcoming(userID uint, from, to time.Time) ([]model.StudyGoal, error) {
	var goals []model.StudyGoal
	err := r.DB.Preload("Section").
		Where("user_id = ? AND achieved = ? AND target_date BETWEEN ? AND ?", userID, false, from, to).
		Order("target_date ASC").
		Find(&goals).Error
	return goals, err
}

func (r *GoalRepository) Update(goal *model.StudyGoal) error {
	return r.DB.Model(goal).Select("section_id", "target_score", "target_date", "achieved").Updates(goal).Error
}

func (r *GoalRepository) SetAchieved(id uint, achieved bool) error {
	return r.DB.Model(&model.StudyGoal{}).Where("id = ?", id).Update("achieved", achieved).Error
}

func (r *GoalRepository) Delete(id uint) error {
	return r.DB.Delete(&model.StudyGoal{}, id).Error
}
