package repository

import (
	"context"
	"ielts_tracker_backend/internal/model"
	"ielts_tracker_backend/internal/planner"

	"gorm.io/gorm"
)

type WeakAreaRepository struct {
	DB *gorm.DB
}

func NewWeakAreaRepository(db *gorm.DB) *WeakAreaRepository {
	return &WeakAreaRepository{DB: db}
}

func (r *WeakAreaRepository) Create(area *model.WeakArea) error {
	return r.DB.Create(area).Error
}

func (r *WeakAreaRepository) FindByID(id uint) (*model.WeakArea, error) {
	var area model.WeakArea
	err := r.DB.Preload("Section").First(&area, id).Error
	return &area, err
}

// FindByUser 优先级从高到低，同优先级按部分名称
func (r *WeakAreaRepository) FindByUser(userID uint) ([]model.WeakArea, error) {
	var areas []model.WeakArea
	err := r.DB.Preload("Section").
		Joins("JOIN ielts_sections ON ielts_sections.id = weak_areas.section_id").
		Where("weak_areas.user_id = ?", userID).
		Order("weak_areas.priority DESC, ielts_sections.name ASC, weak_areas.id ASC").
		Find(&areas).Error
	return areas, err
}

func (r *WeakAreaRepository) FindBySection(userID, sectionID uint) ([]model.WeakArea, error) {
	var areas []model.WeakArea
	err := r.DB.Where("user_id = ? AND section_id = ?", userID, sectionID).
		Order("priority DESC, id ASC").
		Find(&areas).Error
	return areas, err
}

func (r *WeakAreaRepository) Top(userID uint, limit int) ([]model.WeakArea, error) {
	var areas []model.WeakArea
	err := r.DB.Preload("Section").
		Joins("JOIN ielts_sections ON ielts_sections.id = weak_areas.section_id").
		Where("weak_areas.user_id = ?", userID).
		Order("weak_areas.priority DESC, ielts_sections.name ASC, weak_areas.id ASC").
		Limit(limit).
		Find(&areas).Error
	return areas, err
}

func (r *WeakAreaRepository) Exists(userID, sectionID uint, subSkill string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.WeakArea{}).
		Where("user_id = ? AND section_id = ? AND sub_skill = ?", userID, sectionID, subSkill).
		Count(&count).Error
	return count > 0, err
}

func (r *WeakAreaRepository) Update(area *model.WeakArea) error {
	return r.DB.Model(area).Select("section_id", "sub_skill", "priority").Updates(area).Error
}

func (r *WeakAreaRepository) UpdatePriority(id uint, priority int) error {
	return r.DB.Model(&model.WeakArea{}).Where("id = ?", id).Update("priority", priority).Error
}

// Delete 物理删除，释放 (用户, 部分, 子技能) 唯一索引
func (r *WeakAreaRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&model.WeakArea{}, id).Error
}

func (r *WeakAreaRepository) CountBySection(userID uint) ([]model.SectionCount, error) {
	var rows []model.SectionCount
	err := r.DB.Table("ielts_sections").
		Select("ielts_sections.id AS section_id, ielts_sections.name AS section_name, COUNT(weak_areas.id) AS count").
		Joins("LEFT JOIN weak_areas ON weak_areas.section_id = ielts_sections.id AND weak_areas.user_id = ? AND weak_areas.deleted_at IS NULL", userID).
		Group("ielts_sections.id, ielts_sections.name").
		Order("ielts_sections.name ASC").
		Scan(&rows).Error
	return rows, err
}

// UserWeakAreas 实现 planner.WeakAreaRepository
func (r *WeakAreaRepository) UserWeakAreas(ctx context.Context, userID uint) ([]planner.WeakArea, error) {
	var areas []model.WeakArea
	err := r.DB.WithContext(ctx).
		Joins("LEFT JOIN ielts_sections ON ielts_sections.id = weak_areas.section_id").
		Where("weak_areas.user_id = ?", userID).
		Order("weak_areas.priority DESC, ielts_sections.name ASC, weak_areas.id ASC").
		Find(&areas).Error
	if err != nil {
		return nil, err
	}

	out := make([]planner.WeakArea, 0, len(areas))
	for _, a := range areas {
		out = append(out, planner.WeakArea{
			SectionID: a.SectionID,
			SubSkill:  a.SubSkill,
			Priority:  a.Priority,
		})
	}
	return out, nil
}
