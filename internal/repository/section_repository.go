package repository

import (
	"context"
	"ielts_tracker_backend/internal/model"
	"ielts_tracker_backend/internal/planner"

	"gorm.io/gorm"
)

type SectionRepository struct {
	DB *gorm.DB
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{DB: db}
}

// FindAll 按名称升序，与计划生成使用的目录顺序一致
func (r *SectionRepository) FindAll() ([]model.Section, error) {
	var sections []model.Section
	err := r.DB.Order("name ASC").Find(&sections).Error
	return sections, err
}

func (r *SectionRepository) FindByID(id uint) (*model.Section, error) {
	var section model.Section
	err := r.DB.First(&section, id).Error
	return &section, err
}

func (r *SectionRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Section{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// AllSections 实现 planner.SectionCatalog
func (r *SectionRepository) AllSections(ctx context.Context) ([]planner.Section, error) {
	var sections []model.Section
	if err := r.DB.WithContext(ctx).Order("name ASC").Find(&sections).Error; err != nil {
		return nil, err
	}
	out := make([]planner.Section, 0, len(sections))
	for _, s := range sections {
		out = append(out, planner.Section{ID: s.ID, Name: s.Name})
	}
	return out, nil
}
