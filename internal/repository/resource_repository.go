package repository

import (
	"ielts_tracker_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type ResourceRepository struct {
	DB *gorm.DB
}

func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{DB: db}
}

// ResourceFilter 为空的字段不参与过滤
type ResourceFilter struct {
	Keyword   string
	SectionID *uint
	Type      string
}

func (r *ResourceRepository) Create(resource *model.StudyResource) error {
	return r.DB.Create(resource).Error
}

func (r *ResourceRepository) FindByID(id uint) (*model.StudyResource, error) {
	var resource model.StudyResource
	err := r.DB.Preload("Section").First(&resource, id).Error
	return &resource, err
}

func (r *ResourceRepository) Search(filter ResourceFilter) ([]model.StudyResource, error) {
	var resources []model.StudyResource
	q := r.DB.Preload("Section")
	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		q = q.Where("(title LIKE ? OR description LIKE ?)", like, like)
	}
	if filter.SectionID != nil {
		q = q.Where("section_id = ?", *filter.SectionID)
	}
	if filter.Type != "" {
		q = q.Where("resource_type = ?", filter.Type)
	}
	err := q.Order("title ASC").Find(&resources).Error
	return resources, err
}

func (r *ResourceRepository) Update(resource *model.StudyResource) error {
	return r.DB.Model(resource).
		Select("title", "section_id", "resource_type", "description", "file_path", "url", "duration").
		Updates(resource).Error
}

// Delete 同时移除所有用户的收藏
func (r *ResourceRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("resource_id = ?", id).Delete(&model.UserResource{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.StudyPlanItem{}).Where("resource_id = ?", id).Update("resource_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.StudyResource{}, id).Error
	})
}

func (r *ResourceRepository) CountBySection() ([]model.SectionCount, error) {
	var rows []model.SectionCount
	err := r.DB.Table("ielts_sections").
		Select("ielts_sections.id AS section_id, ielts_sections.name AS section_name, COUNT(study_resources.id) AS count").
		Joins("LEFT JOIN study_resources ON study_resources.section_id = ielts_sections.id AND study_resources.deleted_at IS NULL").
		Group("ielts_sections.id, ielts_sections.name").
		Order("ielts_sections.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *ResourceRepository) CountByType() ([]model.TypeCount, error) {
	var rows []model.TypeCount
	err := r.DB.Model(&model.StudyResource{}).
		Select("resource_type, COUNT(*) AS count").
		Group("resource_type").
		Order("resource_type ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *ResourceRepository) Types() ([]string, error) {
	var types []string
	err := r.DB.Model(&model.StudyResource{}).
		Distinct("resource_type").
		Order("resource_type ASC").
		Pluck("resource_type", &types).Error
	return types, err
}

// 用户收藏

func (r *ResourceRepository) AddToCollection(ur *model.UserResource) error {
	return r.DB.Create(ur).Error
}

func (r *ResourceRepository) FindUserResource(userID, resourceID uint) (*model.UserResource, error) {
	var ur model.UserResource
	err := r.DB.Preload("Resource").Preload("Resource.Section").
		Where("user_id = ? AND resource_id = ?", userID, resourceID).
		First(&ur).Error
	return &ur, err
}

// Collection completed 为 nil 时返回全部
func (r *ResourceRepository) Collection(userID uint, completed *bool) ([]model.UserResource, error) {
	var list []model.UserResource
	q := r.DB.Preload("Resource").Preload("Resource.Section").Where("user_id = ?", userID)
	if completed != nil {
		q = q.Where("completed = ?", *completed)
	}
	err := q.Order("updated_at DESC").Find(&list).Error
	return list, err
}

func (r *ResourceRepository) UpdateUserResource(ur *model.UserResource) error {
	return r.DB.Model(ur).Select("completed", "rating", "last_accessed").Updates(ur).Error
}

func (r *ResourceRepository) TouchUserResource(id uint, at time.Time) error {
	return r.DB.Model(&model.UserResource{}).Where("id = ?", id).Update("last_accessed", at).Error
}

func (r *ResourceRepository) RemoveFromCollection(id uint) error {
	return r.DB.Unscoped().Delete(&model.UserResource{}, id).Error
}

// CompletedBySection 用户已完成资源按部分计数
func (r *ResourceRepository) CompletedBySection(userID uint) ([]model.SectionCount, error) {
	var rows []model.SectionCount
	err := r.DB.Table("user_resources").
		Select("study_resources.section_id AS section_id, COALESCE(ielts_sections.name, 'General') AS section_name, COUNT(user_resources.id) AS count").
		Joins("JOIN study_resources ON study_resources.id = user_resources.resource_id AND study_resources.deleted_at IS NULL").
		Joins("LEFT JOIN ielts_sections ON ielts_sections.id = study_resources.section_id").
		Where("user_resources.user_id = ? AND user_resources.completed = ? AND user_resources.deleted_at IS NULL", userID, true).
		Group("study_resources.section_id, ielts_sections.name").
		Order("section_name ASC").
		Scan(&rows).Error
	return rows, err
}
