package repository

import (
	"context"
	"ielts_tracker_backend/internal/model"
	"ielts_tracker_backend/internal/planner"
	"time"

	"gorm.io/gorm"
)

type StudyPlanRepository struct {
	DB *gorm.DB
}

func NewStudyPlanRepository(db *gorm.DB) *StudyPlanRepository {
	return &StudyPlanRepository{DB: db}
}

// WithTx 返回绑定到事务的副本
func (r *StudyPlanRepository) WithTx(tx *gorm.DB) *StudyPlanRepository {
	return &StudyPlanRepository{DB: tx}
}

func (r *StudyPlanRepository) Create(plan *model.StudyPlan) error {
	return r.DB.Create(plan).Error
}

func (r *StudyPlanRepository) FindByID(id uint) (*model.StudyPlan, error) {
	var plan model.StudyPlan
	err := r.DB.First(&plan, id).Error
	return &plan, err
}

// FindWithItems 计划及其全部任务，按日期排序
func (r *StudyPlanRepository) FindWithItems(id uint) (*model.StudyPlan, error) {
	var plan model.StudyPlan
	err := r.DB.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("scheduled_date ASC, id ASC")
	}).Preload("Items.Section").Preload("Items.Resource").First(&plan, id).Error
	return &plan, err
}

// FindByUser status 为空时返回全部
func (r *StudyPlanRepository) FindByUser(userID uint, status string) ([]model.StudyPlan, error) {
	var plans []model.StudyPlan
	q := r.DB.Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("start_date DESC, id DESC").Find(&plans).Error
	return plans, err
}

func (r *StudyPlanRepository) FindActive(userID uint) (*model.StudyPlan, error) {
	var plan model.StudyPlan
	err := r.DB.Where("user_id = ? AND status = ?", userID, model.PlanStatusActive).
		Order("start_date DESC, id DESC").
		First(&plan).Error
	return &plan, err
}

func (r *StudyPlanRepository) Update(plan *model.StudyPlan) error {
	return r.DB.Model(plan).Select("name", "start_date", "end_date", "status").Updates(plan).Error
}

func (r *StudyPlanRepository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&model.StudyPlan{}).Where("id = ?", id).Update("status", status).Error
}

// Delete 删除计划及其任务
func (r *StudyPlanRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", id).Delete(&model.StudyPlanItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.StudyPlan{}, id).Error
	})
}

// HasOverlap 只检查进行中的计划，区间首尾均包含
func (r *StudyPlanRepository) HasOverlap(userID uint, start, end time.Time, excludeID uint) (bool, error) {
	var count int64
	q := r.DB.Model(&model.StudyPlan{}).
		Where("user_id = ? AND status = ?", userID, model.PlanStatusActive).
		Where("start_date <= ? AND end_date >= ?", end, start)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// CompletionPercentage 已完成任务占比，保留整数；没有任务时为 0
func (r *StudyPlanRepository) CompletionPercentage(planID uint) (int, error) {
	var total, done int64
	if err := r.DB.Model(&model.StudyPlanItem{}).Where("plan_id = ?", planID).Count(&total).Error; err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	if err := r.DB.Model(&model.StudyPlanItem{}).Where("plan_id = ? AND completed = ?", planID, true).Count(&done).Error; err != nil {
		return 0, err
	}
	return int(done * 100 / total), nil
}

// 任务

func (r *StudyPlanRepository) AddItem(item *model.StudyPlanItem) error {
	return r.DB.Create(item).Error
}

func (r *StudyPlanRepository) FindItem(id uint) (*model.StudyPlanItem, error) {
	var item model.StudyPlanItem
	err := r.DB.Preload("Section").Preload("Resource").First(&item, id).Error
	return &item, err
}

func (r *StudyPlanRepository) UpdateItem(item *model.StudyPlanItem) error {
	return r.DB.Model(item).
		Select("section_id", "title", "description", "scheduled_date", "duration_minutes", "completed", "resource_id").
		Updates(item).Error
}

func (r *StudyPlanRepository) SetItemCompleted(id uint, completed bool) error {
	return r.DB.Model(&model.StudyPlanItem{}).Where("id = ?", id).Update("completed", completed).Error
}

func (r *StudyPlanRepository) RescheduleItem(id uint, date time.Time) error {
	return r.DB.Model(&model.StudyPlanItem{}).Where("id = ?", id).Update("scheduled_date", date).Error
}

func (r *StudyPlanRepository) DeleteItem(id uint) error {
	return r.DB.Delete(&model.StudyPlanItem{}, id).Error
}

// activeItems 用户所有进行中计划的任务
func (r *StudyPlanRepository) activeItems(userID uint) *gorm.DB {
	return r.DB.Model(&model.StudyPlanItem{}).
		Preload("Section").Preload("Resource").
		Joins("JOIN study_plans ON study_plans.id = study_plan_items.plan_id AND study_plans.deleted_at IS NULL").
		Where("study_plans.user_id = ? AND study_plans.status = ?", userID, model.PlanStatusActive)
}

func (r *StudyPlanRepository) ItemsOn(userID uint, day time.Time) ([]model.StudyPlanItem, error) {
	var items []model.StudyPlanItem
	err := r.activeItems(userID).
		Where("study_plan_items.scheduled_date = ?", day).
		Order("study_plan_items.duration_minutes DESC, study_plan_items.id ASC").
		Find(&items).Error
	return items, err
}

// ItemsBetween 日期区间首尾均包含
func (r *StudyPlanRepository) ItemsBetween(userID uint, from, to time.Time) ([]model.StudyPlanItem, error) {
	var items []model.StudyPlanItem
	err := r.activeItems(userID).
		Where("study_plan_items.scheduled_date BETWEEN ? AND ?", from, to).
		Order("study_plan_items.scheduled_date ASC, study_plan_items.duration_minutes DESC, study_plan_items.id ASC").
		Find(&items).Error
	return items, err
}

// Overdue 今天之前仍未完成的任务
func (r *StudyPlanRepository) Overdue(userID uint, today time.Time) ([]model.StudyPlanItem, error) {
	var items []model.StudyPlanItem
	err := r.activeItems(userID).
		Where("study_plan_items.scheduled_date < ? AND study_plan_items.completed = ?", today, false).
		Order("study_plan_items.scheduled_date ASC, study_plan_items.id ASC").
		Find(&items).Error
	return items, err
}

// TimeBySection 计划内各部分的计划时长，综合任务不计入
func (r *StudyPlanRepository) TimeBySection(planID uint) ([]model.SectionMinutes, error) {
	var rows []model.SectionMinutes
	err := r.DB.Table("ielts_sections").
		Select("ielts_sections.id AS section_id, ielts_sections.name AS section_name, COALESCE(SUM(study_plan_items.duration_minutes), 0) AS total_minutes, COUNT(study_plan_items.id) AS sessions").
		Joins("LEFT JOIN study_plan_items ON study_plan_items.section_id = ielts_sections.id AND study_plan_items.plan_id = ? AND study_plan_items.deleted_at IS NULL", planID).
		Group("ielts_sections.id, ielts_sections.name").
		Order("total_minutes DESC, ielts_sections.name ASC").
		Scan(&rows).Error
	return rows, err
}

// CountBySection 含综合任务（section_name 为 General）
func (r *StudyPlanRepository) CountBySection(planID uint) ([]model.SectionCount, error) {
	var rows []model.SectionCount
	err := r.DB.Table("study_plan_items").
		Select("study_plan_items.section_id AS section_id, COALESCE(ielts_sections.name, 'General') AS section_name, COUNT(*) AS count").
		Joins("LEFT JOIN ielts_sections ON ielts_sections.id = study_plan_items.section_id").
		Where("study_plan_items.plan_id = ? AND study_plan_items.deleted_at IS NULL", planID).
		Group("study_plan_items.section_id, ielts_sections.name").
		Order("section_name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *StudyPlanRepository) TotalMinutes(planID uint) (int, error) {
	var total int64
	err := r.DB.Model(&model.StudyPlanItem{}).
		Select("COALESCE(SUM(duration_minutes), 0)").
		Where("plan_id = ?", planID).
		Row().Scan(&total)
	return int(total), err
}

// CreatePlan 实现 planner.PlanItemSink
func (r *StudyPlanRepository) CreatePlan(ctx context.Context, plan *planner.Plan) (uint, error) {
	row := &model.StudyPlan{
		UserID:    plan.UserID,
		Name:      plan.Name,
		StartDate: plan.StartDate,
		EndDate:   plan.EndDate,
		Status:    plan.Status,
	}
	if err := r.DB.WithContext(ctx).Create(row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}

// AddPlanItem 实现 planner.PlanItemSink
func (r *StudyPlanRepository) AddPlanItem(ctx context.Context, item *planner.PlanItem) (uint, error) {
	row := &model.StudyPlanItem{
		PlanID:          item.PlanID,
		SectionID:       item.SectionID,
		Title:           item.Title,
		Description:     item.Description,
		ScheduledDate:   item.ScheduledDate,
		DurationMinutes: item.DurationMinutes,
		Completed:       item.Completed,
		ResourceID:      item.ResourceID,
	}
	if err := r.DB.WithContext(ctx).Create(row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}

// CompleteExpired 结束日期早于 today 的进行中计划改为已完成
func (r *StudyPlanRepository) CompleteExpired(today time.Time) (int64, error) {
	res := r.DB.Model(&model.StudyPlan{}).
		Where("status = ? AND end_date < ?", model.PlanStatusActive, today).
		Update("status", model.PlanStatusCompleted)
	return res.RowsAffected, res.Error
}
