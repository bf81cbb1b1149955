package repository

import (
	"ielts_tracker_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type StudySessionRepository struct {
	DB *gorm.DB
}

func NewStudySessionRepository(db *gorm.DB) *StudySessionRepository {
	return &StudySessionRepository{DB: db}
}

func (r *StudySessionRepository) Create(session *model.StudySession) error {
	return r.DB.Create(session).Error
}

func (r *StudySessionRepository) FindByID(id uint) (*model.StudySession, error) {
	var session model.StudySession
	err := r.DB.Preload("Section").First(&session, id).Error
	return &session, err
}

// FindActive 未结束的学习记录
func (r *StudySessionRepository) FindActive(userID uint) (*model.StudySession, error) {
	var session model.StudySession
	err := r.DB.Preload("Section").
		Where("user_id = ? AND end_time IS NULL", userID).
		Order("start_time DESC").
		First(&session).Error
	return &session, err
}

func (r *StudySessionRepository) FindByUser(userID uint, limit, offset int) ([]model.StudySession, int64, error) {
	var sessions []model.StudySession
	var total int64

	db := r.DB.Model(&model.StudySession{}).Where("user_id = ?", userID)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := db.Preload("Section").Order("start_time DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	err := q.Find(&sessions).Error
	return sessions, total, err
}

func (r *StudySessionRepository) FindBySection(userID, sectionID uint) ([]model.StudySession, error) {
	var sessions []model.StudySession
	err := r.DB.Where("user_id = ? AND section_id = ?", userID, sectionID).
		Order("start_time DESC").
		Find(&sessions).Error
	return sessions, err
}

// FindBetween start 含，end 不含
func (r *StudySessionRepository) FindBetween(userID uint, start, end time.Time) ([]model.StudySession, error) {
	var sessions []model.StudySession
	err := r.DB.Preload("Section").
		Where("user_id = ? AND start_time >= ? AND start_time < ?", userID, start, end).
		Order("start_time ASC").
		Find(&sessions).Error
	return sessions, err
}

func (r *StudySessionRepository) End(session *model.StudySession) error {
	return r.DB.Model(session).Select("end_time", "duration", "notes").Updates(session).Error
}

func (r *StudySessionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.StudySession{}, id).Error
}

// MinutesPerSection 已结束记录按部分汇总；start/end 为零值时不限时间
func (r *StudySessionRepository) MinutesPerSection(userID uint, start, end time.Time) ([]model.SectionMinutes, error) {
	join := "LEFT JOIN study_sessions ON study_sessions.section_id = ielts_sections.id AND study_sessions.user_id = ? AND study_sessions.end_time IS NOT NULL AND study_sessions.deleted_at IS NULL"
	args := []interface{}{userID}
	if !start.IsZero() {
		join += " AND study_sessions.start_time >= ?"
		args = append(args, start)
	}
	if !end.IsZero() {
		join += " AND study_sessions.start_time < ?"
		args = append(args, end)
	}

	var rows []model.SectionMinutes
	err := r.DB.Table("ielts_sections").
		Select("ielts_sections.id AS section_id, ielts_sections.name AS section_name, COALESCE(SUM(study_sessions.duration), 0) AS total_minutes, COUNT(study_sessions.id) AS sessions").
		Joins(join, args...).
		Group("ielts_sections.id, ielts_sections.name").
		Order("total_minutes DESC, ielts_sections.name ASC").
		Scan(&rows).Error
	return rows, err
}

// TotalMinutes start/end 为零值时不限时间
func (r *StudySessionRepository) TotalMinutes(userID uint, start, end time.Time) (int, error) {
	q := r.DB.Model(&model.StudySession{}).
		Select("COALESCE(SUM(duration), 0)").
		Where("user_id = ? AND end_time IS NOT NULL", userID)
	if !start.IsZero() {
		q = q.Where("start_time >= ?", start)
	}
	if !end.IsZero() {
		q = q.Where("start_time < ?", end)
	}

	var total int64
	err := q.Row().Scan(&total)
	return int(total), err
}
