package service

import (
	"errors"
	"ielts_tracker_backend/internal/model"
	"ielts_tracker_backend/internal/repository"
	"ielts_tracker_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type StudySessionService struct {
	SessionRepo *repository.StudySessionRepository
	SectionRepo *repository.SectionRepository
}

func NewStudySessionService(sessionRepo *repository.StudySessionRepository, sectionRepo *repository.SectionRepository) *StudySessionService {
	return &StudySessionService{
		SessionRepo: sessionRepo,
		SectionRepo: sectionRepo,
	}
}

type StartSessionRequest struct {
	SectionID *uint  `json:"sectionId"`
	Notes     string `json:"notes"`
}

type EndSessionRequest struct {
	Notes *string `json:"notes"`
}

// ManualSessionRequest 时间格式 2006-01-02 15:04:05
type ManualSessionRequest struct {
	SectionID *uint  `json:"sectionId"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	Notes     string `json:"notes"`
}

type StudyTotal struct {
	Period       string `json:"period"`
	TotalMinutes int    `json:"totalMinutes"`
}

func (s *StudySessionService) checkSection(sectionID *uint) error {
	if sectionID == nil {
		return nil
	}
	ok, err := s.SectionRepo.Exists(*sectionID)
	if err != nil {
		return err
	}
	if !ok {
		return util.ErrInvalidSection
	}
	return nil
}

func (s *StudySessionService) owned(userID, id uint) (*model.StudySession, error) {
	session, err := s.SessionRepo.FindByID(id)
	if err != nil {
		return nil, mapNotFound(err, util.ErrSessionNotFound)
	}
	if session.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return session, nil
}

// Start 同一用户同时只能有一个进行中的学习记录
func (s *StudySessionService) Start(userID uint, req StartSessionRequest) (*model.StudySession, error) {
	if err := s.checkSection(req.SectionID); err != nil {
		return nil, err
	}

	if _, err := s.SessionRepo.FindActive(userID); err == nil {
		return nil, util.ErrSessionActive
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	session := &model.StudySession{
		UserID:    userID,
		SectionID: req.SectionID,
		StartTime: now(),
		Notes:     req.Notes,
	}
	if err := s.SessionRepo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

// End 时长按整分钟向下取整
func (s *StudySessionService) End(userID, id uint, req EndSessionRequest) (*model.StudySession, error) {
	session, err := s.owned(userID, id)
	if err != nil {
		return nil, err
	}
	if !session.Active() {
		return nil, util.ErrSessionEnded
	}

	end := now()
	session.EndTime = &end
	session.Duration = minutesBetween(session.StartTime, end)
	if req.Notes != nil {
		session.Notes = *req.Notes
	}
	if err := s.SessionRepo.End(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *StudySessionService) AddManual(userID uint, req ManualSessionRequest) (*model.StudySession, error) {
	if err := s.checkSection(req.SectionID); err != nil {
		return nil, err
	}

	start, err := time.ParseInLocation(util.TimeFormat, req.StartTime, time.UTC)
	if err != nil {
		return nil, util.ErrInvalidDate
	}
	end, err := time.ParseInLocation(util.TimeFormat, req.EndTime, time.UTC)
	if err != nil {
		return nil, util.ErrInvalidDate
	}
	if !end.After(start) {
		return nil, util.ErrInvalidDateRange
	}

	session := &model.StudySession{
		UserID:    userID,
		SectionID: req.SectionID,
		StartTime: start,
		EndTime:   &end,
		Duration:  minutesBetween(start, end),
		Notes:     req.Notes,
	}
	if err := s.SessionRepo.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *StudySessionService) Delete(userID, id uint) error {
	if _, err := s.owned(userID, id); err != nil {
		return err
	}
	return s.SessionRepo.Delete(id)
}

func (s *StudySessionService) Get(userID, id uint) (*model.StudySession, error) {
	return s.owned(userID, id)
}

// Active 没有进行中的记录时返回 nil
func (s *StudySessionService) Active(userID uint) (*model.StudySession, error) {
	session, err := s.SessionRepo.FindActive(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return session, err
}

func (s *StudySessionService) List(userID uint, page, limit int) ([]model.StudySession, int64, error) {
	if page < 1 {
		page = 1
	}
	return s.SessionRepo.FindByUser(userID, limit, (page-1)*limit)
}

func (s *StudySessionService) ListBySection(userID, sectionID uint) ([]model.StudySession, error) {
	if err := s.checkSection(&sectionID); err != nil {
		return nil, err
	}
	return s.SessionRepo.FindBySection(userID, sectionID)
}

// Between 日期区间首尾均包含
func (s *StudySessionService) Between(userID uint, from, to time.Time) ([]model.StudySession, error) {
	if to.Before(from) {
		return nil, util.ErrInvalidDateRange
	}
	return s.SessionRepo.FindBetween(userID, from, to.AddDate(0, 0, 1))
}

func (s *StudySessionService) TimePerSection(userID uint, from, to time.Time) ([]model.SectionMinutes, error) {
	if !to.IsZero() {
		to = to.AddDate(0, 0, 1)
	}
	return s.SessionRepo.MinutesPerSection(userID, from, to)
}

// TotalTime 统计当天、本周（周一开始）、本月或全部的学习分钟数
func (s *StudySessionService) TotalTime(userID uint, period string) (*StudyTotal, error) {
	start, end, err := PeriodRange(period, now())
	if err != nil {
		return nil, err
	}
	total, err := s.SessionRepo.TotalMinutes(userID, start, end)
	if err != nil {
		return nil, err
	}
	return &StudyTotal{Period: period, TotalMinutes: total}, nil
}

// PeriodRange 返回 [start, end)，all 时均为零值
func PeriodRange(period string, at time.Time) (time.Time, time.Time, error) {
	today := util.Today(at)
	switch period {
	case util.PeriodDay:
		return today, today.AddDate(0, 0, 1), nil
	case util.PeriodWeek:
		offset := (int(today.Weekday()) + 6) % 7
		monday := today.AddDate(0, 0, -offset)
		return monday, monday.AddDate(0, 0, 7), nil
	case util.PeriodMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return first, first.AddDate(0, 1, 0), nil
	case util.PeriodAll, "":
		return time.Time{}, time.Time{}, nil
	}
	return time.Time{}, time.Time{}, util.ErrInvalidPeriod
}

func minutesBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start) / time.Minute)
}
