package service

import (
	"ielts_tracker_backend/internal/config"
	"ielts_tracker_backend/internal/model"
	"ielts_tracker_backend/internal/planner"
	"ielts_tracker_backend/internal/repository"
	"ielts_tracker_backend/internal/util"
	"ielts_tracker_backend/pkg/logger"
	"sync/atomic"

	"go.uber.org/zap"
)

// GoalService 目标分数管理
type GoalService struct {
	GoalRepo    *repository.GoalRepository
	TestRepo    *repository.PracticeTestRepository
	SectionRepo *repository.SectionRepository
	Cfg         *config.Config

	lookaheadDays atomic.Int64
}

func NewGoalService(goalRepo *repository.GoalRepository, testRepo *repository.PracticeTestRepository, sectionRepo *repository.SectionRepository, cfg *config.Config) *GoalService {
	s := &GoalService{
		GoalRepo:    goalRepo,
		TestRepo:    testRepo,
		SectionRepo: sectionRepo,
		Cfg:         cfg,
	}
	s.SetLookaheadDays(cfg.Planner.GoalLookaheadDays)
	return s
}

// SetLookaheadDays 配置热更新时调用
func (s *GoalService) SetLookaheadDays(days int) {
	s.lookaheadDays.Store(int64(days))
}

// GoalRequest SectionID 为空表示总分目标
type GoalRequest struct {
	SectionID   *uint   `json:"sectionId"`
	TargetScore float64 `json:"targetScore" binding:"required"`
	TargetDate  string  `json:"targetDate" binding:"required"`
}

type GoalProgress struct {
	GoalID        uint     `json:"goalId"`
	SectionID     *uint    `json:"sectionId"`
	SectionName   string   `json:"sectionName"`
	TargetScore   float64  `json:"targetScore"`
	TargetDate    string   `json:"targetDate"`
	Achieved      bool     `json:"achieved"`
	CurrentScore  *float64 `json:"currentScore"`
	ScoreGap      float64  `json:"scoreGap"`
	DaysRemaining int      `json:"daysRemaining"`
}

func (s *GoalService) owned(userID, id uint) (*model.StudyGoal, error) {
	goal, err := s.GoalRepo.FindByID(id)
	if err != nil {
		return nil, mapNotFound(err, util.ErrGoalNotFound)
	}
	if goal.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return goal, nil
}

func (s *GoalService) apply(goal *model.StudyGoal, req GoalRequest) error {
	if !util.ValidBandScore(req.TargetScore) {
		return util.ErrInvalidScore
	}
	targetDate, err := util.ParseDate(req.TargetDate)
	if err != nil {
		return err
	}
	if req.SectionID != nil {
		ok, err := s.SectionRepo.Exists(*req.SectionID)
		if err != nil {
			return err
		}
		if !ok {
			return util.ErrInvalidSection
		}
	}

	goal.SectionID = req.SectionID
	goal.TargetScore = req.TargetScore
	goal.TargetDate = targetDate
	return nil
}

func (s *GoalService) Create(userID uint, req GoalRequest) (*model.StudyGoal, error) {
	goal := &model.StudyGoal{UserID: userID}
	if err := s.apply(goal, req); err != nil {
		return nil, err
	}
	if err := s.GoalRepo.Create(goal); err != nil {
		return nil, err
	}
	return s.GoalRepo.FindByID(goal.ID)
}

func (s *GoalService) Update(userID, id uint, req GoalRequest) (*model.StudyGoal, error) {
	goal, err := s.owned(userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(goal, req); err != nil {
		return nil, err
	}
	goal.Section = nil
	if err := s.GoalRepo.Update(goal); err != nil {
		return nil, err
	}
	return s.GoalRepo.FindByID(goal.ID)
}

func (s *GoalService) Delete(userID, id uint) error {
	if _, err := s.owned(userID, id); err != nil {
		return err
	}
	return s.GoalRepo.Delete(id)
}

func (s *GoalService) SetAchieved(userID, id uint, achieved bool) error {
	if _, err := s.owned(userID, id); err != nil {
		return err
	}
	return s.GoalRepo.SetAchieved(id, achieved)
}

func (s *GoalService) Get(userID, id uint) (*model.StudyGoal, error) {
	return s.owned(userID, id)
}

func (s *GoalService) List(userID uint) ([]model.StudyGoal, error) {
	return s.GoalRepo.FindByUser(userID)
}

// Upcoming 未来 days 天内到期且未达成的目标，days<=0 时使用配置值
func (s *GoalService) Upcoming(userID uint, days int) ([]model.StudyGoal, error) {
	if days <= 0 {
		days = int(s.lookaheadDays.Load())
	}
	today := util.Today(now())
	return s.GoalRepo.FindUpcoming(userID, today, today.AddDate(0, 0, days))
}

// Progress 当前平均分与目标的差距
func (s *GoalService) Progress(userID uint) ([]GoalProgress, error) {
	goals, err := s.GoalRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	today := util.Today(now())
	cache := make(map[uint]*float64)
	var overall *float64
	overallLoaded := false

	list := make([]GoalProgress, 0, len(goals))
	for _, goal := range goals {
		var current *float64
		name := "Overall"
		if goal.SectionID == nil {
			if !overallLoaded {
				if overall, err = s.TestRepo.AverageScore(userID, nil); err != nil {
					return nil, err
				}
				overallLoaded = true
			}
			current = overall
		} else {
			cached, ok := cache[*goal.SectionID]
			if !ok {
				if cached, err = s.TestRepo.AverageScore(userID, goal.SectionID); err != nil {
					return nil, err
				}
				cache[*goal.SectionID] = cached
			}
			current = cached
			if goal.Section != nil {
				name = goal.Section.Name
			}
		}

		gap := goal.TargetScore
		if current != nil {
			gap = goal.TargetScore - *current
		}
		if gap < 0 {
			gap = 0
		}

		list = append(list, GoalProgress{
			GoalID:        goal.ID,
			SectionID:     goal.SectionID,
			SectionName:   name,
			TargetScore:   goal.TargetScore,
			TargetDate:    goal.TargetDate.Format(util.DateFormat),
			Achieved:      goal.Achieved,
			CurrentScore:  current,
			ScoreGap:      gap,
			DaysRemaining: planner.DaysBetween(today, goal.TargetDate),
		})
	}
	return list, nil
}

// CheckAchievements 平均分达到目标的未完成目标标记为已达成，返回本次达成的目标
func (s *GoalService) CheckAchievements(userID uint) ([]model.StudyGoal, error) {
	goals, err := s.GoalRepo.FindOpen(userID)
	if err != nil {
		return nil, err
	}

	var achieved []model.StudyGoal
	for _, goal := range goals {
		current, err := s.TestRepo.AverageScore(userID, goal.SectionID)
		if err != nil {
			return achieved, err
		}
		if current == nil || *current < goal.TargetScore {
			continue
		}
		if err := s.GoalRepo.SetAchieved(goal.ID, true); err != nil {
			return achieved, err
		}
		goal.Achieved = true
		achieved = append(achieved, goal)
	}

	if len(achieved) > 0 {
		logger.Log.Info("Goals achieved", zap.Uint("userID", userID), zap.Int("count", len(achieved)))
	}
	return achieved, nil
}
