package service

import (
	"context"
	"errors"
	"ielts_tracker_backend/internal/config"
	"ielts_tracker_backend/internal/model"
	"ielts_tracker_backend/internal/planner"
	"ielts_tracker_backend/internal/repository"
	"ielts_tracker_backend/internal/util"
	"ielts_tracker_backend/pkg/logger"
	"ielts_tracker_backend/pkg/monitoring"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type StudyPlanService struct {
	DB           *gorm.DB
	PlanRepo     *repository.StudyPlanRepository
	TestRepo     *repository.PracticeTestRepository
	WeakAreaRepo *repository.WeakAreaRepository
	SectionRepo  *repository.SectionRepository
	ResourceRepo *repository.ResourceRepository
	Cfg          *config.Config

	plannerCfg atomic.Pointer[config.PlannerConfig]
}

func NewStudyPlanService(
	db *gorm.DB,
	planRepo *repository.StudyPlanRepository,
	testRepo *repository.PracticeTestRepository,
	weakAreaRepo *repository.WeakAreaRepository,
	sectionRepo *repository.SectionRepository,
	resourceRepo *repository.ResourceRepository,
	cfg *config.Config,
) *StudyPlanService {
	s := &StudyPlanService{
		DB:           db,
		PlanRepo:     planRepo,
		TestRepo:     testRepo,
		WeakAreaRepo: weakAreaRepo,
		SectionRepo:  sectionRepo,
		ResourceRepo: resourceRepo,
		Cfg:          cfg,
	}
	s.SetPlannerConfig(cfg.Planner)
	return s
}

// SetPlannerConfig 配置热更新时调用
func (s *StudyPlanService) SetPlannerConfig(pc config.PlannerConfig) {
	s.plannerCfg.Store(&pc)
}

type GeneratePlanRequest struct {
	TestDate string `json:"testDate" binding:"required"`
	PlanName string `json:"planName" binding:"max=150"`
}

type PlanRequest struct {
	Name      string `json:"name" binding:"required,max=150"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

type PlanItemRequest struct {
	SectionID       *uint  `json:"sectionId"`
	Title           string `json:"title" binding:"required,max=200"`
	Description     string `json:"description"`
	ScheduledDate   string `json:"scheduledDate" binding:"required"`
	DurationMinutes int    `json:"durationMinutes" binding:"required,min=1"`
	ResourceID      *uint  `json:"resourceId"`
}

type PlanSummary struct {
	model.StudyPlan
	CompletionPercentage int `json:"completionPercentage"`
}

type PlanDetail struct {
	*model.StudyPlan
	CompletionPercentage int                    `json:"completionPercentage"`
	TotalMinutes         int                    `json:"totalMinutes"`
	TimeBySection        []model.SectionMinutes `json:"timeBySection"`
}

// DayItems 某一天的任务
type DayItems struct {
	Date  string                `json:"date"`
	Items []model.StudyPlanItem `json:"items"`
}

type TodayPlan struct {
	Today   string                `json:"today"`
	Items   []model.StudyPlanItem `json:"items"`
	Overdue []model.StudyPlanItem `json:"overdue"`
}

// generator 绑定到给定 sink 的计划生成器
func (s *StudyPlanService) generator(sink planner.PlanItemSink) *planner.Generator {
	return planner.NewGenerator(s.TestRepo, s.WeakAreaRepo, s.SectionRepo, sink, planner.WithClock(now))
}

// Generate 根据成绩和弱项生成计划，计划和全部任务在同一事务中写入
func (s *StudyPlanService) Generate(ctx context.Context, userID uint, req GeneratePlanRequest) (*model.StudyPlan, error) {
	testDate, err := util.ParseDate(req.TestDate)
	if err != nil {
		return nil, err
	}

	var planID uint
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := s.generator(s.PlanRepo.WithTx(tx)).Generate(ctx, userID, testDate, req.PlanName)
		if err != nil {
			return err
		}
		planID = id
		return nil
	})
	if err != nil {
		monitoring.PlanGenerations.WithLabelValues(generationOutcome(err)).Inc()
		if !errors.Is(err, planner.ErrNoTimeRemaining) {
			logger.Log.Error("Study plan generation failed",
				zap.Uint("userID", userID),
				zap.String("testDate", req.TestDate),
				zap.Error(err),
			)
		}
		return nil, err
	}

	plan, err := s.PlanRepo.FindWithItems(planID)
	if err != nil {
		return nil, err
	}

	monitoring.PlanGenerations.WithLabelValues("ok").Inc()
	monitoring.PlanItemsGenerated.Observe(float64(len(plan.Items)))
	logger.Log.Info("Study plan generated",
		zap.Uint("userID", userID),
		zap.Uint("planID", planID),
		zap.Int("items", len(plan.Items)),
	)
	return plan, nil
}

// Preview 只计算不写库
func (s *StudyPlanService) Preview(ctx context.Context, userID uint, req GeneratePlanRequest) (*planner.Schedule, error) {
	testDate, err := util.ParseDate(req.TestDate)
	if err != nil {
		return nil, err
	}
	return s.generator(s.PlanRepo).Build(ctx, userID, testDate, req.PlanName)
}

func generationOutcome(err error) string {
	switch {
	case errors.Is(err, planner.ErrNoTimeRemaining):
		return "no_time"
	case errors.Is(err, planner.ErrSectionNotFound):
		return "section_missing"
	}
	return "error"
}

func (s *StudyPlanService) owned(userID, planID uint) (*model.StudyPlan, error) {
	plan, err := s.PlanRepo.FindByID(planID)
	if err != nil {
		return nil, mapNotFound(err, util.ErrPlanNotFound)
	}
	if plan.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return plan, nil
}

func (s *StudyPlanService) ownedItem(userID, itemID uint) (*model.StudyPlanItem, *model.StudyPlan, error) {
	item, err := s.PlanRepo.FindItem(itemID)
	if err != nil {
		return nil, nil, mapNotFound(err, util.ErrPlanItemNotFound)
	}
	plan, err := s.owned(userID, item.PlanID)
	if err != nil {
		return nil, nil, err
	}
	return item, plan, nil
}

func parseRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := util.ParseDate(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := util.ParseDate(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, util.ErrInvalidDateRange
	}
	return start, end, nil
}

// List status 为空时返回全部计划
func (s *StudyPlanService) List(userID uint, status string) ([]PlanSummary, error) {
	if status != "" && !validPlanStatus(status) {
		return nil, util.ErrInvalidPlanStatus
	}
	plans, err := s.PlanRepo.FindByUser(userID, status)
	if err != nil {
		return nil, err
	}

	list := make([]PlanSummary, 0, len(plans))
	for _, p := range plans {
		pct, err := s.PlanRepo.CompletionPercentage(p.ID)
		if err != nil {
			return nil, err
		}
		list = append(list, PlanSummary{StudyPlan: p, CompletionPercentage: pct})
	}
	return list, nil
}

func (s *StudyPlanService) Get(userID, planID uint) (*PlanDetail, error) {
	if _, err := s.owned(userID, planID); err != nil {
		return nil, err
	}
	plan, err := s.PlanRepo.FindWithItems(planID)
	if err != nil {
		return nil, err
	}
	pct, err := s.PlanRepo.CompletionPercentage(planID)
	if err != nil {
		return nil, err
	}
	total, err := s.PlanRepo.TotalMinutes(planID)
	if err != nil {
		return nil, err
	}
	bySection, err := s.PlanRepo.TimeBySection(planID)
	if err != nil {
		return nil, err
	}
	return &PlanDetail{
		StudyPlan:            plan,
		CompletionPercentage: pct,
		TotalMinutes:         total,
		TimeBySection:        bySection,
	}, nil
}

// Create 手动创建计划，不能与进行中的计划日期重叠
func (s *StudyPlanService) Create(userID uint, req PlanRequest) (*model.StudyPlan, error) {
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	overlap, err := s.PlanRepo.HasOverlap(userID, start, end, 0)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, util.ErrPlanOverlap
	}

	plan := &model.StudyPlan{
		UserID:    userID,
		Name:      strings.TrimSpace(req.Name),
		StartDate: start,
		EndDate:   end,
		Status:    model.PlanStatusActive,
	}
	if err := s.PlanRepo.Create(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *StudyPlanService) Update(userID, planID uint, req PlanRequest) (*model.StudyPlan, error) {
	plan, err := s.owned(userID, planID)
	if err != nil {
		return nil, err
	}
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if plan.Status == model.PlanStatusActive {
		overlap, err := s.PlanRepo.HasOverlap(userID, start, end, planID)
		if err != nil {
			return nil, err
		}
		if overlap {
			return nil, util.ErrPlanOverlap
		}
	}

	plan.Name = strings.TrimSpace(req.Name)
	plan.StartDate = start
	plan.EndDate = end
	if err := s.PlanRepo.Update(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *StudyPlanService) Delete(userID, planID uint) error {
	if _, err := s.owned(userID, planID); err != nil {
		return err
	}
	return s.PlanRepo.Delete(planID)
}

// UpdateStatus 重新激活时同样检查日期重叠
func (s *StudyPlanService) UpdateStatus(userID, planID uint, status string) error {
	if !validPlanStatus(status) {
		return util.ErrInvalidPlanStatus
	}
	plan, err := s.owned(userID, planID)
	if err != nil {
		return err
	}
	if status == model.PlanStatusActive && plan.Status != model.PlanStatusActive {
		overlap, err := s.PlanRepo.HasOverlap(userID, plan.StartDate, plan.EndDate, planID)
		if err != nil {
			return err
		}
		if overlap {
			return util.ErrPlanOverlap
		}
	}
	return s.PlanRepo.UpdateStatus(planID, status)
}

func validPlanStatus(status string) bool {
	for _, st := range model.PlanStatuses {
		if st == status {
			return true
		}
	}
	return false
}

func (s *StudyPlanService) applyItem(item *model.StudyPlanItem, req PlanItemRequest) error {
	date, err := util.ParseDate(req.ScheduledDate)
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
	if req.ResourceID != nil {
		if _, err := s.ResourceRepo.FindByID(*req.ResourceID); err != nil {
			return mapNotFound(err, util.ErrResourceNotFound)
		}
	}

	item.SectionID = req.SectionID
	item.Section = nil
	item.Title = strings.TrimSpace(req.Title)
	item.Description = req.Description
	item.ScheduledDate = date
	item.DurationMinutes = req.DurationMinutes
	item.ResourceID = req.ResourceID
	item.Resource = nil
	return nil
}

func (s *StudyPlanService) AddItem(userID, planID uint, req PlanItemRequest) (*model.StudyPlanItem, error) {
	if _, err := s.owned(userID, planID); err != nil {
		return nil, err
	}
	item := &model.StudyPlanItem{PlanID: planID}
	if err := s.applyItem(item, req); err != nil {
		return nil, err
	}
	if err := s.PlanRepo.AddItem(item); err != nil {
		return nil, err
	}
	return s.PlanRepo.FindItem(item.ID)
}

func (s *StudyPlanService) UpdateItem(userID, itemID uint, req PlanItemRequest) (*model.StudyPlanItem, error) {
	item, _, err := s.ownedItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	if err := s.applyItem(item, req); err != nil {
		return nil, err
	}
	if err := s.PlanRepo.UpdateItem(item); err != nil {
		return nil, err
	}
	return s.PlanRepo.FindItem(itemID)
}

func (s *StudyPlanService) DeleteItem(userID, itemID uint) error {
	if _, _, err := s.ownedItem(userID, itemID); err != nil {
		return err
	}
	return s.PlanRepo.DeleteItem(itemID)
}

func (s *StudyPlanService) SetItemCompleted(userID, itemID uint, completed bool) error {
	if _, _, err := s.ownedItem(userID, itemID); err != nil {
		return err
	}
	return s.PlanRepo.SetItemCompleted(itemID, completed)
}

func (s *StudyPlanService) RescheduleItem(userID, itemID uint, dateStr string) (*model.StudyPlanItem, error) {
	if _, _, err := s.ownedItem(userID, itemID); err != nil {
		return nil, err
	}
	date, err := util.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}
	if err := s.PlanRepo.RescheduleItem(itemID, date); err != nil {
		return nil, err
	}
	return s.PlanRepo.FindItem(itemID)
}

// Today 今天的任务及逾期未完成的任务
func (s *StudyPlanService) Today(userID uint) (*TodayPlan, error) {
	today := util.Today(now())
	items, err := s.PlanRepo.ItemsOn(userID, today)
	if err != nil {
		return nil, err
	}
	overdue, err := s.PlanRepo.Overdue(userID, today)
	if err != nil {
		return nil, err
	}
	return &TodayPlan{Today: today.Format(util.DateFormat), Items: items, Overdue: overdue}, nil
}

// UpcomingDays 超出 [1, 上限] 时回落到缺省天数
func (s *StudyPlanService) UpcomingDays(days int) int {
	pc := s.plannerCfg.Load()
	if days < 1 || days > pc.UpcomingMaxDays {
		return pc.UpcomingDefaultDays
	}
	return days
}

// Upcoming 从今天起 days 天内的任务，按日期分组
func (s *StudyPlanService) Upcoming(userID uint, days int) ([]DayItems, error) {
	days = s.UpcomingDays(days)
	today := util.Today(now())
	items, err := s.PlanRepo.ItemsBetween(userID, today, today.AddDate(0, 0, days))
	if err != nil {
		return nil, err
	}
	return GroupByDate(items), nil
}

func (s *StudyPlanService) Overdue(userID uint) ([]model.StudyPlanItem, error) {
	return s.PlanRepo.Overdue(userID, util.Today(now()))
}

// CompleteExpiredPlans 后台任务调用，考试日期已过的计划自动结束
func (s *StudyPlanService) CompleteExpiredPlans() (int64, error) {
	return s.PlanRepo.CompleteExpired(util.Today(now()))
}

func (s *StudyPlanService) TimeBySection(userID, planID uint) ([]model.SectionMinutes, error) {
	if _, err := s.owned(userID, planID); err != nil {
		return nil, err
	}
	return s.PlanRepo.TimeBySection(planID)
}

func (s *StudyPlanService) CountBySection(userID, planID uint) ([]model.SectionCount, error) {
	if _, err := s.owned(userID, planID); err != nil {
		return nil, err
	}
	return s.PlanRepo.CountBySection(planID)
}

// GroupByDate 输入需已按日期排序
func GroupByDate(items []model.StudyPlanItem) []DayItems {
	groups := make([]DayItems, 0)
	for _, item := range items {
		key := item.ScheduledDate.Format(util.DateFormat)
		if n := len(groups); n > 0 && groups[n-1].Date == key {
			groups[n-1].Items = append(groups[n-1].Items, item)
			continue
		}
		groups = append(groups, DayItems{Date: key, Items: []model.StudyPlanItem{item}})
	}
	return groups
}
