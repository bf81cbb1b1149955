package service

import (
	"context"
	"encoding/json"
	"fmt"
	"ielts_tracker_backend/internal/model"
	"ielts_tracker_backend/internal/planner"
	"ielts_tracker_backend/internal/repository"
	"ielts_tracker_backend/internal/util"
	"ielts_tracker_backend/pkg/logger"
	"ielts_tracker_backend/pkg/monitoring"
	"math"
	"sort"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	testPrepLookaheadDays = 14
	hoursPerBand          = 20 // 每差 1 分建议学习 20 小时
	topWeakAreas          = 3
)

type DashboardService struct {
	UserRepo        *repository.UserRepository
	TestRepo        *repository.PracticeTestRepository
	SessionRepo     *repository.StudySessionRepository
	WeakAreaRepo    *repository.WeakAreaRepository
	SectionRepo     *repository.SectionRepository
	PracticeService *PracticeService
	PlanService     *StudyPlanService
	GoalService     *GoalService
	Redis           *redis.Client

	cacheTTL atomic.Int64
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	testRepo *repository.PracticeTestRepository,
	sessionRepo *repository.StudySessionRepository,
	weakAreaRepo *repository.WeakAreaRepository,
	sectionRepo *repository.SectionRepository,
	practiceService *PracticeService,
	planService *StudyPlanService,
	goalService *GoalService,
	rdb *redis.Client,
	cacheTTL time.Duration,
) *DashboardService {
	s := &DashboardService{
		UserRepo:        userRepo,
		TestRepo:        testRepo,
		SessionRepo:     sessionRepo,
		WeakAreaRepo:    weakAreaRepo,
		SectionRepo:     sectionRepo,
		PracticeService: practiceService,
		PlanService:     planService,
		GoalService:     goalService,
		Redis:           rdb,
	}
	s.SetCacheTTL(cacheTTL)
	return s
}

// SetCacheTTL 配置热更新时调用，<=0 关闭缓存
func (s *DashboardService) SetCacheTTL(ttl time.Duration) {
	s.cacheTTL.Store(int64(ttl))
}

func (s *DashboardService) CacheTTL() time.Duration {
	return time.Duration(s.cacheTTL.Load())
}

type Dashboard struct {
	User               *model.User           `json:"user"`
	DaysUntilTest      *int                  `json:"daysUntilTest"`
	LatestScores       []LatestScore         `json:"latestScores"`
	ActiveSession      *model.StudySession   `json:"activeSession"`
	TodayItems         []model.StudyPlanItem `json:"todayItems"`
	TopWeakAreas       []model.WeakArea      `json:"topWeakAreas"`
	WeeklyStudyMinutes int                   `json:"weeklyStudyMinutes"`
	LatestTest         *TestDetail           `json:"latestTest"`
	UpcomingGoals      []model.StudyGoal     `json:"upcomingGoals"`
}

type Progress struct {
	Tests              []TestDetail                         `json:"tests"`
	ScoreHistory       map[string][]model.SectionScorePoint `json:"scoreHistory"`
	StudyTimeBySection []model.SectionMinutes               `json:"studyTimeBySection"`
	WeakAreasBySection []model.SectionCount                 `json:"weakAreasBySection"`
	GoalProgress       []GoalProgress                       `json:"goalProgress"`
}

type TestScoresOnDate struct {
	Date         string            `json:"date"`
	TestID       uint              `json:"testId"`
	Name         string            `json:"name"`
	OverallScore *float64          `json:"overallScore"`
	Scores       []model.TestScore `json:"scores"`
}

type Analytics struct {
	StartDate        string                 `json:"startDate"`
	EndDate          string                 `json:"endDate"`
	Tests            []TestScoresOnDate     `json:"tests"`
	Sessions         []model.StudySession   `json:"sessions"`
	WeeklyStudyTime  []WeekMinutes          `json:"weeklyStudyTime"`
	DailyStudyTime   []model.DailyMinutes   `json:"dailyStudyTime"`
	SectionAverages  []model.SectionAverage `json:"sectionAverages"`
	StrongestSection *model.SectionAverage  `json:"strongestSection"`
	WeakestSection   *model.SectionAverage  `json:"weakestSection"`
}

// WeekMinutes 周的键形如 2026-W42（ISO 周）
type WeekMinutes struct {
	Week         string `json:"week"`
	TotalMinutes int    `json:"totalMinutes"`
}

type SectionStudyNeed struct {
	SectionID        uint    `json:"sectionId"`
	SectionName      string  `json:"sectionName"`
	CurrentScore     float64 `json:"currentScore"`
	TargetScore      float64 `json:"targetScore"`
	ScoreGap         float64 `json:"scoreGap"`
	RecommendedHours int     `json:"recommendedHours"`
	DailyMinutes     int     `json:"dailyMinutes"`
}

type TestPrepSummary struct {
	TestDate        string             `json:"testDate"`
	DaysRemaining   int                `json:"daysRemaining"`
	LatestScores    []LatestScore      `json:"latestScores"`
	Goals           []model.StudyGoal  `json:"goals"`
	WeakAreas       []model.WeakArea   `json:"weakAreas"`
	UpcomingItems   []DayItems         `json:"upcomingItems"`
	StudyTimeNeeded []SectionStudyNeed `json:"studyTimeNeeded"`
}

func dashboardKey(userID uint) string {
	return fmt.Sprintf("ielts:dashboard:%d", userID)
}

// InvalidateDashboard 数据变化后清除缓存
func (s *DashboardService) InvalidateDashboard(ctx context.Context, userID uint) {
	if s.Redis == nil {
		return
	}
	s.Redis.Del(ctx, dashboardKey(userID))
}

// GetDashboard 启用 Redis 时按配置的 TTL 缓存
func (s *DashboardService) GetDashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	ttl := s.CacheTTL()
	useCache := s.Redis != nil && ttl > 0

	if useCache {
		if cached, err := s.Redis.Get(ctx, dashboardKey(userID)).Bytes(); err == nil {
			var d Dashboard
			if json.Unmarshal(cached, &d) == nil {
				monitoring.CacheLookups.WithLabelValues("dashboard", "hit").Inc()
				return &d, nil
			}
		}
		monitoring.CacheLookups.WithLabelValues("dashboard", "miss").Inc()
	}

	d, err := s.buildDashboard(ctx, userID)
	if err != nil {
		return nil, err
	}

	if useCache {
		if data, err := json.Marshal(d); err == nil {
			if err := s.Redis.Set(ctx, dashboardKey(userID), data, ttl).Err(); err != nil {
				logger.Log.Warn("Failed to cache dashboard", zap.Uint("userID", userID), zap.Error(err))
			}
		}
	}
	return d, nil
}

func (s *DashboardService) buildDashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, mapNotFound(err, util.ErrUserNotFound)
	}

	latest, err := s.PracticeService.LatestScores(ctx, userID)
	if err != nil {
		return nil, err
	}

	var active *model.StudySession
	if session, err := s.SessionRepo.FindActive(userID); err == nil {
		active = session
	}

	today, err := s.PlanService.Today(userID)
	if err != nil {
		return nil, err
	}

	weakAreas, err := s.WeakAreaRepo.Top(userID, topWeakAreas)
	if err != nil {
		return nil, err
	}

	weekStart, weekEnd, _ := PeriodRange(util.PeriodWeek, now())
	weekly, err := s.SessionRepo.TotalMinutes(userID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	var latestTest *TestDetail
	if test, err := s.TestRepo.Latest(userID); err == nil {
		latestTest = &TestDetail{PracticeTest: test, OverallScore: overallOf(test.Scores)}
	}

	goals, err := s.GoalService.Upcoming(userID, 0)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		User:               user,
		DaysUntilTest:      DaysUntil(user.TestDate, now()),
		LatestScores:       latest,
		ActiveSession:      active,
		TodayItems:         today.Items,
		TopWeakAreas:       weakAreas,
		WeeklyStudyMinutes: weekly,
		LatestTest:         latestTest,
		UpcomingGoals:      goals,
	}, nil
}

func (s *DashboardService) GetProgress(userID uint) (*Progress, error) {
	tests, _, err := s.PracticeService.ListTests(userID, 1, 0)
	if err != nil {
		return nil, err
	}

	sections, err := s.SectionRepo.FindAll()
	if err != nil {
		return nil, err
	}
	history := make(map[string][]model.SectionScorePoint, len(sections))
	for _, sec := range sections {
		points, err := s.TestRepo.SectionHistory(userID, sec.ID, 0)
		if err != nil {
			return nil, err
		}
		history[sec.Name] = points
	}

	studyTime, err := s.SessionRepo.MinutesPerSection(userID, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}
	weakCounts, err := s.WeakAreaRepo.CountBySection(userID)
	if err != nil {
		return nil, err
	}
	goals, err := s.GoalService.Progress(userID)
	if err != nil {
		return nil, err
	}

	return &Progress{
		Tests:              tests,
		ScoreHistory:       history,
		StudyTimeBySection: studyTime,
		WeakAreasBySection: weakCounts,
		GoalProgress:       goals,
	}, nil
}

// GetAnalytics 日期区间首尾均包含，零值时默认最近三个月
func (s *DashboardService) GetAnalytics(userID uint, from, to time.Time) (*Analytics, error) {
	today := util.Today(now())
	if to.IsZero() {
		to = today
	}
	if from.IsZero() {
		from = to.AddDate(0, -3, 0)
	}
	if to.Before(from) {
		return nil, util.ErrInvalidDateRange
	}

	tests, err := s.TestRepo.FindBetween(userID, from, to)
	if err != nil {
		return nil, err
	}
	sessions, err := s.SessionRepo.FindBetween(userID, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	a := &Analytics{
		StartDate:       from.Format(util.DateFormat),
		EndDate:         to.Format(util.DateFormat),
		Sessions:        sessions,
		WeeklyStudyTime: weeklyMinutes(sessions, from, to),
		DailyStudyTime:  dailyMinutes(sessions),
	}

	sums := make(map[uint]float64)
	counts := make(map[uint]int)
	for i := range tests {
		t := tests[i]
		a.Tests = append(a.Tests, TestScoresOnDate{
			Date:         t.TestDate.Format(util.DateFormat),
			TestID:       t.ID,
			Name:         t.Name,
			OverallScore: overallOf(t.Scores),
			Scores:       t.Scores,
		})
		for _, sc := range t.Scores {
			sums[sc.SectionID] += sc.Score
			counts[sc.SectionID]++
		}
	}

	sections, err := s.SectionRepo.FindAll()
	if err != nil {
		return nil, err
	}
	for _, sec := range sections {
		if counts[sec.ID] == 0 {
			continue
		}
		a.SectionAverages = append(a.SectionAverages, model.SectionAverage{
			SectionID:   sec.ID,
			SectionName: sec.Name,
			AvgScore:    sums[sec.ID] / float64(counts[sec.ID]),
		})
	}
	sort.SliceStable(a.SectionAverages, func(i, j int) bool {
		return a.SectionAverages[i].AvgScore < a.SectionAverages[j].AvgScore
	})
	if n := len(a.SectionAverages); n > 0 {
		weakest := a.SectionAverages[0]
		strongest := a.SectionAverages[n-1]
		a.WeakestSection = &weakest
		a.StrongestSection = &strongest
	}
	return a, nil
}

func isoWeekKey(t time.Time) string {
	y, w := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", y, w)
}

// weeklyMinutes 区间内每个 ISO 周都有一项，没有学习记录的周为 0
func weeklyMinutes(sessions []model.StudySession, from, to time.Time) []WeekMinutes {
	var weeks []WeekMinutes
	index := make(map[string]int)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := isoWeekKey(d)
		if _, ok := index[key]; ok {
			continue
		}
		index[key] = len(weeks)
		weeks = append(weeks, WeekMinutes{Week: key})
	}
	for _, sess := range sessions {
		if i, ok := index[isoWeekKey(sess.StartTime)]; ok {
			weeks[i].TotalMinutes += sess.Duration
		}
	}
	return weeks
}

func dailyMinutes(sessions []model.StudySession) []model.DailyMinutes {
	var days []model.DailyMinutes
	for _, sess := range sessions {
		key := sess.StartTime.Format(util.DateFormat)
		if n := len(days); n > 0 && days[n-1].Day == key {
			days[n-1].TotalMinutes += sess.Duration
			continue
		}
		days = append(days, model.DailyMinutes{Day: key, TotalMinutes: sess.Duration})
	}
	return days
}

// GetTestPrepSummary 需要先在个人资料中设置考试日期
func (s *DashboardService) GetTestPrepSummary(ctx context.Context, userID uint) (*TestPrepSummary, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, mapNotFound(err, util.ErrUserNotFound)
	}
	if user.TestDate == nil {
		return nil, util.ErrTestDateNotSet
	}
	daysRemaining := *DaysUntil(user.TestDate, now())

	latest, err := s.PracticeService.LatestScores(ctx, userID)
	if err != nil {
		return nil, err
	}
	goals, err := s.GoalService.List(userID)
	if err != nil {
		return nil, err
	}
	weakAreas, err := s.WeakAreaRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.PlanService.Upcoming(userID, testPrepLookaheadDays)
	if err != nil {
		return nil, err
	}
	sections, err := s.SectionRepo.FindAll()
	if err != nil {
		return nil, err
	}

	needs := make([]SectionStudyNeed, 0, len(sections))
	for _, sec := range sections {
		needs = append(needs, studyNeed(sec, latest, goals, user.TargetScore, daysRemaining))
	}

	return &TestPrepSummary{
		TestDate:        planner.DateOf(*user.TestDate).Format(util.DateFormat),
		DaysRemaining:   daysRemaining,
		LatestScores:    latest,
		Goals:           goals,
		WeakAreas:       weakAreas,
		UpcomingItems:   upcoming,
		StudyTimeNeeded: needs,
	}, nil
}

// studyNeed 分项目标优先，否则使用个人目标总分
func studyNeed(sec model.Section, latest []LatestScore, goals []model.StudyGoal, overallTarget *float64, daysRemaining int) SectionStudyNeed {
	need := SectionStudyNeed{SectionID: sec.ID, SectionName: sec.Name}
	for _, sc := range latest {
		if sc.SectionID == sec.ID {
			need.CurrentScore = sc.Score
			break
		}
	}
	if overallTarget != nil {
		need.TargetScore = *overallTarget
	}
	for _, g := range goals {
		if g.SectionID != nil && *g.SectionID == sec.ID {
			need.TargetScore = g.TargetScore
			break
		}
	}

	need.ScoreGap = math.Max(0, need.TargetScore-need.CurrentScore)
	need.RecommendedHours = int(math.Ceil(need.ScoreGap * hoursPerBand))
	if daysRemaining > 0 {
		need.DailyMinutes = int(math.Ceil(float64(need.RecommendedHours*60) / float64(daysRemaining)))
	}
	return need
}
