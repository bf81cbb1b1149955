package service

import (
	"fmt"
	"ielts_tracker_backend/internal/config"
	"ielts_tracker_backend/internal/model"
	"ielts_tracker_backend/internal/repository"
	"ielts_tracker_backend/pkg/database"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db       *gorm.DB
	cfg      *config.Config
	users    *repository.UserRepository
	sections *repository.SectionRepository
	tests    *repository.PracticeTestRepository
	weak     *repository.WeakAreaRepository
	sessions *repository.StudySessionRepository
	goals    *repository.GoalRepository
	plans    *repository.StudyPlanRepository
	res      *repository.ResourceRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour
	cfg.Planner = config.PlannerConfig{UpcomingDefaultDays: 7, UpcomingMaxDays: 30, GoalLookaheadDays: 30}

	return &testEnv{
		db:       db,
		cfg:      cfg,
		users:    repository.NewUserRepository(db),
		sections: repository.NewSectionRepository(db),
		tests:    repository.NewPracticeTestRepository(db, nil),
		weak:     repository.NewWeakAreaRepository(db),
		sessions: repository.NewStudySessionRepository(db),
		goals:    repository.NewGoalRepository(db),
		plans:    repository.NewStudyPlanRepository(db),
		res:      repository.NewResourceRepository(db),
	}
}

func (e *testEnv) practice() *PracticeService {
	return NewPracticeService(e.tests, e.sections)
}

func (e *testEnv) planService() *StudyPlanService {
	return NewStudyPlanService(e.db, e.plans, e.tests, e.weak, e.sections, e.res, e.cfg)
}

func (e *testEnv) goalService() *GoalService {
	return NewGoalService(e.goals, e.tests, e.sections, e.cfg)
}

func (e *testEnv) user(t *testing.T, username string) *model.User {
	t.Helper()
	u := &model.User{Name: username, Username: username, Email: username + "@example.com", Password: "x"}
	if err := e.users.Create(u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

// freezeNow 固定服务层的当前时间
func freezeNow(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func utcDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T { return &v }
