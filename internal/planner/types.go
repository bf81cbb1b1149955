package planner

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNoTimeRemaining 考试日期不在今天之后
	ErrNoTimeRemaining = errors.New("test date must be after today")
	// ErrSectionNotFound 弱项或活动引用了目录中不存在的部分
	ErrSectionNotFound = errors.New("section not found")
)

// 固定的四个考试部分
const (
	SectionReading   uint = 1
	SectionWriting   uint = 2
	SectionListening uint = 3
	SectionSpeaking  uint = 4
)

const PlanStatusActive = "active"

type Section struct {
	ID   uint
	Name string
}

// SectionScore 某部分最近一次成绩
type SectionScore struct {
	SectionID uint
	Score     float64
	AsOf      time.Time
}

type WeakArea struct {
	SectionID uint
	SubSkill  string
	Priority  int
}

type Plan struct {
	UserID    uint
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Status    string
}

// PlanItem 生成的单个学习任务，SectionID 为空表示综合任务
type PlanItem struct {
	PlanID          uint
	SectionID       *uint
	Title           string
	Description     string
	ScheduledDate   time.Time
	DurationMinutes int
	Completed       bool
	ResourceID      *uint
}

type ScoreRepository interface {
	LatestSectionScores(ctx context.Context, userID uint) ([]SectionScore, error)
}

type WeakAreaRepository interface {
	UserWeakAreas(ctx context.Context, userID uint) ([]WeakArea, error)
}

type SectionCatalog interface {
	AllSections(ctx context.Context) ([]Section, error)
}

// PlanItemSink 持久化生成的计划及其任务
type PlanItemSink interface {
	CreatePlan(ctx context.Context, plan *Plan) (uint, error)
	AddPlanItem(ctx context.Context, item *PlanItem) (uint, error)
}
