package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ielts_tracker_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	finalReviewMinutes = 120
	mockTestMinutes    = 180
)

// Generator 根据成绩和弱项为用户生成备考计划
type Generator struct {
	scores    ScoreRepository
	weakAreas WeakAreaRepository
	sections  SectionCatalog
	sink      PlanItemSink
	now       func() time.Time
}

type Option func(*Generator)

// WithClock 替换当前时间来源，测试时固定“今天”
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

func NewGenerator(scores ScoreRepository, weakAreas WeakAreaRepository, sections SectionCatalog, sink PlanItemSink, opts ...Option) *Generator {
	g := &Generator{
		scores:    scores,
		weakAreas: weakAreas,
		sections:  sections,
		sink:      sink,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Schedule 尚未持久化的计划
type Schedule struct {
	Plan         Plan
	Distribution Distribution
	Items        []PlanItem
}

// Build 计算计划和全部任务，不写库
func (g *Generator) Build(ctx context.Context, userID uint, testDate time.Time, planName string) (*Schedule, error) {
	start := DateOf(g.now())
	test := DateOf(testDate)

	totalDays := DaysBetween(start, test)
	if totalDays <= 0 {
		return nil, ErrNoTimeRemaining
	}

	planName = strings.TrimSpace(planName)
	if planName == "" {
		planName = DefaultPlanName(test)
	}

	scores, err := g.scores.LatestSectionScores(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load latest section scores: %w", err)
	}
	weakAreas, err := g.weakAreas.UserWeakAreas(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load weak areas: %w", err)
	}
	sections, err := g.sections.AllSections(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sections: %w", err)
	}

	sectionByID := make(map[uint]Section, len(sections))
	for _, s := range sections {
		sectionByID[s.ID] = s
	}
	for _, w := range weakAreas {
		if _, ok := sectionByID[w.SectionID]; !ok {
			return nil, fmt.Errorf("%w: weak area %q references section %d", ErrSectionNotFound, w.SubSkill, w.SectionID)
		}
	}

	dist := CalculateStudyDistribution(weakAreas, scores, sections, totalDays)

	var items []PlanItem
	for _, alloc := range dist {
		section, ok := sectionByID[alloc.SectionID]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrSectionNotFound, alloc.SectionID)
		}
		sectionItems, err := SectionPlanItems(section, weakAreasFor(weakAreas, section.ID), alloc.Days, start, test)
		if err != nil {
			return nil, err
		}
		items = append(items, sectionItems...)
	}
	items = append(items, ClosingItems(sections, start, test)...)

	return &Schedule{
		Plan: Plan{
			UserID:    userID,
			Name:      planName,
			StartDate: start,
			EndDate:   test,
			Status:    PlanStatusActive,
		},
		Distribution: dist,
		Items:        items,
	}, nil
}

// Generate 生成并保存计划，返回计划ID
func (g *Generator) Generate(ctx context.Context, userID uint, testDate time.Time, planName string) (uint, error) {
	ctx, span := tracing.Tracer.Start(ctx, "planner.Generate")
	defer span.End()

	schedule, err := g.Build(ctx, userID, testDate, planName)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	planID, err := g.sink.CreatePlan(ctx, &schedule.Plan)
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("create study plan: %w", err)
	}

	for i := range schedule.Items {
		item := &schedule.Items[i]
		item.PlanID = planID
		if _, err := g.sink.AddPlanItem(ctx, item); err != nil {
			span.RecordError(err)
			return 0, fmt.Errorf("add plan item %q: %w", item.Title, err)
		}
	}

	span.SetAttributes(
		attribute.Int("plan.id", int(planID)),
		attribute.Int("plan.items", len(schedule.Items)),
		attribute.Int("plan.days", DaysBetween(schedule.Plan.StartDate, schedule.Plan.EndDate)),
	)
	return planID, nil
}

// SectionPlanItems 为单个部分生成 dayCount 个任务，落在复习窗口内的直接跳过
func SectionPlanItems(section Section, weakAreas []WeakArea, dayCount int, start, testDate time.Time) ([]PlanItem, error) {
	activities, ok := activitiesFor(section.ID)
	if !ok {
		return nil, fmt.Errorf("%w: no activities for section %d", ErrSectionNotFound, section.ID)
	}

	focus := make([]string, 0, len(weakAreas))
	for _, w := range weakAreas {
		focus = append(focus, w.SubSkill)
	}
	if len(focus) == 0 {
		for _, a := range activities {
			focus = append(focus, a.Title)
		}
	}

	items := make([]PlanItem, 0, dayCount)
	for i := 0; i < dayCount; i++ {
		date := TaskDate(start, i)
		if InBlackout(date, testDate) {
			continue
		}

		act := activities[i%len(activities)]
		sectionID := section.ID
		items = append(items, PlanItem{
			SectionID:       &sectionID,
			Title:           act.Title,
			Description:     act.Description + "\n\nFocus area: " + focus[i%len(focus)],
			ScheduledDate:   date,
			DurationMinutes: durations[i%len(durations)],
		})
	}
	return items, nil
}

// ClosingItems 每部分一次总复习，加一次全真模考
func ClosingItems(sections []Section, start, testDate time.Time) []PlanItem {
	start = DateOf(start)
	testDate = DateOf(testDate)

	items := make([]PlanItem, 0, len(sections)+1)
	for _, s := range sections {
		sectionID := s.ID
		items = append(items, PlanItem{
			SectionID:       &sectionID,
			Title:           "Final Review: " + s.Name,
			Description:     "Complete a full practice test and review all weak areas for " + s.Name,
			ScheduledDate:   notBefore(testDate.AddDate(0, 0, -ReviewOffsetDays(s.ID)), start),
			DurationMinutes: finalReviewMinutes,
		})
	}

	items = append(items, PlanItem{
		Title:           "Full Mock Test",
		Description:     "Complete a full IELTS mock test under timed conditions",
		ScheduledDate:   notBefore(testDate.AddDate(0, 0, -MockTestOffsetDays), start),
		DurationMinutes: mockTestMinutes,
	})
	return items
}

func weakAreasFor(weakAreas []WeakArea, sectionID uint) []WeakArea {
	var out []WeakArea
	for _, w := range weakAreas {
		if w.SectionID == sectionID {
			out = append(out, w)
		}
	}
	return out
}

// notBefore 考试临近时把日期压到计划开始日
func notBefore(date, floor time.Time) time.Time {
	if date.Before(floor) {
		return floor
	}
	return date
}
