package service

import (
	"context"
	"errors"
	"ielts_tracker_backend/internal/config"
	"ielts_tracker_backend/internal/model"
	"ielts_tracker_backend/internal/planner"
	"ielts_tracker_backend/internal/util"
	"testing"
)

func TestGeneratePersistsPlanInOneGo(t *testing.T) {
	env := newTestEnv(t)
	freezeNow(t, utcDay(2026, 10, 17))
	user := env.user(t, "mei")
	svc := env.planService()

	plan, err := svc.Generate(context.Background(), user.ID, GeneratePlanRequest{TestDate: "2026-11-23"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if plan.Name != "Study Plan for Test on 23 Nov 2026" {
		t.Fatalf("name: got %q", plan.Name)
	}
	if plan.Status != model.PlanStatusActive || !plan.StartDate.Equal(utcDay(2026, 10, 17)) || !plan.EndDate.Equal(utcDay(2026, 11, 23)) {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	if len(plan.Items) != 21 {
		t.Fatalf("items: want=21 got=%d", len(plan.Items))
	}

	mocks := 0
	for _, item := range plan.Items {
		if item.SectionID == nil {
			mocks++
			if item.DurationMinutes != 180 || !item.ScheduledDate.Equal(utcDay(2026, 11, 20)) {
				t.Fatalf("mock test: %+v", item)
			}
		}
		if !item.ScheduledDate.Before(plan.EndDate) || item.ScheduledDate.Before(plan.StartDate) {
			t.Fatalf("item outside plan range: %s", item.ScheduledDate)
		}
	}
	if mocks != 1 {
		t.Fatalf("mock tests: want=1 got=%d", mocks)
	}

	detail, err := svc.Get(user.ID, plan.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if detail.CompletionPercentage != 0 || detail.TotalMinutes == 0 {
		t.Fatalf("detail: %+v", detail)
	}
}

func TestGenerateRejectsBadDates(t *testing.T) {
	env := newTestEnv(t)
	freezeNow(t, utcDay(2026, 10, 17))
	user := env.user(t, "mei")
	svc := env.planService()

	cases := []struct {
		date string
		want error
	}{
		{"2026-10-17", planner.ErrNoTimeRemaining},
		{"2026-09-01", planner.ErrNoTimeRemaining},
		{"23/11/2026", util.ErrInvalidDate},
		{"", util.ErrInvalidDate},
	}
	for _, tc := range cases {
		_, err := svc.Generate(context.Background(), user.ID, GeneratePlanRequest{TestDate: tc.date})
		if !errors.Is(err, tc.want) {
			t.Fatalf("%q: want %v got %v", tc.date, tc.want, err)
		}
	}

	var plans, items int64
	env.db.Model(&model.StudyPlan{}).Count(&plans)
	env.db.Model(&model.StudyPlanItem{}).Count(&items)
	if plans != 0 || items != 0 {
		t.Fatalf("nothing should be written: plans=%d items=%d", plans, items)
	}
}

func TestPreviewDoesNotWrite(t *testing.T) {
	env := newTestEnv(t)
	freezeNow(t, utcDay(2026, 10, 17))
	user := env.user(t, "mei")

	schedule, err := env.planService().Preview(context.Background(), user.ID, GeneratePlanRequest{TestDate: "2026-11-23", PlanName: "Autumn"})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	if schedule.Plan.Name != "Autumn" || len(schedule.Items) != 21 || schedule.Distribution.Total() != 30 {
		t.Fatalf("unexpected schedule: name=%q items=%d total=%d", schedule.Plan.Name, len(schedule.Items), schedule.Distribution.Total())
	}

	var plans int64
	env.db.Model(&model.StudyPlan{}).Count(&plans)
	if plans != 0 {
		t.Fatalf("preview wrote %d plans", plans)
	}
}

func TestPlanOverlapAndStatus(t *testing.T) {
	env := newTestEnv(t)
	freezeNow(t, utcDay(2026, 10, 17))
	user := env.user(t, "mei")
	other := env.user(t, "tom")
	svc := env.planService()

	generated, err := svc.Generate(context.Background(), user.ID, GeneratePlanRequest{TestDate: "2026-11-23"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := PlanRequest{Name: "Extra", StartDate: "2026-11-01", EndDate: "2026-11-10"}
	if _, err := svc.Create(user.ID, req); !errors.Is(err, util.ErrPlanOverlap) {
		t.Fatalf("overlap: want ErrPlanOverlap got %v", err)
	}
	if _, err := svc.Create(other.ID, req); err != nil {
		t.Fatalf("other user should not overlap: %v", err)
	}
	if _, err := svc.Create(user.ID, PlanRequest{Name: "Bad", StartDate: "2026-11-10", EndDate: "2026-11-01"}); !errors.Is(err, util.ErrInvalidDateRange) {
		t.Fatalf("reversed range: got %v", err)
	}

	if err := svc.UpdateStatus(user.ID, generated.ID, "paused"); !errors.Is(err, util.ErrInvalidPlanStatus) {
		t.Fatalf("bad status: got %v", err)
	}
	if err := svc.UpdateStatus(other.ID, generated.ID, model.PlanStatusCancelled); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("foreign plan: got %v", err)
	}
	if err := svc.UpdateStatus(user.ID, generated.ID, model.PlanStatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := svc.Create(user.ID, req); err != nil {
		t.Fatalf("create after cancel: %v", err)
	}
	if err := svc.UpdateStatus(user.ID, generated.ID, model.PlanStatusActive); !errors.Is(err, util.ErrPlanOverlap) {
		t.Fatalf("reactivate over new plan: got %v", err)
	}
}

func TestTodayAndUpcoming(t *testing.T) {
	env := newTestEnv(t)
	freezeNow(t, utcDay(2026, 10, 17))
	user := env.user(t, "mei")
	svc := env.planService()

	if _, err := svc.Generate(context.Background(), user.ID, GeneratePlanRequest{TestDate: "2026-11-23"}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	today, err := svc.Today(user.ID)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if today.Today != "2026-10-17" || len(today.Items) != 4 || len(today.Overdue) != 0 {
		t.Fatalf("today: %+v", today)
	}

	groups, err := svc.Upcoming(user.ID, 0)
	if err != nil {
		t.Fatalf("upcoming: %v", err)
	}
	if len(groups) != 1 || groups[0].Date != "2026-10-17" || len(groups[0].Items) != 4 {
		t.Fatalf("upcoming groups: %+v", groups)
	}

	freezeNow(t, utcDay(2026, 10, 19))
	overdue, err := svc.Overdue(user.ID)
	if err != nil || len(overdue) != 4 {
		t.Fatalf("overdue: want 4 got %d err %v", len(overdue), err)
	}
	if err := svc.SetItemCompleted(user.ID, overdue[0].ID, true); err != nil {
		t.Fatalf("complete: %v", err)
	}
	overdue, _ = svc.Overdue(user.ID)
	if len(overdue) != 3 {
		t.Fatalf("overdue after completing one: want=3 got=%d", len(overdue))
	}
}

func TestUpcomingDaysFallsBackToDefault(t *testing.T) {
	env := newTestEnv(t)
	svc := env.planService()

	for in, want := range map[int]int{0: 7, -3: 7, 31: 7, 1: 1, 14: 14, 30: 30} {
		if got := svc.UpcomingDays(in); got != want {
			t.Fatalf("UpcomingDays(%d): want=%d got=%d", in, want, got)
		}
	}

	svc.SetPlannerConfig(config.PlannerConfig{UpcomingDefaultDays: 3, UpcomingMaxDays: 10, GoalLookaheadDays: 30})
	if got := svc.UpcomingDays(14); got != 3 {
		t.Fatalf("after reload: want=3 got=%d", got)
	}
}

func TestGroupByDate(t *testing.T) {
	items := []model.StudyPlanItem{
		{Title: "a", ScheduledDate: utcDay(2026, 10, 17)},
		{Title: "b", ScheduledDate: utcDay(2026, 10, 17)},
		{Title: "c", ScheduledDate: utcDay(2026, 10, 19)},
	}
	groups := GroupByDate(items)
	if len(groups) != 2 || len(groups[0].Items) != 2 || groups[1].Date != "2026-10-19" {
		t.Fatalf("groups: %+v", groups)
	}
	if got := GroupByDate(nil); len(got) != 0 {
		t.Fatalf("empty input: %+v", got)
	}
}

func TestCompleteExpiredPlans(t *testing.T) {
	env := newTestEnv(t)
	freezeNow(t, utcDay(2026, 10, 17))
	user := env.user(t, "mei")
	svc := env.planService()

	if _, err := svc.Generate(context.Background(), user.ID, GeneratePlanRequest{TestDate: "2026-11-23"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svc.Create(user.ID, PlanRequest{Name: "Later", StartDate: "2026-12-01", EndDate: "2026-12-20"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	freezeNow(t, utcDay(2026, 12, 2))
	n, err := svc.CompleteExpiredPlans()
	if err != nil {
		t.Fatalf("complete expired: %v", err)
	}
	if n != 1 {
		t.Fatalf("completed: want=1 got=%d", n)
	}

	active, err := env.plans.FindByUser(user.ID, model.PlanStatusActive)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(active) != 1 || active[0].Name != "Later" {
		t.Fatalf("active plans: %+v", active)
	}
}
