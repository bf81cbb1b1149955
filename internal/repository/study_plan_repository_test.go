package repository

import (
	"context"
	"ielts_tracker_backend/internal/model"
	"ielts_tracker_backend/internal/planner"
	"testing"
	"time"
)

func seedPlan(t *testing.T, repo *StudyPlanRepository, userID uint, status string, start, end time.Time) *model.StudyPlan {
	t.Helper()
	plan := &model.StudyPlan{UserID: userID, Name: "Plan", StartDate: start, EndDate: end, Status: status}
	if err := repo.Create(plan); err != nil {
		t.Fatalf("create plan: %v", err)
	}
	return plan
}

func seedItem(t *testing.T, repo *StudyPlanRepository, planID uint, sectionID *uint, date time.Time, minutes int, completed bool) *model.StudyPlanItem {
	t.Helper()
	item := &model.StudyPlanItem{
		PlanID:          planID,
		SectionID:       sectionID,
		Title:           "Task",
		ScheduledDate:   date,
		DurationMinutes: minutes,
		Completed:       completed,
	}
	if err := repo.AddItem(item); err != nil {
		t.Fatalf("add item: %v", err)
	}
	return item
}

func TestHasOverlapOnlyActivePlans(t *testing.T) {
	db := newTestDB(t)
	repo := NewStudyPlanRepository(db)
	user := mustCreateUser(t, db, "mei")

	active := seedPlan(t, repo, user.ID, model.PlanStatusActive, day(2026, 10, 1), day(2026, 10, 31))
	seedPlan(t, repo, user.ID, model.PlanStatusCancelled, day(2026, 11, 1), day(2026, 11, 30))

	cases := []struct {
		name       string
		start, end time.Time
		exclude    uint
		want       bool
	}{
		{"inside", day(2026, 10, 10), day(2026, 10, 12), 0, true},
		{"touches last day", day(2026, 10, 31), day(2026, 11, 5), 0, true},
		{"after", day(2026, 11, 1), day(2026, 11, 5), 0, false},
		{"cancelled range ignored", day(2026, 11, 10), day(2026, 11, 20), 0, false},
		{"excluding self", day(2026, 10, 10), day(2026, 10, 12), active.ID, false},
	}
	for _, tc := range cases {
		got, err := repo.HasOverlap(user.ID, tc.start, tc.end, tc.exclude)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: want=%v got=%v", tc.name, tc.want, got)
		}
	}
}

func TestItemQueriesUseActivePlans(t *testing.T) {
	db := newTestDB(t)
	repo := NewStudyPlanRepository(db)
	user := mustCreateUser(t, db, "mei")

	plan := seedPlan(t, repo, user.ID, model.PlanStatusActive, day(2026, 10, 1), day(2026, 10, 31))
	old := seedPlan(t, repo, user.ID, model.PlanStatusCompleted, day(2026, 9, 1), day(2026, 9, 30))

	today := day(2026, 10, 17)
	reading := uintPtr(planner.SectionReading)
	seedItem(t, repo, plan.ID, reading, today, 60, false)
	seedItem(t, repo, plan.ID, nil, today, 180, false)
	seedItem(t, repo, plan.ID, reading, day(2026, 10, 15), 90, false)
	seedItem(t, repo, plan.ID, reading, day(2026, 10, 14), 90, true)
	seedItem(t, repo, plan.ID, reading, day(2026, 10, 20), 120, false)
	seedItem(t, repo, old.ID, reading, today, 60, false)

	items, err := repo.ItemsOn(user.ID, today)
	if err != nil {
		t.Fatalf("items on: %v", err)
	}
	if len(items) != 2 || items[0].DurationMinutes != 180 {
		t.Fatalf("items on: want 2 items led by the mock test, got %+v", items)
	}

	overdue, err := repo.Overdue(user.ID, today)
	if err != nil {
		t.Fatalf("overdue: %v", err)
	}
	if len(overdue) != 1 || !overdue[0].ScheduledDate.Equal(day(2026, 10, 15)) {
		t.Fatalf("overdue: got %+v", overdue)
	}

	upcoming, err := repo.ItemsBetween(user.ID, today, day(2026, 10, 20))
	if err != nil {
		t.Fatalf("between: %v", err)
	}
	if len(upcoming) != 3 {
		t.Fatalf("between: want=3 got=%d", len(upcoming))
	}

	pct, err := repo.CompletionPercentage(plan.ID)
	if err != nil || pct != 20 {
		t.Fatalf("completion: want=20 got=%d err %v", pct, err)
	}

	counts, err := repo.CountBySection(plan.ID)
	if err != nil {
		t.Fatalf("count by section: %v", err)
	}
	byName := map[string]int{}
	for _, c := range counts {
		byName[c.SectionName] = c.Count
	}
	if byName["General"] != 1 || byName["Reading"] != 4 {
		t.Fatalf("count by section: got %v", byName)
	}

	total, err := repo.TotalMinutes(plan.ID)
	if err != nil || total != 540 {
		t.Fatalf("total minutes: want=540 got=%d err %v", total, err)
	}
}

func TestPlannerSinkPersistsPlan(t *testing.T) {
	db := newTestDB(t)
	repo := NewStudyPlanRepository(db)
	user := mustCreateUser(t, db, "mei")
	ctx := context.Background()

	planID, err := repo.CreatePlan(ctx, &planner.Plan{
		UserID:    user.ID,
		Name:      "Study Plan for Test on 23 Nov 2026",
		StartDate: day(2026, 10, 17),
		EndDate:   day(2026, 11, 23),
		Status:    planner.PlanStatusActive,
	})
	if err != nil || planID == 0 {
		t.Fatalf("create plan: id=%d err %v", planID, err)
	}

	writing := uintPtr(planner.SectionWriting)
	if _, err := repo.AddPlanItem(ctx, &planner.PlanItem{
		PlanID:          planID,
		SectionID:       writing,
		Title:           "Writing Practice: Task 1",
		ScheduledDate:   day(2026, 10, 17),
		DurationMinutes: 60,
	}); err != nil {
		t.Fatalf("add item: %v", err)
	}

	plan, err := repo.FindWithItems(planID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if plan.Status != model.PlanStatusActive || len(plan.Items) != 1 {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	if plan.Items[0].Section == nil || plan.Items[0].Section.Name != "Writing" {
		t.Fatalf("item section not loaded: %+v", plan.Items[0])
	}

	if err := repo.Delete(planID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var left int64
	db.Model(&model.StudyPlanItem{}).Where("plan_id = ?", planID).Count(&left)
	if left != 0 {
		t.Fatalf("items left after delete: %d", left)
	}
}
