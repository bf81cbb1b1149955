package service

import (
	"errors"
	"ielts_tracker_backend/internal/planner"
	"ielts_tracker_backend/internal/util"
	"testing"
)

func TestGoalProgressAndAchievement(t *testing.T) {
	env := newTestEnv(t)
	freezeNow(t, utcDay(2026, 10, 17))
	user := env.user(t, "mei")
	goals := env.goalService()

	if _, err := env.practice().CreateTest(user.ID, CreateTestRequest{
		Name:     "Mock",
		TestDate: "2026-10-10",
		Scores: []ScoreInput{
			{SectionID: planner.SectionReading, Score: 7},
			{SectionID: planner.SectionWriting, Score: 6},
		},
	}); err != nil {
		t.Fatalf("create test: %v", err)
	}

	overall, err := goals.Create(user.ID, GoalRequest{TargetScore: 7, TargetDate: "2026-11-23"})
	if err != nil {
		t.Fatalf("overall goal: %v", err)
	}
	reading, err := goals.Create(user.ID, GoalRequest{SectionID: ptr(planner.SectionReading), TargetScore: 7, TargetDate: "2026-11-01"})
	if err != nil {
		t.Fatalf("reading goal: %v", err)
	}
	if _, err := goals.Create(user.ID, GoalRequest{TargetScore: 7.2, TargetDate: "2026-11-01"}); !errors.Is(err, util.ErrInvalidScore) {
		t.Fatalf("bad target: got %v", err)
	}

	progress, err := goals.Progress(user.ID)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if len(progress) != 2 {
		t.Fatalf("progress rows: %d", len(progress))
	}
	first := progress[0]
	if first.GoalID != reading.ID || first.SectionName != "Reading" || first.DaysRemaining != 15 || first.ScoreGap != 0 {
		t.Fatalf("reading progress: %+v", first)
	}
	second := progress[1]
	if second.SectionName != "Overall" || *second.CurrentScore != 6.5 || second.ScoreGap != 0.5 {
		t.Fatalf("overall progress: %+v", second)
	}

	upcoming, err := goals.Upcoming(user.ID, 20)
	if err != nil || len(upcoming) != 1 || upcoming[0].ID != reading.ID {
		t.Fatalf("upcoming in 20 days: %+v err %v", upcoming, err)
	}

	achieved, err := goals.CheckAchievements(user.ID)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(achieved) != 1 || achieved[0].ID != reading.ID {
		t.Fatalf("achieved: %+v", achieved)
	}

	still, err := goals.Get(user.ID, overall.ID)
	if err != nil || still.Achieved {
		t.Fatalf("overall goal should stay open: %+v err %v", still, err)
	}
}
