package service

import (
	"context"
	"errors"
	"ielts_tracker_backend/internal/planner"
	"ielts_tracker_backend/internal/model"
	"ielts_tracker_backend/internal/util"
	"testing"

	"gorm.io/gorm"
)

func TestCreateTestWithScores(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t, "mei")
	svc := env.practice()

	detail, err := svc.CreateTest(user.ID, CreateTestRequest{
		Name:     "Cambridge 18 Test 1",
		TestDate: "2026-10-01",
		Scores: []ScoreInput{
			{SectionID: planner.SectionReading, Score: 6.5},
			{SectionID: planner.SectionWriting, Score: 6},
			{SectionID: planner.SectionListening, Score: 7},
			{SectionID: planner.SectionSpeaking, Score: 6},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	// 平均 6.375 取最近的 0.5
	if detail.OverallScore == nil || *detail.OverallScore != 6.5 {
		t.Fatalf("overall: got %v", detail.OverallScore)
	}
	if len(detail.Scores) != 4 || detail.Scores[0].SectionID != planner.SectionReading {
		t.Fatalf("scores: %+v", detail.Scores)
	}

	if _, err := svc.AddScore(user.ID, detail.ID, ScoreInput{SectionID: planner.SectionReading, Score: 7}); !errors.Is(err, util.ErrScoreExists) {
		t.Fatalf("duplicate section: got %v", err)
	}

	latest, err := svc.LatestScores(context.Background(), user.ID)
	if err != nil || len(latest) != 4 {
		t.Fatalf("latest: %+v err %v", latest, err)
	}
	for _, l := range latest {
		if l.SectionName == "" {
			t.Fatalf("latest score missing section name: %+v", l)
		}
	}

	weak, err := svc.WeakSections(user.ID, 2)
	if err != nil || len(weak) != 2 || weak[0].AvgScore != 6 {
		t.Fatalf("weak sections: %+v err %v", weak, err)
	}
}

func TestScoreValidation(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t, "mei")
	other := env.user(t, "tom")
	svc := env.practice()

	cases := []struct {
		name   string
		scores []ScoreInput
		want   error
	}{
		{"off step", []ScoreInput{{SectionID: planner.SectionReading, Score: 6.3}}, util.ErrInvalidScore},
		{"above nine", []ScoreInput{{SectionID: planner.SectionReading, Score: 9.5}}, util.ErrInvalidScore},
		{"unknown section", []ScoreInput{{SectionID: 5, Score: 6}}, util.ErrInvalidSection},
		{"repeated section", []ScoreInput{{SectionID: 1, Score: 6}, {SectionID: 1, Score: 7}}, util.ErrScoreExists},
	}
	for _, tc := range cases {
		_, err := svc.CreateTest(user.ID, CreateTestRequest{Name: "x", TestDate: "2026-10-01", Scores: tc.scores})
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: want %v got %v", tc.name, tc.want, err)
		}
	}

	detail, err := svc.CreateTest(user.ID, CreateTestRequest{Name: "x", TestDate: "2026-10-01"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if detail.OverallScore != nil {
		t.Fatalf("test without scores has no overall: %v", *detail.OverallScore)
	}
	if _, err := svc.GetTest(other.ID, detail.ID); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("foreign test: got %v", err)
	}
	if _, err := svc.GetTest(user.ID, detail.ID+100); !errors.Is(err, util.ErrTestNotFound) {
		t.Fatalf("missing test: got %v", err)
	}

	score, err := svc.AddScore(user.ID, detail.ID, ScoreInput{SectionID: planner.SectionSpeaking, Score: 5.5})
	if err != nil {
		t.Fatalf("add score: %v", err)
	}
	updated, err := svc.UpdateScore(user.ID, score.ID, UpdateScoreRequest{Score: 6})
	if err != nil || updated.Score != 6 {
		t.Fatalf("update score: %+v err %v", updated, err)
	}
	if err := svc.DeleteScore(user.ID, score.ID); err != nil {
		t.Fatalf("delete score: %v", err)
	}
	if _, err := svc.AddScore(user.ID, detail.ID, ScoreInput{SectionID: planner.SectionSpeaking, Score: 7}); err != nil {
		t.Fatalf("re-add after delete: %v", err)
	}
}

func TestCreateTestRollsBackOnScoreFailure(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t, "mei")
	svc := env.practice()

	// 第二条成绩写入时失败
	inserted := 0
	err := env.db.Callback().Create().Before("gorm:create").Register("fail_second_score", func(tx *gorm.DB) {
		if tx.Statement.Table != "test_scores" {
			return
		}
		inserted++
		if inserted == 2 {
			tx.AddError(errors.New("disk full"))
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	_, err = svc.CreateTest(user.ID, CreateTestRequest{
		Name:     "Cambridge 18 Test 2",
		TestDate: "2026-10-05",
		Scores: []ScoreInput{
			{SectionID: planner.SectionReading, Score: 6.5},
			{SectionID: planner.SectionWriting, Score: 6},
		},
	})
	if err == nil || err.Error() != "disk full" {
		t.Fatalf("create: want disk full got %v", err)
	}

	var tests, scores int64
	env.db.Model(&model.PracticeTest{}).Count(&tests)
	env.db.Model(&model.TestScore{}).Count(&scores)
	if tests != 0 || scores != 0 {
		t.Fatalf("orphan rows left: tests=%d scores=%d", tests, scores)
	}
}
