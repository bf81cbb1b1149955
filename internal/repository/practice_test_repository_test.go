package repository

import (
	"context"
	"ielts_tracker_backend/internal/model"
	"ielts_tracker_backend/internal/planner"
	"testing"
	"time"
)

func seedTest(t *testing.T, repo *PracticeTestRepository, userID uint, name string, date time.Time, scores map[uint]float64) *model.PracticeTest {
	t.Helper()
	test := &model.PracticeTest{UserID: userID, Name: name, TestDate: date}
	if err := repo.Create(test); err != nil {
		t.Fatalf("create test: %v", err)
	}
	for sectionID, score := range scores {
		if err := repo.AddScore(userID, &model.TestScore{PracticeTestID: test.ID, SectionID: sectionID, Score: score}); err != nil {
			t.Fatalf("add score: %v", err)
		}
	}
	return test
}

func TestLatestSectionScoresPicksNewestTest(t *testing.T) {
	db := newTestDB(t)
	repo := NewPracticeTestRepository(db, nil)
	user := mustCreateUser(t, db, "mei")
	other := mustCreateUser(t, db, "tom")

	seedTest(t, repo, user.ID, "Mock 1", day(2026, 8, 1), map[uint]float64{
		planner.SectionReading: 5.5,
		planner.SectionWriting: 5,
	})
	seedTest(t, repo, user.ID, "Mock 2", day(2026, 9, 1), map[uint]float64{
		planner.SectionReading: 6.5,
	})
	seedTest(t, repo, other.ID, "Other", day(2026, 10, 1), map[uint]float64{
		planner.SectionReading: 9,
	})

	scores, err := repo.LatestSectionScores(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("latest scores: %v", err)
	}
	got := map[uint]float64{}
	for _, s := range scores {
		got[s.SectionID] = s.Score
	}
	if len(got) != 2 || got[planner.SectionReading] != 6.5 || got[planner.SectionWriting] != 5 {
		t.Fatalf("latest scores: got %v", got)
	}
}

func TestSectionAveragesAscending(t *testing.T) {
	db := newTestDB(t)
	repo := NewPracticeTestRepository(db, nil)
	user := mustCreateUser(t, db, "mei")

	seedTest(t, repo, user.ID, "Mock 1", day(2026, 8, 1), map[uint]float64{
		planner.SectionReading:   7,
		planner.SectionListening: 5,
	})
	seedTest(t, repo, user.ID, "Mock 2", day(2026, 9, 1), map[uint]float64{
		planner.SectionReading:   8,
		planner.SectionListening: 6,
	})

	rows, err := repo.SectionAverages(user.ID)
	if err != nil {
		t.Fatalf("averages: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows: want=2 got=%d", len(rows))
	}
	if rows[0].SectionName != "Listening" || rows[0].AvgScore != 5.5 || rows[1].AvgScore != 7.5 {
		t.Fatalf("unexpected averages: %+v", rows)
	}

	overall, err := repo.AverageScore(user.ID, nil)
	if err != nil || overall == nil || *overall != 6.5 {
		t.Fatalf("overall average: got %v err %v", overall, err)
	}
}

func TestOverallScoreAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewPracticeTestRepository(db, nil)
	user := mustCreateUser(t, db, "mei")

	test := seedTest(t, repo, user.ID, "Mock", day(2026, 9, 1), map[uint]float64{
		planner.SectionReading:   6,
		planner.SectionWriting:   6.5,
		planner.SectionListening: 7,
		planner.SectionSpeaking:  6,
	})

	avg, err := repo.OverallScore(test.ID)
	if err != nil || avg == nil || *avg != 6.375 {
		t.Fatalf("overall: got %v err %v", avg, err)
	}

	if err := repo.Delete(test); err != nil {
		t.Fatalf("delete: %v", err)
	}
	avg, err = repo.OverallScore(test.ID)
	if err != nil || avg != nil {
		t.Fatalf("overall after delete: want nil got %v err %v", avg, err)
	}
}
