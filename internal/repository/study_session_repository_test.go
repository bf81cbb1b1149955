package repository

import (
	"ielts_tracker_backend/internal/model"
	"ielts_tracker_backend/internal/planner"
	"testing"
	"time"
)

func TestSessionTotals(t *testing.T) {
	db := newTestDB(t)
	repo := NewStudySessionRepository(db)
	user := mustCreateUser(t, db, "mei")

	at := func(d, h int) time.Time { return time.Date(2026, 10, d, h, 0, 0, 0, time.UTC) }
	ended := func(start time.Time, minutes int, section *uint) *model.StudySession {
		end := start.Add(time.Duration(minutes) * time.Minute)
		return &model.StudySession{UserID: user.ID, SectionID: section, StartTime: start, EndTime: &end, Duration: minutes}
	}

	sessions := []*model.StudySession{
		ended(at(15, 9), 45, uintPtr(planner.SectionReading)),
		ended(at(16, 9), 30, uintPtr(planner.SectionReading)),
		ended(at(16, 14), 60, uintPtr(planner.SectionSpeaking)),
		ended(at(17, 8), 20, nil),
		{UserID: user.ID, SectionID: uintPtr(planner.SectionWriting), StartTime: at(17, 10)},
	}
	for _, s := range sessions {
		if err := repo.Create(s); err != nil {
			t.Fatalf("create session: %v", err)
		}
	}

	total, err := repo.TotalMinutes(user.ID, time.Time{}, time.Time{})
	if err != nil || total != 155 {
		t.Fatalf("total: want=155 got=%d err %v", total, err)
	}

	total, err = repo.TotalMinutes(user.ID, day(2026, 10, 16), day(2026, 10, 17))
	if err != nil || total != 90 {
		t.Fatalf("one day: want=90 got=%d err %v", total, err)
	}

	active, err := repo.FindActive(user.ID)
	if err != nil || !active.Active() || *active.SectionID != planner.SectionWriting {
		t.Fatalf("active: got %+v err %v", active, err)
	}

	rows, err := repo.MinutesPerSection(user.ID, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("per section: %v", err)
	}
	if len(rows) != 4 || rows[0].SectionName != "Reading" || rows[0].TotalMinutes != 75 || rows[0].Sessions != 2 {
		t.Fatalf("per section: got %+v", rows)
	}
}
