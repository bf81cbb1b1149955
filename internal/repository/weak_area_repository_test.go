package repository

import (
	"context"
	"ielts_tracker_backend/internal/model"
	"ielts_tracker_backend/internal/planner"
	"testing"
)

func TestWeakAreasOrderedByPriorityThenSection(t *testing.T) {
	db := newTestDB(t)
	repo := NewWeakAreaRepository(db)
	user := mustCreateUser(t, db, "mei")

	areas := []model.WeakArea{
		{UserID: user.ID, SectionID: planner.SectionWriting, SubSkill: "Coherence and cohesion", Priority: 4},
		{UserID: user.ID, SectionID: planner.SectionReading, SubSkill: "Matching headings", Priority: 4},
		{UserID: user.ID, SectionID: planner.SectionSpeaking, SubSkill: "Pronunciation", Priority: 5},
		{UserID: user.ID, SectionID: planner.SectionListening, SubSkill: "Note completion", Priority: 2},
	}
	for i := range areas {
		if err := repo.Create(&areas[i]); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	got, err := repo.UserWeakAreas(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("weak areas: %v", err)
	}
	want := []string{"Pronunciation", "Matching headings", "Coherence and cohesion", "Note completion"}
	if len(got) != len(want) {
		t.Fatalf("len: want=%d got=%d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].SubSkill != w {
			t.Fatalf("position %d: want=%s got=%s", i, w, got[i].SubSkill)
		}
	}

	top, err := repo.Top(user.ID, 3)
	if err != nil || len(top) != 3 || top[0].Section == nil || top[0].Section.Name != "Speaking" {
		t.Fatalf("top: got %+v err %v", top, err)
	}
}

func TestWeakAreaExistsAndCount(t *testing.T) {
	db := newTestDB(t)
	repo := NewWeakAreaRepository(db)
	user := mustCreateUser(t, db, "mei")

	area := &model.WeakArea{UserID: user.ID, SectionID: planner.SectionReading, SubSkill: "Sentence completion", Priority: 3}
	if err := repo.Create(area); err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err := repo.Exists(user.ID, planner.SectionReading, "Sentence completion")
	if err != nil || !ok {
		t.Fatalf("exists: want true got %v err %v", ok, err)
	}

	counts, err := repo.CountBySection(user.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if len(counts) != 4 {
		t.Fatalf("all sections should be listed, got %d", len(counts))
	}
	for _, c := range counts {
		want := 0
		if c.SectionName == "Reading" {
			want = 1
		}
		if c.Count != want {
			t.Fatalf("%s count: want=%d got=%d", c.SectionName, want, c.Count)
		}
	}

	if err := repo.Delete(area.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Create(&model.WeakArea{UserID: user.ID, SectionID: planner.SectionReading, SubSkill: "Sentence completion", Priority: 2}); err != nil {
		t.Fatalf("re-create after delete: %v", err)
	}
}
