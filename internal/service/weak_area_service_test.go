package service

import (
	"errors"
	"ielts_tracker_backend/internal/planner"
	"ielts_tracker_backend/internal/util"
	"testing"
)

func TestWeakAreaCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t, "mei")
	svc := NewWeakAreaService(env.weak, env.sections, env.tests)

	area, err := svc.Create(user.ID, WeakAreaRequest{SectionID: planner.SectionReading, SubSkill: " Matching headings "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if area.Priority != 3 || area.SubSkill != "Matching headings" || area.Section == nil {
		t.Fatalf("created: %+v", area)
	}

	if _, err := svc.Create(user.ID, WeakAreaRequest{SectionID: planner.SectionReading, SubSkill: "Matching headings"}); !errors.Is(err, util.ErrWeakAreaExists) {
		t.Fatalf("duplicate: got %v", err)
	}
	if _, err := svc.Create(user.ID, WeakAreaRequest{SectionID: planner.SectionReading, SubSkill: "x", Priority: 6}); !errors.Is(err, util.ErrInvalidPriority) {
		t.Fatalf("priority: got %v", err)
	}
	if _, err := svc.Create(user.ID, WeakAreaRequest{SectionID: 7, SubSkill: "x"}); !errors.Is(err, util.ErrInvalidSection) {
		t.Fatalf("section: got %v", err)
	}

	if err := svc.UpdatePriority(user.ID, area.ID, 5); err != nil {
		t.Fatalf("update priority: %v", err)
	}
	other := env.user(t, "tom")
	if err := svc.Delete(other.ID, area.ID); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("foreign delete: got %v", err)
	}
}

func TestAutoIdentifyFromScores(t *testing.T) {
	env := newTestEnv(t)
	user := env.user(t, "mei")
	practice := env.practice()
	svc := NewWeakAreaService(env.weak, env.sections, env.tests)

	_, err := practice.CreateTest(user.ID, CreateTestRequest{
		Name:     "Mock 1",
		TestDate: "2026-10-01",
		Scores: []ScoreInput{
			{SectionID: planner.SectionWriting, Score: 5},
			{SectionID: planner.SectionSpeaking, Score: 6.5},
		},
	})
	if err != nil {
		t.Fatalf("create test: %v", err)
	}

	if _, err := svc.Create(user.ID, WeakAreaRequest{SectionID: planner.SectionWriting, SubSkill: "Coherence and cohesion", Priority: 2}); err != nil {
		t.Fatalf("seed weak area: %v", err)
	}

	added, err := svc.AutoIdentify(user.ID)
	if err != nil {
		t.Fatalf("auto identify: %v", err)
	}
	want := []string{"Task achievement/response", "Fluency and coherence", "Lexical resource/vocabulary"}
	if len(added) != len(want) {
		t.Fatalf("added: want %v got %+v", want, added)
	}
	for i, w := range want {
		if added[i].SubSkill != w || added[i].Priority != 4 {
			t.Fatalf("added[%d]: want %s got %+v", i, w, added[i])
		}
	}

	again, err := svc.AutoIdentify(user.ID)
	if err != nil || len(again) != 0 {
		t.Fatalf("second run should add nothing: %+v err %v", again, err)
	}
}

func TestCommonSubSkills(t *testing.T) {
	skills := CommonSubSkills(planner.SectionSpeaking)
	if len(skills) != 9 || skills[3] != "Pronunciation" {
		t.Fatalf("speaking skills: %v", skills)
	}
	skills[0] = "changed"
	if CommonSubSkills(planner.SectionSpeaking)[0] != "Fluency and coherence" {
		t.Fatalf("catalog must not be mutable through the returned slice")
	}
	if len(CommonSubSkills(42)) != 0 {
		t.Fatalf("unknown section should have no skills")
	}
}
