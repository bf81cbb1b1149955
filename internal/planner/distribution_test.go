package planner

import (
	"math"
	"testing"
)

// 与数据库目录一致：按名称升序
var catalog = []Section{
	{ID: SectionListening, Name: "Listening"},
	{ID: SectionReading, Name: "Reading"},
	{ID: SectionSpeaking, Name: "Speaking"},
	{ID: SectionWriting, Name: "Writing"},
}

func TestDistributionHigherScoreGetsFewerDays(t *testing.T) {
	scores := []SectionScore{
		{SectionID: SectionReading, Score: 5},
		{SectionID: SectionWriting, Score: 7},
		{SectionID: SectionListening, Score: 5},
		{SectionID: SectionSpeaking, Score: 5},
	}

	dist := CalculateStudyDistribution(nil, scores, catalog, 37)

	if got := dist.Total(); got != 30 {
		t.Fatalf("total days: want=30 got=%d", got)
	}
	writing := dist.DaysFor(SectionWriting)
	for _, id := range []uint{SectionReading, SectionListening, SectionSpeaking} {
		if dist.DaysFor(id) <= writing {
			t.Fatalf("section %d: want more days than writing (%d), got %d", id, writing, dist.DaysFor(id))
		}
	}
	want := map[uint]int{SectionListening: 8, SectionReading: 8, SectionSpeaking: 8, SectionWriting: 6}
	for id, days := range want {
		if got := dist.DaysFor(id); got != days {
			t.Fatalf("section %d days: want=%d got=%d", id, days, got)
		}
	}
}

func TestDistributionWeakAreasRaiseWeight(t *testing.T) {
	weak := []WeakArea{
		{SectionID: SectionReading, SubSkill: "Matching headings", Priority: 5},
		{SectionID: SectionReading, SubSkill: "Sentence completion", Priority: 5},
	}

	dist := CalculateStudyDistribution(weak, nil, catalog, 60)

	reading := dist.DaysFor(SectionReading)
	for _, id := range []uint{SectionWriting, SectionListening, SectionSpeaking} {
		if dist.DaysFor(id) >= reading {
			t.Fatalf("section %d: want fewer days than reading (%d), got %d", id, reading, dist.DaysFor(id))
		}
	}
	if got := dist.Total(); got != 53 {
		t.Fatalf("total days: want=53 got=%d", got)
	}
}

func TestSectionWeightMonotonicInScore(t *testing.T) {
	if SectionWeight(9, 1) >= SectionWeight(4, 1) {
		t.Fatalf("score 9 weight %.2f should be below score 4 weight %.2f", SectionWeight(9, 1), SectionWeight(4, 1))
	}
	if got := SectionWeight(9, 1); math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("score 9 weight: want=1.0 got=%v", got)
	}
	if SectionWeight(10, 1) != SectionWeight(9, 1) {
		t.Fatalf("score weight must be floored at 1")
	}
	if got := SectionWeight(0, 1); math.Abs(got-7.3) > 1e-9 {
		t.Fatalf("score 0 weight: want=7.3 got=%v", got)
	}
}

func TestDistributionHighScoreNeverOutranksLowScore(t *testing.T) {
	scores := []SectionScore{
		{SectionID: SectionReading, Score: 9},
		{SectionID: SectionWriting, Score: 4},
	}
	for total := 11; total <= 120; total++ {
		dist := CalculateStudyDistribution(nil, scores, catalog, total)
		if dist.DaysFor(SectionReading) > dist.DaysFor(SectionWriting) {
			t.Fatalf("total=%d: reading (9.0) got %d days, writing (4.0) got %d", total, dist.DaysFor(SectionReading), dist.DaysFor(SectionWriting))
		}
	}
}

func TestDistributionSumsToBudget(t *testing.T) {
	cases := []struct {
		name   string
		scores []SectionScore
		weak   []WeakArea
	}{
		{name: "defaults"},
		{
			name: "mixed scores",
			scores: []SectionScore{
				{SectionID: SectionReading, Score: 8.5},
				{SectionID: SectionWriting, Score: 4.5},
				{SectionID: SectionListening, Score: 6},
				{SectionID: SectionSpeaking, Score: 0},
			},
		},
		{
			name: "heavy weak areas",
			scores: []SectionScore{
				{SectionID: SectionSpeaking, Score: 9},
			},
			weak: []WeakArea{
				{SectionID: SectionWriting, SubSkill: "Coherence and cohesion", Priority: 5},
				{SectionID: SectionWriting, SubSkill: "Task 2 essay structure", Priority: 5},
				{SectionID: SectionWriting, SubSkill: "Paragraph organization", Priority: 4},
				{SectionID: SectionListening, SubSkill: "Note completion", Priority: 1},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for total := 11; total <= 400; total++ {
				dist := CalculateStudyDistribution(tc.weak, tc.scores, catalog, total)
				if got := dist.Total(); got != total-ReviewWindowDays {
					t.Fatalf("total=%d: sum want=%d got=%d (%v)", total, total-ReviewWindowDays, got, dist)
				}
				for _, a := range dist {
					if a.Days < 1 {
						t.Fatalf("total=%d: section %d got %d days", total, a.SectionID, a.Days)
					}
				}
			}
		})
	}
}

func TestDistributionShortHorizonKeepsOneDayEach(t *testing.T) {
	for total := 1; total <= 10; total++ {
		dist := CalculateStudyDistribution(nil, nil, catalog, total)
		for _, a := range dist {
			if a.Days != 1 {
				t.Fatalf("total=%d: section %d want 1 day, got %d", total, a.SectionID, a.Days)
			}
		}
	}
}

func TestRebalanceShrinksLargestFirst(t *testing.T) {
	dist := Distribution{
		{SectionID: 1, Days: 10},
		{SectionID: 2, Days: 20},
		{SectionID: 3, Days: 5},
	}

	rebalance(dist, 3)

	// 20 先减 min(3, 4)=3，其余不动
	if dist[1].Days != 17 || dist[0].Days != 10 || dist[2].Days != 5 {
		t.Fatalf("unexpected shrink result: %v", dist)
	}
}

func TestRebalanceGrowsSmallestFirst(t *testing.T) {
	dist := Distribution{
		{SectionID: 1, Days: 10},
		{SectionID: 2, Days: 3},
		{SectionID: 3, Days: 6},
	}

	rebalance(dist, -3)

	// 3 先加 ceil(0.6)=1，6 再加 ceil(1.2)=2
	if dist[1].Days != 4 || dist[2].Days != 8 || dist[0].Days != 10 {
		t.Fatalf("unexpected grow result: %v", dist)
	}
}
