package planner

import (
	"math"
	"sort"
)

const (
	// DefaultScore 没有成绩时按中等水平计算
	DefaultScore = 5.0

	scoreWeightFactor    = 0.7
	weakAreaWeightFactor = 0.3
)

// Allocation 某部分分到的学习天数
type Allocation struct {
	SectionID uint
	Days      int
}

// Distribution 按目录顺序排列的天数分配
type Distribution []Allocation

func (d Distribution) Total() int {
	total := 0
	for _, a := range d {
		total += a.Days
	}
	return total
}

func (d Distribution) DaysFor(sectionID uint) int {
	for _, a := range d {
		if a.SectionID == sectionID {
			return a.Days
		}
	}
	return 0
}

// SectionWeight 分数越低、弱项优先级越高，权重越大
func SectionWeight(score float64, weakAreaWeight int) float64 {
	scoreWeight := math.Max(1, 10-score)
	return scoreWeight*scoreWeightFactor + float64(weakAreaWeight)*weakAreaWeightFactor
}

// CalculateStudyDistribution 把 totalDays-7 天按权重分给各部分，每部分至少 1 天
func CalculateStudyDistribution(weakAreas []WeakArea, scores []SectionScore, sections []Section, totalDays int) Distribution {
	budget := totalDays - ReviewWindowDays

	sectionScores := make(map[uint]float64, len(scores))
	for _, s := range scores {
		sectionScores[s.SectionID] = s.Score
	}

	weakCounts := make(map[uint]int)
	for _, w := range weakAreas {
		weakCounts[w.SectionID] += w.Priority
	}

	weights := make([]float64, len(sections))
	totalWeight := 0.0
	for i, section := range sections {
		score, ok := sectionScores[section.ID]
		if !ok {
			score = DefaultScore
		}
		weak, ok := weakCounts[section.ID]
		if !ok {
			weak = 1
		}
		weights[i] = SectionWeight(score, weak)
		totalWeight += weights[i]
	}

	dist := make(Distribution, len(sections))
	allocated := 0
	for i, section := range sections {
		days := 1
		if totalWeight > 0 {
			days = max(1, int(math.Round(weights[i]/totalWeight*float64(budget))))
		}
		dist[i] = Allocation{SectionID: section.ID, Days: days}
		allocated += days
	}

	rebalance(dist, allocated-budget)
	return dist
}

// rebalance 修正四舍五入造成的偏差，每次最多调整 20%
func rebalance(dist Distribution, diff int) {
	if len(dist) == 0 {
		return
	}
	for diff > 0 {
		order := sortedIndexes(dist, true)
		progressed := false
		for _, i := range order {
			if diff <= 0 {
				break
			}
			days := dist[i].Days
			reduce := min(diff, max(1, days/5), days-1)
			if reduce <= 0 {
				continue
			}
			dist[i].Days -= reduce
			diff -= reduce
			progressed = true
		}
		// 每部分都只剩 1 天，预算不足以再压缩
		if !progressed {
			return
		}
	}

	for diff < 0 {
		order := sortedIndexes(dist, false)
		for _, i := range order {
			if diff >= 0 {
				break
			}
			days := dist[i].Days
			add := min(-diff, (days+4)/5)
			dist[i].Days += add
			diff += add
		}
	}
}

// sortedIndexes 按天数排序，天数相同保持目录顺序
func sortedIndexes(dist Distribution, desc bool) []int {
	idx := make([]int, len(dist))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if desc {
			return dist[idx[a]].Days > dist[idx[b]].Days
		}
		return dist[idx[a]].Days < dist[idx[b]].Days
	})
	return idx
}
