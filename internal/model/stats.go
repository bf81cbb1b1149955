package model

import "time"

// 以下为聚合查询的结果行

type SectionAverage struct {
	SectionID   uint    `json:"sectionId"`
	SectionName string  `json:"sectionName"`
	AvgScore    float64 `json:"avgScore"`
}

type SectionScorePoint struct {
	PracticeTestID uint      `json:"practiceTestId"`
	TestName       string    `json:"testName"`
	TestDate       time.Time `json:"testDate"`
	Score          float64   `json:"score"`
}

type SectionMinutes struct {
	SectionID    *uint  `json:"sectionId"`
	SectionName  string `json:"sectionName"`
	TotalMinutes int    `json:"totalMinutes"`
	Sessions     int    `json:"sessions"`
}

type SectionCount struct {
	SectionID   *uint  `json:"sectionId"`
	SectionName string `json:"sectionName"`
	Count       int    `json:"count"`
}

type TypeCount struct {
	ResourceType string `json:"resourceType"`
	Count        int    `json:"count"`
}

type DailyMinutes struct {
	Day          string `json:"day"`
	TotalMinutes int    `json:"totalMinutes"`
}
