package model

import "time"

// swagger:model PracticeTest
type PracticeTest struct {
	BaseModel
	UserID   uint        `gorm:"index;not null" json:"userId"`
	Name     string      `gorm:"size:100;not null" json:"name"`
	Notes    string      `gorm:"type:text" json:"notes"`
	TestDate time.Time   `gorm:"type:date;index" json:"testDate"`
	Scores   []TestScore `gorm:"foreignKey:PracticeTestID" json:"scores,omitempty"`
}

// TestScore 某次模考中单个部分的成绩
type TestScore struct {
	BaseModel
	PracticeTestID uint     `gorm:"uniqueIndex:idx_test_section;not null" json:"practiceTestId"`
	SectionID      uint     `gorm:"uniqueIndex:idx_test_section;index;not null" json:"sectionId"`
	Section        *Section `gorm:"foreignKey:SectionID" json:"section,omitempty"`
	Score          float64  `gorm:"type:decimal(2,1);not null" json:"score"`
	TimeSpent      *int     `json:"timeSpent"` // 分钟
	Details        string   `gorm:"type:text" json:"details"`
}
