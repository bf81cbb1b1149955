package model

import "time"

// StudyGoal SectionID 为空表示总分目标
type StudyGoal struct {
	BaseModel
	UserID      uint      `gorm:"index;not null" json:"userId"`
	SectionID   *uint     `gorm:"index" json:"sectionId"`
	Section     *Section  `gorm:"foreignKey:SectionID" json:"section,omitempty"`
	TargetScore float64   `gorm:"type:decimal(2,1);not null" json:"targetScore"`
	TargetDate  time.Time `gorm:"type:date;not null" json:"targetDate"`
	Achieved    bool      `gorm:"default:false" json:"achieved"`
}
