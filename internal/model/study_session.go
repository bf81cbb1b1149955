package model

import "time"

// swagger:model StudySession
type StudySession struct {
	BaseModel
	UserID    uint       `gorm:"index;not null" json:"userId"`
	SectionID *uint      `gorm:"index" json:"sectionId"`
	Section   *Section   `gorm:"foreignKey:SectionID" json:"section,omitempty"`
	StartTime time.Time  `gorm:"index;not null" json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Duration  int        `gorm:"default:0" json:"duration"` // 分钟
	Notes     string     `gorm:"type:text" json:"notes"`
}

func (s *StudySession) Active() bool {
	return s.EndTime == nil
}
