package model

import "time"

const (
	PlanStatusActive    = "active"
	PlanStatusCompleted = "completed"
	PlanStatusCancelled = "cancelled"
)

var PlanStatuses = []string{PlanStatusActive, PlanStatusCompleted, PlanStatusCancelled}

// swagger:model StudyPlan
type StudyPlan struct {
	BaseModel
	UserID    uint            `gorm:"index;not null" json:"userId"`
	Name      string          `gorm:"size:150;not null" json:"name"`
	StartDate time.Time       `gorm:"type:date;not null" json:"startDate"`
	EndDate   time.Time       `gorm:"type:date;not null" json:"endDate"`
	Status    string          `gorm:"size:20;index;default:'active'" json:"status"`
	Items     []StudyPlanItem `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// swagger:model StudyPlanItem
type StudyPlanItem struct {
	BaseModel
	PlanID          uint           `gorm:"index;not null" json:"planId"`
	SectionID       *uint          `gorm:"index" json:"sectionId"`
	Section         *Section       `gorm:"foreignKey:SectionID" json:"section,omitempty"`
	Title           string         `gorm:"size:200;not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	ScheduledDate   time.Time      `gorm:"type:date;index;not null" json:"scheduledDate"`
	DurationMinutes int            `gorm:"not null" json:"durationMinutes"`
	Completed       bool           `gorm:"default:false" json:"completed"`
	ResourceID      *uint          `json:"resourceId"`
	Resource        *StudyResource `gorm:"foreignKey:ResourceID" json:"resource,omitempty"`
}
