package model

import (
	"time"
)

// swagger:model User
type User struct {
	BaseModel
	Name        string     `gorm:"size:100;not null" json:"name"`
	Username    string     `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email       string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"size:100;not null" json:"-"`
	TargetScore *float64   `gorm:"type:decimal(2,1)" json:"targetScore"`
	TestDate    *time.Time `gorm:"type:date" json:"testDate"`
	LastLogin   *time.Time `json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}
