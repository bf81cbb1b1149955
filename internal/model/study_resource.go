package model

import "time"

const (
	ResourceTypeBook     = "book"
	ResourceTypeVideo    = "video"
	ResourceTypeAudio    = "audio"
	ResourceTypeWebsite  = "website"
	ResourceTypeExercise = "exercise"
	ResourceTypeDocument = "document"
)

var ResourceTypes = []string{
	ResourceTypeBook,
	ResourceTypeVideo,
	ResourceTypeAudio,
	ResourceTypeWebsite,
	ResourceTypeExercise,
	ResourceTypeDocument,
}

// swagger:model StudyResource
type StudyResource struct {
	BaseModel
	Title        string   `gorm:"size:200;not null" json:"title"`
	SectionID    *uint    `gorm:"index" json:"sectionId"`
	Section      *Section `gorm:"foreignKey:SectionID" json:"section,omitempty"`
	ResourceType string   `gorm:"size:30;index;not null" json:"resourceType"`
	Description  string   `gorm:"type:text" json:"description"`
	FilePath     string   `gorm:"size:500" json:"filePath"`
	URL          string   `gorm:"size:500" json:"url"`
	Duration     float64  `json:"duration"` // 音视频时长（秒）
}

// UserResource 用户收藏的资源
type UserResource struct {
	BaseModel
	UserID       uint           `gorm:"uniqueIndex:idx_user_resource;not null" json:"userId"`
	ResourceID   uint           `gorm:"uniqueIndex:idx_user_resource;not null" json:"resourceId"`
	Resource     *StudyResource `gorm:"foreignKey:ResourceID" json:"resource,omitempty"`
	Completed    bool           `gorm:"default:false" json:"completed"`
	Rating       *int           `json:"rating"`
	LastAccessed *time.Time     `json:"lastAccessed"`
}
