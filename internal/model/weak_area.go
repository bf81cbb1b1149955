package model

// swagger:model WeakArea
type WeakArea struct {
	BaseModel
	UserID    uint     `gorm:"uniqueIndex:idx_user_section_skill;not null" json:"userId"`
	SectionID uint     `gorm:"uniqueIndex:idx_user_section_skill;not null" json:"sectionId"`
	Section   *Section `gorm:"foreignKey:SectionID" json:"section,omitempty"`
	SubSkill  string   `gorm:"uniqueIndex:idx_user_section_skill;size:100;not null" json:"subSkill"`
	Priority  int      `gorm:"default:3;not null" json:"priority"` // 1-5
}
