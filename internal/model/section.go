package model

// Section 雅思四个考试部分，启动时写入固定数据
type Section struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
}

func (Section) TableName() string {
	return "ielts_sections"
}

// DefaultSections 与 planner 中的部分编号保持一致
var DefaultSections = []Section{
	{ID: 1, Name: "Reading", Description: "Academic and General Training reading passages"},
	{ID: 2, Name: "Writing", Description: "Task 1 report or letter and Task 2 essay"},
	{ID: 3, Name: "Listening", Description: "Four recorded sections with comprehension questions"},
	{ID: 4, Name: "Speaking", Description: "Face-to-face interview in three parts"},
}
