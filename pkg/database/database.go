package database

import (
	"fmt"
	"ielts_tracker_backend/internal/config"
	"ielts_tracker_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, mode string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=UTC",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	logLevel := logger.Warn
	if mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")
	return db, nil
}

// Models 需要自动迁移的全部表
func Models() []interface{} {
	return []interface{}{
		&model.Section{},
		&model.User{},
		&model.PracticeTest{},
		&model.TestScore{},
		&model.WeakArea{},
		&model.StudySession{},
		&model.StudyGoal{},
		&model.StudyResource{},
		&model.UserResource{},
		&model.StudyPlan{},
		&model.StudyPlanItem{},
	}
}

// Migrate 建表并写入固定的考试部分
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	log.Println("Database migration completed")
	return SeedSections(db)
}

// SeedSections 幂等写入四个考试部分
func SeedSections(db *gorm.DB) error {
	sections := append([]model.Section(nil), model.DefaultSections...)
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&sections).Error
}
