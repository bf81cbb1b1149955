package database

import (
	"ielts_tracker_backend/internal/model"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMigrateSeedsSectionsOnce(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:migrate?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := Migrate(db); err != nil {
			t.Fatalf("migrate #%d: %v", i+1, err)
		}
	}

	var sections []model.Section
	if err := db.Order("id").Find(&sections).Error; err != nil {
		t.Fatalf("load sections: %v", err)
	}
	if len(sections) != 4 {
		t.Fatalf("sections: want=4 got=%d", len(sections))
	}
	want := []string{"Reading", "Writing", "Listening", "Speaking"}
	for i, s := range sections {
		if s.ID != uint(i+1) || s.Name != want[i] {
			t.Fatalf("section %d: want=%d/%s got=%d/%s", i, i+1, want[i], s.ID, s.Name)
		}
	}
}

func TestMigrateCreatesEveryTable(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:migrate_tables?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, table := range []string{"practice_tests", "test_scores", "weak_areas", "study_plans", "study_plan_items"} {
		if !db.Migrator().HasTable(table) {
			t.Fatalf("table %s missing after migrate", table)
		}
	}

	test := model.PracticeTest{UserID: 1, Name: "Cambridge 18 Test 1"}
	if err := db.Create(&test).Error; err != nil {
		t.Fatalf("create practice test: %v", err)
	}
	if err := db.Create(&model.TestScore{PracticeTestID: test.ID, SectionID: 1, Score: 6.5}).Error; err != nil {
		t.Fatalf("create score: %v", err)
	}
}
