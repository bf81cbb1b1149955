package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"ielts_tracker_backend/internal/model"
	"ielts_tracker_backend/internal/planner"
	"ielts_tracker_backend/pkg/monitoring"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const latestScoresTTL = 10 * time.Minute

type PracticeTestRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
	ctx   context.Context
}

func NewPracticeTestRepository(db *gorm.DB, rdb *redis.Client) *PracticeTestRepository {
	return &PracticeTestRepository{
		DB:    db,
		Redis: rdb,
		ctx:   context.Background(),
	}
}

// WithTx 返回绑定到事务的副本，缓存客户端保持不变
func (r *PracticeTestRepository) WithTx(tx *gorm.DB) *PracticeTestRepository {
	return &PracticeTestRepository{DB: tx, Redis: r.Redis, ctx: r.ctx}
}

func latestScoresKey(userID uint) string {
	return fmt.Sprintf("ielts:scores:latest:%d", userID)
}

// invalidateLatest 成绩变化后清除最新成绩缓存
func (r *PracticeTestRepository) invalidateLatest(userID uint) {
	if r.Redis == nil {
		return
	}
	r.Redis.Del(r.ctx, latestScoresKey(userID))
}

func (r *PracticeTestRepository) Create(test *model.PracticeTest) error {
	return r.DB.Create(test).Error
}

func (r *PracticeTestRepository) FindByID(id uint) (*model.PracticeTest, error) {
	var test model.PracticeTest
	err := r.DB.Preload("Scores", func(db *gorm.DB) *gorm.DB {
		return db.Order("section_id ASC")
	}).Preload("Scores.Section").First(&test, id).Error
	return &test, err
}

// FindByUser 按考试日期倒序分页
func (r *PracticeTestRepository) FindByUser(userID uint, limit, offset int) ([]model.PracticeTest, int64, error) {
	var tests []model.PracticeTest
	var total int64

	db := r.DB.Model(&model.PracticeTest{}).Where("user_id = ?", userID)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := db.Preload("Scores").Order("test_date DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	err := q.Find(&tests).Error
	return tests, total, err
}

func (r *PracticeTestRepository) Latest(userID uint) (*model.PracticeTest, error) {
	var test model.PracticeTest
	err := r.DB.Preload("Scores").Preload("Scores.Section").
		Where("user_id = ?", userID).
		Order("test_date DESC, id DESC").
		First(&test).Error
	return &test, err
}

func (r *PracticeTestRepository) FindBetween(userID uint, start, end time.Time) ([]model.PracticeTest, error) {
	var tests []model.PracticeTest
	err := r.DB.Preload("Scores").
		Where("user_id = ? AND test_date BETWEEN ? AND ?", userID, start, end).
		Order("test_date ASC").
		Find(&tests).Error
	return tests, err
}

func (r *PracticeTestRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.PracticeTest{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *PracticeTestRepository) Update(test *model.PracticeTest) error {
	err := r.DB.Model(test).Select("name", "notes", "test_date").Updates(test).Error
	if err == nil {
		r.invalidateLatest(test.UserID)
	}
	return err
}

// Delete 删除模考及其全部成绩
func (r *PracticeTestRepository) Delete(test *model.PracticeTest) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("practice_test_id = ?", test.ID).Delete(&model.TestScore{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.PracticeTest{}, test.ID).Error
	})
	if err == nil {
		r.invalidateLatest(test.UserID)
	}
	return err
}

func (r *PracticeTestRepository) AddScore(userID uint, score *model.TestScore) error {
	err := r.DB.Create(score).Error
	if err == nil {
		r.invalidateLatest(userID)
	}
	return err
}

func (r *PracticeTestRepository) FindScore(id uint) (*model.TestScore, error) {
	var score model.TestScore
	err := r.DB.First(&score, id).Error
	return &score, err
}

func (r *PracticeTestRepository) FindSectionScore(testID, sectionID uint) (*model.TestScore, error) {
	var score model.TestScore
	err := r.DB.Where("practice_test_id = ? AND section_id = ?", testID, sectionID).First(&score).Error
	return &score, err
}

func (r *PracticeTestRepository) UpdateScore(userID uint, score *model.TestScore) error {
	err := r.DB.Model(score).Select("score", "time_spent", "details").Updates(score).Error
	if err == nil {
		r.invalidateLatest(userID)
	}
	return err
}

func (r *PracticeTestRepository) DeleteScore(userID uint, id uint) error {
	err := r.DB.Unscoped().Delete(&model.TestScore{}, id).Error
	if err == nil {
		r.invalidateLatest(userID)
	}
	return err
}

// OverallScore 各部分平均分，没有成绩时返回 nil
func (r *PracticeTestRepository) OverallScore(testID uint) (*float64, error) {
	row := r.DB.Model(&model.TestScore{}).
		Where("practice_test_id = ?", testID).
		Select("AVG(score)").
		Row()
	return scanNullFloat(row)
}

// SectionHistory 某部分的历史成绩，按考试日期倒序
func (r *PracticeTestRepository) SectionHistory(userID, sectionID uint, limit int) ([]model.SectionScorePoint, error) {
	var points []model.SectionScorePoint
	q := r.DB.Table("test_scores").
		Select("test_scores.practice_test_id, practice_tests.name AS test_name, practice_tests.test_date, test_scores.score").
		Joins("JOIN practice_tests ON practice_tests.id = test_scores.practice_test_id AND practice_tests.deleted_at IS NULL").
		Where("practice_tests.user_id = ? AND test_scores.section_id = ? AND test_scores.deleted_at IS NULL", userID, sectionID).
		Order("practice_tests.test_date DESC, practice_tests.id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Scan(&points).Error
	return points, err
}

// SectionAverages 每个有成绩的部分的平均分，从低到高
func (r *PracticeTestRepository) SectionAverages(userID uint) ([]model.SectionAverage, error) {
	var rows []model.SectionAverage
	err := r.DB.Table("test_scores").
		Select("ielts_sections.id AS section_id, ielts_sections.name AS section_name, AVG(test_scores.score) AS avg_score").
		Joins("JOIN practice_tests ON practice_tests.id = test_scores.practice_test_id AND practice_tests.deleted_at IS NULL").
		Joins("JOIN ielts_sections ON ielts_sections.id = test_scores.section_id").
		Where("practice_tests.user_id = ? AND test_scores.deleted_at IS NULL", userID).
		Group("ielts_sections.id, ielts_sections.name").
		Order("avg_score ASC, ielts_sections.name ASC").
		Scan(&rows).Error
	return rows, err
}

// AverageScore sectionID 为 nil 时计算全部成绩的平均分
func (r *PracticeTestRepository) AverageScore(userID uint, sectionID *uint) (*float64, error) {
	q := r.DB.Table("test_scores").
		Select("AVG(test_scores.score)").
		Joins("JOIN practice_tests ON practice_tests.id = test_scores.practice_test_id AND practice_tests.deleted_at IS NULL").
		Where("practice_tests.user_id = ? AND test_scores.deleted_at IS NULL", userID)
	if sectionID != nil {
		q = q.Where("test_scores.section_id = ?", *sectionID)
	}
	return scanNullFloat(q.Row())
}

func scanNullFloat(row *sql.Row) (*float64, error) {
	var v sql.NullFloat64
	if err := row.Scan(&v); err != nil {
		return nil, err
	}
	if !v.Valid {
		return nil, nil
	}
	return &v.Float64, nil
}

type latestScoreRow struct {
	SectionID uint
	Score     float64
	TestDate  time.Time
}

// LatestSectionScores 实现 planner.ScoreRepository：每部分取考试日期最新的一条
func (r *PracticeTestRepository) LatestSectionScores(ctx context.Context, userID uint) ([]planner.SectionScore, error) {
	key := latestScoresKey(userID)
	if r.Redis != nil {
		if cached, err := r.Redis.Get(ctx, key).Bytes(); err == nil {
			var scores []planner.SectionScore
			if json.Unmarshal(cached, &scores) == nil {
				monitoring.CacheLookups.WithLabelValues("latest_scores", "hit").Inc()
				return scores, nil
			}
		}
		monitoring.CacheLookups.WithLabelValues("latest_scores", "miss").Inc()
	}

	var rows []latestScoreRow
	err := r.DB.WithContext(ctx).Table("test_scores").
		Select("test_scores.section_id, test_scores.score, practice_tests.test_date").
		Joins("JOIN practice_tests ON practice_tests.id = test_scores.practice_test_id AND practice_tests.deleted_at IS NULL").
		Where("practice_tests.user_id = ? AND test_scores.deleted_at IS NULL", userID).
		Order("practice_tests.test_date DESC, practice_tests.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool)
	scores := make([]planner.SectionScore, 0, 4)
	for _, row := range rows {
		if seen[row.SectionID] {
			continue
		}
		seen[row.SectionID] = true
		scores = append(scores, planner.SectionScore{
			SectionID: row.SectionID,
			Score:     row.Score,
			AsOf:      row.TestDate,
		})
	}

	if r.Redis != nil {
		if data, err := json.Marshal(scores); err == nil {
			r.Redis.Set(ctx, key, data, latestScoresTTL)
		}
	}
	return scores, nil
}
