package service

import (
	"context"
	"errors"
	"ielts_tracker_backend/internal/model"
	"ielts_tracker_backend/internal/repository"
	"ielts_tracker_backend/internal/util"
	"strings"
	"time"

	"gorm.io/gorm"
)

// PracticeService 模考与分项成绩
type PracticeService struct {
	TestRepo    *repository.PracticeTestRepository
	SectionRepo *repository.SectionRepository
}

func NewPracticeService(testRepo *repository.PracticeTestRepository, sectionRepo *repository.SectionRepository) *PracticeService {
	return &PracticeService{
		TestRepo:    testRepo,
		SectionRepo: sectionRepo,
	}
}

type ScoreInput struct {
	SectionID uint    `json:"sectionId" binding:"required"`
	Score     float64 `json:"score"`
	TimeSpent *int    `json:"timeSpent"`
	Details   string  `json:"details"`
}

type CreateTestRequest struct {
	Name     string       `json:"name" binding:"required,max=100"`
	TestDate string       `json:"testDate" binding:"required"`
	Notes    string       `json:"notes"`
	Scores   []ScoreInput `json:"scores" binding:"dive"`
}

type UpdateTestRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	TestDate string `json:"testDate" binding:"required"`
	Notes    string `json:"notes"`
}

type UpdateScoreRequest struct {
	Score     float64 `json:"score"`
	TimeSpent *int    `json:"timeSpent"`
	Details   string  `json:"details"`
}

// TestDetail 模考及总分
type TestDetail struct {
	*model.PracticeTest
	OverallScore *float64 `json:"overallScore"`
}

type LatestScore struct {
	SectionID   uint      `json:"sectionId"`
	SectionName string    `json:"sectionName"`
	Score       float64   `json:"score"`
	TestDate    time.Time `json:"testDate"`
}

func (s *PracticeService) validateScore(in ScoreInput) error {
	if !util.ValidBandScore(in.Score) {
		return util.ErrInvalidScore
	}
	if in.TimeSpent != nil && *in.TimeSpent < 0 {
		return util.ErrInvalidScore
	}
	ok, err := s.SectionRepo.Exists(in.SectionID)
	if err != nil {
		return err
	}
	if !ok {
		return util.ErrInvalidSection
	}
	return nil
}

// ownedTest 读取模考并校验归属
func (s *PracticeService) ownedTest(userID, testID uint) (*model.PracticeTest, error) {
	test, err := s.TestRepo.FindByID(testID)
	if err != nil {
		return nil, mapNotFound(err, util.ErrTestNotFound)
	}
	if test.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return test, nil
}

func (s *PracticeService) CreateTest(userID uint, req CreateTestRequest) (*TestDetail, error) {
	testDate, err := util.ParseDate(req.TestDate)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool, len(req.Scores))
	for _, in := range req.Scores {
		if err := s.validateScore(in); err != nil {
			return nil, err
		}
		if seen[in.SectionID] {
			return nil, util.ErrScoreExists
		}
		seen[in.SectionID] = true
	}

	test := &model.PracticeTest{
		UserID:   userID,
		Name:     strings.TrimSpace(req.Name),
		Notes:    req.Notes,
		TestDate: testDate,
	}
	// 模考和成绩一起提交，任一成绩写入失败时整体回滚
	err = s.TestRepo.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.TestRepo.WithTx(tx)
		if err := repo.Create(test); err != nil {
			return err
		}
		for _, in := range req.Scores {
			score := &model.TestScore{
				PracticeTestID: test.ID,
				SectionID:      in.SectionID,
				Score:          in.Score,
				TimeSpent:      in.TimeSpent,
				Details:        in.Details,
			}
			if err := repo.AddScore(userID, score); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetTest(userID, test.ID)
}

func (s *PracticeService) GetTest(userID, testID uint) (*TestDetail, error) {
	test, err := s.ownedTest(userID, testID)
	if err != nil {
		return nil, err
	}
	overall, err := s.OverallScore(test.ID)
	if err != nil {
		return nil, err
	}
	return &TestDetail{PracticeTest: test, OverallScore: overall}, nil
}

func (s *PracticeService) ListTests(userID uint, page, limit int) ([]TestDetail, int64, error) {
	if page < 1 {
		page = 1
	}
	tests, total, err := s.TestRepo.FindByUser(userID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}

	list := make([]TestDetail, 0, len(tests))
	for i := range tests {
		list = append(list, TestDetail{PracticeTest: &tests[i], OverallScore: overallOf(tests[i].Scores)})
	}
	return list, total, nil
}

func (s *PracticeService) UpdateTest(userID, testID uint, req UpdateTestRequest) (*TestDetail, error) {
	test, err := s.ownedTest(userID, testID)
	if err != nil {
		return nil, err
	}
	testDate, err := util.ParseDate(req.TestDate)
	if err != nil {
		return nil, err
	}

	test.Name = strings.TrimSpace(req.Name)
	test.Notes = req.Notes
	test.TestDate = testDate
	if err := s.TestRepo.Update(test); err != nil {
		return nil, err
	}
	return s.GetTest(userID, testID)
}

func (s *PracticeService) DeleteTest(userID, testID uint) error {
	test, err := s.ownedTest(userID, testID)
	if err != nil {
		return err
	}
	return s.TestRepo.Delete(test)
}

// AddScore 同一次模考每个部分只能有一条成绩
func (s *PracticeService) AddScore(userID, testID uint, in ScoreInput) (*model.TestScore, error) {
	if _, err := s.ownedTest(userID, testID); err != nil {
		return nil, err
	}
	if err := s.validateScore(in); err != nil {
		return nil, err
	}

	if _, err := s.TestRepo.FindSectionScore(testID, in.SectionID); err == nil {
		return nil, util.ErrScoreExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	score := &model.TestScore{
		PracticeTestID: testID,
		SectionID:      in.SectionID,
		Score:          in.Score,
		TimeSpent:      in.TimeSpent,
		Details:        in.Details,
	}
	if err := s.TestRepo.AddScore(userID, score); err != nil {
		return nil, err
	}
	return score, nil
}

func (s *PracticeService) ownedScore(userID, scoreID uint) (*model.TestScore, error) {
	score, err := s.TestRepo.FindScore(scoreID)
	if err != nil {
		return nil, mapNotFound(err, util.ErrTestNotFound)
	}
	if _, err := s.ownedTest(userID, score.PracticeTestID); err != nil {
		return nil, err
	}
	return score, nil
}

func (s *PracticeService) UpdateScore(userID, scoreID uint, req UpdateScoreRequest) (*model.TestScore, error) {
	score, err := s.ownedScore(userID, scoreID)
	if err != nil {
		return nil, err
	}
	if err := s.validateScore(ScoreInput{SectionID: score.SectionID, Score: req.Score, TimeSpent: req.TimeSpent}); err != nil {
		return nil, err
	}

	score.Score = req.Score
	score.TimeSpent = req.TimeSpent
	score.Details = req.Details
	if err := s.TestRepo.UpdateScore(userID, score); err != nil {
		return nil, err
	}
	return score, nil
}

func (s *PracticeService) DeleteScore(userID, scoreID uint) error {
	score, err := s.ownedScore(userID, scoreID)
	if err != nil {
		return err
	}
	return s.TestRepo.DeleteScore(userID, score.ID)
}

// OverallScore 四舍五入到最近的 0.5，没有成绩时为 nil
func (s *PracticeService) OverallScore(testID uint) (*float64, error) {
	avg, err := s.TestRepo.OverallScore(testID)
	if err != nil || avg == nil {
		return nil, err
	}
	rounded := util.RoundToHalfBand(*avg)
	return &rounded, nil
}

func overallOf(scores []model.TestScore) *float64 {
	if len(scores) == 0 {
		return nil
	}
	var sum float64
	for _, sc := range scores {
		sum += sc.Score
	}
	rounded := util.RoundToHalfBand(sum / float64(len(scores)))
	return &rounded
}

func (s *PracticeService) SectionHistory(userID, sectionID uint, limit int) ([]model.SectionScorePoint, error) {
	ok, err := s.SectionRepo.Exists(sectionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, util.ErrInvalidSection
	}
	return s.TestRepo.SectionHistory(userID, sectionID, limit)
}

// LatestScores 每个部分最近一次成绩，附带部分名称
func (s *PracticeService) LatestScores(ctx context.Context, userID uint) ([]LatestScore, error) {
	scores, err := s.TestRepo.LatestSectionScores(ctx, userID)
	if err != nil {
		return nil, err
	}
	sections, err := s.SectionRepo.FindAll()
	if err != nil {
		return nil, err
	}

	names := make(map[uint]string, len(sections))
	for _, sec := range sections {
		names[sec.ID] = sec.Name
	}

	list := make([]LatestScore, 0, len(scores))
	for _, sc := range scores {
		list = append(list, LatestScore{
			SectionID:   sc.SectionID,
			SectionName: names[sc.SectionID],
			Score:       sc.Score,
			TestDate:    sc.AsOf,
		})
	}
	return list, nil
}

// WeakSections 平均分从低到高，limit<=0 时返回全部
func (s *PracticeService) WeakSections(userID uint, limit int) ([]model.SectionAverage, error) {
	rows, err := s.TestRepo.SectionAverages(userID)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}
