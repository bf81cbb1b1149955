package service

import (
	"ielts_tracker_backend/internal/model"
	"ielts_tracker_backend/internal/planner"
	"ielts_tracker_backend/internal/repository"
	"ielts_tracker_backend/internal/util"
	"ielts_tracker_backend/pkg/logger"
	"strings"

	"go.uber.org/zap"
)

const autoIdentifiedPriority = 4

// commonSubSkills 各部分常见的薄弱技能
var commonSubSkills = map[uint][]string{
	planner.SectionReading: {
		"Skimming for main ideas",
		"Scanning for specific information",
		"Understanding vocabulary in context",
		"Identifying writer's views",
		"True/False/Not Given questions",
		"Yes/No/Not Given questions",
		"Matching headings",
		"Sentence completion",
		"Multiple choice questions",
	},
	planner.SectionWriting: {
		"Task achievement/response",
		"Coherence and cohesion",
		"Lexical resource/vocabulary",
		"Grammatical range and accuracy",
		"Task 1 graph description",
		"Task 1 process description",
		"Task 2 argument development",
		"Task 2 essay structure",
		"Paragraph organization",
	},
	planner.SectionListening: {
		"Identifying main ideas",
		"Identifying specific details",
		"Understanding speaker opinions",
		"Following a conversation",
		"Form completion",
		"Multiple choice questions",
		"Matching exercises",
		"Note completion",
		"Sentence completion",
	},
	planner.SectionSpeaking: {
		"Fluency and coherence",
		"Lexical resource/vocabulary",
		"Grammatical range and accuracy",
		"Pronunciation",
		"Part 1 responses",
		"Part 2 individual long turn",
		"Part 3 discussion",
		"Expressing opinions",
		"Developing ideas",
	},
}

type WeakAreaService struct {
	WeakAreaRepo *repository.WeakAreaRepository
	SectionRepo  *repository.SectionRepository
	TestRepo     *repository.PracticeTestRepository
}

func NewWeakAreaService(weakAreaRepo *repository.WeakAreaRepository, sectionRepo *repository.SectionRepository, testRepo *repository.PracticeTestRepository) *WeakAreaService {
	return &WeakAreaService{
		WeakAreaRepo: weakAreaRepo,
		SectionRepo:  sectionRepo,
		TestRepo:     testRepo,
	}
}

type WeakAreaRequest struct {
	SectionID uint   `json:"sectionId" binding:"required"`
	SubSkill  string `json:"subSkill" binding:"required,max=100"`
	Priority  int    `json:"priority"`
}

// CommonSubSkills 未知部分返回空列表
func CommonSubSkills(sectionID uint) []string {
	skills := commonSubSkills[sectionID]
	out := make([]string, len(skills))
	copy(out, skills)
	return out
}

func (s *WeakAreaService) checkSection(sectionID uint) error {
	ok, err := s.SectionRepo.Exists(sectionID)
	if err != nil {
		return err
	}
	if !ok {
		return util.ErrInvalidSection
	}
	return nil
}

func (s *WeakAreaService) owned(userID, id uint) (*model.WeakArea, error) {
	area, err := s.WeakAreaRepo.FindByID(id)
	if err != nil {
		return nil, mapNotFound(err, util.ErrWeakAreaNotFound)
	}
	if area.UserID != userID {
		return nil, util.ErrPermissionDenied
	}
	return area, nil
}

// Create 优先级缺省为 3
func (s *WeakAreaService) Create(userID uint, req WeakAreaRequest) (*model.WeakArea, error) {
	if req.Priority == 0 {
		req.Priority = 3
	}
	if !util.ValidPriority(req.Priority) {
		return nil, util.ErrInvalidPriority
	}
	if err := s.checkSection(req.SectionID); err != nil {
		return nil, err
	}

	subSkill := strings.TrimSpace(req.SubSkill)
	exists, err := s.WeakAreaRepo.Exists(userID, req.SectionID, subSkill)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrWeakAreaExists
	}

	area := &model.WeakArea{
		UserID:    userID,
		SectionID: req.SectionID,
		SubSkill:  subSkill,
		Priority:  req.Priority,
	}
	if err := s.WeakAreaRepo.Create(area); err != nil {
		return nil, err
	}
	return s.WeakAreaRepo.FindByID(area.ID)
}

func (s *WeakAreaService) Update(userID, id uint, req WeakAreaRequest) (*model.WeakArea, error) {
	area, err := s.owned(userID, id)
	if err != nil {
		return nil, err
	}
	if req.Priority == 0 {
		req.Priority = area.Priority
	}
	if !util.ValidPriority(req.Priority) {
		return nil, util.ErrInvalidPriority
	}
	if err := s.checkSection(req.SectionID); err != nil {
		return nil, err
	}

	subSkill := strings.TrimSpace(req.SubSkill)
	if subSkill != area.SubSkill || req.SectionID != area.SectionID {
		exists, err := s.WeakAreaRepo.Exists(userID, req.SectionID, subSkill)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, util.ErrWeakAreaExists
		}
	}

	area.SectionID = req.SectionID
	area.SubSkill = subSkill
	area.Priority = req.Priority
	if err := s.WeakAreaRepo.Update(area); err != nil {
		return nil, err
	}
	return s.WeakAreaRepo.FindByID(area.ID)
}

func (s *WeakAreaService) UpdatePriority(userID, id uint, priority int) error {
	if !util.ValidPriority(priority) {
		return util.ErrInvalidPriority
	}
	if _, err := s.owned(userID, id); err != nil {
		return err
	}
	return s.WeakAreaRepo.UpdatePriority(id, priority)
}

func (s *WeakAreaService) Delete(userID, id uint) error {
	if _, err := s.owned(userID, id); err != nil {
		return err
	}
	return s.WeakAreaRepo.Delete(id)
}

func (s *WeakAreaService) Get(userID, id uint) (*model.WeakArea, error) {
	return s.owned(userID, id)
}

func (s *WeakAreaService) List(userID uint) ([]model.WeakArea, error) {
	return s.WeakAreaRepo.FindByUser(userID)
}

func (s *WeakAreaService) ListBySection(userID, sectionID uint) ([]model.WeakArea, error) {
	if err := s.checkSection(sectionID); err != nil {
		return nil, err
	}
	return s.WeakAreaRepo.FindBySection(userID, sectionID)
}

// Top 优先级最高的前 limit 个，limit 缺省为 5
func (s *WeakAreaService) Top(userID uint, limit int) ([]model.WeakArea, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.WeakAreaRepo.Top(userID, limit)
}

func (s *WeakAreaService) CountBySection(userID uint) ([]model.SectionCount, error) {
	return s.WeakAreaRepo.CountBySection(userID)
}

// AutoIdentify 按平均分从低到高，为每个有成绩的部分补上前两个常见弱项
func (s *WeakAreaService) AutoIdentify(userID uint) ([]model.WeakArea, error) {
	averages, err := s.TestRepo.SectionAverages(userID)
	if err != nil {
		return nil, err
	}

	var added []model.WeakArea
	for _, avg := range averages {
		skills := commonSubSkills[avg.SectionID]
		if len(skills) > 2 {
			skills = skills[:2]
		}
		for _, skill := range skills {
			exists, err := s.WeakAreaRepo.Exists(userID, avg.SectionID, skill)
			if err != nil {
				return added, err
			}
			if exists {
				continue
			}
			area := model.WeakArea{
				UserID:    userID,
				SectionID: avg.SectionID,
				SubSkill:  skill,
				Priority:  autoIdentifiedPriority,
			}
			if err := s.WeakAreaRepo.Create(&area); err != nil {
				return added, err
			}
			added = append(added, area)
		}
	}

	logger.Log.Info("Weak areas identified from scores",
		zap.Uint("userID", userID),
		zap.Int("added", len(added)),
	)
	return added, nil
}
