package service

import (
	"context"
	"errors"
	"fmt"
	"ielts_tracker_backend/internal/model"
	"ielts_tracker_backend/internal/repository"
	"ielts_tracker_backend/internal/util"
	"ielts_tracker_backend/pkg/logger"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ResourceService 学习资源目录与个人收藏
type ResourceService struct {
	ResourceRepo   *repository.ResourceRepository
	SectionRepo    *repository.SectionRepository
	StorageService *StorageService
}

func NewResourceService(resourceRepo *repository.ResourceRepository, sectionRepo *repository.SectionRepository, storage *StorageService) *ResourceService {
	return &ResourceService{
		ResourceRepo:   resourceRepo,
		SectionRepo:    sectionRepo,
		StorageService: storage,
	}
}

type ResourceRequest struct {
	Title        string `json:"title" form:"title" binding:"required,max=200"`
	SectionID    *uint  `json:"sectionId" form:"sectionId"`
	ResourceType string `json:"resourceType" form:"resourceType" binding:"required"`
	Description  string `json:"description" form:"description"`
	URL          string `json:"url" form:"url" binding:"omitempty,url"`
}

type CollectionUpdateRequest struct {
	Completed *bool `json:"completed"`
	Rating    *int  `json:"rating"`
}

func (s *ResourceService) validate(req ResourceRequest) error {
	valid := false
	for _, t := range model.ResourceTypes {
		if t == req.ResourceType {
			valid = true
			break
		}
	}
	if !valid {
		return util.ErrInvalidResourceType
	}
	if req.SectionID != nil {
		ok, err := s.SectionRepo.Exists(*req.SectionID)
		if err != nil {
			return err
		}
		if !ok {
			return util.ErrInvalidSection
		}
	}
	return nil
}

func (s *ResourceService) Get(id uint) (*model.StudyResource, error) {
	resource, err := s.ResourceRepo.FindByID(id)
	if err != nil {
		return nil, mapNotFound(err, util.ErrResourceNotFound)
	}
	return resource, nil
}

// Create file 为空时只保存元数据
func (s *ResourceService) Create(ctx context.Context, req ResourceRequest, file *multipart.FileHeader) (*model.StudyResource, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	resource := &model.StudyResource{
		Title:        strings.TrimSpace(req.Title),
		SectionID:    req.SectionID,
		ResourceType: req.ResourceType,
		Description:  req.Description,
		URL:          req.URL,
	}
	if file != nil {
		if err := s.attach(ctx, resource, file); err != nil {
			return nil, err
		}
	}

	if err := s.ResourceRepo.Create(resource); err != nil {
		if resource.FilePath != "" {
			s.removeObject(ctx, resource.FilePath)
		}
		return nil, err
	}
	return s.Get(resource.ID)
}

func (s *ResourceService) Update(ctx context.Context, id uint, req ResourceRequest, file *multipart.FileHeader) (*model.StudyResource, error) {
	resource, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	oldObject := resource.FilePath
	resource.Title = strings.TrimSpace(req.Title)
	resource.SectionID = req.SectionID
	resource.Section = nil
	resource.ResourceType = req.ResourceType
	resource.Description = req.Description
	if req.URL != "" || file == nil {
		resource.URL = req.URL
	}
	if file != nil {
		if err := s.attach(ctx, resource, file); err != nil {
			return nil, err
		}
	}

	if err := s.ResourceRepo.Update(resource); err != nil {
		return nil, err
	}
	if file != nil && oldObject != "" && oldObject != resource.FilePath {
		s.removeObject(ctx, oldObject)
	}
	return s.Get(id)
}

func (s *ResourceService) Delete(ctx context.Context, id uint) error {
	resource, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.ResourceRepo.Delete(id); err != nil {
		return err
	}
	if resource.FilePath != "" {
		s.removeObject(ctx, resource.FilePath)
	}
	return nil
}

// attach 校验并上传文件，音视频会探测时长
func (s *ResourceService) attach(ctx context.Context, resource *model.StudyResource, header *multipart.FileHeader) error {
	if header.Size > util.MaxResourceFileSize {
		return util.ErrFileTooLarge
	}

	src, err := header.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	mimeType, err := util.ValidateMimeType(src, util.AllowedResourceMimeTypes)
	if err != nil {
		return err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return err
	}

	tmp, err := os.CreateTemp("", "resource-*"+strings.ToLower(filepath.Ext(header.Filename)))
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if util.IsAudio(mimeType) || util.IsVideo(mimeType) {
		info, err := util.GetMediaInfo(tmp.Name())
		if err != nil {
			logger.Log.Warn("Failed to probe media duration", zap.String("file", header.Filename), zap.Error(err))
		} else {
			resource.Duration = info.Duration
		}
	}

	objectName := util.ResourceObjectName(header.Filename, now())
	url, err := s.StorageService.PutFile(ctx, objectName, tmp.Name(), mimeType)
	if err != nil {
		return fmt.Errorf("upload resource file: %w", err)
	}

	resource.FilePath = objectName
	if resource.URL == "" {
		resource.URL = url
	}
	return nil
}

func (s *ResourceService) removeObject(ctx context.Context, objectName string) {
	if err := s.StorageService.Remove(ctx, objectName); err != nil {
		logger.Log.Warn("Failed to remove resource file", zap.String("object", objectName), zap.Error(err))
	}
}

func (s *ResourceService) Search(filter repository.ResourceFilter) ([]model.StudyResource, error) {
	filter.Keyword = strings.TrimSpace(filter.Keyword)
	return s.ResourceRepo.Search(filter)
}

func (s *ResourceService) CountBySection() ([]model.SectionCount, error) {
	return s.ResourceRepo.CountBySection()
}

func (s *ResourceService) CountByType() ([]model.TypeCount, error) {
	return s.ResourceRepo.CountByType()
}

func (s *ResourceService) Types() ([]string, error) {
	return s.ResourceRepo.Types()
}

// 个人收藏

func (s *ResourceService) collected(userID, resourceID uint) (*model.UserResource, error) {
	ur, err := s.ResourceRepo.FindUserResource(userID, resourceID)
	if err != nil {
		return nil, mapNotFound(err, util.ErrResourceNotFound)
	}
	return ur, nil
}

func (s *ResourceService) AddToCollection(userID, resourceID uint) (*model.UserResource, error) {
	if _, err := s.Get(resourceID); err != nil {
		return nil, err
	}
	if _, err := s.ResourceRepo.FindUserResource(userID, resourceID); err == nil {
		return nil, util.ErrResourceCollected
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ur := &model.UserResource{UserID: userID, ResourceID: resourceID}
	if err := s.ResourceRepo.AddToCollection(ur); err != nil {
		return nil, err
	}
	return s.collected(userID, resourceID)
}

func (s *ResourceService) RemoveFromCollection(userID, resourceID uint) error {
	ur, err := s.collected(userID, resourceID)
	if err != nil {
		return err
	}
	return s.ResourceRepo.RemoveFromCollection(ur.ID)
}

func (s *ResourceService) Collection(userID uint, completed *bool) ([]model.UserResource, error) {
	return s.ResourceRepo.Collection(userID, completed)
}

// UpdateCollection 修改完成状态或评分（1-5）
func (s *ResourceService) UpdateCollection(userID, resourceID uint, req CollectionUpdateRequest) (*model.UserResource, error) {
	ur, err := s.collected(userID, resourceID)
	if err != nil {
		return nil, err
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return nil, util.ErrInvalidRating
	}

	if req.Completed != nil {
		ur.Completed = *req.Completed
	}
	if req.Rating != nil {
		ur.Rating = req.Rating
	}
	accessed := now()
	ur.LastAccessed = &accessed

	if err := s.ResourceRepo.UpdateUserResource(ur); err != nil {
		return nil, err
	}
	return ur, nil
}

// Open 返回资源详情；已收藏时记录访问时间
func (s *ResourceService) Open(userID, resourceID uint) (*model.StudyResource, error) {
	resource, err := s.Get(resourceID)
	if err != nil {
		return nil, err
	}
	if ur, err := s.ResourceRepo.FindUserResource(userID, resourceID); err == nil {
		if err := s.ResourceRepo.TouchUserResource(ur.ID, now()); err != nil {
			logger.Log.Warn("Failed to update last accessed", zap.Uint("resourceID", resourceID), zap.Error(err))
		}
	}
	return resource, nil
}

func (s *ResourceService) CompletedBySection(userID uint) ([]model.SectionCount, error) {
	return s.ResourceRepo.CompletedBySection(userID)
}
