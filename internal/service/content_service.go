package service

import (
	"context"
	"errors"
	"fmt"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/repository"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ContentService struct {
	ContentRepo *repository.ContentRepository
	Storage     *StorageService
}

func NewContentService(contentRepo *repository.ContentRepository, storage *StorageService) *ContentService {
	return &ContentService{
		ContentRepo: contentRepo,
		Storage:     storage,
	}
}

type ContentRequest struct {
	WeekNumber  int               `json:"weekNumber" binding:"required,min=1"`
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	ContentType model.ContentType `json:"contentType" binding:"required,oneof=video article pdf"`
	ContentURL  string            `json:"contentUrl"`
}

func (s *ContentService) Create(req ContentRequest) (*model.CourseContent, error) {
	content := &model.CourseContent{
		WeekNumber:  req.WeekNumber,
		Title:       req.Title,
		Description: req.Description,
		ContentType: req.ContentType,
		ContentURL:  req.ContentURL,
	}
	if err := s.ContentRepo.Create(content); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *ContentService) Update(id uint, req ContentRequest) (*model.CourseContent, error) {
	content, err := s.ContentRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrContentNotFound
	}
	if err != nil {
		return nil, err
	}

	content.WeekNumber = req.WeekNumber
	content.Title = req.Title
	content.Description = req.Description
	content.ContentType = req.ContentType
	if req.ContentURL != "" {
		content.ContentURL = req.ContentURL
	}

	if err := s.ContentRepo.Update(content); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *ContentService) Delete(id uint) error {
	if _, err := s.ContentRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrContentNotFound
		}
		return err
	}
	return s.ContentRepo.Delete(id)
}

func (s *ContentService) SetPublished(id uint, published bool) (*model.CourseContent, error) {
	content, err := s.ContentRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrContentNotFound
	}
	if err != nil {
		return nil, err
	}

	content.IsPublished = published
	if published && content.PublishedAt == nil {
		now := time.Now()
		content.PublishedAt = &now
	}

	if err := s.ContentRepo.Update(content); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *ContentService) GetPublished(week int) ([]model.CourseContent, error) {
	if week > 0 {
		return s.ContentRepo.FindPublishedByWeek(week)
	}
	return s.ContentRepo.FindPublished()
}

func (s *ContentService) GetAll(page, limit int) ([]model.CourseContent, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.ContentRepo.FindAll(page, limit)
}

// UploadMaterial stores an uploaded file and, for videos, probes its duration
// so the content row can carry it. The file is staged locally for probing
// before it goes to the configured provider.
func (s *ContentService) UploadMaterial(ctx context.Context, header *multipart.FileHeader) (string, int, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	objectName := fmt.Sprintf("content/%s%s", model.GenerateUUID(), ext)

	tmpFile, err := os.CreateTemp("", "upload-*"+ext)
	if err != nil {
		return "", 0, err
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(tmpPath)

	src, err := header.Open()
	if err != nil {
		return "", 0, err
	}
	defer src.Close()

	out, err := os.Create(tmpPath)
	if err != nil {
		return "", 0, err
	}
	if _, err := out.ReadFrom(src); err != nil {
		out.Close()
		return "", 0, err
	}
	out.Close()

	durationSeconds := 0
	if isVideoExt(ext) {
		info, err := util.GetVideoInfo(tmpPath)
		if err != nil {
			logger.Log.Warn("video probe failed", zap.String("file", header.Filename), zap.Error(err))
		} else {
			durationSeconds = int(info.Duration)
		}
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = util.MimeOctetStream
	}

	url, err := s.Storage.UploadFile(ctx, objectName, tmpPath, contentType)
	if err != nil {
		return "", 0, err
	}
	return url, durationSeconds, nil
}

func isVideoExt(ext string) bool {
	for _, allowed := range util.AllowedVideoExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
