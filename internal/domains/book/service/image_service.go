package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"bookstore-backoffice/internal/domains/book/repository"
	"bookstore-backoffice/internal/infrastructure/queue"
	"bookstore-backoffice/internal/infrastructure/storage"
	"bookstore-backoffice/internal/shared"
	"bookstore-backoffice/pkg/logger"
)

type imageService struct {
	repo      repository.RepositoryInterface
	storage   *storage.MinIOStorage
	processor *storage.ImageProcessor
	enqueuer  queue.Enqueuer
}

func NewImageService(
	repo repository.RepositoryInterface,
	store *storage.MinIOStorage,
	processor *storage.ImageProcessor,
	enqueuer queue.Enqueuer,
) ImageServiceInterface {
	return &imageService{
		repo:      repo,
		storage:   store,
		processor: processor,
		enqueuer:  enqueuer,
	}
}

// UploadCover validates and stores a cover image, records its URL on the
// book and queues variant generation for the worker.
func (s *imageService) UploadCover(ctx context.Context, bookID int64, file *multipart.FileHeader) (string, error) {
	if _, err := s.repo.GetByID(ctx, bookID); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("cannot open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("cannot read uploaded file: %w", err)
	}

	if err := s.processor.ValidateImage(data); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	key := fmt.Sprintf("books/%s%s", uuid.New().String(), ext)

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdateImage(ctx, bookID, url); err != nil {
		return "", err
	}

	// Variant generation is best-effort; the original cover is already live.
	err = s.enqueuer.Enqueue(shared.TypeBookProcessImage, shared.ProcessImagePayload{
		BookID:    bookID,
		ObjectKey: key,
	}, asynq.Queue(shared.QueueImages), asynq.MaxRetry(3))
	if err != nil {
		logger.Warn("failed to enqueue image processing", err)
	}

	logger.Info("book cover uploaded", map[string]interface{}{
		"book_id": bookID,
		"key":     key,
		"size":    len(data),
	})
	return url, nil
}
