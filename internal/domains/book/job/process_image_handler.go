package job

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hibiken/asynq"

	"bookstore-backoffice/internal/infrastructure/storage"
	"bookstore-backoffice/internal/shared"
	"bookstore-backoffice/pkg/logger"
)

// ProcessImageHandler generates resized cover variants next to the
// original object: books/<uuid>.jpg gets books/<uuid>_large.jpg and so on.
type ProcessImageHandler struct {
	storage   *storage.MinIOStorage
	processor *storage.ImageProcessor
}

func NewProcessImageHandler(store *storage.MinIOStorage, processor *storage.ImageProcessor) *ProcessImageHandler {
	return &ProcessImageHandler{storage: store, processor: processor}
}

func (h *ProcessImageHandler) Handle(ctx context.Context, t *asynq.Task) error {
	var payload shared.ProcessImagePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid process-image payload: %w", err)
	}

	data, err := h.storage.Download(ctx, payload.ObjectKey)
	if err != nil {
		return fmt.Errorf("cannot download original cover: %w", err)
	}

	variants, err := h.processor.ProcessImage(data)
	if err != nil {
		// A broken image will not heal on retry.
		logger.Error("cover image undecodable, dropping task", err)
		return nil
	}

	base := strings.TrimSuffix(payload.ObjectKey, filepath.Ext(payload.ObjectKey))
	for name, content := range variants {
		key := fmt.Sprintf("%s_%s.jpg", base, name)
		if _, err := h.storage.Upload(ctx, key, content, "image/jpeg"); err != nil {
			return fmt.Errorf("cannot upload %s variant: %w", name, err)
		}
	}

	logger.Info("cover variants generated", map[string]interface{}{
		"book_id":  payload.BookID,
		"key":      payload.ObjectKey,
		"variants": len(variants),
	})
	return nil
}
