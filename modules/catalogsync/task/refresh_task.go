package task

import (
	"context"
	stderrors "errors"
	"fmt"

	"localxp-api/core/constants"
	"localxp-api/core/logger"
	"localxp-api/modules/catalogsync/service"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
)

// RefreshPayload is the body of a catalog:refresh task.
type RefreshPayload struct {
	Location string `json:"location"`
}

// NewRefreshTask builds a catalog:refresh task. The task is unique for
// RefreshTaskUniqueTTL and never retried; the next tick refreshes again.
func NewRefreshTask(location string) (*asynq.Task, error) {
	payload, err := json.Marshal(RefreshPayload{Location: location})
	if err != nil {
		return nil, fmt.Errorf("encode refresh payload: %w", err)
	}
	return asynq.NewTask(constants.TaskCatalogRefresh, payload,
		asynq.Unique(constants.RefreshTaskUniqueTTL),
		asynq.MaxRetry(0),
	), nil
}

type RefreshHandler struct {
	service service.RefreshServiceInterface
}

func NewRefreshHandler(svc service.RefreshServiceInterface) *RefreshHandler {
	return &RefreshHandler{service: svc}
}

// ProcessTask runs one refresh. A refresh already running makes the task a no-op.
func (h *RefreshHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload RefreshPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("decode refresh payload: %w: %w", err, asynq.SkipRetry)
		}
	}

	result, appErr := h.service.Refresh(ctx, payload.Location)
	if appErr != nil {
		if stderrors.Is(appErr, service.ErrRefreshInProgress) {
			logger.Info("RefreshTask:Skipped", "location", payload.Location)
			return nil
		}
		return fmt.Errorf("%w: %w", appErr, asynq.SkipRetry)
	}

	logger.Info("RefreshTask:Done", "location", result.Location, "size", result.Size, "version", result.Version)
	return nil
}
