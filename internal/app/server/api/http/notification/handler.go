package notification

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"securenest/internal/app/server/api/http/middleware/auth"
	"securenest/internal/domain/notification"
)

type Handler struct {
	service    notification.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service notification.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.markAllReadOp(), h.markAllRead)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	list, err := h.service.ListFor(ctx, userID)
	if err != nil {
		h.log.Error("list notifications failed", "error", err)
		return nil, huma.Error500InternalServerError("internal server error")
	}

	unread := 0
	for _, n := range list {
		if !n.Read {
			unread++
		}
	}

	if list == nil {
		list = []notification.Notification{}
	}
	return &listOutput{
		Body: listResponse{Notifications: list, Unread: unread},
	}, nil
}

func (h *Handler) markAllRead(ctx context.Context, _ *struct{}) (*readOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.MarkAllRead(ctx, userID); err != nil {
		h.log.Error("mark notifications read failed", "error", err)
		return nil, huma.Error500InternalServerError("internal server error")
	}

	return &readOutput{
		Body: messageResponse{Message: "All notifications marked as read"},
	}, nil
}
