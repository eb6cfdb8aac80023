package notification

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "notifications-list",
		Method:      http.MethodGet,
		Path:        "/api/notifications",
		Summary:     "List notifications",
		Description: "Returns the caller's notifications newest-first with an unread count.",
		Tags:        []string{"notifications"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) markAllReadOp() huma.Operation {
	return huma.Operation{
		OperationID: "notifications-mark-read",
		Method:      http.MethodPost,
		Path:        "/api/notifications/read",
		Summary:     "Mark all notifications read",
		Tags:        []string{"notifications"},
		Middlewares: h.middleware,
	}
}
