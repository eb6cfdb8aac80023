package document

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-list",
		Method:      http.MethodGet,
		Path:        "/api/documents",
		Summary:     "List the caller's documents",
		Tags:        []string{"documents"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-create",
		Method:      http.MethodPost,
		Path:        "/api/documents",
		Summary:     "Create a document",
		Description: "Creates a vault entry. Image and pdf types require a base64-encoded file.",
		Tags:        []string{"documents"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-find",
		Method:      http.MethodGet,
		Path:        "/api/documents/{id}",
		Summary:     "Fetch one document",
		Tags:        []string{"documents"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-update",
		Method:      http.MethodPut,
		Path:        "/api/documents/{id}",
		Summary:     "Update a document",
		Description: "The document keeps its type. Supplying a file replaces the stored asset.",
		Tags:        []string{"documents"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-delete",
		Method:      http.MethodDelete,
		Path:        "/api/documents/{id}",
		Summary:     "Delete a document",
		Tags:        []string{"documents"},
		Middlewares: h.middleware,
	}
}
