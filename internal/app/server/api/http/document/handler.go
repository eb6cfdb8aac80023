package document

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"securenest/internal/app/server/api/http/middleware/auth"
	"securenest/internal/domain/document"
)

type Handler struct {
	service    document.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service document.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	docs, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, h.mapError(err)
	}

	out := listResponse{Documents: make([]response, 0, len(docs))}
	for _, d := range docs {
		out.Documents = append(out.Documents, toResponse(d))
	}
	return &listOutput{Body: out}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	file, err := decodeFile(input.Body.File)
	if err != nil {
		return nil, err
	}

	doc, err := h.service.Create(ctx, userID, document.Input{
		Title:    input.Body.Title,
		Type:     input.Body.Type,
		Email:    input.Body.Email,
		Username: input.Body.Username,
		Password: input.Body.Password,
		Content:  input.Body.Content,
		File:     file,
	})
	if err != nil {
		return nil, h.mapError(err)
	}

	return &output{Body: toResponse(doc)}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*output, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	doc, err := h.service.Get(ctx, userID, input.ID)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &output{Body: toResponse(doc)}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	file, err := decodeFile(input.Body.File)
	if err != nil {
		return nil, err
	}

	doc, err := h.service.Update(ctx, userID, input.ID, document.UpdateInput{
		Title:    input.Body.Title,
		Email:    input.Body.Email,
		Username: input.Body.Username,
		Password: input.Body.Password,
		Content:  input.Body.Content,
		File:     file,
	})
	if err != nil {
		return nil, h.mapError(err)
	}

	return &output{Body: toResponse(doc)}, nil
}

func (h *Handler) delete(ctx context.Context, input *findInput) (*deleteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, userID, input.ID); err != nil {
		return nil, h.mapError(err)
	}

	return &deleteOutput{
		Body: messageResponse{Message: "Document deleted"},
	}, nil
}

func decodeFile(f *fileUploadFields) (*document.FileUpload, error) {
	if f == nil {
		return nil, nil
	}
	data, err := base64.StdEncoding.DecodeString(f.Data)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity("file.data must be valid base64")
	}
	return &document.FileUpload{
		Data:        data,
		Filename:    f.Filename,
		ContentType: f.ContentType,
	}, nil
}

// mapError translates domain sentinels into HTTP status errors. Anything
// unexpected is logged with full detail and returned as a bare 500.
func (h *Handler) mapError(err error) error {
	switch {
	case errors.Is(err, document.ErrNotFound):
		return huma.Error404NotFound("Document not found")
	case errors.Is(err, document.ErrFileRequired):
		return huma.Error422UnprocessableEntity("A file is required for this document type")
	case errors.Is(err, document.ErrValidation), errors.Is(err, document.ErrInvalidType):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		h.log.Error("document operation failed", "error", err)
		return huma.Error500InternalServerError("internal server error")
	}
}
