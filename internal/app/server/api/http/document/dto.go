package document

import (
	"time"

	"securenest/internal/domain/document"
)

type createInput struct {
	Body request
}

type updateInput struct {
	ID   int `path:"id" example:"1" doc:"Document ID"`
	Body request
}

type findInput struct {
	ID int `path:"id" example:"1" doc:"Document ID"`
}

// request is the flat create/update form. Which fields matter depends on
// type; the rest are ignored.
type request struct {
	Title    string            `json:"title" minLength:"1"`
	Type     document.DocType  `json:"type,omitempty" doc:"One of email-password, username-password, text, image, pdf. Ignored on update."`
	Email    string            `json:"email,omitempty"`
	Username string            `json:"username,omitempty"`
	Password string            `json:"password,omitempty"`
	Content  string            `json:"content,omitempty"`
	File     *fileUploadFields `json:"file,omitempty" doc:"Binary asset for image/pdf types"`
}

type fileUploadFields struct {
	Data        string `json:"data" doc:"Base64-encoded file bytes" minLength:"1"`
	Filename    string `json:"filename" minLength:"1"`
	ContentType string `json:"content_type,omitempty"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Documents []response `json:"documents"`
}

type output struct {
	Body response
}

type deleteOutput struct {
	Body messageResponse
}

type messageResponse struct {
	Message string `json:"message"`
}

// response mirrors the flat request shape with sensitive fields already
// decrypted.
type response struct {
	ID        int              `json:"id"`
	Title     string           `json:"title"`
	Type      document.DocType `json:"type"`
	Email     string           `json:"email,omitempty"`
	Username  string           `json:"username,omitempty"`
	Password  string           `json:"password,omitempty"`
	Content   string           `json:"content,omitempty"`
	FileURL   string           `json:"file_url,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func toResponse(d document.Document) response {
	r := response{
		ID:        d.ID,
		Title:     d.Title,
		Type:      d.Type,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	switch p := d.Payload.(type) {
	case document.EmailPassword:
		r.Email, r.Password = p.Email, p.Password
	case document.UsernamePassword:
		r.Username, r.Password = p.Username, p.Password
	case document.Text:
		r.Content = p.Content
	case document.File:
		r.FileURL = p.URL
	}
	return r
}
