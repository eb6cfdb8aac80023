package document

import (
	"fmt"
	"strings"
	"time"
)

// Document is one vault entry owned by exactly one account. The payload is a
// tagged union keyed by Type, so cross-type field combinations cannot be
// represented.
type Document struct {
	ID        int
	UserID    int
	Title     string
	Type      DocType
	Payload   Payload
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Payload is the type-specific part of a Document. Password and Content
// fields hold ciphertext at rest and plaintext only in transit between the
// service and the caller.
type Payload interface {
	DocType() DocType
	Validate() error
}

// EmailPassword is a credential keyed by email address.
type EmailPassword struct {
	Email    string
	Password string
}

func (EmailPassword) DocType() DocType { return TypeEmailPassword }

func (p EmailPassword) Validate() error {
	if strings.TrimSpace(p.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	return nil
}

// UsernamePassword is a credential keyed by login name.
type UsernamePassword struct {
	Username string
	Password string
}

func (UsernamePassword) DocType() DocType { return TypeUsernamePassword }

func (p UsernamePassword) Validate() error {
	if strings.TrimSpace(p.Username) == "" {
		return fmt.Errorf("%w: username is required", ErrValidation)
	}
	return nil
}

// Text is free-form content, encrypted at rest.
type Text struct {
	Content string
}

func (Text) DocType() DocType { return TypeText }

func (p Text) Validate() error {
	if strings.TrimSpace(p.Content) == "" {
		return fmt.Errorf("%w: content is required", ErrValidation)
	}
	return nil
}

// File points to a binary asset in remote storage. ObjectKey is kept besides
// the URL because the URL alone cannot delete the object later.
type File struct {
	Kind      DocType
	URL       string
	ObjectKey string
}

func (p File) DocType() DocType { return p.Kind }

func (p File) Validate() error {
	if p.Kind != TypeImage && p.Kind != TypePDF {
		return fmt.Errorf("%w: %s is not a file type", ErrInvalidType, p.Kind)
	}
	if p.URL == "" || p.ObjectKey == "" {
		return fmt.Errorf("%w: file reference is incomplete", ErrValidation)
	}
	return nil
}
