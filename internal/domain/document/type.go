package document

import (
	"fmt"

	"github.com/danielgtaylor/huma/v2"
)

// DocType discriminates the five payload shapes a vault entry can carry.
// The type is fixed at creation and never changes afterwards.
type DocType string

const (
	TypeEmailPassword    DocType = "email-password"
	TypeUsernamePassword DocType = "username-password"
	TypeText             DocType = "text"
	TypeImage            DocType = "image"
	TypePDF              DocType = "pdf"
)

func (DocType) Schema() huma.Schema {
	return huma.Schema{
		Type: "string",
		Enum: []any{
			string(TypeEmailPassword),
			string(TypeUsernamePassword),
			string(TypeText),
			string(TypeImage),
			string(TypePDF),
		},
		Description: "Kind of vault entry",
		Examples:    []any{TypeEmailPassword},
	}
}

func (t DocType) Validate() error {
	switch t {
	case TypeEmailPassword, TypeUsernamePassword, TypeText, TypeImage, TypePDF:
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidType, t)
}

func (t DocType) String() string {
	return string(t)
}

// HasAsset reports whether entries of this type own a remote binary object.
func (t DocType) HasAsset() bool {
	return t == TypeImage || t == TypePDF
}
