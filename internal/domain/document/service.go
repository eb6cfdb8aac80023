package document

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"
)

// FileUpload is a binary asset attached to a create or update call.
type FileUpload struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Input carries the flat form fields of a create call; the service folds
// them into the payload variant selected by Type.
type Input struct {
	Title    string
	Type     DocType
	Email    string
	Username string
	Password string
	Content  string
	File     *FileUpload
}

// UpdateInput mirrors Input minus the type, which is fixed at creation.
// A nil File on an image/pdf document keeps the current asset.
type UpdateInput struct {
	Title    string
	Email    string
	Username string
	Password string
	Content  string
	File     *FileUpload
}

type Servicer interface {
	Create(ctx context.Context, userID int, in Input) (Document, error)
	List(ctx context.Context, userID int) ([]Document, error)
	Get(ctx context.Context, userID, docID int) (Document, error)
	Update(ctx context.Context, userID, docID int, in UpdateInput) (Document, error)
	Delete(ctx context.Context, userID, docID int) error
}

type Service struct {
	repo     Repository
	assets   AssetStorage
	cipher   FieldCipher
	notifier Notifier
	log      *slog.Logger
}

func NewService(repo Repository, assets AssetStorage, cipher FieldCipher, notifier Notifier, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		assets:   assets,
		cipher:   cipher,
		notifier: notifier,
		log:      log.With(slog.String("component", "document_service")),
	}
}

// Create stores a new vault entry. Sensitive fields are encrypted before
// anything touches the repository; file types upload their asset first and
// keep the returned object key for later deletion.
func (s *Service) Create(ctx context.Context, userID int, in Input) (Document, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" || in.Type == "" {
		return Document{}, fmt.Errorf("%w: title and type are required", ErrValidation)
	}
	if err := in.Type.Validate(); err != nil {
		return Document{}, err
	}

	payload, err := s.buildPayload(ctx, in.Type, in.Email, in.Username, in.Password, in.Content, in.File)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		UserID:  userID,
		Title:   in.Title,
		Type:    in.Type,
		Payload: payload,
	}

	if err := s.repo.Create(ctx, &doc); err != nil {
		return Document{}, fmt.Errorf("create document: %w", err)
	}

	s.notifier.Record(ctx, userID, "New Document Added",
		fmt.Sprintf("New document %s was added successfully", doc.Title))

	return s.decrypted(doc), nil
}

// List returns the owner's documents newest-first with sensitive fields
// decrypted. A decryption failure blanks that entry's field instead of
// failing the whole listing.
func (s *Service) List(ctx context.Context, userID int) ([]Document, error) {
	docs, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	for i := range docs {
		docs[i] = s.decrypted(docs[i])
	}
	return docs, nil
}

// Get fetches one owned document. A document belonging to someone else is
// reported as ErrNotFound, same as a missing one.
func (s *Service) Get(ctx context.Context, userID, docID int) (Document, error) {
	doc, err := s.repo.Get(ctx, userID, docID)
	if err != nil {
		return Document{}, err
	}
	return s.decrypted(doc), nil
}

// Update refreshes an owned document. Sensitive fields are re-encrypted on
// every call whether or not they changed. Supplying a new file first deletes
// the previous remote asset; if that delete fails the update is aborted so
// no orphaned object is left behind.
func (s *Service) Update(ctx context.Context, userID, docID int, in UpdateInput) (Document, error) {
	existing, err := s.repo.Get(ctx, userID, docID)
	if err != nil {
		return Document{}, err
	}

	if title := strings.TrimSpace(in.Title); title != "" {
		existing.Title = title
	}

	// File types keep their current payload untouched unless a replacement
	// asset was supplied.
	if !existing.Type.HasAsset() || in.File != nil {
		if existing.Type.HasAsset() {
			prev, ok := existing.Payload.(File)
			if ok && prev.ObjectKey != "" {
				if err := s.assets.Delete(ctx, prev.ObjectKey); err != nil {
					s.log.Error("failed to delete replaced asset",
						"user_id", userID, "doc_id", docID, "object_key", prev.ObjectKey, "error", err)
					return Document{}, fmt.Errorf("delete replaced asset: %w", err)
				}
			}
		}

		payload, err := s.buildPayload(ctx, existing.Type, in.Email, in.Username, in.Password, in.Content, in.File)
		if err != nil {
			return Document{}, err
		}
		existing.Payload = payload
	}

	if err := s.repo.Update(ctx, &existing); err != nil {
		return Document{}, fmt.Errorf("update document: %w", err)
	}

	s.notifier.Record(ctx, userID, "Document Updated",
		fmt.Sprintf("Document %s was updated successfully", existing.Title))

	return s.decrypted(existing), nil
}

// Delete removes an owned document. For file types the remote asset goes
// first; a failed remote delete fails the whole operation and leaves the
// database record in place.
func (s *Service) Delete(ctx context.Context, userID, docID int) error {
	existing, err := s.repo.Get(ctx, userID, docID)
	if err != nil {
		return err
	}

	if f, ok := existing.Payload.(File); ok && f.ObjectKey != "" {
		if err := s.assets.Delete(ctx, f.ObjectKey); err != nil {
			s.log.Error("failed to delete remote asset",
				"user_id", userID, "doc_id", docID, "object_key", f.ObjectKey, "error", err)
			return fmt.Errorf("delete remote asset: %w", err)
		}
	}

	if err := s.repo.Delete(ctx, userID, docID); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}

	label := existing.Title
	if label == "" {
		label = existing.Type.String()
	}
	s.notifier.Record(ctx, userID, "Document Deleted",
		fmt.Sprintf("Document %q was deleted successfully.", label))

	return nil
}

// buildPayload folds flat input fields into the variant for typ, encrypting
// sensitive fields and uploading the attached asset for file types.
func (s *Service) buildPayload(ctx context.Context, typ DocType, email, username, password, content string, file *FileUpload) (Payload, error) {
	switch typ {
	case TypeEmailPassword:
		encrypted, err := s.cipher.EncryptField(strings.TrimSpace(password))
		if err != nil {
			return nil, fmt.Errorf("encrypt password: %w", err)
		}
		p := EmailPassword{Email: strings.TrimSpace(email), Password: encrypted}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		return p, nil

	case TypeUsernamePassword:
		encrypted, err := s.cipher.EncryptField(strings.TrimSpace(password))
		if err != nil {
			return nil, fmt.Errorf("encrypt password: %w", err)
		}
		p := UsernamePassword{Username: strings.TrimSpace(username), Password: encrypted}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		return p, nil

	case TypeText:
		if strings.TrimSpace(content) == "" {
			return nil, fmt.Errorf("%w: content is required", ErrValidation)
		}
		encrypted, err := s.cipher.EncryptField(content)
		if err != nil {
			return nil, fmt.Errorf("encrypt content: %w", err)
		}
		return Text{Content: encrypted}, nil

	case TypeImage, TypePDF:
		if file == nil || len(file.Data) == 0 {
			return nil, ErrFileRequired
		}
		url, objectKey, err := s.assets.Upload(ctx, file.Data, file.Filename, file.ContentType)
		if err != nil {
			return nil, fmt.Errorf("upload asset: %w", err)
		}
		p := File{Kind: typ, URL: url, ObjectKey: objectKey}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		return p, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidType, typ)
	}
}

// decrypted returns a copy of doc with sensitive fields in plaintext. A
// failed decryption degrades the field to empty so the document still
// renders; the condition is logged and never propagated.
func (s *Service) decrypted(doc Document) Document {
	switch p := doc.Payload.(type) {
	case EmailPassword:
		plain, err := s.cipher.DecryptField(p.Password)
		if err != nil {
			s.log.Warn("decryption failed, blanking field", "doc_id", doc.ID, "error", err)
			plain = ""
		}
		p.Password = plain
		doc.Payload = p

	case UsernamePassword:
		plain, err := s.cipher.DecryptField(p.Password)
		if err != nil {
			s.log.Warn("decryption failed, blanking field", "doc_id", doc.ID, "error", err)
			plain = ""
		}
		p.Password = plain
		doc.Payload = p

	case Text:
		plain, err := s.cipher.DecryptField(p.Content)
		if err != nil {
			s.log.Warn("decryption failed, blanking field", "doc_id", doc.ID, "error", err)
			plain = ""
		}
		p.Content = plain
		doc.Payload = p
	}

	return doc
}
