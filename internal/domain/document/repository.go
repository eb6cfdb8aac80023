package document

import "context"

// Repository persists vault entries. Every lookup and mutation is scoped by
// (user id, document id) together, so cross-user access cannot happen at
// this layer at all.
type Repository interface {
	Create(ctx context.Context, d *Document) error
	// List returns the owner's documents newest-first.
	List(ctx context.Context, userID int) ([]Document, error)
	Get(ctx context.Context, userID, docID int) (Document, error)
	Update(ctx context.Context, d *Document) error
	Delete(ctx context.Context, userID, docID int) error
}

// AssetStorage is the remote object store holding image/pdf binaries.
type AssetStorage interface {
	Upload(ctx context.Context, data []byte, filename, contentType string) (url, objectKey string, err error)
	Delete(ctx context.Context, objectKey string) error
}

// FieldCipher encrypts and decrypts individual sensitive fields.
type FieldCipher interface {
	EncryptField(plaintext string) (string, error)
	DecryptField(ciphertext string) (string, error)
}

// Notifier records an activity entry; failures never surface to callers.
type Notifier interface {
	Record(ctx context.Context, userID int, title, message string)
}
