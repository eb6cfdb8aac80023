package document

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, doc *Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context, userID int) ([]Document, error) {
	args := m.Called(ctx, userID)
	if docs, ok := args.Get(0).([]Document); ok {
		return docs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, userID, docID int) (Document, error) {
	args := m.Called(ctx, userID, docID)
	if doc, ok := args.Get(0).(Document); ok {
		return doc, args.Error(1)
	}
	return Document{}, args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, doc *Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, userID, docID int) error {
	args := m.Called(ctx, userID, docID)
	return args.Error(0)
}

type MockAssets struct {
	mock.Mock
}

func (m *MockAssets) Upload(ctx context.Context, data []byte, filename, contentType string) (string, string, error) {
	args := m.Called(ctx, data, filename, contentType)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAssets) Delete(ctx context.Context, objectKey string) error {
	args := m.Called(ctx, objectKey)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Record(ctx context.Context, userID int, title, message string) {
	m.Called(ctx, userID, title, message)
}

// fakeCipher is a reversible stand-in so tests can assert that what reaches
// the repository is ciphertext and what comes back out is plaintext.
type fakeCipher struct {
	failDecrypt bool
}

func (f fakeCipher) EncryptField(plain string) (string, error) {
	if plain == "" {
		return "", nil
	}
	return "enc:" + plain, nil
}

func (f fakeCipher) DecryptField(cipher string) (string, error) {
	if f.failDecrypt {
		return "", errors.New("cipher: message authentication failed")
	}
	if cipher == "" {
		return "", nil
	}
	if len(cipher) > 4 && cipher[:4] == "enc:" {
		return cipher[4:], nil
	}
	return "", errors.New("not ciphertext")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_Create_EmailPassword(t *testing.T) {
	repo := new(MockRepository)
	assets := new(MockAssets)
	notifier := new(MockNotifier)
	svc := NewService(repo, assets, fakeCipher{}, notifier, discardLogger())

	repo.On("Create", mock.Anything, mock.MatchedBy(func(doc *Document) bool {
		p, ok := doc.Payload.(EmailPassword)
		return ok && p.Email == "me@example.com" && p.Password == "enc:s3cret"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*Document).ID = 42
	}).Return(nil)
	notifier.On("Record", mock.Anything, 7, "New Document Added", mock.Anything).Return()

	doc, err := svc.Create(context.Background(), 7, Input{
		Title:    "Mailbox",
		Type:     TypeEmailPassword,
		Email:    "me@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.Equal(t, 42, doc.ID)
	p, ok := doc.Payload.(EmailPassword)
	require.True(t, ok)
	assert.Equal(t, "s3cret", p.Password, "returned document must carry plaintext")

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestService_Create_MissingTitle(t *testing.T) {
	svc := NewService(new(MockRepository), new(MockAssets), fakeCipher{}, new(MockNotifier), discardLogger())

	_, err := svc.Create(context.Background(), 7, Input{Type: TypeText, Content: "x"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_UnknownType(t *testing.T) {
	svc := NewService(new(MockRepository), new(MockAssets), fakeCipher{}, new(MockNotifier), discardLogger())

	_, err := svc.Create(context.Background(), 7, Input{Title: "x", Type: DocType("spreadsheet")})
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestService_Create_ImageRequiresFile(t *testing.T) {
	svc := NewService(new(MockRepository), new(MockAssets), fakeCipher{}, new(MockNotifier), discardLogger())

	_, err := svc.Create(context.Background(), 7, Input{Title: "Scan", Type: TypeImage})
	assert.ErrorIs(t, err, ErrFileRequired)
}

func TestService_Create_ImageUploadsAsset(t *testing.T) {
	repo := new(MockRepository)
	assets := new(MockAssets)
	notifier := new(MockNotifier)
	svc := NewService(repo, assets, fakeCipher{}, notifier, discardLogger())

	data := []byte{0x89, 0x50, 0x4e, 0x47}
	assets.On("Upload", mock.Anything, data, "scan.png", "image/png").
		Return("https://cdn.example.com/vault/abc.png", "vault/abc.png", nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(doc *Document) bool {
		p, ok := doc.Payload.(File)
		return ok && p.Kind == TypeImage && p.ObjectKey == "vault/abc.png"
	})).Return(nil)
	notifier.On("Record", mock.Anything, 7, "New Document Added", mock.Anything).Return()

	doc, err := svc.Create(context.Background(), 7, Input{
		Title: "Scan",
		Type:  TypeImage,
		File:  &FileUpload{Data: data, Filename: "scan.png", ContentType: "image/png"},
	})
	require.NoError(t, err)

	p, ok := doc.Payload.(File)
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example.com/vault/abc.png", p.URL)

	assets.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestService_List_DecryptsFields(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockAssets), fakeCipher{}, new(MockNotifier), discardLogger())

	repo.On("List", mock.Anything, 7).Return([]Document{
		{ID: 2, Title: "Note", Type: TypeText, Payload: Text{Content: "enc:remember"}},
		{ID: 1, Title: "Login", Type: TypeUsernamePassword, Payload: UsernamePassword{Username: "me", Password: "enc:pw"}},
	}, nil)

	docs, err := svc.List(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "remember", docs[0].Payload.(Text).Content)
	assert.Equal(t, "pw", docs[1].Payload.(UsernamePassword).Password)
}

func TestService_List_DecryptFailureBlanksField(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockAssets), fakeCipher{failDecrypt: true}, new(MockNotifier), discardLogger())

	repo.On("List", mock.Anything, 7).Return([]Document{
		{ID: 1, Title: "Note", Type: TypeText, Payload: Text{Content: "enc:remember"}},
	}, nil)

	docs, err := svc.List(context.Background(), 7)
	require.NoError(t, err, "decrypt failure must not fail the listing")
	assert.Empty(t, docs[0].Payload.(Text).Content)
}

func TestService_Get_NotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockAssets), fakeCipher{}, new(MockNotifier), discardLogger())

	repo.On("Get", mock.Anything, 7, 99).Return(Document{}, ErrNotFound)

	_, err := svc.Get(context.Background(), 7, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_ReencryptsAndNotifies(t *testing.T) {
	repo := new(MockRepository)
	notifier := new(MockNotifier)
	svc := NewService(repo, new(MockAssets), fakeCipher{}, notifier, discardLogger())

	repo.On("Get", mock.Anything, 7, 1).Return(Document{
		ID: 1, UserID: 7, Title: "Note", Type: TypeText, Payload: Text{Content: "enc:old"},
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(doc *Document) bool {
		return doc.Title == "Renamed" && doc.Payload.(Text).Content == "enc:new"
	})).Return(nil)
	notifier.On("Record", mock.Anything, 7, "Document Updated", mock.Anything).Return()

	doc, err := svc.Update(context.Background(), 7, 1, UpdateInput{Title: "Renamed", Content: "new"})
	require.NoError(t, err)
	assert.Equal(t, "new", doc.Payload.(Text).Content)

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestService_Update_ReplacesAsset(t *testing.T) {
	repo := new(MockRepository)
	assets := new(MockAssets)
	notifier := new(MockNotifier)
	svc := NewService(repo, assets, fakeCipher{}, notifier, discardLogger())

	repo.On("Get", mock.Anything, 7, 1).Return(Document{
		ID: 1, UserID: 7, Title: "Scan", Type: TypeImage,
		Payload: File{Kind: TypeImage, URL: "https://cdn/old.png", ObjectKey: "vault/old.png"},
	}, nil)
	assets.On("Delete", mock.Anything, "vault/old.png").Return(nil)
	assets.On("Upload", mock.Anything, mock.Anything, "new.png", "image/png").
		Return("https://cdn/new.png", "vault/new.png", nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(doc *Document) bool {
		return doc.Payload.(File).ObjectKey == "vault/new.png"
	})).Return(nil)
	notifier.On("Record", mock.Anything, 7, "Document Updated", mock.Anything).Return()

	_, err := svc.Update(context.Background(), 7, 1, UpdateInput{
		File: &FileUpload{Data: []byte{1}, Filename: "new.png", ContentType: "image/png"},
	})
	require.NoError(t, err)

	assets.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestService_Update_OldAssetDeleteFailureAborts(t *testing.T) {
	repo := new(MockRepository)
	assets := new(MockAssets)
	svc := NewService(repo, assets, fakeCipher{}, new(MockNotifier), discardLogger())

	repo.On("Get", mock.Anything, 7, 1).Return(Document{
		ID: 1, UserID: 7, Title: "Scan", Type: TypeImage,
		Payload: File{Kind: TypeImage, URL: "https://cdn/old.png", ObjectKey: "vault/old.png"},
	}, nil)
	assets.On("Delete", mock.Anything, "vault/old.png").Return(errors.New("bucket unreachable"))

	_, err := svc.Update(context.Background(), 7, 1, UpdateInput{
		File: &FileUpload{Data: []byte{1}, Filename: "new.png", ContentType: "image/png"},
	})
	require.Error(t, err)

	assets.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_KeepsAssetWhenNoFile(t *testing.T) {
	repo := new(MockRepository)
	assets := new(MockAssets)
	notifier := new(MockNotifier)
	svc := NewService(repo, assets, fakeCipher{}, notifier, discardLogger())

	repo.On("Get", mock.Anything, 7, 1).Return(Document{
		ID: 1, UserID: 7, Title: "Scan", Type: TypeImage,
		Payload: File{Kind: TypeImage, URL: "https://cdn/old.png", ObjectKey: "vault/old.png"},
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(doc *Document) bool {
		return doc.Title == "Renamed" && doc.Payload.(File).ObjectKey == "vault/old.png"
	})).Return(nil)
	notifier.On("Record", mock.Anything, 7, "Document Updated", mock.Anything).Return()

	_, err := svc.Update(context.Background(), 7, 1, UpdateInput{Title: "Renamed"})
	require.NoError(t, err)

	assets.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestService_Delete_RemovesAssetFirst(t *testing.T) {
	repo := new(MockRepository)
	assets := new(MockAssets)
	notifier := new(MockNotifier)
	svc := NewService(repo, assets, fakeCipher{}, notifier, discardLogger())

	repo.On("Get", mock.Anything, 7, 1).Return(Document{
		ID: 1, UserID: 7, Title: "Scan", Type: TypePDF,
		Payload: File{Kind: TypePDF, URL: "https://cdn/a.pdf", ObjectKey: "vault/a.pdf"},
	}, nil)
	assets.On("Delete", mock.Anything, "vault/a.pdf").Return(nil)
	repo.On("Delete", mock.Anything, 7, 1).Return(nil)
	notifier.On("Record", mock.Anything, 7, "Document Deleted", `Document "Scan" was deleted successfully.`).Return()

	err := svc.Delete(context.Background(), 7, 1)
	require.NoError(t, err)

	assets.AssertExpectations(t)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestService_Delete_RemoteFailureKeepsRecord(t *testing.T) {
	repo := new(MockRepository)
	assets := new(MockAssets)
	svc := NewService(repo, assets, fakeCipher{}, new(MockNotifier), discardLogger())

	repo.On("Get", mock.Anything, 7, 1).Return(Document{
		ID: 1, UserID: 7, Title: "Scan", Type: TypePDF,
		Payload: File{Kind: TypePDF, URL: "https://cdn/a.pdf", ObjectKey: "vault/a.pdf"},
	}, nil)
	assets.On("Delete", mock.Anything, "vault/a.pdf").Return(errors.New("bucket unreachable"))

	err := svc.Delete(context.Background(), 7, 1)
	require.Error(t, err)

	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockAssets), fakeCipher{}, new(MockNotifier), discardLogger())

	repo.On("Get", mock.Anything, 7, 99).Return(Document{}, ErrNotFound)

	err := svc.Delete(context.Background(), 7, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
