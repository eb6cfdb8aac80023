package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"securenest/internal/domain/document"
)

type DocumentRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewDocumentRepository(pool *pgxpool.Pool, log *slog.Logger) *DocumentRepository {
	return &DocumentRepository{
		pool: pool,
		log:  log.With("component", "document_repository"),
	}
}

// docRow is the flat column shape of a documents row. The tagged payload is
// folded into type-specific nullable columns and rebuilt on the way out.
type docRow struct {
	email     *string
	username  *string
	password  *string
	content   *string
	fileURL   *string
	objectKey *string
}

func (r *DocumentRepository) Create(ctx context.Context, d *document.Document) error {
	const query = `
		INSERT INTO documents
			(user_id, title, type, email, username, password, content, file_url, file_object_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	row := flatten(d.Payload)
	err := r.pool.QueryRow(ctx, query,
		d.UserID, d.Title, d.Type,
		row.email, row.username, row.password, row.content, row.fileURL, row.objectKey,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		r.log.Error("failed to create document",
			"user_id", d.UserID, "type", d.Type, "error", err)
		return fmt.Errorf("create document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) List(ctx context.Context, userID int) ([]document.Document, error) {
	const query = `
		SELECT id, user_id, title, type, email, username, password, content,
		       file_url, file_object_key, created_at, updated_at
		FROM documents
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("failed to list documents", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []document.Document
	for rows.Next() {
		d, err := r.scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

func (r *DocumentRepository) Get(ctx context.Context, userID, docID int) (document.Document, error) {
	const query = `
		SELECT id, user_id, title, type, email, username, password, content,
		       file_url, file_object_key, created_at, updated_at
		FROM documents
		WHERE id = $1 AND user_id = $2`

	d, err := r.scanDocument(r.pool.QueryRow(ctx, query, docID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.Document{}, document.ErrNotFound
		}
		r.log.Error("failed to get document",
			"doc_id", docID, "user_id", userID, "error", err)
		return document.Document{}, fmt.Errorf("get document: %w", err)
	}
	return d, nil
}

func (r *DocumentRepository) Update(ctx context.Context, d *document.Document) error {
	const query = `
		UPDATE documents
		SET title = $1, email = $2, username = $3, password = $4, content = $5,
		    file_url = $6, file_object_key = $7, updated_at = NOW()
		WHERE id = $8 AND user_id = $9
		RETURNING updated_at`

	row := flatten(d.Payload)
	err := r.pool.QueryRow(ctx, query,
		d.Title, row.email, row.username, row.password, row.content, row.fileURL, row.objectKey,
		d.ID, d.UserID,
	).Scan(&d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return document.ErrNotFound
		}
		r.log.Error("failed to update document",
			"doc_id", d.ID, "user_id", d.UserID, "error", err)
		return fmt.Errorf("update document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) Delete(ctx context.Context, userID, docID int) error {
	const query = `DELETE FROM documents WHERE id = $1 AND user_id = $2`

	result, err := r.pool.Exec(ctx, query, docID, userID)
	if err != nil {
		r.log.Error("failed to delete document",
			"doc_id", docID, "user_id", userID, "error", err)
		return fmt.Errorf("delete document: %w", err)
	}
	if result.RowsAffected() == 0 {
		return document.ErrNotFound
	}
	return nil
}

func flatten(p document.Payload) docRow {
	var row docRow
	switch v := p.(type) {
	case document.EmailPassword:
		row.email, row.password = &v.Email, &v.Password
	case document.UsernamePassword:
		row.username, row.password = &v.Username, &v.Password
	case document.Text:
		row.content = &v.Content
	case document.File:
		row.fileURL, row.objectKey = &v.URL, &v.ObjectKey
	}
	return row
}

func (r *DocumentRepository) scanDocument(row pgx.Row) (document.Document, error) {
	var (
		d   document.Document
		typ string
		c   docRow
	)
	err := row.Scan(&d.ID, &d.UserID, &d.Title, &typ,
		&c.email, &c.username, &c.password, &c.content, &c.fileURL, &c.objectKey,
		&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return document.Document{}, err
	}

	d.Type = document.DocType(typ)
	d.Payload = rebuild(d.Type, c)
	return d, nil
}

func rebuild(typ document.DocType, c docRow) document.Payload {
	switch typ {
	case document.TypeEmailPassword:
		return document.EmailPassword{Email: deref(c.email), Password: deref(c.password)}
	case document.TypeUsernamePassword:
		return document.UsernamePassword{Username: deref(c.username), Password: deref(c.password)}
	case document.TypeText:
		return document.Text{Content: deref(c.content)}
	case document.TypeImage, document.TypePDF:
		return document.File{Kind: typ, URL: deref(c.fileURL), ObjectKey: deref(c.objectKey)}
	default:
		return nil
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
