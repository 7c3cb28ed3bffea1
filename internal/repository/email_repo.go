package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"smartmail/internal/model"
)

type EmailRepository struct {
	db *pgxpool.Pool
}

func NewEmailRepository(db *pgxpool.Pool) *EmailRepository {
	return &EmailRepository{db: db}
}

// Insert stores a new email and returns the stored record with its
// store-assigned id and timestamp.
func (r *EmailRepository) Insert(ctx context.Context, e *model.EmailRecord) (*model.EmailRecord, error) {
	query := `
        INSERT INTO emails ("to", cc, bcc, subject, body, sender, sender_email)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	stored := *e
	err := r.db.QueryRow(ctx, query,
		e.To, e.CC, e.BCC, e.Subject, e.Body, e.Sender, e.SenderEmail,
	).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// ListAll returns every stored email, newest first.
func (r *EmailRepository) ListAll(ctx context.Context) ([]model.EmailRecord, error) {
	query := `
        SELECT id, "to", cc, bcc, subject, body, sender, sender_email, created_at
        FROM emails
        ORDER BY created_at DESC, id DESC
    `

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	emails := []model.EmailRecord{}

	for rows.Next() {
		var e model.EmailRecord
		err := rows.Scan(
			&e.ID,
			&e.To,
			&e.CC,
			&e.BCC,
			&e.Subject,
			&e.Body,
			&e.Sender,
			&e.SenderEmail,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		emails = append(emails, e)
	}

	return emails, rows.Err()
}
