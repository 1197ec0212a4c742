package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/passforge/passforge-go/internal/model"
)

var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository handles saved-credential persistence operations.
type CredentialRepository struct {
	db *sql.DB
}

// NewCredentialRepository creates a new CredentialRepository.
func NewCredentialRepository(db *sql.DB) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Create inserts a new credential and sets the generated ID on the struct.
func (r *CredentialRepository) Create(ctx context.Context, cred *model.Credential) error {
	query := `INSERT INTO credentials (user_id, label, username, sealed, strength_score, strength_rating)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		cred.UserID, cred.Label, cred.Username, cred.Sealed, cred.Score, string(cred.Rating),
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	cred.ID = id
	return nil
}

// GetByID retrieves a non-deleted credential owned by the given user.
func (r *CredentialRepository) GetByID(ctx context.Context, userID, id int64) (*model.Credential, error) {
	query := `SELECT id, user_id, label, username, sealed, strength_score, strength_rating,
			created_at, updated_at, deleted
		FROM credentials WHERE user_id = ? AND id = ? AND deleted = FALSE`

	cred := &model.Credential{}
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(
		&cred.ID, &cred.UserID, &cred.Label, &cred.Username, &cred.Sealed,
		&cred.Score, &cred.Rating, &cred.CreatedAt, &cred.UpdatedAt, &cred.Deleted,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCredentialNotFound
		}
		return nil, err
	}

	return cred, nil
}

// ListByUser retrieves all non-deleted credentials for a user, ordered by
// most recently updated.
func (r *CredentialRepository) ListByUser(ctx context.Context, userID int64) ([]model.Credential, error) {
	query := `SELECT id, user_id, label, username, sealed, strength_score, strength_rating,
			created_at, updated_at, deleted
		FROM credentials WHERE user_id = ? AND deleted = FALSE ORDER BY updated_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var creds []model.Credential
	for rows.Next() {
		var c model.Credential
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Label, &c.Username, &c.Sealed,
			&c.Score, &c.Rating, &c.CreatedAt, &c.UpdatedAt, &c.Deleted,
		); err != nil {
			return nil, err
		}
		creds = append(creds, c)
	}

	return creds, rows.Err()
}

// Update overwrites a credential's label, username, sealed secret and
// strength snapshot.
func (r *CredentialRepository) Update(ctx context.Context, cred *model.Credential) error {
	query := `UPDATE credentials
		SET label = ?, username = ?, sealed = ?, strength_score = ?, strength_rating = ?
		WHERE user_id = ? AND id = ? AND deleted = FALSE`

	result, err := r.db.ExecContext(ctx, query,
		cred.Label, cred.Username, cred.Sealed, cred.Score, string(cred.Rating),
		cred.UserID, cred.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}

// SoftDelete marks a credential as deleted.
func (r *CredentialRepository) SoftDelete(ctx context.Context, userID, id int64) error {
	query := `UPDATE credentials SET deleted = TRUE WHERE user_id = ? AND id = ? AND deleted = FALSE`

	result, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrCredentialNotFound
	}

	return nil
}
