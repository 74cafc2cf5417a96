package repository

import (
	"autosallon/internal/common"
	"autosallon/internal/domain/model"
	"context"
	"database/sql"
	"fmt"
)

type ContactRepository interface {
	List(ctx context.Context) ([]model.Contact, error)
	Create(ctx context.Context, contact *model.Contact) error
	Delete(ctx context.Context, id int) error
}

type pgContactRepository struct {
	db *sql.DB
}

func NewPgContactRepository(db *sql.DB) ContactRepository {
	return &pgContactRepository{db: db}
}

func (r *pgContactRepository) List(ctx context.Context) ([]model.Contact, error) {
	query := `SELECT id, name, email, message, created_at FROM contacts ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgContactRepository.List: %w", err)
	}
	defer rows.Close()

	contacts := []model.Contact{}
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgContactRepository.List: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgContactRepository.List: %w", err)
	}
	return contacts, nil
}

func (r *pgContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	query := `INSERT INTO contacts (name, email, message, created_at)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		contact.Name, contact.Email, contact.Message, contact.CreatedAt,
	).Scan(&contact.ID)
	if err != nil {
		return fmt.Errorf("pgContactRepository.Create: %w", err)
	}
	return nil
}

func (r *pgContactRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgContactRepository.Delete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgContactRepository.Delete: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
