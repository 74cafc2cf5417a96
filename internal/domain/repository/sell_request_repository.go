package repository

import (
	"autosallon/internal/common"
	"autosallon/internal/domain/model"
	"context"
	"database/sql"
	"fmt"
)

type SellRequestRepository interface {
	List(ctx context.Context) ([]model.SellRequest, error)
	Create(ctx context.Context, request *model.SellRequest) error
	Delete(ctx context.Context, id int) error
}

type pgSellRequestRepository struct {
	db *sql.DB
}

func NewPgSellRequestRepository(db *sql.DB) SellRequestRepository {
	return &pgSellRequestRepository{db: db}
}

func (r *pgSellRequestRepository) List(ctx context.Context) ([]model.SellRequest, error) {
	query := `SELECT id, name, email, phone, car_details, created_at
	          FROM sell_requests ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgSellRequestRepository.List: %w", err)
	}
	defer rows.Close()

	requests := []model.SellRequest{}
	for rows.Next() {
		var req model.SellRequest
		var details string
		if err := rows.Scan(&req.ID, &req.Name, &req.Email, &req.Phone, &details, &req.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgSellRequestRepository.List: %w", err)
		}
		req.CarDetails = model.DecodeCarDetails(details)
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgSellRequestRepository.List: %w", err)
	}
	return requests, nil
}

func (r *pgSellRequestRepository) Create(ctx context.Context, request *model.SellRequest) error {
	query := `INSERT INTO sell_requests (name, email, phone, car_details, created_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		request.Name, request.Email, request.Phone, request.CarDetails.Encode(), request.CreatedAt,
	).Scan(&request.ID)
	if err != nil {
		return fmt.Errorf("pgSellRequestRepository.Create: %w", err)
	}
	return nil
}

func (r *pgSellRequestRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sell_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgSellRequestRepository.Delete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgSellRequestRepository.Delete: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
