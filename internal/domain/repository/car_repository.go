package repository

import (
	"autosallon/internal/common"
	"autosallon/internal/domain/model"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type CarRepository interface {
	List(ctx context.Context) ([]model.Car, error)
	FindByID(ctx context.Context, id int) (*model.Car, error)
	Create(ctx context.Context, car *model.Car) error
	Update(ctx context.Context, car *model.Car) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type pgCarRepository struct {
	db *sql.DB
}

func NewPgCarRepository(db *sql.DB) CarRepository {
	return &pgCarRepository{db: db}
}

func (r *pgCarRepository) List(ctx context.Context) ([]model.Car, error) {
	query := `SELECT id, title, slug, price, year, mileage, description, images, specs
	          FROM cars ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgCarRepository.List: %w", err)
	}
	defer rows.Close()

	cars := []model.Car{}
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("pgCarRepository.List: %w", err)
		}
		cars = append(cars, *car)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgCarRepository.List: %w", err)
	}
	return cars, nil
}

func (r *pgCarRepository) FindByID(ctx context.Context, id int) (*model.Car, error) {
	query := `SELECT id, title, slug, price, year, mileage, description, images, specs
	          FROM cars WHERE id = $1`
	car, err := scanCar(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgCarRepository.FindByID: %w", err)
	}
	return car, nil
}

func (r *pgCarRepository) Create(ctx context.Context, car *model.Car) error {
	query := `INSERT INTO cars (title, slug, price, year, mileage, description, images, specs)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		car.Title, car.Slug, car.Price, car.Year, car.Mileage, car.Description,
		car.Images.Encode(), car.Specs.Encode(),
	).Scan(&car.ID)
	if err != nil {
		return fmt.Errorf("pgCarRepository.Create: %w", err)
	}
	return nil
}

func (r *pgCarRepository) Update(ctx context.Context, car *model.Car) error {
	query := `UPDATE cars SET
	            title = $1, slug = $2, price = $3, year = $4, mileage = $5,
	            description = $6, images = $7, specs = $8
	          WHERE id = $9`
	result, err := r.db.ExecContext(ctx, query,
		car.Title, car.Slug, car.Price, car.Year, car.Mileage, car.Description,
		car.Images.Encode(), car.Specs.Encode(), car.ID,
	)
	if err != nil {
		return fmt.Errorf("pgCarRepository.Update: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgCarRepository.Update: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgCarRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgCarRepository.Delete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgCarRepository.Delete: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgCarRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cars`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("pgCarRepository.Count: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanCar decodes the TEXT columns defensively: malformed stored JSON
// becomes an empty list / zero spec sheet rather than a read failure.
func scanCar(row rowScanner) (*model.Car, error) {
	car := &model.Car{}
	var images, specs string
	err := row.Scan(
		&car.ID, &car.Title, &car.Slug, &car.Price, &car.Year, &car.Mileage,
		&car.Description, &images, &specs,
	)
	if err != nil {
		return nil, err
	}
	car.Images = model.DecodeImages(images)
	car.Specs = model.DecodeSpecs(specs)
	return car, nil
}
