package service

import (
	"autosallon/internal/common"
	"autosallon/internal/domain/model"
	"autosallon/internal/domain/repository"
	"context"
	"fmt"
	"time"

	"github.com/gosimple/slug"
)

type CarService struct {
	carRepo repository.CarRepository
}

func NewCarService(carRepo repository.CarRepository) *CarService {
	return &CarService{carRepo: carRepo}
}

type CreateCarRequest struct {
	Title       string          `json:"title"`
	Price       int             `json:"price"`
	Year        int             `json:"year"`
	Mileage     int             `json:"mileage"`
	Description string          `json:"description"`
	Images      model.ImageList `json:"images"`
	Specs       model.CarSpecs  `json:"specs"`
}

// UpdateCarRequest is a partial payload; nil fields keep the stored value.
type UpdateCarRequest struct {
	Title       *string          `json:"title,omitempty"`
	Price       *int             `json:"price,omitempty"`
	Year        *int             `json:"year,omitempty"`
	Mileage     *int             `json:"mileage,omitempty"`
	Description *string          `json:"description,omitempty"`
	Images      *model.ImageList `json:"images,omitempty"`
	Specs       *model.CarSpecs  `json:"specs,omitempty"`
}

func (s *CarService) ListCars(ctx context.Context) ([]model.Car, error) {
	cars, err := s.carRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}
	return cars, nil
}

func (s *CarService) GetCar(ctx context.Context, id int) (*model.Car, error) {
	return s.carRepo.FindByID(ctx, id)
}

func (s *CarService) CreateCar(ctx context.Context, req CreateCarRequest) (*model.Car, error) {
	car := &model.Car{
		Title:       req.Title,
		Slug:        slug.Make(req.Title),
		Price:       req.Price,
		Year:        req.Year,
		Mileage:     req.Mileage,
		Description: req.Description,
		Images:      req.Images,
		Specs:       req.Specs,
	}
	if car.Images == nil {
		car.Images = model.ImageList{}
	}

	if err := validateCar(car); err != nil {
		return nil, err
	}

	if err := s.carRepo.Create(ctx, car); err != nil {
		return nil, fmt.Errorf("failed to create car: %w", err)
	}
	return car, nil
}

// UpdateCar merges the provided fields into the stored row and re-validates
// the merged result. A missing id fails with ErrNotFound before validation.
func (s *CarService) UpdateCar(ctx context.Context, id int, req UpdateCarRequest) (*model.Car, error) {
	car, err := s.carRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		car.Title = *req.Title
		car.Slug = slug.Make(*req.Title)
	}
	if req.Price != nil {
		car.Price = *req.Price
	}
	if req.Year != nil {
		car.Year = *req.Year
	}
	if req.Mileage != nil {
		car.Mileage = *req.Mileage
	}
	if req.Description != nil {
		car.Description = *req.Description
	}
	if req.Images != nil {
		car.Images = *req.Images
	}
	if req.Specs != nil {
		car.Specs = *req.Specs
	}

	if err := validateCar(car); err != nil {
		return nil, err
	}

	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

func (s *CarService) DeleteCar(ctx context.Context, id int) error {
	return s.carRepo.Delete(ctx, id)
}

func validateCar(car *model.Car) error {
	v := &common.ValidationError{}
	if car.Title == "" {
		v.Add("title", "title is required")
	}
	if car.Price <= 0 {
		v.Add("price", "price must be positive")
	}
	if car.Year < 1900 || car.Year > time.Now().Year()+1 {
		v.Add("year", "year is out of range")
	}
	if car.Mileage < 0 {
		v.Add("mileage", "mileage must not be negative")
	}
	if car.Description == "" {
		v.Add("description", "description is required")
	}
	return v.OrNil()
}
