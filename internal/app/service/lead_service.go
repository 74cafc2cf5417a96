package service

import (
	"autosallon/internal/common"
	"autosallon/internal/domain/model"
	"autosallon/internal/domain/repository"
	"context"
	"fmt"
	"strings"
	"time"
)

// LeadService handles the two visitor-facing lead types: contact messages and
// sell requests. The public and admin contact-creation routes both go through
// CreateContact.
type LeadService struct {
	contactRepo     repository.ContactRepository
	sellRequestRepo repository.SellRequestRepository
}

func NewLeadService(contactRepo repository.ContactRepository, sellRequestRepo repository.SellRequestRepository) *LeadService {
	return &LeadService{contactRepo: contactRepo, sellRequestRepo: sellRequestRepo}
}

// CreateContactRequest deliberately has no createdAt field: the timestamp is
// always assigned server-side at creation time.
type CreateContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type CreateSellRequestRequest struct {
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Phone      string           `json:"phone"`
	CarDetails model.CarDetails `json:"carDetails"`
}

func (s *LeadService) CreateContact(ctx context.Context, req CreateContactRequest) (*model.Contact, error) {
	if err := validateContact(req); err != nil {
		return nil, err
	}

	contact := &model.Contact{
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return contact, nil
}

func (s *LeadService) ListContacts(ctx context.Context) ([]model.Contact, error) {
	contacts, err := s.contactRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

func (s *LeadService) DeleteContact(ctx context.Context, id int) error {
	return s.contactRepo.Delete(ctx, id)
}

func (s *LeadService) CreateSellRequest(ctx context.Context, req CreateSellRequestRequest) (*model.SellRequest, error) {
	if err := validateSellRequest(req); err != nil {
		return nil, err
	}

	request := &model.SellRequest{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		CarDetails: req.CarDetails,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.sellRequestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create sell request: %w", err)
	}
	return request, nil
}

func (s *LeadService) ListSellRequests(ctx context.Context) ([]model.SellRequest, error) {
	requests, err := s.sellRequestRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sell requests: %w", err)
	}
	return requests, nil
}

func (s *LeadService) DeleteSellRequest(ctx context.Context, id int) error {
	return s.sellRequestRepo.Delete(ctx, id)
}

func validateContact(req CreateContactRequest) error {
	v := &common.ValidationError{}
	if req.Name == "" {
		v.Add("name", "name is required")
	}
	validateEmail(v, req.Email)
	if req.Message == "" {
		v.Add("message", "message is required")
	}
	return v.OrNil()
}

func validateSellRequest(req CreateSellRequestRequest) error {
	v := &common.ValidationError{}
	if req.Name == "" {
		v.Add("name", "name is required")
	}
	validateEmail(v, req.Email)
	if req.Phone == "" {
		v.Add("phone", "phone is required")
	}
	if req.CarDetails.Make == "" {
		v.Add("carDetails.make", "make is required")
	}
	if req.CarDetails.Model == "" {
		v.Add("carDetails.model", "model is required")
	}
	if req.CarDetails.Year < 1900 || req.CarDetails.Year > time.Now().Year()+1 {
		v.Add("carDetails.year", "year is out of range")
	}
	if req.CarDetails.Mileage < 0 {
		v.Add("carDetails.mileage", "mileage must not be negative")
	}
	if !req.CarDetails.Condition.Valid() {
		v.Add("carDetails.condition", "condition must be one of excellent, good, fair, poor")
	}
	if req.CarDetails.AskingPrice <= 0 {
		v.Add("carDetails.askingPrice", "asking price must be positive")
	}
	return v.OrNil()
}

func validateEmail(v *common.ValidationError, email string) {
	if email == "" {
		v.Add("email", "email is required")
		return
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		v.Add("email", "email is not a valid address")
	}
}
