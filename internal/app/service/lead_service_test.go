package service

import (
	"autosallon/internal/common"
	"autosallon/internal/domain/model"
	"autosallon/internal/domain/repository"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeadService() *LeadService {
	return NewLeadService(repository.NewMemoryContactRepository(), repository.NewMemorySellRequestRepository())
}

func TestLeadService_CreateContactAssignsTimestamp(t *testing.T) {
	svc := newLeadService()
	ctx := context.Background()

	before := time.Now().UTC()
	contact, err := svc.CreateContact(ctx, CreateContactRequest{
		Name:    "Arben",
		Email:   "arben@example.com",
		Message: "Interested in the S-Class.",
	})
	require.NoError(t, err)
	after := time.Now().UTC()

	require.NotZero(t, contact.ID)
	assert.False(t, contact.CreatedAt.Before(before))
	assert.False(t, contact.CreatedAt.After(after))
}

func TestLeadService_ContactValidation(t *testing.T) {
	svc := newLeadService()
	ctx := context.Background()

	_, err := svc.CreateContact(ctx, CreateContactRequest{Name: "Arben", Message: "hi"})
	require.Error(t, err)

	var verr *common.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "email", verr.Fields[0].Field)
}

func TestLeadService_ContactBadEmail(t *testing.T) {
	svc := newLeadService()
	ctx := context.Background()

	for _, email := range []string{"no-at-sign", "@leading", "trailing@"} {
		_, err := svc.CreateContact(ctx, CreateContactRequest{Name: "x", Email: email, Message: "y"})
		assert.ErrorIs(t, err, common.ErrValidation, email)
	}
}

func TestLeadService_CreateSellRequest(t *testing.T) {
	svc := newLeadService()
	ctx := context.Background()

	request, err := svc.CreateSellRequest(ctx, CreateSellRequestRequest{
		Name:  "Drita",
		Email: "drita@example.com",
		Phone: "+355691234567",
		CarDetails: model.CarDetails{
			Make: "Volkswagen", Model: "Golf", Year: 2018, Mileage: 85000,
			Condition: model.ConditionGood, AskingPrice: 14000,
		},
	})
	require.NoError(t, err)
	require.NotZero(t, request.ID)
	assert.False(t, request.CreatedAt.IsZero())

	listed, err := svc.ListSellRequests(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, request.CarDetails, listed[0].CarDetails)
}

func TestLeadService_SellRequestValidation(t *testing.T) {
	svc := newLeadService()
	ctx := context.Background()

	_, err := svc.CreateSellRequest(ctx, CreateSellRequestRequest{
		Name:  "Drita",
		Email: "drita@example.com",
		Phone: "123",
		CarDetails: model.CarDetails{
			Make: "VW", Model: "Golf", Year: 2018, Mileage: 85000,
			Condition: model.Condition("mint"), AskingPrice: 0,
		},
	})
	require.Error(t, err)

	var verr *common.ValidationError
	require.True(t, errors.As(err, &verr))

	fields := map[string]bool{}
	for _, f := range verr.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["carDetails.condition"])
	assert.True(t, fields["carDetails.askingPrice"])
}

func TestLeadService_DeleteMissing(t *testing.T) {
	svc := newLeadService()
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteContact(ctx, 9999), common.ErrNotFound)
	assert.ErrorIs(t, svc.DeleteSellRequest(ctx, 9999), common.ErrNotFound)
}
