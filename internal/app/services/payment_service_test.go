package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/app/repositories"
	"github.com/escolar/escolar-backend/internal/pkg/apperrors"
)

func newPaymentService(t *testing.T) (*PaymentService, *repositories.Repositories) {
	t.Helper()
	repos := repositories.NewMemoryRepositories()
	_, err := repos.Students.Create(context.Background(), models.Student{
		PublicID:  "std-001",
		FirstName: "Ana",
		LastName:  "García",
		IsActive:  true,
	})
	require.NoError(t, err)
	return NewPaymentService(repos.Payments, repos.Students), repos
}

func validPayment() models.Payment {
	return models.Payment{
		StudentPublicID: "std-001",
		Amount:          150,
		PaymentDate:     "2025-01-10",
		Description:     "Mensualidad Enero",
		PaymentMethod:   models.MethodCash,
		DueDate:         "2025-01-31",
		Period:          "Enero 2025",
		PeriodType:      models.PeriodMonthly,
	}
}

func TestPaymentServiceCreateDefaultsToPending(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPaymentService(t)

	created, err := svc.Create(ctx, validPayment())
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPending, created.Status)
}

func TestPaymentServiceCreateUnknownStudent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPaymentService(t)

	p := validPayment()
	p.StudentPublicID = "std-999"
	_, err := svc.Create(ctx, p)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPaymentServiceCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPaymentService(t)

	tests := []struct {
		name   string
		mutate func(*models.Payment)
	}{
		{"unknown status", func(p *models.Payment) { p.Status = "cobrado" }},
		{"unknown method", func(p *models.Payment) { p.PaymentMethod = "cheque" }},
		{"unknown period type", func(p *models.Payment) { p.PeriodType = "anual" }},
		{"bad payment date", func(p *models.Payment) { p.PaymentDate = "10-01-2025" }},
		{"bad due date", func(p *models.Payment) { p.DueDate = "2025-1-31" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayment()
			tt.mutate(&p)
			_, err := svc.Create(ctx, p)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
		})
	}
}

func TestPaymentServiceCreateAllowsEmptyPaymentDate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPaymentService(t)

	p := validPayment()
	p.PaymentDate = ""
	created, err := svc.Create(ctx, p)
	require.NoError(t, err)
	assert.Empty(t, created.PaymentDate)
}

func TestPaymentServicePatchValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPaymentService(t)

	created, err := svc.Create(ctx, validPayment())
	require.NoError(t, err)

	badStatus := models.PaymentStatus("cobrado")
	_, err = svc.Patch(ctx, created.PublicID, dto.UpdatePaymentRequest{Status: &badStatus})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	badAmount := -5.0
	_, err = svc.Patch(ctx, created.PublicID, dto.UpdatePaymentRequest{Amount: &badAmount})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	badDate := "06/08/2025"
	_, err = svc.Patch(ctx, created.PublicID, dto.UpdatePaymentRequest{PaymentDate: &badDate})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
	_, err = svc.Patch(ctx, created.PublicID, dto.UpdatePaymentRequest{DueDate: &badDate})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	badPeriod := models.PeriodType("anual")
	_, err = svc.Patch(ctx, created.PublicID, dto.UpdatePaymentRequest{PeriodType: &badPeriod})
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	paid := models.PaymentPaid
	patched, err := svc.Patch(ctx, created.PublicID, dto.UpdatePaymentRequest{Status: &paid})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, patched.Status)
}

func TestPaymentServiceByStudent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newPaymentService(t)

	_, err := svc.Create(ctx, validPayment())
	require.NoError(t, err)

	page, err := svc.ByStudent(ctx, "std-001", searchDefaults())
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalElements)

	none, err := svc.ByStudent(ctx, "std-999", searchDefaults())
	require.NoError(t, err)
	assert.Equal(t, 0, none.TotalElements)
}
