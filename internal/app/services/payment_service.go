package services

import (
	"context"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/app/repositories"
	"github.com/escolar/escolar-backend/internal/pkg/apperrors"
	"github.com/escolar/escolar-backend/internal/pkg/search"
	"github.com/escolar/escolar-backend/internal/pkg/validation"
)

// PaymentService handles payment operations
type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	studentRepo repositories.StudentRepository
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(paymentRepo repositories.PaymentRepository, studentRepo repositories.StudentRepository) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		studentRepo: studentRepo,
	}
}

// Search returns the page of payments matching the filters.
func (s *PaymentService) Search(ctx context.Context, filters models.PaymentFilters, params search.Params) (search.Page[models.Payment], error) {
	return s.paymentRepo.Search(ctx, filters, params)
}

// ByStudent returns the payments charged to one student.
func (s *PaymentService) ByStudent(ctx context.Context, studentID string, params search.Params) (search.Page[models.Payment], error) {
	return s.paymentRepo.Search(ctx, models.PaymentFilters{StudentID: studentID}, params)
}

// GetByPublicID returns one payment.
func (s *PaymentService) GetByPublicID(ctx context.Context, publicID string) (models.Payment, error) {
	return s.paymentRepo.GetByPublicID(ctx, publicID)
}

// Create registers a new charge against an existing student. Charges start
// pending unless a valid status is given.
func (s *PaymentService) Create(ctx context.Context, payment models.Payment) (models.Payment, error) {
	if _, err := s.studentRepo.GetByPublicID(ctx, payment.StudentPublicID); err != nil {
		return models.Payment{}, err
	}
	if payment.Status == "" {
		payment.Status = models.PaymentPending
	}
	if err := validatePaymentEnums(payment.Status, payment.PaymentMethod, payment.PeriodType); err != nil {
		return models.Payment{}, err
	}
	if err := validatePaymentDates(payment); err != nil {
		return models.Payment{}, err
	}
	return s.paymentRepo.Create(ctx, payment)
}

// Patch merges the present fields into the stored payment.
func (s *PaymentService) Patch(ctx context.Context, publicID string, patch dto.UpdatePaymentRequest) (models.Payment, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return models.Payment{}, apperrors.NewValidationError("unknown payment status " + string(*patch.Status))
	}
	if patch.PaymentMethod != nil && !patch.PaymentMethod.Valid() {
		return models.Payment{}, apperrors.NewValidationError("unknown payment method " + string(*patch.PaymentMethod))
	}
	if patch.PeriodType != nil && !patch.PeriodType.Valid() {
		return models.Payment{}, apperrors.NewValidationError("unknown period type " + string(*patch.PeriodType))
	}
	if patch.Amount != nil && *patch.Amount <= 0 {
		return models.Payment{}, apperrors.NewValidationError("amount must be greater than zero")
	}
	if patch.PaymentDate != nil && !validation.IsISODate(*patch.PaymentDate) {
		return models.Payment{}, apperrors.NewValidationError("paymentDate must be an ISO-8601 date")
	}
	if patch.DueDate != nil && !validation.IsISODate(*patch.DueDate) {
		return models.Payment{}, apperrors.NewValidationError("dueDate must be an ISO-8601 date")
	}
	return s.paymentRepo.Patch(ctx, publicID, patch)
}

// Replace swaps the stored payment for the given record.
func (s *PaymentService) Replace(ctx context.Context, publicID string, payment models.Payment) (models.Payment, error) {
	if err := validatePaymentEnums(payment.Status, payment.PaymentMethod, payment.PeriodType); err != nil {
		return models.Payment{}, err
	}
	if err := validatePaymentDates(payment); err != nil {
		return models.Payment{}, err
	}
	return s.paymentRepo.Replace(ctx, publicID, payment)
}

// Delete removes the payment.
func (s *PaymentService) Delete(ctx context.Context, publicID string) error {
	return s.paymentRepo.Delete(ctx, publicID)
}

func validatePaymentEnums(status models.PaymentStatus, method models.PaymentMethod, periodType models.PeriodType) error {
	if status != "" && !status.Valid() {
		return apperrors.NewValidationError("unknown payment status " + string(status))
	}
	if method != "" && !method.Valid() {
		return apperrors.NewValidationError("unknown payment method " + string(method))
	}
	if periodType != "" && !periodType.Valid() {
		return apperrors.NewValidationError("unknown period type " + string(periodType))
	}
	return nil
}

func validatePaymentDates(payment models.Payment) error {
	if !validation.IsISODate(payment.PaymentDate) {
		return apperrors.NewValidationError("paymentDate must be an ISO-8601 date")
	}
	if !validation.IsISODate(payment.DueDate) {
		return apperrors.NewValidationError("dueDate must be an ISO-8601 date")
	}
	return nil
}
