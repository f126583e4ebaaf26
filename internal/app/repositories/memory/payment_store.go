package memory

import (
	"context"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/pkg/apperrors"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

// PaymentStore is the in-memory payment data source
type PaymentStore struct {
	records *Collection[models.Payment]
}

// NewPaymentStore creates an empty in-memory payment store
func NewPaymentStore() *PaymentStore {
	return &PaymentStore{
		records: NewCollection(
			func(p *models.Payment) (int64, string) { return p.ID, p.PublicID },
			func(p *models.Payment, id int64, publicID string) {
				p.ID = id
				p.PublicID = publicID
			},
		),
	}
}

// Search runs the filter/sort/paginate pipeline over all payments.
func (r *PaymentStore) Search(_ context.Context, filters models.PaymentFilters, params search.Params) (search.Page[models.Payment], error) {
	return r.records.Search(filters.Matches, models.PaymentSchema, params), nil
}

// GetByPublicID returns one payment by public id.
func (r *PaymentStore) GetByPublicID(_ context.Context, publicID string) (models.Payment, error) {
	p, ok := r.records.Find(publicID)
	if !ok {
		return models.Payment{}, apperrors.ErrPaymentNotFound
	}
	return p, nil
}

// Create stores a new payment.
func (r *PaymentStore) Create(_ context.Context, payment models.Payment) (models.Payment, error) {
	return r.records.Insert(payment), nil
}

// Patch merges the present fields of the request into the stored payment.
func (r *PaymentStore) Patch(_ context.Context, publicID string, patch dto.UpdatePaymentRequest) (models.Payment, error) {
	p, err := r.records.Mutate(publicID, func(p *models.Payment) error {
		patch.ApplyTo(p)
		return nil
	})
	if err != nil {
		return models.Payment{}, apperrors.ErrPaymentNotFound
	}
	return p, nil
}

// Replace swaps the stored payment for the given one, keeping its identity.
func (r *PaymentStore) Replace(_ context.Context, publicID string, payment models.Payment) (models.Payment, error) {
	p, err := r.records.Replace(publicID, payment)
	if err != nil {
		return models.Payment{}, apperrors.ErrPaymentNotFound
	}
	return p, nil
}

// Delete removes the payment permanently.
func (r *PaymentStore) Delete(_ context.Context, publicID string) error {
	if err := r.records.Remove(publicID); err != nil {
		return apperrors.ErrPaymentNotFound
	}
	return nil
}
