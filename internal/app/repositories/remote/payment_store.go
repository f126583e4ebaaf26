package remote

import (
	"context"
	"net/http"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/models/dto"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

// PaymentStore forwards payment operations to the upstream backend
type PaymentStore struct {
	client *Client
}

// NewPaymentStore creates a remote payment store on the shared client.
func NewPaymentStore(client *Client) *PaymentStore {
	return &PaymentStore{client: client}
}

// Search pushes the filters and pagination down to the upstream.
func (r *PaymentStore) Search(ctx context.Context, filters models.PaymentFilters, params search.Params) (search.Page[models.Payment], error) {
	q := pageQuery(params)
	setIfPresent(q, "search", filters.SearchText)
	setIfPresent(q, "status", string(filters.Status))
	setIfPresent(q, "paymentMethod", string(filters.PaymentMethod))
	setIfPresent(q, "studentId", filters.StudentID)
	setIfPresent(q, "dueFrom", filters.DueFrom)
	setIfPresent(q, "dueTo", filters.DueTo)
	return get[search.Page[models.Payment]](ctx, r.client, "/payments", q)
}

// GetByPublicID fetches one payment.
func (r *PaymentStore) GetByPublicID(ctx context.Context, publicID string) (models.Payment, error) {
	return get[models.Payment](ctx, r.client, "/payments/"+publicID, nil)
}

// Create posts a new payment.
func (r *PaymentStore) Create(ctx context.Context, payment models.Payment) (models.Payment, error) {
	return send[models.Payment](ctx, r.client, http.MethodPost, "/payments", payment)
}

// Patch sends the sparse payload; the upstream applies merge semantics.
func (r *PaymentStore) Patch(ctx context.Context, publicID string, patch dto.UpdatePaymentRequest) (models.Payment, error) {
	return send[models.Payment](ctx, r.client, http.MethodPatch, "/payments/"+publicID, patch)
}

// Replace sends the full record; the upstream applies replace semantics.
func (r *PaymentStore) Replace(ctx context.Context, publicID string, payment models.Payment) (models.Payment, error) {
	return send[models.Payment](ctx, r.client, http.MethodPut, "/payments/"+publicID, payment)
}

// Delete removes the payment upstream.
func (r *PaymentStore) Delete(ctx context.Context, publicID string) error {
	return r.client.remove(ctx, "/payments/"+publicID)
}
