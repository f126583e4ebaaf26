package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/repositories"
)

func TestDashboardServiceStats(t *testing.T) {
	ctx := context.Background()
	repos := repositories.NewMemoryRepositories()
	svc := NewDashboardService(repos.Students, repos.Payments)
	svc.now = func() time.Time {
		return time.Date(2025, time.January, 20, 12, 0, 0, 0, time.UTC)
	}

	for _, s := range []models.Student{
		{FirstName: "Ana", IsActive: true},
		{FirstName: "Carlos", IsActive: true},
		{FirstName: "Lucía", IsActive: false},
	} {
		_, err := repos.Students.Create(ctx, s)
		require.NoError(t, err)
	}

	for _, p := range []models.Payment{
		// collected this month
		{StudentPublicID: "std-001", Amount: 150, Status: models.PaymentPaid, PaymentDate: "2025-01-10"},
		// collected in an earlier month
		{StudentPublicID: "std-001", Amount: 80, Status: models.PaymentPaid, PaymentDate: "2024-12-05"},
		{StudentPublicID: "std-002", Amount: 30, Status: models.PaymentPending, DueDate: "2025-01-31"},
		{StudentPublicID: "std-002", Amount: 45, Status: models.PaymentOverdue, DueDate: "2024-11-30"},
	} {
		_, err := repos.Payments.Create(ctx, p)
		require.NoError(t, err)
	}

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalStudents)
	assert.Equal(t, 2, stats.ActiveStudents)
	assert.Equal(t, 4, stats.TotalPayments)
	assert.Equal(t, 2, stats.PendingPayments, "pending and overdue both count as uncollected")
	assert.Equal(t, 150.0, stats.MonthlyRevenue)
	assert.Equal(t, 75.0, stats.UnpaidAmount)
}

func TestDashboardServiceStatsEmpty(t *testing.T) {
	ctx := context.Background()
	repos := repositories.NewMemoryRepositories()
	svc := NewDashboardService(repos.Students, repos.Payments)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DashboardStats{}, stats)
}
