package services

import (
	"context"
	"strings"
	"time"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/repositories"
	"github.com/escolar/escolar-backend/internal/pkg/search"
)

// DashboardService aggregates the numbers shown on the admin landing page
type DashboardService struct {
	studentRepo repositories.StudentRepository
	paymentRepo repositories.PaymentRepository

	now func() time.Time
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(studentRepo repositories.StudentRepository, paymentRepo repositories.PaymentRepository) *DashboardService {
	return &DashboardService{
		studentRepo: studentRepo,
		paymentRepo: paymentRepo,
		now:         time.Now,
	}
}

// Stats computes the dashboard aggregate from unpaginated searches, so both
// data source variants serve it. Monthly revenue sums paid charges whose
// payment date falls in the current calendar month; the unpaid amount sums
// every charge not yet collected.
func (s *DashboardService) Stats(ctx context.Context) (models.DashboardStats, error) {
	students, err := s.studentRepo.Search(ctx, models.StudentFilters{}, search.Params{Unpaginated: true})
	if err != nil {
		return models.DashboardStats{}, err
	}
	payments, err := s.paymentRepo.Search(ctx, models.PaymentFilters{}, search.Params{Unpaginated: true})
	if err != nil {
		return models.DashboardStats{}, err
	}

	stats := models.DashboardStats{
		TotalStudents: students.TotalElements,
		TotalPayments: payments.TotalElements,
	}
	for _, st := range students.Content {
		if st.IsActive {
			stats.ActiveStudents++
		}
	}

	currentMonth := s.now().Format("2006-01")
	for _, p := range payments.Content {
		switch p.Status {
		case models.PaymentPaid:
			if strings.HasPrefix(p.PaymentDate, currentMonth) {
				stats.MonthlyRevenue += p.Amount
			}
		default:
			stats.PendingPayments++
			stats.UnpaidAmount += p.Amount
		}
	}
	return stats, nil
}
