package models

// DashboardStats aggregates the headline numbers shown on the admin dashboard
type DashboardStats struct {
	TotalStudents   int     `json:"totalStudents"`
	ActiveStudents  int     `json:"activeStudents"`
	TotalPayments   int     `json:"totalPayments"`   // count of all payments
	PendingPayments int     `json:"pendingPayments"` // count of uncollected payments
	MonthlyRevenue  float64 `json:"monthlyRevenue"`  // sum of amounts paid this month
	UnpaidAmount    float64 `json:"unpaidAmount"`    // sum of uncollected amounts
}
