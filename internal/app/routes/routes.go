package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/escolar/escolar-backend/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	tutorController *controllers.TutorController,
	contactController *controllers.EmergencyContactController,
	groupController *controllers.GroupController,
	enrollmentController *controllers.EnrollmentController,
	paymentController *controllers.PaymentController,
	catalogController *controllers.CatalogController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	students := v1.Group("/students")
	{
		students.GET("", studentController.SearchStudents)
		students.POST("", studentController.CreateStudent)
		students.GET("/:id", studentController.GetStudent)
		students.PATCH("/:id", studentController.PatchStudent)
		students.PUT("/:id", studentController.ReplaceStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
		students.GET("/:id/tutors", studentController.GetStudentTutors)
		students.GET("/:id/emergency-contacts", studentController.GetStudentEmergencyContacts)
	}

	tutors := v1.Group("/tutors")
	{
		tutors.GET("", tutorController.SearchTutors)
		tutors.POST("", tutorController.CreateTutor)
		tutors.GET("/:id", tutorController.GetTutor)
		tutors.PATCH("/:id", tutorController.PatchTutor)
		tutors.PUT("/:id", tutorController.ReplaceTutor)
		tutors.DELETE("/:id", tutorController.DeleteTutor)
	}

	contacts := v1.Group("/emergency-contacts")
	{
		contacts.GET("", contactController.SearchEmergencyContacts)
		contacts.POST("", contactController.CreateEmergencyContact)
		contacts.GET("/:id", contactController.GetEmergencyContact)
		contacts.PATCH("/:id", contactController.PatchEmergencyContact)
		contacts.PUT("/:id", contactController.ReplaceEmergencyContact)
		contacts.DELETE("/:id", contactController.DeleteEmergencyContact)
	}

	groups := v1.Group("/groups")
	{
		groups.GET("", groupController.SearchGroups)
		groups.POST("", groupController.CreateGroup)
		groups.GET("/available", groupController.GetAvailableGroups)
		groups.GET("/stats", groupController.GetGroupStats)
		groups.GET("/:id", groupController.GetGroup)
		groups.PATCH("/:id", groupController.PatchGroup)
		groups.PUT("/:id", groupController.ReplaceGroup)
		groups.DELETE("/:id", groupController.DeleteGroup)
		groups.PATCH("/:id/student-count", groupController.AdjustStudentCount)
	}

	enrollments := v1.Group("/enrollments")
	{
		enrollments.GET("", enrollmentController.SearchEnrollments)
		enrollments.POST("", enrollmentController.CreateEnrollment)
		enrollments.GET("/student/:id", enrollmentController.GetEnrollmentsByStudent)
		enrollments.GET("/group/:id", enrollmentController.GetEnrollmentsByGroup)
		enrollments.GET("/stats/count-by-status", enrollmentController.CountEnrollmentsByStatus)
		enrollments.GET("/stats/count-by-year", enrollmentController.CountEnrollmentsByYear)
		enrollments.GET("/:id", enrollmentController.GetEnrollment)
		enrollments.PATCH("/:id", enrollmentController.PatchEnrollment)
		enrollments.PUT("/:id", enrollmentController.ReplaceEnrollment)
		enrollments.DELETE("/:id", enrollmentController.DeleteEnrollment)
		enrollments.PATCH("/:id/confirm", enrollmentController.ConfirmEnrollment)
		enrollments.PATCH("/:id/complete", enrollmentController.CompleteEnrollment)
		enrollments.PATCH("/:id/cancel", enrollmentController.CancelEnrollment)
	}

	payments := v1.Group("/payments")
	{
		payments.GET("", paymentController.SearchPayments)
		payments.POST("", paymentController.CreatePayment)
		payments.GET("/student/:id", paymentController.GetPaymentsByStudent)
		payments.GET("/:id", paymentController.GetPayment)
		payments.PATCH("/:id", paymentController.PatchPayment)
		payments.PUT("/:id", paymentController.ReplacePayment)
		payments.DELETE("/:id", paymentController.DeletePayment)
	}

	v1.GET("/grades", catalogController.GetGrades)
	v1.GET("/dashboard/stats", catalogController.GetDashboardStats)
}
