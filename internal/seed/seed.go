// Package seed loads a small demonstration dataset into the in-memory data
// source. It is only invoked for the memory variant; the remote variant owns
// its own data.
package seed

import (
	"context"
	"time"

	"github.com/escolar/escolar-backend/internal/app/models"
	"github.com/escolar/escolar-backend/internal/app/repositories"
	"github.com/escolar/escolar-backend/internal/pkg/logger"
)

// CreateDefaultData inserts the demonstration records. Public ids are fixed so
// the dataset is stable across restarts.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories) error {
	if err := seedTutors(ctx, repos); err != nil {
		return err
	}
	if err := seedEmergencyContacts(ctx, repos); err != nil {
		return err
	}
	if err := seedStudents(ctx, repos); err != nil {
		return err
	}
	if err := seedGroups(ctx, repos); err != nil {
		return err
	}
	if err := seedEnrollments(ctx, repos); err != nil {
		return err
	}
	if err := seedPayments(ctx, repos); err != nil {
		return err
	}

	logger.Info().Msg("Demonstration data loaded")
	return nil
}

func seedTutors(ctx context.Context, repos *repositories.Repositories) error {
	tutors := []models.Tutor{
		{
			PublicID:       "tut-001",
			FirstName:      "María",
			LastName:       "García",
			Email:          "maria.garcia@email.com",
			Phone:          "987-654-3210",
			Address:        "Calle 123, Ciudad",
			Relationship:   "Madre",
			DocumentNumber: "12345678",
			IsActive:       true,
			CreatedAt:      time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			PublicID:       "tut-002",
			FirstName:      "Carmen",
			LastName:       "López",
			Email:          "carmen.lopez@email.com",
			Phone:          "987-654-3211",
			Address:        "Avenida 456, Ciudad",
			Relationship:   "Madre",
			DocumentNumber: "87654321",
			IsActive:       true,
			CreatedAt:      time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
		},
		{
			PublicID:       "tut-003",
			FirstName:      "Pedro",
			LastName:       "García",
			Email:          "pedro.garcia@email.com",
			Phone:          "555-0123",
			Address:        "Calle 123, Ciudad",
			Relationship:   "Padre",
			DocumentNumber: "11223344",
			IsActive:       true,
			CreatedAt:      time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC),
		},
	}
	for _, t := range tutors {
		if _, err := repos.Tutors.Create(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func seedEmergencyContacts(ctx context.Context, repos *repositories.Repositories) error {
	contacts := []models.EmergencyContact{
		{
			PublicID:       "ec-001",
			FirstName:      "Dr. Juan",
			LastName:       "Pérez",
			Email:          "dr.perez@hospital.com",
			Phone:          "987-654-3210",
			Address:        "Hospital Central, Calle Principal 123",
			Relationship:   "Médico",
			DocumentNumber: "12345678",
			IsActive:       true,
			CreatedAt:      time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			PublicID:       "ec-002",
			FirstName:      "Ana",
			LastName:       "Martínez",
			Email:          "ana.martinez@email.com",
			Phone:          "987-654-3211",
			Address:        "Calle Secundaria 456",
			Relationship:   "Familiar",
			DocumentNumber: "87654321",
			IsActive:       true,
			CreatedAt:      time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
		},
		{
			PublicID:       "ec-003",
			FirstName:      "Carlos",
			LastName:       "López",
			Email:          "carlos.lopez@email.com",
			Phone:          "555-0123",
			Address:        "Avenida Principal 789",
			Relationship:   "Amigo de la familia",
			DocumentNumber: "11223344",
			IsActive:       true,
			CreatedAt:      time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC),
		},
		{
			PublicID:       "ec-004",
			FirstName:      "Dra. María",
			LastName:       "González",
			Email:          "dra.gonzalez@clinica.com",
			Phone:          "555-0456",
			Address:        "Clínica San José, Av. Libertad 321",
			Relationship:   "Médico",
			DocumentNumber: "55667788",
			IsActive:       true,
			CreatedAt:      time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC),
		},
	}
	for _, c := range contacts {
		if _, err := repos.EmergencyContacts.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func seedStudents(ctx context.Context, repos *repositories.Repositories) error {
	students := []models.Student{
		{
			PublicID:       "std-001",
			FirstName:      "Ana",
			LastName:       "García",
			Email:          "ana.garcia@email.com",
			Phone:          "123-456-7890",
			DateOfBirth:    "2015-03-15",
			Grade:          "Primero",
			Section:        "A",
			ParentName:     "María García",
			ParentPhone:    "987-654-3210",
			ParentEmail:    "maria.garcia@email.com",
			Address:        "Calle 123, Ciudad",
			EnrollmentDate: "2024-02-01",
			IsActive:       true,
			Tutors: []models.Reference{
				{PublicID: "tut-001", Relationship: "Madre"},
				{PublicID: "tut-003", Relationship: "Padre"},
			},
			EmergencyContacts: []models.Reference{
				{PublicID: "ec-001", Relationship: "Médico"},
			},
		},
		{
			PublicID:       "std-002",
			FirstName:      "Carlos",
			LastName:       "López",
			DateOfBirth:    "2014-07-22",
			Grade:          "Segundo",
			Section:        "B",
			ParentName:     "Carmen López",
			ParentPhone:    "987-654-3211",
			ParentEmail:    "carmen.lopez@email.com",
			Address:        "Avenida 456, Ciudad",
			EnrollmentDate: "2024-02-01",
			IsActive:       true,
			Tutors: []models.Reference{
				{PublicID: "tut-002", Relationship: "Madre"},
			},
			EmergencyContacts: []models.Reference{
				{PublicID: "ec-002", Relationship: "Familiar"},
				{PublicID: "ec-003", Relationship: "Amigo de la familia"},
			},
		},
	}
	for _, s := range students {
		if _, err := repos.Students.Create(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func seedGroups(ctx context.Context, repos *repositories.Repositories) error {
	groups := []models.Group{
		{PublicID: "grp-001", AcademicLevel: models.LevelPrimaria, Grade: "Primero", Name: "A", AcademicYear: "2024-2025", MaxStudents: 25, StudentsCount: 20, IsActive: true},
		{PublicID: "grp-002", AcademicLevel: models.LevelPrimaria, Grade: "Segundo", Name: "B", AcademicYear: "2024-2025", MaxStudents: 30, StudentsCount: 28, IsActive: true},
		{PublicID: "grp-003", AcademicLevel: models.LevelSecundaria, Grade: "Tercero", Name: "A", AcademicYear: "2024-2025", MaxStudents: 20, StudentsCount: 15, IsActive: true},
		{PublicID: "grp-004", AcademicLevel: models.LevelPrimaria, Grade: "Cuarto", Name: "C", AcademicYear: "2023-2024", MaxStudents: 22, StudentsCount: 18, IsActive: false},
		{PublicID: "grp-005", AcademicLevel: models.LevelSecundaria, Grade: "Primero", Name: "B", AcademicYear: "2024-2025", MaxStudents: 25, StudentsCount: 23, IsActive: true},
	}
	for _, g := range groups {
		if _, err := repos.Groups.Create(ctx, g); err != nil {
			return err
		}
	}
	return nil
}

func seedEnrollments(ctx context.Context, repos *repositories.Repositories) error {
	enrollments := []models.Enrollment{
		{
			PublicID:        "enr-001",
			StudentPublicID: "std-001",
			StudentFullName: "Ana García",
			GroupPublicID:   "grp-001",
			GroupFullName:   "Primero A (2024-2025)",
			EnrollmentDate:  "2024-02-01",
			AcademicYear:    "2024-2025",
			EnrollmentFee:   250.00,
			Status:          models.EnrollmentConfirmed,
			Notes:           "Inscripción completa con documentos",
			IsActive:        true,
		},
		{
			PublicID:        "enr-002",
			StudentPublicID: "std-002",
			StudentFullName: "Carlos López",
			GroupPublicID:   "grp-002",
			GroupFullName:   "Segundo B (2024-2025)",
			EnrollmentDate:  "2024-02-01",
			AcademicYear:    "2024-2025",
			EnrollmentFee:   250.00,
			Status:          models.EnrollmentPending,
			Notes:           "Falta documentación médica",
			IsActive:        true,
		},
	}
	for _, e := range enrollments {
		if _, err := repos.Enrollments.Create(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func seedPayments(ctx context.Context, repos *repositories.Repositories) error {
	payments := []models.Payment{
		{
			PublicID:        "pay-001",
			StudentPublicID: "std-001",
			Amount:          150.00,
			PaymentDate:     "2025-01-05",
			Description:     "Desayuno - Enero 2025",
			PaymentMethod:   models.MethodTransfer,
			Status:          models.PaymentPaid,
			DueDate:         "2025-01-31",
			Period:          "Enero 2025",
			PeriodType:      models.PeriodMonthly,
		},
		{
			PublicID:        "pay-002",
			StudentPublicID: "std-002",
			Amount:          30.00,
			Description:     "Desayuno - Semana 1 Agosto",
			PaymentMethod:   models.MethodCash,
			Status:          models.PaymentPending,
			DueDate:         "2025-08-07",
			Period:          "Semana 1 de Agosto 2025",
			PeriodType:      models.PeriodWeekly,
		},
		{
			PublicID:        "pay-003",
			StudentPublicID: "std-001",
			Amount:          5.00,
			PaymentDate:     "2025-08-06",
			Description:     "Desayuno - Día 6 Agosto",
			PaymentMethod:   models.MethodCash,
			Status:          models.PaymentPaid,
			DueDate:         "2025-08-06",
			Period:          "Día 6/8/2025",
			PeriodType:      models.PeriodDaily,
		},
	}
	for _, p := range payments {
		if _, err := repos.Payments.Create(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
