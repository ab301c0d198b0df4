package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/camila-moreno/turismo-reservas/models"
)

// SeedLookupTables ensures the lookup rows the application depends on exist.
// Every ensure call is an idempotent get-or-create, so repeated startups are
// safe.
func SeedLookupTables(db *gorm.DB) error {
	for _, role := range []models.Role{models.RoleCustomer, models.RoleHost, models.RoleAdministrator} {
		if _, _, err := EnsureUserType(db, string(role)); err != nil {
			return fmt.Errorf("seeding user type %q: %w", role, err)
		}
	}

	for _, name := range []string{"lodging", "activity", "gastronomy"} {
		if err := ensureByColumn(db, &models.ServiceType{Name: name}, "name", name); err != nil {
			return fmt.Errorf("seeding service type %q: %w", name, err)
		}
	}

	for _, label := range []string{"pending", "confirmed", "cancelled"} {
		if err := ensureByColumn(db, &models.ReservationStatus{Label: label}, "label", label); err != nil {
			return fmt.Errorf("seeding reservation status %q: %w", label, err)
		}
	}

	for _, name := range []string{"card", "transfer", "cash"} {
		if err := ensureByColumn(db, &models.PaymentMethod{Name: name}, "name", name); err != nil {
			return fmt.Errorf("seeding payment method %q: %w", name, err)
		}
	}

	for _, label := range []string{"pending", "paid", "refunded"} {
		if err := ensureByColumn(db, &models.PaymentStatus{Label: label}, "label", label); err != nil {
			return fmt.Errorf("seeding payment status %q: %w", label, err)
		}
	}

	return nil
}

func ensureByColumn(db *gorm.DB, value interface{}, column, want string) error {
	return db.Where(fmt.Sprintf("%s = ?", column), want).FirstOrCreate(value).Error
}
