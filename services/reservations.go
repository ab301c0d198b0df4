package services

import (
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/camila-moreno/turismo-reservas/models"
)

// ReservationRow is a display-ready summary of one reservation for the
// profile page. Service and type names are de-duplicated, sorted and
// comma-joined.
type ReservationRow struct {
	ID           uint
	ServiceTypes string
	ServiceNames string
	StartDate    time.Time
	EndDate      time.Time
	StatusLabel  string
	Total        float64
}

// ProfileReservations builds the reservation listing for the profile page.
// Only customers see reservation rows; any other role gets an empty list
// regardless of what data exists. Ordering is by creation time, newest first.
func ProfileReservations(db *gorm.DB, user *models.User) ([]ReservationRow, error) {
	switch user.Role() {
	case models.RoleCustomer:
		// fall through to the query below
	case models.RoleHost, models.RoleAdministrator, models.RoleUnknown:
		return nil, nil
	default:
		return nil, nil
	}

	var reservations []models.Reservation
	err := db.
		Preload("Status").
		Preload("LineItems.Service.Type").
		Where("user_id = ?", user.ID).
		Order("created_at DESC, id DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}

	rows := make([]ReservationRow, 0, len(reservations))
	for _, reservation := range reservations {
		nameSet := make(map[string]struct{})
		typeSet := make(map[string]struct{})
		for _, item := range reservation.LineItems {
			nameSet[item.Service.Name] = struct{}{}
			typeSet[item.Service.Type.Name] = struct{}{}
		}

		statusLabel := "unknown"
		if reservation.Status != nil {
			statusLabel = reservation.Status.Label
		}

		rows = append(rows, ReservationRow{
			ID:           reservation.ID,
			ServiceTypes: joinDistinct(typeSet),
			ServiceNames: joinDistinct(nameSet),
			StartDate:    reservation.StartDate,
			EndDate:      reservation.EndDate,
			StatusLabel:  statusLabel,
			Total:        reservation.Total,
		})
	}

	return rows, nil
}

// joinDistinct renders a set of names as a sorted, comma-separated list,
// falling back to "N/A" when the set is empty
func joinDistinct(set map[string]struct{}) string {
	if len(set) == 0 {
		return "N/A"
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
