package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/camila-moreno/turismo-reservas/models"
)

// seedCustomerWithReservations builds the two-reservation fixture: R1 holds
// the same lodging service twice, R2 (created later) holds one activity
func seedCustomerWithReservations(t *testing.T, db *gorm.DB) (*models.User, models.Reservation, models.Reservation) {
	t.Helper()

	customer, err := Register(db, RegisterInput{
		Name: "Ana", Surname: "Torres", Email: "ana@example.com", Password: "pw123456",
	})
	require.NoError(t, err)

	host, err := Register(db, RegisterInput{
		Name: "Pedro", Surname: "Lagos", Email: "pedro@example.com", Password: "pw123456",
	})
	require.NoError(t, err)

	lodging := models.ServiceType{Name: "Lodging"}
	activity := models.ServiceType{Name: "Activity"}
	require.NoError(t, db.Create(&lodging).Error)
	require.NoError(t, db.Create(&activity).Error)

	hotel := models.Service{Name: "Hotel A", Description: "d", Price: 100, TypeID: lodging.ID, HostID: host.ID}
	tour := models.Service{Name: "Tour", Description: "d", Price: 40, TypeID: activity.ID, HostID: host.ID}
	require.NoError(t, db.Create(&hotel).Error)
	require.NoError(t, db.Create(&tour).Error)

	confirmed := models.ReservationStatus{Label: "confirmed"}
	require.NoError(t, db.Create(&confirmed).Error)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	r1 := models.Reservation{
		UserID:    customer.ID,
		CreatedAt: base,
		StartDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC),
		StatusID:  &confirmed.ID,
		Total:     200,
		LineItems: []models.ReservationLineItem{
			{ServiceID: hotel.ID, Quantity: 1, UnitPrice: 100},
			{ServiceID: hotel.ID, Quantity: 1, UnitPrice: 100},
		},
	}
	require.NoError(t, db.Create(&r1).Error)

	r2 := models.Reservation{
		UserID:    customer.ID,
		CreatedAt: base.Add(48 * time.Hour),
		StartDate: time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC),
		Total:     40,
		LineItems: []models.ReservationLineItem{
			{ServiceID: tour.ID, Quantity: 1, UnitPrice: 40},
		},
	}
	require.NoError(t, db.Create(&r2).Error)

	return customer, r1, r2
}

func TestProfileReservations(t *testing.T) {
	db := setupTestDB(t)
	customer, r1, r2 := seedCustomerWithReservations(t, db)

	rows, err := ProfileReservations(db, customer)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Newest first: R2 was created after R1
	assert.Equal(t, r2.ID, rows[0].ID)
	assert.Equal(t, r1.ID, rows[1].ID)

	// R1's duplicated service collapses to a single name/type pair
	assert.Equal(t, "Hotel A", rows[1].ServiceNames)
	assert.Equal(t, "Lodging", rows[1].ServiceTypes)
	assert.Equal(t, "confirmed", rows[1].StatusLabel)
	assert.InDelta(t, 200, rows[1].Total, 0.001)

	// R2 has no status row, so the label falls back
	assert.Equal(t, "Tour", rows[0].ServiceNames)
	assert.Equal(t, "Activity", rows[0].ServiceTypes)
	assert.Equal(t, "unknown", rows[0].StatusLabel)
}

func TestProfileReservationsSortsJoinedNames(t *testing.T) {
	db := setupTestDB(t)
	customer, _, r2 := seedCustomerWithReservations(t, db)

	// Add a lodging line item to R2 so it spans two types and two services
	var hotel models.Service
	require.NoError(t, db.Where("name = ?", "Hotel A").First(&hotel).Error)
	require.NoError(t, db.Create(&models.ReservationLineItem{
		ReservationID: r2.ID, ServiceID: hotel.ID, Quantity: 2, UnitPrice: 100,
	}).Error)

	rows, err := ProfileReservations(db, customer)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Hotel A, Tour", rows[0].ServiceNames)
	assert.Equal(t, "Activity, Lodging", rows[0].ServiceTypes)
}

func TestProfileReservationsOnlyForCustomers(t *testing.T) {
	db := setupTestDB(t)
	customer, _, _ := seedCustomerWithReservations(t, db)

	// Reassign the same user to the host role; the data is still there but
	// the listing must come back empty
	hostType, _, err := EnsureUserType(db, string(models.RoleHost))
	require.NoError(t, err)
	require.NoError(t, db.Model(customer).Update("type_id", hostType.ID).Error)
	customer.TypeID = &hostType.ID
	customer.Type = hostType

	rows, err := ProfileReservations(db, customer)
	require.NoError(t, err)
	assert.Empty(t, rows)

	// Same for a user with no role at all
	customer.TypeID = nil
	customer.Type = nil
	rows, err = ProfileReservations(db, customer)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestProfileReservationsEmptyLineItems(t *testing.T) {
	db := setupTestDB(t)
	customer, err := Register(db, RegisterInput{
		Name: "Ana", Surname: "Torres", Email: "ana@example.com", Password: "pw123456",
	})
	require.NoError(t, err)

	reservation := models.Reservation{
		UserID:    customer.ID,
		StartDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
		Total:     0,
	}
	require.NoError(t, db.Create(&reservation).Error)

	rows, err := ProfileReservations(db, customer)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "N/A", rows[0].ServiceNames)
	assert.Equal(t, "N/A", rows[0].ServiceTypes)
}
