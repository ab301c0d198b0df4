package models

import "time"

// ReservationStatus is a lookup row for reservation states (pending, confirmed, cancelled)
type ReservationStatus struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Label string `gorm:"not null" json:"label"`
}

// TableName specifies the table name for the ReservationStatus model
func (ReservationStatus) TableName() string {
	return "reservation_statuses"
}

// Reservation groups booked line items for a user
type Reservation struct {
	ID        uint                  `gorm:"primaryKey" json:"id"`
	UserID    uint                  `gorm:"not null;index" json:"user_id"`
	User      User                  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time             `gorm:"autoCreateTime" json:"created_at"`
	StartDate time.Time             `gorm:"not null" json:"start_date"`
	EndDate   time.Time             `gorm:"not null" json:"end_date"`
	StatusID  *uint                 `gorm:"index" json:"status_id,omitempty"`
	Status    *ReservationStatus    `gorm:"foreignKey:StatusID;constraint:OnDelete:SET NULL" json:"status,omitempty"`
	Total     float64               `gorm:"not null" json:"total"`
	LineItems []ReservationLineItem `gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE" json:"line_items,omitempty"`
}

// TableName specifies the table name for the Reservation model
func (Reservation) TableName() string {
	return "reservations"
}

// ComputeTotal sums quantity times unit price across the line items. The
// stored total is trusted input and is not recomputed on write; this exists
// for callers that want to reconcile the two.
func (r *Reservation) ComputeTotal() float64 {
	var total float64
	for _, item := range r.LineItems {
		total += float64(item.Quantity) * item.UnitPrice
	}
	return total
}

// ReservationLineItem is a (service, quantity, price) tuple on a reservation
type ReservationLineItem struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	ReservationID uint    `gorm:"not null;index" json:"reservation_id"`
	ServiceID     uint    `gorm:"not null;index" json:"service_id"`
	Service       Service `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE" json:"service"`
	Quantity      int     `gorm:"not null;default:1;check:quantity >= 1" json:"quantity"`
	UnitPrice     float64 `gorm:"not null" json:"unit_price"`
}

// TableName specifies the table name for the ReservationLineItem model
func (ReservationLineItem) TableName() string {
	return "reservation_line_items"
}
