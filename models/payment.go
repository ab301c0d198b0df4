package models

import "time"

// PaymentMethod is a lookup row for payment methods (card, transfer, cash)
type PaymentMethod struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

// TableName specifies the table name for the PaymentMethod model
func (PaymentMethod) TableName() string {
	return "payment_methods"
}

// PaymentStatus is a lookup row for payment states (pending, paid, refunded)
type PaymentStatus struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Label string `gorm:"not null" json:"label"`
}

// TableName specifies the table name for the PaymentStatus model
func (PaymentStatus) TableName() string {
	return "payment_statuses"
}

// Payment records a payment for a reservation. One payment per reservation;
// the amount is trusted input and not reconciled against the reservation total.
type Payment struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	ReservationID uint           `gorm:"uniqueIndex;not null" json:"reservation_id"`
	Reservation   Reservation    `gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE" json:"-"`
	MethodID      *uint          `json:"method_id,omitempty"`
	Method        *PaymentMethod `gorm:"foreignKey:MethodID;constraint:OnDelete:SET NULL" json:"method,omitempty"`
	StatusID      *uint          `json:"status_id,omitempty"`
	Status        *PaymentStatus `gorm:"foreignKey:StatusID;constraint:OnDelete:SET NULL" json:"status,omitempty"`
	Amount        float64        `gorm:"not null" json:"amount"`
	PaidAt        time.Time      `gorm:"autoCreateTime" json:"paid_at"`
}

// TableName specifies the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
