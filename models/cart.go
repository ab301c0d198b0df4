package models

import "time"

// Cart is a pre-reservation staging area for a user. The active flag is not
// constrained to a single cart per user; callers resolve the most recent one.
type Cart struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	Active    bool           `gorm:"not null;default:true" json:"active"`
	LineItems []CartLineItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"line_items,omitempty"`
}

// TableName specifies the table name for the Cart model
func (Cart) TableName() string {
	return "carts"
}

// CartLineItem is a (service, quantity) tuple staged in a cart
type CartLineItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	CartID    uint    `gorm:"not null;index" json:"cart_id"`
	ServiceID uint    `gorm:"not null;index" json:"service_id"`
	Service   Service `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE" json:"service"`
	Quantity  int     `gorm:"not null;default:1;check:quantity >= 1" json:"quantity"`
}

// TableName specifies the table name for the CartLineItem model
func (CartLineItem) TableName() string {
	return "cart_line_items"
}
