package models

// ServiceType categorizes catalog listings (lodging, activity, gastronomy)
type ServiceType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

// TableName specifies the table name for the ServiceType model
func (ServiceType) TableName() string {
	return "service_types"
}

// Service represents a catalog listing owned by a host
type Service struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"not null" json:"name"`
	Description string      `gorm:"type:text;not null" json:"description"`
	Price       float64     `gorm:"not null;check:price >= 0" json:"price"`
	TypeID      uint        `gorm:"not null;index" json:"type_id"`
	Type        ServiceType `gorm:"foreignKey:TypeID;constraint:OnDelete:CASCADE" json:"type"`
	HostID      uint        `gorm:"not null;index" json:"host_id"`
	Host        User        `gorm:"foreignKey:HostID;constraint:OnDelete:CASCADE" json:"host"`
	ImageS3Key  *string     `json:"image_s3_key,omitempty"`
	ImageURL    *string     `gorm:"-" json:"image_url,omitempty"` // computed field, presigned URL for photo
}

// TableName specifies the table name for the Service model
func (Service) TableName() string {
	return "services"
}
