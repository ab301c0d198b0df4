package services

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/camila-moreno/turismo-reservas/models"
)

// ErrNegativePrice is returned when a service is created with a price below zero
var ErrNegativePrice = errors.New("price must be zero or greater")

// HostServices lists the catalog services owned by the given host, ordered by
// name. Photo URLs are resolved through the image service when one is
// configured.
func HostServices(db *gorm.DB, host *models.User) ([]models.Service, error) {
	var services []models.Service
	err := db.
		Preload("Type").
		Where("host_id = ?", host.ID).
		Order("name").
		Find(&services).Error
	if err != nil {
		return nil, err
	}

	resolveImageURLs(services)
	return services, nil
}

// HostReservations lists reservations that include at least one line item for
// a service owned by the host, de-duplicated, newest first.
func HostReservations(db *gorm.DB, host *models.User) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := db.
		Preload("Status").
		Preload("User").
		Preload("LineItems.Service.Type").
		Distinct("reservations.*").
		Joins("JOIN reservation_line_items ON reservation_line_items.reservation_id = reservations.id").
		Joins("JOIN services ON services.id = reservation_line_items.service_id").
		Where("services.host_id = ?", host.ID).
		Order("reservations.created_at DESC, reservations.id DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// ServiceInput carries the fields needed to create a catalog service
type ServiceInput struct {
	Name        string
	Description string
	Price       float64
	TypeID      uint
	ImageS3Key  *string
}

// CreateService creates a catalog service owned by the host
func CreateService(db *gorm.DB, host *models.User, in ServiceInput) (*models.Service, error) {
	if in.Price < 0 {
		return nil, ErrNegativePrice
	}

	service := models.Service{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		TypeID:      in.TypeID,
		HostID:      host.ID,
		ImageS3Key:  in.ImageS3Key,
	}
	if err := db.Create(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// ActiveCart returns the user's most recently created active cart with its
// line items preloaded, or nil when the user has no active cart. Multiple
// active carts are not constrained at the storage layer; picking the newest
// keeps the behavior deterministic.
func ActiveCart(db *gorm.DB, user *models.User) (*models.Cart, error) {
	var cart models.Cart
	err := db.
		Preload("LineItems.Service.Type").
		Where("user_id = ? AND active = ?", user.ID, true).
		Order("created_at DESC, id DESC").
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// resolveImageURLs fills the computed ImageURL field from the image service
func resolveImageURLs(services []models.Service) {
	imageService := GetImageService()
	if imageService == nil {
		return
	}
	for i := range services {
		if services[i].ImageS3Key == nil {
			continue
		}
		url, err := imageService.GetImageURL(*services[i].ImageS3Key)
		if err != nil {
			log.Printf("warning: could not resolve image URL for service %d: %v", services[i].ID, err)
			continue
		}
		if url != "" {
			services[i].ImageURL = &url
		}
	}
}
