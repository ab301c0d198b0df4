package forms

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/camila-moreno/turismo-reservas/models"
	"github.com/camila-moreno/turismo-reservas/services"
)

// ServiceForm creates a catalog listing for a host
type ServiceForm struct {
	Name        string `form:"name"`
	Description string `form:"description"`
	Price       string `form:"price"`
	TypeID      string `form:"type_id"`

	price  float64
	typeID uint
}

// Validate checks the form and returns field-level errors
func (f *ServiceForm) Validate(db *gorm.DB) Errors {
	errs := Errors{}

	f.Name = normalized(f.Name)
	f.Description = normalized(f.Description)

	if f.Name == "" {
		errs.Add("name", "Name is required.")
	}
	if f.Description == "" {
		errs.Add("description", "Description is required.")
	}

	price, err := strconv.ParseFloat(normalized(f.Price), 64)
	switch {
	case f.Price == "" || err != nil:
		errs.Add("price", "Enter a valid price.")
	case price < 0:
		errs.Add("price", "Price must be zero or greater.")
	default:
		f.price = price
	}

	typeID, err := strconv.ParseUint(normalized(f.TypeID), 10, 64)
	if err != nil {
		errs.Add("type_id", "Choose a service type.")
	} else {
		var serviceType models.ServiceType
		if lookupErr := db.First(&serviceType, uint(typeID)).Error; lookupErr != nil {
			if errors.Is(lookupErr, gorm.ErrRecordNotFound) {
				errs.Add("type_id", "Choose a valid service type.")
			} else {
				errs.Add("type_id", "Could not verify the service type.")
			}
		} else {
			f.typeID = serviceType.ID
		}
	}

	return errs
}

// ToInput converts the validated form into service creation input
func (f *ServiceForm) ToInput(imageS3Key *string) services.ServiceInput {
	return services.ServiceInput{
		Name:        f.Name,
		Description: f.Description,
		Price:       f.price,
		TypeID:      f.typeID,
		ImageS3Key:  imageS3Key,
	}
}
