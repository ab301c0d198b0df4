package forms

import (
	"gorm.io/gorm"

	"github.com/camila-moreno/turismo-reservas/models"
	"github.com/camila-moreno/turismo-reservas/services"
)

// RegisterForm is the registration form
type RegisterForm struct {
	Name            string `form:"name"`
	Surname         string `form:"surname"`
	Email           string `form:"email"`
	Phone           string `form:"phone"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
}

// Validate checks the form and returns field-level errors. The duplicate
// email check runs here, before any password hashing; the unique constraint
// at the storage layer remains the safety net for concurrent registrations.
func (f *RegisterForm) Validate(db *gorm.DB) Errors {
	errs := Errors{}

	f.Name = normalized(f.Name)
	f.Surname = normalized(f.Surname)
	f.Email = normalized(f.Email)
	f.Phone = normalized(f.Phone)

	if f.Name == "" {
		errs.Add("name", "Name is required.")
	}
	if f.Surname == "" {
		errs.Add("surname", "Surname is required.")
	}
	if f.Email == "" {
		errs.Add("email", "Email is required.")
	} else if !validEmail(f.Email) {
		errs.Add("email", "Enter a valid email address.")
	} else {
		var count int64
		if err := db.Model(&models.User{}).Where("email = ?", f.Email).Count(&count).Error; err == nil && count > 0 {
			errs.Add("email", "A user with this email already exists.")
		}
	}

	if f.Password == "" {
		errs.Add("password", "Password is required.")
	}
	if f.Password != f.ConfirmPassword {
		errs.Add("confirm_password", "Passwords do not match.")
	}

	return errs
}

// ToInput converts the validated form into registration input
func (f *RegisterForm) ToInput() services.RegisterInput {
	in := services.RegisterInput{
		Name:     f.Name,
		Surname:  f.Surname,
		Email:    f.Email,
		Password: f.Password,
	}
	if f.Phone != "" {
		phone := f.Phone
		in.Phone = &phone
	}
	return in
}
