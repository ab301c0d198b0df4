package forms

import "github.com/camila-moreno/turismo-reservas/services"

// ProfileForm edits the mutable profile fields. Email and password are not
// editable through this form.
type ProfileForm struct {
	Name    string `form:"name"`
	Surname string `form:"surname"`
	Phone   string `form:"phone"`
}

// Validate checks the form and returns field-level errors
func (f *ProfileForm) Validate() Errors {
	errs := Errors{}

	f.Name = normalized(f.Name)
	f.Surname = normalized(f.Surname)
	f.Phone = normalized(f.Phone)

	if f.Name == "" {
		errs.Add("name", "Name is required.")
	}
	if f.Surname == "" {
		errs.Add("surname", "Surname is required.")
	}

	return errs
}

// ToUpdate converts the validated form into a profile update
func (f *ProfileForm) ToUpdate() services.ProfileUpdate {
	upd := services.ProfileUpdate{
		Name:    f.Name,
		Surname: f.Surname,
	}
	if f.Phone != "" {
		phone := f.Phone
		upd.Phone = &phone
	}
	return upd
}
