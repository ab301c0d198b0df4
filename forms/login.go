package forms

// LoginForm is the login form. Credential verification happens in the account
// service; this only checks the fields are present.
type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// Validate checks the form and returns field-level errors
func (f *LoginForm) Validate() Errors {
	errs := Errors{}

	f.Email = normalized(f.Email)
	if f.Email == "" {
		errs.Add("email", "Email is required.")
	}
	if f.Password == "" {
		errs.Add("password", "Password is required.")
	}

	return errs
}
