package services

import (
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/camila-moreno/turismo-reservas/models"
	"github.com/camila-moreno/turismo-reservas/utils"
)

var (
	// ErrDuplicateEmail is returned when an account with the email already exists
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	// ErrInvalidCredentials is the single generic authentication failure.
	// The same value is returned for an unknown email and a wrong password
	// so that responses never reveal which accounts exist.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrSuperuserFlags is returned when superuser creation is attempted
	// without both elevated flags set
	ErrSuperuserFlags = errors.New("superuser must have both staff and superuser flags set")
)

// RegisterInput carries the fields needed to create an account
type RegisterInput struct {
	Name     string
	Surname  string
	Email    string
	Phone    *string
	Password string
}

// EnsureUserType looks up a user type by name, creating it if missing.
// It reports whether the row was created. Losing a creation race to a
// concurrent writer is resolved by re-reading the row.
func EnsureUserType(db *gorm.DB, name string) (*models.UserType, bool, error) {
	var userType models.UserType
	err := db.Where("name = ?", name).First(&userType).Error
	if err == nil {
		return &userType, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	userType = models.UserType{Name: name}
	if err := db.Create(&userType).Error; err != nil {
		if isUniqueViolation(err) {
			var existing models.UserType
			if lookupErr := db.Where("name = ?", name).First(&existing).Error; lookupErr == nil {
				return &existing, false, nil
			}
		}
		return nil, false, err
	}
	return &userType, true, nil
}

// Register creates a new customer account. The duplicate-email check runs
// before the password is hashed; the unique constraint on users.email remains
// the safety net for concurrent registrations. If assigning the default
// customer role fails at the storage level, the failure is logged and the
// account is still created without a role.
func Register(db *gorm.DB, in RegisterInput) (*models.User, error) {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", in.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         in.Name,
		Surname:      in.Surname,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
		IsActive:     true,
	}

	customerType, created, err := EnsureUserType(db, string(models.RoleCustomer))
	if err != nil {
		log.Printf("warning: could not assign default customer role: %v", err)
	} else {
		if created {
			log.Printf("created missing user type %q during registration", models.RoleCustomer)
		}
		user.TypeID = &customerType.ID
		user.Type = customerType
	}

	if err := db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return &user, nil
}

// Authenticate looks up a user by email and verifies the password. The caller
// is responsible for establishing a session on success.
func Authenticate(db *gorm.DB, email, password string) (*models.User, error) {
	var user models.User
	if err := db.Preload("Type").Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.VerifyPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// ProfileUpdate carries the only fields mutable through the profile page.
// Email and password are not editable here.
type ProfileUpdate struct {
	Name    string
	Surname string
	Phone   *string
}

// UpdateProfile applies a profile update to the user
func UpdateProfile(db *gorm.DB, user *models.User, upd ProfileUpdate) error {
	updates := map[string]interface{}{
		"name":    upd.Name,
		"surname": upd.Surname,
		"phone":   upd.Phone,
	}
	if err := db.Model(user).Updates(updates).Error; err != nil {
		return err
	}
	return nil
}

// SuperuserInput carries the fields needed to bootstrap an administrator
type SuperuserInput struct {
	Name        string
	Surname     string
	Email       string
	Password    string
	IsStaff     bool
	IsSuperuser bool
}

// CreateSuperuser creates an administrator account. Both elevated flags must
// be explicitly true. The administrator role is created on demand if missing;
// a storage failure there is logged and the account is created without a role.
func CreateSuperuser(db *gorm.DB, in SuperuserInput) (*models.User, error) {
	if !in.IsStaff || !in.IsSuperuser {
		return nil, ErrSuperuserFlags
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", in.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         in.Name,
		Surname:      in.Surname,
		Email:        in.Email,
		PasswordHash: hash,
		IsActive:     true,
		IsStaff:      true,
		IsSuperuser:  true,
	}

	adminType, created, err := EnsureUserType(db, string(models.RoleAdministrator))
	if err != nil {
		log.Printf("warning: could not assign administrator role: %v", err)
	} else {
		if created {
			log.Printf("created missing user type %q during superuser bootstrap", models.RoleAdministrator)
		}
		user.TypeID = &adminType.ID
		user.Type = adminType
	}

	if err := db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return &user, nil
}

// isUniqueViolation reports whether a database error is a unique constraint
// violation (works with both PostgreSQL and SQLite)
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique")
}
