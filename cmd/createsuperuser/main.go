// Command createsuperuser bootstraps an administrator account. Both elevated
// flags are set explicitly; the account service rejects anything less.
package main

import (
	"flag"
	"log"

	"github.com/camila-moreno/turismo-reservas/config"
	"github.com/camila-moreno/turismo-reservas/models"
	"github.com/camila-moreno/turismo-reservas/services"
)

func main() {
	name := flag.String("name", "", "administrator first name")
	surname := flag.String("surname", "", "administrator surname")
	email := flag.String("email", "", "administrator email")
	password := flag.String("password", "", "administrator password")
	flag.Parse()

	if *name == "" || *surname == "" || *email == "" || *password == "" {
		log.Fatal("all of -name, -surname, -email and -password are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	config.SetConfig(cfg)

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	db := config.GetDB()
	if err := db.AutoMigrate(&models.UserType{}, &models.User{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	user, err := services.CreateSuperuser(db, services.SuperuserInput{
		Name:        *name,
		Surname:     *surname,
		Email:       *email,
		Password:    *password,
		IsStaff:     true,
		IsSuperuser: true,
	})
	if err != nil {
		log.Fatalf("Failed to create superuser: %v", err)
	}

	log.Printf("Superuser %s (%s) created", user.FullName(), user.Email)
}
