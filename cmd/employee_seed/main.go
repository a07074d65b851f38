// Package main seeds an employee account from environment variables.
// Registrations through the API always get the CUSTOMER role; this is the
// only way an EMPLOYEE comes into existence.
package main

import (
	"log"
	"os"

	"custodia/internal/config"
	"custodia/internal/models"
	"custodia/internal/repositories"
	"custodia/internal/utils"
)

func main() {
	config.LoadEnv()

	nationalID := os.Getenv("EMPLOYEE_TCKN")
	password := os.Getenv("EMPLOYEE_PASSWORD")
	name := config.GetEnv("EMPLOYEE_NAME", "Back")
	surname := config.GetEnv("EMPLOYEE_SURNAME", "Office")

	if nationalID == "" || password == "" {
		log.Fatal("EMPLOYEE_TCKN and EMPLOYEE_PASSWORD must be set in environment")
	}

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	customers := repositories.NewCustomerRepository(repositories.DB)
	if _, err := customers.GetByNationalID(nationalID); err == nil {
		log.Println("employee account already exists")
		return
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	employee := &models.Customer{
		Name:       name,
		Surname:    surname,
		NationalID: nationalID,
		Password:   hashed,
		Role:       models.RoleEmployee,
	}
	if err := customers.Create(employee); err != nil {
		log.Fatalf("failed to create employee account: %v", err)
	}

	log.Println("employee account created")
}
