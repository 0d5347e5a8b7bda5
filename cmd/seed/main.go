package main

import (
	"context"
	"log"
	"os"

	"hr-assist-be/internal/entity"
	"hr-assist-be/internal/repository/implementation"
	"hr-assist-be/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	repo := implementation.NewEmployeeRepository(db)
	ctx := context.Background()

	seeds := []struct {
		code       string
		name       string
		email      string
		password   string
		department string
		role       string
	}{
		{"EMP-0001", "Alice Tan", "alice.tan@company.com", "password123", "Engineering", "employee"},
		{"EMP-0002", "Budi Santoso", "budi.santoso@company.com", "password123", "Finance", "manager"},
		{"HR-0001", "Citra Dewi", "citra.dewi@company.com", "password123", "Human Resources", "hr_admin"},
		{"HR-0002", "Dimas Putra", "dimas.putra@company.com", "password123", "Human Resources", "hr_manager"},
	}

	created := 0
	for _, s := range seeds {
		existing, err := repo.FindByEmail(ctx, s.email)
		if err != nil {
			log.Fatalf("Error: lookup failed for %s: %v", s.email, err)
		}
		if existing != nil {
			log.Printf("Skip: %s already exists", s.email)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Error: failed to hash password: %v", err)
		}

		emp := &entity.Employee{
			EmployeeCode: s.code,
			Name:         s.name,
			Email:        s.email,
			PasswordHash: string(hash),
			Department:   s.department,
			Role:         s.role,
		}
		if err := repo.Create(ctx, emp); err != nil {
			log.Fatalf("Error: failed to create %s: %v", s.email, err)
		}
		log.Printf("Created %s (%s)", s.email, s.role)
		created++
	}

	log.Printf("✅ Seeding done: %d employees created", created)
}
