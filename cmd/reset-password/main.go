package main

import (
	"context"
	"flag"
	"log"

	"go-sales-rest/internal/config"
	"go-sales-rest/internal/repository"
	"go-sales-rest/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Resets an operator password directly in the database and ends its sessions.
func main() {
	email := flag.String("email", "", "operator email (defaults to ADMIN_EMAIL)")
	password := flag.String("password", "", "new password (defaults to ADMIN_PASSWORD)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}
	cfg := config.Load()

	if *email == "" {
		*email = cfg.Auth.AdminEmail
	}
	if *password == "" {
		*password = cfg.Auth.AdminPassword
	}
	if *password == "" {
		log.Fatal("A new password is required: pass -password or set ADMIN_PASSWORD")
	}

	db := database.ConnectDB(cfg.Database)
	operators := repository.NewOperatorRepo(db)
	ctx := context.Background()

	operator, err := operators.FindByEmail(ctx, *email)
	if err != nil {
		log.Fatalf("Operator %s not found in database: %v", *email, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	if err := operators.UpdatePassword(ctx, operator.ID, string(hashedPassword)); err != nil {
		log.Fatalf("Failed to update password in DB: %v", err)
	}
	if err := operators.RotateTokenVersion(ctx, operator.ID, uuid.New().String()); err != nil {
		log.Fatalf("Failed to revoke sessions: %v", err)
	}

	log.Printf("Password for %s has been reset", *email)
}
