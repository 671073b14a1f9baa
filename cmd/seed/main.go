// Command seed upserts the admin user from ADMIN_EMAIL / ADMIN_PASSWORD.
// Roles are never changed through the API, so this one-shot tool is the
// only way an account becomes admin.
package main

import (
	"context"
	"log"

	"secureapp/internal/auth"
	"secureapp/internal/config"
	"secureapp/internal/db"
	"secureapp/internal/model"
	"secureapp/internal/repository"
	"secureapp/internal/service"
)

func main() {
	log.Println("Seeding admin user...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := &model.User{
		Email:        service.NormalizeEmail(cfg.AdminEmail),
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}

	userRepo := repository.NewUserRepository(gormDB)
	if err := userRepo.Upsert(context.Background(), admin); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	log.Printf("Admin user created/updated: %s", admin.Email)
}
