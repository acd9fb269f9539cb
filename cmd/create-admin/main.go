// Command create-admin creates an admin account directly in the database.
package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/config"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/database"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/dto"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/models"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/repository"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/services"
	"github.com/ahmetcoskunkizilkaya/recruitment-portal/internal/validation"
)

func main() {
	email := flag.String("email", "", "admin email (required)")
	name := flag.String("name", "Administrator", "display name")
	password := flag.String("password", "", "password; generated when empty")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *email == "" {
		flag.Usage()
		os.Exit(2)
	}

	generated := false
	if *password == "" {
		buf := make([]byte, 12)
		if _, err := rand.Read(buf); err != nil {
			logger.Error("failed to generate password", "error", err)
			os.Exit(1)
		}
		*password = base64.RawURLEncoding.EncodeToString(buf)
		generated = true
	}

	cfg := config.Load()
	db, err := database.Open(cfg.DSN())
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req := dto.RegisterRequest{
		Name:     *name,
		Email:    strings.ToLower(strings.TrimSpace(*email)),
		Role:     models.RoleAdmin,
		Password: *password,
	}
	if err := validation.Struct(&req); err != nil {
		logger.Error("invalid admin account", "error", err)
		os.Exit(1)
	}

	users := repository.NewUserRepository(db)
	if _, err := users.FindByEmail(ctx, req.Email); err == nil {
		logger.Error("email already registered", "email", req.Email)
		os.Exit(1)
	}

	hash, err := services.NewCredentialService(cfg.JWTSecret, cfg.JWTAccessExpiry).HashPassword(req.Password)
	if err != nil {
		logger.Error("failed to hash password", "error", err)
		os.Exit(1)
	}
	admin := models.User{Name: req.Name, Email: req.Email, Role: req.Role, Password: hash}
	if err := users.Create(ctx, &admin); err != nil {
		logger.Error("failed to create admin", "email", req.Email, "error", err)
		os.Exit(1)
	}

	fmt.Printf("admin %s created\n", req.Email)
	if generated {
		fmt.Printf("password: %s\n", *password)
	}
}
