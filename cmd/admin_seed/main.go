package main

import (
	"context"
	"errors"
	"log"
	"os"

	"xpressairtime/internal/config"
	"xpressairtime/internal/models"
	"xpressairtime/internal/repositories"
	"xpressairtime/internal/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	adminPhone := os.Getenv("ADMIN_PHONE")

	if adminEmail == "" || adminPassword == "" || adminPhone == "" {
		log.Fatal("ADMIN_EMAIL, ADMIN_PASSWORD, and ADMIN_PHONE must be set in environment")
	}

	zlog, err := config.NewLogger(config.GetEnv("LOG_LEVEL", "info"), config.IsProduction())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := repositories.Open(config.LoadDBConfig(), zlog)
	if err != nil {
		zlog.Fatal("database initialization failed", zap.Error(err))
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	ctx := context.Background()
	repo := repositories.NewUserRepository(db, nil, zlog)

	exists, err := repo.ExistsByEmail(ctx, adminEmail)
	if err != nil {
		zlog.Fatal("failed to look up admin", zap.Error(err))
	}
	if exists {
		zlog.Info("admin user already exists", zap.String("email", adminEmail))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		zlog.Fatal("failed to hash password", zap.Error(err))
	}

	adminUser := &models.User{
		FirstName:     "System",
		LastName:      "Administrator",
		Email:         adminEmail,
		Password:      string(hashedPassword),
		Role:          models.RoleAdmin,
		PhoneNumber:   adminPhone,
		WalletBalance: decimal.Zero,
		TokenVersion:  1,
	}

	for attempt := 0; attempt < 5; attempt++ {
		adminUser.WalletNumber, err = utils.GenerateWalletNumber()
		if err != nil {
			zlog.Fatal("failed to generate wallet number", zap.Error(err))
		}
		err = repo.Create(ctx, adminUser)
		if !errors.Is(err, repositories.ErrDuplicateUser) {
			break
		}
	}
	if err != nil {
		zlog.Fatal("failed to create admin user", zap.Error(err))
	}

	zlog.Info("admin user created",
		zap.String("email", adminEmail),
		zap.String("wallet_number", adminUser.WalletNumber))
}
