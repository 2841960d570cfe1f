package user

import (
	"context"
	"errors"
	"fmt"

	"xpressairtime/internal/models"
	"xpressairtime/internal/repositories"
	"xpressairtime/internal/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const maxWalletNumberAttempts = 5

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrWalletNumberExhausted = errors.New("could not allocate a unique wallet number")
)

type Service interface {
	CreateAccount(ctx context.Context, req models.UserRequest) (*models.UserResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AirtimeResponse, error)
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(user *models.User) (string, error)
}

type service struct {
	repo   repositories.UserRepository
	tokens TokenIssuer
	logger *zap.Logger

	hashCost        int
	newWalletNumber func() (string, error)
}

func NewService(repo repositories.UserRepository, tokens TokenIssuer, logger *zap.Logger) Service {
	if repo == nil {
		panic("repo is required")
	}
	if tokens == nil {
		panic("token issuer is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		repo:            repo,
		tokens:          tokens,
		logger:          logger,
		hashCost:        bcrypt.DefaultCost,
		newWalletNumber: utils.GenerateWalletNumber,
	}
}

func walletExists() *models.UserResponse {
	return &models.UserResponse{
		ResponseCode:    models.WalletExistsCode,
		ResponseMessage: models.WalletExistsMessage,
	}
}

func (s *service) CreateAccount(ctx context.Context, req models.UserRequest) (*models.UserResponse, error) {
	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return walletExists(), nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		OtherName:     req.OtherName,
		Gender:        req.Gender,
		Address:       req.Address,
		StateOfOrigin: req.StateOfOrigin,
		Email:         req.Email,
		Password:      string(hashedPassword),
		Role:          models.RoleUser,
		PhoneNumber:   req.PhoneNumber,
		WalletBalance: decimal.Zero,
		TokenVersion:  1,
	}

	for attempt := 1; ; attempt++ {
		user.WalletNumber, err = s.newWalletNumber()
		if err != nil {
			return nil, err
		}

		err = s.repo.Create(ctx, user)
		if err == nil {
			break
		}
		if !errors.Is(err, repositories.ErrDuplicateUser) {
			return nil, err
		}

		// Lost a race on the email, or the wallet number collided.
		if exists, existsErr := s.repo.ExistsByEmail(ctx, req.Email); existsErr == nil && exists {
			return walletExists(), nil
		}
		s.logger.Warn("wallet number collision", zap.String("wallet_number", user.WalletNumber), zap.Int("attempt", attempt))
		if attempt == maxWalletNumberAttempts {
			return nil, ErrWalletNumberExhausted
		}
	}

	s.logger.Info("account created", zap.Uint("user_id", user.ID), zap.String("wallet_number", user.WalletNumber))
	return &models.UserResponse{
		ResponseCode:    models.WalletCreationSuccess,
		ResponseMessage: models.WalletCreationMessage,
		WalletInfo:      user.WalletInfo(),
	}, nil
}

func (s *service) Login(ctx context.Context, req models.LoginRequest) (*models.AirtimeResponse, error) {
	user, err := s.repo.GetCredentialsByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.logger.Info("login failed: unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.logger.Info("login failed: incorrect password", zap.Uint("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &models.AirtimeResponse{
		ResponseCode:    models.LoginSuccessCode,
		ResponseMessage: token,
	}, nil
}
