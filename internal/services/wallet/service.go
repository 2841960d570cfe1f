package wallet

import (
	"context"
	"errors"
	"fmt"

	"xpressairtime/internal/models"
	"xpressairtime/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// History page sizes
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

type service struct {
	repo    repositories.UserRepository
	metrics MetricsCollector
	logger  *zap.Logger
}

// NewService creates a new wallet service
func NewService(repo repositories.UserRepository, metrics MetricsCollector, logger *zap.Logger) Service {
	if repo == nil {
		panic("repo is required")
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
	}
}

func (s *service) FundWallet(ctx context.Context, req models.FundWalletRequest) (*models.AirtimeResponse, error) {
	if !req.Amount.IsPositive() {
		s.metrics.RecordCredit(ResultFailed)
		return nil, ErrInvalidAmount
	}
	if !req.Amount.Equal(req.Amount.Round(models.MoneyPlaces)) {
		s.metrics.RecordCredit(ResultFailed)
		return nil, ErrAmountPrecision
	}

	var credited *models.User
	err := s.repo.ExecuteInTransaction(ctx, func(tx repositories.UserRepository) error {
		user, err := tx.GetByWalletNumberForUpdate(ctx, req.WalletNumber)
		if err != nil {
			return err
		}

		user.WalletBalance = user.WalletBalance.Add(req.Amount)
		if err := tx.UpdateBalance(ctx, user); err != nil {
			return err
		}

		if err := tx.CreateWalletTransaction(ctx, &models.WalletTransaction{
			Reference:    uuid.NewString(),
			WalletNumber: user.WalletNumber,
			Type:         models.WalletTransactionCredit,
			Amount:       req.Amount,
			BalanceAfter: user.WalletBalance,
			Description:  "wallet funding",
		}); err != nil {
			return err
		}

		credited = user
		return nil
	})

	if errors.Is(err, repositories.ErrWalletNotFound) {
		s.logger.Info("fund wallet: wallet not found", zap.String("wallet_number", req.WalletNumber))
		s.metrics.RecordCredit(ResultWalletMissing)
		return &models.AirtimeResponse{
			ResponseCode:    models.WalletNotExistCode,
			ResponseMessage: models.WalletNotExistMessage,
		}, nil
	}
	if err != nil {
		s.logger.Error("fund wallet failed", zap.String("wallet_number", req.WalletNumber), zap.Error(err))
		s.metrics.RecordCredit(ResultFailed)
		return nil, fmt.Errorf("failed to fund wallet: %w", err)
	}

	s.logger.Info("wallet credited",
		zap.String("wallet_number", credited.WalletNumber),
		zap.String("amount", req.Amount.String()),
		zap.String("balance", credited.WalletBalance.String()))
	s.metrics.RecordCredit(ResultCredited)

	return &models.AirtimeResponse{
		ResponseCode:    models.WalletCreditedSuccess,
		ResponseMessage: models.WalletCreditedSuccessMessage,
		WalletInfo:      credited.WalletInfo(),
	}, nil
}

func (s *service) GetWallet(ctx context.Context, walletNumber string) (*models.WalletInfo, error) {
	user, err := s.repo.GetByWalletNumber(ctx, walletNumber)
	if err != nil {
		return nil, err
	}
	return user.WalletInfo(), nil
}

func (s *service) GetTransactionHistory(ctx context.Context, walletNumber string, limit, offset int) ([]models.WalletTransaction, int64, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.GetWalletTransactions(ctx, walletNumber, limit, offset)
}
