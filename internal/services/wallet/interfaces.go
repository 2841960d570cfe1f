package wallet

import (
	"context"

	"xpressairtime/internal/models"
)

// Service defines the main wallet service interface
type Service interface {
	// FundWallet credits the wallet named in req. An unknown wallet yields a
	// "003" response with a nil error.
	FundWallet(ctx context.Context, req models.FundWalletRequest) (*models.AirtimeResponse, error)

	GetWallet(ctx context.Context, walletNumber string) (*models.WalletInfo, error)
	GetTransactionHistory(ctx context.Context, walletNumber string, limit, offset int) ([]models.WalletTransaction, int64, error)
}

// MetricsCollector defines the interface for collecting wallet metrics
type MetricsCollector interface {
	RecordCredit(result string)
}
