package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places stored for balances and
// ledger amounts, matching the numeric(19,2) columns.
const MoneyPlaces = 2

// Wallet transaction types
const (
	WalletTransactionCredit = "CREDIT"
)

// WalletInfo is the caller-facing summary of a wallet.
type WalletInfo struct {
	WalletName    string          `json:"walletName"`
	WalletBalance decimal.Decimal `json:"walletBalance"`
	WalletNumber  string          `json:"walletNumber"`
	PhoneNumber   string          `json:"phoneNumber"`
}

// FundWalletRequest credits Amount to the wallet identified by WalletNumber.
type FundWalletRequest struct {
	WalletNumber string          `json:"walletNumber" validate:"required"`
	Amount       decimal.Decimal `json:"amount"`
}

// WalletTransaction is the ledger row written alongside every balance change.
type WalletTransaction struct {
	ID           uint            `gorm:"primarykey"`
	Reference    string          `gorm:"uniqueIndex;not null"`
	WalletNumber string          `gorm:"index;not null"`
	Type         string          `gorm:"not null"`
	Amount       decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	BalanceAfter decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	Description  string
	CreatedAt    time.Time
}
