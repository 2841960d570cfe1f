package repositories

import (
	"context"
	"errors"

	"xpressairtime/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrDuplicateUser     = errors.New("email or wallet number already taken")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// UserRepository defines the interface for user and wallet persistence
type UserRepository interface {
	// Create inserts a new user. ErrDuplicateUser is returned on a unique
	// constraint violation.
	Create(ctx context.Context, user *models.User) error

	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetCredentialsByEmail always reads the database so the returned user
	// carries the password hash, which the cache never holds.
	GetCredentialsByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// GetByWalletNumber returns ErrWalletNotFound for unknown numbers.
	GetByWalletNumber(ctx context.Context, walletNumber string) (*models.User, error)
	ExistsByWalletNumber(ctx context.Context, walletNumber string) (bool, error)

	// GetByWalletNumberForUpdate locks the row until the surrounding
	// transaction ends. Only meaningful inside ExecuteInTransaction.
	GetByWalletNumberForUpdate(ctx context.Context, walletNumber string) (*models.User, error)

	// UpdateBalance writes only the wallet balance column.
	UpdateBalance(ctx context.Context, user *models.User) error

	CreateWalletTransaction(ctx context.Context, tx *models.WalletTransaction) error
	// GetWalletTransactions returns one page of ledger rows, newest first,
	// and the total row count for the wallet.
	GetWalletTransactions(ctx context.Context, walletNumber string, limit, offset int) ([]models.WalletTransaction, int64, error)

	ExecuteInTransaction(ctx context.Context, fn func(UserRepository) error) error
}

// UserCache is the read-through cache consulted on email lookups.
type UserCache interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CacheUser(ctx context.Context, user *models.User) error
	InvalidateUser(ctx context.Context, user *models.User) error
}

// NoopUserCache never stores anything.
type NoopUserCache struct{}

func (NoopUserCache) GetUserByEmail(context.Context, string) (*models.User, error) {
	return nil, ErrUserNotFound
}
func (NoopUserCache) CacheUser(context.Context, *models.User) error      { return nil }
func (NoopUserCache) InvalidateUser(context.Context, *models.User) error { return nil }
