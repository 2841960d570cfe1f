package repositories

import (
	"context"
	"errors"
	"fmt"

	"xpressairtime/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepository struct {
	db     *gorm.DB
	cache  UserCache
	logger *zap.Logger

	// touched collects users whose cache entries must be dropped once the
	// enclosing transaction commits. Nil outside a transaction.
	touched *[]*models.User
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB, cache UserCache, logger *zap.Logger) UserRepository {
	if cache == nil {
		cache = NoopUserCache{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &userRepository{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if user, err := r.cache.GetUserByEmail(ctx, email); err == nil {
		return user, nil
	}

	user, err := r.GetCredentialsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := r.cache.CacheUser(ctx, user); err != nil {
		r.logger.Warn("failed to cache user", zap.Uint("user_id", user.ID), zap.Error(err))
	}
	return user, nil
}

func (r *userRepository) GetCredentialsByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

func (r *userRepository) GetByWalletNumber(ctx context.Context, walletNumber string) (*models.User, error) {
	return r.findByWalletNumber(r.db.WithContext(ctx), walletNumber)
}

func (r *userRepository) ExistsByWalletNumber(ctx context.Context, walletNumber string) (bool, error) {
	return r.exists(ctx, "wallet_number = ?", walletNumber)
}

func (r *userRepository) GetByWalletNumberForUpdate(ctx context.Context, walletNumber string) (*models.User, error) {
	return r.findByWalletNumber(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), walletNumber)
}

func (r *userRepository) UpdateBalance(ctx context.Context, user *models.User) error {
	result := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("wallet_balance", user.WalletBalance)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", ErrDatabaseOperation, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWalletNotFound
	}

	if r.touched != nil {
		*r.touched = append(*r.touched, user)
		return nil
	}
	r.invalidate(ctx, user)
	return nil
}

func (r *userRepository) invalidate(ctx context.Context, user *models.User) {
	if err := r.cache.InvalidateUser(ctx, user); err != nil {
		r.logger.Warn("failed to invalidate user cache", zap.Uint("user_id", user.ID), zap.Error(err))
	}
}

func (r *userRepository) CreateWalletTransaction(ctx context.Context, tx *models.WalletTransaction) error {
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		return fmt.Errorf("failed to create wallet transaction: %w", err)
	}
	return nil
}

func (r *userRepository) GetWalletTransactions(ctx context.Context, walletNumber string, limit, offset int) ([]models.WalletTransaction, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.WalletTransaction{}).
		Where("wallet_number = ?", walletNumber).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count wallet transactions: %w", err)
	}

	var txs []models.WalletTransaction
	err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&txs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get wallet transactions: %w", err)
	}
	return txs, total, nil
}

func (r *userRepository) ExecuteInTransaction(ctx context.Context, fn func(UserRepository) error) error {
	if r.touched != nil {
		return fn(r)
	}

	var touched []*models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &userRepository{db: tx, cache: r.cache, logger: r.logger, touched: &touched}
		return fn(txRepo)
	})
	if err != nil {
		return err
	}

	for _, user := range touched {
		r.invalidate(ctx, user)
	}
	return nil
}

func (r *userRepository) findByWalletNumber(db *gorm.DB, walletNumber string) (*models.User, error) {
	var user models.User
	if err := db.Where("wallet_number = ?", walletNumber).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}
	return &user, nil
}

func (r *userRepository) exists(ctx context.Context, query string, arg interface{}) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where(query, arg).Count(&count).Error; err != nil {
		return false, fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
	}
	return count > 0, nil
}
