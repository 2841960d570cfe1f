package wallet

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"xpressairtime/internal/models"
	"xpressairtime/internal/repositories"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepo struct {
	repositories.UserRepository
	mock.Mock
}

func (m *MockRepo) ExecuteInTransaction(ctx context.Context, fn func(repositories.UserRepository) error) error {
	return m.Called(ctx, fn).Error(0)
}

func newRepo(t *testing.T) repositories.UserRepository {
	t.Helper()
	db, err := repositories.OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	repo := repositories.NewUserRepository(db, nil, nil)
	require.NoError(t, repo.Create(context.Background(), &models.User{
		FirstName:     "John",
		OtherName:     "A",
		LastName:      "Doe",
		Email:         "john@example.com",
		Password:      "hash",
		Role:          models.RoleUser,
		PhoneNumber:   "08012345678",
		WalletNumber:  "1234567890",
		WalletBalance: decimal.Zero,
	}))
	return repo
}

func TestWalletService_FundWallet(t *testing.T) {
	repo := newRepo(t)
	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg)
	svc := NewService(repo, metrics, nil)
	ctx := context.Background()

	tests := []struct {
		name         string
		req          models.FundWalletRequest
		wantErr      error
		wantCode     string
		wantBalance  string
		wantLedgerNo int
	}{
		{
			name:         "credits existing wallet",
			req:          models.FundWalletRequest{WalletNumber: "1234567890", Amount: decimal.RequireFromString("500.50")},
			wantCode:     models.WalletCreditedSuccess,
			wantBalance:  "500.5",
			wantLedgerNo: 1,
		},
		{
			name:         "second credit accumulates",
			req:          models.FundWalletRequest{WalletNumber: "1234567890", Amount: decimal.NewFromInt(100)},
			wantCode:     models.WalletCreditedSuccess,
			wantBalance:  "600.5",
			wantLedgerNo: 2,
		},
		{
			name:         "unknown wallet",
			req:          models.FundWalletRequest{WalletNumber: "0000000000", Amount: decimal.NewFromInt(100)},
			wantCode:     models.WalletNotExistCode,
			wantBalance:  "600.5",
			wantLedgerNo: 2,
		},
		{
			name:         "zero amount",
			req:          models.FundWalletRequest{WalletNumber: "1234567890", Amount: decimal.Zero},
			wantErr:      ErrInvalidAmount,
			wantBalance:  "600.5",
			wantLedgerNo: 2,
		},
		{
			name:         "negative amount",
			req:          models.FundWalletRequest{WalletNumber: "1234567890", Amount: decimal.NewFromInt(-5)},
			wantErr:      ErrInvalidAmount,
			wantBalance:  "600.5",
			wantLedgerNo: 2,
		},
		{
			name:         "three decimal places",
			req:          models.FundWalletRequest{WalletNumber: "1234567890", Amount: decimal.RequireFromString("0.001")},
			wantErr:      ErrAmountPrecision,
			wantBalance:  "600.5",
			wantLedgerNo: 2,
		},
		{
			name:         "trailing zeros beyond two places",
			req:          models.FundWalletRequest{WalletNumber: "1234567890", Amount: decimal.RequireFromString("1.500")},
			wantCode:     models.WalletCreditedSuccess,
			wantBalance:  "602",
			wantLedgerNo: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.FundWallet(ctx, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantCode, resp.ResponseCode)
				if tt.wantCode == models.WalletCreditedSuccess {
					assert.Equal(t, models.WalletCreditedSuccessMessage, resp.ResponseMessage)
					require.NotNil(t, resp.WalletInfo)
					assert.Equal(t, "John A Doe", resp.WalletInfo.WalletName)
					assert.Equal(t, tt.wantBalance, resp.WalletInfo.WalletBalance.String())
				} else {
					assert.Equal(t, models.WalletNotExistMessage, resp.ResponseMessage)
					assert.Nil(t, resp.WalletInfo)
				}
			}

			info, err := svc.GetWallet(ctx, "1234567890")
			require.NoError(t, err)
			assert.Equal(t, tt.wantBalance, info.WalletBalance.String())

			history, total, err := svc.GetTransactionHistory(ctx, "1234567890", 0, 0)
			require.NoError(t, err)
			assert.Len(t, history, tt.wantLedgerNo)
			assert.Equal(t, int64(tt.wantLedgerNo), total)
		})
	}

	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.credits.WithLabelValues(ResultCredited)))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.credits.WithLabelValues(ResultWalletMissing)))
	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.credits.WithLabelValues(ResultFailed)))
}

func TestWalletService_LedgerRowMatchesCredit(t *testing.T) {
	repo := newRepo(t)
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	_, err := svc.FundWallet(ctx, models.FundWalletRequest{WalletNumber: "1234567890", Amount: decimal.NewFromInt(250)})
	require.NoError(t, err)

	history, _, err := svc.GetTransactionHistory(ctx, "1234567890", 10, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)

	row := history[0]
	assert.Equal(t, models.WalletTransactionCredit, row.Type)
	assert.True(t, row.Amount.Equal(decimal.NewFromInt(250)))
	assert.True(t, row.BalanceAfter.Equal(decimal.NewFromInt(250)))
	assert.NotEmpty(t, row.Reference)
}

func TestWalletService_HistoryPaging(t *testing.T) {
	repo := newRepo(t)
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		_, err := svc.FundWallet(ctx, models.FundWalletRequest{WalletNumber: "1234567890", Amount: decimal.NewFromInt(int64(i))})
		require.NoError(t, err)
	}

	page, total, err := svc.GetTransactionHistory(ctx, "1234567890", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 2)
	assert.True(t, page[0].Amount.Equal(decimal.NewFromInt(3)), "newest first")

	page, _, err = svc.GetTransactionHistory(ctx, "1234567890", 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.True(t, page[0].Amount.Equal(decimal.NewFromInt(1)))
}

func TestWalletService_ConcurrentCredits(t *testing.T) {
	repo := newRepo(t)
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	const workers = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.FundWallet(ctx, models.FundWalletRequest{WalletNumber: "1234567890", Amount: decimal.NewFromInt(10)})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	info, err := svc.GetWallet(ctx, "1234567890")
	require.NoError(t, err)
	assert.True(t, info.WalletBalance.Equal(decimal.NewFromInt(100)), info.WalletBalance.String())
}

func TestWalletService_FundWalletRepositoryFailure(t *testing.T) {
	repo := new(MockRepo)
	repo.On("ExecuteInTransaction", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	svc := NewService(repo, nil, nil)
	resp, err := svc.FundWallet(context.Background(), models.FundWalletRequest{WalletNumber: "1234567890", Amount: decimal.NewFromInt(1)})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Nil(t, resp)
	repo.AssertExpectations(t)
}

func TestNewService_PanicsWithoutRepo(t *testing.T) {
	assert.Panics(t, func() { NewService(nil, nil, nil) })
}
