package handlers

import (
	"errors"

	"xpressairtime/internal/models"
	"xpressairtime/internal/repositories"
	"xpressairtime/internal/services/wallet"
	"xpressairtime/internal/utils"
	"xpressairtime/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type WalletHandler struct {
	walletService wallet.Service
	logger        *zap.Logger
}

func NewWalletHandler(walletSvc wallet.Service, logger *zap.Logger) *WalletHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WalletHandler{
		walletService: walletSvc,
		logger:        logger,
	}
}

// FundWallet credits any wallet by number. Unknown wallets answer 200 with
// code "003".
func (h *WalletHandler) FundWallet(c *fiber.Ctx) error {
	var input models.FundWalletRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.FundWallet(&input)
	if !v.Valid() {
		return utils.BadRequest(c, v.FirstError())
	}

	resp, err := h.walletService.FundWallet(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, wallet.ErrInvalidAmount) || errors.Is(err, wallet.ErrAmountPrecision) {
			return utils.BadRequest(c, err.Error())
		}
		h.logger.Error("fund wallet failed", zap.String("wallet_number", input.WalletNumber), zap.Error(err))
		return utils.InternalError(c, "Failed to fund wallet")
	}
	return utils.Success(c, resp)
}

// GetWallet returns the caller's own wallet.
func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	current, err := utils.GetCurrentUser(c)
	if err != nil {
		return utils.Unauthorized(c, err.Error())
	}

	info, err := h.walletService.GetWallet(c.UserContext(), current.WalletNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return utils.Respond(c, fiber.StatusNotFound, fiber.Map{"error": models.WalletNotExistMessage})
		}
		return utils.InternalError(c, "Failed to fetch wallet")
	}
	return utils.Success(c, info)
}

// GetTransactions lists the caller's ledger rows, newest first, paged by
// ?page= and ?limit=.
func (h *WalletHandler) GetTransactions(c *fiber.Ctx) error {
	current, err := utils.GetCurrentUser(c)
	if err != nil {
		return utils.Unauthorized(c, err.Error())
	}

	p := utils.GetPagination(c, 1, wallet.DefaultHistoryLimit, wallet.MaxHistoryLimit)
	txs, total, err := h.walletService.GetTransactionHistory(c.UserContext(), current.WalletNumber, p.Limit, p.Offset)
	if err != nil {
		h.logger.Error("fetch wallet transactions failed", zap.String("wallet_number", current.WalletNumber), zap.Error(err))
		return utils.InternalError(c, "Failed to fetch transactions")
	}
	p.SetTotal(total)
	return utils.Success(c, utils.NewPaginatedResponse(txs, p))
}
