package handlers

import (
	"errors"

	"xpressairtime/internal/models"
	"xpressairtime/internal/services/user"
	"xpressairtime/internal/utils"
	"xpressairtime/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService user.Service
	logger      *zap.Logger
}

func NewUserHandler(userSvc user.Service, logger *zap.Logger) *UserHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserHandler{
		userService: userSvc,
		logger:      logger,
	}
}

// CreateAccount registers a user and opens their wallet.
func (h *UserHandler) CreateAccount(c *fiber.Ctx) error {
	var input models.UserRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.UserRegistration(&input)
	if !v.Valid() {
		return utils.BadRequest(c, v.FirstError())
	}

	resp, err := h.userService.CreateAccount(c.UserContext(), input)
	if err != nil {
		h.logger.Error("create account failed", zap.Error(err))
		return utils.InternalError(c, "Failed to create account")
	}

	if resp.ResponseCode == models.WalletCreationSuccess {
		return utils.Created(c, resp)
	}
	return utils.Success(c, resp)
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var input models.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.Login(&input)
	if !v.Valid() {
		return utils.BadRequest(c, v.FirstError())
	}

	resp, err := h.userService.Login(c.UserContext(), input)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return utils.Unauthorized(c, "Invalid credentials")
		}
		h.logger.Error("login failed", zap.Error(err))
		return utils.InternalError(c, "Login failed")
	}
	return utils.Success(c, resp)
}
