package handlers

import (
	"xpressairtime/internal/models"
	"xpressairtime/internal/services/airtime"
	"xpressairtime/internal/utils"
	"xpressairtime/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AirtimeHandler struct {
	airtimeService airtime.Service
	logger         *zap.Logger
}

func NewAirtimeHandler(airtimeSvc airtime.Service, logger *zap.Logger) *AirtimeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AirtimeHandler{
		airtimeService: airtimeSvc,
		logger:         logger,
	}
}

// Purchase forwards the request to the provider. Every provider outcome,
// including transport failures, is a 200 carrying the normalized result.
func (h *AirtimeHandler) Purchase(c *fiber.Ctx) error {
	var input models.AirtimeRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	v := validation.New()
	v.AirtimePurchase(&input)
	if !v.Valid() {
		return utils.BadRequest(c, v.FirstError())
	}

	resp, err := h.airtimeService.PurchaseAirtime(c.UserContext(), &input)
	if err != nil {
		h.logger.Error("airtime request could not be built", zap.String("request_id", input.RequestID), zap.Error(err))
		return utils.InternalError(c, "Failed to process airtime purchase")
	}
	return utils.Success(c, resp)
}
