package airtime

import (
	"context"
	"errors"
	"time"

	"xpressairtime/internal/config"
	"xpressairtime/internal/models"

	"go.uber.org/zap"
)

// Service buys airtime from the provider.
type Service interface {
	PurchaseAirtime(ctx context.Context, req *models.AirtimeRequest) (*models.AirtimeResponse, error)
}

type service struct {
	url     string
	creds   Credentials
	client  Client
	metrics MetricsCollector
	logger  *zap.Logger
}

// NewService creates a new airtime service
func NewService(cfg config.AirtimeConfig, client Client, metrics MetricsCollector, logger *zap.Logger) Service {
	if client == nil {
		panic("client is required")
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		url: cfg.APIURL,
		creds: Credentials{
			PublicKey:  cfg.PublicKey,
			PrivateKey: cfg.PrivateKey,
		},
		client:  client,
		metrics: metrics,
		logger:  logger,
	}
}

// PurchaseAirtime signs and sends req, then normalizes the provider's answer.
// Provider failures never surface as errors; the returned error is reserved
// for requests that could not be built.
func (s *service) PurchaseAirtime(ctx context.Context, req *models.AirtimeRequest) (*models.AirtimeResponse, error) {
	httpReq, err := NewSignedRequest(ctx, s.url, s.creds, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	apiResp, err := s.client.Fulfil(httpReq)
	s.metrics.RecordProviderLatency(time.Since(start))

	if err != nil {
		var transportErr *TransportError
		if !errors.As(err, &transportErr) {
			transportErr = &TransportError{Err: err}
		}
		s.logger.Error("airtime purchase transport failure",
			zap.String("request_id", req.RequestID),
			zap.Int("status_code", transportErr.StatusCode),
			zap.Error(err))
		s.metrics.RecordOutcome(OutcomeTransport)
		return &models.AirtimeResponse{
			ResponseCode:    models.TransportErrorCode,
			ResponseMessage: err.Error(),
		}, nil
	}

	if apiResp != nil && apiResp.ResponseCode == models.ProviderSuccessCode {
		s.logger.Info("airtime purchase successful",
			zap.String("request_id", req.RequestID),
			zap.String("reference_id", apiResp.ReferenceID))
		s.metrics.RecordOutcome(OutcomeSuccess)
		return &models.AirtimeResponse{
			ResponseCode:    apiResp.ResponseCode,
			ResponseMessage: apiResp.ResponseMessage,
			AirtimeAPIResponse: &models.AirtimeDetail{
				RequestID:   apiResp.RequestID,
				ReferenceID: apiResp.ReferenceID,
				Data:        apiResp.Data,
			},
		}, nil
	}

	fields := []zap.Field{zap.String("request_id", req.RequestID)}
	if apiResp != nil {
		fields = append(fields,
			zap.String("provider_code", apiResp.ResponseCode),
			zap.String("provider_message", apiResp.ResponseMessage))
	}
	s.logger.Warn("airtime purchase rejected by provider", fields...)
	s.metrics.RecordOutcome(OutcomeRejected)

	return &models.AirtimeResponse{
		ResponseCode:    models.FailedTransactionCode,
		ResponseMessage: models.FailedTransactionMessage,
	}, nil
}
