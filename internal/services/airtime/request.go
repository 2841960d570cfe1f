package airtime

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"xpressairtime/internal/models"
)

// Provider request headers
const (
	HeaderAuthorization = "Authorization"
	HeaderPaymentHash   = "PaymentHash"
	HeaderChannel       = "Channel"
	HeaderContentType   = "Content-Type"

	ChannelAPI      = "API"
	ContentTypeJSON = "application/json"
)

// Credentials are the keys issued by the provider.
type Credentials struct {
	PublicKey  string
	PrivateKey string
}

// NewSignedRequest serializes req once and returns a POST to url whose body is
// exactly the bytes covered by the PaymentHash header.
func NewSignedRequest(ctx context.Context, url string, creds Credentials, req *models.AirtimeRequest) (*http.Request, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set(HeaderAuthorization, "Bearer "+creds.PublicKey)
	httpReq.Header.Set(HeaderPaymentHash, CalculateHMAC512(string(payload), creds.PrivateKey))
	httpReq.Header.Set(HeaderChannel, ChannelAPI)
	httpReq.Header.Set(HeaderContentType, ContentTypeJSON)

	return httpReq, nil
}
