package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// UseNumericAmounts makes decimal values marshal as JSON numbers instead of
// quoted strings. The provider expects numbers in the signed body, so the
// process calls this once at startup.
func UseNumericAmounts() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ProviderRequestID is the provider's echoed request id. It decodes from a
// JSON number or a numeric string and always encodes as a number.
type ProviderRequestID int64

func (id *ProviderRequestID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(s)
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid requestId %q: %w", b, err)
	}
	*id = ProviderRequestID(n)
	return nil
}

// AirtimeRequest is the body posted to the airtime provider. Field order is
// the wire order and therefore part of the signed payload.
type AirtimeRequest struct {
	RequestID  string         `json:"requestId" validate:"required"`
	UniqueCode string         `json:"uniqueCode" validate:"required"`
	Details    AirtimeDetails `json:"details"`
}

// AirtimeDetails holds the recipient and the value to deliver.
type AirtimeDetails struct {
	PhoneNumber string          `json:"phoneNumber" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
}

// AirtimeAPIResponse is the provider's reply. Only ResponseCode "00" means
// the purchase went through.
type AirtimeAPIResponse struct {
	ResponseCode    string             `json:"responseCode"`
	ResponseMessage string             `json:"responseMessage"`
	RequestID       *ProviderRequestID `json:"requestId,omitempty"`
	ReferenceID     string             `json:"referenceId,omitempty"`
	Data            json.RawMessage    `json:"data,omitempty"`
}

// AirtimeDetail is the provider detail echoed back to callers on success.
type AirtimeDetail struct {
	RequestID   *ProviderRequestID `json:"requestId"`
	ReferenceID string             `json:"referenceId"`
	Data        json.RawMessage    `json:"data"`
}

// AirtimeResponse is the normalized result of a purchase. It doubles as the
// generic response envelope for wallet funding and login, where WalletInfo is
// used instead of AirtimeAPIResponse.
type AirtimeResponse struct {
	ResponseCode       string         `json:"responseCode"`
	ResponseMessage    string         `json:"responseMessage"`
	AirtimeAPIResponse *AirtimeDetail `json:"airtimeApiResponse"`
	WalletInfo         *WalletInfo    `json:"walletInfo,omitempty"`
}
