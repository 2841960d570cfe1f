package airtime

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateHMAC512(t *testing.T) {
	t.Run("known vector", func(t *testing.T) {
		got := CalculateHMAC512("what do ya want for nothing?", "Jefe")
		assert.Equal(t, "164b7a7bfcf819e2e395fbe73b56e0a387bd64222e831fd610270cd7ea2505549758bf75c05a994a6d034f65f8f0e6fdcaeab1a34d4a6b4b636e070a38bce737", got)
	})

	tests := []struct {
		name string
		data string
		key  string
	}{
		{name: "plain", data: "testData", key: "testKey"},
		{name: "empty data", data: "", key: "testKey"},
		{name: "empty key", data: "testData", key: ""},
		{name: "json body", data: `{"requestId":"12362","uniqueCode":"MTN_19399"}`, key: "jN2ZpsVsF40fvqQ7sRH5RUNs7TIK2kH4_CVASPRV"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := CalculateHMAC512(tt.data, tt.key)
			second := CalculateHMAC512(tt.data, tt.key)

			assert.Equal(t, first, second)
			assert.Len(t, first, 128)
			_, err := hex.DecodeString(first)
			assert.NoError(t, err)
		})
	}

	t.Run("key changes signature", func(t *testing.T) {
		assert.NotEqual(t, CalculateHMAC512("testData", "a"), CalculateHMAC512("testData", "b"))
	})
}

func TestVerifyHMAC512(t *testing.T) {
	sig := CalculateHMAC512("payload", "secret")

	assert.True(t, VerifyHMAC512("payload", "secret", sig))
	assert.False(t, VerifyHMAC512("payload!", "secret", sig))
	assert.False(t, VerifyHMAC512("payload", "other", sig))
}
