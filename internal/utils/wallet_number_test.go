package utils

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateWalletNumber(t *testing.T) {
	digits := regexp.MustCompile(`^[0-9]{10}$`)
	year := strconv.Itoa(time.Now().Year())

	for i := 0; i < 50; i++ {
		n, err := GenerateWalletNumber()
		require.NoError(t, err)
		assert.Regexp(t, digits, n)
		assert.True(t, strings.HasPrefix(n, year), n)
	}
}
