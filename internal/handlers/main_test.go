package handlers

import (
	"os"
	"testing"

	"xpressairtime/internal/models"
)

func TestMain(m *testing.M) {
	models.UseNumericAmounts()
	os.Exit(m.Run())
}
