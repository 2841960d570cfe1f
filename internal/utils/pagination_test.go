package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPagination(t *testing.T) {
	tests := []struct {
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{query: "", wantPage: 1, wantLimit: 20, wantOffset: 0},
		{query: "?page=3&limit=10", wantPage: 3, wantLimit: 10, wantOffset: 20},
		{query: "?page=0&limit=abc", wantPage: 1, wantLimit: 20, wantOffset: 0},
		{query: "?limit=1000", wantPage: 1, wantLimit: 100, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var got Pagination
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				got = GetPagination(c, 1, 20, 100)
				return nil
			})
			_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/"+tt.query, nil))
			require.NoError(t, err)

			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
			assert.Equal(t, tt.wantOffset, got.Offset)
		})
	}
}

func TestPagination_SetTotal(t *testing.T) {
	p := Pagination{Page: 1, Limit: 5}
	p.SetTotal(11)
	assert.Equal(t, int64(11), p.Total)
	assert.Equal(t, 3, p.LastPage)

	p.SetTotal(0)
	assert.Equal(t, 0, p.LastPage)
}
