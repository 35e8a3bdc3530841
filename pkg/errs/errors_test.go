package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorStatusCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "client error", err: ErrClient, expected: http.StatusBadRequest},
		{name: "not logged in", err: ErrNotLoggedIn, expected: http.StatusUnauthorized},
		{name: "forbidden", err: ErrForbidden, expected: http.StatusForbidden},
		{name: "product not found", err: ErrProductNotFound, expected: http.StatusNotFound},
		{name: "insufficient stock", err: ErrInsufficientStock, expected: http.StatusBadRequest},
		{name: "item not in cart", err: ErrItemNotInCart, expected: http.StatusNotFound},
		{name: "unmapped errors default to 500", err: errors.New("driver exploded"), expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GetErrorStatusCode(tc.err))
		})
	}
}
