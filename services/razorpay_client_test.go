package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"checkout-service/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildReceipt(t *testing.T) {
	tests := []struct {
		name string
		seed string
		want string
	}{
		{"short seed", "42", "cr_42"},
		{"exact limit", strings.Repeat("a", 32), "cr_" + strings.Repeat("a", 32)},
		{"truncated", strings.Repeat("b", 50), "cr_" + strings.Repeat("b", 32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildReceipt(tt.seed)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), 40, "receipt must fit the gateway limit")
		})
	}
}

func TestBuildReceipt_EmptySeed(t *testing.T) {
	got := buildReceipt("")
	assert.True(t, strings.HasPrefix(got, "cr_"))
	assert.LessOrEqual(t, len(got), 40)
}

func TestCreateOrder_MissingCredentials(t *testing.T) {
	svc := NewRazorpayService("", "", 100, zap.NewNop())

	_, err := svc.CreateOrder(context.Background(), 249900, "INR", "42", "Tote Bag")

	require.Error(t, err)
	appErr, ok := err.(*apperrors.Error)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindConfiguration, appErr.Kind)
}

func TestCreateOrder_BelowMinimum(t *testing.T) {
	svc := NewRazorpayService("rzp_test_key", "secret", 100, zap.NewNop())

	_, err := svc.CreateOrder(context.Background(), 50, "INR", "42", "Tote Bag")

	require.Error(t, err)
	appErr, ok := err.(*apperrors.Error)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
}

func TestPaiseFromAPI(t *testing.T) {
	assert.Equal(t, int64(249900), paiseFromAPI(float64(249900), 0))
	assert.Equal(t, int64(100), paiseFromAPI(int64(100), 0))
	assert.Equal(t, int64(100), paiseFromAPI(100, 0))
	assert.Equal(t, int64(500), paiseFromAPI(json.Number("500"), 0))
	assert.Equal(t, int64(777), paiseFromAPI(nil, 777))
	assert.Equal(t, int64(777), paiseFromAPI("not a number", 777))
}
