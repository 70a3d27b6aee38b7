package validator

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "autoledger/internal/errors"
)

var fuelLike = Schema{
	Required: []string{"carId", "volume", "cost"},
	Numbers: []NumberRule{
		{Field: "volume", Bound: NonNegative, Message: "Volume must be a valid positive number"},
		{Field: "cost", Bound: NonNegative, Message: "Cost must be a valid positive number"},
		{Field: "tyrePressure", Bound: NonNegative, Message: "Invalid tyrePressure", Optional: true},
	},
}

var amountLike = Schema{
	Required: []string{"carId", "amount"},
	Numbers: []NumberRule{
		{Field: "amount", Bound: Positive, Message: "Amount must be a positive number"},
	},
}

func message(t *testing.T, err error) string {
	t.Helper()
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Message
}

func TestSchema_RequiredFields(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"absent", map[string]any{"amount": 5.0}},
		{"null", map[string]any{"carId": nil, "amount": 5.0}},
		{"empty string", map[string]any{"carId": "  ", "amount": 5.0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := amountLike.Validate(tt.body)
			assert.Equal(t, "Missing required fields", message(t, err))
		})
	}
}

func TestSchema_NumericBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		schema  Schema
		field   string
		value   any
		wantErr string
	}{
		{"fuel zero accepted", fuelLike, "volume", 0.0, ""},
		{"fuel numeric string accepted", fuelLike, "volume", "12.5", ""},
		{"fuel json number accepted", fuelLike, "volume", json.Number("40"), ""},
		{"fuel negative rejected", fuelLike, "volume", -1.0, "Volume must be a valid positive number"},
		{"fuel non-numeric rejected", fuelLike, "volume", "abc", "Volume must be a valid positive number"},
		{"fuel bool rejected", fuelLike, "volume", true, "Volume must be a valid positive number"},
		{"fuel infinity rejected", fuelLike, "volume", math.Inf(1), "Volume must be a valid positive number"},
		{"fuel NaN string rejected", fuelLike, "volume", "NaN", "Volume must be a valid positive number"},
		{"amount zero rejected", amountLike, "amount", 0.0, "Amount must be a positive number"},
		{"amount negative rejected", amountLike, "amount", -5.0, "Amount must be a positive number"},
		{"amount non-numeric rejected", amountLike, "amount", "ten", "Amount must be a positive number"},
		{"amount positive accepted", amountLike, "amount", 0.01, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := map[string]any{"carId": "car1", "volume": 10.0, "cost": 10.0, "amount": 10.0}
			body[tt.field] = tt.value

			err := tt.schema.Validate(body)
			if tt.wantErr == "" {
				require.NoError(t, err)
				_, isFloat := body[tt.field].(float64)
				assert.True(t, isFloat, "validated field should be coerced to float64")
				return
			}
			assert.Equal(t, tt.wantErr, message(t, err))
		})
	}
}

func TestSchema_RuleOrder(t *testing.T) {
	body := map[string]any{"carId": "car1", "volume": -1.0, "cost": -1.0}
	assert.Equal(t, "Volume must be a valid positive number", message(t, fuelLike.Validate(body)))
}

func TestSchema_OptionalNumbers(t *testing.T) {
	body := map[string]any{"carId": "car1", "volume": 1.0, "cost": 1.0}
	require.NoError(t, fuelLike.Validate(body))
	_, exists := body["tyrePressure"]
	assert.False(t, exists)

	body["tyrePressure"] = -3.0
	assert.Equal(t, "Invalid tyrePressure", message(t, fuelLike.Validate(body)))
}

func TestNumber(t *testing.T) {
	n, ok := Number(" 3.5 ")
	assert.True(t, ok)
	assert.Equal(t, 3.5, n)

	_, ok = Number("")
	assert.False(t, ok)
	_, ok = Number(nil)
	assert.False(t, ok)
	_, ok = Number(map[string]any{})
	assert.False(t, ok)
}
