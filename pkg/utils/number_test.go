package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name     string
		part     float64
		total    float64
		expected float64
	}{
		{name: "total zero retorna zero", part: 10, total: 0, expected: 0},
		{name: "metade", part: 50, total: 100, expected: 50},
		{name: "parte maior que o total", part: 150, total: 100, expected: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Percentage(tt.part, tt.total), 1e-9)
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 100))
	assert.Equal(t, 100.0, Clamp(120, 0, 100))
	assert.Equal(t, 42.0, Clamp(42, 0, 100))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 85.33, RoundWithTwoDecimalPlace(85.33333))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}

func TestPreviousMonth(t *testing.T) {
	assert.Equal(t, "12-2023", PreviousMonth(time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "02-2024", PreviousMonth(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)))
}

func TestParseMonth(t *testing.T) {
	parsed, err := ParseMonth("03-2024")
	assert.NoError(t, err)
	assert.Equal(t, time.March, parsed.Month())

	_, err = ParseMonth("2024-03")
	assert.Error(t, err)
}
