package impl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoerceInt64(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int64
		wantOK bool
	}{
		{name: "plain integer", input: "5", want: 5, wantOK: true},
		{name: "negative integer", input: "-12", want: -12, wantOK: true},
		{name: "decimal truncates", input: "7.9", want: 7, wantOK: true},
		{name: "empty string", input: "", want: 0, wantOK: false},
		{name: "alphanumeric sku", input: "WIDGET-XL", want: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := coerceInt64(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestCoerceFloat64(t *testing.T) {
	got, ok := coerceFloat64("9.99")
	assert.True(t, ok)
	assert.InDelta(t, 9.99, got, 0.0001)

	got, ok = coerceFloat64("free")
	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestCoerceTime(t *testing.T) {
	got, ok := coerceTime("2024-05-01T10:00:00Z")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), got)

	_, ok = coerceTime("not-a-date")
	assert.False(t, ok)
}
