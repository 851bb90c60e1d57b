package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatWIB(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"morning UTC", "2024-03-05T10:15:00.000000Z", "05 Maret 2024, 17:15"},
		{"crosses midnight", "2024-12-31T20:30:00.123456Z", "01 Januari 2025, 03:30"},
		{"microseconds ignored", "2023-08-17T03:00:59.999999Z", "17 Agustus 2023, 10:00"},
		{"no fraction", "2024-06-01T00:00:00Z", "01 Juni 2024, 07:00"},
		{"malformed", "not-a-date", InvalidDate},
		{"empty", "", InvalidDate},
		{"missing zone suffix", "2024-03-05T10:15:00.000000", InvalidDate},
		{"invalid month", "2024-13-05T10:15:00.000000Z", InvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatWIB(tt.input))
		})
	}
}

func TestFormatWIB_AllMonths(t *testing.T) {
	expected := []string{
		"Januari", "Februari", "Maret", "April", "Mei", "Juni",
		"Juli", "Agustus", "September", "Oktober", "November", "Desember",
	}
	for i, month := range expected {
		input := fmt.Sprintf("2024-%02d-10T01:00:00.000000Z", i+1)
		assert.Equal(t, "10 "+month+" 2024, 08:00", FormatWIB(input))
	}
}

func TestCapitalizeFirst(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lower case", "hujan", "Hujan"},
		{"empty", "", ""},
		{"already capitalised", "Sudah", "Sudah"},
		{"only first rune", "hujan deras", "Hujan deras"},
		{"leading digit", "3 rumah", "3 rumah"},
		{"multibyte", "ébène", "Ébène"},
		{"single rune", "a", "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CapitalizeFirst(tt.input))
		})
	}
}
