package sale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roshinjimmy/sales-management-system/internal/sale"
)

func TestParseAgeRange(t *testing.T) {
	type testCase struct {
		name   string
		input  string
		want   sale.AgeRange
		wantOK bool
	}

	tests := []testCase{
		{
			name:   "Valid",
			input:  "18-25",
			want:   sale.AgeRange{Min: 18, Max: 25},
			wantOK: true,
		},
		{
			name:   "ValidWithSpaces",
			input:  "18 - 25",
			want:   sale.AgeRange{Min: 18, Max: 25},
			wantOK: true,
		},
		{
			name:   "NonNumericMin",
			input:  "abc-25",
			wantOK: false,
		},
		{
			name:   "NonNumericMax",
			input:  "18-xyz",
			wantOK: false,
		},
		{
			name:   "NoSeparator",
			input:  "60+",
			wantOK: false,
		},
		{
			name:   "Empty",
			input:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := sale.ParseAgeRange(tt.input)

			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTagPattern(t *testing.T) {
	// The selected tags are rejoined into a single literal, so the match is
	// an order-sensitive substring test, not set membership.
	assert.Equal(t, "%New%", sale.TagPattern([]string{"New"}))
	assert.Equal(t, "%New,Sale%", sale.TagPattern([]string{"New", "Sale"}))
	assert.NotEqual(t, sale.TagPattern([]string{"Sale", "New"}), sale.TagPattern([]string{"New", "Sale"}))
}
