package economy

import "testing"

func TestFormatGold(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "0.00"},
		{11.5, "11.50"},
		{999.99, "999.99"},
		{1000, "1.00K"},
		{12340, "12.34K"},
		{2_500_000, "2.50M"},
		{1_230_000_000, "1.23B"},
	}

	for _, tc := range tests {
		if got := FormatGold(tc.value); got != tc.expected {
			t.Errorf("FormatGold(%v) = %q, expected %q", tc.value, got, tc.expected)
		}
	}
}

func TestFormatGoldExact(t *testing.T) {
	if got := FormatGoldExact(1234567.89); got != "1,234,567.89" {
		t.Errorf("FormatGoldExact(1234567.89) = %q", got)
	}
	if got := FormatGoldExact(10); got != "10" {
		t.Errorf("FormatGoldExact(10) = %q", got)
	}
}
