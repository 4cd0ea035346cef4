package domain_test

import (
	"testing"

	"toorizo_quote/internal/domain"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "₹0"},
		{950, "₹950"},
		{8700, "₹8,700"},
		{10005, "₹10,005"},
		{123456, "₹1,23,456"},
		{1234567, "₹12,34,567"},
		{12345678, "₹1,23,45,678"},
		{-9660, "-₹9,660"},
	}
	for _, tc := range cases {
		if got := domain.FormatINR(tc.in); got != tc.want {
			t.Fatalf("FormatINR(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
