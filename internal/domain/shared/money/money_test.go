package money

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		in   Won
		want string
	}{
		{0, "0"},
		{500, "500"},
		{20000, "20,000"},
		{440000, "440,000"},
		{1190000, "1,190,000"},
		{-15000, "-15,000"},
	}
	for _, tc := range cases {
		if got := tc.in.Format(); got != tc.want {
			t.Errorf("Format(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDiscountPercentTruncates(t *testing.T) {
	if got := Won(155).DiscountPercent(10); got != 139 {
		t.Errorf("DiscountPercent = %d, want 139", got)
	}
	if got := Won(440000).DiscountPercent(10); got != 396000 {
		t.Errorf("DiscountPercent = %d, want 396000", got)
	}
}
