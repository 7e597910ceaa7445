package timefmt

import "testing"

func TestParseDurationValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
	}{
		{"0:00", 0},
		{"0:01", 1},
		{"25:00", 1500},
		{"35:24", 2124},
		{"  5:30  ", 330},
		{"120:59", 7259},
	}
	for _, tc := range cases {
		got, ok := ParseDuration(tc.in)
		if !ok {
			t.Fatalf("ParseDuration(%q) unexpectedly invalid", tc.in)
		}
		if got != tc.want {
			t.Fatalf("ParseDuration(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseDurationInvalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"5", "5:60", "-1:00", "a:bb", "1:2:3", "", ":", "5:", ":30"} {
		if _, ok := ParseDuration(in); ok {
			t.Fatalf("ParseDuration(%q) unexpectedly valid", in)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want string
	}{
		{0, "0:00"},
		{-30, "0:00"},
		{59, "0:59"},
		{60, "1:00"},
		{90.9, "1:30"},
		{1500, "25:00"},
		{7259, "120:59"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.in); got != tc.want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"0:00", "1:05", "25:00", "35:24", "120:59"} {
		sec, ok := ParseDuration(in)
		if !ok {
			t.Fatalf("ParseDuration(%q) invalid", in)
		}
		if got := FormatDuration(sec); got != in {
			t.Fatalf("round trip of %q produced %q", in, got)
		}
	}
}

func TestFormatPaceMatchesDuration(t *testing.T) {
	t.Parallel()

	if got, want := FormatPace(360), "6:00"; got != want {
		t.Fatalf("FormatPace(360) = %q, want %q", got, want)
	}
}
