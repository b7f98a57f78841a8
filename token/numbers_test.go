package token

import "testing"

func TestIsNumber(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"7", true},
		{"-7", true},
		{"3.5", true},
		{"-0.001", true},
		{"1e9", true},
		{"1E9", true},
		{"2.5e-3", true},
		{"1e+21", true},
		{"", false},
		{"-", false},
		{"012", false},
		{"00", false},
		{"1.", false},
		{".5", false},
		{"1e", false},
		{"1e+", false},
		{"4two", false},
		{"0x10", false},
		{"+1", false},
		{"1 ", false},
	} {
		if got := IsNumber(tc.in); got != tc.want {
			t.Errorf("IsNumber(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseNumber(t *testing.T) {
	i, _, isInt, err := ParseNumber("-42")
	if err != nil || !isInt || i != -42 {
		t.Errorf("ParseNumber(-42) = %d, %v, %v", i, isInt, err)
	}
	_, f, isInt, err := ParseNumber("2.5e-3")
	if err != nil || isInt || f != 2.5e-3 {
		t.Errorf("ParseNumber(2.5e-3) = %v, %v, %v", f, isInt, err)
	}
	// beyond int64 degrades to float
	_, f, isInt, err = ParseNumber("9223372036854775808")
	if err != nil || isInt || f != 9.223372036854776e18 {
		t.Errorf("overflow literal = %v, %v, %v", f, isInt, err)
	}
	if _, _, _, err := ParseNumber("four"); err == nil {
		t.Error("ParseNumber(four) should fail")
	}
}

func TestFormatFloat(t *testing.T) {
	for _, tc := range []struct {
		in   float64
		want string
	}{
		{3.14, "3.14"},
		{5, "5.0"},
		{-2, "-2.0"},
		{1e21, "1e+21"},
		{2.5e-3, "0.0025"},
	} {
		got := FormatFloat(tc.in)
		if got != tc.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tc.in, got, tc.want)
		}
		if !IsNumber(got) {
			t.Errorf("FormatFloat(%v) = %q does not read back as a number", tc.in, got)
		}
	}
}
