package models

import "testing"

func TestYearRange_Contains(t *testing.T) {
	tests := []struct {
		name string
		r    YearRange
		year int
		want bool
	}{
		{"inside closed range", YearRange{2011, 2019}, 2013, true},
		{"lower bound", YearRange{2011, 2019}, 2011, true},
		{"upper bound", YearRange{2011, 2019}, 2019, true},
		{"after closed range", YearRange{2011, 2019}, 2020, false},
		{"before range", YearRange{2011, 2019}, 2010, false},
		{"open-ended", YearRange{2011, 0}, 2030, true},
		{"open-ended before start", YearRange{2011, 0}, 2005, false},
		{"exact match", ExactYear(2013), 2013, true},
		{"exact mismatch", ExactYear(2013), 2014, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Contains(tt.year); got != tt.want {
				t.Errorf("%v.Contains(%d) = %v, want %v", tt.r, tt.year, got, tt.want)
			}
		})
	}
}

func TestYearRange_String(t *testing.T) {
	if got := (YearRange{2011, 2019}).String(); got != "2011-2019" {
		t.Errorf("String() = %q", got)
	}
	if got := (YearRange{2011, 0}).String(); got != "2011-" {
		t.Errorf("String() = %q", got)
	}
	if got := ExactYear(2013).String(); got != "2013" {
		t.Errorf("String() = %q", got)
	}
}
