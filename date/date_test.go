package date

import "testing"

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2025-07-30", want: "2025-07-30"},
		{in: "2025-7-1", want: "2025-07-01"},
		{in: "2025-02-30", wantErr: true},
		{in: "bad-date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got.String() != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		on   Date
		want string
	}{
		{New(2025, 1, 5), "05JAN2025"},
		{New(2024, 12, 31), "31DEC2024"},
		{New(2025, 9, 10), "10SEP2025"},
		{New(2025, 2, 30), "02MAR2025"},
	}
	for _, tt := range tests {
		if got := tt.on.Code(); got != tt.want {
			t.Errorf("%v.Code() = %q, want %q", tt.on, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct{ in, want string }{
		{"2025-07-30T10:11:12Z", "2025-07-30"},
		{"2025-07-30", "2025-07-30"},
		{"2025-7-1", "2025-7-1"},
		{"  2025-07-30 09:00 ", "2025-07-30"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in); got != tt.want {
			t.Errorf("Truncate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	a, b := New(2025, 1, 5), New(2025, 3, 1)
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare is not consistent for %v and %v", a, b)
	}
	if !a.Before(b) || !b.After(a) {
		t.Errorf("Before/After are not consistent for %v and %v", a, b)
	}
}
