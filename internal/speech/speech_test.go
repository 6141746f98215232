package speech

import "testing"

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"09:00", "9 o'clock AM"},
		{"14:30", "2:30 PM"},
		{"12:00", "12 o'clock PM"},
		{"00:15", "12:15 AM"},
		{"23:05", "11:05 PM"},
		{"10:00", "10 o'clock AM"},
		{"garbage", "garbage"},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.in); got != tt.want {
			t.Errorf("FormatTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-09-01", "Monday, 1 September 2025"},
		{"2025-08-26", "Tuesday, 26 August 2025"},
		{"not-a-date", "not-a-date"},
	}
	for _, tt := range tests {
		if got := FormatDate(tt.in); got != tt.want {
			t.Errorf("FormatDate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJoinList(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"9 o'clock AM"}, "9 o'clock AM"},
		{[]string{"a", "b"}, "a and b"},
		{[]string{"a", "b", "c"}, "a, b and c"},
	}
	for _, tt := range tests {
		if got := JoinList(tt.in); got != tt.want {
			t.Errorf("JoinList(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
