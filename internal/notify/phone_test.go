package notify

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+61412345678", "+61412345678"},
		{"0412 345 678", "+61412345678"},
		{"0412-345-678", "+61412345678"},
		{"412345678", "+61412345678"},
		{"512345678", "+61512345678"},
		{"61412345678", "+61412345678"},
		{"(02) 9876 5432", "+61298765432"},
		{"+61 2 9876 5432", "+61298765432"},
		{"12345", "12345"},
	}
	for _, tt := range tests {
		if got := NormalizePhone(tt.in); got != tt.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidAUPhone(t *testing.T) {
	valid := []string{"+61412345678", "0412 345 678", "02 9876 5432", "+61298765432"}
	for _, p := range valid {
		if !ValidAUPhone(p) {
			t.Errorf("ValidAUPhone(%q) = false, want true", p)
		}
	}
	invalid := []string{"", "12345", "+6141234", "+1415555012345", "0112345678"}
	for _, p := range invalid {
		if ValidAUPhone(p) {
			t.Errorf("ValidAUPhone(%q) = true, want false", p)
		}
	}
}
