package main

import "testing"

func TestParsePoint(t *testing.T) {
	tests := []struct {
		in      string
		x, y    float64
		wantErr bool
	}{
		{"400,300", 400, 300, false},
		{" 1.5 , -2 ", 1.5, -2, false},
		{"400", 0, 0, true},
		{"a,b", 0, 0, true},
		{"1,2,3", 0, 0, true},
	}

	for _, tc := range tests {
		p, err := parsePoint(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("parsePoint(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && (p.X != tc.x || p.Y != tc.y) {
			t.Errorf("parsePoint(%q) = %v, expected {%v %v}", tc.in, p, tc.x, tc.y)
		}
	}
}
