package report

import "testing"

func TestCMToPixels(t *testing.T) {
	tests := []struct {
		cm       float64
		expected uint
	}{
		{2.54, 96},
		{20, 756},
		{15, 567},
		{0, 0},
		{-3, 0},
	}

	for _, tt := range tests {
		if result := CMToPixels(tt.cm); result != tt.expected {
			t.Errorf("CMToPixels(%v) = %d, expected %d", tt.cm, result, tt.expected)
		}
	}
}
