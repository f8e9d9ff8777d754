package basics

import "testing"

func TestGrade(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "A"},
		{90, "A"},
		{89, "B"},
		{80, "B"},
		{79, "C"},
		{0, "C"},
	}
	for _, tt := range tests {
		if got := grade(tt.score); got != tt.want {
			t.Errorf("grade(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

// TestSplitSumsBack verifies the named results always add up to the input.
func TestSplitSumsBack(t *testing.T) {
	for sum := 0; sum < 50; sum++ {
		x, y := split(sum)
		if x+y != sum {
			t.Errorf("split(%d) = %d, %d; sum %d", sum, x, y, x+y)
		}
	}
}

func TestCounterIsIndependent(t *testing.T) {
	a, b := counter(), counter()
	a()
	a()
	if got := b(); got != 1 {
		t.Errorf("second counter started at %d, want 1", got)
	}
	if got := a(); got != 3 {
		t.Errorf("first counter = %d, want 3", got)
	}
}
