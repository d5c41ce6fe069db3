package logger

import "testing"

func TestGetReturnsSameLogger(t *testing.T) {
	first := Get()
	second := Get()

	if first.GetLevel() != second.GetLevel() {
		t.Errorf("expected level %v got %v", first.GetLevel(), second.GetLevel())
	}
}
