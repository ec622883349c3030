package logger

import "testing"

func TestInitRejectsBadLevel(t *testing.T) {
	if err := Init("nope", "console"); err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestInit(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		if err := Init("debug", format); err != nil {
			t.Fatalf("Init(debug, %s): %v", format, err)
		}
	}
	Info("logger test message %d", 1)
	Sync()
}
