package alerts

import (
	"fmt"
	"testing"
)

func TestRecordKeepsNewestFirst(t *testing.T) {
	service := NewService()

	service.record(AlertKindStockLow, "first")
	service.record(AlertKindOrderCreated, "second")

	alerts := service.getAllAlerts()
	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(alerts))
	}

	if alerts[0].Message != "second" || alerts[1].Message != "first" {
		t.Errorf("expected newest first ordering, got [%s, %s]", alerts[0].Message, alerts[1].Message)
	}
	if alerts[0].Kind != AlertKindOrderCreated {
		t.Errorf("expected kind %q, got %q", AlertKindOrderCreated, alerts[0].Kind)
	}
}

func TestRecordCapsFeed(t *testing.T) {
	service := NewService()

	for i := 0; i < maxAlerts+10; i++ {
		service.record(AlertKindStockLow, fmt.Sprintf("alert %d", i))
	}

	alerts := service.getAllAlerts()
	if len(alerts) != maxAlerts {
		t.Fatalf("expected feed capped at %d, got %d", maxAlerts, len(alerts))
	}

	// the newest record must survive the cap
	want := fmt.Sprintf("alert %d", maxAlerts+9)
	if alerts[0].Message != want {
		t.Errorf("expected newest alert %q, got %q", want, alerts[0].Message)
	}
}
