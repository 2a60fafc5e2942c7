package timezone_test

import (
	"casona/shared/timezone"
	"testing"
	"time"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	if today.IsZero() {
		t.Fatal("Today() returned zero time")
	}

	hour, minute, sec := today.Clock()
	if hour != 0 || minute != 0 || sec != 0 {
		t.Errorf("expected midnight, got %02d:%02d:%02d", hour, minute, sec)
	}

	if today.Location() != time.UTC {
		t.Errorf("expected UTC, got %v", today.Location())
	}

	// A calendar date compares cleanly against wire-format dates.
	parsed, err := time.Parse("2006-01-02", today.Format("2006-01-02"))
	if err != nil {
		t.Fatalf("failed to round-trip today: %v", err)
	}

	if !parsed.Equal(today) {
		t.Errorf("expected %v to round-trip through the day format, got %v", today, parsed)
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}
