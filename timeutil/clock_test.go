package timeutil_test

import (
	"testing"
	"time"

	"github.com/fossbarrow/global-ssn-validator/timeutil"
)

func TestUTCClock_NowIsUTC(t *testing.T) {
	var c timeutil.UTCClock
	now := c.Now()
	if now.Location() != time.UTC {
		t.Fatalf("expected UTC location, got %v", now.Location())
	}
}

func TestFrozenClock_SetAndAdvance(t *testing.T) {
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	c := timeutil.NewFrozenClock(start)

	if got := c.Now(); !got.Equal(start) {
		t.Fatalf("Now() = %v, want %v", got, start)
	}

	c.Advance(48 * time.Hour)
	if got := c.Now(); !got.Equal(start.Add(48 * time.Hour)) {
		t.Fatalf("Now() after Advance = %v", got)
	}

	reset := time.Date(1981, 12, 18, 0, 0, 0, 0, time.UTC)
	c.Set(reset)
	if got := c.Now(); !got.Equal(reset) {
		t.Fatalf("Now() after Set = %v, want %v", got, reset)
	}
}

func TestFrozenClock_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	c := timeutil.NewFrozenClock(time.Date(2026, 6, 1, 2, 0, 0, 0, loc))

	if got := c.Now(); got.Location() != time.UTC {
		t.Fatalf("expected UTC location, got %v", got.Location())
	}
}

func TestWithDefault_RestoresPrevious(t *testing.T) {
	frozen := timeutil.NewFrozenClock(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	restore := timeutil.WithDefault(frozen)
	if got := timeutil.Now(); !got.Equal(frozen.Now()) {
		t.Fatalf("Now() = %v, want frozen %v", got, frozen.Now())
	}

	restore()
	if got := timeutil.Now(); got.Equal(frozen.Now()) {
		t.Fatal("Now() still frozen after restore")
	}
}

func TestSetDefault_NilFallsBackToUTC(t *testing.T) {
	prev := timeutil.SetDefault(nil)
	t.Cleanup(func() { timeutil.SetDefault(prev) })

	if got := timeutil.Now(); got.Location() != time.UTC {
		t.Fatalf("expected UTC location, got %v", got.Location())
	}
}

func TestToday_IsMidnightUTC(t *testing.T) {
	restore := timeutil.WithDefault(timeutil.NewFrozenClock(time.Date(2026, 6, 1, 23, 59, 59, 0, time.UTC)))
	t.Cleanup(restore)

	want := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	if got := timeutil.Today(); !got.Equal(want) {
		t.Fatalf("Today() = %v, want %v", got, want)
	}
}
