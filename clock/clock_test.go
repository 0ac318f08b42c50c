package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

func TestManual_AdvanceFiresDueTimers(t *testing.T) {
	m := NewManual(epoch)
	var fired []string
	m.AfterFunc(2*time.Second, func() { fired = append(fired, "b") })
	m.AfterFunc(time.Second, func() { fired = append(fired, "a") })
	m.AfterFunc(5*time.Second, func() { fired = append(fired, "c") })

	m.Advance(2 * time.Second)
	if len(fired) != 2 || fired[0] != "a" || fired[1] != "b" {
		t.Fatalf("fired = %v, want [a b]", fired)
	}
	if m.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", m.Pending())
	}
	if !m.Now().Equal(epoch.Add(2 * time.Second)) {
		t.Errorf("Now = %v", m.Now())
	}
}

func TestManual_Stop(t *testing.T) {
	m := NewManual(epoch)
	called := false
	timer := m.AfterFunc(time.Second, func() { called = true })
	if !timer.Stop() {
		t.Fatal("Stop on pending timer returned false")
	}
	if timer.Stop() {
		t.Error("second Stop returned true")
	}
	m.Advance(time.Minute)
	if called {
		t.Error("stopped timer fired")
	}
}

func TestManual_NowInsideCallback(t *testing.T) {
	m := NewManual(epoch)
	var at time.Time
	m.AfterFunc(3*time.Second, func() { at = m.Now() })
	m.Advance(10 * time.Second)
	if !at.Equal(epoch.Add(3 * time.Second)) {
		t.Errorf("callback saw %v, want %v", at, epoch.Add(3*time.Second))
	}
}

func TestManual_ChainedTimers(t *testing.T) {
	m := NewManual(epoch)
	count := 0
	m.AfterFunc(time.Second, func() {
		count++
		m.AfterFunc(time.Second, func() { count++ })
	})
	m.Advance(2 * time.Second)
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}
