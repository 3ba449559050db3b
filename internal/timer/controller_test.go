package timer

import "testing"

// Tests drive tick() directly instead of waiting on the wall clock.

func TestController_StartsIdleAtZero(t *testing.T) {
	c := New(0, nil)
	if c.State() != Idle {
		t.Fatalf("expected idle, got %s", c.State())
	}
	if c.Elapsed() != 0 {
		t.Fatalf("expected 0 elapsed, got %d", c.Elapsed())
	}
}

func TestController_TicksWhileRunning(t *testing.T) {
	c := New(0, nil)
	c.Start()
	defer c.Stop()

	for i := 0; i < 3; i++ {
		c.tick()
	}
	if c.Elapsed() != 3 {
		t.Fatalf("expected 3 elapsed, got %d", c.Elapsed())
	}
	if c.State() != Running {
		t.Fatalf("expected running, got %s", c.State())
	}
}

func TestController_PauseFreezesElapsed(t *testing.T) {
	c := New(0, nil)
	c.Start()
	defer c.Stop()

	c.tick()
	c.tick()
	c.Pause()

	c.tick()
	c.tick()
	if c.Elapsed() != 2 {
		t.Fatalf("elapsed moved while paused: got %d", c.Elapsed())
	}
	if c.State() != Paused {
		t.Fatalf("expected paused, got %s", c.State())
	}
}

func TestController_ResumeContinuesFromFrozenValue(t *testing.T) {
	c := New(0, nil)
	c.Start()
	defer c.Stop()

	c.tick()
	c.Pause()
	c.Resume()
	c.tick()

	if c.Elapsed() != 2 {
		t.Fatalf("expected 2 elapsed after resume, got %d", c.Elapsed())
	}
	if c.State() != Running {
		t.Fatalf("expected running, got %s", c.State())
	}
}

func TestController_StopKeepsElapsedReadable(t *testing.T) {
	c := New(0, nil)
	c.Start()
	c.tick()
	c.Stop()

	if c.State() != Stopped {
		t.Fatalf("expected stopped, got %s", c.State())
	}
	if c.Elapsed() != 1 {
		t.Fatalf("expected 1 elapsed, got %d", c.Elapsed())
	}

	c.tick()
	if c.Elapsed() != 1 {
		t.Fatalf("elapsed moved after stop: got %d", c.Elapsed())
	}
}

func TestController_ResetZeroes(t *testing.T) {
	c := New(0, nil)
	c.Start()
	c.tick()
	c.Reset()

	if c.State() != Idle {
		t.Fatalf("expected idle, got %s", c.State())
	}
	if c.Elapsed() != 0 {
		t.Fatalf("expected 0 elapsed, got %d", c.Elapsed())
	}
}

func TestController_ExpireFiresExactlyOnce(t *testing.T) {
	fired := 0
	c := New(2, func() { fired++ })
	c.Start()

	c.tick()
	if fired != 0 {
		t.Fatalf("expired before the ceiling: %d", fired)
	}
	c.tick()
	if fired != 1 {
		t.Fatalf("expected 1 expiry, got %d", fired)
	}
	if c.State() != Stopped {
		t.Fatalf("expected stopped after expiry, got %s", c.State())
	}

	// Further ticks never re-fire.
	c.tick()
	c.tick()
	if fired != 1 {
		t.Fatalf("expiry fired again: %d", fired)
	}
	if c.Elapsed() != 2 {
		t.Fatalf("elapsed moved past the ceiling: got %d", c.Elapsed())
	}
}

func TestController_NoCeilingNeverExpires(t *testing.T) {
	fired := 0
	c := New(0, func() { fired++ })
	c.Start()
	defer c.Stop()

	for i := 0; i < 100; i++ {
		c.tick()
	}
	if fired != 0 {
		t.Fatalf("expired without a ceiling: %d", fired)
	}
	if c.Elapsed() != 100 {
		t.Fatalf("expected 100 elapsed, got %d", c.Elapsed())
	}
}

func TestController_StartIsIdempotentWhileActive(t *testing.T) {
	c := New(0, nil)
	c.Start()
	defer c.Stop()

	c.tick()
	c.Start() // No-op, must not reset the counter.
	if c.Elapsed() != 1 {
		t.Fatalf("second start reset the counter: got %d", c.Elapsed())
	}
}

func TestController_PauseOnlyFromRunning(t *testing.T) {
	c := New(0, nil)
	c.Pause()
	if c.State() != Idle {
		t.Fatalf("pause moved an idle controller to %s", c.State())
	}

	c.Start()
	c.Stop()
	c.Pause()
	if c.State() != Stopped {
		t.Fatalf("pause moved a stopped controller to %s", c.State())
	}
}
