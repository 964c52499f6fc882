package clock

import "time"

// Clock abstracts the current time so history windows can be tested.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (c RealClock) Now() time.Time {
	return time.Now()
}

// MockClock returns CurrentTime until advanced.
type MockClock struct {
	CurrentTime time.Time
}

func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}

// Window returns the closed interval [now-from, now-until] for the given clock.
func Window(c Clock, from, until time.Duration) (start, end time.Time) {
	now := c.Now()
	return now.Add(-from), now.Add(-until)
}
