package input

import "time"

// Key repeat timing for held keys
const (
	RepeatInitialDelay = 300 * time.Millisecond
	RepeatInterval     = 50 * time.Millisecond
)

type repeatInfo struct {
	firstPressed time.Time
	lastRepeat   time.Time
}

// Repeater decides when a held key fires again. It is the debouncing step
// between raw device polling and bindings. Not safe for concurrent use.
type Repeater struct {
	InitialDelay time.Duration
	Interval     time.Duration

	state map[string]repeatInfo
}

// NewRepeater returns a repeater with the default timing
func NewRepeater() *Repeater {
	return &Repeater{
		InitialDelay: RepeatInitialDelay,
		Interval:     RepeatInterval,
		state:        make(map[string]repeatInfo),
	}
}

// Fire reports whether code should trigger at now. A key fires on the first
// pressed poll, then again every Interval once InitialDelay has passed.
func (r *Repeater) Fire(code string, pressed bool, now time.Time) bool {
	st, held := r.state[code]
	if !pressed {
		delete(r.state, code)
		return false
	}

	if !held {
		r.state[code] = repeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}

	if now.Sub(st.firstPressed) >= r.InitialDelay && now.Sub(st.lastRepeat) >= r.Interval {
		st.lastRepeat = now
		r.state[code] = st
		return true
	}
	return false
}
