package netpull

import (
	"net/url"
	"strconv"
)

// Timeout bounds enforced by the input surface, in seconds.
const (
	MinTimeoutSec     = 10
	MaxTimeoutSec     = 60
	DefaultTimeoutSec = 30
)

// InitialState seeds default UI state from an incoming deep-link query
// string. Invalid or out-of-enum values fall back silently to the
// documented defaults.
type InitialState struct {
	URL        string
	Engine     Engine
	Headless   bool
	TimeoutSec int

	// AutoExtract is set when the seed carried a URL: the extraction
	// should start without a separate user action.
	AutoExtract bool
}

// DefaultState returns the documented defaults: firefox, headless,
// 30 second timeout.
func DefaultState() InitialState {
	return InitialState{
		Engine:     EngineFirefox,
		Headless:   true,
		TimeoutSec: DefaultTimeoutSec,
	}
}

// StateFromQuery parses seed parameters from query values. Recognized
// keys: url, browser, headlessMode, timeout. Unrecognized or invalid
// values never fail; they fall back to defaults.
func StateFromQuery(q url.Values) InitialState {
	state := DefaultState()

	state.Engine = ParseEngine(q.Get("browser"))

	if v := q.Get("headlessMode"); v != "" {
		state.Headless = v != "false"
	}

	if v := q.Get("timeout"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil {
			state.TimeoutSec = ClampTimeout(sec)
		}
	}

	if v := q.Get("url"); v != "" {
		state.URL = v
		state.AutoExtract = true
	}

	return state
}

// ClampTimeout clamps a timeout in seconds to the supported domain.
func ClampTimeout(sec int) int {
	if sec < MinTimeoutSec {
		return MinTimeoutSec
	}
	if sec > MaxTimeoutSec {
		return MaxTimeoutSec
	}
	return sec
}
