package input

import (
	"sort"
	"time"
)

// Decoder turns raw terminal bytes into key codes. Escape sequences split
// across reads are buffered until complete.
type Decoder struct {
	pending []byte
}

// Feed decodes buf and returns the keys it completes, in order.
func (d *Decoder) Feed(buf []byte) []KeyCode {
	data := append(d.pending, buf...)
	d.pending = nil

	var keys []KeyCode
	for i := 0; i < len(data); i++ {
		b := data[i]
		if b != 0x1b {
			if code, ok := asciiKey(b); ok {
				keys = append(keys, code)
			}
			continue
		}

		// ESC [ X
		if i+2 >= len(data) {
			d.pending = append([]byte(nil), data[i:]...)
			break
		}
		if data[i+1] != '[' {
			keys = append(keys, KeyEscape)
			continue
		}
		switch data[i+2] {
		case 'A':
			keys = append(keys, KeyArrowUp)
		case 'B':
			keys = append(keys, KeyArrowDown)
		case 'C':
			keys = append(keys, KeyArrowRight)
		case 'D':
			keys = append(keys, KeyArrowLeft)
		}
		i += 2
	}
	return keys
}

// Flush gives up on a buffered partial sequence. A lone ESC becomes
// KeyEscape.
func (d *Decoder) Flush() []KeyCode {
	if len(d.pending) == 0 {
		return nil
	}
	d.pending = nil
	return []KeyCode{KeyEscape}
}

func asciiKey(b byte) (KeyCode, bool) {
	switch {
	case b == 3:
		return KeyInterrupt, true
	case b == ' ':
		return KeySpace, true
	case b >= 'a' && b <= 'z':
		return KeyCode(b - 'a' + 'A'), true
	case b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return KeyCode(b), true
	}
	return 0, false
}

// HoldTracker synthesizes key-up events for inputs that only report presses.
// A key counts as held while presses keep arriving within the hold window,
// which terminal auto-repeat does for a physically held key.
type HoldTracker struct {
	sink     KeyListener
	window   time.Duration
	deadline map[KeyCode]time.Time
}

// NewHoldTracker creates a tracker forwarding transitions to sink.
func NewHoldTracker(sink KeyListener, window time.Duration) *HoldTracker {
	return &HoldTracker{
		sink:     sink,
		window:   window,
		deadline: make(map[KeyCode]time.Time),
	}
}

// Press records a press at now, emitting KeyDown if the key was not held.
func (h *HoldTracker) Press(code KeyCode, now time.Time) {
	if _, held := h.deadline[code]; !held {
		h.sink.KeyDown(code)
	}
	h.deadline[code] = now.Add(h.window)
}

// Expire emits KeyUp for every key whose hold window ended at or before now.
func (h *HoldTracker) Expire(now time.Time) {
	var released []KeyCode
	for code, until := range h.deadline {
		if !now.Before(until) {
			released = append(released, code)
		}
	}
	h.release(released)
}

// ReleaseAll emits KeyUp for every held key.
func (h *HoldTracker) ReleaseAll() {
	var released []KeyCode
	for code := range h.deadline {
		released = append(released, code)
	}
	h.release(released)
}

// Held reports whether code is currently considered held.
func (h *HoldTracker) Held(code KeyCode) bool {
	_, ok := h.deadline[code]
	return ok
}

func (h *HoldTracker) release(codes []KeyCode) {
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	for _, code := range codes {
		delete(h.deadline, code)
		h.sink.KeyUp(code)
	}
}
