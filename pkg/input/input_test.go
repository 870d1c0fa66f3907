package input

import (
	"reflect"
	"testing"
	"time"
)

type recorded struct {
	down bool
	code KeyCode
}

type recorder struct {
	events []recorded
}

func (r *recorder) KeyDown(code KeyCode) { r.events = append(r.events, recorded{true, code}) }
func (r *recorder) KeyUp(code KeyCode)   { r.events = append(r.events, recorded{false, code}) }

func TestDispatcher_DeliversInOrderToAllListeners(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.AddListener(a)
	d.AddListener(b)

	d.KeyDown(KeyArrowUp)
	d.KeyUp(KeyArrowUp)
	d.KeyDown(KeySpace)

	expected := []recorded{{true, KeyArrowUp}, {false, KeyArrowUp}, {true, KeySpace}}
	for name, r := range map[string]*recorder{"first": a, "second": b} {
		if !reflect.DeepEqual(r.events, expected) {
			t.Errorf("%s listener got %v, expected %v", name, r.events, expected)
		}
	}
}

func TestDecoder_Feed(t *testing.T) {
	tests := []struct {
		name     string
		chunks   [][]byte
		expected []KeyCode
	}{
		{"space", [][]byte{[]byte(" ")}, []KeyCode{KeySpace}},
		{"arrows", [][]byte{[]byte("\x1b[A\x1b[B")}, []KeyCode{KeyArrowUp, KeyArrowDown}},
		{"letters_upper_cased", [][]byte{[]byte("wSq")}, []KeyCode{KeyW, KeyS, KeyQ}},
		{"split_escape", [][]byte{[]byte("\x1b"), []byte("[A")}, []KeyCode{KeyArrowUp}},
		{"split_after_bracket", [][]byte{[]byte(" \x1b["), []byte("B ")}, []KeyCode{KeySpace, KeyArrowDown, KeySpace}},
		{"ctrl_c", [][]byte{{3}}, []KeyCode{KeyInterrupt}},
		{"unknown_bytes_ignored", [][]byte{{0x7f, '\t'}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Decoder
			var got []KeyCode
			for _, chunk := range tt.chunks {
				got = append(got, d.Feed(chunk)...)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Feed() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestDecoder_Flush(t *testing.T) {
	var d Decoder
	if keys := d.Feed([]byte("\x1b")); len(keys) != 0 {
		t.Fatalf("lone ESC decoded early: %v", keys)
	}
	if keys := d.Flush(); !reflect.DeepEqual(keys, []KeyCode{KeyEscape}) {
		t.Errorf("Flush() = %v, want [Escape]", keys)
	}
	if keys := d.Flush(); keys != nil {
		t.Errorf("second Flush() = %v, want nil", keys)
	}
	if keys := d.Feed([]byte("[A")); !reflect.DeepEqual(keys, []KeyCode{KeyCode('A')}) {
		t.Errorf("Feed after Flush = %v, want [A]", keys)
	}
}

func TestHoldTracker(t *testing.T) {
	start := time.Unix(0, 0)
	window := 100 * time.Millisecond

	t.Run("repeat_presses_keep_key_held", func(t *testing.T) {
		r := &recorder{}
		h := NewHoldTracker(r, window)

		h.Press(KeyArrowUp, start)
		h.Press(KeyArrowUp, start.Add(50*time.Millisecond))
		h.Expire(start.Add(120 * time.Millisecond))

		if !h.Held(KeyArrowUp) {
			t.Fatal("key released while repeats were arriving")
		}
		if len(r.events) != 1 || !r.events[0].down {
			t.Errorf("expected a single KeyDown, got %v", r.events)
		}
	})

	t.Run("window_elapses_releases_key", func(t *testing.T) {
		r := &recorder{}
		h := NewHoldTracker(r, window)

		h.Press(KeyArrowDown, start)
		h.Expire(start.Add(window))

		expected := []recorded{{true, KeyArrowDown}, {false, KeyArrowDown}}
		if !reflect.DeepEqual(r.events, expected) {
			t.Errorf("events = %v, expected %v", r.events, expected)
		}
		if h.Held(KeyArrowDown) {
			t.Error("key still held after release")
		}
	})

	t.Run("release_all_is_ordered", func(t *testing.T) {
		r := &recorder{}
		h := NewHoldTracker(r, window)

		h.Press(KeyArrowDown, start)
		h.Press(KeyArrowUp, start)
		r.events = nil
		h.ReleaseAll()

		expected := []recorded{{false, KeyArrowUp}, {false, KeyArrowDown}}
		if !reflect.DeepEqual(r.events, expected) {
			t.Errorf("events = %v, expected %v", r.events, expected)
		}
	})
}
