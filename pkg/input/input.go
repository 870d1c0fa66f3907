// Package input delivers discrete key-down and key-up events to listeners.
//
// Key codes follow the browser keyCode numbering (space 32, arrows 37-40,
// letters as upper-case ASCII) so configuration files stay portable across
// front ends.
package input

// KeyCode identifies a physical key.
type KeyCode int

// Key codes understood by the built-in front ends.
const (
	KeyInterrupt  KeyCode = 3
	KeyEscape     KeyCode = 27
	KeySpace      KeyCode = 32
	KeyArrowLeft  KeyCode = 37
	KeyArrowUp    KeyCode = 38
	KeyArrowRight KeyCode = 39
	KeyArrowDown  KeyCode = 40
	KeyQ          KeyCode = 81
	KeyS          KeyCode = 83
	KeyW          KeyCode = 87
)

// KeyListener receives key transitions.
type KeyListener interface {
	KeyDown(code KeyCode)
	KeyUp(code KeyCode)
}

// Dispatcher fans key events out to every registered listener in
// registration order. It is not safe for concurrent use; front ends deliver
// events from the same goroutine that drives frames.
type Dispatcher struct {
	listeners []KeyListener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// AddListener registers l for all future events.
func (d *Dispatcher) AddListener(l KeyListener) {
	d.listeners = append(d.listeners, l)
}

// KeyDown delivers a key-down event.
func (d *Dispatcher) KeyDown(code KeyCode) {
	for _, l := range d.listeners {
		l.KeyDown(code)
	}
}

// KeyUp delivers a key-up event.
func (d *Dispatcher) KeyUp(code KeyCode) {
	for _, l := range d.listeners {
		l.KeyUp(code)
	}
}
