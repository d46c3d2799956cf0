// Package input carries host pointer, touch and resize notifications to
// listeners registered by the background.
package input

// Kind identifies a host event.
type Kind uint8

const (
	PointerMove Kind = iota
	PointerLeave
	TouchMove
	TouchEnd
	Resize
)

func (k Kind) String() string {
	switch k {
	case PointerMove:
		return "pointermove"
	case PointerLeave:
		return "pointerleave"
	case TouchMove:
		return "touchmove"
	case TouchEnd:
		return "touchend"
	case Resize:
		return "resize"
	}
	return "unknown"
}

// Point is a position in surface pixels.
type Point struct {
	X, Y float64
}

// Event is one host notification. X and Y are set for PointerMove; Touches
// holds the active touch points for TouchMove. Leave, end and resize carry
// no payload.
type Event struct {
	Kind    Kind
	X, Y    float64
	Touches []Point
}
