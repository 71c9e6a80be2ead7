package land

// Signal is a list of handlers invoked synchronously, in connection order,
// by Emit.
type Signal[T any] struct {
	handlers []func(T)
}

// Connect registers a handler.
func (s *Signal[T]) Connect(h func(T)) {
	s.handlers = append(s.handlers, h)
}

// Emit calls every handler with v.
func (s *Signal[T]) Emit(v T) {
	for _, h := range s.handlers {
		h(v)
	}
}

// Event is the payload of signals that carry no data.
type Event struct{}

// Position is a cell coordinate on the stage grid.
type Position struct {
	X, Y int
}
