package search

import (
	"sync"

	"github.com/talgya/hexnav/internal/world"
	"github.com/zyedidia/generic/mapset"
)

// Route is a materialized path with its cost.
type Route struct {
	Cells []*world.Cell
	Cost  int // Quantized cost to the destination
	Turns int // Turn in which the destination is reached, starting at 0
}

// Serialized shares one Engine between goroutines. Each call runs a search
// and materializes its result while holding the lock.
type Serialized struct {
	mu     sync.Mutex
	engine *Engine
}

// NewSerialized wraps e. The caller must not use e directly afterwards.
func NewSerialized(e *Engine) *Serialized {
	return &Serialized{engine: e}
}

// Route finds a path for unit using its own movement range per turn.
// Returns false if no path exists.
func (s *Serialized) Route(from, to *world.Cell, unit Mover, maxLength int) (Route, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if unit == nil {
		return Route{}, false
	}
	speed := unit.MovementRange()
	if !s.engine.FindPath(from, to, unit, speed) {
		return Route{}, false
	}
	cells, ok := s.engine.Path(maxLength)
	if !ok {
		return Route{}, false
	}
	return Route{
		Cells: cells,
		Cost:  s.engine.PathCost(),
		Turns: s.engine.Turn(to, speed),
	}, true
}

// MoveRange returns the cells unit can reach within one turn.
func (s *Serialized) MoveRange(from *world.Cell, unit Mover) mapset.Set[int] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.MoveRange(from, unit)
}
