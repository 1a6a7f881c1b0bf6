package search

import "github.com/talgya/hexnav/internal/world"

// Role says why a cell was visited.
type Role uint8

const (
	RoleFrontier  Role = iota // Discovered and queued
	RoleSettled               // Removed from the frontier with a final distance
	RolePath                  // Part of a materialized path
	RoleReachable             // Inside a move range
)

func (r Role) String() string {
	switch r {
	case RoleFrontier:
		return "frontier"
	case RoleSettled:
		return "settled"
	case RolePath:
		return "path"
	case RoleReachable:
		return "reachable"
	default:
		return "unknown"
	}
}

// Visit is one display event emitted by an engine.
type Visit struct {
	Index int
	Coord world.HexCoord
	Role  Role
	Order int // Position in the event stream of the current search
}

// Sink receives visit events. Implementations must not mutate the grid.
type Sink interface {
	Visit(v Visit)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(v Visit)

func (f SinkFunc) Visit(v Visit) { f(v) }

// Recorder is a Sink that keeps every event it receives.
type Recorder struct {
	Events []Visit
}

func (r *Recorder) Visit(v Visit) {
	r.Events = append(r.Events, v)
}

// Roles returns the recorded cell indices with the given role, in order.
func (r *Recorder) Roles(role Role) []int {
	var out []int
	for _, v := range r.Events {
		if v.Role == role {
			out = append(out, v.Index)
		}
	}
	return out
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}

type nopSink struct{}

func (nopSink) Visit(Visit) {}
