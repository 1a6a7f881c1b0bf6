package search

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/talgya/hexnav/internal/world"
	"github.com/zyedidia/generic/mapset"
)

// Relaxation selects how the engine treats a better route to a cell that is
// already in the frontier.
type Relaxation uint8

const (
	// DecreaseKey lowers the queued cell's distance and priority. Searches
	// return least-cost paths.
	DecreaseKey Relaxation = iota
	// RelaxOnce keeps the first distance found for each cell. Faster on
	// uniform costs but may return longer paths when costs vary.
	RelaxOnce
)

func (r Relaxation) String() string {
	switch r {
	case DecreaseKey:
		return "decrease-key"
	case RelaxOnce:
		return "relax-once"
	default:
		return "unknown"
	}
}

// ParseRelaxation parses the names returned by Relaxation.String.
func ParseRelaxation(s string) (Relaxation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "decrease-key":
		return DecreaseKey, nil
	case "relax-once":
		return RelaxOnce, nil
	default:
		return DecreaseKey, fmt.Errorf("unknown relaxation %q", s)
	}
}

// Config tunes an Engine. The zero value is usable.
type Config struct {
	Relaxation Relaxation
	MaxChain   int          // Parent-chain walk limit; 0 means the grid's cell count
	Sink       Sink         // Receives visit events; nil discards them
	Logger     *slog.Logger // nil means slog.Default()
}

// Engine runs searches over one grid. Search state lives in the engine's own
// scratch arrays indexed by cell index and searches only read the grid, so
// several engines may search the same grid as long as nobody mutates it
// meanwhile. An Engine itself is not safe for concurrent use.
type Engine struct {
	grid     *world.Grid
	cfg      Config
	log      *slog.Logger
	sink     Sink
	frontier *Frontier

	// Stamps below phase are stale, phase marks frontier cells, and
	// phase+1 marks settled cells.
	phase     int
	stamp     []int
	distance  []int
	heuristic []int
	parent    []int
	settled   []int
	order     int
	gen       int // grid generation the scratch arrays belong to

	from, to *world.Cell
	found    bool
}

// New creates an engine for g.
func New(g *world.Grid, cfg Config) *Engine {
	e := &Engine{
		grid:     g,
		cfg:      cfg,
		log:      cfg.Logger,
		sink:     cfg.Sink,
		frontier: NewFrontier(0),
	}
	if e.log == nil {
		e.log = slog.Default()
	}
	if e.sink == nil {
		e.sink = nopSink{}
	}
	e.ensureScratch()
	return e
}

// Grid returns the grid the engine searches.
func (e *Engine) Grid() *world.Grid {
	return e.grid
}

// ensureScratch reallocates the scratch arrays after the grid was resized.
func (e *Engine) ensureScratch() {
	n := e.grid.Len()
	if len(e.stamp) == n && e.gen == e.grid.Generation() {
		return
	}
	e.gen = e.grid.Generation()
	e.stamp = make([]int, n)
	e.distance = make([]int, n)
	e.heuristic = make([]int, n)
	e.parent = make([]int, n)
	e.phase = 0
	e.frontier.Resize(n)
	e.found = false
}

// FindPath searches for a least-cost route from one cell to another for a
// unit with the given movement budget per turn. Moves that would overrun
// the current turn's budget start on the next turn and forfeit the rest.
// The result is kept for Path, PathCost and Distance until the next search.
func (e *Engine) FindPath(from, to *world.Cell, unit Mover, movementPerTurn int) bool {
	e.from, e.to = from, to
	e.found = false
	if from == nil || to == nil || unit == nil || movementPerTurn <= 0 {
		return false
	}
	e.found = e.search(from, to, unit, movementPerTurn, -1, false)
	e.log.Debug("path search",
		"from", from.Coord, "to", to.Coord, "found", e.found, "visits", e.order)
	return e.found
}

// FindAttackPath is FindPath towards an occupied target. The final step onto
// the target is judged as if the target were empty; the grid itself is left
// untouched. Path then drops the occupied final cell and the route ends next
// to the target.
func (e *Engine) FindAttackPath(from, target *world.Cell, unit Mover, movementPerTurn int) bool {
	e.from, e.to = from, target
	e.found = false
	if from == nil || target == nil || unit == nil || movementPerTurn <= 0 {
		return false
	}
	e.found = e.search(from, target, unit, movementPerTurn, -1, true)
	e.log.Debug("attack path search",
		"from", from.Coord, "target", target.Coord, "found", e.found, "visits", e.order)
	return e.found
}

// MoveRange returns the indices of every cell the unit can reach within one
// turn of movement, including the origin.
func (e *Engine) MoveRange(from *world.Cell, unit Mover) mapset.Set[int] {
	reach := mapset.New[int]()
	e.from, e.to = from, nil
	e.found = false
	if from == nil || unit == nil {
		return reach
	}

	speed := unit.MovementRange()
	e.search(from, nil, unit, max(speed, 1), max(speed, 0), false)
	for _, i := range e.settled {
		reach.Put(i)
		e.emit(i, RoleReachable)
	}
	e.log.Debug("move range", "from", from.Coord, "speed", speed, "cells", reach.Size())
	return reach
}

// search runs A* from one cell. With to == nil it floods every cell whose
// distance does not exceed limit; a negative limit means no limit. With
// attack set, the destination's occupant is ignored when stepping onto it.
func (e *Engine) search(from, to *world.Cell, unit Mover, perTurn, limit int, attack bool) bool {
	e.ensureScratch()
	e.phase += 2
	e.frontier.Clear()
	e.settled = e.settled[:0]
	e.order = 0

	start := from.Index
	e.stamp[start] = e.phase
	e.distance[start] = 0
	e.heuristic[start] = 0
	e.parent[start] = -1
	e.frontier.Enqueue(start, 0)

	for {
		ci, ok := e.frontier.Dequeue()
		if !ok {
			return false
		}
		e.stamp[ci] = e.phase + 1
		e.settled = append(e.settled, ci)
		e.emit(ci, RoleSettled)

		current := e.grid.CellByIndex(ci)
		if current == to {
			return true
		}

		currentTurn := (e.distance[ci] - 1) / perTurn
		for _, d := range world.Directions {
			n, ok := current.Neighbor(d)
			if !ok {
				continue
			}
			ni := n.Index
			if e.stamp[ni] > e.phase {
				continue
			}
			dest := n
			if attack && n == to && n.IsOccupied() {
				dest = vacated(n)
			}
			if !unit.IsValidDestination(dest) {
				continue
			}
			cost := unit.MoveCost(current, dest, d)
			if cost < 0 {
				continue
			}

			distance := e.distance[ci] + cost
			if turn := (distance - 1) / perTurn; turn > currentTurn {
				distance = turn*perTurn + cost
			}
			if limit >= 0 && distance > limit {
				continue
			}

			if e.stamp[ni] < e.phase {
				e.stamp[ni] = e.phase
				e.distance[ni] = distance
				e.parent[ni] = ci
				e.heuristic[ni] = 0
				if to != nil {
					e.heuristic[ni] = n.Coord.DistanceTo(to.Coord)
				}
				e.frontier.Enqueue(ni, distance+e.heuristic[ni])
				e.emit(ni, RoleFrontier)
			} else if e.cfg.Relaxation == DecreaseKey && distance < e.distance[ni] {
				old := e.distance[ni] + e.heuristic[ni]
				e.distance[ni] = distance
				e.parent[ni] = ci
				e.frontier.Change(ni, old, distance+e.heuristic[ni])
			}
		}
	}
}

// vacated returns a detached copy of c without its occupant. The copy keeps
// c's coordinate, index and attributes.
func vacated(c *world.Cell) *world.Cell {
	v := *c
	v.ClearOccupant()
	return &v
}

// Path materializes the route of the last successful FindPath in origin to
// destination order. With maxLength > 0 only the last maxLength steps are
// kept. An occupied final cell is dropped so the route ends next to it.
func (e *Engine) Path(maxLength int) ([]*world.Cell, bool) {
	if !e.found || e.stale() {
		e.found = false
		return nil, false
	}

	limit := e.cfg.MaxChain
	if limit <= 0 {
		limit = e.grid.Len()
	}

	var path []*world.Cell
	i := e.to.Index
	for steps := 0; i != e.from.Index; steps++ {
		if steps >= limit || i < 0 {
			e.brokenChain(limit)
			break
		}
		path = append(path, e.grid.CellByIndex(i))
		i = e.parent[i]
	}
	path = append(path, e.from)
	slices.Reverse(path)

	if maxLength > 0 && len(path) > maxLength+1 {
		path = path[len(path)-maxLength-1:]
	}
	if len(path) > 1 && path[len(path)-1].IsOccupied() {
		path = path[:len(path)-1]
	}

	for _, c := range path {
		e.emit(c.Index, RolePath)
	}
	return path, true
}

// stale reports whether the grid was resized since the last search.
func (e *Engine) stale() bool {
	return len(e.stamp) != e.grid.Len() || e.gen != e.grid.Generation()
}

func (e *Engine) brokenChain(limit int) {
	if debugChecks {
		panic(fmt.Sprintf("search: parent chain from %v to %v exceeds %d steps",
			e.to.Coord, e.from.Coord, limit))
	}
	e.log.Error("parent chain exceeds limit, truncating path",
		"from", e.from.Coord, "to", e.to.Coord, "limit", limit)
}

// HasPath reports whether the last FindPath succeeded.
func (e *Engine) HasPath() bool {
	return e.found
}

// PathCost returns the quantized cost of the last found path, or -1.
func (e *Engine) PathCost() int {
	if !e.found || e.stale() {
		return -1
	}
	return e.distance[e.to.Index]
}

// Distance returns the final distance of a cell settled by the last search.
func (e *Engine) Distance(c *world.Cell) (int, bool) {
	if c == nil || e.stale() || c.Index >= len(e.stamp) || e.stamp[c.Index] != e.phase+1 {
		return 0, false
	}
	return e.distance[c.Index], true
}

// Turn returns the turn in which a settled cell is reached, starting at 0,
// or -1 if the cell was not settled by the last search.
func (e *Engine) Turn(c *world.Cell, movementPerTurn int) int {
	d, ok := e.Distance(c)
	if !ok || movementPerTurn <= 0 {
		return -1
	}
	if d == 0 {
		return 0
	}
	return (d - 1) / movementPerTurn
}

func (e *Engine) emit(i int, role Role) {
	e.sink.Visit(Visit{
		Index: i,
		Coord: e.grid.CellByIndex(i).Coord,
		Role:  role,
		Order: e.order,
	})
	e.order++
}
