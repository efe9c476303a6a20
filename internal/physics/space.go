package physics

import (
	"math"
)

// CellKey identifies a cell in the broad-phase grid
type CellKey struct {
	X, Y, Z int
}

type pairKey struct {
	a, b uint64
}

func makePairKey(a, b *Body) pairKey {
	if a.ID > b.ID {
		a, b = b, a
	}
	return pairKey{a.ID, b.ID}
}

// Space finds touching pairs. Small moving bodies go into a uniform grid and
// only test their 27 neighbouring cells; statics and bodies larger than a cell
// are tested against everything that moves.
type Space struct {
	CellSize float32
	Margin   float32 // AABB inflation used for pair rejection

	grid  map[CellKey][]*Body
	large []*Body
	seen  map[pairKey]struct{}
}

func NewSpace(cellSize, margin float32) *Space {
	if cellSize <= 0 {
		cellSize = 5
	}
	return &Space{
		CellSize: cellSize,
		Margin:   margin,
		grid:     make(map[CellKey][]*Body),
		seen:     make(map[pairKey]struct{}),
	}
}

func (s *Space) cellOf(x, y, z float32) CellKey {
	return CellKey{
		X: int(math.Floor(float64(x / s.CellSize))),
		Y: int(math.Floor(float64(y / s.CellSize))),
		Z: int(math.Floor(float64(z / s.CellSize))),
	}
}

func (s *Space) rebuild(bodies []*Body) {
	for k := range s.grid {
		delete(s.grid, k)
	}
	s.large = s.large[:0]

	for _, b := range bodies {
		if b.Kind == Static || 2*b.Shape.BoundingRadius() > s.CellSize {
			s.large = append(s.large, b)
			continue
		}
		key := s.cellOf(b.Position.X, b.Position.Y, b.Position.Z)
		s.grid[key] = append(s.grid[key], b)
	}
}

// Collide returns every contact between the given bodies
func (s *Space) Collide(bodies []*Body) []Contact {
	s.rebuild(bodies)
	for k := range s.seen {
		delete(s.seen, k)
	}

	var contacts []Contact
	test := func(a, b *Body) {
		if a == b {
			return
		}
		key := makePairKey(a, b)
		if _, ok := s.seen[key]; ok {
			return
		}
		s.seen[key] = struct{}{}
		if !s.admit(a, b) {
			return
		}
		contacts = append(contacts, collide(order(a, b))...)
	}

	for key, cell := range s.grid {
		for _, a := range cell {
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					for dz := -1; dz <= 1; dz++ {
						for _, b := range s.grid[CellKey{key.X + dx, key.Y + dy, key.Z + dz}] {
							test(a, b)
						}
					}
				}
			}
		}
	}

	for _, a := range s.large {
		for _, b := range bodies {
			test(a, b)
		}
	}
	return contacts
}

// admit filters a candidate pair before the narrow-phase and wakes sleepers
// touched by something awake
func (s *Space) admit(a, b *Body) bool {
	if a.Kind != Dynamic && b.Kind != Dynamic {
		return false
	}
	if !a.Bounds().Expand(s.Margin).Intersects(b.Bounds().Expand(s.Margin)) {
		return false
	}

	aIdle := a.Sleeping || a.Kind == Static
	bIdle := b.Sleeping || b.Kind == Static
	if aIdle && bIdle {
		return false
	}
	if a.Sleeping {
		a.Wake()
	}
	if b.Sleeping {
		b.Wake()
	}
	return true
}

// order puts the dynamic body first so normals point at the body that moves
func order(a, b *Body) (*Body, *Body) {
	if a.Kind != Dynamic && b.Kind == Dynamic {
		return b, a
	}
	return a, b
}
