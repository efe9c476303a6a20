package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Snapshot is the input state for one frame
type Snapshot struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Jump    bool
	Fire    bool
	Reload  bool // pressed this frame only

	Look rl.Vector2 // mouse delta in pixels
}

// Axes returns the movement intent as (forward, strafe) in [-1, 1], right positive
func (s Snapshot) Axes() (forward, strafe float32) {
	if s.Forward {
		forward++
	}
	if s.Back {
		forward--
	}
	if s.Right {
		strafe++
	}
	if s.Left {
		strafe--
	}
	return forward, strafe
}

// Moving reports whether any movement key is held
func (s Snapshot) Moving() bool {
	f, r := s.Axes()
	return f != 0 || r != 0
}

// Bindings maps actions to raylib keys and buttons
type Bindings struct {
	Forward int32
	Back    int32
	Left    int32
	Right   int32
	Jump    int32
	Reload  int32
	Fire    rl.MouseButton
}

func DefaultBindings() Bindings {
	return Bindings{
		Forward: rl.KeyW,
		Back:    rl.KeyS,
		Left:    rl.KeyA,
		Right:   rl.KeyD,
		Jump:    rl.KeySpace,
		Reload:  rl.KeyR,
		Fire:    rl.MouseLeftButton,
	}
}

// Source produces one Snapshot per frame
type Source interface {
	Poll() Snapshot
}

// RaylibSource reads the keyboard and mouse through raylib. It needs an open window.
type RaylibSource struct {
	Bindings Bindings
}

func NewRaylibSource(b Bindings) *RaylibSource {
	return &RaylibSource{Bindings: b}
}

func (r *RaylibSource) Poll() Snapshot {
	b := r.Bindings
	return Snapshot{
		Forward: rl.IsKeyDown(b.Forward),
		Back:    rl.IsKeyDown(b.Back),
		Left:    rl.IsKeyDown(b.Left),
		Right:   rl.IsKeyDown(b.Right),
		Jump:    rl.IsKeyDown(b.Jump),
		Fire:    rl.IsMouseButtonDown(b.Fire),
		Reload:  rl.IsKeyPressed(b.Reload),
		Look:    rl.GetMouseDelta(),
	}
}

// Script replays a fixed list of snapshots, then repeats the zero Snapshot.
// Used by tests and headless runs.
type Script struct {
	Frames []Snapshot
	next   int
}

func (s *Script) Poll() Snapshot {
	if s.next >= len(s.Frames) {
		return Snapshot{}
	}
	f := s.Frames[s.next]
	s.next++
	return f
}
