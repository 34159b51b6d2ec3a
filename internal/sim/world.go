package sim

import (
	"github.com/charmbracelet/log"

	"github.com/bricksmash/bricksmash/internal/config"
	"github.com/bricksmash/bricksmash/internal/core"
)

// Phase is the coarse simulation state. While Paused every system is
// gated off except the phase controller itself.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// AudioSink accepts fire-and-forget "play named cue" requests. The
// simulation never consults a return value; a nil-like no-op sink is valid.
type AudioSink struct{ Play func(cue string) }

// CueEnemyDestroy is requested whenever an enemy block is destroyed.
const CueEnemyDestroy = "enemy_destroy"

// World owns all mutable simulation state: the entity store, the score
// counter, the phase, the per-tick event queue and the particle RNG. It
// is passed by reference into each system call; exactly one logical
// thread of control mutates it, so it carries no locks.
type World struct {
	cfg    config.Config
	store  *Store
	events *Queue
	rng    *RNG

	score int
	phase Phase

	audio  AudioSink
	logger *log.Logger // Optional; nil disables diagnostics
}

// NewWorld creates a world with the given tuning and particle seed and
// populates the initial playfield.
func NewWorld(cfg config.Config, seed int64) *World {
	w := &World{
		cfg:    cfg,
		store:  NewStore(),
		events: NewQueue(),
		rng:    NewRNG(seed),
	}
	w.setup()
	return w
}

// SetAudio installs the audio sink.
func (w *World) SetAudio(sink AudioSink) {
	w.audio = sink
}

// SetLogger installs an optional diagnostics logger.
func (w *World) SetLogger(l *log.Logger) {
	w.logger = l
}

// Store exposes the entity store for systems, the renderer and tests.
func (w *World) Store() *Store {
	return w.store
}

// Events exposes the per-tick event queue.
func (w *World) Events() *Queue {
	return w.events
}

// Score returns the current score counter value.
func (w *World) Score() int {
	return w.score
}

// Phase returns the current simulation phase.
func (w *World) Phase() Phase {
	return w.phase
}

// Config returns the gameplay tuning the world was built with.
func (w *World) Config() config.Config {
	return w.cfg
}

// Bounds returns the world-space extents of the playfield including the
// walls and the hazard strip, for renderer projection.
func (w *World) Bounds() (min, max core.Vec2) {
	a := w.cfg.Arena
	min = core.Vec2{
		X: a.LeftWall - a.WallThickness/2,
		Y: a.HazardY - a.HazardHeight/2,
	}
	max = core.Vec2{
		X: a.RightWall + a.WallThickness/2,
		Y: a.TopWall + a.WallThickness/2,
	}
	return min, max
}

// TogglePhase applies the pause/resume keys. The pause key only acts
// while Running and the resume key only while Paused; a press of the
// wrong key for the current phase is silently ignored.
func (w *World) TogglePhase(in core.InputFrame) {
	if in.Pressed(core.ActionPause) {
		if w.phase == PhaseRunning {
			w.phase = PhasePaused
		} else if w.logger != nil {
			w.logger.Debug("pause ignored", "phase", w.phase)
		}
	}

	if in.Pressed(core.ActionResume) {
		if w.phase == PhasePaused {
			w.phase = PhaseRunning
		} else if w.logger != nil {
			w.logger.Debug("resume ignored", "phase", w.phase)
		}
	}
}

// AddScore increments the score counter. Only the collision system calls
// this during play.
func (w *World) AddScore(points int) {
	w.score += points
}

// SyncScoreboard re-syncs the scoreboard label text from the score
// counter. Runs every tick while Running; the display collaborator reads
// the label entity's text.
func (w *World) SyncScoreboard() {
	w.store.Each(TagScoreboard, func(e *Entity) {
		e.Text = itoa(w.score)
	})
}

// Reset performs a full game-over reset: every Resettable entity is
// despawned, then the paddle, ball, enemy grid and scoreboard label are
// recreated at their canonical positions and the score returns to zero.
// All despawns complete before any respawn. Walls and the hazard are
// permanent and untouched. Running Reset twice in a tick reconstructs the
// same fresh state, so duplicate game-over notifications are harmless.
func (w *World) Reset() {
	var doomed []EntityID
	w.store.Each(TagResettable, func(e *Entity) {
		doomed = append(doomed, e.ID)
	})
	for _, id := range doomed {
		w.store.Despawn(id)
	}

	w.spawnResettables()

	if w.logger != nil {
		w.logger.Debug("playfield reset", "entities", w.store.Len())
	}
}

// setup creates the initial playfield: the permanent arena followed by
// the resettable content.
func (w *World) setup() {
	a := w.cfg.Arena
	wallHeight := (a.TopWall - a.BottomEdge) + a.WallThickness
	wallWidth := (a.RightWall - a.LeftWall) + a.WallThickness

	w.store.Spawn(Entity{
		Name:  "Left Wall",
		Tags:  TagWall | TagCollider,
		Pos:   core.Vec2{X: a.LeftWall, Y: 0},
		Scale: core.Vec2{X: a.WallThickness, Y: wallHeight},
		Color: core.ColorGray,
	})
	w.store.Spawn(Entity{
		Name:  "Right Wall",
		Tags:  TagWall | TagCollider,
		Pos:   core.Vec2{X: a.RightWall, Y: 0},
		Scale: core.Vec2{X: a.WallThickness, Y: wallHeight},
		Color: core.ColorGray,
	})
	w.store.Spawn(Entity{
		Name:  "Top Wall",
		Tags:  TagWall | TagCollider,
		Pos:   core.Vec2{X: 0, Y: a.TopWall},
		Scale: core.Vec2{X: wallWidth, Y: a.WallThickness},
		Color: core.ColorGray,
	})
	w.store.Spawn(Entity{
		Name:  "Lava",
		Tags:  TagHazard | TagCollider,
		Pos:   core.Vec2{X: 0, Y: a.HazardY},
		Scale: core.Vec2{X: a.HazardWidth, Y: a.HazardHeight},
		Color: core.ColorOrange,
	})

	w.spawnResettables()
}

// spawnResettables creates the paddle, ball, enemy grid and scoreboard
// label and zeroes the score.
func (w *World) spawnResettables() {
	cfg := w.cfg
	paddleY := cfg.Arena.BottomEdge + cfg.Paddle.FloorGap

	w.store.Spawn(Entity{
		Name:  "Player",
		Tags:  TagPaddle | TagCollider | TagResettable,
		Pos:   core.Vec2{X: 0, Y: paddleY},
		Scale: core.Vec2{X: cfg.Paddle.Width, Y: cfg.Paddle.Height},
		Color: core.ColorBlue,
	})

	dir := core.Vec2{X: cfg.Ball.DirX, Y: cfg.Ball.DirY}.Normalize()
	w.store.Spawn(Entity{
		Name:  "Ball",
		Tags:  TagBall | TagVelocity | TagResettable,
		Pos:   core.Vec2{X: cfg.Ball.StartX, Y: cfg.Ball.StartY},
		Scale: core.Vec2{X: cfg.Ball.Size, Y: cfg.Ball.Size},
		Vel:   dir.Scale(cfg.Ball.Speed),
		Color: core.ColorBrightWhite,
	})

	for row := 0; row < cfg.Enemies.Rows; row++ {
		for col := 0; col < cfg.Enemies.Cols; col++ {
			id := col + row*cfg.Enemies.Cols
			w.store.Spawn(Entity{
				Name: "Enemy " + itoa(id),
				Tags: TagEnemy | TagCollider | TagResettable,
				Pos: core.Vec2{
					X: cfg.Enemies.OriginX + cfg.Enemies.StepX*float64(col),
					Y: cfg.Enemies.OriginY - cfg.Enemies.StepY*float64(row),
				},
				Scale: core.Vec2{X: cfg.Enemies.Width, Y: cfg.Enemies.Height},
				Color: core.ColorRed,
			})
		}
	}

	w.score = 0
	w.store.Spawn(Entity{
		Name:  "Scoreboard",
		Tags:  TagScoreboard | TagResettable,
		Text:  "0",
		Color: core.ColorBrightYellow,
	})
}

// itoa formats a small non-negative int.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [12]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
