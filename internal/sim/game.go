package sim

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/bricksmash/bricksmash/internal/config"
	"github.com/bricksmash/bricksmash/internal/core"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game wires the world and the systems into a fixed-timestep pipeline.
// The platform drives it: one Step call per tick, input already mapped to
// abstract actions.
type Game struct {
	world   *World
	cfg     config.Config
	runtime core.RuntimeConfig

	dt   float64
	tick int

	audio  AudioSink
	logger *log.Logger
}

// New creates a new game instance. Reset must be called before Step.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier used for CLI commands and score
// storage.
func (g *Game) ID() string {
	return "bricksmash"
}

// Title returns the human-readable game name.
func (g *Game) Title() string {
	return "Brick Smash"
}

// SetAudio installs the audio sink. Survives Reset.
func (g *Game) SetAudio(sink AudioSink) {
	g.audio = sink
	if g.world != nil {
		g.world.SetAudio(sink)
	}
}

// SetLogger installs an optional diagnostics logger. Survives Reset.
func (g *Game) SetLogger(l *log.Logger) {
	g.logger = l
	if g.world != nil {
		g.world.SetLogger(l)
	}
}

// World exposes the simulation state for rendering and tests.
func (g *Game) World() *World {
	return g.world
}

// Tick returns the number of completed simulation ticks.
func (g *Game) Tick() int {
	return g.tick
}

// Reset initializes or reinitializes the game from scratch: gameplay
// config is reloaded, the world is rebuilt and the tick counter restarts.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		if g.logger != nil {
			g.logger.Warn("config load failed, using defaults", "err", err)
		}
		cfg = config.Default()
	}

	g.cfg = cfg
	g.runtime = rc
	g.dt = 1.0 / float64(rc.TickRate)
	g.tick = 0
	g.world = NewWorld(cfg, seed)
	g.world.SetAudio(g.audio)
	g.world.SetLogger(g.logger)
}

// Step advances the simulation by one fixed tick.
//
// Pipeline order is fixed: phase keys, then movement, then collision,
// then particle aging, then scoreboard sync, then game-over handling.
// Pause gates everything after the phase keys. Events never survive the
// tick that produced them.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	w := g.world

	w.TogglePhase(in)
	if w.phase == PhasePaused {
		g.tick++
		return core.StepResult{State: g.State()}
	}

	MovePaddle(w, in, g.dt)
	MoveBodies(w, g.dt)
	CheckCollisions(w)
	UpdateParticles(w, g.dt)
	w.SyncScoreboard()

	res := core.StepResult{}
	for i := range w.events.DrainGameOvers() {
		if i == 0 {
			res.State.GameOver = true
			res.FinalScore = w.score
		}
		w.Reset()
	}

	w.events.Clear()
	w.store.Compact()
	g.tick++

	res.State.Score = w.score
	res.State.Paused = false
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.world.score,
		Paused: g.world.phase == PhasePaused,
	}
}
