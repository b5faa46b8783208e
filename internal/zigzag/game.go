package zigzag

import (
	"math/rand"

	"github.com/vovakirdan/zigzag/internal/config"
	"github.com/vovakirdan/zigzag/internal/core"
	"github.com/vovakirdan/zigzag/internal/registry"
)

// Game adapts a Sim to the registry.Game interface. A new Sim is built on
// every Reset, which is how the platform restarts after GameOver.
type Game struct {
	id        string
	title     string
	sim       *Sim
	runtime   core.RuntimeConfig
	cfg       *config.ZigzagConfig // fixed config; nil means load on Reset
	autopilot *Autopilot
	preset    config.DifficultyPreset // overrides difficultyPreset when set
	onEvent   EventHandler
	viewW     int
	viewH     int
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a player-controlled game.
func New() *Game {
	return &Game{id: "zigzag", title: "ZigZag"}
}

// NewAutopilot creates a game that plays itself.
func NewAutopilot() *Game {
	pilot := DefaultAutopilot()
	return &Game{id: "zigzag_autopilot", title: "ZigZag (Autopilot)", autopilot: &pilot}
}

// NewWithConfig creates a player-controlled game that ignores config files.
func NewWithConfig(cfg config.ZigzagConfig) *Game {
	g := New()
	g.cfg = &cfg
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// SetEventHandler forwards simulation events to fn, across restarts.
func (g *Game) SetEventHandler(fn EventHandler) {
	g.onEvent = fn
	if g.sim != nil {
		g.sim.SetEventHandler(fn)
	}
}

// SetDifficulty picks a preset for this game only, taking effect on the
// next Reset. Unknown names clear the override.
func (g *Game) SetDifficulty(preset string) {
	g.preset = config.ParsePreset(preset)
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	var cfg config.ZigzagConfig
	if g.cfg != nil {
		cfg = *g.cfg
	} else {
		loaded, err := config.LoadZigzag(configPath)
		if err != nil {
			loaded = config.DefaultZigzagConfig()
		}
		preset := difficultyPreset
		if g.preset != "" {
			preset = g.preset
		}
		if preset != "" {
			config.ApplyZigzagPreset(&loaded, preset)
		}
		cfg = loaded
	}

	g.viewW, g.viewH = runtime.ScreenW, runtime.ScreenH
	rng := rand.New(rand.NewSource(runtime.Seed))
	g.sim = NewSim(cfg, rng, g.viewW, g.viewH*cellAspect)
	g.sim.SetEventHandler(g.onEvent)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	dt := g.runtime.DeltaTime()
	if g.autopilot != nil {
		// The player can still pause and quit; flips belong to the bot.
		in.Unset(core.ActionFlip)
		if g.autopilot.Decide(g.sim, dt).Has(core.ActionFlip) {
			in.Set(core.ActionFlip)
		}
	}
	g.sim.Update(dt, in)
	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if dst.Width() != g.viewW || dst.Height() != g.viewH {
		g.viewW, g.viewH = dst.Width(), dst.Height()
		g.sim.Resize(g.viewW, g.viewH*cellAspect)
	}
	g.sim.Render(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	mode := g.sim.Mode()
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: mode == core.ModeGameOver,
		Paused:   mode == core.ModePaused,
		Mode:     mode.String(),
	}
}

// Sim exposes the running simulation for diagnostics.
func (g *Game) Sim() *Sim {
	return g.sim
}

// Register the game with the registry
func init() {
	registry.Register("zigzag", func() registry.Game {
		return New()
	})
	registry.Register("zigzag_autopilot", func() registry.Game {
		return NewAutopilot()
	})
}
