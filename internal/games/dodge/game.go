// Package dodge implements Dodge Rush, an avoidance game where a paddle at the
// bottom of the screen dodges falling obstacles and collects power-ups.
package dodge

import (
	"math/rand"

	"github.com/vovakirdan/dodge-rush/internal/config"
	"github.com/vovakirdan/dodge-rush/internal/core"
	"github.com/vovakirdan/dodge-rush/internal/entity"
	"github.com/vovakirdan/dodge-rush/internal/registry"
)

// Game IDs for the registered variants.
const (
	IDDodge   = "dodge"
	IDClassic = "dodge_classic"
)

// Game implements the Dodge Rush simulation.
type Game struct {
	id    string
	title string

	cfg      config.DodgeConfig
	fixedCfg *config.DodgeConfig // Overrides file loading when set
	classic  bool                // Power-ups disabled
	curve    *config.Curve
	runtime  core.RuntimeConfig

	geom      core.Geometry
	ownGeom   bool // geom was derived from runtime, not injected
	best      core.BestStore
	rng       *rand.Rand
	state     State
	obstacles *ObstaclePool
	powerups  *PowerUpPool
	tick      uint64
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset; unknown names select the config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a Dodge Rush game. Config is loaded on Reset.
func New(env registry.Env) *Game {
	return newGame(IDDodge, "Dodge Rush", false, env)
}

// NewClassic creates the variant without power-ups.
func NewClassic(env registry.Env) *Game {
	return newGame(IDClassic, "Dodge Rush Classic", true, env)
}

// NewWithConfig creates a game that uses cfg instead of loading config files.
func NewWithConfig(cfg config.DodgeConfig, env registry.Env) *Game {
	g := newGame(IDDodge, "Dodge Rush", !cfg.PowerUps.Enabled, env)
	g.fixedCfg = &cfg
	return g
}

func newGame(id, title string, classic bool, env registry.Env) *Game {
	g := &Game{
		id:      id,
		title:   title,
		classic: classic,
		geom:    env.Geometry,
		best:    env.Best,
	}
	if g.best == nil {
		g.best = &memBest{}
	}
	g.state.Best = g.best.LoadBest()
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

// Reset puts the game on its title menu with freshly loaded config and a
// reseeded RNG. The best score is kept.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.curve = config.NewCurve(g.cfg.Difficulty)

	if g.geom == nil || g.ownGeom {
		g.geom = core.WorldViewport(runtime.ScreenW, runtime.ScreenH)
		g.ownGeom = true
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.obstacles = entity.New[Obstacle, *Obstacle](g.cfg.Obstacles.PoolCapacity, g.cfg.Obstacles.SweepMargin)
	g.powerups = entity.New[PowerUp, *PowerUp](powerUpCapacity, g.cfg.Obstacles.SweepMargin)
	g.tick = 0

	g.resetRound()
	g.state.Mode = ModeMenu
}

// powerUpCapacity is the initial power-up pool size; the pool grows if needed.
const powerUpCapacity = 8

func (g *Game) loadConfig() config.DodgeConfig {
	var cfg config.DodgeConfig
	if g.fixedCfg != nil {
		cfg = *g.fixedCfg
		cfg.Validate()
	} else {
		loaded, err := config.Load(configPath)
		if err != nil {
			loaded = config.DefaultDodgeConfig()
		}
		cfg = loaded
		if difficultyPreset != "" {
			config.ApplyPreset(&cfg, difficultyPreset)
		}
	}
	if g.classic {
		cfg.PowerUps.Enabled = false
	}
	return cfg
}

// resetRound restores every round field to its initial value. Mode and Best survive.
func (g *Game) resetRound() {
	w, _ := g.geom.ScreenSize()
	pc := g.cfg.Player

	g.obstacles.ClearAll()
	g.powerups.ClearAll()

	g.state = State{
		Mode:          g.state.Mode,
		Best:          g.state.Best,
		Player:        Player{X: core.ClampF(w*0.5-pc.Width*0.5, 0, maxPlayerX(w, pc.Width))},
		SpawnInterval: g.cfg.Difficulty.BaseInterval,
		FallSpeed:     g.curve.FallSpeed(0, 1),
	}
}

// Step advances the game by one fixed tick of dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	g.tick++
	g.decayShake(dt)

	var tr transition
	switch g.state.Mode {
	case ModeMenu:
		tr = g.stepMenu(in)
	case ModePlaying:
		tr = g.stepPlaying(in, dt)
	case ModePaused:
		tr = g.stepPaused(in)
	case ModeGameOver:
		tr = g.stepGameOver(in)
	}
	g.apply(tr)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		Best:     g.state.Best,
		GameOver: g.state.Mode == ModeGameOver,
		Paused:   g.state.Mode == ModePaused,
		InMenu:   g.state.Mode == ModeMenu,
	}
}

// Mode returns the current mode.
func (g *Game) Mode() Mode {
	return g.state.Mode
}

// memBest keeps the best score in memory when no store is configured.
type memBest struct {
	score int
}

func (m *memBest) LoadBest() int      { return m.score }
func (m *memBest) SaveBest(score int) { m.score = score }

// Register both variants with the registry
func init() {
	registry.Register(IDDodge, func(env registry.Env) registry.Game {
		return New(env)
	})
	registry.Register(IDClassic, func(env registry.Env) registry.Game {
		return NewClassic(env)
	})
}
