package game

import (
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pawmark/garden/camera"
	"github.com/pawmark/garden/components"
	"github.com/pawmark/garden/config"
	"github.com/pawmark/garden/systems"
	"github.com/pawmark/garden/telemetry"
	"github.com/pawmark/garden/ui"
)

// Simulation constants
const (
	DT           = 1.0 / 60.0 // seconds per tick
	GridCellSize = 2.25       // spatial grid cell size, world units
)

// perfWindowTicks is the rolling window for per-phase timings.
const perfWindowTicks = 120

// Options configures a game instance.
type Options struct {
	Seed           int64
	Headless       bool
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	StepsPerUpdate int
}

// Game holds the complete simulation state.
type Game struct {
	world *ecs.World
	rng   *rand.Rand

	agentMapper *ecs.Map7[
		components.Position,
		components.Velocity,
		components.Rotation,
		components.Agent,
		components.Brain,
		components.Social,
		components.Affinity,
	]
	agentFilter *ecs.Filter7[
		components.Position,
		components.Velocity,
		components.Rotation,
		components.Agent,
		components.Brain,
		components.Social,
		components.Affinity,
	]

	// Individual component mappers for lookups by entity
	posMap    *ecs.Map1[components.Position]
	velMap    *ecs.Map1[components.Velocity]
	rotMap    *ecs.Map1[components.Rotation]
	agentMap  *ecs.Map1[components.Agent]
	brainMap  *ecs.Map1[components.Brain]
	socialMap *ecs.Map1[components.Social]
	affMap    *ecs.Map1[components.Affinity]

	// Entity lookup by agent ID
	entities map[uint32]ecs.Entity

	// Behavior systems
	brains   *systems.BrainSystem
	movement *systems.MovementSystem
	coord    *systems.Coordinator
	rub      *systems.RubSystem

	// Double-buffered pose snapshot. Systems read the committed previous
	// tick from readSnap while this tick's mutations land in the ECS.
	readSnap  *systems.Snapshot
	writeSnap *systems.Snapshot
	grid      *systems.SpatialGrid

	observer Observer

	// Telemetry
	collector    *telemetry.Collector
	perf         *telemetry.PerfCollector
	output       *telemetry.OutputManager
	logStats     bool
	lastPoseTime float64

	// Viewer state (nil in headless runs)
	camera    *camera.Camera
	hud       *ui.HUD
	inspector *ui.Inspector
	fx        *effectPool

	// Inspector selection
	hasSelection bool
	selectedID   uint32

	// Pointer interaction
	holding    bool
	heldID     uint32
	heldEntity ecs.Entity
	hovering   bool
	hoverID    uint32

	// Press tracking for tap-vs-pickup disambiguation
	pressActive   bool
	pressHasAgent bool
	pressAgentID  uint32
	pressScreenX  float32
	pressScreenY  float32
	pressTime     float64
	prevPointerX  float32

	// State
	tick           int64
	simTime        float64
	paused         bool
	stepsPerUpdate int
	nextID         uint32
	headless       bool

	// Window dimensions
	screenWidth, screenHeight float32

	// Scratch buffers reused across ticks
	speedScratch []float64
	affScratch   []float64
	poseScratch  []telemetry.PoseRow
}

// NewGameWithOptions creates a game instance with the given options.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	world := ecs.NewWorld()

	bounds := systems.Bounds{
		MinX: cfg.Derived.MinX, MaxX: cfg.Derived.MaxX,
		MinZ: cfg.Derived.MinZ, MaxZ: cfg.Derived.MaxZ,
	}

	g := &Game{
		world:        world,
		rng:          rand.New(rand.NewSource(opts.Seed)),
		entities:     make(map[uint32]ecs.Entity),
		logStats:     opts.LogStats,
		headless:     opts.Headless,
		screenWidth:  cfg.Derived.ScreenW32,
		screenHeight: cfg.Derived.ScreenH32,
		agentMapper: ecs.NewMap7[
			components.Position,
			components.Velocity,
			components.Rotation,
			components.Agent,
			components.Brain,
			components.Social,
			components.Affinity,
		](world),
		agentFilter: ecs.NewFilter7[
			components.Position,
			components.Velocity,
			components.Rotation,
			components.Agent,
			components.Brain,
			components.Social,
			components.Affinity,
		](world),
		posMap:    ecs.NewMap1[components.Position](world),
		velMap:    ecs.NewMap1[components.Velocity](world),
		rotMap:    ecs.NewMap1[components.Rotation](world),
		agentMap:  ecs.NewMap1[components.Agent](world),
		brainMap:  ecs.NewMap1[components.Brain](world),
		socialMap: ecs.NewMap1[components.Social](world),
		affMap:    ecs.NewMap1[components.Affinity](world),
	}

	g.stepsPerUpdate = opts.StepsPerUpdate
	if g.stepsPerUpdate < 1 {
		g.stepsPerUpdate = 1
	}

	// Behavior systems share the seeded RNG so runs replay exactly.
	wander := systems.NewWanderField(opts.Seed, cfg.Movement.WanderNoiseFreq)
	g.brains = systems.NewBrainSystem(cfg.Brain, g.rng, cfg.Derived.RestSpots)
	g.movement = systems.NewMovementSystem(cfg.Movement, bounds, float32(cfg.World.WallMargin), wander)
	g.coord = systems.NewCoordinator(cfg.Social, g.rng)
	g.rub = systems.NewRubSystem(cfg.Affinity, g.rng)

	g.readSnap = systems.NewSnapshot(cfg.Population.Initial)
	g.writeSnap = systems.NewSnapshot(cfg.Population.Initial)
	g.grid = systems.NewSpatialGrid(bounds, GridCellSize)

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	g.collector = telemetry.NewCollector(statsWindow, DT)
	g.perf = telemetry.NewPerfCollector(perfWindowTicks)

	if opts.OutputDir != "" {
		out, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to open output directory", "dir", opts.OutputDir, "error", err)
		} else {
			g.output = out
			if err := out.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config snapshot", "error", err)
			}
		}
	}

	if !opts.Headless {
		g.camera = camera.New(
			g.screenWidth, g.screenHeight,
			bounds.MinX, bounds.MaxX, bounds.MinZ, bounds.MaxZ,
		)
		g.hud = ui.NewHUD()
		g.inspector = ui.NewInspector()
		g.fx = newEffectPool()
	}

	g.spawnInitialPopulation()

	return g
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int64 {
	return g.tick
}

// SimTime returns elapsed simulated seconds.
func (g *Game) SimTime() float64 {
	return g.simTime
}

// Population returns the number of live agents.
func (g *Game) Population() int {
	return len(g.entities)
}

// Unload releases resources held by the game.
func (g *Game) Unload() {
	if g.output != nil {
		if err := g.output.Close(); err != nil {
			slog.Error("failed to close output files", "error", err)
		}
	}
}
