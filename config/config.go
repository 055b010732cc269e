// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	World      WorldConfig      `yaml:"world"`
	Population PopulationConfig `yaml:"population"`
	Brain      BrainConfig      `yaml:"brain"`
	Movement   MovementConfig   `yaml:"movement"`
	Social     SocialConfig     `yaml:"social"`
	Affinity   AffinityConfig   `yaml:"affinity"`
	Observer   ObserverConfig   `yaml:"observer"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings for the viewer.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds the ground-plane bounds. Positions are hard-clamped to
// [-half_extent, half_extent] on both axes after integration.
type WorldConfig struct {
	HalfExtentX float64 `yaml:"half_extent_x"`
	HalfExtentZ float64 `yaml:"half_extent_z"`
	WallMargin  float64 `yaml:"wall_margin"` // repulsion activates within this distance of an edge
}

// PopulationConfig holds roster parameters.
type PopulationConfig struct {
	Initial   int         `yaml:"initial"`
	RestSpots [][]float64 `yaml:"rest_spots"` // [x, z] pairs; empty disables rest targets
}

// BrainConfig holds the state-machine thresholds and timings.
type BrainConfig struct {
	NearbyDistSq   float64 `yaml:"nearby_dist_sq"`   // squared distance to observer counting as "nearby"
	IdleSleepAfter float64 `yaml:"idle_sleep_after"` // seconds without interaction before sleep is possible
	SleepRate      float64 `yaml:"sleep_rate"`       // per-second sleep transition probability
	SleepMin       float64 `yaml:"sleep_min"`        // sleep duration range, seconds
	SleepMax       float64 `yaml:"sleep_max"`
	RestAfterWalk  float64 `yaml:"rest_after_walk"` // wander seconds before resting becomes possible
	RestRate       float64 `yaml:"rest_rate"`       // per-second rest transition probability
	RestMin        float64 `yaml:"rest_min"`
	RestMax        float64 `yaml:"rest_max"`
	CuriousRate    float64 `yaml:"curious_rate"` // per-second curious transition probability
	CuriousMin     float64 `yaml:"curious_min"`
	CuriousMax     float64 `yaml:"curious_max"`
}

// MovementConfig holds steering and integration parameters.
type MovementConfig struct {
	WanderSpeed      float64 `yaml:"wander_speed"`
	WanderNoiseFreq  float64 `yaml:"wander_noise_freq"` // noise time frequency, Hz
	RestSpeed        float64 `yaml:"rest_speed"`
	RestStopRadius   float64 `yaml:"rest_stop_radius"`
	FollowSpeed      float64 `yaml:"follow_speed"`
	ChaseSpeed       float64 `yaml:"chase_speed"`
	FleeSpeed        float64 `yaml:"flee_speed"`
	Damping          float64 `yaml:"damping"` // velocity retention per 1/60s tick
	SeparationRadius float64 `yaml:"separation_radius"`
	SeparationGain   float64 `yaml:"separation_gain"`
	ObserverRadius   float64 `yaml:"observer_radius"` // personal-space radius around the observer
	ObserverGain     float64 `yaml:"observer_gain"`
	WallGain         float64 `yaml:"wall_gain"`
}

// SocialConfig holds the proxemics coordinator parameters.
type SocialConfig struct {
	ScanInterval  int     `yaml:"scan_interval"`  // greet scan every N ticks
	GreetDist     float64 `yaml:"greet_dist"`     // planar greet distance
	GreetCooldown float64 `yaml:"greet_cooldown"` // seconds before a pair may greet again
	GreetMin      float64 `yaml:"greet_min"`      // greet duration range, seconds
	GreetMax      float64 `yaml:"greet_max"`
	ChaseRate     float64 `yaml:"chase_rate"` // per-second chase episode start probability
	ChaseMin      float64 `yaml:"chase_min"`  // episode duration range, seconds
	ChaseMax      float64 `yaml:"chase_max"`
}

// AffinityConfig holds the rub/pet overlay parameters.
type AffinityConfig struct {
	Increment  float64 `yaml:"increment"`   // affinity gained per registered pet
	DecayRate  float64 `yaml:"decay_rate"`  // affinity lost per second
	FlipWindow float64 `yaml:"flip_window"` // seconds in which 3 direction flips must land
	PulseAbove float64 `yaml:"pulse_above"` // affinity threshold for feedback pulses
	PulseMin   float64 `yaml:"pulse_min"`   // pulse interval range, seconds
	PulseMax   float64 `yaml:"pulse_max"`
}

// ObserverConfig drives the scripted observer walk in headless runs.
type ObserverConfig struct {
	OrbitRadius float64 `yaml:"orbit_radius"`
	OrbitPeriod float64 `yaml:"orbit_period"` // seconds per revolution
}

// TelemetryConfig holds stats and output settings.
type TelemetryConfig struct {
	StatsWindow      float64 `yaml:"stats_window"`      // seconds per stats window
	SnapshotInterval float64 `yaml:"snapshot_interval"` // seconds between pose CSV snapshots
}

// DerivedConfig holds values computed after loading.
type DerivedConfig struct {
	ScreenW32  float32
	ScreenH32  float32
	MinX, MaxX float32
	MinZ, MaxZ float32
	RestSpots  [][2]float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()
	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	c.Derived.MaxX = float32(c.World.HalfExtentX)
	c.Derived.MinX = -c.Derived.MaxX
	c.Derived.MaxZ = float32(c.World.HalfExtentZ)
	c.Derived.MinZ = -c.Derived.MaxZ

	c.Derived.RestSpots = make([][2]float32, 0, len(c.Population.RestSpots))
	for _, spot := range c.Population.RestSpots {
		if len(spot) != 2 {
			continue
		}
		c.Derived.RestSpots = append(c.Derived.RestSpots,
			[2]float32{float32(spot[0]), float32(spot[1])})
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
