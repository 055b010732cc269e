// Package species defines the closed set of companion species and their
// capability records.
package species

// Kind identifies a companion species.
type Kind uint8

const (
	Unknown Kind = iota
	Moss         // slow walker, common
	Fluff        // quick walker, common
	Ember        // walker, high-tier feedback
	Wisp         // hovers above the ground
	Prism        // hovers, high-tier feedback
)

// Capabilities is the per-species record resolved once at agent creation.
// SpeedScale multiplies the per-mode base speeds; Hovers selects the
// sinusoidal height offset in the viewer; HighTier only scales feedback
// intensity, never movement.
type Capabilities struct {
	SpeedScale float32
	Hovers     bool
	HighTier   bool
}

var capTable = map[Kind]Capabilities{
	Moss:  {SpeedScale: 1.00},
	Fluff: {SpeedScale: 1.12},
	Ember: {SpeedScale: 1.05, HighTier: true},
	Wisp:  {SpeedScale: 0.95, Hovers: true},
	Prism: {SpeedScale: 1.08, Hovers: true, HighTier: true},
}

// Default is the fallback record for unknown kinds.
var Default = Capabilities{SpeedScale: 1.0}

// Caps returns the capability record for a kind, falling back to Default
// for anything outside the closed set.
func Caps(k Kind) Capabilities {
	if c, ok := capTable[k]; ok {
		return c
	}
	return Default
}

// All lists the valid species kinds, for spawning.
var All = []Kind{Moss, Fluff, Ember, Wisp, Prism}

// String returns the species name.
func (k Kind) String() string {
	switch k {
	case Moss:
		return "moss"
	case Fluff:
		return "fluff"
	case Ember:
		return "ember"
	case Wisp:
		return "wisp"
	case Prism:
		return "prism"
	default:
		return "unknown"
	}
}
