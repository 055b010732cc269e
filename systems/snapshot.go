package systems

import "github.com/pawmark/garden/components"

// AgentState is one row of the per-tick read snapshot.
type AgentState struct {
	ID   uint32
	X, Z float32
	Yaw  float32
	Mode components.Mode
}

// Snapshot is the committed state of the previous tick. The game rebuilds
// it once per tick before any brain or integrator runs; every separation,
// social, and chase read goes through it so an agent processed first in
// iteration order never sees already-updated peers.
type Snapshot struct {
	Agents []AgentState
	index  map[uint32]int
}

// NewSnapshot creates an empty snapshot with capacity for n agents.
func NewSnapshot(n int) *Snapshot {
	return &Snapshot{
		Agents: make([]AgentState, 0, n),
		index:  make(map[uint32]int, n),
	}
}

// Reset clears the snapshot for reuse as the next write buffer.
func (s *Snapshot) Reset() {
	s.Agents = s.Agents[:0]
	for id := range s.index {
		delete(s.index, id)
	}
}

// Add appends an agent row.
func (s *Snapshot) Add(st AgentState) {
	s.index[st.ID] = len(s.Agents)
	s.Agents = append(s.Agents, st)
}

// Get returns the row for an agent id. Missing ids report ok=false;
// stale chase or partner references are treated as "no reference".
func (s *Snapshot) Get(id uint32) (AgentState, bool) {
	i, ok := s.index[id]
	if !ok {
		return AgentState{}, false
	}
	return s.Agents[i], true
}

// Len returns the number of agents in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.Agents)
}
