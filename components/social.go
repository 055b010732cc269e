package components

// Social is the greet assignment written by the proxemics coordinator.
// Agents only ever read it; the coordinator owns every write.
type Social struct {
	Active             bool
	Until              float64 // sim time the greet ends
	PartnerID          uint32
	PartnerX, PartnerZ float32
	FaceYaw            float32 // bearing from self to partner at greet time
}

// Affinity is the decaying fondness scalar driven by the rub overlay.
// It decays in every mode, including Held.
type Affinity struct {
	Value     float32 // [0, 1]
	NextPulse float64 // sim time of the next feedback pulse while above threshold
}
