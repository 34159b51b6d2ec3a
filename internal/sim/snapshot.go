package sim

import (
	"math"
	"sort"
)

// Snapshot contains the complete simulation state for replay and
// determinism testing. Uses primitive types only for stable
// serialization; float coordinates are captured as raw IEEE 754 bits so
// hashing is exact, not approximate.
type Snapshot struct {
	Tick  uint64
	Score int
	Phase int

	EnemiesRemaining int
	ParticleCount    int

	// Entity state flattened in ID order (each entity is 8 words:
	// ID, Tags, PosX, PosY, ScaleX, ScaleY, VelX, VelY; coordinates as
	// float bits).
	EntityCount int
	EntityData  []uint64

	// RNG state for the particle subsystem
	RNGState uint64
}

// Snapshot returns the current simulation state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world

	var ents []*Entity
	w.store.Each(TagAny, func(e *Entity) {
		ents = append(ents, e)
	})
	sort.Slice(ents, func(i, j int) bool { return ents[i].ID < ents[j].ID })

	data := make([]uint64, 0, len(ents)*8)
	for _, e := range ents {
		data = append(data,
			uint64(e.ID),
			uint64(e.Tags),
			math.Float64bits(e.Pos.X),
			math.Float64bits(e.Pos.Y),
			math.Float64bits(e.Scale.X),
			math.Float64bits(e.Scale.Y),
			math.Float64bits(e.Vel.X),
			math.Float64bits(e.Vel.Y),
		)
	}

	return Snapshot{
		Tick:  uint64(g.tick), //#nosec G115 -- tick count is always positive
		Score: w.score,
		Phase: int(w.phase),

		EnemiesRemaining: w.store.Count(TagEnemy),
		ParticleCount:    w.store.Count(TagParticle),

		EntityCount: len(ents),
		EntityData:  data,

		RNGState: w.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemiesRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ParticleCount)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EntityCount)      //#nosec G115 -- hash computation

	for _, v := range snap.EntityData {
		h = h*31 + v
	}

	h = h*31 + snap.RNGState

	return h
}
