package sim

import "github.com/bricksmash/bricksmash/internal/core"

// SpawnParticles creates a destruction burst around center: between
// MinCount and MaxCount squares (inclusive), each offset uniformly within
// the configured spread, each carrying a one-shot expiry timer. Draw
// order is fixed: count first, then per particle an x offset then a y
// offset, so a given RNG state always yields the same burst.
func SpawnParticles(w *World, center core.Vec2) {
	p := w.cfg.Particles
	count := p.MinCount + w.rng.Intn(p.MaxCount-p.MinCount+1)
	lifetime := float64(p.LifetimeMS) / 1000.0

	for i := 0; i < count; i++ {
		dx := w.rng.Range(-p.SpreadX, p.SpreadX)
		dy := w.rng.Range(-p.SpreadY, p.SpreadY)
		w.store.Spawn(Entity{
			Name:     "Particle",
			Tags:     TagParticle | TagResettable,
			Pos:      core.Vec2{X: center.X + dx, Y: center.Y + dy},
			Scale:    core.Vec2{X: p.Size, Y: p.Size},
			Color:    core.ColorYellow,
			Lifetime: lifetime,
		})
	}
}

// UpdateParticles ages every particle by dt, despawns the expired and
// grows each survivor by the configured per-axis increment. Expiry is
// checked before growth, so a particle expiring this tick never grows.
func UpdateParticles(w *World, dt float64) {
	p := w.cfg.Particles
	w.store.Each(TagParticle, func(e *Entity) {
		e.Age += dt
		if e.Age >= e.Lifetime {
			w.store.Despawn(e.ID)
			return
		}
		e.Scale.X += p.Growth
		e.Scale.Y += p.Growth
	})
}
