package sim

import "github.com/bricksmash/bricksmash/internal/core"

// CheckCollisions tests the ball against every collider in store order
// and applies the consequences in place: a collision notification per
// overlap, destruction plus scoring plus a particle burst for enemies, a
// game-over notification for the hazard, and a conditional velocity
// reflection per struck side.
//
// Each overlap is processed independently. Two colliders struck in the
// same tick can both flip the same axis, restoring the original heading.
func CheckCollisions(w *World) {
	ball := w.store.First(TagBall)
	if ball == nil {
		return
	}

	w.store.Each(TagCollider, func(col *Entity) {
		side := core.Collide(ball.Pos, ball.Scale, col.Pos, col.Scale)
		if side == core.SideNone {
			return
		}

		w.events.PushCollision(CollisionEvent{Collider: col.ID, Side: side})

		if col.Tags.Has(TagEnemy) {
			w.AddScore(w.cfg.Scoring.EnemyPoints)
			SpawnParticles(w, col.Pos)
			w.store.Despawn(col.ID)
			if w.audio.Play != nil {
				w.audio.Play(CueEnemyDestroy)
			}
		}

		if col.Tags.Has(TagHazard) {
			w.events.PushGameOver()
		}

		reflect(ball, side)
	})
}

// reflect flips the ball's velocity on the axis named by the struck side,
// but only when the ball is actually traveling into that side. A ball
// already moving away keeps its heading. Sides are named from the struck
// box's perspective: SideLeft means the ball hit the box's left face.
func reflect(ball *Entity, side core.Side) {
	reflectX := false
	reflectY := false

	switch side {
	case core.SideLeft:
		reflectX = ball.Vel.X > 0
	case core.SideRight:
		reflectX = ball.Vel.X < 0
	case core.SideTop:
		reflectY = ball.Vel.Y < 0
	case core.SideBottom:
		reflectY = ball.Vel.Y > 0
	case core.SideInside:
		// Fully enclosed; no sensible normal, leave the velocity alone.
	}

	if reflectX {
		ball.Vel.X = -ball.Vel.X
	}
	if reflectY {
		ball.Vel.Y = -ball.Vel.Y
	}
}
