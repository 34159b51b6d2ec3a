package sim

import "github.com/bricksmash/bricksmash/internal/core"

// MovePaddle applies held directional input to the paddle: direction
// times speed times dt, then a clamp that keeps the paddle fully inside
// the walls with the configured extra padding. Opposing holds cancel.
func MovePaddle(w *World, in core.InputFrame, dt float64) {
	paddle := w.store.First(TagPaddle)
	if paddle == nil {
		return
	}

	dir := 0.0
	if in.Held(core.ActionLeft) {
		dir -= 1.0
	}
	if in.Held(core.ActionRight) {
		dir += 1.0
	}

	a := w.cfg.Arena
	p := w.cfg.Paddle
	lo := a.LeftWall + a.WallThickness/2 + paddle.Scale.X/2 + p.Padding
	hi := a.RightWall - a.WallThickness/2 - paddle.Scale.X/2 - p.Padding

	x := paddle.Pos.X + dir*p.Speed*dt
	paddle.Pos.X = core.ClampF(x, lo, hi)
}

// MoveBodies advances every velocity-driven entity by vel*dt. Straight
// Euler integration; the collision pass afterwards corrects direction,
// never position.
func MoveBodies(w *World, dt float64) {
	w.store.Each(TagVelocity, func(e *Entity) {
		e.Pos = e.Pos.Add(e.Vel.Scale(dt))
	})
}
