package sim

import "github.com/bricksmash/bricksmash/internal/core"

// CollisionEvent records one ball-vs-collider hit within a tick.
type CollisionEvent struct {
	Collider EntityID
	Side     core.Side
}

// GameOverEvent signals hazard contact. Each event drained by the reset
// controller produces one full playfield reset.
type GameOverEvent struct{}

// Queue collects per-tick notifications. Producers append during the
// collision pass; consumers drain in pipeline order within the same tick;
// Clear runs at tick end so nothing leaks across ticks.
type Queue struct {
	collisions []CollisionEvent
	gameOvers  []GameOverEvent
}

// NewQueue creates an empty event queue.
func NewQueue() *Queue {
	return &Queue{}
}

// PushCollision appends a collision notification.
func (q *Queue) PushCollision(ev CollisionEvent) {
	q.collisions = append(q.collisions, ev)
}

// PushGameOver appends a game-over notification.
func (q *Queue) PushGameOver() {
	q.gameOvers = append(q.gameOvers, GameOverEvent{})
}

// Collisions returns the collision notifications accumulated this tick.
func (q *Queue) Collisions() []CollisionEvent {
	return q.collisions
}

// DrainGameOvers returns and clears the pending game-over notifications.
func (q *Queue) DrainGameOvers() []GameOverEvent {
	evs := q.gameOvers
	q.gameOvers = nil
	return evs
}

// Clear drops everything still queued. Called at the end of every tick.
func (q *Queue) Clear() {
	q.collisions = q.collisions[:0]
	q.gameOvers = nil
}
