// Package sim implements the fixed-timestep simulation core: a tagged
// entity store, movement and collision systems, particle effects, score
// tracking and the pause/reset state machine. It performs no rendering,
// input reading or audio playback; those arrive through narrow interfaces
// from the platform layer.
package sim

import "github.com/bricksmash/bricksmash/internal/core"

// EntityID uniquely identifies a live entity. IDs are never reused within
// a single game instance.
type EntityID uint32

// Tag is a bitflag set describing an entity's roles. Systems select the
// entities they operate on by tag filter instead of by concrete type.
type Tag uint16

const (
	TagPaddle Tag = 1 << iota
	TagBall
	TagEnemy
	TagWall
	TagHazard
	TagParticle
	TagScoreboard
	TagCollider   // Participates in ball overlap tests
	TagResettable // Destroyed and recreated on game over
	TagVelocity   // Moved by the velocity integrator each tick

	// TagAny matches every entity.
	TagAny Tag = 0
)

// Has reports whether t contains every flag in want.
func (t Tag) Has(want Tag) bool {
	return t&want == want
}

// Entity is a single simulation object. Entities are plain records; which
// fields are meaningful depends on the tags (Text is only used by the
// scoreboard label, Age/Lifetime only by particles).
type Entity struct {
	ID    EntityID
	Name  string
	Tags  Tag
	Pos   core.Vec2 // Center position in world units
	Scale core.Vec2 // Full extents (width, height)
	Vel   core.Vec2 // World units per second
	Color core.Color

	Text     string  // Display text (scoreboard label)
	Age      float64 // Seconds since spawn (particles)
	Lifetime float64 // Seconds until expiry; 0 means immortal

	dead bool
}

// Store holds all live entities. It is written by exactly one logical
// thread of control per tick, so it carries no locks.
//
// Despawning marks the record dead and unlinks it immediately; the
// backing slice is compacted once per tick via Compact. This makes
// despawn-during-iteration safe for every system.
type Store struct {
	entities []*Entity
	index    map[EntityID]*Entity
	nextID   EntityID
}

// NewStore creates an empty entity store.
func NewStore() *Store {
	return &Store{
		entities: make([]*Entity, 0, 128),
		index:    make(map[EntityID]*Entity),
	}
}

// Spawn adds an entity to the store and returns its assigned ID.
func (s *Store) Spawn(e Entity) EntityID {
	s.nextID++
	e.ID = s.nextID
	e.dead = false

	ent := &e
	s.entities = append(s.entities, ent)
	s.index[e.ID] = ent
	return e.ID
}

// Despawn removes the entity with the given ID. Despawning an absent or
// already-despawned entity is a silent no-op; the return value reports
// whether anything was removed.
func (s *Store) Despawn(id EntityID) bool {
	ent, ok := s.index[id]
	if !ok {
		return false
	}
	ent.dead = true
	delete(s.index, id)
	return true
}

// Get returns the live entity with the given ID.
func (s *Store) Get(id EntityID) (*Entity, bool) {
	ent, ok := s.index[id]
	return ent, ok
}

// Each invokes fn for every live entity whose tags contain all of filter.
// Use TagAny to visit everything. Entities spawned during iteration are
// not visited this pass; entities despawned during iteration are skipped.
func (s *Store) Each(filter Tag, fn func(*Entity)) {
	snapshot := s.entities
	for _, ent := range snapshot {
		if ent.dead || !ent.Tags.Has(filter) {
			continue
		}
		fn(ent)
	}
}

// Count returns the number of live entities whose tags contain filter.
func (s *Store) Count(filter Tag) int {
	n := 0
	for _, ent := range s.entities {
		if !ent.dead && ent.Tags.Has(filter) {
			n++
		}
	}
	return n
}

// First returns the first live entity matching filter, or nil.
func (s *Store) First(filter Tag) *Entity {
	for _, ent := range s.entities {
		if !ent.dead && ent.Tags.Has(filter) {
			return ent
		}
	}
	return nil
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	n := 0
	for _, ent := range s.entities {
		if !ent.dead {
			n++
		}
	}
	return n
}

// Compact drops dead records from the backing slice. Called once at the
// end of every tick.
func (s *Store) Compact() {
	live := s.entities[:0]
	for _, ent := range s.entities {
		if !ent.dead {
			live = append(live, ent)
		}
	}
	for i := len(live); i < len(s.entities); i++ {
		s.entities[i] = nil
	}
	s.entities = live
}
