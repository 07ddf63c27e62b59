package domain

// Allocator hands out monotonically increasing ids for one entity kind.
// It replaces hidden per-type counters with an explicit value owned by
// the persistence layer and threaded through entity constructors.
type Allocator struct {
	next int64
}

// NewAllocator creates an allocator seeded to 1.
func NewAllocator() *Allocator {
	return &Allocator{next: 1}
}

// Next returns the next fresh id and advances the allocator.
func (a *Allocator) Next() int64 {
	id := a.next
	a.next++
	return id
}

// Observe advances the allocator past an id seen in loaded data, so
// future fresh ids never collide with it.
func (a *Allocator) Observe(id int64) {
	if id >= a.next {
		a.next = id + 1
	}
}

// Counters groups the per-kind allocators for one loaded document.
type Counters struct {
	Users    *Allocator
	Projects *Allocator
	Tasks    *Allocator
}

// NewCounters creates a fresh set of allocators, each seeded to 1.
func NewCounters() *Counters {
	return &Counters{
		Users:    NewAllocator(),
		Projects: NewAllocator(),
		Tasks:    NewAllocator(),
	}
}

// ObserveUser records the ids of a loaded user and everything it owns.
func (c *Counters) ObserveUser(u *User) {
	c.Users.Observe(u.ID)
	for _, p := range u.Projects {
		c.Projects.Observe(p.ID)
		for _, t := range p.Tasks {
			c.Tasks.Observe(t.ID)
		}
	}
}
