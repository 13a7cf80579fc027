package domain

const (
	DefaultRegistryCapacity = 100

	headIndex = 0
	tailIndex = 1
	noIndex   = -1
)

type registryNode struct {
	id       ClientID
	prev     int
	next     int
	sentinel bool
}

// Registry is the server's ordered set of connected clients.
//
// Entries live in an arena of nodes linked in insertion order between two
// permanent sentinels (head and tail). A map from id to arena slot gives
// constant-time membership; removed slots are recycled.
type Registry struct {
	nodes    []registryNode
	index    map[ClientID]int
	freed    []int
	capacity int
}

func NewRegistry(capacity int) *Registry {
	if capacity <= 0 {
		capacity = DefaultRegistryCapacity
	}

	r := &Registry{
		nodes:    make([]registryNode, 2, capacity+2),
		index:    make(map[ClientID]int, capacity),
		capacity: capacity,
	}
	r.nodes[headIndex] = registryNode{prev: noIndex, next: tailIndex, sentinel: true}
	r.nodes[tailIndex] = registryNode{prev: headIndex, next: noIndex, sentinel: true}

	return r
}

func (r *Registry) Len() int {
	return len(r.index)
}

func (r *Registry) Cap() int {
	return r.capacity
}

func (r *Registry) Full() bool {
	return len(r.index) >= r.capacity
}

func (r *Registry) Contains(id ClientID) bool {
	_, ok := r.index[id]
	return ok
}

// Insert appends id at the back. Capacity is not enforced here; callers
// check Full first.
func (r *Registry) Insert(id ClientID) error {
	if r.Contains(id) {
		return ErrClientExists
	}

	slot := r.allocate(id)
	last := r.nodes[tailIndex].prev

	r.nodes[slot].prev = last
	r.nodes[slot].next = tailIndex
	r.nodes[last].next = slot
	r.nodes[tailIndex].prev = slot
	r.index[id] = slot

	return nil
}

func (r *Registry) Remove(id ClientID) error {
	slot, ok := r.index[id]
	if !ok {
		return ErrClientNotRegistered
	}

	r.unlink(slot)
	return nil
}

func (r *Registry) RemoveElement(e Element) error {
	if e.registry != r {
		return ErrClientNotRegistered
	}
	if e.Sentinel() {
		return ErrSentinel
	}

	return r.Remove(e.ID())
}

// Front returns the first entry, or the tail sentinel when empty.
func (r *Registry) Front() Element {
	return Element{registry: r, slot: r.nodes[headIndex].next}
}

// Back returns the last entry, or the head sentinel when empty.
func (r *Registry) Back() Element {
	return Element{registry: r, slot: r.nodes[tailIndex].prev}
}

// IDs returns a snapshot of the registered ids in insertion order.
func (r *Registry) IDs() []ClientID {
	ids := make([]ClientID, 0, len(r.index))
	for e := r.Front(); !e.Sentinel(); e = e.Next() {
		ids = append(ids, e.ID())
	}

	return ids
}

func (r *Registry) allocate(id ClientID) int {
	node := registryNode{id: id}

	if n := len(r.freed); n > 0 {
		slot := r.freed[n-1]
		r.freed = r.freed[:n-1]
		r.nodes[slot] = node
		return slot
	}

	r.nodes = append(r.nodes, node)
	return len(r.nodes) - 1
}

func (r *Registry) unlink(slot int) {
	node := r.nodes[slot]

	r.nodes[node.prev].next = node.next
	r.nodes[node.next].prev = node.prev
	r.nodes[slot] = registryNode{prev: noIndex, next: noIndex}

	delete(r.index, node.id)
	r.freed = append(r.freed, slot)
}

// Element is a position in a Registry. Elements obtained before a removal
// must not be used afterwards.
type Element struct {
	registry *Registry
	slot     int
}

func (e Element) Sentinel() bool {
	return e.registry == nil || e.registry.nodes[e.slot].sentinel
}

func (e Element) ID() ClientID {
	if e.Sentinel() {
		return 0
	}

	return e.registry.nodes[e.slot].id
}

// Next returns the following element. Stepping past the tail returns the
// tail again.
func (e Element) Next() Element {
	if e.registry == nil || e.slot == tailIndex {
		return e
	}

	return Element{registry: e.registry, slot: e.registry.nodes[e.slot].next}
}

// Prev returns the preceding element. Stepping before the head returns the
// head again.
func (e Element) Prev() Element {
	if e.registry == nil || e.slot == headIndex {
		return e
	}

	return Element{registry: e.registry, slot: e.registry.nodes[e.slot].prev}
}
