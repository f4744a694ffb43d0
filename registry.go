package uat

import "sort"

// registry is the agent store (C4): a slice-backed deque with a firstID
// offset, plus the sorted set of currently active ids. Slot i of agents
// corresponds to id firstID+i. Agents whose id has fallen out of active
// remain resident until every smaller id is also inactive (prefix
// eviction), matching the original's agents_private_status_fn.
type registry[R comparable] struct {
	firstID uint64
	agents  []Agent[R]
	active  []uint64
}

func newRegistry[R comparable]() *registry[R] {
	return &registry[R]{}
}

// insert appends a new agent, assigns it the next id, and marks it active.
func (reg *registry[R]) insert(a Agent[R]) uint64 {
	id := reg.firstID + uint64(len(reg.agents))
	reg.agents = append(reg.agents, a)
	reg.active = append(reg.active, id)
	return id
}

// at returns the agent for id. It panics if id is not resident, which is a
// programmer error (an id outside [firstID, firstID+len(agents)) can never
// arise from data driven purely by this registry's own bookkeeping).
func (reg *registry[R]) at(id uint64) Agent[R] {
	if id < reg.firstID {
		panic("uat: registry.at: id already evicted")
	}
	index := id - reg.firstID
	if index >= uint64(len(reg.agents)) {
		panic("uat: registry.at: id out of range")
	}
	return reg.agents[index]
}

// updateActive replaces the active set (already expected sorted ascending)
// and then advances firstID past any prefix of ids no longer active,
// reclaiming their slots.
func (reg *registry[R]) updateActive(newActive []uint64) {
	reg.active = newActive
	if len(reg.active) == 0 {
		return
	}

	front := reg.active[0]
	for reg.firstID < front {
		reg.firstID++
		reg.agents = reg.agents[1:]
	}
}

// activeCount reports len(active).
func (reg *registry[R]) activeCount() int { return len(reg.active) }

// ActiveIDs is a read-only view of the currently active agent ids, sorted
// ascending. Exposed to a configured StatusCallback via RegistryView.
func (reg *registry[R]) ActiveIDs() []uint64 {
	ids := make([]uint64, len(reg.active))
	copy(ids, reg.active)
	return ids
}

// isSorted reports whether ids is in ascending order. Nothing in the
// package calls it: the tick algorithm always builds keepActive by
// iterating active in order, so it is sorted by construction.
func isSorted(ids []uint64) bool {
	return sort.SliceIsSorted(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
