package ecs

// entityPool allocates slots with generational indices and a free list.
// Generation increments on release so every id handed out earlier goes stale.
type entityPool struct {
	shard       uint8
	generations []uint32 // index 0 is reserved
	alive       []bool
	freeList    []uint32
}

func newEntityPool(shard uint8) *entityPool {
	return &entityPool{
		shard:       shard,
		generations: make([]uint32, 1, 256),
		alive:       make([]bool, 1, 256),
		freeList:    make([]uint32, 0, 64),
	}
}

func (p *entityPool) create() EntityID {
	if n := len(p.freeList); n > 0 {
		idx := p.freeList[n-1]
		p.freeList = p.freeList[:n-1]
		p.alive[idx] = true
		return PackEntityID(p.shard, p.generations[idx], idx)
	}
	idx := uint32(len(p.generations))
	p.generations = append(p.generations, 0)
	p.alive = append(p.alive, true)
	return PackEntityID(p.shard, 0, idx)
}

func (p *entityPool) isAlive(id EntityID) bool {
	if id.IsNil() || id.Shard() != p.shard {
		return false
	}
	idx := id.Index()
	if idx == 0 || int(idx) >= len(p.generations) {
		return false
	}
	return p.alive[idx] && p.generations[idx] == id.Generation()
}

// release invalidates id. Returns false for stale or foreign ids.
func (p *entityPool) release(id EntityID) bool {
	if !p.isAlive(id) {
		return false
	}
	idx := id.Index()
	p.alive[idx] = false
	p.generations[idx] = (p.generations[idx] + 1) & maskGen
	p.freeList = append(p.freeList, idx)
	return true
}

func (p *entityPool) count() int {
	return len(p.generations) - 1 - len(p.freeList)
}
