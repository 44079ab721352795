package platform

import "fmt"

// Handle addresses a node slot inside the arena of the container that owns it.
type Handle int32

const Nil Handle = -1

type node[T any] struct {
	val T
	// next owns the successor, except for the tail of a circular list where it
	// points back to head without owning it.
	next Handle
	// prev never owns. Only doubly linked lists set it.
	prev Handle
	live bool
}

// arena is the node storage of a single container. Slots released by release
// are reused by later allocations. Pointers returned by at are invalidated by
// the next alloc.
type arena[T any] struct {
	nodes []node[T]
	free  []Handle
	live  int
}

func (a *arena[T]) alloc(val T) Handle {
	n := node[T]{val: val, next: Nil, prev: Nil, live: true}
	a.live++
	if len(a.free) > 0 {
		h := a.free[len(a.free)-1]
		a.free = a.free[:len(a.free)-1]
		a.nodes[h] = n
		return h
	}
	a.nodes = append(a.nodes, n)
	return Handle(len(a.nodes) - 1)
}

func (a *arena[T]) at(h Handle) *node[T] {
	return &a.nodes[h]
}

// release frees the slot of h. Releasing a slot that is not live is a double
// free and panics.
func (a *arena[T]) release(h Handle) T {
	n := a.at(h)
	if !n.live {
		panic(fmt.Sprintf("node %d released twice", h))
	}
	val := n.val
	*n = node[T]{next: Nil, prev: Nil}
	a.free = append(a.free, h)
	a.live--
	return val
}

// reset drops the backing storage. Only valid once every node is released.
func (a *arena[T]) reset() {
	if a.live != 0 {
		panic(fmt.Sprintf("arena reset with %d live nodes", a.live))
	}
	a.nodes = nil
	a.free = nil
}
