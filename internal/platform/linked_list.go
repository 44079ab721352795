package platform

import (
	"fmt"
	"iter"
	"linked-containers/internal/platform/datatype"
	errors "linked-containers/internal/platform/error"
	"linked-containers/internal/platform/helper"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type (
	EqFunc[T any]   func(a, b T) bool
	LessFunc[T any] func(a, b T) bool

	// LinkedList is a singly, circular or doubly linked list. It is not safe for
	// concurrent use, and mutating it while ranging over one of its iterators
	// is undefined.
	//
	// Insert keeps the list in non-decreasing order only as long as every value
	// was added through Insert. Append does not look at order.
	LinkedList[T any] struct {
		id       string
		topology Topology
		nodes    arena[T]
		head     Handle
		count    int
		less     LessFunc[T]
		equals   EqFunc[T]
	}

	// Link describes one node together with its neighbours' values.
	Link[T any] struct {
		Value   T
		Prev    T
		Next    T
		HasPrev bool
		HasNext bool
	}
)

// NewLinkedList panics if equals is nil. less may be nil, in which case Insert
// is unsupported.
func NewLinkedList[T any](topology Topology, less LessFunc[T], equals EqFunc[T]) *LinkedList[T] {
	if equals == nil {
		panic("linked list requires an equality function")
	}
	return &LinkedList[T]{
		id:       generateID(),
		topology: topology,
		head:     Nil,
		less:     less,
		equals:   equals,
	}
}

func NewScalarList[T datatype.Scalar](topology Topology) *LinkedList[T] {
	return NewLinkedList[T](topology, datatype.Less[T], datatype.Equal[T])
}

func generateID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

func (l *LinkedList[T]) ID() string {
	return l.id
}

func (l *LinkedList[T]) Topology() Topology {
	return l.topology
}

func (l *LinkedList[T]) Count() int {
	return l.count
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.head == Nil
}

func (l *LinkedList[T]) log() *logrus.Entry {
	return helper.Log.WithField("container", l.id)
}

func (l *LinkedList[T]) node(h Handle) *node[T] {
	return l.nodes.at(h)
}

// end reports whether a forward walk stops at h: Nil for singly and doubly
// lists, head again for circular ones.
func (l *LinkedList[T]) end(h Handle) bool {
	if l.topology == Circular {
		return h == l.head
	}
	return h == Nil
}

func (l *LinkedList[T]) tail() Handle {
	if l.head == Nil {
		return Nil
	}
	h := l.head
	for !l.end(l.node(h).next) {
		h = l.node(h).next
	}
	return h
}

// Append adds val after the current tail.
func (l *LinkedList[T]) Append(val T) {
	h := l.nodes.alloc(val)
	l.count++
	l.log().Tracef("append %v", val)

	if l.head == Nil {
		l.head = h
		if l.topology == Circular {
			l.node(h).next = h
		}
		return
	}

	tail := l.tail()
	l.node(tail).next = h
	switch l.topology {
	case Doubly:
		l.node(h).prev = tail
	case Circular:
		l.node(h).next = l.head
	}
}

// Insert adds val before the first node whose value is not less than val,
// looking one node ahead so only the current node's link has to change.
func (l *LinkedList[T]) Insert(val T) error {
	if l.less == nil {
		return errors.NewUnsupportedOperationError("ordered insert without a less function", l.topology)
	}

	h := l.nodes.alloc(val)
	l.count++
	l.log().Tracef("insert %v", val)

	if l.head == Nil {
		l.head = h
		if l.topology == Circular {
			l.node(h).next = h
		}
		return nil
	}

	cur := l.head
	for {
		next := l.node(cur).next
		if l.end(next) || !l.less(l.node(next).val, val) {
			break
		}
		cur = next
	}

	if cur == l.head && l.less(val, l.node(cur).val) {
		l.pushFront(h)
		return nil
	}

	next := l.node(cur).next
	l.node(h).next = next
	l.node(cur).next = h
	if l.topology == Doubly {
		l.node(h).prev = cur
		if next != Nil {
			l.node(next).prev = h
		}
	}
	return nil
}

func (l *LinkedList[T]) pushFront(h Handle) {
	switch l.topology {
	case Circular:
		l.node(l.tail()).next = h
	case Doubly:
		l.node(l.head).prev = h
	}
	l.node(h).next = l.head
	l.head = h
}

// Remove deletes the first node equal to val and reports whether one was found.
// A miss leaves the list untouched.
func (l *LinkedList[T]) Remove(val T) bool {
	if l.head == Nil {
		return false
	}
	if l.topology == Doubly {
		return l.removeDoubly(val)
	}

	prev, cur := Nil, l.head
	for !l.equals(l.node(cur).val, val) {
		next := l.node(cur).next
		if l.end(next) {
			l.log().Debugf("remove %v: not found", val)
			return false
		}
		prev, cur = cur, next
	}

	next := l.node(cur).next
	switch {
	case prev != Nil:
		l.node(prev).next = next
	case l.topology == Circular && next == cur:
		l.head = Nil
	case l.topology == Circular:
		l.node(l.tail()).next = next
		l.head = next
	default:
		l.head = next
	}

	l.nodes.release(cur)
	l.count--
	l.log().Tracef("remove %v", val)
	return true
}

func (l *LinkedList[T]) removeDoubly(val T) bool {
	cur := l.head
	for cur != Nil && !l.equals(l.node(cur).val, val) {
		cur = l.node(cur).next
	}
	if cur == Nil {
		l.log().Debugf("remove %v: not found", val)
		return false
	}

	n := l.node(cur)
	if n.prev != Nil {
		l.node(n.prev).next = n.next
	} else {
		l.head = n.next
	}
	if n.next != Nil {
		l.node(n.next).prev = n.prev
	}

	l.nodes.release(cur)
	l.count--
	l.log().Tracef("remove %v", val)
	return true
}

// Find returns the index of the first value equal to val.
func (l *LinkedList[T]) Find(val T) (int, error) {
	idx := 0
	for v := range l.All() {
		if l.equals(v, val) {
			return idx, nil
		}
		idx++
	}
	return -1, errors.NewItemNotFoundError(l.id, val)
}

func (l *LinkedList[T]) Contains(val T) bool {
	_, err := l.Find(val)
	return err == nil
}

func (l *LinkedList[T]) Get(idx int) (T, error) {
	if idx < 0 || idx >= l.count {
		var zero T
		return zero, errors.NewIndexOutOfRangeError(l.id, idx, l.count)
	}
	h := l.head
	for ; idx > 0; idx-- {
		h = l.node(h).next
	}
	return l.node(h).val, nil
}

// All yields the values from head to tail. A circular list is walked once.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.head == Nil {
			return
		}
		for h := l.head; ; {
			if !yield(l.node(h).val) {
				return
			}
			h = l.node(h).next
			if l.end(h) {
				return
			}
		}
	}
}

// Backward yields the values from tail to head. Singly linked lists have no
// predecessor links, so each step rescans from head and the walk is quadratic.
// Circular lists are not supported.
func (l *LinkedList[T]) Backward() (iter.Seq[T], error) {
	switch l.topology {
	case Singly:
		return l.backwardSingly, nil
	case Doubly:
		return l.backwardDoubly, nil
	default:
		return nil, errors.NewUnsupportedOperationError("reverse traversal", l.topology)
	}
}

func (l *LinkedList[T]) backwardSingly(yield func(T) bool) {
	last := Nil
	for last != l.head {
		cur := l.head
		for l.node(cur).next != last {
			cur = l.node(cur).next
		}
		if !yield(l.node(cur).val) {
			return
		}
		last = cur
	}
}

func (l *LinkedList[T]) backwardDoubly(yield func(T) bool) {
	for h := l.tail(); h != Nil; h = l.node(h).prev {
		if !yield(l.node(h).val) {
			return
		}
	}
}

// Links yields every node from head to tail along with its neighbours. Prev is
// only known for doubly linked lists; the tail of a circular list reports head
// as its next value.
func (l *LinkedList[T]) Links() iter.Seq[Link[T]] {
	return func(yield func(Link[T]) bool) {
		if l.head == Nil {
			return
		}
		for h := l.head; ; {
			n := l.node(h)
			link := Link[T]{Value: n.val}
			if n.prev != Nil {
				link.Prev, link.HasPrev = l.node(n.prev).val, true
			}
			if n.next != Nil {
				link.Next, link.HasNext = l.node(n.next).val, true
			}
			if !yield(link) {
				return
			}
			h = n.next
			if l.end(h) {
				return
			}
		}
	}
}

func (l *LinkedList[T]) Values() []T {
	values := make([]T, 0, l.count)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

// Clear releases every node, walking forward once.
func (l *LinkedList[T]) Clear() {
	released := 0
	for h := l.head; h != Nil; {
		next := l.node(h).next
		if l.end(next) {
			next = Nil
		}
		l.nodes.release(h)
		released++
		h = next
	}
	l.nodes.reset()
	l.head = Nil
	l.count = 0
	l.log().Debugf("cleared %d nodes", released)
}

func (l *LinkedList[T]) String() string {
	return helper.Join(l.All(), " ")
}

func (k Link[T]) String() string {
	prev, next := " ", " "
	if k.HasPrev {
		prev = fmt.Sprint(k.Prev)
	}
	if k.HasNext {
		next = fmt.Sprint(k.Next)
	}
	return fmt.Sprintf("[%s|%v|%s]", prev, k.Value, next)
}
