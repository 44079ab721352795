package platform

import (
	"iter"
	errors "linked-containers/internal/platform/error"
	"linked-containers/internal/platform/helper"

	"github.com/sirupsen/logrus"
)

// LIFO is the push/pop surface shared by stacks.
type LIFO[T any] interface {
	Push(T)
	Pop() (T, error)
	IsEmpty() bool
}

// Stack is a singly linked LIFO container. It is not safe for concurrent use.
type Stack[T any] struct {
	id    string
	nodes arena[T]
	top   Handle
	count int
}

var _ LIFO[int] = (*Stack[int])(nil)

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{id: generateID(), top: Nil}
}

func (s *Stack[T]) ID() string {
	return s.id
}

func (s *Stack[T]) Count() int {
	return s.count
}

func (s *Stack[T]) IsEmpty() bool {
	return s.top == Nil
}

func (s *Stack[T]) log() *logrus.Entry {
	return helper.Log.WithField("container", s.id)
}

func (s *Stack[T]) Push(val T) {
	h := s.nodes.alloc(val)
	s.nodes.at(h).next = s.top
	s.top = h
	s.count++
	s.log().Tracef("push %v", val)
}

func (s *Stack[T]) Pop() (T, error) {
	if s.top == Nil {
		var zero T
		s.log().Debug("pop on empty stack")
		return zero, errors.NewEmptyContainerError(s.id)
	}
	h := s.top
	s.top = s.nodes.at(h).next
	s.count--
	return s.nodes.release(h), nil
}

func (s *Stack[T]) Peek() (T, error) {
	if s.top == Nil {
		var zero T
		return zero, errors.NewEmptyContainerError(s.id)
	}
	return s.nodes.at(s.top).val, nil
}

// CopyFrom replaces the contents of s with a deep copy of other, keeping the
// top to bottom order. The copy shares no node with other.
func (s *Stack[T]) CopyFrom(other *Stack[T]) {
	if s == other {
		return
	}
	s.Clear()

	last := Nil
	for val := range other.All() {
		h := s.nodes.alloc(val)
		if last == Nil {
			s.top = h
		} else {
			s.nodes.at(last).next = h
		}
		last = h
		s.count++
	}
	s.log().Debugf("copied %d nodes from %s", s.count, other.id)
}

func (s *Stack[T]) Clone() *Stack[T] {
	c := NewStack[T]()
	c.CopyFrom(s)
	return c
}

// All yields the values from top to bottom.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for h := s.top; h != Nil; h = s.nodes.at(h).next {
			if !yield(s.nodes.at(h).val) {
				return
			}
		}
	}
}

// Clear releases every node iteratively, top first.
func (s *Stack[T]) Clear() {
	for s.top != Nil {
		h := s.top
		s.top = s.nodes.at(h).next
		s.nodes.release(h)
	}
	s.nodes.reset()
	s.count = 0
}

func (s *Stack[T]) String() string {
	return helper.Join(s.All(), " ")
}
