package linkedlist

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOutOfRange      = errors.New("index out of range")
	ErrEmptyCollection = errors.New("collection is empty")
)

// List is a positional list. Operations address elements by their 0-based index
// and never hand out nodes, only values.
type List[T comparable] interface {
	// Append inserts the element as the new tail.
	//
	// O(1)
	Append(element T)

	// Prepend inserts the element as the new head.
	//
	// O(1)
	Prepend(element T)

	// InsertAt inserts the element so that it ends up at the given index,
	// shifting the former element at index and everything after it one position later.
	// Valid range is 0 <= index <= Size(), otherwise returns ErrOutOfRange.
	//
	// O(1) at both ends, O(n) otherwise
	InsertAt(index int, element T) error

	// Set replaces the value at index and returns the replaced one.
	// Valid range is 0 <= index < Size(), otherwise returns ErrOutOfRange.
	//
	// O(1) at both ends, O(n) otherwise
	Set(index int, element T) (T, error)

	// Get returns the value at index.
	// Valid range is 0 <= index < Size(), otherwise returns ErrOutOfRange.
	//
	// O(1) at both ends, O(n) otherwise
	Get(index int) (T, error)

	// First returns the head value, or ErrEmptyCollection.
	//
	// O(1)
	First() (T, error)

	// Last returns the tail value, or ErrEmptyCollection.
	//
	// O(1)
	Last() (T, error)

	// RemoveAt removes the element at index and returns its value.
	// Valid range is 0 <= index < Size(), otherwise returns ErrOutOfRange.
	//
	// O(1) at both ends, O(n) otherwise
	RemoveAt(index int) (T, error)

	// Contains reports whether any element equals the given one.
	//
	// O(n)
	Contains(element T) bool

	// IsEmpty reports whether the list has no elements.
	//
	// O(1)
	IsEmpty() bool

	// Size returns the number of elements.
	//
	// O(1)
	Size() int

	// Clear removes all elements.
	//
	// O(n)
	Clear()

	// Values returns the elements in order as a new slice.
	//
	// O(n)
	Values() []T
}

// node is a single link of the chain.
// next is the owning link, prev only points back to the owner of this node.
type node[T comparable] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

// untie detaches the node from its neighbours and clears its own links.
// head and tail bookkeeping is left to the list.
func (n *node[T]) untie() {
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.prev = nil
	n.next = nil
}

// DoublyLinkedList is a List backed by a chain of nodes with direct head and tail access.
// It is not safe for concurrent use.
type DoublyLinkedList[T comparable] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New creates a list holding the given elements in order.
func New[T comparable](elements ...T) *DoublyLinkedList[T] {
	l := &DoublyLinkedList[T]{}
	for _, element := range elements {
		l.Append(element)
	}
	return l
}

// From creates a list holding the values of the slice in order.
func From[T comparable](values []T) *DoublyLinkedList[T] {
	return New(values...)
}

// Append inserts the element as the new tail.
//
// O(1)
func (l *DoublyLinkedList[T]) Append(element T) {
	n := &node[T]{value: element, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// Prepend inserts the element as the new head.
//
// O(1)
func (l *DoublyLinkedList[T]) Prepend(element T) {
	n := &node[T]{value: element, next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.size++
}

// InsertAt splices a new node right before the node currently at index.
//
// O(1) at both ends, O(n) otherwise
func (l *DoublyLinkedList[T]) InsertAt(index int, element T) error {
	if index < 0 || index > l.size {
		return l.outOfRange(index)
	}

	switch index {
	case l.size:
		l.Append(element)
	case 0:
		l.Prepend(element)
	default:
		at := l.nodeAt(index)
		n := &node[T]{value: element, prev: at.prev, next: at}
		at.prev.next = n
		at.prev = n
		l.size++
	}
	return nil
}

// Set replaces the value at index and returns the replaced one.
//
// O(1) at both ends, O(n) otherwise
func (l *DoublyLinkedList[T]) Set(index int, element T) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zeroVal T
		return zeroVal, err
	}

	n := l.nodeAt(index)
	previous := n.value
	n.value = element
	return previous, nil
}

// Get returns the value at index.
//
// O(1) at both ends, O(n) otherwise
func (l *DoublyLinkedList[T]) Get(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zeroVal T
		return zeroVal, err
	}
	return l.nodeAt(index).value, nil
}

// First returns the head value.
//
// O(1)
func (l *DoublyLinkedList[T]) First() (T, error) {
	if l.head == nil {
		var zeroVal T
		return zeroVal, ErrEmptyCollection
	}
	return l.head.value, nil
}

// Last returns the tail value.
//
// O(1)
func (l *DoublyLinkedList[T]) Last() (T, error) {
	if l.tail == nil {
		var zeroVal T
		return zeroVal, ErrEmptyCollection
	}
	return l.tail.value, nil
}

// RemoveAt unlinks the node at index and returns its value.
// Removing the only element leaves the list empty.
//
// O(1) at both ends, O(n) otherwise
func (l *DoublyLinkedList[T]) RemoveAt(index int) (T, error) {
	if err := l.checkIndex(index); err != nil {
		var zeroVal T
		return zeroVal, err
	}

	n := l.nodeAt(index)
	if n == l.head {
		l.head = n.next
	}
	if n == l.tail {
		l.tail = n.prev
	}
	n.untie()
	l.size--
	return n.value, nil
}

// Contains reports whether any element equals the given one.
//
// O(n)
func (l *DoublyLinkedList[T]) Contains(element T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == element {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the list has no elements.
//
// O(1)
func (l *DoublyLinkedList[T]) IsEmpty() bool {
	return l.size == 0
}

// Size returns the number of elements.
//
// O(1)
func (l *DoublyLinkedList[T]) Size() int {
	return l.size
}

// Clear unlinks every node and resets the list to the empty state.
//
// O(n)
func (l *DoublyLinkedList[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.prev = nil
		n.next = nil
		n = next
	}
	l.head = nil
	l.tail = nil
	l.size = 0
}

// Values returns the elements in order as a new slice.
//
// O(n)
func (l *DoublyLinkedList[T]) Values() []T {
	values := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// String formats the list as [v0 v1 ...].
func (l *DoublyLinkedList[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, n.value)
	}
	b.WriteByte(']')
	return b.String()
}

// nodeAt walks to the node at a valid index from whichever end is closer.
func (l *DoublyLinkedList[T]) nodeAt(index int) *node[T] {
	if index < l.size/2 {
		n := l.head
		for i := 0; i < index; i++ {
			n = n.next
		}
		return n
	}

	n := l.tail
	for i := l.size - 1; i > index; i-- {
		n = n.prev
	}
	return n
}

// checkIndex validates an index that must address an existing element.
func (l *DoublyLinkedList[T]) checkIndex(index int) error {
	if index < 0 || index >= l.size {
		return l.outOfRange(index)
	}
	return nil
}

func (l *DoublyLinkedList[T]) outOfRange(index int) error {
	return fmt.Errorf("index %d, size %d: %w", index, l.size, ErrOutOfRange)
}
