package list

import (
	"errors"
	"fmt"
)

var ErrNegativeLength = errors.New("list length must not be negative")

// Node holds one value and owns the rest of the list.
type Node struct {
	value int
	tail  *Node
}

func (n *Node) Value() int {
	return n.value
}

func (n *Node) Tail() *Node {
	return n.tail
}

// List is a handle on an optional head node. The zero value is empty.
type List struct {
	head *Node
}

// Construct builds a list of n nodes holding start, start+1, ..., start+n-1.
func Construct(n, start int) (*List, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	return &List{head: construct(n, start)}, nil
}

// MustConstruct is like Construct but panics on a negative length.
func MustConstruct(n, start int) *List {
	l, err := Construct(n, start)
	if err != nil {
		panic(err)
	}
	return l
}

func construct(n, start int) *Node {
	if n == 0 {
		return nil
	}
	return &Node{value: start, tail: construct(n-1, start+1)}
}

func (l *List) Head() *Node {
	if l == nil {
		return nil
	}
	return l.head
}

func (l *List) IsEmpty() bool {
	return l.Head() == nil
}

func (l *List) Len() int {
	count := 0
	for n := l.Head(); n != nil; n = n.tail {
		count++
	}
	return count
}

// Values returns the values from head to tail in a new slice.
func (l *List) Values() []int {
	values := make([]int, 0, l.Len())
	for n := l.Head(); n != nil; n = n.tail {
		values = append(values, n.value)
	}
	return values
}

// Clone returns a deep copy sharing no nodes with l.
func (l *List) Clone() *List {
	clone := &List{}
	last := &clone.head
	for n := l.Head(); n != nil; n = n.tail {
		*last = &Node{value: n.value}
		last = &(*last).tail
	}
	return clone
}

func (l *List) String() string {
	return Render(l)
}
