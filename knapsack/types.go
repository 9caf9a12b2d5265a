// Package knapsack defines the data model shared by all solvers.
package knapsack

import (
	"fmt"
	"strings"
)

// Item is an indivisible (weight, value) pair.
// Items are compared structurally; the zero Item weighs nothing and is worth nothing.
type Item struct {
	Weight uint64
	Value  uint64
}

// NewItem returns an Item with the given weight and value.
func NewItem(weight, value uint64) Item {
	return Item{Weight: weight, Value: value}
}

// String renders the item as "(w=…, v=…)".
func (it Item) String() string {
	return fmt.Sprintf("(w=%d, v=%d)", it.Weight, it.Value)
}

// Knapsack is an immutable 0/1 knapsack instance: a capacity and an ordered item list.
//
// The order of items is stable and only used for indexing; it carries no
// meaning for the optimization. A *Knapsack is never mutated after
// NewKnapsack returns, so it can be shared across goroutines without locking.
type Knapsack struct {
	capacity uint64
	items    []Item
}

// NewKnapsack builds a Knapsack from capacity and items.
// The items slice is copied; later changes by the caller are not observed.
//
// Complexity: O(n) time and memory.
func NewKnapsack(capacity uint64, items []Item) *Knapsack {
	cp := make([]Item, len(items))
	copy(cp, items)

	return &Knapsack{capacity: capacity, items: cp}
}

// Capacity returns the weight limit W.
func (k *Knapsack) Capacity() uint64 { return k.capacity }

// Len returns the number of items.
func (k *Knapsack) Len() int { return len(k.items) }

// Item returns the i-th item. It panics if i is out of range, like a slice index.
func (k *Knapsack) Item(i int) Item { return k.items[i] }

// Items returns a copy of the item list.
func (k *Knapsack) Items() []Item {
	cp := make([]Item, len(k.items))
	copy(cp, k.items)

	return cp
}

// TotalWeight returns Σweight over all items.
func (k *Knapsack) TotalWeight() uint64 {
	var (
		sum uint64
		it  Item
	)
	for _, it = range k.items {
		sum += it.Weight
	}

	return sum
}

// TotalValue returns Σvalue over all items.
func (k *Knapsack) TotalValue() uint64 {
	var (
		sum uint64
		it  Item
	)
	for _, it = range k.items {
		sum += it.Value
	}

	return sum
}

// MaxValue returns the largest single item value, or 0 for an empty knapsack.
func (k *Knapsack) MaxValue() uint64 {
	var (
		best uint64
		it   Item
	)
	for _, it = range k.items {
		if it.Value > best {
			best = it.Value
		}
	}

	return best
}

// String renders the knapsack as "Knapsack{W=…, items=[…]}".
func (k *Knapsack) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Knapsack{W=%d, items=[", k.capacity)
	for i, it := range k.items {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(it.String())
	}
	sb.WriteString("]}")

	return sb.String()
}

// view exposes the backing slice to solvers in this package without copying.
// Callers MUST treat the result as read-only.
func (k *Knapsack) view() []Item { return k.items }
