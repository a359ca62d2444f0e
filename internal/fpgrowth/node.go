// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package fpgrowth

import (
	"fmt"
	"iter"
)

// Node is one item occurrence on one path of a Tree.
//
// A node owns its children. The parent and neighbor links are non-owning:
// parent points back toward the root, and neighbor points at the next node
// carrying the same item as maintained by the owning tree's Route table.
type Node[T comparable] struct {
	item     T
	hasItem  bool
	count    int
	hasCount bool

	children map[T]*Node[T]
	order    []T

	parent   *Node[T]
	neighbor *Node[T]
	tree     *Tree[T]
}

func newRoot[T comparable](tree *Tree[T]) *Node[T] {
	return &Node[T]{tree: tree}
}

func newNode[T comparable](tree *Tree[T], item T, count int) *Node[T] {
	return &Node[T]{
		item:     item,
		hasItem:  true,
		count:    count,
		hasCount: true,
		tree:     tree,
	}
}

// Item returns the node's item. The second result is false for the root.
func (n *Node[T]) Item() (T, bool) {
	return n.item, n.hasItem
}

// Count returns the number of transactions passing through the node.
// The root always reports zero.
func (n *Node[T]) Count() int {
	return n.count
}

// Parent returns the node's parent, or nil for the root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Neighbor returns the next node in the tree carrying the same item.
func (n *Node[T]) Neighbor() *Node[T] {
	return n.neighbor
}

// Search returns the child carrying item, or nil if there is none.
func (n *Node[T]) Search(item T) *Node[T] {
	return n.children[item]
}

// Add attaches child under n and sets its parent link. The caller must
// Search first; adding a second child for the same item is rejected.
func (n *Node[T]) Add(child *Node[T]) error {
	if child == nil {
		return ErrNilNode
	}
	if !child.hasItem {
		return fmt.Errorf("%w: child has no item", ErrNilNode)
	}
	if child.tree != n.tree {
		return ErrCrossTree
	}
	if _, ok := n.children[child.item]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateChild, child.item)
	}

	if n.children == nil {
		n.children = make(map[T]*Node[T])
	}
	n.children[child.item] = child
	n.order = append(n.order, child.item)
	child.parent = n
	return nil
}

// Increment adds one to the node's count.
func (n *Node[T]) Increment() error {
	if n.IsRoot() {
		return ErrRootCount
	}
	n.count++
	return nil
}

// IsRoot reports whether n has neither item nor count. A conditional tree
// node created with count 0 is not a root.
func (n *Node[T]) IsRoot() bool {
	return !n.hasItem && !n.hasCount
}

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool {
	return len(n.children) == 0
}

// Children yields the node's children in the order they were added.
func (n *Node[T]) Children() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for _, item := range n.order {
			if !yield(n.children[item]) {
				return
			}
		}
	}
}

// String renders the node for debugging.
func (n *Node[T]) String() string {
	if n.IsRoot() {
		return "<root>"
	}
	return fmt.Sprintf("<%v:%d>", n.item, n.count)
}
