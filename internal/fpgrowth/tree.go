// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package fpgrowth

import (
	"iter"
	"slices"
)

// Route is the same-item linked list for one item: following Neighbor from
// head reaches tail and visits every node carrying the item exactly once,
// oldest first.
type Route[T comparable] struct {
	head *Node[T]
	tail *Node[T]
}

// Tree is an FP-tree: a root node plus one Route per item.
type Tree[T comparable] struct {
	root   *Node[T]
	routes map[T]*Route[T]
	items  []T // first-insertion order of routes
	size   int
}

// NewTree returns an empty tree.
func NewTree[T comparable]() *Tree[T] {
	t := &Tree[T]{routes: make(map[T]*Route[T])}
	t.root = newRoot(t)
	return t
}

// Root returns the tree's root node.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Len returns the number of nodes in the tree, not counting the root.
func (t *Tree[T]) Len() int {
	return t.size
}

// Insert adds one transaction to the tree. Shared prefixes are incremented;
// the first unshared item starts a new branch of count-1 nodes.
//
// Items must be distinct, and every transaction inserted into one tree must
// list its items in the same global order. The order itself is free, but
// mixing orders splits the occurrences of a shared prefix across branches,
// and Mine then misses or undercounts itemsets.
func (t *Tree[T]) Insert(transaction []T) error {
	point := t.root
	for _, item := range transaction {
		if next := point.Search(item); next != nil {
			if err := next.Increment(); err != nil {
				return err
			}
			point = next
			continue
		}

		next, err := t.grow(point, item, 1)
		if err != nil {
			return err
		}
		point = next
	}
	return nil
}

// grow creates a node for item under parent and registers it in its Route.
func (t *Tree[T]) grow(parent *Node[T], item T, count int) (*Node[T], error) {
	node := newNode(t, item, count)
	if err := parent.Add(node); err != nil {
		return nil, err
	}
	if err := t.registerRoute(node); err != nil {
		return nil, err
	}
	return node, nil
}

func (t *Tree[T]) registerRoute(node *Node[T]) error {
	if node == nil {
		return ErrNilNode
	}
	if node.tree != t {
		return ErrCrossTree
	}

	if route, ok := t.routes[node.item]; ok {
		if route.tail.tree != node.tree {
			return ErrCrossTree
		}
		route.tail.neighbor = node
		route.tail = node
	} else {
		t.routes[node.item] = &Route[T]{head: node, tail: node}
		t.items = append(t.items, node.item)
	}
	t.size++
	return nil
}

// Route returns the first and last node carrying item.
func (t *Tree[T]) Route(item T) (head, tail *Node[T], ok bool) {
	route, ok := t.routes[item]
	if !ok {
		return nil, nil, false
	}
	return route.head, route.tail, true
}

// Items yields every item ever inserted, in first-insertion order, paired
// with the sequence of nodes carrying it. Each node sequence restarts from
// the head of the Route every time it is ranged over.
func (t *Tree[T]) Items() iter.Seq2[T, iter.Seq[*Node[T]]] {
	return func(yield func(T, iter.Seq[*Node[T]]) bool) {
		for _, item := range t.items {
			if !yield(item, t.NodesFor(item)) {
				return
			}
		}
	}
}

// NodesFor yields every node carrying item in Route order.
func (t *Tree[T]) NodesFor(item T) iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		route, ok := t.routes[item]
		if !ok {
			return
		}
		for node := route.head; node != nil; node = node.neighbor {
			if !yield(node) {
				return
			}
		}
	}
}

// PrefixPaths yields, for every node carrying item, the root-to-node path
// excluding the root. Each path is non-empty and ends with an item node.
func (t *Tree[T]) PrefixPaths(item T) iter.Seq[[]*Node[T]] {
	return func(yield func([]*Node[T]) bool) {
		for node := range t.NodesFor(item) {
			if !yield(pathTo(node)) {
				return
			}
		}
	}
}

func pathTo[T comparable](node *Node[T]) []*Node[T] {
	var path []*Node[T]
	for ; node != nil && !node.IsRoot(); node = node.parent {
		path = append(path, node)
	}
	slices.Reverse(path)
	return path
}
