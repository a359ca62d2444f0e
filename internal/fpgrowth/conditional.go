// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package fpgrowth

// BuildConditional builds the conditional tree for the item that ends every
// path in paths. Paths are imported in order; a newly created node for the
// condition item takes the count of its source node, every other new node
// starts at zero, and nodes shared with an earlier path are reused as they
// are. Once all paths are in, each condition node's count is added to all of
// its ancestors, so every node ends up counting the conditional transactions
// that pass through it.
func BuildConditional[T comparable](paths [][]*Node[T]) (*Tree[T], error) {
	if len(paths) == 0 || len(paths[0]) == 0 {
		return nil, ErrEmptyPaths
	}
	last := paths[0][len(paths[0])-1]
	if last == nil {
		return nil, ErrNilNode
	}
	condition := last.item

	tree := NewTree[T]()
	for _, path := range paths {
		point := tree.root
		for _, source := range path {
			if source == nil {
				return nil, ErrNilNode
			}
			if next := point.Search(source.item); next != nil {
				point = next
				continue
			}

			count := 0
			if source.item == condition {
				count = source.count
			}
			next, err := tree.grow(point, source.item, count)
			if err != nil {
				return nil, err
			}
			point = next
		}
	}

	for leaf := range tree.NodesFor(condition) {
		for ancestor := leaf.parent; ancestor != nil && !ancestor.IsRoot(); ancestor = ancestor.parent {
			ancestor.count += leaf.count
		}
	}
	return tree, nil
}
