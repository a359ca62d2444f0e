// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package fpgrowth

import "errors"

// Invariant violations. None of these arise from valid input; they signal a
// broken tree and abort the operation that detected them.
var (
	// ErrNilNode is returned when a nil node is passed where a node is required.
	ErrNilNode = errors.New("fpgrowth: nil node")

	// ErrCrossTree is returned when linking nodes that belong to different trees.
	ErrCrossTree = errors.New("fpgrowth: node belongs to a different tree")

	// ErrRootCount is returned when incrementing the count of a root node.
	ErrRootCount = errors.New("fpgrowth: root node has no count")

	// ErrEmptyPaths is returned when building a conditional tree from no paths.
	ErrEmptyPaths = errors.New("fpgrowth: no prefix paths")

	// ErrDuplicateChild is returned when adding a child for an item that
	// already has one under the same parent.
	ErrDuplicateChild = errors.New("fpgrowth: duplicate child item")
)
