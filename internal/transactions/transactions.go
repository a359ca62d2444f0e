// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package transactions

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidRecord is returned for a row with an empty person or item.
var ErrInvalidRecord = errors.New("invalid record")

// Record is a single purchase row.
type Record struct {
	Person string `json:"person" validate:"required,max=256"`
	Item   string `json:"item" validate:"required,max=256"`
}

// ItemSupport pairs an item with its global support.
type ItemSupport struct {
	Item    string `json:"item"`
	Support int    `json:"support"`
}

// Dataset is the prepared input of a mining run.
type Dataset struct {
	// Transactions holds one ordered, filtered basket per person.
	Transactions [][]string

	// Support is the global support of every frequent item.
	Support map[string]int

	// Ranking lists the frequent items in transaction order.
	Ranking []ItemSupport

	// Persons is the number of distinct persons before filtering.
	Persons int

	// DroppedItems is the number of distinct items below minimum support.
	DroppedItems int
}

// Prepare deduplicates, groups, filters and orders records.
// A minSupport below 1 is treated as 1.
func Prepare(records []Record, minSupport int) (*Dataset, error) {
	type pair struct{ person, item string }

	seen := make(map[pair]struct{}, len(records))
	index := make(map[string]int)
	var baskets [][]string

	for i, r := range records {
		person := strings.TrimSpace(r.Person)
		item := strings.TrimSpace(r.Item)
		if person == "" || item == "" {
			return nil, fmt.Errorf("record %d: %w: person and item are required", i, ErrInvalidRecord)
		}

		p := pair{person, item}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}

		at, ok := index[person]
		if !ok {
			at = len(baskets)
			index[person] = at
			baskets = append(baskets, nil)
		}
		baskets[at] = append(baskets[at], item)
	}

	return build(baskets, minSupport), nil
}

// FromBaskets prepares transactions that are already grouped. Duplicate
// items inside a basket are collapsed.
func FromBaskets(baskets [][]string, minSupport int) (*Dataset, error) {
	unique := make([][]string, 0, len(baskets))
	for i, basket := range baskets {
		seen := make(map[string]struct{}, len(basket))
		items := make([]string, 0, len(basket))
		for _, raw := range basket {
			item := strings.TrimSpace(raw)
			if item == "" {
				return nil, fmt.Errorf("basket %d: %w: empty item", i, ErrInvalidRecord)
			}
			if _, dup := seen[item]; dup {
				continue
			}
			seen[item] = struct{}{}
			items = append(items, item)
		}
		unique = append(unique, items)
	}
	return build(unique, minSupport), nil
}

// build expects baskets without duplicate items.
func build(baskets [][]string, minSupport int) *Dataset {
	minSupport = max(minSupport, 1)

	counts := make(map[string]int)
	for _, basket := range baskets {
		for _, item := range basket {
			counts[item]++
		}
	}

	ds := &Dataset{
		Support: make(map[string]int),
		Persons: len(baskets),
	}
	for item, n := range counts {
		if n < minSupport {
			ds.DroppedItems++
			continue
		}
		ds.Support[item] = n
		ds.Ranking = append(ds.Ranking, ItemSupport{Item: item, Support: n})
	}
	slices.SortFunc(ds.Ranking, compareSupport)

	rank := make(map[string]int, len(ds.Ranking))
	for i, is := range ds.Ranking {
		rank[is.Item] = i
	}

	for _, basket := range baskets {
		var kept []string
		for _, item := range basket {
			if _, ok := rank[item]; ok {
				kept = append(kept, item)
			}
		}
		if len(kept) == 0 {
			continue
		}
		slices.SortFunc(kept, func(a, b string) int {
			return cmp.Compare(rank[a], rank[b])
		})
		ds.Transactions = append(ds.Transactions, kept)
	}

	return ds
}

func compareSupport(a, b ItemSupport) int {
	if c := cmp.Compare(b.Support, a.Support); c != 0 {
		return c
	}
	return strings.Compare(a.Item, b.Item)
}

// Len returns the number of transactions.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Transactions)
}
