package container

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Trie maps tuple keys to sets of values identified by a numeric ID and
// answers prefix queries: all values stored on nodes along a key's path.
type Trie[K comparable, V any] struct {
	children map[K]*Trie[K, V]
	values   map[uint64]V
}

func NewTrie[K comparable, V any]() *Trie[K, V] {
	return &Trie[K, V]{
		children: map[K]*Trie[K, V]{},
		values:   map[uint64]V{},
	}
}

// Put stores value under id at the node addressed by key. An empty key
// addresses the root.
func (t *Trie[K, V]) Put(key []K, id uint64, value V) {
	node := t
	for _, prefix := range key {
		next, ok := node.children[prefix]
		if !ok {
			next = NewTrie[K, V]()
			node.children[prefix] = next
		}
		node = next
	}
	node.values[id] = value
}

// Remove deletes the value stored under id at the node addressed by key
// and reports whether it was present. Nodes left without values and
// children are pruned.
func (t *Trie[K, V]) Remove(key []K, id uint64) bool {
	if len(key) == 0 {
		if _, ok := t.values[id]; !ok {
			return false
		}
		delete(t.values, id)
		return true
	}
	next, ok := t.children[key[0]]
	if !ok {
		return false
	}
	removed := next.Remove(key[1:], id)
	if len(next.values) == 0 && len(next.children) == 0 {
		delete(t.children, key[0])
	}
	return removed
}

// CollectPrefixes returns the values stored at the root and at every node
// along key, outermost prefix first. Values of a single node are ordered
// by their ID.
func (t *Trie[K, V]) CollectPrefixes(key []K) []V {
	res := t.sortedValues(nil)
	node := t
	for _, prefix := range key {
		next, ok := node.children[prefix]
		if !ok {
			return res
		}
		node = next
		res = node.sortedValues(res)
	}
	return res
}

func (t *Trie[K, V]) sortedValues(res []V) []V {
	ids := maps.Keys(t.values)
	slices.Sort(ids)
	for _, id := range ids {
		res = append(res, t.values[id])
	}
	return res
}
