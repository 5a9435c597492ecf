package Trees

import (
	"fmt"
	"iter"

	"github.com/cespare/xxhash"
	"golang.org/x/exp/constraints"
)

// BSTree is a binary search tree mapping unique keys of type K to values of type V.
// It doesn't balance itself: its shape is purely a function of the order of the
// calls to Put and Remove, and inserting sorted keys degenerates it into a linked
// list. So the height D of the tree is O(n) in the worst case and about 2*ln(n)
// for keys inserted in random order.
// Keys are compared with < and ==, so the ascending order of the traversals is the
// order used to place the keys. Float keys must not be NaN.
// The zero value is an empty tree ready to use. A BSTree is not safe for concurrent
// use; callers sharing one between goroutines must serialize every call.
type BSTree[K constraints.Ordered, V any] struct {
	root *node[K, V]
	size uint
}

// New returns an empty BSTree.
func New[K constraints.Ordered, V any]() *BSTree[K, V] {
	return &BSTree[K, V]{}
}

// Size [OrderedMap.Size]
// Time: O(1); Space: O(1)
func (u *BSTree[K, V]) Size() uint {
	return u.size
}

// insert k,v to the subtree rooting at cur recursively and return the new root of
// that subtree. The caller must rebind its link to the returned node. added reports
// whether a node was created; when k is already there its value is overwritten in
// place and the shape is left unchanged.
func (u *BSTree[K, V]) insert(cur *node[K, V], k K, v V) (_ *node[K, V], added bool) {
	if cur == nil {
		return &node[K, V]{k: k, v: v}, true
	}
	if k < cur.k {
		cur.l, added = u.insert(cur.l, k, v)
	} else if k == cur.k {
		cur.v = v
	} else {
		cur.r, added = u.insert(cur.r, k, v)
	}
	return cur, added
}

// Put [OrderedMap.Put]. Recursive.
// It is a wrapper for insert.
// Time: O(D)
func (u *BSTree[K, V]) Put(k K, v V) bool {
	var added bool
	u.root, added = u.insert(u.root, k, v)
	if added {
		u.size++
	}
	return added
}

// remove the node keyed k from the subtree rooting at cur recursively and return
// the new root of that subtree, which the caller must rebind its link to.
// A node with 2 children takes the key and value of its in-order successor, then the
// successor's own node is removed from the right subtree. That second removal always
// ends at a node without a left child.
// The subtree is left untouched when k isn't in it.
func (u *BSTree[K, V]) remove(cur *node[K, V], k K) (_ *node[K, V], removed bool) {
	if cur == nil {
		return nil, false
	}
	if k < cur.k {
		cur.l, removed = u.remove(cur.l, k)
	} else if cur.k < k {
		cur.r, removed = u.remove(cur.r, k)
	} else if cur.l == nil {
		r := cur.r
		cur.r = nil
		return r, true
	} else if cur.r == nil {
		l := cur.l
		cur.l = nil
		return l, true
	} else {
		s := leftmost(cur.r)
		cur.k, cur.v = s.k, s.v
		cur.r, removed = u.remove(cur.r, s.k)
	}
	return cur, removed
}

// Remove [OrderedMap.Remove]. Recursive.
// It is a wrapper for remove.
// Time: O(D)
func (u *BSTree[K, V]) Remove(k K) bool {
	var removed bool
	u.root, removed = u.remove(u.root, k)
	if removed {
		u.size--
	}
	return removed
}

func (u *BSTree[K, V]) find(k K) *node[K, V] {
	for cur := u.root; cur != nil; {
		if k < cur.k {
			cur = cur.l
		} else if k == cur.k {
			return cur
		} else {
			cur = cur.r
		}
	}
	return nil
}

// Get [OrderedMap.Get]
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Get(k K) *V {
	if n := u.find(k); n != nil {
		return &n.v
	}
	return nil
}

// Has [OrderedMap.Has]
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Has(k K) bool {
	return u.find(k) != nil
}

// Minimum [OrderedMap.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Minimum() (k K, v V, has bool) {
	if u.root != nil {
		n := leftmost(u.root)
		return n.k, n.v, true
	}
	return
}

// Maximum [OrderedMap.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Maximum() (k K, v V, has bool) {
	if u.root != nil {
		n := rightmost(u.root)
		return n.k, n.v, true
	}
	return
}

// Predecessor [OrderedMap.Predecessor]
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Predecessor(k K) (K, V, bool) {
	var p *node[K, V]
	for cur := u.root; cur != nil; {
		if k <= cur.k {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(K), *new(V), false
	}
	return p.k, p.v, true
}

// Successor [OrderedMap.Successor]
// Time: O(D); Space: O(1)
func (u *BSTree[K, V]) Successor(k K) (K, V, bool) {
	var p *node[K, V]
	for cur := u.root; cur != nil; {
		if k < cur.k {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(K), *new(V), false
	}
	return p.k, p.v, true
}

// RootKey returns the key at the root of the tree.
func (u *BSTree[K, V]) RootKey() (k K, has bool) {
	if u.root != nil {
		return u.root.k, true
	}
	return
}

// All [OrderedMap.All]
// It walks the tree with an explicit stack, so the tree is only read.
// Time: O(n) for a full range; Space: O(D)
func (u *BSTree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var st []*node[K, V]
		for cur := u.root; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
		for len(st) > 0 {
			cur := st[len(st)-1]
			st = st[:len(st)-1]
			if !yield(cur.k, cur.v) {
				return
			}
			for cur = cur.r; cur != nil; cur = cur.l {
				st = append(st, cur)
			}
		}
	}
}

// Keys in ascending order. See [OrderedMap.All].
func (u *BSTree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range u.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// InOrder [OrderedMap.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *BSTree[K, V]) InOrder() func() (K, V, bool) {
	var st []*node[K, V]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (k K, v V, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for n := cur.r; n != nil; n = n.l {
			st = append(st, n)
		}
		return cur.k, cur.v, true
	}
}

func height[K any, V any](n *node[K, V]) uint {
	if n == nil {
		return 0
	}
	return max(height(n.l), height(n.r)) + 1
}

// Height is the number of nodes on the longest path from the root to a leaf.
// An empty tree has height 0. Recursive.
// Time: O(n)
func (u *BSTree[K, V]) Height() uint {
	return height(u.root)
}

// Clear the tree. The nodes are dropped with the root and the tree keeps no
// reference to them.
// Time: O(1)
func (u *BSTree[K, V]) Clear() {
	u.root, u.size = nil, 0
}

// Corrupt [OrderedMap.Corrupt]
// Besides the ordering, it also checks that Size matches the number of nodes.
// Time: O(n); Space: O(D)
func (u *BSTree[K, V]) Corrupt() bool {
	var prev K
	first := true
	for k := range u.All() {
		if !first && !(prev < k) {
			return true
		}
		prev, first = k, false
	}
	return count(u.root) != u.size
}

// Fingerprint digests the shape of the tree together with every key and value in
// pre-order. Two calls return the same digest iff, up to hash collisions, no node was
// added, removed, moved or rewritten in between. Values are rendered with the %v verb,
// so values of types that print the same are indistinguishable.
// Time: O(n)
func (u *BSTree[K, V]) Fingerprint() uint64 {
	d := xxhash.New()
	var st []*node[K, V]
	for st = append(st, u.root); len(st) > 0; {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if cur == nil {
			d.Write([]byte{0})
			continue
		}
		fmt.Fprintf(d, "\x01%v\x00%v\x00", cur.k, cur.v)
		st = append(st, cur.r, cur.l)
	}
	return d.Sum64()
}
