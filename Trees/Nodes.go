package Trees

// A node in the BSTree.
// A node owns its two subtrees exclusively. A nil *node is an empty subtree.
type node[K any, V any] struct {
	k    K
	v    V
	l, r *node[K, V]
}

// leftmost node of the subtree rooting at n. n mustn't be nil.
// Time: O(D); Space: O(1)
func leftmost[K any, V any](n *node[K, V]) *node[K, V] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// rightmost node of the subtree rooting at n. n mustn't be nil.
// Time: O(D); Space: O(1)
func rightmost[K any, V any](n *node[K, V]) *node[K, V] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// count the nodes in the subtree rooting at n. Recursive.
func count[K any, V any](n *node[K, V]) uint {
	if n == nil {
		return 0
	}
	return count(n.l) + count(n.r) + 1
}
