package Trees

import "iter"

// OrderedMap represents a map from keys to values kept in key order by a
// binary search tree.
// Receivers that have a bool as the last return value use it to indicate
// whether the other return values are defined. For example, calling Minimum
// on an empty map returns (k K, v V, false); k and v should not be used then.
// If an implementation doesn't specify anything special, then the implemented
// receivers follow the behaviors defined here. Methods implemented recursively
// should be noted, otherwise methods are implemented iteratively.
type OrderedMap[K any, V any] interface {
	//Put v under k. Returns true if a new entry was created, false if an
	//existing entry had its value replaced.
	Put(k K, v V) bool
	//Get a pointer to the value stored under k, nil if there's none.
	//The pointer refers to the map's own storage and is invalidated by
	//any mutation of the entry.
	Get(k K) *V
	//Has an entry keyed k.
	Has(k K) bool
	//Remove the entry keyed k. Returns true if an entry was removed.
	//The map is left untouched when it returns false.
	Remove(k K) bool
	//Minimum entry of the map.
	Minimum() (K, V, bool)
	//Maximum entry of the map.
	Maximum() (K, V, bool)
	//Predecessor returns the entry with the greatest key less than k.
	Predecessor(k K) (K, V, bool)
	//Successor returns the entry with the smallest key greater than k.
	Successor(k K) (K, V, bool)
	//Size of the map.
	Size() uint
	//All entries in ascending key order. The sequence is lazy and can be
	//ranged over many times; each range walks the tree as it is at that
	//moment. The map must not be modified while a range is in progress.
	All() iter.Seq2[K, V]
	//InOrder returns a closure f acting like an iterator over the entries
	//in ascending key order. Calling f is like calling "Next()":
	//k, v, valid = f(). k and v are meaningful only if valid is true.
	//valid can't turn true after it first became false.
	//The map must not be modified during the iteration of f.
	InOrder() func() (K, V, bool)
	//Corrupt returns whether the tree has corrupt structures, when the keys
	//violate the ordering properties of a binary search tree.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}
