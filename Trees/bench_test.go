package Trees

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const bSize = 1 << 15

var sideEff int

func BenchmarkBSTree_Put(b *testing.B) {
	keys := rand.Perm(bSize)
	b.ResetTimer()
	for range b.N {
		tree := New[int, int]()
		for _, k := range keys {
			tree.Put(k, k)
		}
	}
}

func BenchmarkBSTree_PutSorted(b *testing.B) {
	for range b.N {
		tree := New[int, int]()
		for k := range bSize >> 4 {
			tree.Put(k, k)
		}
	}
}

func BenchmarkBSTree_Get(b *testing.B) {
	tree := New[int, int]()
	for _, k := range rand.Perm(bSize) {
		tree.Put(k, k)
	}
	b.Log(tree.Height())
	b.ResetTimer()
	for i := range b.N {
		sideEff += *tree.Get(i & (bSize - 1))
	}
}

func BenchmarkBSTree_Remove(b *testing.B) {
	keys := rand.Perm(bSize)
	for range b.N {
		b.StopTimer()
		tree := New[int, int]()
		for _, k := range keys {
			tree.Put(k, k)
		}
		b.StartTimer()
		for k := range bSize {
			tree.Remove(k)
		}
	}
}

func BenchmarkBSTree_All(b *testing.B) {
	tree := New[int, int]()
	for _, k := range rand.Perm(bSize) {
		tree.Put(k, k)
	}
	b.ResetTimer()
	for range b.N {
		for _, v := range tree.All() {
			sideEff += v
		}
	}
}

// compares with https://github.com/google/btree
func BenchmarkBTree_Put(b *testing.B) {
	keys := rand.Perm(bSize)
	b.ResetTimer()
	for range b.N {
		tree := btree.NewG[entry](32, lessEntry)
		for _, k := range keys {
			tree.ReplaceOrInsert(entry{k, k})
		}
	}
}

func BenchmarkBTree_Get(b *testing.B) {
	tree := btree.NewG[entry](32, lessEntry)
	for _, k := range rand.Perm(bSize) {
		tree.ReplaceOrInsert(entry{k, k})
	}
	b.ResetTimer()
	for i := range b.N {
		e, _ := tree.Get(entry{k: i & (bSize - 1)})
		sideEff += e.v
	}
}

// compares with https://github.com/petar/GoLLRB
func BenchmarkLLRB_Put(b *testing.B) {
	keys := rand.Perm(bSize)
	b.ResetTimer()
	for range b.N {
		tree := llrb.New()
		for _, k := range keys {
			tree.ReplaceOrInsert(entry{k, k})
		}
	}
}

func BenchmarkLLRB_Get(b *testing.B) {
	tree := llrb.New()
	for _, k := range rand.Perm(bSize) {
		tree.ReplaceOrInsert(entry{k, k})
	}
	b.ResetTimer()
	for i := range b.N {
		sideEff += tree.Get(entry{k: i & (bSize - 1)}).(entry).v
	}
}

// compares with https://github.com/emirpasic/gods
func BenchmarkTreeMap_Put(b *testing.B) {
	keys := rand.Perm(bSize)
	b.ResetTimer()
	for range b.N {
		tree := treemap.NewWithIntComparator()
		for _, k := range keys {
			tree.Put(k, k)
		}
	}
}

func BenchmarkTreeMap_Get(b *testing.B) {
	tree := treemap.NewWithIntComparator()
	for _, k := range rand.Perm(bSize) {
		tree.Put(k, k)
	}
	b.ResetTimer()
	for i := range b.N {
		v, _ := tree.Get(i & (bSize - 1))
		sideEff += v.(int)
	}
}
