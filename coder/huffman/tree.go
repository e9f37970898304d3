package huffman

import (
	"slices"
	"sort"
)

// A tree is either a leaf carrying one character or a node owning two
// subtrees. Subtrees belong to exactly one parent and never change once
// built.
type tree interface {
	isTree()
}

type leaf struct {
	ch rune
}

type node struct {
	left, right tree
}

func (leaf) isTree() {}
func (node) isTree() {}

// sentinelChar is the character held by the leaf that stands in for empty
// input.
const sentinelChar rune = '\x00'

// weighted pairs a subtree with the summed occurrence count of every
// character beneath it.
type weighted struct {
	sub    tree
	weight int
}

// A forest is the working collection of not-yet-merged subtrees, sorted
// ascending by weight after every insertion.
type forest []weighted

// sortedIndex locates weight in f: the index of the first entry of equal
// weight when one exists, otherwise the insertion point that keeps f
// sorted.
func sortedIndex(f forest, weight int) int {
	return sort.Search(len(f), func(i int) bool { return f[i].weight >= weight })
}

// insert places t at its sorted position in f. A new entry lands in front
// of entries already holding the same weight.
func (f forest) insert(t tree, weight int) forest {
	return slices.Insert(f, sortedIndex(f, weight), weighted{sub: t, weight: weight})
}

// newForest seeds a forest with one leaf per counted character. Characters
// are drawn in ascending order so the layout never depends on map
// iteration and equal-weight alphabets encode reproducibly.
func newForest(freq map[rune]int) forest {
	chars := make([]rune, 0, len(freq))
	for ch := range freq {
		chars = append(chars, ch)
	}
	slices.Sort(chars)
	f := make(forest, 0, len(chars))
	for _, ch := range chars {
		f = f.insert(leaf{ch: ch}, freq[ch])
	}
	return f
}

// buildTree consumes f, merging the two lightest entries until one tree
// remains. The lightest entry becomes the right child of the merged node
// and the second lightest the left; the merged node re-enters the forest at
// the sorted position of its combined weight. An empty forest yields the
// sentinel leaf, a single entry is returned unchanged.
func buildTree(f forest) tree {
	if len(f) == 0 {
		return leaf{ch: sentinelChar}
	}
	if len(f) == 1 {
		return f[0].sub
	}
	for len(f) > 2 {
		right, left := f[0], f[1]
		f = f[2:].insert(node{left: left.sub, right: right.sub}, left.weight+right.weight)
	}
	return node{left: f[1].sub, right: f[0].sub}
}
