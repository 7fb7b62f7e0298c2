// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pre-order keys of a sub-tree, -1 for each missing child of an
// internal node
func shape(p *node[int]) []int {
	if nil == p {
		return nil
	}
	s := []int{p.key}
	if nil == p.left && nil == p.right {
		return s
	}
	if nil == p.left {
		s = append(s, -1)
	} else {
		s = append(s, shape(p.left)...)
	}
	if nil == p.right {
		s = append(s, -1)
	} else {
		s = append(s, shape(p.right)...)
	}
	return s
}

func TestInsertRotations(t *testing.T) {
	cases := []struct {
		name string
		keys []int
	}{
		{"left-left", []int{3, 2, 1}},
		{"right-right", []int{1, 2, 3}},
		{"left-right", []int{3, 1, 2}},
		{"right-left", []int{1, 3, 2}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tree := NewOrdered[int]()
			for _, key := range c.keys {
				tree.Insert(key)
			}
			assert.Equal(t, []int{2, 1, 3}, shape(tree.root))
			assert.Nil(t, tree.root.up, "root has parent")
			assert.Equal(t, 2, tree.root.height)
			require.NoError(t, tree.Check())
		})
	}
}

func TestRotatePrimitives(t *testing.T) {
	//     4            2
	//    / \          / \
	//   2   5   →    1   4
	//  / \              / \
	// 1   3            3   5
	tree := NewOrdered[int]()
	n1 := newNode(1, (*node[int])(nil))
	n2 := newNode(2, (*node[int])(nil))
	n3 := newNode(3, (*node[int])(nil))
	n4 := newNode(4, (*node[int])(nil))
	n5 := newNode(5, (*node[int])(nil))
	n2.setLeft(n1)
	n2.setRight(n3)
	n2.updateHeight()
	n4.setLeft(n2)
	n4.setRight(n5)
	n4.updateHeight()

	top := rotateRight(n4)
	assert.Same(t, n2, top)
	assert.Nil(t, top.up)
	assert.Same(t, n2, n4.up)
	assert.Same(t, n4, n3.up, "displaced sub-tree parent")
	assert.Equal(t, []int{2, 1, 4, 3, 5}, shape(top))
	assert.Equal(t, 2, n4.height)
	assert.Equal(t, 3, n2.height)

	tree.root = top
	for i := 0; i < 5; i += 1 {
		tree.count.Increment()
	}
	require.NoError(t, tree.Check())

	top = rotateLeft(top)
	assert.Same(t, n4, top)
	assert.Same(t, n2, n3.up, "displaced sub-tree parent")
	assert.Equal(t, []int{4, 2, 1, 3, 5}, shape(top))
	tree.root = top
	require.NoError(t, tree.Check())
}

func TestDeleteRebalancesAncestor(t *testing.T) {
	// a minimal (Fibonacci) AVL tree of height 5: deleting from the
	// short side leaves the parent balanced but unbalances the root
	// two levels up
	tree := NewOrdered[int]()
	for _, key := range []int{8, 5, 11, 3, 7, 10, 12, 2, 4, 6, 9, 1} {
		tree.Insert(key)
	}
	require.NoError(t, tree.Check())
	require.Equal(t, 5, tree.Height())

	assert.True(t, tree.Erase(9))
	require.NoError(t, tree.Check())
	assert.Equal(t, 4, tree.Height())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 10, 11, 12}, tree.Keys())
	assert.Equal(t, []int{5, 3, 2, 1, -1, 4, 8, 7, 6, -1, 11, 10, 12}, shape(tree.root))
}

func TestDeleteRotatesAtTwoLevels(t *testing.T) {
	// deleting 12 unbalances 11, whose rotation shortens the right
	// side of the root so the root must rotate as well
	tree := NewOrdered[int]()
	for _, key := range []int{8, 5, 11, 3, 7, 10, 12, 2, 4, 6, 9, 1} {
		tree.Insert(key)
	}
	n10 := tree.search(10)
	require.Equal(t, 11, n10.up.key)
	require.Same(t, tree.search(8), tree.root)

	assert.True(t, tree.Erase(12))
	require.NoError(t, tree.Check())

	assert.Equal(t, 8, n10.up.key, "lower rotation")
	assert.Equal(t, 5, tree.root.key, "root rotation")
	assert.Equal(t, 4, tree.Height())
	assert.Equal(t, []int{5, 3, 2, 1, -1, 4, 8, 7, 6, -1, 10, 9, 11}, shape(tree.root))
}

// parent of every node currently in the tree
func parents(tree *Tree[int]) map[*node[int]]*node[int] {
	m := make(map[*node[int]]*node[int], tree.Size())
	for p := tree.root.first(); nil != p; p = p.next() {
		m[p] = p.up
	}
	return m
}

// a single rotation relinks three existing nodes and a double
// rotation five, so an insert never relinks more than five
func TestOneRotationPerInsert(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	tree := NewOrdered[int]()

	single := 0
	double := 0
	for i := 0; i < 4000; i += 1 {
		before := parents(tree)
		if !tree.Insert(r.Intn(1000000)) {
			continue
		}

		relinked := 0
		for p, up := range before {
			if p.up != up {
				relinked += 1
			}
		}
		if relinked > 5 {
			t.Fatalf("insert: %d  relinked: %d nodes", i, relinked)
		}
		switch {
		case relinked > 3:
			double += 1
		case relinked > 1:
			single += 1
		}

		if 0 == i%200 {
			require.NoError(t, tree.Check(), "after insert: %d", i)
		}
	}
	require.NoError(t, tree.Check())
	assert.NotZero(t, single, "no single rotations")
	assert.NotZero(t, double, "no double rotations")
}

func TestReplaceWithChild(t *testing.T) {
	parent := newNode(10, (*node[int])(nil))
	child := newNode(5, (*node[int])(nil))
	grandchild := newNode(3, (*node[int])(nil))
	parent.setLeft(child)
	child.setLeft(grandchild)

	parent.setLeft(replaceWithChild(child))

	assert.Same(t, grandchild, parent.left)
	assert.Same(t, parent, grandchild.up)
	assert.True(t, child.released)
	assert.Nil(t, child.up)
}
