// Copyright (c) 2014-2017 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// a node in the tree
type node[T any] struct {
	left     *node[T] // left sub-tree
	right    *node[T] // right sub-tree
	up       *node[T] // points to parent node
	key      T        // key part for ordering
	height   int      // height of this sub-tree, leaf = 1
	released bool     // set once removed from the tree
}

// allocate a new leaf node
func newNode[T any](key T, up *node[T]) *node[T] {
	return &node[T]{
		key:    key,
		up:     up,
		height: 1,
	}
}

// detach a node that has been removed from the tree so that any
// position still referring to it can detect this
func freeNode[T any](p *node[T]) {
	var zero T

	p.left = nil
	p.right = nil
	p.up = nil
	p.key = zero
	p.height = 0
	p.released = true
}

// release a whole sub-tree
func freeTree[T any](p *node[T]) {
	if nil == p {
		return
	}
	freeTree(p.left)
	freeTree(p.right)
	freeNode(p)
}
