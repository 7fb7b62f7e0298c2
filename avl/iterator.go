// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Begin - position of the lowest key, End() if the tree is empty
func (tree *Tree[T]) Begin() Position[T] {
	return Position[T]{
		current: tree.root.first(),
		tree:    tree,
	}
}

// End - position one past the highest key
func (tree *Tree[T]) End() Position[T] {
	return Position[T]{
		current: nil,
		tree:    tree,
	}
}

// Last - position of the highest key, End() if the tree is empty
func (tree *Tree[T]) Last() Position[T] {
	return Position[T]{
		current: tree.root.last(),
		tree:    tree,
	}
}

// Min - the lowest key, false if the tree is empty
func (tree *Tree[T]) Min() (T, bool) {
	return tree.root.first().keyOf()
}

// Max - the highest key, false if the tree is empty
func (tree *Tree[T]) Max() (T, bool) {
	return tree.root.last().keyOf()
}

// Keys - all keys in ascending order
func (tree *Tree[T]) Keys() []T {
	keys := make([]T, 0, tree.Size())
	for p := tree.root.first(); nil != p; p = p.next() {
		keys = append(keys, p.key)
	}
	return keys
}

// ReverseKeys - all keys in descending order
func (tree *Tree[T]) ReverseKeys() []T {
	keys := make([]T, 0, tree.Size())
	for p := tree.root.last(); nil != p; p = p.prev() {
		keys = append(keys, p.key)
	}
	return keys
}

// internal: key of a possibly nil node
func (p *node[T]) keyOf() (T, bool) {
	if nil == p {
		var zero T
		return zero, false
	}
	return p.key, true
}

// internal: lowest node in a sub-tree
func (p *node[T]) first() *node[T] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *node[T]) last() *node[T] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// internal: in-order successor or nil if no more nodes
//
// climbs while the node is a right child, the first ancestor reached
// from its left sub-tree is the successor
func (p *node[T]) next() *node[T] {
	if nil != p.right {
		return p.right.first()
	}
	for nil != p.up && p == p.up.right {
		p = p.up
	}
	return p.up
}

// internal: in-order predecessor or nil if no more nodes
func (p *node[T]) prev() *node[T] {
	if nil != p.left {
		return p.left.last()
	}
	for nil != p.up && p == p.up.left {
		p = p.up
	}
	return p.up
}
