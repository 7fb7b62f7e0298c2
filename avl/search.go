// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Find - position of the key equivalent to key, End() if there is none
func (tree *Tree[T]) Find(key T) Position[T] {
	return Position[T]{
		current: tree.search(key),
		tree:    tree,
	}
}

// Contains - true if an equivalent key is in the tree
func (tree *Tree[T]) Contains(key T) bool {
	return nil != tree.search(key)
}

func (tree *Tree[T]) search(key T) *node[T] {
	p := tree.root
	for nil != p {
		switch c := tree.compare(key, p.key); {
		case c < 0: // key < p.key
			p = p.left
		case c > 0: // key > p.key
			p = p.right
		default:
			return p
		}
	}
	return nil
}
