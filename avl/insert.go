// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new key into the tree
// returns false if an equivalent key was already present, in which
// case the tree is unchanged
func (tree *Tree[T]) Insert(key T) bool {
	added := false
	tree.root, added = tree.insert(key, tree.root, nil)
	if added {
		tree.count.Increment()
	}
	return added
}

// internal routine for insert
// returns the possibly updated root of the sub-tree
func (tree *Tree[T]) insert(key T, p *node[T], up *node[T]) (*node[T], bool) {
	if nil == p { // insert new node
		return newNode(key, up), true
	}

	added := false
	child := (*node[T])(nil)

	switch c := tree.compare(key, p.key); {
	case c < 0: // key < p.key
		child, added = tree.insert(key, p.left, p)
		p.setLeft(child)
	case c > 0: // key > p.key
		child, added = tree.insert(key, p.right, p)
		p.setRight(child)
	default: // duplicate
		return p, false
	}

	if !added {
		return p, false
	}

	p.updateHeight()
	balance := p.balanceFactor()

	// the first unbalanced node found on the way up is the only
	// one to rotate, after that every ancestor has its old height
	switch {
	case balance > 1 && tree.compare(key, p.left.key) < 0:
		// single LL rotation
		return rotateRight(p), true

	case balance < -1 && tree.compare(key, p.right.key) > 0:
		// single RR rotation
		return rotateLeft(p), true

	case balance > 1 && tree.compare(key, p.left.key) > 0:
		// double LR rotation
		p.setLeft(rotateLeft(p.left))
		return rotateRight(p), true

	case balance < -1 && tree.compare(key, p.right.key) < 0:
		// double RL rotation
		p.setRight(rotateRight(p.right))
		return rotateLeft(p), true
	}
	return p, true
}
