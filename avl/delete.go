// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Erase - removes a specific key from the tree
// returns false if no equivalent key was present
func (tree *Tree[T]) Erase(key T) bool {
	removed := false
	tree.root, removed = tree.delete(key, tree.root)
	if removed {
		tree.count.Decrement()
	}
	return removed
}

// EraseAt - removes the key a position refers to
//
// the position itself becomes invalid, as may a position on the
// in-order successor when the deleted node has two children
func (tree *Tree[T]) EraseAt(pos Position[T]) error {
	if pos.tree != tree {
		if nil == pos.tree {
			return fault.ErrUninitialisedPosition
		}
		return fault.ErrForeignPosition
	}
	if err := pos.check(); nil != err {
		return err
	}
	tree.Erase(pos.current.key)
	return nil
}

// internal delete routine
// returns the possibly updated root of the sub-tree, nil if it is now empty
func (tree *Tree[T]) delete(key T, p *node[T]) (*node[T], bool) {
	if nil == p { // key not in tree
		return nil, false
	}

	removed := false
	child := (*node[T])(nil)

	switch c := tree.compare(key, p.key); {
	case c < 0: // key < p.key
		child, removed = tree.delete(key, p.left)
		p.setLeft(child)
	case c > 0: // key > p.key
		child, removed = tree.delete(key, p.right)
		p.setRight(child)
	default: // found: delete p
		if nil == p.left || nil == p.right {
			return replaceWithChild(p), true
		}

		// two children: take over the successor's key and
		// remove the successor's node, which has no left child
		successorKey := p.right.first().key
		p.key = successorKey
		child, removed = tree.delete(successorKey, p.right)
		p.setRight(child)
	}

	if !removed {
		return p, false
	}
	return rebalance(p), true
}

// splice out a node with at most one child, the child (if any) takes
// over the node's place and its up pointer
func replaceWithChild[T any](p *node[T]) *node[T] {
	child := p.left
	if nil == child {
		child = p.right
	}
	if nil != child {
		child.up = p.up
	}
	freeNode(p)
	return child
}

// delete: tree balancer
//
// the rotation is chosen from the balance of the taller child since
// after a delete the key no longer identifies the heavy side
func rebalance[T any](p *node[T]) *node[T] {
	p.updateHeight()
	balance := p.balanceFactor()

	switch {
	case balance > 1:
		if p.left.balanceFactor() < 0 {
			// double LR rotation
			p.setLeft(rotateLeft(p.left))
		}
		return rotateRight(p)

	case balance < -1:
		if p.right.balanceFactor() > 0 {
			// double RL rotation
			p.setRight(rotateRight(p.right))
		}
		return rotateLeft(p)
	}
	return p
}
