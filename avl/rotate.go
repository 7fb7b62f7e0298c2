// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a possibly empty sub-tree
func (p *node[T]) getHeight() int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute the cached height from the children
func (p *node[T]) updateHeight() {
	hl := p.left.getHeight()
	hr := p.right.getHeight()
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}

// height(left) - height(right), zero for an empty sub-tree
func (p *node[T]) balanceFactor() int {
	if nil == p {
		return 0
	}
	return p.left.getHeight() - p.right.getHeight()
}

// link a left child, keeping its up pointer consistent
func (p *node[T]) setLeft(child *node[T]) {
	p.left = child
	if nil != child {
		child.up = p
	}
}

// link a right child, keeping its up pointer consistent
func (p *node[T]) setRight(child *node[T]) {
	p.right = child
	if nil != child {
		child.up = p
	}
}

// single right rotation, y.left becomes the root of the sub-tree
//
//	    y          x
//	   / \        / \
//	  x   c  →   a   y
//	 / \            / \
//	a   b          b   c
func rotateRight[T any](y *node[T]) *node[T] {
	x := y.left
	up := y.up

	y.setLeft(x.right)
	x.setRight(y)
	x.up = up

	y.updateHeight()
	x.updateHeight()
	return x
}

// single left rotation, x.right becomes the root of the sub-tree
//
//	  x              y
//	 / \            / \
//	a   y    →     x   c
//	   / \        / \
//	  b   c      a   b
func rotateLeft[T any](x *node[T]) *node[T] {
	y := x.right
	up := x.up

	x.setRight(y.left)
	y.setLeft(x)
	y.up = up

	x.updateHeight()
	y.updateHeight()
	return y
}
