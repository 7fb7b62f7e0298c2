// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avltree/counter"
)

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root    *node[T]
	count   counter.Counter
	compare func(a, b T) int
}

// New - create an initially empty tree
//
// compare must return a negative number, zero or a positive number as
// a is less than, equivalent to or greater than b and must not change
// for the lifetime of the tree
func New[T any](compare func(a, b T) int) *Tree[T] {
	if nil == compare {
		panic("avl: nil compare function")
	}
	return &Tree[T]{
		root:    nil,
		compare: compare,
	}
}

// NewOrdered - create an initially empty tree using the < ordering of T
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	return New(Compare[T])
}

// Compare - three way comparison of ordered values
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case b < a:
		return +1
	default:
		return 0
	}
}

// LessCompare - convert a strict weak ordering into a compare function
// where keys neither less nor greater than each other are equivalent
func LessCompare[T any](less func(a, b T) bool) func(a, b T) int {
	return func(a, b T) int {
		if less(a, b) {
			return -1
		}
		if less(b, a) {
			return +1
		}
		return 0
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Size - number of keys currently in the tree
func (tree *Tree[T]) Size() int {
	return tree.count.Int()
}

// Height - number of levels in the tree, zero when empty
func (tree *Tree[T]) Height() int {
	return tree.root.getHeight()
}

// Clear - remove every key
//
// all outstanding positions other than End become invalid
func (tree *Tree[T]) Clear() {
	freeTree(tree.root)
	tree.root = nil
	tree.count.Reset()
}
