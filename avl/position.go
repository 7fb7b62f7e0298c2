// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Position - a place in the ordered sequence of a tree's keys, either
// at a key or at the end (one past the highest key)
//
// the zero value is not attached to any tree and every operation on
// it fails with fault.ErrUninitialisedPosition
type Position[T any] struct {
	current *node[T]
	tree    *Tree[T]
}

// IsEnd - true if the position is one past the highest key
func (pos Position[T]) IsEnd() bool {
	return nil == pos.current
}

// Valid - true if the position refers to a key still in the tree
func (pos Position[T]) Valid() bool {
	return nil == pos.check()
}

// Key - the key at this position
func (pos Position[T]) Key() (T, error) {
	if err := pos.check(); nil != err {
		var zero T
		return zero, err
	}
	return pos.current.key, nil
}

// MustKey - the key at this position, panics if the position is not
// at a key
func (pos Position[T]) MustKey() T {
	key, err := pos.Key()
	if nil != err {
		panic(err)
	}
	return key
}

// Pointer - address of the key stored at this position
//
// the key may be modified in place, but any change that alters its
// ordering relative to the other keys corrupts the tree
func (pos Position[T]) Pointer() (*T, error) {
	if err := pos.check(); nil != err {
		return nil, err
	}
	return &pos.current.key, nil
}

// Next - move to the next higher key, or to the end after the highest
func (pos *Position[T]) Next() error {
	if err := pos.check(); nil != err {
		return err
	}
	pos.current = pos.current.next()
	return nil
}

// Prev - move to the next lower key
//
// from the end this moves to the highest key; from the lowest key it
// moves to the end
func (pos *Position[T]) Prev() error {
	if nil == pos.tree {
		return fault.ErrUninitialisedPosition
	}
	if nil == pos.current {
		last := pos.tree.root.last()
		if nil == last {
			return fault.ErrEmptyTree
		}
		pos.current = last
		return nil
	}
	if pos.current.released {
		return fault.ErrInvalidatedPosition
	}
	pos.current = pos.current.prev()
	return nil
}

// Equal - true if both positions refer to the same node, or both are
// the end of the same tree
func (pos Position[T]) Equal(other Position[T]) bool {
	return pos.tree == other.tree && pos.current == other.current
}

// Depth - number of parent links between this position's node and
// the root
func (pos Position[T]) Depth() (int, error) {
	if err := pos.check(); nil != err {
		return 0, err
	}
	depth := 0
	for p := pos.current.up; nil != p; p = p.up {
		depth += 1
	}
	return depth, nil
}

// ok only if positioned at a live node
func (pos Position[T]) check() error {
	switch {
	case nil == pos.tree:
		return fault.ErrUninitialisedPosition
	case nil == pos.current:
		return fault.ErrEndPosition
	case pos.current.released:
		return fault.ErrInvalidatedPosition
	}
	return nil
}
