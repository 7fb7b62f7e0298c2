// Copyright (c) 2014-2016 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree[T]) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup[T any](p *node[T], up *node[T]) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// Check - verify ordering, balance, cached heights, up pointers and
// the element count
//
// returns the first problem found wrapping one of the fault.Err*
// record errors
func (tree *Tree[T]) Check() error {
	n, _, err := tree.check(tree.root, nil, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.Size() {
		return fmt.Errorf("%w: nodes: %d  count: %d", fault.ErrCount, n, tree.Size())
	}
	return nil
}

// internal: every key in p must lie strictly between low and high
// (when not nil)
// returns the number of nodes and the height of the sub-tree
func (tree *Tree[T]) check(p *node[T], up *node[T], low *node[T], high *node[T]) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if p.up != up || p.released {
		return 0, 0, fmt.Errorf("%w: at key: %v", fault.ErrParentLink, p.key)
	}
	if nil != low && tree.compare(low.key, p.key) >= 0 {
		return 0, 0, fmt.Errorf("%w: key: %v  not above: %v", fault.ErrOrder, p.key, low.key)
	}
	if nil != high && tree.compare(p.key, high.key) >= 0 {
		return 0, 0, fmt.Errorf("%w: key: %v  not below: %v", fault.ErrOrder, p.key, high.key)
	}

	nl, hl, err := tree.check(p.left, p, low, p)
	if nil != err {
		return 0, 0, err
	}
	nr, hr, err := tree.check(p.right, p, p, high)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if h != p.height {
		return 0, 0, fmt.Errorf("%w: at key: %v  cached: %d  actual: %d", fault.ErrHeight, p.key, p.height, h)
	}
	if b := hl - hr; b > 1 || b < -1 {
		return 0, 0, fmt.Errorf("%w: at key: %v  balance: %+d", fault.ErrUnbalanced, p.key, b)
	}
	return 1 + nl + nr, h, nil
}
