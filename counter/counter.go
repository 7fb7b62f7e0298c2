// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - element count of a container
//
// updates are atomic, but this does not make the container that owns
// the counter safe for concurrent use
package counter

import (
	"sync/atomic"
)

// Counter - type to denote a number of stored elements
// just a 64 bit unsigned integer
type Counter uint64

// Increment - add 1 to a counter, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Decrement - subtract 1 from a counter, returns new value
//
// decrementing zero wraps around, callers must only decrement after
// a matching increment
func (ic *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(ic), ^uint64(0))
}

// Reset - set the counter back to zero
func (ic *Counter) Reset() {
	atomic.StoreUint64((*uint64)(ic), 0)
}

// Uint64 - returns current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// Int - current value as a native int for len() style results
func (ic *Counter) Int() int {
	return int(ic.Uint64())
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return ic.Uint64() == 0
}
