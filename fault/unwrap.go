// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// classify through any fmt.Errorf("%w") wrapping
func as(e error, target interface{}) bool {
	if nil == e {
		return false
	}
	return errors.As(e, target)
}
