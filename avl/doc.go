// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced ordered set with the addition of
// parent pointers to allow iteration through the nodes without an
// auxiliary stack
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its sub-tree and the balance is
// restored on the way back up from a recursive insert or delete by at
// most a double rotation per level.
//
// Keys are unique under the tree's comparison function: inserting an
// equivalent key is ignored and the original retained.
//
// A Position refers to a node, or to the end of the sequence.  It
// stays valid until the node it refers to is deleted.  Deleting a key
// whose node has two children copies the in-order successor's key into
// that node and deletes the successor's node instead, so a Position
// held on the successor becomes invalid even though its key is still
// in the tree.  Invalid positions are detected and reported as
// fault.ErrInvalidatedPosition.
package avl
