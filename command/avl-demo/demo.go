// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
)

// replay the configured operations against a fresh tree, writing the
// results to out
func runDemo(log *logger.L, out io.Writer, options *Configuration) error {

	tree := avl.NewOrdered[int]()

	for _, key := range options.Insert {
		if tree.Insert(key) {
			log.Debugf("insert: %d", key)
		} else {
			log.Debugf("insert: %d  duplicate ignored", key)
		}
	}
	if err := verify(log, tree, "insert"); nil != err {
		return err
	}
	log.Infof("inserted: %d  keys: %d  height: %d", len(options.Insert), tree.Size(), tree.Height())

	fmt.Fprintf(out, "Tree elements (in-order traversal): %s\n", traverse(tree))
	if options.PrintTree {
		tree.Print(out)
	}

	for _, key := range options.Find {
		if tree.Find(key).IsEnd() {
			log.Infof("find: %d  not found", key)
			fmt.Fprintf(out, "Value %d not found in the AVL tree.\n", key)
		} else {
			log.Infof("find: %d  found", key)
			fmt.Fprintf(out, "Found %d in the AVL tree.\n", key)
		}
	}

	for _, key := range options.Erase {
		removed := tree.Erase(key)
		log.Infof("erase: %d  removed: %t", key, removed)
		if err := verify(log, tree, "erase"); nil != err {
			return err
		}
		fmt.Fprintf(out, "After erasing %d, the AVL tree elements are: %s\n", key, traverse(tree))
	}
	if options.PrintTree && len(options.Erase) > 0 {
		tree.Print(out)
	}

	fmt.Fprintf(out, "Tree size: %d\n", tree.Size())

	if options.Clear {
		tree.Clear()
		log.Info("clear")
		empty := "No"
		if tree.IsEmpty() {
			empty = "Yes"
		}
		fmt.Fprintf(out, "After clearing, is the tree empty? %s\n", empty)
	}
	return nil
}

// in-order keys separated by spaces, walked with positions
func traverse(tree *avl.Tree[int]) string {
	var s strings.Builder
	for p := tree.Begin(); !p.IsEnd(); {
		fmt.Fprintf(&s, "%d ", p.MustKey())
		if err := p.Next(); nil != err {
			break
		}
	}
	return s.String()
}

// check the tree after a batch of operations
func verify(log *logger.L, tree *avl.Tree[int], stage string) error {
	if err := tree.Check(); nil != err {
		log.Criticalf("%s: inconsistent tree: %s", stage, err)
		return fmt.Errorf("%s: %w", stage, err)
	}
	return nil
}
