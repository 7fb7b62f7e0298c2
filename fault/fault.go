// Copyright (c) 2014-2016 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrCount                 = RecordError("element count does not match tree")
	ErrEmptyTree             = NotFoundError("tree is empty")
	ErrEndPosition           = InvalidError("position is at end")
	ErrForeignPosition       = InvalidError("position belongs to a different tree")
	ErrHeight                = RecordError("cached height is incorrect")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidatedPosition   = InvalidError("position refers to a deleted node")
	ErrMissingConfiguration  = NotFoundError("configuration file is not found")
	ErrNotLuaTable           = InvalidError("configuration did not return a table")
	ErrOrder                 = RecordError("keys are out of order")
	ErrParentLink            = RecordError("parent link is inconsistent")
	ErrUnbalanced            = RecordError("subtree is unbalanced")
	ErrUninitialisedPosition = InvalidError("position is not attached to a tree")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { var x ExistsError; return as(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return as(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return as(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return as(e, &x) }
func IsErrRecord(e error) bool   { var x RecordError; return as(e, &x) }
