package mth

import "errors"

var (
	ErrEmptyTree       = errors.New("the tree has no leaves")
	ErrIndexOutOfRange = errors.New("the requested leaf index is out of range")
	ErrLeafNotFound    = errors.New("the leaf value is not in the tree")
)
