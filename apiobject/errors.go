package apiobject

import "github.com/pkg/errors"

// ErrEmptyDebugName is the error returned from SetDebugName when the provided name is empty
var ErrEmptyDebugName error = errors.New("debug name must be a non-empty string")
