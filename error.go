// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package delegate

import "github.com/pkg/errors"

// Contract violations are reported by panicking with an error that wraps
// one of these sentinels and carries the stack of the offending call.
// Match a recovered value with errors.Is.
var (
	// ErrNotBound is raised by Execute on an unbound Delegate.
	ErrNotBound = errors.New("delegate: execute on unbound delegate")

	// ErrLIFOViolation is raised when a StackStorage block is released out
	// of order, with the wrong size, or was never allocated from it.
	ErrLIFOViolation = errors.New("delegate: stack storage released out of order")

	// ErrNilCallable is raised when binding a nil function or receiver.
	ErrNilCallable = errors.New("delegate: bind of nil callable")

	// ErrInvalidConfig reports an unusable inline storage configuration.
	ErrInvalidConfig = errors.New("delegate: invalid storage configuration")
)
