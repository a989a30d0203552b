// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package attach

import (
	"errors"
	"fmt"
)

// ErrUnsupportedPlatform matches any *UnsupportedPlatformError.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// UnsupportedPlatformError is returned when no process listing mechanism
// exists for the running operating system.
type UnsupportedPlatformError struct {
	// Platform is the runtime.GOOS value that was not recognized.
	Platform string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("operating system '%s' not supported", e.Platform)
}

// Is makes errors.Is(err, ErrUnsupportedPlatform) succeed.
func (e *UnsupportedPlatformError) Is(target error) bool {
	return target == ErrUnsupportedPlatform
}
