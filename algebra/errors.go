// SPDX-License-Identifier: MIT

package algebra

import "errors"

var (
	// ErrUnknownName is returned by the registry when no algebra is
	// registered under the requested name.
	ErrUnknownName = errors.New("algebra: unknown name")

	// ErrDomainMismatch is returned when a registered algebra exists but
	// is not defined over the requested domain (e.g. "lor_land" requested
	// for a numeric domain).
	ErrDomainMismatch = errors.New("algebra: domain mismatch")
)
