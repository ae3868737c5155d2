// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Virinco AS

package vicpack

import "errors"

// Decode failure classes. All fatal decode errors wrap one of these, so
// callers can classify with errors.Is. Unknown measurement types are not an
// error: they decode to a sentinel "n/a" measurement and decoding continues.
var (
	// ErrMalformedInput reports a hex string of odd length or containing a
	// non-hex character.
	ErrMalformedInput = errors.New("malformed input")

	// ErrOutOfRange reports a packet whose declared measurement count (or
	// header) requires bytes beyond the end of the byte sequence.
	ErrOutOfRange = errors.New("offset out of range")

	// ErrUnknownSensorIndex reports a driver-info measurement whose driver
	// byte indexes outside the sensor name table. This indicates a firmware
	// mismatch and is surfaced rather than defaulted.
	ErrUnknownSensorIndex = errors.New("unknown sensor index")
)
