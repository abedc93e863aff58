/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render

import "errors"

var (
	// ErrUnknownTokenType is returned when rendering a token whose
	// category is not one of the known kinds.
	ErrUnknownTokenType = errors.New("unknown token type")

	// ErrNoRenderer is returned when no renderer is registered for a
	// token's category.
	ErrNoRenderer = errors.New("no renderer registered for token type")
)
