/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load

import "errors"

// ErrInvalidSnapshot is returned when a snapshot cannot be decoded or
// has entries without identity.
var ErrInvalidSnapshot = errors.New("invalid snapshot")
