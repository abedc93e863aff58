/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package output

import "errors"

// ErrWrite is returned when a generated file cannot be written.
var ErrWrite = errors.New("cannot write generated file")
