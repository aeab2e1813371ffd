// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import "errors"

// LogicConflict is returned by Data and MimeField when the request
// already carries the other, mutually exclusive, body representation.
// It indicates programmer error, not a runtime condition, and is
// always returned synchronously from the call that triggers it.
var LogicConflict = errors.New("request: body data and MIME fields are mutually exclusive")

// ErrInvalidMethod is returned by NewRequest when method is not a
// valid HTTP token.
var ErrInvalidMethod = errors.New("request: invalid method")
