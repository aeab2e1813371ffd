// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

// A MimeField is a single multipart/form-data field to send as part
// of a Request's body. Exactly one of Value or FilePath should be
// set: Value for a plain field, FilePath for a file upload field.
//
// If FilePath is set, its existence is not checked here — per the
// specification, a file-backed field is validated lazily by the
// transport at send time, and a missing file surfaces as a runtime
// LiftStatus of Error, not as a LogicConflict.
type MimeField struct {
	Name     string
	Value    string
	FilePath string
}

// isFile reports whether the field is a file upload field.
func (f MimeField) isFile() bool {
	return f.FilePath != ""
}
