// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/liftgo/lift/request"
)

// applyBody sets req's body from exactly one of r's body bytes or
// MIME fields, per §3's mutual-exclusion invariant (already enforced
// at Request.Data/MimeField time, so at most one is non-empty here).
//
// A file-backed MIME field's path is opened here, at send time, not
// when MimeField was called; a missing file therefore surfaces as an
// error from this function, which the caller classifies as
// status.Error rather than a request.LogicConflict, per the
// specification's explicit resolution of that Open Question.
func applyBody(req *http.Request, r *request.Request) error {
	if body := r.Body(); len(body) > 0 {
		req.ContentLength = int64(len(body))
		req.Body = io.NopCloser(bytes.NewReader(body))
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(body)), nil
		}
		return nil
	}

	fields := r.MimeFields()
	if len(fields) == 0 {
		return nil
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range fields {
		if err := writeMimeField(w, f); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	b := buf.Bytes()
	req.ContentLength = int64(len(b))
	req.Body = io.NopCloser(bytes.NewReader(b))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(b)), nil
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return nil
}

func writeMimeField(w *multipart.Writer, f request.MimeField) error {
	if f.FilePath == "" {
		return w.WriteField(f.Name, f.Value)
	}
	file, err := os.Open(f.FilePath)
	if err != nil {
		return err
	}
	defer file.Close()
	part, err := w.CreateFormFile(f.Name, filepath.Base(f.FilePath))
	if err != nil {
		return err
	}
	_, err = io.Copy(part, file)
	return err
}
