// Copyright 2021 The httpx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"errors"
	"io"

	"github.com/liftgo/lift/request"
)

// errProgressAbort is returned by a progressReader's Read method when
// the transfer-progress callback requests the transfer stop. It
// unwinds through net/http as an ordinary read error, which the
// caller classifies as a download or connect error depending on
// whether headers had already been received.
var errProgressAbort = errors.New("transport: transfer aborted by progress handler")

// progressReader wraps an io.ReadCloser and reports cumulative bytes
// read (uploaded, for a request body, or downloaded, for a response
// body) to fn after every successful Read.
type progressReader struct {
	io.ReadCloser
	fn           request.TransferProgressFunc
	upload       bool
	total        int64
	uploadTotal  int64
	downloadTotal int64
	read         int64
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.ReadCloser.Read(buf)
	if n > 0 {
		p.read += int64(n)
		var uploaded, downloaded int64
		if p.upload {
			uploaded = p.read
		} else {
			downloaded = p.read
		}
		if p.fn != nil && !p.fn(uploaded, p.uploadTotal, downloaded, p.downloadTotal) {
			return n, errProgressAbort
		}
	}
	return n, err
}

// wrapUploadProgress wraps body (if non-nil) so that fn is invoked as
// the request body is read by the transport.
func wrapUploadProgress(body io.ReadCloser, fn request.TransferProgressFunc, total int64) io.ReadCloser {
	if fn == nil || body == nil {
		return body
	}
	return &progressReader{ReadCloser: body, fn: fn, upload: true, uploadTotal: total}
}

// WrapDownloadProgress wraps body so that fn is invoked as the
// response body is read by the caller. Unlike the upload-side
// wrapping, which Build applies itself, download wrapping happens
// after the transport has already produced an *http.Response, so
// callers (the event loop's transfer goroutine, or Perform) apply it
// themselves once they have the response body in hand.
func WrapDownloadProgress(body io.ReadCloser, fn request.TransferProgressFunc, total int64) io.ReadCloser {
	if fn == nil || body == nil {
		return body
	}
	return &progressReader{ReadCloser: body, fn: fn, upload: false, downloadTotal: total}
}
