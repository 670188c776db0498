// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package actions

import "io"

// MaxOutputSize caps the text a single action may return.
const MaxOutputSize = 256 * 1024

// LimitedWriter implements io.Writer with size limiting
type LimitedWriter struct {
	w         io.Writer
	limit     int64
	written   int64
	truncated bool
}

// NewLimitedWriter wraps w, silently dropping everything past limit bytes.
func NewLimitedWriter(w io.Writer, limit int64) *LimitedWriter {
	return &LimitedWriter{w: w, limit: limit}
}

func (lw *LimitedWriter) Write(p []byte) (n int, err error) {
	if lw.written >= lw.limit {
		lw.truncated = true
		return len(p), nil
	}

	remaining := lw.limit - lw.written
	if int64(len(p)) > remaining {
		lw.truncated = true
		n, err = lw.w.Write(p[:remaining])
		lw.written += int64(n)
		return len(p), err
	}

	n, err = lw.w.Write(p)
	lw.written += int64(n)
	return n, err
}

// Truncated reports whether anything was dropped.
func (lw *LimitedWriter) Truncated() bool {
	return lw.truncated
}
