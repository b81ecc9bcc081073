// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/yuhu-campus/internal/utils"
)

// compressJSON gzips JSON responses for clients that accept it.
var compressJSON = middleware.Compress(gzip.DefaultCompression, "application/json")

// withGZipRequest inflates request bodies sent with "Content-Encoding: gzip".
func withGZipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zr, err := gzip.NewReader(r.Body)
		if err != nil {
			utils.WriteError(w, "invalid gzip body", http.StatusBadRequest)
			return
		}

		r.Body = inflatedBody{Reader: zr, zr: zr, src: r.Body}
		r.Header.Del("Content-Encoding")
		r.Header.Del("Content-Length")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

type inflatedBody struct {
	io.Reader
	zr  *gzip.Reader
	src io.ReadCloser
}

func (b inflatedBody) Close() error {
	_ = b.zr.Close()
	return b.src.Close()
}
