package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
)

func jsonBody(s string) io.Reader { return strings.NewReader(s) }

func record(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
