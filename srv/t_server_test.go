// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srv

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func newTestServer(tst *testing.T) *Server {
	cfg := Config{
		Addr:      ":0",
		CachePath: filepath.Join(tst.TempDir(), "cache.db"),
		Rate:      1000,
		Burst:     1000,
	}
	s, err := New(cfg)
	if err != nil {
		tst.Fatalf("New failed:\n%v", err)
	}
	return s
}

const modelBody = `{
	"structure": {
		"nodes": [
			{"id": 1, "c": [0, 0, 0], "fix": [true, true, true, true, true, true]},
			{"id": 2, "c": [5, 0, 0]}
		],
		"elems": [
			{"id": 1, "tag": "beam", "verts": [1, 2], "mat": "BJ37", "sec": "R30x50"}
		],
		"loads": [
			{"id": 1, "node": 2, "key": "fz", "value": -10000, "case": "live"}
		],
		"sections": [
			{"name": "R30x50", "shape": "rectangular", "dims": {"b": 0.3, "h": 0.5}}
		]
	}
}`

func Test_srv01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("srv01. health and section endpoints")

	s := newTestServer(tst)

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, httptest.NewRequest("GET", "/api/health", nil))
	chk.Int(tst, "health status", w.Code, http.StatusOK)
	if !strings.Contains(w.Body.String(), `"ok"`) {
		tst.Errorf("unexpected health body: %s\n", w.Body.String())
	}

	w = httptest.NewRecorder()
	s.Router.ServeHTTP(w, httptest.NewRequest("GET", "/api/sections/rectangular?b=0.3&h=0.5", nil))
	chk.Int(tst, "sections status", w.Code, http.StatusOK)
	if !strings.Contains(w.Body.String(), `"a":0.15`) {
		tst.Errorf("unexpected section properties: %s\n", w.Body.String())
	}

	// bad dimensions
	w = httptest.NewRecorder()
	s.Router.ServeHTTP(w, httptest.NewRequest("GET", "/api/sections/rectangular?b=-1&h=0.5", nil))
	chk.Int(tst, "bad dims status", w.Code, http.StatusUnprocessableEntity)
}

func Test_srv02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("srv02. analyze endpoint and result cache")

	s := newTestServer(tst)

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, httptest.NewRequest("POST", "/api/analyze", strings.NewReader(modelBody)))
	chk.Int(tst, "analyze status", w.Code, http.StatusOK)
	if chk.Verbose {
		io.Pforan("body = %s\n", w.Body.String()[:200])
	}
	if !strings.Contains(w.Body.String(), `"state"`) {
		tst.Errorf("response must be a serialized result\n")
	}
	if w.Header().Get("X-Cache") == "hit" {
		tst.Errorf("first request must not hit the cache\n")
	}

	// identical body replays from the cache
	w = httptest.NewRecorder()
	s.Router.ServeHTTP(w, httptest.NewRequest("POST", "/api/analyze", strings.NewReader(modelBody)))
	chk.Int(tst, "cached status", w.Code, http.StatusOK)
	chk.String(tst, w.Header().Get("X-Cache"), "hit")
}

func Test_srv03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("srv03. malformed and invalid requests")

	s := newTestServer(tst)

	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, httptest.NewRequest("POST", "/api/analyze", strings.NewReader("{not json")))
	chk.Int(tst, "malformed status", w.Code, http.StatusBadRequest)

	// structurally invalid model: unknown node reference
	bad := strings.Replace(modelBody, `"verts": [1, 2]`, `"verts": [1, 99]`, 1)
	w = httptest.NewRecorder()
	s.Router.ServeHTTP(w, httptest.NewRequest("POST", "/api/analyze", strings.NewReader(bad)))
	chk.Int(tst, "invalid status", w.Code, http.StatusUnprocessableEntity)

	w = httptest.NewRecorder()
	s.Router.ServeHTTP(w, httptest.NewRequest("POST", "/api/analyze", strings.NewReader(`{}`)))
	chk.Int(tst, "missing structure", w.Code, http.StatusBadRequest)
}

func Test_srv04(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("srv04. rate limiting")

	cfg := Config{Addr: ":0", CachePath: "", Rate: 1, Burst: 1}
	s, err := New(cfg)
	if err != nil {
		tst.Fatalf("New failed:\n%v", err)
	}

	req := httptest.NewRequest("GET", "/api/health", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	chk.Int(tst, "first request", w.Code, http.StatusOK)

	w = httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	chk.Int(tst, "second request limited", w.Code, http.StatusTooManyRequests)

	// a different client has its own bucket
	req2 := httptest.NewRequest("GET", "/api/health", nil)
	req2.RemoteAddr = "10.0.0.2:1234"
	w = httptest.NewRecorder()
	s.Router.ServeHTTP(w, req2)
	chk.Int(tst, "other client", w.Code, http.StatusOK)
}
