// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srv

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	goio "io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/cpmech/gosl/io"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/strukturalab/gofea/ana"
	"github.com/strukturalab/gofea/inp"
	"github.com/strukturalab/gofea/sec"
)

// Config holds the service settings, read from the environment (and an
// optional .env file): GOFEA_ADDR, GOFEA_CACHE, GOFEA_RATE, GOFEA_BURST
type Config struct {
	Addr      string
	CachePath string  // empty disables the cache
	Rate      float64 // requests per second per client
	Burst     int
}

// LoadConfig reads the configuration from the environment, with defaults
func LoadConfig() (c Config) {
	godotenv.Load() // missing .env files are fine
	c = Config{Addr: ":8090", CachePath: "gofea-cache.db", Rate: 2, Burst: 5}
	if v := os.Getenv("GOFEA_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("GOFEA_CACHE"); v != "" {
		c.CachePath = v
	}
	if v := os.Getenv("GOFEA_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Rate = f
		}
	}
	if v := os.Getenv("GOFEA_BURST"); v != "" {
		if b, err := strconv.Atoi(v); err == nil {
			c.Burst = b
		}
	}
	return
}

// AnalyzeRequest is the POST /api/analyze body
type AnalyzeRequest struct {
	Structure *inp.Structure `json:"structure"`
	Options   *inp.Options   `json:"options"`
}

// Server routes analysis requests to the engine
type Server struct {
	Router *mux.Router
	cache  *Cache
	http   *http.Server
}

// New creates the server, opening the cache when configured
func New(cfg Config) (o *Server, err error) {
	o = &Server{Router: mux.NewRouter()}
	if cfg.CachePath != "" {
		o.cache, err = OpenCache(cfg.CachePath)
		if err != nil {
			return nil, err
		}
	}

	limiter := NewIPRateLimiter(rate.Limit(cfg.Rate), cfg.Burst)
	api := o.Router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)
	api.HandleFunc("/health", o.handleHealth).Methods("GET")
	api.HandleFunc("/analyze", o.handleAnalyze).Methods("POST")
	api.HandleFunc("/sections/{shape}", o.handleSections).Methods("GET")

	o.http = &http.Server{
		Addr:         cfg.Addr,
		Handler:      o.Router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return
}

// ListenAndServe blocks serving requests
func (o *Server) ListenAndServe() error {
	io.Pf("listening on %s\n", o.http.Addr)
	return o.http.ListenAndServe()
}

// Shutdown stops the server and closes the cache
func (o *Server) Shutdown(ctx context.Context) error {
	if o.cache != nil {
		defer o.cache.Close()
	}
	return o.http.Shutdown(ctx)
}

func (o *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (o *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {

	body, err := goio.ReadAll(http.MaxBytesReader(w, r.Body, 16<<20))
	if err != nil {
		http.Error(w, "cannot read request body", http.StatusBadRequest)
		return
	}

	// cache hit: replay the stored response
	key := Key(body)
	if o.cache != nil {
		if cached, ok, cerr := o.cache.Get(key); cerr == nil && ok {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "hit")
			w.Write(cached)
			return
		}
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&req); err != nil {
		http.Error(w, io.Sf("malformed request: %v", err), http.StatusBadRequest)
		return
	}
	if req.Structure == nil {
		http.Error(w, "missing structure", http.StatusBadRequest)
		return
	}
	for _, m := range req.Structure.Mats {
		m.Derive()
	}

	res, err := ana.Analyze(req.Structure, req.Options)
	if err != nil {
		var verr *inp.ValidationError
		if errors.As(err, &verr) {
			http.Error(w, verr.Msg, http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	out, err := json.Marshal(res)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if o.cache != nil {
		o.cache.Put(key, out)
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(out)
}

func (o *Server) handleSections(w http.ResponseWriter, r *http.Request) {
	shape := mux.Vars(r)["shape"]
	q := r.URL.Query()
	dim := func(name string) float64 {
		f, _ := strconv.ParseFloat(q.Get(name), 64)
		return f
	}
	d := sec.Dims{
		B: dim("b"), H: dim("h"), D: dim("d"), T: dim("t"),
		Bf: dim("bf"), Tf: dim("tf"), Hw: dim("hw"), Tw: dim("tw"),
	}
	p, err := sec.FromTag(shape, d, nil).Properties()
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
