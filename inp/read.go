// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	goio "io"
	"os"
)

// DecodeStructure decodes and validates a structure model from JSON
func DecodeStructure(r goio.Reader) (s *Structure, err error) {
	s = new(Structure)
	dec := json.NewDecoder(r)
	if derr := dec.Decode(s); derr != nil {
		return nil, Invalidf("cannot decode structure model: %v", derr)
	}
	for _, m := range s.Mats {
		m.Derive()
	}
	if err = s.Validate(); err != nil {
		return nil, err
	}
	return
}

// ReadStructure reads and validates a structure model from a JSON file
func ReadStructure(path string) (s *Structure, err error) {
	f, ferr := os.Open(path)
	if ferr != nil {
		return nil, Invalidf("cannot open structure model %q: %v", path, ferr)
	}
	defer f.Close()
	return DecodeStructure(f)
}
