// Copyright 2026 The Gofea Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gofea -- 3D frame analysis and design-code compliance
package main

import "github.com/strukturalab/gofea/cmd"

func main() {
	cmd.Execute()
}
