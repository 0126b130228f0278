// Copyright 2024 The FERS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/Jeroen124/FERS-core/cmd"
)

func main() {
	cmd.Execute()
}
