// Copyright 2017 The Lumol Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/antoinewdg/lumol/cmd"

func main() {
	cmd.Execute()
}
