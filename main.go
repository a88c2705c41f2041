/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command tzeva exports design-system color tokens to Xcode asset catalogs.
package main

import (
	"os"

	"bennypowers.dev/tzeva/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
