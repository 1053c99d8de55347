// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command binops adds 4-bit binary numbers and converts between binary and
// decimal. Run "binops help" for usage.
//
package main

import (
	"os"

	"github.com/db47h/binops/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
