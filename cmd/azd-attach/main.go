// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"os"

	"github.com/jongio/azd-attach/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
