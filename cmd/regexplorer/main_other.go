//go:build !windows

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "regexplorer requires Windows: it browses the live Windows registry")
	os.Exit(1)
}
