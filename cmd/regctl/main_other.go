//go:build !windows

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "regctl requires Windows: it operates on the live Windows registry")
	os.Exit(1)
}
