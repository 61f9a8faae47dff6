// Command qtranslate runs the rule-based translator from the shell.
//
// Usage:
//
//	qtranslate classify "How can I minimize the cost of this supply chain?"
//	qtranslate categories
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
