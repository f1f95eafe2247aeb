// Command intervalctl drives the interval abstract-interpretation
// domain over a CFG fixture for inspection and debugging.
package main

import "github.com/ai-verify/interval-domain/pkg/cmd"

func main() {
	cmd.Execute()
}
