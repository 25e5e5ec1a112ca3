// gocube-corners searches pocket cube corner permutations and packs corner states.
package main

import (
	"github.com/SeamusWaldron/gocube_corners/internal/cli"
)

func main() {
	cli.Execute()
}
