//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of duel-ca requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/duel` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a terminal game without the tag use `go run ./cmd/duel-term`.")
	os.Exit(2)
}
