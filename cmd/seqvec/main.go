package main

import (
	"go.brendoncarroll.net/star"

	"myceliumweb.org/seqvec/seqcmd"
)

func main() {
	star.Main(seqcmd.Root())
}
