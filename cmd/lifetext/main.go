// Command lifetext runs the simulation headless and prints each generation
// as text, for piping into files or eyeballing rule behavior without a TTY.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"lifegame/internal/life"
)

func main() {
	width := flag.Int("width", 40, "grid width in cells")
	height := flag.Int("height", 20, "grid height in cells")
	seed := flag.Int64("seed", 1, "random seed")
	p := flag.Float64("p", life.DefaultProbability, "live probability for the initial pattern")
	gens := flag.Int("gens", 10, "generations to simulate")
	every := flag.Int("every", 1, "print the board every N generations")
	flag.Parse()

	if *every <= 0 {
		*every = 1
	}

	eng, err := life.NewWithRand(*width, *height, life.NewRNG(*seed))
	if err != nil {
		log.Fatalf("lifetext: %v", err)
	}
	if err := eng.ResetByRandom(*p); err != nil {
		log.Fatalf("lifetext: %v", err)
	}

	printBoard(eng)
	for i := 1; i <= *gens; i++ {
		eng.Evolve()
		if i%*every == 0 {
			printBoard(eng)
		}
	}
}

func printBoard(eng *life.Engine) {
	fmt.Printf("gen %d pop %d\n", eng.Generation(), eng.Population())
	fmt.Println(strings.Join(eng.Dump(), "\n"))
	fmt.Println()
}
