package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"

	"lifegame/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	eng, err := cfg.NewEngine()
	if err != nil {
		log.Fatalf("lifegame: %v", err)
	}
	if err := eng.ResetByRandom(cfg.Probability); err != nil {
		log.Fatalf("lifegame: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("lifegame: creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("lifegame: initializing screen: %v", err)
	}
	defer screen.Fini()

	app.New(eng, cfg).Run(screen)
}
