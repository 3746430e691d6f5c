package main

import (
	"flag"
	"log"

	"github.com/decker502/animkit/pkg/app"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	libraryPath := flag.String("clips", "assets/clips/library.yaml", "clip library file")
	playbackPath := flag.String("config", "assets/config/playback.yaml", "playback config file")
	flag.Parse()

	a, err := app.NewApp(app.Config{
		Verbose:      *verbose,
		LibraryPath:  *libraryPath,
		PlaybackPath: *playbackPath,
	})
	if err != nil {
		log.Fatalf("animkit: %v", err)
	}

	ebiten.SetWindowSize(app.ScreenWidth, app.ScreenHeight)
	ebiten.SetWindowTitle("animkit playback demo")

	if err := ebiten.RunGame(a); err != nil {
		log.Fatalf("animkit: %v", err)
	}
}
