package main

import (
	"flag"
	"log"

	"chosenoffset.com/stillirise/internal/audio"
	"chosenoffset.com/stillirise/internal/game"
	"chosenoffset.com/stillirise/internal/records"
	"chosenoffset.com/stillirise/internal/render"
	ebitenrender "chosenoffset.com/stillirise/internal/render/ebiten"
	"chosenoffset.com/stillirise/internal/simulation"
	"chosenoffset.com/stillirise/internal/ui/hud"
)

func main() {
	configPath := flag.String("config", "data/tuning.yaml", "simulation tuning file")
	hudPath := flag.String("hud", "data/hud.yaml", "HUD layout file")
	seed := flag.Int64("seed", 0, "world seed, 0 picks a new one every match")
	mute := flag.Bool("mute", false, "disable sound cues")
	volume := flag.Float64("volume", 0.5, "cue volume from 0 to 1")
	noRecords := flag.Bool("no-records", false, "hide the session best climb")
	flag.Parse()

	if err := run(*configPath, *hudPath, *seed, *mute, *volume, !*noRecords); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, hudPath string, seed int64, mute bool, volume float64, keepRecords bool) error {
	cfg, err := simulation.LoadConfig(configPath)
	if err != nil {
		return err
	}
	hudCfg, err := hud.LoadConfig(hudPath)
	if err != nil {
		return err
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInput()
	engine := ebitenrender.NewEngine()

	match := game.NewMatch(cfg, func() int64 { return seed })
	gameManager := game.NewManager(match, renderer, inputMgr)
	gameManager.HUD = hud.New(hudCfg, renderer, gameManager.ScreenWidth, gameManager.ScreenHeight)

	if !mute {
		cues := audio.NewCues(volume)
		if err := cues.Initialize(); err != nil {
			log.Printf("Warning: sound disabled: %v", err)
		} else {
			defer cues.Close()
			gameManager.Cues = cues
		}
	}

	if keepRecords {
		gameManager.Records = records.NewBook()
	}

	log.Println("Starting game...")
	return engine.Run(gameManager, render.Window{
		Title:     "Still I Rise",
		Width:     gameManager.ScreenWidth,
		Height:    gameManager.ScreenHeight,
		Resizable: true,
		TPS:       60,
	})
}
