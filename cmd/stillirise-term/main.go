package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/stillirise/internal/audio"
	"chosenoffset.com/stillirise/internal/game"
	"chosenoffset.com/stillirise/internal/input"
	"chosenoffset.com/stillirise/internal/records"
	"chosenoffset.com/stillirise/internal/render/term"
	"chosenoffset.com/stillirise/internal/simulation"
)

type options struct {
	configPath  string
	seed        int64
	fps         int
	hold        time.Duration
	mute        bool
	volume      float64
	logPath     string
	keepRecords bool
}

func main() {
	var opts options
	var noRecords bool
	flag.StringVar(&opts.configPath, "config", "data/tuning.yaml", "simulation tuning file")
	flag.Int64Var(&opts.seed, "seed", 0, "world seed, 0 picks a new one every match")
	flag.IntVar(&opts.fps, "fps", 60, "simulation frames per second")
	flag.DurationVar(&opts.hold, "hold", input.DefaultTTL, "how long a key counts as held after its last repeat; raise it if movement stutters")
	flag.BoolVar(&opts.mute, "mute", false, "disable sound cues")
	flag.Float64Var(&opts.volume, "volume", 0.5, "cue volume from 0 to 1")
	flag.StringVar(&opts.logPath, "log", "", "write logs to this file instead of discarding them")
	flag.BoolVar(&noRecords, "no-records", false, "hide the session best climb")
	flag.Parse()
	opts.keepRecords = !noRecords

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	// The screen owns the terminal while running, so logs go to a file or nowhere
	if opts.logPath == "" {
		log.SetOutput(io.Discard)
	} else {
		f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg, err := simulation.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	termOpts := term.Options{FPS: opts.fps, Hold: opts.hold}
	if !opts.mute {
		cues := audio.NewCues(opts.volume)
		if err := cues.Initialize(); err != nil {
			log.Printf("Warning: sound disabled: %v", err)
		} else {
			defer cues.Close()
			termOpts.Cues = cues
		}
	}
	if opts.keepRecords {
		termOpts.Records = records.NewBook()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	match := game.NewMatch(cfg, func() int64 { return opts.seed })
	log.Println("Starting terminal game...")

	err = term.New(screen, match, termOpts).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
