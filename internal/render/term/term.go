// Package term runs a match inside a terminal. Keys are read on their own
// goroutine and the simulation is stepped by a fixed-rate scheduler, so a
// slow terminal never changes the game speed.
package term

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/stillirise/internal/game"
	"chosenoffset.com/stillirise/internal/input"
	"chosenoffset.com/stillirise/internal/records"
	"chosenoffset.com/stillirise/internal/ui/menu"
	"chosenoffset.com/stillirise/internal/world"
)

// Smallest terminal that still fits both panels and the HUD
const (
	MinWidth  = 60
	MinHeight = 20
)

type command int

const (
	cmdStart command = iota
	cmdExit
	cmdPowerUp
	cmdPause
	cmdResize
	cmdQuit
)

// Movement keys for both sides
var moveKeys = []rune{'a', 'd', 'w', 'j', 'l', 'i'}

var (
	styleGround  = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleStatic  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleMoving  = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleGood    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleBad     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleLeft    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleRight   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleHeart   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBroken  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleDivider = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHint    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Options tune a terminal frontend
type Options struct {
	FPS     int
	Hold    time.Duration  // How long a key counts as held after its last repeat, 0 for the default
	Cues    game.CuePlayer // Optional
	Records *records.Book  // Optional
}

// Terminal draws a match with tcell and feeds it keyboard input
type Terminal struct {
	screen   tcell.Screen
	match    *game.Match
	keys     *input.HeldKeys
	commands chan command
	cues     game.CuePlayer
	records  *records.Book
	fps      int
	paused   bool
}

// New wraps an initialized screen. The caller owns the screen and must Fini it.
func New(screen tcell.Screen, match *game.Match, opts Options) *Terminal {
	return &Terminal{
		screen:   screen,
		match:    match,
		keys:     input.NewHeldKeys(opts.Hold),
		commands: make(chan command, 16),
		cues:     opts.Cues,
		records:  opts.Records,
		fps:      opts.FPS,
	}
}

// Run reads events and steps the match until the player quits or ctx is
// cancelled. Quitting returns nil.
func (t *Terminal) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go t.pollEvents(ctx)

	t.draw()
	return game.NewScheduler(t.fps).Run(ctx, t.tick)
}

// pollEvents blocks on the screen until it is finalized
func (t *Terminal) pollEvents(ctx context.Context) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		if ctx.Err() != nil {
			return
		}
		t.handleEvent(ev)
	}
}

// handleEvent runs on the event goroutine. Movement goes to the held key
// set; everything else is queued for the next tick.
func (t *Terminal) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			t.send(cmdQuit)
		case tcell.KeyEnter:
			t.send(cmdStart)
		case tcell.KeyRune:
			r := unicode.ToLower(ev.Rune())
			switch r {
			case 'q':
				t.send(cmdQuit)
			case 'r':
				t.send(cmdStart)
			case 'x':
				t.send(cmdExit)
			case 't':
				t.send(cmdPowerUp)
			case 'p':
				t.send(cmdPause)
			default:
				t.keys.Press(r)
			}
		}
	case *tcell.EventResize:
		t.send(cmdResize)
	}
}

// send drops the command if the queue is full
func (t *Terminal) send(c command) {
	select {
	case t.commands <- c:
	default:
	}
}

// tick is one scheduler frame. It returns false once the player quits.
func (t *Terminal) tick() bool {
	for drained := false; !drained; {
		select {
		case c := <-t.commands:
			if !t.apply(c) {
				return false
			}
		default:
			drained = true
		}
	}

	if t.match.State() == game.StateRunning && !t.paused {
		result := t.match.Step(t.readInput())
		if result.GameOver && t.records != nil {
			t.records.Add(t.match.Summary())
		}
		if t.cues != nil {
			for _, p := range result.Pickups {
				t.cues.Pickup(p.Good)
			}
			if result.GameOver {
				t.cues.GameOver()
			}
		}
	}

	t.draw()
	return true
}

func (t *Terminal) apply(c command) bool {
	var err error
	switch c {
	case cmdQuit:
		return false
	case cmdStart:
		switch t.match.State() {
		case game.StateNotStarted:
			err = t.match.Start()
		case game.StateGameOver:
			err = t.match.Restart()
		}
		t.keys.Clear()
		t.paused = false
	case cmdExit:
		if t.match.State() == game.StateGameOver {
			err = t.match.Exit()
		}
	case cmdPowerUp:
		if t.match.State() == game.StateRunning && !t.match.PowerUpActive() {
			if _, err = t.match.ActivatePowerUp(); err == nil && t.cues != nil {
				t.cues.PowerUp()
			}
		}
	case cmdPause:
		if t.match.State() == game.StateRunning {
			t.paused = !t.paused
		}
	case cmdResize:
		t.screen.Sync()
	}
	if err != nil {
		log.Printf("Terminal: command rejected: %v", err)
	}
	return true
}

// readInput maps held keys to controls: A/D/W on the left, J/L/I on the right
func (t *Terminal) readInput() game.Input {
	held := t.keys.Snapshot(moveKeys...)
	return game.Input{
		Left:  game.Controls{MoveLeft: held['a'], MoveRight: held['d'], Jump: held['w']},
		Right: game.Controls{MoveLeft: held['j'], MoveRight: held['l'], Jump: held['i']},
	}
}

// view maps arena coordinates to cells. Row 0 is the HUD.
type view struct {
	cols, rows int
	sx, sy     float64
	mid        int
}

func (t *Terminal) newView(w, h int) view {
	cfg := t.match.Config()
	v := view{
		cols: w,
		rows: h,
		sx:   float64(w) / cfg.Arena.Width,
		sy:   float64(h-1) / cfg.Arena.Height,
	}
	v.mid = v.col(cfg.HalfWidth())
	return v
}

func (v view) col(x float64) int { return int(x * v.sx) }
func (v view) row(y float64) int { return 1 + int(y*v.sy) }

// span returns the columns a panel may draw in
func (v view) span(side world.Side) (int, int) {
	if side == world.SideRight {
		return v.mid + 1, v.cols
	}
	return 0, v.mid
}

func (t *Terminal) draw() {
	s := t.screen
	s.Clear()

	w, h := s.Size()
	if w < MinWidth || h < MinHeight {
		t.text(0, 0, fmt.Sprintf("Terminal too small (%dx%d), need %dx%d", w, h, MinWidth, MinHeight), styleBanner)
		s.Show()
		return
	}

	v := t.newView(w, h)
	snap := t.match.Snapshot()

	switch snap.State {
	case game.StateNotStarted:
		t.drawTitle(v)
	default:
		for _, p := range snap.Panels {
			t.drawPanel(v, p, snap.HitBox)
		}
		for y := 1; y < v.rows; y++ {
			s.SetContent(v.mid, y, '│', nil, styleDivider)
		}
		t.drawHearts(v, snap.Hearts)
		t.drawHUD(v, snap)

		if snap.State == game.StateGameOver {
			t.drawGameOver(v)
		} else if t.paused {
			t.banner(v, v.rows/2, []string{"PAUSED", "", "P to resume"})
		}
	}

	s.Show()
}

func (t *Terminal) drawPanel(v view, p game.Panel, hitBox float64) {
	lo, hi := v.span(p.Side)

	for _, pl := range p.Platforms {
		ch, style := '=', styleStatic
		switch {
		case pl.Side == world.SideShared:
			ch, style = '#', styleGround
		case pl.Moving:
			ch, style = '~', styleMoving
		}
		t.fill(v, lo, hi, pl.X, pl.Y, pl.Width, pl.Height, ch, style)
	}

	for _, c := range p.Collectibles {
		style := styleBad
		if c.Good {
			style = styleGood
		}
		t.put(v, lo, hi, v.col(c.X+hitBox/2), v.row(c.Y+hitBox/2), c.Type.Glyph(), style)
	}

	style := styleLeft
	if p.Side == world.SideRight {
		style = styleRight
	}
	a := p.Avatar
	t.fill(v, lo, hi, a.X, a.Y, a.Width, a.Height, '@', style)
}

func (t *Terminal) drawHearts(v view, hearts []game.HeartView) {
	for _, h := range hearts {
		ch, style := '♥', styleHeart
		if !h.Good {
			ch, style = '✗', styleBroken
		}
		if h.Opacity < 0.3 {
			style = style.Dim(true)
		}
		t.put(v, 0, v.cols, v.col(h.X), v.row(h.Y), ch, style)
	}
}

func (t *Terminal) drawHUD(v view, snap game.Snapshot) {
	maxLives := t.match.Config().Avatar.MaxLives
	labels := [2]string{"GOOD", "HARD"}
	for i, p := range snap.Panels {
		lo, _ := v.span(p.Side)
		lives := min(p.Avatar.Lives, maxLives)
		hearts := strings.Repeat("♥", lives) + strings.Repeat("·", maxLives-lives)
		line := fmt.Sprintf("%s %s %d pts %.0fm", labels[i], hearts, p.Avatar.Score, p.Avatar.Climbed)
		t.text(lo+1, 0, line, styleBanner)
	}
	if !snap.PowerUpActive && snap.State == game.StateRunning {
		hint := "[T] TUPIT"
		t.text(v.cols-len(hint), v.rows-1, hint, styleHint)
	}
}

func (t *Terminal) drawTitle(v view) {
	t.banner(v, v.rows/2-4, []string{
		"STILL I RISE",
		"",
		"Two climbers, one screen. Climb as high as you can.",
		"Good path: A/D move, W jump",
		"Hard path: J/L move, I jump",
		"B $ F help you. X ! P b hurt you.",
		"T power-up  P pause  Q quit",
		"",
		"Press Enter to start",
	})
}

func (t *Terminal) drawGameOver(v view) {
	sum := t.match.Summary()
	if t.records != nil {
		r := t.records.Current()
		sum.Best, sum.BestScore = r.Best(), r.BestScore
	}
	line := func(s menu.SideSummary) string {
		return fmt.Sprintf("%s: %d pts, %.0fm, %d good, %d bad, %d lives", s.Label, s.Score, s.Climbed, s.Good, s.Bad, s.Lives)
	}
	t.banner(v, v.rows/2-3, []string{
		"GAME OVER",
		sum.Verdict(),
		line(sum.Left),
		line(sum.Right),
		sum.SessionLine(),
		"Enter play again  X title  Q quit",
	})
}

// banner centers lines starting at row y
func (t *Terminal) banner(v view, y int, lines []string) {
	for i, l := range lines {
		x := (v.cols - len([]rune(l))) / 2
		t.text(max(x, 0), y+i, l, styleBanner)
	}
}

func (t *Terminal) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// fill covers an arena rect with ch, at least one cell, clipped to [lo, hi)
func (t *Terminal) fill(v view, lo, hi int, x, y, w, h float64, ch rune, style tcell.Style) {
	c0, r0 := v.col(x), v.row(y)
	c1, r1 := max(c0, v.col(x+w)-1), max(r0, v.row(y+h)-1)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			t.put(v, lo, hi, c, r, ch, style)
		}
	}
}

func (t *Terminal) put(v view, lo, hi, c, r int, ch rune, style tcell.Style) {
	if c < lo || c >= hi || r < 1 || r >= v.rows {
		return
	}
	t.screen.SetContent(c, r, ch, nil, style)
}
