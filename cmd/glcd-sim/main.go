// SPDX-License-Identifier: Apache-2.0

// Command glcd-sim runs a small animated scene on a terminal, or renders it
// once into a PNG file.
package main

import (
	"flag"
	"image/png"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	glcd "github.com/wundergraph/go-glcd"
	"github.com/wundergraph/go-glcd/arena"
	"github.com/wundergraph/go-glcd/gfx"
	"github.com/wundergraph/go-glcd/termdisplay"
)

type options struct {
	pool        int
	orientation int
	fps         int
	duration    time.Duration
	snapshot    string
}

func main() {
	var opts options
	flag.IntVar(&opts.pool, "pool", 64<<10, "arena pool size in bytes")
	flag.IntVar(&opts.orientation, "orientation", 0, "screen rotation: 0, 90, 180 or 270")
	flag.IntVar(&opts.fps, "fps", 30, "frames per second")
	flag.DurationVar(&opts.duration, "duration", 0, "stop after this long; 0 runs until Esc")
	flag.StringVar(&opts.snapshot, "snapshot", "", "render one frame of a native-size panel into this PNG file and exit")
	verbose := flag.Bool("v", false, "log render list changes to stderr")
	flag.Parse()

	if *verbose {
		glcd.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if opts.fps <= 0 {
		log.Fatal("glcd-sim: -fps must be positive")
	}

	var err error
	if opts.snapshot != "" {
		err = snapshot(opts)
	} else {
		err = run(opts)
	}
	if err != nil {
		log.Fatalf("glcd-sim: %v", err)
	}
}

func newManager(d gfx.Display, opts options) (*glcd.Manager, error) {
	a, err := arena.New(make([]byte, opts.pool))
	if err != nil {
		return nil, err
	}
	return glcd.New(d, a,
		glcd.WithOrientation(gfx.Orientation(opts.orientation)),
		glcd.WithBackground(gfx.Black),
		glcd.WithClear(),
	)
}

func snapshot(opts options) error {
	fb := gfx.NewFramebuffer(gfx.NativeWidth, gfx.NativeHeight)
	m, err := newManager(fb, opts)
	if err != nil {
		return err
	}
	if _, err := buildScene(m); err != nil {
		return err
	}

	f, err := os.Create(opts.snapshot)
	if err != nil {
		return err
	}
	if err := png.Encode(f, fb); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func run(opts options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	w, h := termdisplay.Fit(screen.Size())
	disp, err := termdisplay.New(screen, w, h)
	if err != nil {
		return err
	}
	m, err := newManager(disp, opts)
	if err != nil {
		return err
	}
	s, err := buildScene(m)
	if err != nil {
		return err
	}
	disp.Show()

	q := glcd.NewQueue(m, glcd.DefaultQueueSize)
	frame := time.Second / time.Duration(opts.fps)
	stop := make(chan struct{})
	defer close(stop)
	go animate(q, s, frame, stop)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	var deadline <-chan time.Time
	if opts.duration > 0 {
		deadline = time.After(opts.duration)
	}
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	for {
		select {
		case <-deadline:
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				disp.Redraw()
				disp.Show()
			}
		case <-ticker.C:
			if err := q.Drain(); err != nil {
				glcd.Logger().Warn("glcd-sim: intents failed", "error", err)
			}
			disp.Show()
		}
	}
}

// animate tweens the ball between random points of the scene and posts a
// move for every frame.
func animate(q *glcd.Queue, s *scene, frame time.Duration, stop <-chan struct{}) {
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	pick := func() gfx.Point {
		b := s.bounds
		return gfx.Pt(b.Min.X+rng.IntN(max(b.Width(), 1)), b.Min.Y+rng.IntN(max(b.Height(), 1)))
	}
	from := pick()
	var tx, ty *gween.Tween
	next := func() {
		to := pick()
		secs := float32(1 + rng.IntN(2))
		tx = gween.New(float32(from.X), float32(to.X), secs, ease.InOutQuad)
		ty = gween.New(float32(from.Y), float32(to.Y), secs, ease.OutBounce)
	}
	next()

	dt := float32(frame.Seconds())
	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
		x, doneX := tx.Update(dt)
		y, doneY := ty.Update(dt)
		p := gfx.Pt(int(x), int(y))
		if p != from {
			if err := q.Post(glcd.MoveIntent{ID: s.ball, To: p, RedrawUnderneath: true}); err != nil {
				continue
			}
			from = p
		}
		if doneX && doneY {
			next()
		}
	}
}
