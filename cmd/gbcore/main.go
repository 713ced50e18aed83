package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli"

	"github.com/mrsharp/gbcore/gb"
	"github.com/mrsharp/gbcore/gb/backend"
	"github.com/mrsharp/gbcore/gb/input"
)

func main() {
	app := cli.NewApp()
	app.Name = "gbcore"
	app.Description = "A cycle-paced Game Boy emulation core"
	app.Usage = "gbcore [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.StringFlag{
			Name:  "backend",
			Usage: "Frame sink to use: terminal, sdl2, headless",
			Value: "terminal",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run without a graphical interface",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save a frame snapshot every N frames in headless mode (0 = disabled)",
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save frame snapshots (default: temp directory)",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug-level logging",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("gbcore exited with an error", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("debug") {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
	}

	romData, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("reading ROM: %w", err)
	}

	m := gb.New()
	if err := m.LoadROM(romData); err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}
	slog.Info("cartridge loaded", "title", m.CartridgeTitle())

	if c.Bool("headless") {
		return runHeadless(c, m, romPath)
	}
	return runInteractive(c, m)
}

func runHeadless(c *cli.Context, m *gb.Machine, romPath string) error {
	frames := c.Int("frames")
	if frames <= 0 {
		return errors.New("headless mode requires --frames with a positive value")
	}

	snapshotInterval := c.Int("snapshot-interval")
	snapshotDir := c.String("snapshot-dir")
	if snapshotInterval > 0 {
		if snapshotDir == "" {
			dir, err := os.MkdirTemp("", "gbcore-snapshots-*")
			if err != nil {
				return fmt.Errorf("creating snapshot directory: %w", err)
			}
			snapshotDir = dir
		} else if err := os.MkdirAll(snapshotDir, 0o755); err != nil {
			return fmt.Errorf("creating snapshot directory: %w", err)
		}
	}

	romName := strings.TrimSuffix(filepath.Base(romPath), filepath.Ext(romPath))
	sink := backend.NewHeadless()

	slog.Info("running headless", "frames", frames, "snapshot_interval", snapshotInterval)
	for i := 1; i <= frames; i++ {
		m.RunUntilFrame()
		if err := backend.Render(sink, m.PPU.FrameBuffer()); err != nil {
			return err
		}

		if snapshotInterval > 0 && i%snapshotInterval == 0 {
			path := filepath.Join(snapshotDir, fmt.Sprintf("%s_frame_%d.txt", romName, i))
			if err := saveSnapshot(m, path); err != nil {
				slog.Error("saving snapshot", "frame", i, "error", err)
			}
		}
		if i%60 == 0 {
			slog.Info("frame progress", "completed", i, "total", frames)
		}
	}

	slog.Info("headless run complete", "frames", frames)
	return nil
}

func runInteractive(c *cli.Context, m *gb.Machine) error {
	switch c.String("backend") {
	case "sdl2":
		return runSDL2(m)
	case "headless":
		return runHeadless(c, m, "interactive")
	default:
		return runTerminal(m)
	}
}

func runTerminal(m *gb.Machine) error {
	term := backend.NewTerminal()
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Close()

	const frameTime = time.Second / 60
	for {
		m.RunUntilFrame()
		if err := backend.Render(term, m.PPU.FrameBuffer()); err != nil {
			return err
		}

		for ev := term.PollKey(); ev != nil; ev = term.PollKey() {
			if ev.Key() == tcell.KeyEscape {
				return nil
			}
			input.HandleTerminalKey(m.Bus, ev)
		}

		time.Sleep(frameTime)
	}
}

func runSDL2(m *gb.Machine) error {
	sink := backend.NewSDL2(m.CartridgeTitle(), 4)
	if err := sink.Init(m.CartridgeTitle()); err != nil {
		return err
	}
	defer sink.Close()

	const frameTime = time.Second / 60
	for {
		m.RunUntilFrame()
		if err := backend.Render(sink, m.PPU.FrameBuffer()); err != nil {
			return err
		}
		if sink.PollQuit() {
			return nil
		}
		time.Sleep(frameTime)
	}
}

// saveSnapshot writes the current frame as half-block terminal art, a
// plain-text artifact usable in environments with no display at all.
func saveSnapshot(m *gb.Machine, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# gbcore frame snapshot: %s\n", m.CartridgeTitle())
	fmt.Fprintf(file, "# 160x144 pixels -> 160x72 text rows, upper-half-block characters\n")

	pixels := m.PPU.FrameBuffer().Pixels()
	const width, height = 160, 144
	for y := 0; y < height; y += 2 {
		var line strings.Builder
		for x := 0; x < width; x++ {
			if pixels[y*width+x] == 0xFFFFFFFF {
				line.WriteRune(' ')
			} else {
				line.WriteRune('▀')
			}
		}
		fmt.Fprintln(file, line.String())
	}
	return nil
}
