package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ashgrove/dmgcore/internal/cartridge"
	"github.com/ashgrove/dmgcore/internal/gameboy"
	"github.com/ashgrove/dmgcore/pkg/display"
	"github.com/ashgrove/dmgcore/pkg/log"
)

func main() {
	app := &cli.App{
		Name:      "dmgcore",
		Usage:     "dmgcore [options] <ROM file>",
		UsageText: "dmgcore [--headless --frames N] <ROM file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "headless",
				Usage: "run without opening a terminal display",
			},
			&cli.IntFlag{
				Name:  "frames",
				Usage: "number of frames to run in headless mode",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "dmgcore:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("a ROM path is required")
	}
	romPath := c.Args().Get(0)

	logger := log.New()

	rom, err := cartridge.LoadROM(romPath)
	if err != nil {
		return err
	}

	gb, err := gameboy.New(rom, gameboy.WithLogger(logger))
	if err != nil {
		return err
	}

	if c.Bool("headless") {
		return runHeadless(gb, c.Int("frames"))
	}
	return runInteractive(gb, logger)
}

func runHeadless(gb *gameboy.GameBoy, frames int) error {
	if frames <= 0 {
		return errors.New("--headless requires --frames with a positive value")
	}
	for i := 0; i < frames; i++ {
		gb.RunFrame()
	}
	return nil
}

func runInteractive(gb *gameboy.GameBoy, logger log.Logger) error {
	renderer, err := display.NewTerminalRenderer()
	if err != nil {
		return err
	}
	defer renderer.Close()

	renderer.SetTitle(gb.Title())

	for !renderer.Closed() {
		frame := gb.RunFrame()
		if err := renderer.Present(frame); err != nil {
			return err
		}

		pressed, released := renderer.PollInput()
		for _, b := range pressed {
			gb.PressButton(b)
		}
		for _, b := range released {
			gb.ReleaseButton(b)
		}
	}
	return nil
}
