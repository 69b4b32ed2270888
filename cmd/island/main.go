package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/lixenwraith/island/audio"
	"github.com/lixenwraith/island/constants"
	"github.com/lixenwraith/island/render"
	"github.com/lixenwraith/island/sim"
	"github.com/lixenwraith/island/terminal"
)

var (
	fpsFlag   = flag.Int("fps", constants.FrameRate, "Frame rate (physics is tuned for 10)")
	muteFlag  = flag.Bool("mute", false, "Disable splash sounds")
	debugFlag = flag.Bool("debug", false, "Enable debug logging to logs/island.log")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the scene crashes
	defer func() {
		if r := recover(); r != nil {
			// Restore terminal to sane state immediately
			terminal.EmergencyReset(os.Stdout)

			// Print error and stack trace to stderr so it's visible after reset
			fmt.Fprintf(os.Stderr, "\n\x1b[31mISLAND CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	frameInterval := constants.FrameUpdateInterval
	if *fpsFlag > 0 && *fpsFlag != constants.FrameRate {
		frameInterval = time.Second / time.Duration(*fpsFlag)
	}

	// Initialize terminal
	term := terminal.New()
	if err := term.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer term.Fini()

	ext, err := term.PollExtent()
	if err != nil {
		term.Fini()
		fmt.Fprintf(os.Stderr, "Failed to query terminal size: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Scene started: %dx%d at %v/frame", ext.Width, ext.Height, frameInterval)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	water := sim.NewWater(ext.Width, ext.Height)
	drips := sim.NewDrips()
	cloud := sim.NewCloud(ext.Width)

	comp, err := render.NewCompositor(term.Output())
	if err != nil {
		term.Fini()
		fmt.Fprintf(os.Stderr, "Failed to create compositor: %v\n", err)
		os.Exit(1)
	}

	// Initialize audio engine, continue silently on failure
	audioEngine := audio.NewEngine()
	if err := audioEngine.Start(); err != nil {
		log.Printf("Audio start failed: %v (continuing without audio)", err)
	} else {
		defer audioEngine.Stop()
	}
	audioEngine.SetMuted(*muteFlag)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	frameTicker := time.NewTicker(frameInterval)
	defer frameTicker.Stop()

	for {
		select {
		case sig := <-sigChan:
			log.Printf("Scene stopped: %v", sig)
			return

		case <-frameTicker.C:
			ext, err := term.PollExtent()
			if err != nil {
				term.Fini()
				fmt.Fprintf(os.Stderr, "Terminal size query failed: %v\n", err)
				os.Exit(1)
			}
			if ext.Updated {
				log.Printf("Resize: %dx%d", ext.Width, ext.Height)
				water.Reinit(ext.Width, ext.Height)
			}

			for _, speed := range drips.Advance(water) {
				audioEngine.PlaySplash(speed)
			}
			cloud.Advance(ext.Width, ext.Height, ext.Updated, drips, rng)
			water.Step()

			comp.Render(water, drips.All(), cloud.Col(), ext.Width, ext.Height)
		}
	}
}
