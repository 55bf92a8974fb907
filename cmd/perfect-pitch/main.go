package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/perfect-pitch/audio"
	"github.com/lixenwraith/perfect-pitch/config"
	"github.com/lixenwraith/perfect-pitch/constants"
	"github.com/lixenwraith/perfect-pitch/core"
	"github.com/lixenwraith/perfect-pitch/engine"
	"github.com/lixenwraith/perfect-pitch/export"
	"github.com/lixenwraith/perfect-pitch/modes"
	"github.com/lixenwraith/perfect-pitch/render"
	"github.com/spf13/cobra"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, envErr := config.Load()

	root := newRootCmd(&cfg, envErr)
	root.AddCommand(newNotesCmd())
	cobra.CheckErr(root.Execute())
}

func newRootCmd(cfg *config.Config, envErr error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perfect-pitch",
		Short: "Guess the hidden note sequence by ear",
		Long: `perfect-pitch plays notes from the C major scale and hides a random sequence of them.
Type note letters to build a guess, Enter to submit, and use the per-position
feedback to find the sequence before the attempts run out.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(*cfg)
		},
	}
	cfg.BindFlags(cmd.Flags())
	return cmd
}

// run owns the terminal and drives the game loop until the player quits
func run(cfg config.Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger, logFile := setupLogging(cfg.Debug, level)
	if logFile != nil {
		defer logFile.Close()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info().Int64("seed", seed).Str("round", cfg.Round().String()).Msg("starting")

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashScreen(screen)

	tones := audio.NewTonePlayer(cfg.Audio(), logger)
	defer func() {
		logger.Info().Int("tones", tones.Played()).Bool("device_open", tones.Available()).Msg("audio shutdown")
		tones.Close()
	}()

	clock := engine.NewTimeProvider()
	grid := render.NewGrid(clock)
	confetti := render.NewConfetti(clock, rand.New(rand.NewSource(seed+1)))

	session, err := engine.NewSession(cfg.Round(), engine.SessionDeps{
		Board:      grid,
		Tones:      tones,
		Clock:      clock,
		Rand:       rand.New(rand.NewSource(seed)),
		Celebrator: confetti,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	if cfg.ExportDir != "" {
		exporter := export.NewExporter(cfg.ExportDir, logger.With().Str("component", "export").Logger())
		session.AddListener(exporter)
		// Flush in-flight files before exit
		defer exporter.Wait()
	}

	presets := cfg.Presets()
	renderer := render.NewTerminalRenderer(screen, grid, confetti, clock, presets)
	inputHandler := modes.NewInputHandler(session, presets, screen, logger)

	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	renderer.RenderFrame(render.FrameFromSession(session))
	for {
		select {
		case ev := <-eventChan:
			if !inputHandler.HandleEvent(ev) {
				logger.Info().Msg("quit")
				return nil
			}
			renderer.RenderFrame(render.FrameFromSession(session))
		case <-frameTicker.C:
			session.Update()
			renderer.RenderFrame(render.FrameFromSession(session))
		}
	}
}
