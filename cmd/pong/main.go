// cmd/pong/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opd-ai/go-pong/pkg/audio"
	otoaudio "github.com/opd-ai/go-pong/pkg/audio/oto"
	"github.com/opd-ai/go-pong/pkg/config"
	"github.com/opd-ai/go-pong/pkg/engine"
	"github.com/opd-ai/go-pong/pkg/entity"
	"github.com/opd-ai/go-pong/pkg/event"
	"github.com/opd-ai/go-pong/pkg/input"
	"github.com/opd-ai/go-pong/pkg/logging"
	"github.com/opd-ai/go-pong/pkg/render"
	engorender "github.com/opd-ai/go-pong/pkg/render/engo"
	"github.com/opd-ai/go-pong/pkg/terminal"
)

const windowTitle = "go-pong"

func main() {
	configPath := flag.String("config", "", "Path to a JSON or YAML configuration file")
	renderer := flag.String("renderer", "", "Renderer: 'terminal', 'engo' or 'null' (overrides config)")
	audioMode := flag.String("audio", "", "Audio: 'oto', 'bell' or 'none' (overrides config)")
	logPath := flag.String("log", "", "Write JSON logs to this file")
	flag.Parse()

	if err := run(*configPath, *renderer, *audioMode, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, renderer, audioMode, logPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if renderer != "" {
		cfg.Frontend.Renderer = renderer
	}
	if audioMode != "" {
		cfg.Frontend.Audio = audioMode
	}

	logger, closeLog, err := openLogger(logPath, cfg.Frontend.Renderer)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := logging.WithSessionID(context.Background(), logging.NewSessionID())
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "starting pong",
		"renderer", cfg.Frontend.Renderer,
		"audio", cfg.Frontend.Audio,
		"arena_width", cfg.Arena.Width,
		"arena_height", cfg.Arena.Height,
	)

	sound, closeSound := openAudio(ctx, cfg.Frontend.Audio, logger)
	defer closeSound()

	scheduler := engine.NewPumpScheduler()
	dispatcher := input.NewDispatcher()
	bus := event.NewEventBus()
	bus.Subscribe(event.MatchWon, func(e event.Event) {
		if se, ok := e.(*event.ScoreEvent); ok {
			logger.Info(ctx, "match over", "winner", se.Scorer, "player", se.Player, "cpu", se.CPU)
		}
	})

	opts := []engine.Option{
		engine.WithLoop(engine.NewLoop(scheduler, nil)),
		engine.WithDispatcher(dispatcher),
		engine.WithEventBus(bus),
		engine.WithLogger(ctx, logger),
		engine.WithAudio(sound),
	}

	switch cfg.Frontend.Renderer {
	case "terminal":
		return runTerminal(ctx, cfg, scheduler, dispatcher, logger, opts)
	case "engo":
		return runEngo(cfg, scheduler, dispatcher, opts)
	case "null":
		return runHeadless(ctx, cfg, scheduler, logger, opts)
	default:
		return fmt.Errorf("%w: unknown renderer %q", config.ErrInvalidConfig, cfg.Frontend.Renderer)
	}
}

func loadConfig(path string) (*config.GameConfig, error) {
	cfg := config.DefaultConfig()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openLogger keeps logs off the screen the terminal front end draws on
func openLogger(path, renderer string) (*logging.Logger, func(), error) {
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return logging.NewLoggerTo(f, logging.LevelFromEnv()), func() { _ = f.Close() }, nil
	}
	if renderer == "terminal" {
		return logging.NewNopLogger(), func() {}, nil
	}
	return logging.NewLogger(), func() {}, nil
}

func openAudio(ctx context.Context, mode string, logger *logging.Logger) (audio.Sink, func()) {
	switch mode {
	case "oto":
		backend, err := otoaudio.New(audio.DefaultSampleRate, 4096)
		if err != nil {
			logger.Warn(ctx, "audio device unavailable, using terminal bell", "error", err.Error())
			return audio.NewBell(os.Stdout), func() {}
		}
		synth := audio.NewSynth(audio.DefaultSampleRate, nil)
		sink := audio.NewGuarded(ctx, backend, synth, logger, audio.DefaultBreakerConfig())
		return sink, func() {
			if err := backend.Close(); err != nil {
				logger.Warn(ctx, "closing audio device", "error", err.Error())
			}
		}
	case "bell":
		return audio.NewBell(os.Stdout), func() {}
	default:
		return audio.Null{}, func() {}
	}
}

func runTerminal(ctx context.Context, cfg *config.GameConfig, scheduler *engine.PumpScheduler, dispatcher *input.Dispatcher, logger *logging.Logger, opts []engine.Option) error {
	tty, err := terminal.OpenTTY()
	if err != nil {
		return err
	}
	if tty != os.Stdin {
		defer tty.Close()
	}

	raw, err := terminal.MakeRaw(tty)
	if err != nil {
		return err
	}
	defer func() {
		if err := raw.Restore(os.Stdout); err != nil {
			logger.Error(ctx, "failed to restore terminal", err)
		}
	}()

	cols, rows, err := raw.Size()
	if err != nil {
		return err
	}
	cols, rows = terminal.FitGrid(cfg.Frontend.TermCols, cfg.Frontend.TermRows, cols, rows)
	_, _ = io.WriteString(os.Stdout, terminal.HideCursor)

	arena := entity.Arena{Width: cfg.Arena.Width, Height: cfg.Arena.Height}
	screen := render.NewTerminalRenderer(os.Stdout, cols, rows, arena)
	game := engine.NewGame(cfg, append(opts, engine.WithRenderer(screen))...)

	runner := terminal.NewRunner(game, scheduler, dispatcher, terminal.Options{
		In:         tty,
		FPS:        cfg.Frontend.FPS,
		HoldWindow: time.Duration(cfg.Frontend.HoldMillis) * time.Millisecond,
		Logger:     logger,
	})
	err = runner.Run(ctx)
	_, _ = io.WriteString(os.Stdout, terminal.ClearHome)
	score := game.Score()
	fmt.Fprintf(os.Stdout, "PLAYER %d   CPU %d\r\n", score.Player, score.CPU)
	return err
}

func runEngo(cfg *config.GameConfig, scheduler *engine.PumpScheduler, dispatcher *input.Dispatcher, opts []engine.Option) error {
	renderer := engorender.NewEngoRenderer(windowTitle)
	game := engine.NewGame(cfg, append(opts, engine.WithRenderer(renderer))...)
	scene := engorender.NewGameScene(game, scheduler, renderer, dispatcher)
	engorender.Run(engorender.RunOptions{Title: windowTitle, FPS: cfg.Frontend.FPS}, scene)
	return nil
}

// runHeadless serves and pumps frames with nobody at the controls until
// interrupted, logging every call the renderer receives.
func runHeadless(ctx context.Context, cfg *config.GameConfig, scheduler *engine.PumpScheduler, logger *logging.Logger, opts []engine.Option) error {
	game := engine.NewGame(cfg, append(opts, engine.WithRenderer(render.NewNullRenderer(ctx, logger)))...)
	game.Reset()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Frontend.FPS))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			score := game.Score()
			logger.Info(ctx, "stopped", "player", score.Player, "cpu", score.CPU)
			return nil
		case <-ticker.C:
			if game.State() == engine.StateReady {
				game.KeyDown(input.KeyCode(cfg.Controls.Serve))
			}
			scheduler.Pump()
		}
	}
}
