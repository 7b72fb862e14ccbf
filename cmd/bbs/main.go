package main

import (
	"context"
	"fmt"
	"log/slog"
	"mesh-bbs/classifier"
	"mesh-bbs/commands"
	"mesh-bbs/internal"
	"mesh-bbs/moderation"
	"mesh-bbs/repositories"
	"mesh-bbs/runtime"
	"mesh-bbs/services"
	"mesh-bbs/transport/serial"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/benbjohnson/clock"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the board and keeps deferred cleanups (device, database)
// ahead of the process exit.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	flagSet := pflag.NewFlagSet("bbs", pflag.ContinueOnError)
	flagSet.StringVar(&config.SerialPort, "port", config.SerialPort, "serial port of the radio (default: discover)")
	flagSet.StringVar(&config.BBSName, "name", config.BBSName, "BBS name (default: name reported by the radio)")
	flagSet.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if err := config.Validate(); err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Radio
	device, err := serial.Connect(ctx, serial.Config{
		Port:        config.SerialPort,
		Baud:        config.SerialBaud,
		ReadTimeout: config.SerialReadTimeout,
		DeviceMatch: config.SerialDeviceMatch,
		EchoLines:   config.SerialEchoLines,
	}, log)
	if err != nil {
		return fmt.Errorf("device connection failed: %w", err)
	}
	defer func() {
		log.Info("Closing serial port...", "port", device.PortName)
		_ = device.Close()
	}()

	name := device.Name
	if config.BBSName != "" {
		log.Info("Overriding device name", "device", device.Name, "name", config.BBSName)
		name = config.BBSName
	}

	// 4. Board & persistence
	opts, closeStores, err := boardOptions(config, log)
	if err != nil {
		return err
	}
	defer closeStores()

	char, err := internal.CharacterRune(config.CensorCharacter)
	if err != nil {
		return err
	}
	moderator, err := moderation.NewModerator(config.Words(), char, log)
	if err != nil {
		return fmt.Errorf("moderator failed to start: %w", err)
	}
	opts.Moderator = moderator

	clk := clock.New()
	board := services.NewBoardService(log, clk, opts)

	// 5. Main loop
	lineClassifier, err := classifier.New(classifier.Framing(config.Framing))
	if err != nil {
		return err
	}
	parser, err := commands.NewParser(name, commands.Matching(config.CommandMatching))
	if err != nil {
		return err
	}
	announcer := runtime.NewAnnouncer(log, clk, device, name, config.AnnounceInterval)
	server := runtime.NewServer(log, device, lineClassifier, parser, board, announcer)

	if err = server.Run(ctx); err != nil {
		return fmt.Errorf("bbs stopped: %w", err)
	}
	log.Info("Program stopped cleanly")
	return nil
}

// boardOptions opens the configured backend and binds only the enabled
// stores.
func boardOptions(config internal.Config, log *slog.Logger) (services.BoardOptions, func(), error) {
	opts := services.BoardOptions{MaxWallMessages: config.MaxWallMessages}
	if !config.Persistence() {
		return opts, func() {}, nil
	}

	switch config.PersistenceBackend {
	case internal.BackendFile:
		repository, err := repositories.NewFileRepository(config.StateDir, log)
		if err != nil {
			return opts, nil, fmt.Errorf("state directory failed: %w", err)
		}
		if config.PersistWall {
			opts.WallStore = repository
		}
		if config.PersistHeard {
			opts.HeardStore = repository
		}
		return opts, func() {}, nil
	default:
		db, err := badger.Open(badger.DefaultOptions(config.BadgerPath()).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return opts, nil, fmt.Errorf("database opening failed: %w", err)
		}
		repository := repositories.NewBoardRepository(db, log)
		if config.PersistWall {
			opts.WallStore = repository
		}
		if config.PersistHeard {
			opts.HeardStore = repository
		}
		return opts, func() {
			log.Info("Closing BadgerDB...")
			_ = db.Close()
		}, nil
	}
}
