package main

import (
	"fmt"
	"io"
	"log/slog"
	"mesh-bbs/domain"
	"mesh-bbs/internal"
	"mesh-bbs/repositories"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/pflag"
)

// snapshot is what both backends can load.
type snapshot interface {
	LoadWall() ([]domain.WallEntry, error)
	LoadHeard() ([]domain.HeardEntry, error)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	flagSet := pflag.NewFlagSet("wallinspect", pflag.ContinueOnError)
	flagSet.StringVar(&config.Backend, "backend", config.Backend, "badger or file")
	flagSet.StringVar(&config.BadgerFilepath, "db", config.BadgerFilepath, "path to badger DB")
	flagSet.StringVar(&config.StateDir, "dir", config.StateDir, "flat-file state directory")
	flagSet.BoolVar(&config.Colours, "colours", config.Colours, "colour section headers")
	if err = flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	log := logs.GetLoggerFromLevel(slog.LevelWarn)

	var store snapshot
	switch config.Backend {
	case internal.BackendFile:
		if store, err = repositories.NewFileRepository(config.StateDir, log); err != nil {
			return err
		}
	case internal.BackendBadger:
		db, err := openDB(config.BadgerFilepath)
		if err != nil {
			return fmt.Errorf("error while opening Badger: %w", err)
		}
		defer db.Close()
		store = repositories.NewBoardRepository(db, log)
	default:
		return fmt.Errorf("unknown backend %q", config.Backend)
	}

	wall, err := store.LoadWall()
	if err != nil {
		return err
	}
	heard, err := store.LoadHeard()
	if err != nil {
		return err
	}
	Render(os.Stdout, wall, heard, config.Colours)
	return nil
}

// Render prints the wall then the heard table.
func Render(w io.Writer, wall []domain.WallEntry, heard []domain.HeardEntry, colours bool) {
	section(w, fmt.Sprintf("Wall (%d)", len(wall)), colours)
	table := newTable(w, []string{"#", "Posted", "Sender", "Message", "ID"})
	for i, e := range wall {
		table.Append([]string{
			fmt.Sprint(i + 1),
			e.At.Format(domain.WallTimeLayout),
			e.Sender,
			e.Body,
			shortID(e.ID.String()),
		})
	}
	table.Render()

	section(w, fmt.Sprintf("Heard (%d)", len(heard)), colours)
	table = newTable(w, []string{"Sender", "Last heard"})
	for _, e := range heard {
		table.Append([]string{e.Sender, e.At.Format(domain.HeardTimeLayout)})
	}
	table.Render()
}

func section(w io.Writer, title string, colours bool) {
	header := fmt.Sprintf("  ====== %s ======", title)
	if colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Fprintln(w, header)
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

// first 8 characters are enough to tell entries apart
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil {
		if strings.Contains(err.Error(), "Log truncate required") {
			return nil, fmt.Errorf("%w: stop the BBS before inspecting", err)
		}
		return nil, err
	}
	return db, nil
}
