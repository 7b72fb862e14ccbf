package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mama165/sdk-go/database"
	"github.com/samber/lo"
)

const (
	BackendBadger = "badger"
	BackendFile   = "file"
)

type Config struct {
	LogLevel         string        `env:"LOG_LEVEL,default=INFO"`
	AnnounceInterval time.Duration `env:"ANNOUNCE_INTERVAL,default=600s" validate:"gt=0"`
	MaxWallMessages  int           `env:"MAX_WALL_MESSAGES,default=3" validate:"min=1,max=1000"`

	PersistWall        bool   `env:"PERSIST_WALL,default=false"`
	PersistHeard       bool   `env:"PERSIST_HEARD,default=false"`
	PersistenceBackend string `env:"PERSISTENCE_BACKEND,default=badger" validate:"oneof=badger file"`
	BadgerFilepath     string `env:"BADGER_FILEPATH"`
	StateDir           string `env:"STATE_DIR,default=./data" validate:"required"`

	Framing         string `env:"FRAMING,default=bracketed" validate:"oneof=bracketed bare"`
	CommandMatching string `env:"COMMAND_MATCHING,default=anchored" validate:"oneof=anchored substring"`

	SerialPort        string        `env:"SERIAL_PORT"`
	SerialBaud        int           `env:"SERIAL_BAUD,default=115200" validate:"gt=0"`
	SerialReadTimeout time.Duration `env:"SERIAL_READ_TIMEOUT,default=100ms" validate:"gt=0"`
	SerialDeviceMatch string        `env:"SERIAL_DEVICE_MATCH,default=CP2102"`
	SerialEchoLines   int           `env:"SERIAL_ECHO_LINES,default=1" validate:"min=0,max=10"`

	BBSName         string `env:"BBS_NAME"`
	CensoredWords   string `env:"CENSORED_WORDS"`
	CensorCharacter string `env:"CENSOR_CHARACTER,default=*"`
}

var validate = validator.New()

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := CharacterRune(c.CensorCharacter); err != nil {
		return err
	}
	return nil
}

// BadgerPath falls back to the shared sdk-go database location.
func (c Config) BadgerPath() string {
	if c.BadgerFilepath == "" {
		return database.DefaultPath
	}
	return c.BadgerFilepath
}

// Persistence reports whether any store has to be opened.
func (c Config) Persistence() bool {
	return c.PersistWall || c.PersistHeard
}

// Words splits CENSORED_WORDS on commas, dropping blanks.
func (c Config) Words() []string {
	words := lo.Map(strings.Split(c.CensoredWords, ","), func(w string, _ int) string {
		return strings.TrimSpace(w)
	})
	return lo.Compact(words)
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CENSOR_CHARACTER must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
