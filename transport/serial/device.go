package serial

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"mesh-bbs/errors"
	"strings"
	"time"

	goserial "go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

const (
	// USB IDs of the Silicon Labs CP210x bridge fitted on the radio.
	cp210xVID = "10C4"
	cp210xPID = "EA60"

	firmwareBanner = "WaveShark firmware"

	handshakeAttempts  = 20
	fieldTestEchoLines = 3
)

type Config struct {
	Port        string
	Baud        int
	ReadTimeout time.Duration
	DeviceMatch string
	EchoLines   int
}

// Device is a connected radio with its mesh name.
type Device struct {
	*LineTransport
	Name     string
	PortName string
}

// Connect finds the radio, opens it and runs the handshake.
func Connect(ctx context.Context, cfg Config, log *slog.Logger) (*Device, error) {
	portName := cfg.Port
	if portName == "" {
		ports, err := enumerator.GetDetailedPortsList()
		if err != nil {
			return nil, fmt.Errorf("enumerate serial ports: %w", err)
		}
		if portName, err = Discover(ports, cfg.DeviceMatch); err != nil {
			return nil, err
		}
	}

	port, err := goserial.Open(portName, &goserial.Mode{BaudRate: cfg.Baud})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", portName, err)
	}
	if err = port.SetReadTimeout(cfg.ReadTimeout); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("set read timeout on %s: %w", portName, err)
	}

	transport := NewLineTransport(port, log.With("port", portName), cfg.EchoLines)
	name, err := Handshake(ctx, transport)
	if err != nil {
		_ = transport.Close()
		return nil, err
	}
	log.Info("Connected to mesh device", "port", portName, "name", name)
	return &Device{LineTransport: transport, Name: name, PortName: portName}, nil
}

// Discover picks the first port whose product matches or that carries the
// CP210x USB IDs.
func Discover(ports []*enumerator.PortDetails, match string) (string, error) {
	for _, p := range ports {
		if p == nil {
			continue
		}
		if match != "" && strings.Contains(strings.ToLower(p.Product), strings.ToLower(match)) {
			return p.Name, nil
		}
		if p.IsUSB && strings.EqualFold(p.VID, cp210xVID) && strings.EqualFold(p.PID, cp210xPID) {
			return p.Name, nil
		}
	}
	return "", fmt.Errorf("%w: looked for %q among %d ports", errors.ErrDeviceNotFound, match, len(ports))
}

// Handshake checks the firmware, reads the device name and switches the
// serial output to field test mode so messages carry the RSS preamble.
func Handshake(ctx context.Context, t *LineTransport) (string, error) {
	if err := t.send(ctx, "/VERSION", 1); err != nil {
		return "", fmt.Errorf("%w: /VERSION: %w", errors.ErrHandshake, err)
	}
	version, err := expectLine(ctx, t)
	if err != nil {
		return "", fmt.Errorf("%w: /VERSION: %w", errors.ErrHandshake, err)
	}
	if !strings.Contains(version, firmwareBanner) {
		return "", fmt.Errorf("%w: unexpected version reply %q", errors.ErrHandshake, version)
	}

	if err = t.send(ctx, "/NAME", 1); err != nil {
		return "", fmt.Errorf("%w: /NAME: %w", errors.ErrHandshake, err)
	}
	reply, err := expectLine(ctx, t)
	if err != nil {
		return "", fmt.Errorf("%w: /NAME: %w", errors.ErrHandshake, err)
	}
	name, err := ParseName(reply)
	if err != nil {
		return "", err
	}

	if err = t.send(ctx, "/SEROUT FIELDTEST", fieldTestEchoLines); err != nil {
		return "", fmt.Errorf("%w: /SEROUT: %w", errors.ErrHandshake, err)
	}
	return name, nil
}

// ParseName extracts the device name from a reply such as "Name: [BBS]".
func ParseName(reply string) (string, error) {
	open := strings.IndexByte(reply, '[')
	if open < 0 {
		return "", fmt.Errorf("%w: no name in %q", errors.ErrHandshake, reply)
	}
	closing := strings.IndexByte(reply[open+1:], ']')
	if closing < 0 {
		return "", fmt.Errorf("%w: no name in %q", errors.ErrHandshake, reply)
	}
	name := strings.TrimSpace(reply[open+1 : open+1+closing])
	if name == "" {
		return "", fmt.Errorf("%w: empty name in %q", errors.ErrHandshake, reply)
	}
	return name, nil
}

func expectLine(ctx context.Context, t *LineTransport) (string, error) {
	for i := 0; i < handshakeAttempts; i++ {
		line, err := t.ReadLine(ctx)
		if stderrors.Is(err, errors.ErrNoData) {
			continue
		}
		return line, err
	}
	return "", errors.ErrNoData
}
