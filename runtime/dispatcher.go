package runtime

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"mesh-bbs/contract"
	"mesh-bbs/domain"
	"mesh-bbs/errors"
	"mesh-bbs/services"

	"github.com/samber/lo"
)

// Dispatcher runs exactly one handler per command and writes its replies.
type Dispatcher struct {
	log       *slog.Logger
	transport contract.Transport
	board     services.IBoardService
	name      string
}

func NewDispatcher(log *slog.Logger, transport contract.Transport, board services.IBoardService, name string) Dispatcher {
	return Dispatcher{log: log, transport: transport, board: board, name: name}
}

// Dispatch handles the command and writes the reply lines in order.
// Only transport failures are returned.
func (d Dispatcher) Dispatch(ctx context.Context, evt domain.InboundEvent, cmd domain.Command) error {
	for _, line := range d.Handle(evt, cmd) {
		if err := d.transport.WriteLine(ctx, line); err != nil {
			return fmt.Errorf("%w: %w", errors.ErrTransport, err)
		}
	}
	return nil
}

// Handle applies the command to the board and returns the reply lines.
func (d Dispatcher) Handle(evt domain.InboundEvent, cmd domain.Command) []string {
	switch c := cmd.(type) {
	case domain.HeardCommand:
		d.log.Info("Got HEARD command", "sender", evt.Sender)
		return lo.Map(d.board.Heard(), func(h domain.HeardEntry, _ int) string {
			return h.String()
		})
	case domain.WriteCommand:
		d.log.Info("Got WRITE command", "sender", evt.Sender)
		return d.write(evt.Sender, c.Post)
	case domain.ReadCommand:
		d.log.Info("Got READ command", "sender", evt.Sender)
		return d.read(evt.Sender)
	case domain.HelpCommand:
		d.log.Info("Got HELP command", "sender", evt.Sender)
		return []string{HelpLine(d.name)}
	case domain.UnknownCommand:
		d.log.Info("Got unknown command", "sender", evt.Sender, "word", c.Word)
		return []string{fmt.Sprintf("%s, I don't know that command. Say %s HELP to get a list of available commands.", evt.Sender, d.name)}
	default:
		d.log.Warn("Unhandled command type", "type", fmt.Sprintf("%T", cmd))
		return nil
	}
}

func (d Dispatcher) write(sender, post string) []string {
	if _, err := d.board.Post(sender, post); err != nil {
		if stderrors.Is(err, errors.ErrEmptyWritePayload) {
			d.log.Info("Empty wall message", "sender", sender)
			return []string{fmt.Sprintf("%s, what is your message?", sender)}
		}
		d.log.Error("Failed to post wall message", "sender", sender, "error", err)
		return nil
	}
	return []string{fmt.Sprintf("%s, I have added your message to the wall.", sender)}
}

func (d Dispatcher) read(sender string) []string {
	wall := d.board.Wall()
	var header string
	switch len(wall) {
	case 0:
		return []string{fmt.Sprintf("%s, there are no messages on the wall.", sender)}
	case 1:
		header = fmt.Sprintf("%s, there is one message on the wall.", sender)
	default:
		header = fmt.Sprintf("%s, there are %d messages on the wall.", sender, len(wall))
	}
	return append([]string{header}, lo.Map(wall, func(e domain.WallEntry, _ int) string {
		return e.String()
	})...)
}

func HelpLine(name string) string {
	return fmt.Sprintf("Say %[1]s READ to read messages on the wall. Say %[1]s WRITE to write a message on the wall. Say %[1]s HEARD to get a list of recently heard users.", name)
}
