// Package runtime drives the bulletin board: it polls the transport,
// classifies and dispatches inbound lines and runs the announcer.
// It holds no business rules of its own.
package runtime

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"mesh-bbs/classifier"
	"mesh-bbs/commands"
	"mesh-bbs/contract"
	"mesh-bbs/errors"
	"mesh-bbs/services"
)

type Server struct {
	log        *slog.Logger
	transport  contract.Transport
	classifier classifier.Classifier
	parser     commands.Parser
	board      services.IBoardService
	dispatcher Dispatcher
	announcer  *Announcer
}

func NewServer(
	log *slog.Logger,
	transport contract.Transport,
	classifier classifier.Classifier,
	parser commands.Parser,
	board services.IBoardService,
	announcer *Announcer,
) *Server {
	return &Server{
		log:        log,
		transport:  transport,
		classifier: classifier,
		parser:     parser,
		board:      board,
		dispatcher: NewDispatcher(log, transport, board, parser.Name()),
		announcer:  announcer,
	}
}

// Run loops until ctx is cancelled (nil) or the transport fails.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info("BBS running", "name", s.parser.Name())
	for {
		if ctx.Err() != nil {
			s.log.Info("BBS stopped")
			return nil
		}
		if err := s.Step(ctx); err != nil {
			if ctx.Err() != nil {
				s.log.Info("BBS stopped")
				return nil
			}
			return err
		}
	}
}

// Step is one loop iteration: at most one inbound line, then the
// announcer check.
func (s *Server) Step(ctx context.Context) error {
	line, err := s.transport.ReadLine(ctx)
	switch {
	case err == nil:
		if err := s.handleLine(ctx, line); err != nil {
			return err
		}
	case stderrors.Is(err, errors.ErrNoData):
	default:
		return fmt.Errorf("%w: %w", errors.ErrTransport, err)
	}

	_, err = s.announcer.Tick(ctx)
	return err
}

func (s *Server) handleLine(ctx context.Context, line string) error {
	evt, err := s.classifier.Classify(line)
	switch {
	case stderrors.Is(err, errors.ErrNotMeshMessage):
		s.log.Debug("Device", "line", line)
		return nil
	case err != nil:
		s.log.Warn("Dropping line", "line", line, "error", err)
		return nil
	}

	s.log.Info("Got message", "sender", evt.Sender, "body", evt.Body)
	s.board.Hear(evt.Sender)

	cmd, ok := s.parser.Parse(evt.Body)
	if !ok {
		return nil
	}
	return s.dispatcher.Dispatch(ctx, evt, cmd)
}
