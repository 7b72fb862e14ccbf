package runtime_test

import (
	"fmt"
	"log/slog"
	"mesh-bbs/domain"
	"mesh-bbs/runtime"
	"mesh-bbs/services"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newBoard(max int) (*services.BoardService, *clock.Mock) {
	clk := clock.NewMock()
	clk.Set(time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC))
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return services.NewBoardService(log, clk, services.BoardOptions{MaxWallMessages: max}), clk
}

func newDispatcher(board services.IBoardService) runtime.Dispatcher {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return runtime.NewDispatcher(log, &RecordingTransport{}, board, "BBS")
}

func TestDispatcher_Read(t *testing.T) {
	req := require.New(t)
	board, clk := newBoard(5)
	d := newDispatcher(board)
	evt := domain.InboundEvent{Sender: "alice"}

	// Given an empty wall
	req.Equal([]string{"alice, there are no messages on the wall."}, d.Handle(evt, domain.ReadCommand{}))

	// Given a single message
	_, err := board.Post("bob", "first post")
	req.NoError(err)
	req.Equal([]string{
		"alice, there is one message on the wall.",
		"[2026-10-15 09:30:00] <bob> first post",
	}, d.Handle(evt, domain.ReadCommand{}))

	// Given three messages
	for i := 2; i <= 3; i++ {
		clk.Add(time.Minute)
		_, err = board.Post("clara", fmt.Sprintf("post %d", i))
		req.NoError(err)
	}
	req.Equal([]string{
		"alice, there are 3 messages on the wall.",
		"[2026-10-15 09:30:00] <bob> first post",
		"[2026-10-15 09:31:00] <clara> post 2",
		"[2026-10-15 09:32:00] <clara> post 3",
	}, d.Handle(evt, domain.ReadCommand{}))
}

func TestDispatcher_Write(t *testing.T) {
	req := require.New(t)
	board, _ := newBoard(3)
	d := newDispatcher(board)
	evt := domain.InboundEvent{Sender: "alice"}

	req.Equal([]string{"alice, what is your message?"}, d.Handle(evt, domain.WriteCommand{Post: " "}))
	req.Empty(board.Wall())

	req.Equal([]string{"alice, I have added your message to the wall."}, d.Handle(evt, domain.WriteCommand{Post: "hello"}))
	req.Len(board.Wall(), 1)
	req.Equal("hello", board.Wall()[0].Body)
}

func TestDispatcher_Heard(t *testing.T) {
	req := require.New(t)
	board, clk := newBoard(3)
	d := newDispatcher(board)
	board.Hear("alice")
	clk.Add(2 * time.Minute)
	board.Hear("bob")

	req.Equal([]string{
		"I last heard <alice> at 2026-10-15 09:30",
		"I last heard <bob> at 2026-10-15 09:32",
	}, d.Handle(domain.InboundEvent{Sender: "bob"}, domain.HeardCommand{}))
}

func TestDispatcher_HelpAndUnknown(t *testing.T) {
	req := require.New(t)
	board, _ := newBoard(3)
	d := newDispatcher(board)
	evt := domain.InboundEvent{Sender: "alice"}

	req.Equal([]string{
		"Say BBS READ to read messages on the wall. Say BBS WRITE to write a message on the wall. Say BBS HEARD to get a list of recently heard users.",
	}, d.Handle(evt, domain.HelpCommand{}))
	req.Equal([]string{
		"alice, I don't know that command. Say BBS HELP to get a list of available commands.",
	}, d.Handle(evt, domain.UnknownCommand{Word: "DANCE"}))
}
