package domain

// Command is one of the recognised BBS commands, already extracted from
// an inbound event. Handlers switch on the concrete type.
type Command interface {
	Keyword() string
}

type HeardCommand struct{}

// WriteCommand carries the post text with the name and keyword stripped.
// Post is empty when the sender gave no message.
type WriteCommand struct {
	Post string
}

type ReadCommand struct{}

type HelpCommand struct{}

// UnknownCommand is a message addressed to the BBS with no known keyword.
type UnknownCommand struct {
	Word string
}

const (
	KeywordHeard = "HEARD"
	KeywordWrite = "WRITE"
	KeywordRead  = "READ"
	KeywordHelp  = "HELP"
)

func (HeardCommand) Keyword() string   { return KeywordHeard }
func (WriteCommand) Keyword() string   { return KeywordWrite }
func (ReadCommand) Keyword() string    { return KeywordRead }
func (HelpCommand) Keyword() string    { return KeywordHelp }
func (UnknownCommand) Keyword() string { return "" }
