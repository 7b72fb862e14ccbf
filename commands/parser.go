// Package commands recognises the BBS command grammar in a message body.
package commands

import (
	"fmt"
	"mesh-bbs/domain"
	"strings"
)

type Matching string

const (
	// MatchAnchored requires the body to start with the BBS name followed
	// by the keyword.
	MatchAnchored Matching = "anchored"
	// MatchSubstring accepts "<name> <KEYWORD>" anywhere in the body.
	MatchSubstring Matching = "substring"
)

// keywords in priority order, first match wins.
var keywords = []string{
	domain.KeywordHeard,
	domain.KeywordWrite,
	domain.KeywordRead,
	domain.KeywordHelp,
}

type Parser struct {
	name       string
	nameTokens []string
	matching   Matching
}

func NewParser(name string, matching Matching) (Parser, error) {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return Parser{}, fmt.Errorf("bbs name is empty")
	}
	switch matching {
	case MatchAnchored, MatchSubstring:
	default:
		return Parser{}, fmt.Errorf("unknown command matching %q", matching)
	}
	return Parser{name: strings.Join(tokens, " "), nameTokens: tokens, matching: matching}, nil
}

func (p Parser) Name() string {
	return p.name
}

// Parse returns false when the body is not addressed to the BBS.
func (p Parser) Parse(body string) (domain.Command, bool) {
	if p.matching == MatchSubstring {
		return p.parseSubstring(body)
	}
	return p.parseAnchored(body)
}

func (p Parser) parseAnchored(body string) (domain.Command, bool) {
	tokens := strings.Fields(body)
	n := len(p.nameTokens)
	if len(tokens) <= n {
		return nil, false
	}
	for i, nameToken := range p.nameTokens {
		if !strings.EqualFold(tokens[i], nameToken) {
			return nil, false
		}
	}
	word := tokens[n]
	keyword := strings.ToUpper(word)
	for _, k := range keywords {
		if keyword == k {
			return newCommand(k, tokens[n+1:]), true
		}
	}
	return domain.UnknownCommand{Word: word}, true
}

func (p Parser) parseSubstring(body string) (domain.Command, bool) {
	lowered := strings.ToLower(body)
	prefix := strings.ToLower(p.name) + " "
	for _, k := range keywords {
		if strings.Contains(lowered, prefix+strings.ToLower(k)) {
			tokens := strings.Fields(body)
			// the historical behaviour strips the leading name and keyword
			// tokens regardless of where the trigger was found
			drop := min(len(p.nameTokens)+1, len(tokens))
			return newCommand(k, tokens[drop:]), true
		}
	}
	if idx := strings.Index(lowered, prefix); idx >= 0 {
		var word string
		if rest := strings.Fields(body[idx+len(prefix):]); len(rest) > 0 {
			word = rest[0]
		}
		return domain.UnknownCommand{Word: word}, true
	}
	return nil, false
}

func newCommand(keyword string, args []string) domain.Command {
	switch keyword {
	case domain.KeywordHeard:
		return domain.HeardCommand{}
	case domain.KeywordWrite:
		return domain.WriteCommand{Post: strings.Join(args, " ")}
	case domain.KeywordRead:
		return domain.ReadCommand{}
	default:
		return domain.HelpCommand{}
	}
}
