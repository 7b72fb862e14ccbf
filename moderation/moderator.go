// Package moderation censors wall posts before they are published.
package moderation

import (
	"log/slog"
	"mesh-bbs/domain"
	"unicode"

	"github.com/abadojack/whatlanggo"
	goahocorasick "github.com/anknown/ahocorasick"
	"golang.org/x/text/unicode/norm"
)

type Moderator struct {
	matcher      *goahocorasick.Machine
	censoredChar rune
	log          *slog.Logger
}

type TextMapping struct {
	Normalized []rune
	OrigIdx    []int
}

// NewModerator initializes the Aho-Corasick automaton with a normalized version of the provided censored words list.
// Words that normalize to nothing are ignored; with no usable word the moderator lets every post through.
func NewModerator(censoredWords []string, censoredChar rune, log *slog.Logger) (Moderator, error) {
	patterns := make([][]rune, 0, len(censoredWords))
	for _, word := range censoredWords {
		if p := normalizeRunes([]rune(word)); len(p) > 0 {
			patterns = append(patterns, p)
		}
	}
	if len(patterns) == 0 {
		return Moderator{censoredChar: censoredChar, log: log}, nil
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Moderator{}, err
	}
	return Moderator{matcher: m, censoredChar: censoredChar, log: log}, nil
}

// Moderate censors the post and tags it with the detected language.
func (m Moderator) Moderate(post string) domain.Verdict {
	content, words := m.Censor(post)
	lang := whatlanggo.Detect(post).Lang.Iso6391()
	if len(words) > 0 {
		m.log.Warn("Censored wall post", "words", words, "lang", lang)
	}
	return domain.Verdict{Content: content, CensoredWords: words, Lang: lang}
}

// Censor identifies forbidden patterns and replaces the original characters while preserving spacing.
func (m Moderator) Censor(original string) (string, []string) {
	if m.matcher == nil {
		return original, nil
	}
	mapping := normalize(original)
	if len(mapping.Normalized) == 0 {
		return original, nil
	}

	spans := m.matcher.MultiPatternSearch(mapping.Normalized, false)
	if len(spans) == 0 {
		return original, nil
	}

	origRunes := []rune(original)
	var words []string
	for _, span := range spans {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)

		if normStart < 0 || normEnd > len(mapping.OrigIdx) {
			continue
		}

		origStart := mapping.OrigIdx[normStart]
		origEnd := mapping.OrigIdx[normEnd-1] + 1

		for i := origStart; i < origEnd; i++ {
			origRunes[i] = m.censoredChar
		}
		words = append(words, string(span.Word))
	}

	return string(origRunes), words
}

// normalize folds the input into a searchable form: accents are stripped,
// leet characters mapped back to letters, noise dropped and case lowered.
// OrigIdx[i] is the position in input of the rune Normalized[i] came from.
func normalize(input string) TextMapping {
	origRunes := []rune(input)
	mapping := TextMapping{
		Normalized: make([]rune, 0, len(origRunes)),
		OrigIdx:    make([]int, 0, len(origRunes)),
	}
	for i, r := range origRunes {
		for _, folded := range fold(r) {
			clean := simplifyRune(folded)
			if isNoise(clean) {
				continue
			}
			mapping.Normalized = append(mapping.Normalized, unicode.ToLower(clean))
			mapping.OrigIdx = append(mapping.OrigIdx, i)
		}
	}
	return mapping
}

func normalizeRunes(input []rune) []rune {
	return normalize(string(input)).Normalized
}

// fold decomposes r and drops its combining marks, "é" gives "e".
func fold(r rune) []rune {
	if r < unicode.MaxASCII {
		return []rune{r}
	}
	var out []rune
	for _, c := range norm.NFD.String(string(r)) {
		if !unicode.Is(unicode.Mn, c) {
			out = append(out, c)
		}
	}
	return out
}

// simplifyRune maps common leet speak characters back to letters.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
