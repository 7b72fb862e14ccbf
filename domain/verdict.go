package domain

// Verdict is the outcome of moderating a post.
type Verdict struct {
	Content       string
	CensoredWords []string
	Lang          string
}
