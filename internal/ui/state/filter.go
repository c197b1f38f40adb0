package state

import (
	"slices"
	"strings"
	"unicode"

	"github.com/atomicstack/pageview/internal/page"
)

// QueryString returns the query buffer as a string.
func (s Session) QueryString() string {
	return string(s.Query)
}

// PushQuery appends r to the query buffer. Control characters are rejected.
func (s *Session) PushQuery(r ...rune) bool {
	pushed := false
	for _, c := range r {
		if unicode.IsControl(c) {
			continue
		}
		s.Query = append(s.Query, c)
		pushed = true
	}
	return pushed
}

// PopQuery removes the last character of the query buffer.
func (s *Session) PopQuery() bool {
	if len(s.Query) == 0 {
		return false
	}
	s.Query = s.Query[:len(s.Query)-1]
	return true
}

// ClearQuery empties the query buffer.
func (s *Session) ClearQuery() bool {
	if len(s.Query) == 0 {
		return false
	}
	s.Query = s.Query[:0]
	return true
}

// DeleteQueryWordBackward removes trailing whitespace and the word before it.
func (s *Session) DeleteQueryWordBackward() bool {
	i := len(s.Query)
	if i == 0 {
		return false
	}
	for i > 0 && unicode.IsSpace(s.Query[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(s.Query[i-1]) {
		i--
	}
	s.Query = s.Query[:i]
	return true
}

// Dirty reports whether the query changed since the view was last computed.
func (s Session) Dirty() bool {
	return !slices.Equal(s.Query, s.LastQuery)
}

// ApplyView installs a view computed from the current query and records the
// query as evaluated.
func (s *Session) ApplyView(view []page.Ranked) {
	s.LastQuery = cloneRunes(s.Query)
	s.SetView(view)
}

// Filtering reports whether the evaluated query is non-blank.
func (s Session) Filtering() bool {
	return strings.TrimSpace(string(s.LastQuery)) != ""
}
