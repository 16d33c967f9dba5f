package commit

import (
	"fmt"
	"strings"

	"github.com/jeffrom/cmsg/model"
)

// Commit is a parsed conventional commit message. Every component is a
// view into the message string passed to Parse; a Commit stays valid as
// long as that string does (Go strings are immutable, so no further
// lifetime bookkeeping is needed).
type Commit struct {
	typ         Type
	scope       Scope
	hasScope    bool
	description Description
	body        Body
	hasBody     bool
	breaking    bool
	bang        bool
	footers     []Footer
}

// Parse parses a full conventional commit message, header through
// trailing footers. The breaking flag is set when the header carries a
// "!" marker, or when a footer token equals BreakingToken (compared
// case-sensitively).
func Parse(message string) (*Commit, error) {
	raw, err := parse(message)
	if err != nil {
		return nil, err
	}

	c := &Commit{
		typ:         NewType(raw.typ),
		description: NewDescription(raw.desc),
		hasScope:    raw.hasScope,
		hasBody:     raw.hasBody,
		bang:        raw.bang,
		breaking:    raw.bang,
	}
	if raw.hasScope {
		c.scope = NewScope(raw.scope)
	}
	if raw.hasBody {
		c.body = NewBody(raw.body)
	}
	for _, f := range raw.footers {
		if f.token == BreakingToken {
			c.breaking = true
		}
		c.footers = append(c.footers, NewFooter(NewFooterToken(f.token), f.sep, NewFooterValue(f.value)))
	}
	return c, nil
}

// Type is the type of the commit.
func (c *Commit) Type() Type { return c.typ }

// Scope is the optional scope of the commit.
func (c *Commit) Scope() (Scope, bool) { return c.scope, c.hasScope }

// Description is the one-line summary of the commit.
func (c *Commit) Description() Description { return c.description }

// Body is the optional free-form text of the commit.
func (c *Commit) Body() (Body, bool) { return c.body, c.hasBody }

// Breaking reports whether the commit introduces breaking changes.
func (c *Commit) Breaking() bool { return c.breaking }

// Footers are the commit's trailers in source order. Repeated tokens are
// kept as is.
func (c *Commit) Footers() []Footer { return c.footers }

// Equal compares two parsed commits structurally, using each component's
// own identity semantics.
func (c *Commit) Equal(other *Commit) bool {
	if c == nil || other == nil {
		return c == other
	}
	if !c.typ.Equal(other.typ) || !c.description.Equal(other.description) {
		return false
	}
	if c.hasScope != other.hasScope || (c.hasScope && !c.scope.Equal(other.scope)) {
		return false
	}
	if c.hasBody != other.hasBody || (c.hasBody && !c.body.Equal(other.body)) {
		return false
	}
	if c.breaking != other.breaking || len(c.footers) != len(other.footers) {
		return false
	}
	for i, f := range c.footers {
		if !f.Equal(other.footers[i]) {
			return false
		}
	}
	return true
}

// FormatOptions controls textual reconstruction.
type FormatOptions struct {
	// SynthesizeBreakingMark renders "!" in the header whenever the
	// commit is breaking, even when the flag was derived from a
	// BREAKING CHANGE footer. Otherwise "!" is rendered only when the
	// original header carried it.
	SynthesizeBreakingMark bool
}

// Format reconstructs the commit's textual form. The result is not
// guaranteed to be byte-identical to the original input: leading blank
// lines and footer continuation whitespace are normalized.
func (c *Commit) Format(opts FormatOptions) string {
	b := &strings.Builder{}
	b.WriteString(c.typ.String())
	if c.hasScope {
		fmt.Fprintf(b, "(%s)", c.scope)
	}
	if c.bang || (opts.SynthesizeBreakingMark && c.breaking) {
		b.WriteString("!")
	}
	fmt.Fprintf(b, ": %s", c.description)
	if c.hasBody {
		b.WriteString("\n\n")
		b.WriteString(c.body.String())
	}
	for _, f := range c.footers {
		b.WriteString("\n\n")
		b.WriteString(f.String())
	}
	return b.String()
}

func (c *Commit) String() string { return c.Format(FormatOptions{}) }

// Message converts the commit into an owned, serializable projection.
func (c *Commit) Message() model.Message {
	m := model.Message{
		Type:        c.typ.String(),
		Scope:       c.scope.String(),
		Description: c.description.String(),
		Body:        c.body.String(),
		Breaking:    c.breaking,
	}
	for _, f := range c.footers {
		m.Trailers = append(m.Trailers, model.Trailer{
			Token:     f.Token().String(),
			Separator: f.Separator().String(),
			Value:     f.Value().String(),
		})
	}
	return m
}

// Simple is a weakly typed view of a Commit, exposing each component as
// a plain string.
type Simple struct {
	c *Commit
}

// Simple returns the weakly typed view of the commit.
func (c *Commit) Simple() Simple { return Simple{c: c} }

func (s Simple) Type() string { return s.c.typ.String() }

// Scope returns the scope, or "" when the commit has none.
func (s Simple) Scope() string { return s.c.scope.String() }

func (s Simple) Description() string { return s.c.description.String() }

// Body returns the body, or "" when the commit has none.
func (s Simple) Body() string { return s.c.body.String() }

func (s Simple) Breaking() bool { return s.c.breaking }

func (s Simple) Trailers() []SimpleFooter {
	res := make([]SimpleFooter, len(s.c.footers))
	for i, f := range s.c.footers {
		res[i] = SimpleFooter{f: f}
	}
	return res
}

// SimpleFooter exposes a footer's components as plain strings.
type SimpleFooter struct {
	f Footer
}

func (sf SimpleFooter) Token() string { return sf.f.Token().String() }

func (sf SimpleFooter) Separator() string { return sf.f.Separator().String() }

func (sf SimpleFooter) Value() string { return sf.f.Value().String() }
