package commit

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// rawCommit is the recognizer's output: the six logical fields as raw
// substrings of the input, before assembly into a Commit.
type rawCommit struct {
	typ      string
	scope    string
	hasScope bool
	bang     bool
	desc     string
	body     string
	hasBody  bool
	footers  []rawFooter
}

type rawFooter struct {
	token string
	sep   FooterSeparator
	value string
}

// parse recognizes a full conventional commit message in a single pass.
// The grammar is line-oriented: a header line, then optionally a blank
// line followed by a body and/or a block of footers. All returned
// fields are substrings of input.
func parse(input string) (*rawCommit, error) {
	if input == "" {
		return nil, &ParseError{Kind: ErrMissingHeader, Line: 1, Column: 1}
	}

	header := input
	rest := ""
	restOffset := len(input)
	if i := strings.IndexByte(input, '\n'); i >= 0 {
		header = input[:i]
		rest = input[i+1:]
		restOffset = i + 1
	}

	raw, err := parseHeader(header)
	if err != nil {
		return nil, err
	}
	if rest == "" {
		return raw, nil
	}

	// anything after the header must be separated from it by a blank
	// line. No tolerance for body text on the very next line.
	if rest[0] != '\n' {
		return nil, &ParseError{
			Kind:    ErrMissingBlankLine,
			Offset:  restOffset,
			Line:    2,
			Column:  1,
			Context: firstLine(rest),
			reason:  "expected a blank line after the description",
		}
	}
	sections := strings.TrimLeft(rest, "\n")
	if sections == "" {
		return raw, nil
	}
	parseSections(sections, raw)
	return raw, nil
}

// parseHeader recognizes "type[(scope)][!]: description". Any violation
// is fatal.
func parseHeader(header string) (*rawCommit, error) {
	if header == "" {
		return nil, &ParseError{Kind: ErrMissingHeader, Line: 1, Column: 1}
	}

	raw := &rawCommit{}
	i := 0
	for i < len(header) {
		r, size := utf8.DecodeRuneInString(header[i:])
		if r == '(' || r == ')' || r == '!' || r == ':' || unicode.IsSpace(r) {
			break
		}
		i += size
	}
	if i == 0 {
		return nil, headerError(0, header, "missing commit type")
	}
	raw.typ = header[:i]

	if i < len(header) && header[i] == '(' {
		rel := strings.IndexByte(header[i:], ')')
		if rel < 0 {
			return nil, headerError(i, header, "unclosed scope")
		}
		scope := header[i+1 : i+rel]
		if scope == "" {
			return nil, headerError(i+1, header, "empty scope")
		}
		raw.scope = scope
		raw.hasScope = true
		i += rel + 1
	}

	if i < len(header) && header[i] == '!' {
		raw.bang = true
		i++
	}

	if !strings.HasPrefix(header[i:], ": ") {
		if i < len(header) && header[i] == ':' {
			return nil, headerError(i, header, `expected one space after ":"`)
		}
		return nil, headerError(i, header, `expected ": " after the commit type`)
	}
	i += 2

	desc := header[i:]
	if strings.TrimSpace(desc) == "" {
		return nil, headerError(i, header, "empty description")
	}
	if r, _ := utf8.DecodeRuneInString(desc); unicode.IsSpace(r) {
		return nil, headerError(i, header, `expected exactly one space after ":"`)
	}
	raw.desc = desc
	return raw, nil
}

// parseSections splits everything after the header's blank line into a
// body and a footer block. The body runs up to the first line matching
// the footer pattern. Once the footer block begins, lines that don't
// match the pattern continue the previous footer's value instead of
// reopening the body; malformed trailing lines are never an error.
func parseSections(sections string, raw *rawCommit) {
	fi := -1
	off := 0
	for off < len(sections) {
		line, _, next := lineAt(sections, off)
		if _, _, _, ok := matchFooter(line); ok {
			fi = off
			break
		}
		off = next
	}

	bodyEnd := len(sections)
	if fi >= 0 {
		bodyEnd = fi
	}
	// internal blank lines stay verbatim; only the newlines separating
	// the body from what follows are trimmed
	if body := strings.TrimRight(sections[:bodyEnd], "\n"); body != "" {
		raw.body = body
		raw.hasBody = true
	}
	if fi < 0 {
		return
	}

	var footers []rawFooter
	valStart, valEnd := 0, 0
	off = fi
	for off < len(sections) {
		line, lineEnd, next := lineAt(sections, off)
		if token, sep, value, ok := matchFooter(line); ok {
			if len(footers) > 0 {
				footers[len(footers)-1].value = strings.TrimRight(sections[valStart:valEnd], "\n")
			}
			footers = append(footers, rawFooter{token: token, sep: sep})
			valStart = lineEnd - len(value)
			valEnd = lineEnd
		} else {
			valEnd = lineEnd
		}
		off = next
	}
	footers[len(footers)-1].value = strings.TrimRight(sections[valStart:valEnd], "\n")
	raw.footers = footers
}

// matchFooter reports whether line opens a footer: either the literal
// BREAKING CHANGE phrase or a single word with no interior whitespace,
// followed by ": " or " #".
func matchFooter(line string) (string, FooterSeparator, string, bool) {
	if strings.HasPrefix(line, BreakingToken) {
		rest := line[len(BreakingToken):]
		if strings.HasPrefix(rest, ": ") {
			return BreakingToken, SeparatorColonSpace, rest[2:], true
		}
		if strings.HasPrefix(rest, " #") {
			return BreakingToken, SeparatorSpacePound, rest[2:], true
		}
	}

	ci := strings.Index(line, ": ")
	pi := strings.Index(line, " #")
	idx := -1
	var sep FooterSeparator
	if ci >= 0 && (pi < 0 || ci < pi) {
		idx, sep = ci, SeparatorColonSpace
	} else if pi >= 0 {
		idx, sep = pi, SeparatorSpacePound
	}
	if idx <= 0 {
		return "", 0, "", false
	}

	token := line[:idx]
	if strings.IndexFunc(token, unicode.IsSpace) >= 0 {
		return "", 0, "", false
	}
	return token, sep, line[idx+2:], true
}

// lineAt returns the line starting at off, the offset just past its last
// character, and the offset of the next line.
func lineAt(s string, off int) (line string, lineEnd, next int) {
	if i := strings.IndexByte(s[off:], '\n'); i >= 0 {
		return s[off : off+i], off + i, off + i + 1
	}
	return s[off:], len(s), len(s)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
