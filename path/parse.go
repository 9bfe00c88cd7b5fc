package path

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax is wrapped by every parse failure.
var ErrSyntax = errors.New("invalid path syntax")

// Parse converts the textual form of a path into its step sequence.
// Parsing is pure: the same input always yields the same steps. The empty
// string parses to the empty path.
func Parse(s string) (Path, error) {
	if s == "" {
		return Path{}, nil
	}
	var p Path
	i := 0
	for {
		var err error
		if s[i] == '[' {
			p, i, err = parseBracket(s, i, p)
		} else {
			p, i, err = parseField(s, i, p)
		}
		if err != nil {
			return nil, err
		}
		if i == len(s) {
			return p, nil
		}
		switch s[i] {
		case '[':
			// bracket attaches without a delimiter
		case '.':
			i++
			if i == len(s) {
				return nil, fmt.Errorf("%w: trailing %q", ErrSyntax, ".")
			}
		default:
			return nil, fmt.Errorf("%w: expected '.' or '[' at offset %d", ErrSyntax, i)
		}
	}
}

// parseField scans one key or wildcard segment starting at s[i].
func parseField(s string, i int, p Path) (Path, int, error) {
	if s[i] == '\'' {
		key, rest, err := parseQuoted(s, i)
		if err != nil {
			return nil, 0, err
		}
		return append(p, KeyStep(key)), rest, nil
	}
	j := strings.IndexAny(s[i:], ".[")
	var seg string
	if j == -1 {
		seg, j = s[i:], len(s)
	} else {
		seg, j = s[i:i+j], i+j
	}
	switch seg {
	case "":
		return nil, 0, fmt.Errorf("%w: empty key segment at offset %d", ErrSyntax, i)
	case "*":
		return append(p, WildcardStep()), j, nil
	case "**":
		return append(p, DeepStep()), j, nil
	}
	return append(p, KeyStep(seg)), j, nil
}

// parseQuoted scans a single-quoted key segment starting at the opening
// quote s[i]. Inside quotes, \' and \\ denote a literal quote and
// backslash.
func parseQuoted(s string, i int) (string, int, error) {
	res := make([]byte, 0, len(s)-i)
	escaped := false
	for j := i + 1; j < len(s); j++ {
		c := s[j]
		switch {
		case escaped:
			escaped = false
			res = append(res, c)
		case c == '\\':
			escaped = true
		case c == '\'':
			return string(res), j + 1, nil
		default:
			res = append(res, c)
		}
	}
	return "", 0, fmt.Errorf("%w: unterminated quote at offset %d", ErrSyntax, i)
}

// parseBracket scans one [..] segment starting at the opening bracket
// s[i]: an integer index, the * wildcard, or a start:stop:step slice.
func parseBracket(s string, i int, p Path) (Path, int, error) {
	j := strings.IndexByte(s[i+1:], ']')
	if j == -1 {
		return nil, 0, fmt.Errorf("%w: unterminated %q at offset %d", ErrSyntax, "[", i)
	}
	tok := s[i+1 : i+1+j]
	rest := i + j + 2
	if tok == "*" {
		return append(p, WildcardStep()), rest, nil
	}
	if strings.ContainsRune(tok, ':') {
		step, err := parseSlice(tok)
		if err != nil {
			return nil, 0, err
		}
		return append(p, step), rest, nil
	}
	idx, err := strconv.Atoi(tok)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: non-integer index %q", ErrSyntax, tok)
	}
	return append(p, IndexStep(idx)), rest, nil
}

func parseSlice(tok string) (Step, error) {
	parts := strings.Split(tok, ":")
	if len(parts) > 3 {
		return Step{}, fmt.Errorf("%w: too many ':' in slice %q", ErrSyntax, tok)
	}
	bound := func(s string) (*int, error) {
		if s == "" {
			return nil, nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: non-integer slice bound %q", ErrSyntax, s)
		}
		return &v, nil
	}
	start, err := bound(parts[0])
	if err != nil {
		return Step{}, err
	}
	stop, err := bound(parts[1])
	if err != nil {
		return Step{}, err
	}
	step := 1
	if len(parts) == 3 {
		if parts[2] == "" {
			return Step{}, fmt.Errorf("%w: empty slice step in %q", ErrSyntax, tok)
		}
		step, err = strconv.Atoi(parts[2])
		if err != nil {
			return Step{}, fmt.Errorf("%w: non-integer slice step %q", ErrSyntax, parts[2])
		}
		if step == 0 {
			return Step{}, fmt.Errorf("%w: slice step cannot be zero in %q", ErrSyntax, tok)
		}
	}
	return SliceStep(start, stop, step), nil
}
