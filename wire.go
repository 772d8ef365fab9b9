package forge

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// busWordName returns the name of the i-th word of a bus.
func busWordName(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}

// Words expands a word list specification to a slice of word names:
//
//	"ctl, ldr"    -> []string{"ctl", "ldr"}
//	"sts[2], obs" -> []string{"sts[0]", "sts[1]", "obs"}
//
// A bracketed number declares a bus of that size. Words panics on a
// malformed specification; word lists are blueprint constants and getting
// one wrong is a programming error.
func Words(spec string) []string {
	out, err := words(spec)
	if err != nil {
		panic(err)
	}
	return out
}

func words(spec string) ([]string, error) {
	var out []string
	for _, item := range strings.Split(spec, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			return nil, errors.Errorf("empty word name in %q", spec)
		}
		name, size, err := parseBusDecl(item)
		if err != nil {
			return nil, errors.Wrapf(err, "word spec %q", spec)
		}
		if size < 0 {
			out = append(out, name)
			continue
		}
		for i := 0; i < size; i++ {
			out = append(out, busWordName(name, i))
		}
	}
	return out, nil
}

func parseBusDecl(s string) (name string, size int, err error) {
	b := strings.IndexRune(s, '[')
	if b < 0 {
		if !validIdent(s) {
			return "", 0, errors.Errorf("invalid word name %q", s)
		}
		return s, -1, nil
	}
	if !strings.HasSuffix(s, "]") || !validIdent(s[:b]) {
		return "", 0, errors.Errorf("invalid bus declaration %q", s)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s[b+1 : len(s)-1]))
	if err != nil || n <= 0 {
		return "", 0, errors.Errorf("invalid bus size in %q", s)
	}
	return s[:b], n, nil
}

func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z':
		case '0' <= r && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// A conn maps one block word to one bench wire.
type conn struct {
	block string // word name within the block, e.g. "sts[0]"
	wire  string // wire name on the bench
}

// parseConnections parses a connection configuration string:
//
//	"ctl=host, sts[0..1]=cnt[0..1]"
//
// Each pair reads block_word=bench_wire. Either side may be a plain name,
// an indexed name like sts[1], or an index range like sts[0..1]; a range
// expands to consecutive indexed names and both sides of a pair must expand
// to the same length. The empty string is valid and leaves the block fully
// disconnected.
func parseConnections(s string) ([]conn, error) {
	var out []conn
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		eq := strings.IndexRune(pair, '=')
		if eq < 0 {
			return nil, errors.Errorf("connection %q: missing =", pair)
		}
		ls, err := expandTerm(strings.TrimSpace(pair[:eq]))
		if err != nil {
			return nil, errors.Wrapf(err, "connection %q", pair)
		}
		rs, err := expandTerm(strings.TrimSpace(pair[eq+1:]))
		if err != nil {
			return nil, errors.Wrapf(err, "connection %q", pair)
		}
		if len(ls) != len(rs) {
			return nil, errors.Errorf("connection %q: %d words connected to %d wires", pair, len(ls), len(rs))
		}
		for i := range ls {
			out = append(out, conn{block: ls[i], wire: rs[i]})
		}
	}
	return out, nil
}

// expandTerm expands a connection term to a list of names: "w" and "w[1]"
// expand to themselves, "w[0..2]" to w[0], w[1], w[2].
func expandTerm(s string) ([]string, error) {
	b := strings.IndexRune(s, '[')
	if b < 0 {
		if !validIdent(s) {
			return nil, errors.Errorf("invalid name %q", s)
		}
		return []string{s}, nil
	}
	name := s[:b]
	if !validIdent(name) || !strings.HasSuffix(s, "]") {
		return nil, errors.Errorf("invalid name %q", s)
	}
	idx := s[b+1 : len(s)-1]
	r := strings.Index(idx, "..")
	if r < 0 {
		n, err := strconv.Atoi(strings.TrimSpace(idx))
		if err != nil || n < 0 {
			return nil, errors.Errorf("invalid index in %q", s)
		}
		return []string{busWordName(name, n)}, nil
	}
	lo, err1 := strconv.Atoi(strings.TrimSpace(idx[:r]))
	hi, err2 := strconv.Atoi(strings.TrimSpace(idx[r+2:]))
	if err1 != nil || err2 != nil || lo < 0 || hi < lo {
		return nil, errors.Errorf("invalid range in %q", s)
	}
	names := make([]string, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		names = append(names, busWordName(name, i))
	}
	return names, nil
}
