package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidPageID is returned for ids outside the page-id grammar
var ErrInvalidPageID = errors.New("invalid page id")

var (
	basePattern    = regexp.MustCompile(`^\d{3}$`)
	subPattern     = regexp.MustCompile(`^\d{3}-\d{1,2}$`)
	articlePattern = regexp.MustCompile(`^\d{3}-\d{1,2}-\d{2,99}$`)
)

// PageIDKind tells which of the three id grammars matched
type PageIDKind int

const (
	PageIDBase PageIDKind = iota
	PageIDSub
	PageIDArticle
)

// PageID is a parsed page id
type PageID struct {
	Raw  string
	Kind PageIDKind
	Base int
	Sub  int // 0 for base ids
	Part int // 0 unless Kind is PageIDArticle
}

// ParsePageID validates s against the page-id grammar
func ParsePageID(s string) (PageID, error) {
	var kind PageIDKind
	switch {
	case basePattern.MatchString(s):
		kind = PageIDBase
	case subPattern.MatchString(s):
		kind = PageIDSub
	case articlePattern.MatchString(s):
		kind = PageIDArticle
	default:
		return PageID{}, fmt.Errorf("%w: %q", ErrInvalidPageID, s)
	}

	parts := strings.Split(s, "-")
	id := PageID{Raw: s, Kind: kind}
	id.Base, _ = strconv.Atoi(parts[0])
	if id.Base < 100 || id.Base > 899 {
		return PageID{}, fmt.Errorf("%w: %q: page number must be 100-899", ErrInvalidPageID, s)
	}
	if kind >= PageIDSub {
		id.Sub, _ = strconv.Atoi(parts[1])
		if id.Sub < 1 || id.Sub > 99 {
			return PageID{}, fmt.Errorf("%w: %q: sub-page must be 1-99", ErrInvalidPageID, s)
		}
	}
	if kind == PageIDArticle {
		part, err := strconv.Atoi(parts[2])
		if err != nil || part < 2 || part > 99 {
			return PageID{}, fmt.Errorf("%w: %q: article page must be 2-99", ErrInvalidPageID, s)
		}
		id.Part = part
	}
	return id, nil
}

// ValidPageID reports whether s is a well-formed page id
func ValidPageID(s string) bool {
	_, err := ParsePageID(s)
	return err == nil
}

// BaseNumber returns the numeric base of a page id, or 0 if it has none
func BaseNumber(id string) int {
	if len(id) < 3 {
		return 0
	}
	n, err := strconv.Atoi(id[:3])
	if err != nil {
		return 0
	}
	return n
}
