package validate

import (
	"regexp"
	"strings"
	"sync"
)

// compileFormat translates the Text.format glyph alphabet (spec §3.2) into
// a whole-string-matching regular expression:
//
//	# = digit, X = letter, @ = alphanumeric, * = any character, anything
//	else is matched as a literal character.
func compileFormat(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '#':
			b.WriteString(`[0-9]`)
		case 'X':
			b.WriteString(`[A-Za-z]`)
		case '@':
			b.WriteString(`[A-Za-z0-9]`)
		case '*':
			b.WriteString(`.`)
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}

var formatCache sync.Map // pattern string -> *regexp.Regexp

func matchFormat(pattern, s string) (bool, error) {
	if cached, ok := formatCache.Load(pattern); ok {
		return cached.(*regexp.Regexp).MatchString(s), nil
	}
	re, err := compileFormat(pattern)
	if err != nil {
		return false, err
	}
	formatCache.Store(pattern, re)
	return re.MatchString(s), nil
}

var regexCache sync.Map // pattern string -> *regexp.Regexp

// regexMatch whole-string matches s against a user-supplied regular
// expression (the Text.regex constraint), unlike compileFormat's glyph
// alphabet which is this engine's own mini-language.
func regexMatch(pattern, s string) (bool, error) {
	var re *regexp.Regexp
	if cached, found := regexCache.Load(pattern); found {
		re = cached.(*regexp.Regexp)
	} else {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return false, err
		}
		re = compiled
		regexCache.Store(pattern, re)
	}
	loc := re.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s), nil
}
