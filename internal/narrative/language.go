// Vinoscope - Wine Valuation and Critic Consensus Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoscope

// Package narrative renders the localized sentences attached to a valuation.
//
// Every sentence is a template looked up by id and language in the static
// tables of templates.go, then interpolated with {placeholder} values. Code
// never branches on the language; adding a language means adding a column to
// the tables.
package narrative

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported output language.
type Language string

// Supported languages.
const (
	English  Language = "en"
	Korean   Language = "ko"
	Japanese Language = "ja"
)

// DefaultLanguage is used for empty or unsupported input.
const DefaultLanguage = English

// Languages lists the supported languages in matcher preference order.
var Languages = []Language{English, Korean, Japanese}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Korean,
	language.Japanese,
})

// String implements fmt.Stringer.
func (l Language) String() string { return string(l) }

// Valid reports whether l is supported.
func (l Language) Valid() bool {
	switch l {
	case English, Korean, Japanese:
		return true
	}
	return false
}

// ParseLanguage returns the supported language named by s, or
// DefaultLanguage. Region subtags are ignored ("ko-KR" is Korean).
func ParseLanguage(s string) Language {
	if l, ok := LookupLanguage(s); ok {
		return l
	}
	return DefaultLanguage
}

// LookupLanguage is ParseLanguage without the fallback.
func LookupLanguage(s string) (Language, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_"); i > 0 {
		s = s[:i]
	}
	l := Language(s)
	return l, l.Valid()
}

// MatchAcceptLanguage picks the best supported language for an
// Accept-Language header value, or DefaultLanguage.
func MatchAcceptLanguage(header string) Language {
	if l, ok := LookupAcceptLanguage(header); ok {
		return l
	}
	return DefaultLanguage
}

// LookupAcceptLanguage reports the best supported language for an
// Accept-Language header, and false when nothing in it matches.
func LookupAcceptLanguage(header string) (Language, bool) {
	if strings.TrimSpace(header) == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	return Languages[index], true
}
