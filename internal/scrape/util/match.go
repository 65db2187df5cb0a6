package util

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ContainsPhrase reports whether phrase occurs in text as whole words,
// ignoring case. A trailing plural "s" is accepted, so "stock option" matches
// "stock options" while "rsu" does not match "pursue". Phrases that start or
// end with punctuation ("401(k)", "sr.") are not boundary-checked on that side.
func ContainsPhrase(text, phrase string) bool {
	text = strings.ToLower(text)
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	if phrase == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(phrase)
	last, _ := utf8.DecodeLastRuneInString(phrase)

	for from := 0; from <= len(text)-len(phrase); {
		i := strings.Index(text[from:], phrase)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(phrase)

		before, _ := utf8.DecodeLastRuneInString(text[:start])
		okStart := !isWordRune(first) || start == 0 || !isWordRune(before)
		if okStart && (!isWordRune(last) || wordEndsAt(text, end)) {
			return true
		}
		from = start + 1
	}
	return false
}

// ContainsAnyPhrase reports whether any phrase occurs in text as whole words.
func ContainsAnyPhrase(text string, phrases []string) bool {
	for _, p := range phrases {
		if ContainsPhrase(text, p) {
			return true
		}
	}
	return false
}

// CountPhrases counts the distinct phrases that occur in text as whole words.
func CountPhrases(text string, phrases []string) int {
	n := 0
	for _, p := range phrases {
		if ContainsPhrase(text, p) {
			n++
		}
	}
	return n
}

func wordEndsAt(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	next, size := utf8.DecodeRuneInString(text[end:])
	if !isWordRune(next) {
		return true
	}
	if next != 's' {
		return false
	}
	if end+size >= len(text) {
		return true
	}
	after, _ := utf8.DecodeRuneInString(text[end+size:])
	return !isWordRune(after)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
