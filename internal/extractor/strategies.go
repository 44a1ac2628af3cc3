package extractor

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

const titlesKey = "titles"

// leadingMarker matches bullets, numbering, colons and whitespace at the start
// of a line.
var leadingMarker = regexp.MustCompile(`^[-*•0-9.:\s\p{Z}\x{0B}\x{FEFF}]+`)

// StructuredTitles returns the "titles" array when every element is a string.
func StructuredTitles(doc gjson.Result) []string {
	if !doc.IsObject() {
		return nil
	}
	titles := doc.Get(titlesKey)
	if !titles.IsArray() {
		return nil
	}

	elems := titles.Array()
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		if e.Type != gjson.String {
			return nil
		}
		out = append(out, e.Str)
	}
	return out
}

// ObjectValues returns the values of an object whose values are all strings,
// in document order.
func ObjectValues(doc gjson.Result) []string {
	if !doc.IsObject() {
		return nil
	}

	var out []string
	allStrings := true
	doc.ForEach(func(_, value gjson.Result) bool {
		if value.Type != gjson.String {
			allStrings = false
			return false
		}
		out = append(out, value.Str)
		return true
	})
	if !allStrings {
		return nil
	}
	return out
}

// NestedArray returns the first array-valued property of an object. Scalars
// inside it are kept as text; null and nested containers are dropped.
func NestedArray(doc gjson.Result) []string {
	if !doc.IsObject() {
		return nil
	}

	var found gjson.Result
	doc.ForEach(func(_, value gjson.Result) bool {
		if value.IsArray() {
			found = value
			return false
		}
		return true
	})
	if !found.Exists() {
		return nil
	}

	var out []string
	for _, e := range found.Array() {
		switch e.Type {
		case gjson.String:
			out = append(out, e.Str)
		case gjson.Number, gjson.True, gjson.False:
			out = append(out, e.Raw)
		}
	}
	return out
}

// HeuristicLines is the plain-text fallback. It strips JSON punctuation and
// list markers, then keeps the first MaxHeuristicTitles lines longer than
// minLineLength characters.
func HeuristicLines(raw string) []string {
	cleaned := stripPunctuation(raw)

	out := []string{}
	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimSpace(leadingMarker.ReplaceAllString(line, ""))
		if utf8.RuneCountInString(line) <= minLineLength {
			continue
		}
		out = append(out, line)
		if len(out) == MaxHeuristicTitles {
			break
		}
	}
	return out
}

// stripPunctuation removes braces, brackets and double quotes. Single quotes
// go too unless they sit between two letters ("Don't").
func stripPunctuation(raw string) string {
	runes := []rune(raw)

	var b strings.Builder
	b.Grow(len(raw))
	for i, r := range runes {
		switch r {
		case '{', '}', '[', ']', '"':
			continue
		case '\'':
			if i > 0 && i < len(runes)-1 && unicode.IsLetter(runes[i-1]) && unicode.IsLetter(runes[i+1]) {
				b.WriteRune(r)
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
