// Package extractor turns the free-form text returned by the model into a
// short list of candidate subject lines.
package extractor

import (
	"errors"

	"github.com/tidwall/gjson"
)

const (
	// MaxHeuristicTitles caps the line-split fallback. Structured replies are
	// accepted as given.
	MaxHeuristicTitles = 3

	// Lines of this many characters or fewer are dropped by the fallback.
	minLineLength = 5
)

// ErrInvalidJSON is reported in Result.ParseErr when the reply is not JSON.
var ErrInvalidJSON = errors.New("model reply is not valid JSON")

// Source tells which strategy produced a Result.
type Source int

const (
	SourceEmpty Source = iota
	SourceStructuredTitles
	SourceObjectValues
	SourceNestedArray
	SourceHeuristicLines
)

func (s Source) String() string {
	switch s {
	case SourceStructuredTitles:
		return "structured_titles"
	case SourceObjectValues:
		return "object_values"
	case SourceNestedArray:
		return "nested_array"
	case SourceHeuristicLines:
		return "heuristic_lines"
	default:
		return "empty"
	}
}

// Result is the outcome of Extract. Titles is never nil.
type Result struct {
	Titles []string
	Source Source

	// ParseErr is set when the reply could not be parsed as JSON. It is
	// informational only: the fallback has already been applied.
	ParseErr error
}

// Empty reports whether no title could be recovered.
func (r Result) Empty() bool {
	return len(r.Titles) == 0
}

type strategy struct {
	source Source
	apply  func(doc gjson.Result) []string
}

// JSON strategies, tried in order on a parsed object.
var strategies = []strategy{
	{SourceStructuredTitles, StructuredTitles},
	{SourceObjectValues, ObjectValues},
	{SourceNestedArray, NestedArray},
}

// Extract never fails. When no strategy yields anything the result is empty
// with SourceEmpty.
func Extract(raw string) Result {
	var parseErr error
	if gjson.Valid(raw) {
		doc := gjson.Parse(raw)
		for _, s := range strategies {
			if titles := s.apply(doc); len(titles) > 0 {
				return Result{Titles: titles, Source: s.source}
			}
		}
	} else {
		parseErr = ErrInvalidJSON
	}

	if titles := HeuristicLines(raw); len(titles) > 0 {
		return Result{Titles: titles, Source: SourceHeuristicLines, ParseErr: parseErr}
	}
	return Result{Titles: []string{}, Source: SourceEmpty, ParseErr: parseErr}
}
