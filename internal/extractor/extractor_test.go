package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantTitles []string
		wantSource Source
		wantErr    bool
	}{
		{
			name:       "titles array",
			raw:        `{"titles": ["첫 번째 제목", "두 번째 제목", "세 번째 제목"]}`,
			wantTitles: []string{"첫 번째 제목", "두 번째 제목", "세 번째 제목"},
			wantSource: SourceStructuredTitles,
		},
		{
			name:       "titles array is accepted as given",
			raw:        `{"titles": ["A", "B", "C", "D"]}`,
			wantTitles: []string{"A", "B", "C", "D"},
			wantSource: SourceStructuredTitles,
		},
		{
			name:       "object of strings keeps insertion order",
			raw:        `{"1": "Foo", "2": "Bar"}`,
			wantTitles: []string{"Foo", "Bar"},
			wantSource: SourceObjectValues,
		},
		{
			name:       "object of strings is not sorted by key",
			raw:        `{"제목3": "Zeta", "제목1": "Alpha", "제목2": "Mid"}`,
			wantTitles: []string{"Zeta", "Alpha", "Mid"},
			wantSource: SourceObjectValues,
		},
		{
			name:       "array among scalar properties",
			raw:        `{"note": "x", "titles": ["A", "B"]}`,
			wantTitles: []string{"A", "B"},
			wantSource: SourceStructuredTitles,
		},
		{
			name:       "first array wins over later ones",
			raw:        `{"count": 2, "first": ["One", "Two"], "second": ["Three", "Four", "Five"]}`,
			wantTitles: []string{"One", "Two"},
			wantSource: SourceNestedArray,
		},
		{
			name:       "titles with mixed element types falls to nested array",
			raw:        `{"titles": ["A", 2, null, {"x": 1}, true]}`,
			wantTitles: []string{"A", "2", "true"},
			wantSource: SourceNestedArray,
		},
		{
			name:       "plain numbered list",
			raw:        "1. Big Sale!!\n2. Don't Miss Out\n- short\n3. Final Hours Only",
			wantTitles: []string{"Big Sale!!", "Don't Miss Out", "Final Hours Only"},
			wantSource: SourceHeuristicLines,
			wantErr:    true,
		},
		{
			name:       "fallback keeps at most three lines",
			raw:        "* 첫 번째 추천 제목입니다\n* 두 번째 추천 제목입니다\n* 세 번째 추천 제목입니다\n* 네 번째 추천 제목입니다",
			wantTitles: []string{"첫 번째 추천 제목입니다", "두 번째 추천 제목입니다", "세 번째 추천 제목입니다"},
			wantSource: SourceHeuristicLines,
			wantErr:    true,
		},
		{
			name:       "truncated JSON is split into lines",
			raw:        "{\"titles\": [\n  \"Spring sale starts today\",\n  \"Last chance for 50% off\",\n",
			wantTitles: []string{"titles:", "Spring sale starts today,", "Last chance for 50% off,"},
			wantSource: SourceHeuristicLines,
			wantErr:    true,
		},
		{
			name:       "empty object",
			raw:        `{}`,
			wantTitles: []string{},
			wantSource: SourceEmpty,
		},
		{
			name:       "empty titles array",
			raw:        `{"titles": []}`,
			wantTitles: []string{"titles:"},
			wantSource: SourceHeuristicLines,
		},
		{
			name:       "top level array is not treated as an object",
			raw:        `["Alpha title", "Beta title"]`,
			wantTitles: []string{"Alpha title, Beta title"},
			wantSource: SourceHeuristicLines,
		},
		{
			name:       "empty string",
			raw:        "",
			wantTitles: []string{},
			wantSource: SourceEmpty,
			wantErr:    true,
		},
		{
			name:       "only short lines",
			raw:        "ok\n- no\n1. yes",
			wantTitles: []string{},
			wantSource: SourceEmpty,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.raw)
			assert.Equal(t, tt.wantTitles, got.Titles)
			assert.Equal(t, tt.wantSource, got.Source, "source %s", got.Source)
			if tt.wantErr {
				assert.ErrorIs(t, got.ParseErr, ErrInvalidJSON)
			} else {
				assert.NoError(t, got.ParseErr)
			}
		})
	}
}

func TestExtractNeverReturnsNilTitles(t *testing.T) {
	for _, raw := range []string{"", "{}", "null", "42", "nope"} {
		got := Extract(raw)
		assert.NotNil(t, got.Titles, "raw %q", raw)
		assert.True(t, got.Empty(), "raw %q", raw)
	}
}

func TestStructuredTitles(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, StructuredTitles(gjson.Parse(`{"titles":["a","b"]}`)))
	assert.Nil(t, StructuredTitles(gjson.Parse(`{"titles":"a"}`)))
	assert.Nil(t, StructuredTitles(gjson.Parse(`{"titles":["a",1]}`)))
	assert.Nil(t, StructuredTitles(gjson.Parse(`["a","b"]`)))
}

func TestObjectValues(t *testing.T) {
	assert.Equal(t, []string{"x", "y"}, ObjectValues(gjson.Parse(`{"b":"x","a":"y"}`)))
	assert.Nil(t, ObjectValues(gjson.Parse(`{"a":"x","b":2}`)))
	assert.Nil(t, ObjectValues(gjson.Parse(`{}`)))
	assert.Nil(t, ObjectValues(gjson.Parse(`["x"]`)))
}

func TestNestedArray(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, NestedArray(gjson.Parse(`{"a":"x","b":[1,2],"c":["z"]}`)))
	assert.Nil(t, NestedArray(gjson.Parse(`{"a":"x"}`)))
	assert.Nil(t, NestedArray(gjson.Parse(`{"a":[null,{}]}`)))
}

func TestHeuristicLines(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "bullets and colons",
			raw:  "• 오늘만 특가 안내드립니다\n: 놓치면 후회할 혜택\n-*- 1.2. 마감 임박 이벤트",
			want: []string{"오늘만 특가 안내드립니다", "놓치면 후회할 혜택", "마감 임박 이벤트"},
		},
		{
			name: "windows line endings",
			raw:  "1. First subject line\r\n2. Second subject line\r\n",
			want: []string{"First subject line", "Second subject line"},
		},
		{
			name: "quoted apostrophes are removed",
			raw:  "'Quoted title here'\nIt's a brand new day",
			want: []string{"Quoted title here", "It's a brand new day"},
		},
		{
			name: "length counts characters not bytes",
			raw:  "가나다라마\n가나다라마바",
			want: []string{"가나다라마바"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HeuristicLines(tt.raw))
		})
	}
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "structured_titles", SourceStructuredTitles.String())
	assert.Equal(t, "object_values", SourceObjectValues.String())
	assert.Equal(t, "nested_array", SourceNestedArray.String())
	assert.Equal(t, "heuristic_lines", SourceHeuristicLines.String())
	assert.Equal(t, "empty", SourceEmpty.String())
}
