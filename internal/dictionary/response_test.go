package dictionary

import (
	"reflect"
	"testing"
)

func str(s string) *string { return &s }

func item(supNo *string, pos string, definition *string, withSense bool) Item {
	it := Item{Word: "말", SupNo: supNo, POS: pos}
	if withSense {
		it.Senses = []apiSense{{Definition: definition}}
	}
	return it
}

func TestFilterSenses(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		pos   string
		max   int
		want  []Sense
	}{
		{
			name: "skips pronoun and other pos",
			items: []Item{
				item(str("1"), "대명사", str("나를 가리키는 말"), true),
				item(str("2"), "동사", str("달리다"), true),
				item(str("3"), "명사", str("소리"), true),
			},
			pos:  "명사",
			want: []Sense{{POS: "명사", Definition: "소리"}},
		},
		{
			name: "dedupes by homograph number",
			items: []Item{
				item(str("1"), "명사", str("첫째"), true),
				item(str("1"), "명사", str("둘째"), true),
				item(str("2"), "명사", str("셋째"), true),
			},
			pos: "명사",
			want: []Sense{
				{POS: "명사", Definition: "첫째"},
				{POS: "명사", Definition: "셋째"},
			},
		},
		{
			name: "missing sup_no counts as zero",
			items: []Item{
				item(nil, "명사", str("없음"), true),
				item(str("0"), "명사", str("영"), true),
			},
			pos:  "명사",
			want: []Sense{{POS: "명사", Definition: "없음"}},
		},
		{
			name: "number is consumed by entry without sense",
			items: []Item{
				item(str("1"), "명사", nil, false),
				item(str("1"), "명사", str("뒤"), true),
				item(str("2"), "명사", str("둘"), true),
			},
			pos:  "명사",
			want: []Sense{{POS: "명사", Definition: "둘"}},
		},
		{
			name:  "missing definition uses placeholder",
			items: []Item{item(str("1"), "부사", nil, true)},
			pos:   "부사",
			want:  []Sense{{POS: "부사", Definition: "뜻풀이 없음"}},
		},
		{
			name:  "empty definition kept",
			items: []Item{item(str("1"), "부사", str(""), true)},
			pos:   "부사",
			want:  []Sense{{POS: "부사", Definition: ""}},
		},
		{
			name: "stops at max",
			items: []Item{
				item(str("1"), "명사", str("a"), true),
				item(str("2"), "명사", str("b"), true),
				item(str("3"), "명사", str("c"), true),
				item(str("4"), "명사", str("d"), true),
			},
			pos: "명사",
			max: 2,
			want: []Sense{
				{POS: "명사", Definition: "a"},
				{POS: "명사", Definition: "b"},
			},
		},
		{
			name:  "no match",
			items: []Item{item(str("1"), "명사", str("a"), true)},
			pos:   "동사",
			want:  []Sense{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterSenses(tt.items, tt.pos, tt.max)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterSenses() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterSensesDefaultMax(t *testing.T) {
	var items []Item
	for _, n := range []string{"1", "2", "3", "4", "5"} {
		items = append(items, item(str(n), "명사", str(n), true))
	}

	got := FilterSenses(items, "명사", 0)
	if len(got) != DefaultMaxSenses {
		t.Errorf("len(FilterSenses()) = %d, want %d", len(got), DefaultMaxSenses)
	}
}

func TestParseResponse(t *testing.T) {
	body := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<channel>
	<title>표준국어대사전 개발 지원(Open API) - 사전 검색</title>
	<total>2</total>
	<item>
		<target_code>12345</target_code>
		<word>부추</word>
		<sup_no>0</sup_no>
		<pos>명사</pos>
		<sense>
			<definition>백합과의 여러해살이풀.</definition>
			<link>https://stdict.korean.go.kr</link>
			<type>일반어</type>
		</sense>
	</item>
	<item>
		<word>부추</word>
		<pos>동사</pos>
	</item>
</channel>`)

	resp, err := parseResponse(body)
	if err != nil {
		t.Fatalf("parseResponse() unexpected error: %v", err)
	}
	if resp.Total != 2 || len(resp.Items) != 2 {
		t.Fatalf("parsed total=%d items=%d, want 2 and 2", resp.Total, len(resp.Items))
	}

	first := resp.Items[0]
	if first.SupNo == nil || *first.SupNo != "0" || first.POS != "명사" {
		t.Errorf("unexpected first item: %+v", first)
	}
	if len(first.Senses) != 1 || *first.Senses[0].Definition != "백합과의 여러해살이풀." {
		t.Errorf("unexpected senses: %+v", first.Senses)
	}

	second := resp.Items[1]
	if second.SupNo != nil || len(second.Senses) != 0 {
		t.Errorf("missing elements should stay empty: %+v", second)
	}
}

func TestParseResponseError(t *testing.T) {
	resp, err := parseResponse([]byte(`<error><error_code>020</error_code><message>등록되지 않은 키</message></error>`))
	if err != nil {
		t.Fatalf("parseResponse() unexpected error: %v", err)
	}
	if resp.ErrorCode != "020" || resp.Message != "등록되지 않은 키" {
		t.Errorf("unexpected error fields: %+v", resp)
	}

	if _, err := parseResponse([]byte("<html>")); err == nil {
		t.Error("parseResponse() expected error for malformed xml")
	}

	resp, err = parseResponse(nil)
	if err != nil || len(resp.Items) != 0 {
		t.Errorf("empty body: got %+v, %v", resp, err)
	}
}
