package search

import (
	"regexp"
)

// compileLiteral builds a matcher that treats every character of query literally
func compileLiteral(query string, caseSensitive bool) (*regexp.Regexp, error) {
	pattern := regexp.QuoteMeta(query)
	if !caseSensitive {
		pattern = "(?i)" + pattern
	}
	return regexp.Compile(pattern)
}

// Highlight splits label around every occurrence of query.
// Joining the Text of the returned spans always gives back label.
func Highlight(label, query string, caseSensitive bool) []Span {
	if query == "" {
		return []Span{{Text: label}}
	}
	re, err := compileLiteral(query, caseSensitive)
	if err != nil {
		return []Span{{Text: label}}
	}
	return split(label, re)
}

func split(label string, re *regexp.Regexp) []Span {
	if re == nil || label == "" {
		return []Span{{Text: label}}
	}
	locs := re.FindAllStringIndex(label, -1)
	if len(locs) == 0 {
		return []Span{{Text: label}}
	}

	spans := make([]Span, 0, len(locs)*2+1)
	last := 0
	for _, loc := range locs {
		if loc[0] > last {
			spans = append(spans, Span{Text: label[last:loc[0]]})
		}
		spans = append(spans, Span{Text: label[loc[0]:loc[1]], Match: true})
		last = loc[1]
	}
	if last < len(label) {
		spans = append(spans, Span{Text: label[last:]})
	}
	return spans
}
