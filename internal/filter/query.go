package filter

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"revos/internal/domain"
)

// parameterSynonyms maps free-text mentions to parameter names the mapping
// registry understands. Longest phrases are matched first.
var parameterSynonyms = map[string]string{
	"width":          "width",
	"wide":           "width",
	"thickness":      "width",
	"thick":          "width",
	"height":         "height",
	"tall":           "height",
	"high":           "height",
	"length":         "length",
	"long":           "length",
	"area":           "area",
	"volume":         "volume",
	"diameter":       "diameter",
	"size":           "diameter",
	"elevation":      "elevation",
	"sill height":    "sill height",
	"head height":    "head height",
	"slope":          "slope",
	"pitch":          "slope",
	"u value":        "u value",
	"u-value":        "u value",
	"fire rating":    "fire rating",
	"mark":           "mark",
	"comments":       "comments",
	"perimeter":      "perimeter",
	"cost":           "cost",
}

// operatorPhrases maps comparison phrasings to operators. Ordered longest
// first at match time so "greater than or equal to" wins over "greater than".
var operatorPhrases = map[string]domain.Operator{
	"greater than or equal to": domain.OpGreaterEqual,
	"less than or equal to":    domain.OpLessEqual,
	"greater than":             domain.OpGreater,
	"more than":                domain.OpGreater,
	"larger than":              domain.OpGreater,
	"bigger than":              domain.OpGreater,
	"over":                     domain.OpGreater,
	"above":                    domain.OpGreater,
	"exceeds":                  domain.OpGreater,
	"less than":                domain.OpLess,
	"smaller than":             domain.OpLess,
	"under":                    domain.OpLess,
	"below":                    domain.OpLess,
	"at least":                 domain.OpGreaterEqual,
	"at most":                  domain.OpLessEqual,
	"not equal to":             domain.OpNotEqual,
	"equal to":                 domain.OpEqual,
	"equals":                   domain.OpEqual,
	"is":                       domain.OpEqual,
}

var numberToken = regexp.MustCompile(`-?\d+(\.\d+)?`)

// ParseQuery is the best-effort natural-language assist: it scans a free-text
// query for a known parameter mention, a comparison phrase after it, and the
// first numeric token after that, producing at most one predicate. First
// match wins. Ambiguous or multi-clause queries are not fully supported; a
// leftover comparison phrase after the extracted clause yields a warning
// instead of a second predicate.
func ParseQuery(query string) ([]domain.ParameterFilter, []domain.Warning) {
	text := strings.ToLower(query)

	param, paramEnd := findParameter(text)
	if param == "" {
		return nil, []domain.Warning{{
			Code:    "QUERY_UNPARSED",
			Message: "no known parameter name found in query; no predicate applied",
		}}
	}

	rest := text[paramEnd:]
	op, opEnd := findOperator(rest)
	if op == "" {
		return nil, []domain.Warning{{
			Code:    "QUERY_UNPARSED",
			Message: "no comparison phrase found after parameter mention; no predicate applied",
		}}
	}

	after := rest[opEnd:]
	num := numberToken.FindString(after)
	if num == "" {
		return nil, []domain.Warning{{
			Code:    "QUERY_UNPARSED",
			Message: "no numeric value found after comparison phrase; no predicate applied",
		}}
	}
	value, _ := strconv.ParseFloat(num, 64)

	filters := []domain.ParameterFilter{{
		Name:      param,
		Operator:  string(op),
		Value:     value,
		ValueType: "number",
	}}

	var warnings []domain.Warning
	// First match wins; further clauses are dropped, but not silently.
	remainder := after[strings.Index(after, num)+len(num):]
	if _, end := findOperator(remainder); end > 0 {
		warnings = append(warnings, domain.Warning{
			Code:    "QUERY_EXTRA_CLAUSES",
			Message: "query contains additional constraints that were ignored; supply structured parameter filters for multi-clause queries",
		})
	}
	return filters, warnings
}

// findParameter locates the earliest synonym mention, preferring the longest
// phrase at a given position. Returns the mapped parameter name and the index
// just past the mention.
func findParameter(text string) (string, int) {
	phrases := make([]string, 0, len(parameterSynonyms))
	for p := range parameterSynonyms {
		phrases = append(phrases, p)
	}
	sort.Slice(phrases, func(i, j int) bool { return len(phrases[i]) > len(phrases[j]) })

	best, bestIdx, bestEnd := "", -1, 0
	for _, phrase := range phrases {
		idx := indexWord(text, phrase)
		if idx < 0 {
			continue
		}
		if bestIdx < 0 || idx < bestIdx {
			best = parameterSynonyms[phrase]
			bestIdx = idx
			bestEnd = idx + len(phrase)
		}
	}
	if bestIdx < 0 {
		return "", 0
	}
	return best, bestEnd
}

// findOperator locates the earliest comparison phrase, preferring the longest
// phrase at a given position. Returns the operator and the index just past it.
func findOperator(text string) (domain.Operator, int) {
	phrases := make([]string, 0, len(operatorPhrases))
	for p := range operatorPhrases {
		phrases = append(phrases, p)
	}
	sort.Slice(phrases, func(i, j int) bool { return len(phrases[i]) > len(phrases[j]) })

	var best domain.Operator
	bestIdx, bestEnd := -1, 0
	for _, phrase := range phrases {
		idx := indexWord(text, phrase)
		if idx < 0 {
			continue
		}
		if bestIdx < 0 || idx < bestIdx || (idx == bestIdx && idx+len(phrase) > bestEnd) {
			best = operatorPhrases[phrase]
			bestIdx = idx
			bestEnd = idx + len(phrase)
		}
	}
	if bestIdx < 0 {
		return "", 0
	}
	return best, bestEnd
}

// indexWord finds phrase in text at word boundaries.
func indexWord(text, phrase string) int {
	from := 0
	for {
		idx := strings.Index(text[from:], phrase)
		if idx < 0 {
			return -1
		}
		abs := from + idx
		end := abs + len(phrase)
		beforeOK := abs == 0 || !isWordChar(text[abs-1])
		afterOK := end >= len(text) || !isWordChar(text[end])
		if beforeOK && afterOK {
			return abs
		}
		from = abs + 1
	}
}

func isWordChar(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
