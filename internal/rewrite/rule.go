package rewrite

import "regexp"

// Rule is a single ordered (pattern, replacement) substitution against
// the whole file content. Capture groups only accept identifier-and-dot
// tokens, so a call whose argument is a more complex expression (a
// function call, arithmetic) never matches and is left alone.
type Rule struct {
	Name  string
	Level string

	re          *regexp.Regexp
	replacement string
}

func newRule(name, level, pattern, replacement string) Rule {
	return Rule{
		Name:        name,
		Level:       level,
		re:          regexp.MustCompile(pattern),
		replacement: replacement,
	}
}

// Hits returns how many places in content the rule would rewrite.
func (r Rule) Hits(content string) int {
	return len(r.re.FindAllStringIndex(content, -1))
}

// FirstMatch returns the first matched call and its rewritten form.
// ok is false when the rule matches nothing.
func (r Rule) FirstMatch(content string) (before, after string, ok bool) {
	loc := r.re.FindStringIndex(content)
	if loc == nil {
		return "", "", false
	}
	before = content[loc[0]:loc[1]]
	after = r.re.ReplaceAllString(before, r.replacement)
	return before, after, true
}

// Apply rewrites every non-overlapping match in content and returns the
// new content with the match count. No match is not an error: the
// content comes back unchanged with a zero count.
func (r Rule) Apply(content string) (string, int) {
	n := r.Hits(content)
	if n == 0 {
		return content, 0
	}
	return r.re.ReplaceAllString(content, r.replacement), n
}

// ApplyAll folds the rules over content in declared order. Each rule
// sees the output of the previous one. The returned slice holds the
// per-rule match counts, index-aligned with rules.
func ApplyAll(content string, rules []Rule) (string, []int) {
	counts := make([]int, len(rules))
	for i, rule := range rules {
		content, counts[i] = rule.Apply(content)
	}
	return content, counts
}
