// Package category assigns spending categories to transactions via an
// ordered, prioritized ruleset.
package category

import (
	"regexp"
	"sort"
	"strings"
)

// Default is returned when no rule matches.
const Default = "Other"

// defaultPriority is assumed for rules declared without one.
const defaultPriority = 999

// Rule pairs a pattern with the category assigned when it matches.
// Lower priority evaluates first; zero means unset and is treated as 999.
type Rule struct {
	Pattern  *regexp.Regexp
	Category string
	Priority int
}

func (r Rule) priority() int {
	if r.Priority == 0 {
		return defaultPriority
	}

	return r.Priority
}

// Categorizer evaluates rules in priority order, first match wins. It is
// read-only after construction and safe for concurrent use.
type Categorizer struct {
	rules []Rule
}

func NewCategorizer() *Categorizer {
	return NewCategorizerWithRules(defaultRules)
}

// NewCategorizerWithRules builds a categorizer over the given rules. The sort
// is stable, so rules with equal priority keep their declaration order.
func NewCategorizerWithRules(rules []Rule) *Categorizer {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].priority() < sorted[j].priority()
	})

	return &Categorizer{rules: sorted}
}

// Categorize returns the category for a transaction. The description may be
// empty; matching runs over the lowercased merchant plus description.
func (c *Categorizer) Categorize(merchant, description string) string {
	search := strings.ToLower(merchant + " " + description)

	for _, rule := range c.rules {
		if rule.Pattern.MatchString(search) {
			return rule.Category
		}
	}

	return Default
}
