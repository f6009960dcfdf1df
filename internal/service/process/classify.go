package process

import (
	"strings"
	"unicode"

	"github.com/ougirez/milkdigit/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type archetypeRule struct {
	archetype domain.Archetype
	tokens    []string
}

// archetypeRules is checked top to bottom against the product name, the first hit wins.
// Products matching nothing get the milk process without homogenization.
var archetypeRules = []archetypeRule{
	{archetype: domain.ArchetypeFermented, tokens: []string{"айран", "ayran"}},
	{archetype: domain.ArchetypeCheese, tokens: []string{"ірімшік", "irimshik", "сыр", "cheese"}},
	{archetype: domain.ArchetypeMilk, tokens: []string{"молоко", "milk"}},
}

// goatTokens are matched against both name and source.
var goatTokens = []string{"козье", "козий", "козья", "goat", "ешкі"}

var lower = cases.Lower(language.Und)

// fold lower-cases and strips combining marks so "Сыр", "СЫР" and "сыр" compare equal.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(lower.String(out))
}

func containsAny(haystack string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(haystack, fold(tok)) {
			return true
		}
	}
	return false
}

// Classify resolves the archetype from the name and the goat flag from name and source.
func Classify(name, source string) domain.Classification {
	n, src := fold(name), fold(source)

	c := domain.Classification{Archetype: domain.ArchetypeMilk}
	for _, rule := range archetypeRules {
		if containsAny(n, rule.tokens) {
			c.Archetype = rule.archetype
			c.Matched = true
			break
		}
	}
	c.Goat = containsAny(n, goatTokens) || containsAny(src, goatTokens)

	return c
}

// homogenization is done for fermented drinks and for cow milk and cheese
func needsHomogenization(c domain.Classification) bool {
	switch {
	case c.Archetype == domain.ArchetypeFermented:
		return true
	case !c.Matched:
		return false
	default:
		return !c.Goat
	}
}
