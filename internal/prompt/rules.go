package prompt

import (
	"fmt"
	"strings"
)

const (
	ruleAvoidSuperlatives = "do not use superlatives"
	ruleAvoidPraise       = "do not praise the product, service or company"
	ruleAvoidAcclaim      = "do not use acclaiming words such as \"unique\", \"fantastic\" or \"world-class\""
	ruleInformative       = "keep the text informative rather than selling"
	ruleFirstPersonPlural = "write in the first person plural (\"we\", \"us\", \"our\")"
	ruleAddressReader     = "address the reader directly as \"you\""
)

// RuleOptions holds the rule toggles of the form. Resolve flattens them into Config.Rules.
type RuleOptions struct {
	AvoidSuperlatives bool     `json:"avoidSuperlatives" yaml:"avoidSuperlatives"`
	AvoidPraise       bool     `json:"avoidPraise" yaml:"avoidPraise"`
	AvoidAcclaim      bool     `json:"avoidAcclaim" yaml:"avoidAcclaim"`
	Informative       bool     `json:"informative" yaml:"informative"`
	FirstPersonPlural bool     `json:"firstPersonPlural" yaml:"firstPersonPlural"`
	AddressReader     bool     `json:"addressReader" yaml:"addressReader"`
	AvoidWords        []string `json:"avoidWords" yaml:"avoidWords"`
	AvoidPhrase       string   `json:"avoidPhrase" yaml:"avoidPhrase"`
	// Custom is free text, one rule per line.
	Custom string `json:"custom" yaml:"custom"`
}

// Resolve returns the rule strings in form order. The avoid-words phrasing
// depends on lang.
func (o RuleOptions) Resolve(lang Language) ([]string, error) {
	var rules []string
	toggles := []struct {
		on   bool
		rule string
	}{
		{o.AvoidSuperlatives, ruleAvoidSuperlatives},
		{o.AvoidPraise, ruleAvoidPraise},
		{o.AvoidAcclaim, ruleAvoidAcclaim},
		{o.Informative, ruleInformative},
		{o.FirstPersonPlural, ruleFirstPersonPlural},
		{o.AddressReader, ruleAddressReader},
	}
	for _, t := range toggles {
		if t.on {
			rules = append(rules, t.rule)
		}
	}

	if words := quotedWords(o.AvoidWords); len(words) > 0 {
		phrasing, err := lookup(avoidWordsPhrasing, lang, "rules.avoidWords")
		if err != nil {
			return nil, err
		}
		rules = append(rules, fmt.Sprintf(phrasing, strings.Join(words, ", ")))
	}

	if phrase := strings.TrimSpace(o.AvoidPhrase); phrase != "" {
		rules = append(rules, fmt.Sprintf("never use the phrase \"%s\"", phrase))
	}

	for _, line := range strings.Split(o.Custom, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			rules = append(rules, line)
		}
	}
	return rules, nil
}

func quotedWords(words []string) []string {
	var out []string
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, "\""+w+"\"")
		}
	}
	return out
}
