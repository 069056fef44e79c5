package mood

import "strings"

// Rule maps a keyword set to a label.
type Rule struct {
	Keywords []string
	Label    Label
}

// DefaultRules returns the built-in keyword table. Slice order is the
// match priority: earlier rules shadow later ones, so a message that
// mentions both stress and motivation classifies as stressed.
func DefaultRules() []Rule {
	return []Rule{
		{Keywords: []string{"stressed", "overwhelmed", "burnt out"}, Label: LabelStressed},
		{Keywords: []string{"sad", "depressed", "down"}, Label: LabelSad},
		{Keywords: []string{"tired", "exhausted"}, Label: LabelTired},
		{Keywords: []string{"motivate", "motivated", "motivation"}, Label: LabelMotivated},
		{Keywords: []string{"happy", "excited", "great day"}, Label: LabelHappy},
	}
}

// Classifier matches free text against an ordered keyword table.
type Classifier struct {
	rules []Rule
}

// NewClassifier returns a Classifier using the given rule table, or
// the default table when rules is empty.
func NewClassifier(rules []Rule) *Classifier {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Classifier{rules: rules}
}

// Classify returns the label of the first rule with a keyword present
// anywhere in text, matched case-insensitively. Text matching no rule,
// including empty text, classifies as LabelNeutral. Classify has no
// side effects and never fails.
func (c *Classifier) Classify(text string) Label {
	lowered := strings.ToLower(text)
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lowered, keyword) {
				return rule.Label
			}
		}
	}
	return LabelNeutral
}
