package mood

import "testing"

func TestClassifyStressed(t *testing.T) {
	c := NewClassifier(nil)
	if got := c.Classify("I'm really stressed today"); got != LabelStressed {
		t.Fatalf("expected stressed, got %s", got)
	}
}

func TestClassifyMotivated(t *testing.T) {
	c := NewClassifier(nil)
	if got := c.Classify("please motivate me"); got != LabelMotivated {
		t.Fatalf("expected motivated, got %s", got)
	}
}

func TestClassifyNeutral(t *testing.T) {
	c := NewClassifier(nil)
	if got := c.Classify("what is the PTO policy"); got != LabelNeutral {
		t.Fatalf("expected neutral, got %s", got)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	c := NewClassifier(nil)
	if got := c.Classify("Feeling EXHAUSTED after the release"); got != LabelTired {
		t.Fatalf("expected tired, got %s", got)
	}
}

func TestClassifyEmptyInput(t *testing.T) {
	c := NewClassifier(nil)
	if got := c.Classify(""); got != LabelNeutral {
		t.Fatalf("expected neutral for empty input, got %s", got)
	}
}

func TestClassifyFirstRuleWins(t *testing.T) {
	c := NewClassifier(nil)
	// Matches both the stressed and tired rules; table order decides.
	if got := c.Classify("stressed and tired"); got != LabelStressed {
		t.Fatalf("expected stressed by table order, got %s", got)
	}
}

func TestClassifyCustomRules(t *testing.T) {
	rules := []Rule{
		{Keywords: []string{"deadline"}, Label: LabelStressed},
	}
	c := NewClassifier(rules)
	if got := c.Classify("the deadline is tomorrow"); got != LabelStressed {
		t.Fatalf("expected stressed from custom rule, got %s", got)
	}
	if got := c.Classify("I feel sad"); got != LabelNeutral {
		t.Fatalf("expected neutral, default table should be replaced, got %s", got)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := NewClassifier(nil)
	first := c.Classify("feeling a bit down lately")
	for i := 0; i < 10; i++ {
		if got := c.Classify("feeling a bit down lately"); got != first {
			t.Fatalf("classification not deterministic: %s vs %s", got, first)
		}
	}
	if first != LabelSad {
		t.Fatalf("expected sad, got %s", first)
	}
}
