package speech

import (
	"regexp"
	"strings"
)

// Rule is one ordered rewrite step of the markdown-to-speech transform.
// Rules run in sequence over the whole text; later rules see the output of earlier ones.
type Rule struct {
	Name  string
	Apply func(string) string
}

// regexRule replaces every match of pattern with repl (Go template syntax, e.g. "${1}").
func regexRule(name, pattern, repl string) Rule {
	re := regexp.MustCompile(pattern)
	return Rule{
		Name: name,
		Apply: func(s string) string {
			return re.ReplaceAllString(s, repl)
		},
	}
}

// replacerRule replaces literal strings pairwise (old, new, old, new, ...).
func replacerRule(name string, oldnew ...string) Rule {
	r := strings.NewReplacer(oldnew...)
	return Rule{Name: name, Apply: r.Replace}
}

const codeLeadIn = "Here's an example. "

// defaultRules is the transform applied between the intro and the outro.
// Order is significant.
var defaultRules = []Rule{
	regexRule("horizontal-rule", `\n---+\n`, "\n\nMoving to the next section. \n\n"),

	regexRule("heading-1", `(?m)^# (.+)$`, "${1}. "),
	regexRule("heading-2", `(?m)^## (.+)$`, "Now, ${1}. "),
	regexRule("heading-3", `(?m)^### (.+)$`, "${1}. "),
	regexRule("heading-4", `(?m)^#### (.+)$`, "${1}. "),

	regexRule("decorative-emoji", `📚|📊|🎯|👨‍🎓|📋|🌟|🗄️|🎓`, ""),

	regexRule("bold", `\*\*(.+?)\*\*`, "${1}"),
	regexRule("italic", `\*(.+?)\*`, "${1}"),

	regexRule("fenced-code", "(?s)```\\w*\\n(.*?)\\n```", codeLeadIn+"${1}."),
	regexRule("inline-code", "`([^`]+)`", "${1}"),

	regexRule("dash-bullet", `(?m)^- `, ""),
	regexRule("star-bullet", `(?m)^\* `, ""),

	regexRule("table-cells", `\|(.+?)\|`, "${1}. "),

	regexRule("example-label", `(?i)Example:`, "For example"),
	regexRule("note-label", `(?i)Note:`, "Note that"),
	regexRule("important-label", `(?i)Important:`, "Importantly"),

	replacerRule("glyphs",
		"→", " to ",
		"✓", " correct, ",
		"✅", " yes, ",
		"❌", " no, ",
		"⚠️", " note: ",
		"⭐", " ",
		"↓", " requires ",
		"←", " from ",
	),

	regexRule("blank-lines", `\n{3,}`, "\n\n"),
}

// Rules returns a copy of the ordered rewrite table.
func Rules() []Rule {
	out := make([]Rule, len(defaultRules))
	copy(out, defaultRules)
	return out
}
