package segment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(t *testing.T, text string, m *RuleModel) []string {
	t.Helper()
	var out []string
	for _, s := range m.Split(text) {
		require.Equal(t, s.Text, strings.Join(strings.Fields(text[s.Start:s.End]), " "), "offsets must address the sentence")
		out = append(out, s.Text)
	}
	return out
}

func TestRuleModelSplit(t *testing.T) {
	en := NewRuleModel([]string{"e.g.", "i.e.", "etc."})
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "terminal punctuation",
			text: "The system shall start. The user may stop it! Is it safe? Yes.",
			want: []string{"The system shall start.", "The user may stop it!", "Is it safe?", "Yes."},
		},
		{
			name: "abbreviation does not split",
			text: "Use a format, e.g. JSON or YAML. The system shall log.",
			want: []string{"Use a format, e.g. JSON or YAML.", "The system shall log."},
		},
		{
			name: "abbreviation in parentheses",
			text: "Store the data (e.g. Logs and traces) for a year. Then purge.",
			want: []string{"Store the data (e.g. Logs and traces) for a year.", "Then purge."},
		},
		{
			name: "decimal number",
			text: "The supply shall be 3.5 volts. Next item.",
			want: []string{"The supply shall be 3.5 volts.", "Next item."},
		},
		{
			name: "lowercase continuation",
			text: "See section 4. it continues here.",
			want: []string{"See section 4. it continues here."},
		},
		{
			name: "blank line ends sentence",
			text: "Heading without period\n\nThe system shall work.",
			want: []string{"Heading without period", "The system shall work."},
		},
		{
			name: "single newline joins",
			text: "The system shall\nwork at night.",
			want: []string{"The system shall\nwork at night."},
		},
		{
			name: "closing quote stays with sentence",
			text: `He said "Stop." Then he left.`,
			want: []string{`He said "Stop."`, "Then he left."},
		},
		{
			name: "ellipsis",
			text: "Wait... Then go.",
			want: []string{"Wait...", "Then go."},
		},
		{
			name: "digit opens sentence",
			text: "First part ends. 2 units are required.",
			want: []string{"First part ends.", "2 units are required."},
		},
		{
			name: "empty",
			text: "   \n\n  ",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, texts(t, tt.text, en))
		})
	}
}

func TestRuleModelLanguageSpecific(t *testing.T) {
	de := NewRuleModel([]string{"z.B.", "bzw."})
	assert.Equal(t,
		[]string{"Das System muss Formate, z.B. XML unterstützen.", "Der Bediener prüft."},
		texts(t, "Das System muss Formate, z.B. XML unterstützen. Der Bediener prüft.", de))

	es := NewRuleModel(nil)
	assert.Equal(t,
		[]string{"El sistema debe arrancar.", "¿Es seguro?", "¡Sí!"},
		texts(t, "El sistema debe arrancar. ¿Es seguro? ¡Sí!", es))
}

func TestSentenceTokens(t *testing.T) {
	m := NewRuleModel(nil)
	got := m.Split("  The system, as built, shall log. Alpha — beta gamma.")
	require.Len(t, got, 2)

	assert.Equal(t, []string{"The", "system,", "as", "built,", "shall", "log."}, got[0].Tokens)
	assert.Equal(t, 6, got[0].WordCount)
	assert.Equal(t, 2, got[0].Start)

	assert.Equal(t, []string{"Alpha", "—", "beta", "gamma."}, got[1].Tokens)
	assert.Equal(t, 3, got[1].WordCount)
}

func TestSentenceTextCollapsesLineBreaks(t *testing.T) {
	text := "The pump shall stop\non   the operator's\tstop command.\nEnd."
	got := NewRuleModel(nil).Split(text)
	require.Len(t, got, 2)

	s := got[0]
	assert.Equal(t, "The pump shall stop on the operator's stop command.", s.Text)
	assert.Equal(t, "The pump shall stop\non   the operator's\tstop command.", text[s.Start:s.End])
	assert.Equal(t, []string{"The", "pump", "shall", "stop", "on", "the", "operator's", "stop", "command."}, s.Tokens)
	assert.Equal(t, "End.", got[1].Text)
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 12, WordCount("The system shall ensure that all requirements are properly validated and tracked."))
	assert.Equal(t, 1, WordCount("OK."))
	assert.Equal(t, 0, WordCount(" - ... — "))
	assert.Equal(t, 2, WordCount("1) MUST:"))
}
