package i18n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslatorRendersMessages(t *testing.T) {
	tr := NewTranslator("en")

	msg := tr.T("en", "submit.success", map[string]any{"EventName": "e-sports"})
	assert.Contains(t, msg, "e-sports")
	assert.NotEqual(t, "submit.success", msg)
}

func TestTranslatorFallsBackToDefaultLocale(t *testing.T) {
	tr := NewTranslator("en")

	msg := tr.T("fr", "error.duplicate_email", nil)
	assert.NotEqual(t, "error.duplicate_email", msg)
}

func TestTranslatorUnknownKeyReturnsKey(t *testing.T) {
	tr := NewTranslator("en")
	assert.Equal(t, "no.such.key", tr.T("en", "no.such.key", nil))
}

func TestTranslatorEmptyKey(t *testing.T) {
	tr := NewTranslator("en")
	assert.Empty(t, tr.T("en", "", nil))
}

func TestOnDutyLetterTemplate(t *testing.T) {
	tr := NewTranslator("en")

	body := tr.T("en", "email.onduty.body", map[string]any{
		"StudentName": "Priya Raman",
		"CollegeName": "North College",
		"EventName":   "Paper Quest",
	})
	assert.Contains(t, body, "Priya Raman")
	assert.Contains(t, body, "North College")
	assert.Contains(t, body, "Paper Quest")
	assert.False(t, strings.Contains(body, "{{"), "unrendered template action in body")
}
