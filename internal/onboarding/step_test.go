package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepIndex(t *testing.T) {
	steps := Steps()
	for i, s := range steps {
		assert.Equal(t, i, s.Index(), "index of %s", s)
		assert.True(t, s.Valid())
	}
	assert.Equal(t, len(steps), StepNone.Index())
	assert.Equal(t, -1, Step("paywall").Index())
	assert.False(t, Step("paywall").Valid())
}

func TestForwardTarget(t *testing.T) {
	tests := []struct {
		name     string
		current  Step
		missing  Step
		want     Step
		navigate bool
	}{
		{"same step", StepTopics, StepTopics, StepTopics, false},
		{"jump forward", StepMotherLanguage, StepTopics, StepTopics, true},
		{"skip dialect", StepStudyLanguage, StepTopics, StepTopics, true},
		{"user went back", StepTerms, StepTopics, StepTerms, false},
		{"done from last screen", StepCloneVoice, StepNone, StepNone, true},
		{"already in app", StepNone, StepNone, StepNone, false},
		{"unknown current", Step("paywall"), StepTopics, Step("paywall"), false},
		{"unknown missing", StepTopics, Step("paywall"), StepTopics, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, nav := ForwardTarget(tt.current, tt.missing)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.navigate, nav)
		})
	}
}

func TestStepLabel(t *testing.T) {
	assert.Equal(t, "Choose dialect", StepDialect.Label())
	assert.Equal(t, "Onboarded", StepNone.Label())
	assert.Equal(t, "custom", Step("custom").Label())
}
