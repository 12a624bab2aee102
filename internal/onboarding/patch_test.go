package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestApply_IncrementalScreens(t *testing.T) {
	var p Progress

	p.Apply(Patch{MotherLanguage: strPtr("pl")})
	p.Apply(Patch{StudyLanguage: strPtr("en")})
	p.Apply(Patch{Dialect: strPtr("british-english")})
	p.Apply(Patch{HasJustSelectedTopics: boolPtr(true)})
	p.Apply(Patch{DailyStudyMinutes: intPtr(30)})

	assert.Equal(t, "pl", p.MotherLanguage)
	assert.Equal(t, "en", p.StudyLanguage)
	assert.Equal(t, "british-english", p.Dialect)
	assert.True(t, p.HasJustSelectedTopics)
	require.NotNil(t, p.DailyStudyMinutes)
	assert.Equal(t, 30, *p.DailyStudyMinutes)
}

func TestApply_StudyLanguageChangeDropsDialect(t *testing.T) {
	p := Progress{StudyLanguage: "en", Dialect: "british-english"}
	p.Apply(Patch{StudyLanguage: strPtr("es")})
	assert.Empty(t, p.Dialect)

	p = Progress{StudyLanguage: "en", Dialect: "british-english"}
	p.Apply(Patch{StudyLanguage: strPtr("en")})
	assert.Equal(t, "british-english", p.Dialect)

	p = Progress{StudyLanguage: "es"}
	p.Apply(Patch{StudyLanguage: strPtr("en"), Dialect: strPtr("irish-english")})
	assert.Equal(t, "irish-english", p.Dialect)
}

func TestApply_ClearDailyStudyMinutes(t *testing.T) {
	p := Progress{DailyStudyMinutes: intPtr(10)}
	p.Apply(Patch{ClearDailyStudyMinutes: true})
	assert.Nil(t, p.DailyStudyMinutes)
}

func TestApply_DoesNotAliasPatch(t *testing.T) {
	m := 10
	var p Progress
	p.Apply(Patch{DailyStudyMinutes: &m})
	m = 99
	assert.Equal(t, 10, *p.DailyStudyMinutes)
}

func TestPatchEmpty(t *testing.T) {
	assert.True(t, Patch{}.Empty())
	assert.False(t, Patch{HasVoice: boolPtr(false)}.Empty())
}
