package onboarding

import (
	"testing"

	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/lang"
)

func intPtr(v int) *int { return &v }

func TestMissingStep(t *testing.T) {
	tests := []struct {
		name string
		p    Progress
		want Step
	}{
		{"empty", Progress{}, StepMotherLanguage},
		{"mother only", Progress{MotherLanguage: "en"}, StepStudyLanguage},
		{
			"study language without dialects skips dialect",
			Progress{MotherLanguage: "en", StudyLanguage: "es"},
			StepTopics,
		},
		{
			"multi-dialect language needs dialect",
			Progress{MotherLanguage: "en", StudyLanguage: "en"},
			StepDialect,
		},
		{
			"dialect chosen",
			Progress{MotherLanguage: "pl", StudyLanguage: "en", Dialect: "british-english"},
			StepTopics,
		},
		{
			"voice alone does not skip daily minutes",
			Progress{MotherLanguage: "en", StudyLanguage: "es", HasVoice: true},
			StepDailyStudyMinutes,
		},
		{
			"topics selected",
			Progress{MotherLanguage: "en", StudyLanguage: "es", HasJustSelectedTopics: true},
			StepDailyStudyMinutes,
		},
		{
			"minutes set",
			Progress{
				MotherLanguage: "en", StudyLanguage: "es",
				HasJustSelectedTopics: true, DailyStudyMinutes: intPtr(15),
			},
			StepTerms,
		},
		{
			"terms accepted",
			Progress{
				MotherLanguage: "en", StudyLanguage: "es",
				HasJustSelectedTopics: true, DailyStudyMinutes: intPtr(15),
				HasJustAcceptedTerms: true,
			},
			StepCloneVoice,
		},
		{
			"voice just cloned",
			Progress{
				MotherLanguage: "en", StudyLanguage: "es",
				HasJustSelectedTopics: true, DailyStudyMinutes: intPtr(15),
				HasJustAcceptedTerms: true, HasJustClonedVoice: true,
			},
			StepNone,
		},
		{
			"durable voice short-circuits session flags",
			Progress{
				MotherLanguage: "en", StudyLanguage: "en", Dialect: "american-english",
				HasVoice: true, DailyStudyMinutes: intPtr(20),
			},
			StepNone,
		},
		{
			"zero daily minutes still counts as set",
			Progress{
				MotherLanguage: "en", StudyLanguage: "es",
				HasVoice: true, DailyStudyMinutes: intPtr(0),
			},
			StepNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MissingStep(tt.p, lang.Default)
			if got != tt.want {
				t.Errorf("MissingStep() = %q, want %q", got, tt.want)
			}
			if IsOnboarded(tt.p, lang.Default) != (tt.want == StepNone) {
				t.Errorf("IsOnboarded() disagrees with MissingStep() = %q", got)
			}
		})
	}
}

func TestMissingStep_VoiceIgnoresSessionFlags(t *testing.T) {
	base := Progress{
		MotherLanguage: "en", StudyLanguage: "es",
		HasVoice: true, DailyStudyMinutes: intPtr(20),
	}
	for _, terms := range []bool{false, true} {
		for _, cloned := range []bool{false, true} {
			p := base
			p.HasJustAcceptedTerms = terms
			p.HasJustClonedVoice = cloned
			if got := MissingStep(p, lang.Default); got != StepNone {
				t.Errorf("terms=%v cloned=%v: MissingStep() = %q, want onboarded", terms, cloned, got)
			}
		}
	}
}

type fixedDialects map[string]bool

func (f fixedDialects) RequiresDialect(l string) bool { return f[l] }

func TestMissingStep_InjectedDialectChecker(t *testing.T) {
	p := Progress{MotherLanguage: "en", StudyLanguage: "es"}
	if got := MissingStep(p, fixedDialects{"es": true}); got != StepDialect {
		t.Errorf("MissingStep() = %q, want %q", got, StepDialect)
	}
	if got := MissingStep(p, nil); got != StepTopics {
		t.Errorf("MissingStep(nil checker) = %q, want %q", got, StepTopics)
	}
}

func TestReset(t *testing.T) {
	p := Progress{MotherLanguage: "en", HasVoice: true, DailyStudyMinutes: intPtr(10)}
	p.Reset()
	if p != DefaultProgress() {
		t.Errorf("Reset() left %+v", p)
	}
	if MissingStep(p, lang.Default) != StepMotherLanguage {
		t.Error("reset progress should resolve to the first step")
	}
}
