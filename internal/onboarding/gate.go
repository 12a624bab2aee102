package onboarding

// DialectChecker reports whether a study language needs a dialect choice.
type DialectChecker interface {
	RequiresDialect(lang string) bool
}

// Progress is the client-held onboarding state. Every field defaults to its
// zero value, which the gate treats as "not done yet".
//
// HasVoice is the durable completion marker: once a voice is cloned the
// per-session HasJust* flags no longer matter.
type Progress struct {
	MotherLanguage        string `json:"motherLanguage,omitempty"`
	StudyLanguage         string `json:"studyLanguage,omitempty"`
	Dialect               string `json:"dialect,omitempty"`
	HasVoice              bool   `json:"hasVoice"`
	HasJustSelectedTopics bool   `json:"hasJustSelectedTopics"`
	DailyStudyMinutes     *int   `json:"dailyStudyMinutes"`
	HasJustAcceptedTerms  bool   `json:"hasJustAcceptedTerms"`
	HasJustClonedVoice    bool   `json:"hasJustClonedVoice"`
}

// DefaultProgress returns the state of a learner who has done nothing.
func DefaultProgress() Progress {
	return Progress{}
}

// Reset returns p to defaults, as on sign-out.
func (p *Progress) Reset() {
	*p = DefaultProgress()
}

// MissingStep returns the highest-priority step the learner still has to
// complete, or StepNone once onboarding is done. Checks run in flow order and
// stop at the first unmet one.
func MissingStep(p Progress, dialects DialectChecker) Step {
	switch {
	case p.MotherLanguage == "":
		return StepMotherLanguage
	case p.StudyLanguage == "":
		return StepStudyLanguage
	case p.Dialect == "" && dialects != nil && dialects.RequiresDialect(p.StudyLanguage):
		return StepDialect
	case !p.HasVoice && !p.HasJustSelectedTopics:
		return StepTopics
	case p.DailyStudyMinutes == nil:
		return StepDailyStudyMinutes
	case !p.HasVoice && !p.HasJustAcceptedTerms:
		return StepTerms
	case !p.HasVoice && !p.HasJustClonedVoice:
		return StepCloneVoice
	}
	return StepNone
}

// IsOnboarded reports whether no step is missing.
func IsOnboarded(p Progress, dialects DialectChecker) bool {
	return MissingStep(p, dialects) == StepNone
}
