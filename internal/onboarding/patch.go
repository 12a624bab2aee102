package onboarding

// Patch is an incremental update written when an onboarding screen
// completes. Nil fields are left untouched.
type Patch struct {
	MotherLanguage        *string `json:"motherLanguage,omitempty"`
	StudyLanguage         *string `json:"studyLanguage,omitempty"`
	Dialect               *string `json:"dialect,omitempty"`
	HasVoice              *bool   `json:"hasVoice,omitempty"`
	HasJustSelectedTopics *bool   `json:"hasJustSelectedTopics,omitempty"`
	DailyStudyMinutes     *int    `json:"dailyStudyMinutes,omitempty"`
	HasJustAcceptedTerms  *bool   `json:"hasJustAcceptedTerms,omitempty"`
	HasJustClonedVoice    *bool   `json:"hasJustClonedVoice,omitempty"`

	// ClearDailyStudyMinutes resets DailyStudyMinutes to null.
	ClearDailyStudyMinutes bool `json:"clearDailyStudyMinutes,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (pa Patch) Empty() bool {
	return pa == Patch{}
}

// Apply merges pa into p. Changing the study language drops a dialect that
// belonged to the previous language.
func (p *Progress) Apply(pa Patch) {
	if pa.MotherLanguage != nil {
		p.MotherLanguage = *pa.MotherLanguage
	}
	if pa.StudyLanguage != nil {
		if *pa.StudyLanguage != p.StudyLanguage && pa.Dialect == nil {
			p.Dialect = ""
		}
		p.StudyLanguage = *pa.StudyLanguage
	}
	if pa.Dialect != nil {
		p.Dialect = *pa.Dialect
	}
	if pa.HasVoice != nil {
		p.HasVoice = *pa.HasVoice
	}
	if pa.HasJustSelectedTopics != nil {
		p.HasJustSelectedTopics = *pa.HasJustSelectedTopics
	}
	if pa.ClearDailyStudyMinutes {
		p.DailyStudyMinutes = nil
	}
	if pa.DailyStudyMinutes != nil {
		m := *pa.DailyStudyMinutes
		p.DailyStudyMinutes = &m
	}
	if pa.HasJustAcceptedTerms != nil {
		p.HasJustAcceptedTerms = *pa.HasJustAcceptedTerms
	}
	if pa.HasJustClonedVoice != nil {
		p.HasJustClonedVoice = *pa.HasJustClonedVoice
	}
}
