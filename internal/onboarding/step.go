package onboarding

// Step identifies one screen of the first-run setup flow.
type Step string

const (
	StepNone              Step = "" // Onboarding complete
	StepMotherLanguage    Step = "mother-language"
	StepStudyLanguage     Step = "study-language"
	StepDialect           Step = "dialect"
	StepTopics            Step = "topics"
	StepDailyStudyMinutes Step = "daily-study-minutes"
	StepTerms             Step = "terms"
	StepCloneVoice        Step = "clone-voice"
)

var stepOrder = []Step{
	StepMotherLanguage,
	StepStudyLanguage,
	StepDialect,
	StepTopics,
	StepDailyStudyMinutes,
	StepTerms,
	StepCloneVoice,
}

// Steps returns the onboarding screens in flow order.
func Steps() []Step {
	out := make([]Step, len(stepOrder))
	copy(out, stepOrder)
	return out
}

// Index returns the step's position in the flow. StepNone sorts after every
// screen; unknown steps return -1.
func (s Step) Index() int {
	if s == StepNone {
		return len(stepOrder)
	}
	for i, st := range stepOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is a known screen or StepNone.
func (s Step) Valid() bool {
	return s.Index() >= 0
}

// Label returns a human-readable description of the step.
func (s Step) Label() string {
	switch s {
	case StepNone:
		return "Onboarded"
	case StepMotherLanguage:
		return "Choose mother language"
	case StepStudyLanguage:
		return "Choose study language"
	case StepDialect:
		return "Choose dialect"
	case StepTopics:
		return "Choose topics"
	case StepDailyStudyMinutes:
		return "Set daily study minutes"
	case StepTerms:
		return "Accept terms"
	case StepCloneVoice:
		return "Clone voice"
	default:
		return string(s)
	}
}

// ForwardTarget decides whether a learner on screen current should be moved
// forward to missing. Navigation only ever goes forward: when current already
// sits at or past missing the learner stays put, which leaves back gestures
// alone.
func ForwardTarget(current, missing Step) (Step, bool) {
	if current == missing {
		return current, false
	}
	ci, mi := current.Index(), missing.Index()
	if ci < 0 || mi < 0 {
		return current, false
	}
	if ci < mi {
		return missing, true
	}
	return current, false
}
