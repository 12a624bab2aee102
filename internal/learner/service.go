package learner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/cefr"
	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/lang"
	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/logger"
	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/onboarding"
	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/store"
	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/streak"
)

// Daily study time bounds accepted from the onboarding screen.
const (
	MinDailyStudyMinutes = 1
	MaxDailyStudyMinutes = 240
)

var (
	ErrPositionOutOfRange  = errors.New("position out of range")
	ErrUnknownLanguage     = errors.New("unknown language")
	ErrUnknownDialect      = errors.New("unknown dialect")
	ErrInvalidStudyMinutes = errors.New("invalid daily study minutes")
	ErrInvalidWord         = errors.New("invalid word")
	ErrInvalidStep         = errors.New("invalid onboarding step")
)

// Options wires a Service. Scale, Catalog, Logger and Now are optional.
type Options struct {
	Profiles store.ProfileRepo
	Progress store.ProgressRepo
	Words    store.WordRepo

	Scale   *cefr.Scale
	Catalog lang.Catalog
	Logger  *logger.Logger
	Now     func() time.Time
}

// Service combines the pure learner rules with persistence.
type Service struct {
	profiles store.ProfileRepo
	progress store.ProgressRepo
	words    store.WordRepo

	scale   *cefr.Scale
	catalog lang.Catalog
	log     *logger.Logger
	now     func() time.Time
}

// NewService creates a Service from opts.
func NewService(opts Options) *Service {
	s := &Service{
		profiles: opts.Profiles,
		progress: opts.Progress,
		words:    opts.Words,
		scale:    opts.Scale,
		catalog:  opts.Catalog,
		log:      opts.Logger,
		now:      opts.Now,
	}
	if s.scale == nil {
		s.scale = cefr.DefaultScale()
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Scale returns the level scale in use.
func (s *Service) Scale() *cefr.Scale {
	return s.scale
}

// PositionView is a position together with its slider projection.
type PositionView struct {
	Position    int        `json:"position"`
	SliderValue float64    `json:"sliderValue"`
	Level       cefr.Level `json:"level"`
	Stored      bool       `json:"stored"`
}

func (s *Service) positionView(position int, stored bool) PositionView {
	return PositionView{
		Position:    position,
		SliderValue: s.scale.PositionToSliderValue(position),
		Level:       s.scale.CurrentLevel(position),
		Stored:      stored,
	}
}

// Position returns the learner's stored position. Learners without one start
// at the bottom of the scale.
func (s *Service) Position(ctx context.Context, userID uuid.UUID) (PositionView, error) {
	pos, ok, err := s.profiles.Position(ctx, userID)
	if err != nil {
		return PositionView{}, fmt.Errorf("load position: %w", err)
	}
	if !ok {
		pos = s.scale.MinPosition()
	}
	return s.positionView(pos, ok), nil
}

// CommitPosition persists a new position.
func (s *Service) CommitPosition(ctx context.Context, userID uuid.UUID, position int) (PositionView, error) {
	if position < s.scale.MinPosition() || position > s.scale.MaxPosition() {
		return PositionView{}, fmt.Errorf("%w: %d not in [%d, %d]",
			ErrPositionOutOfRange, position, s.scale.MinPosition(), s.scale.MaxPosition())
	}
	if err := s.profiles.SetPosition(ctx, userID, position); err != nil {
		return PositionView{}, fmt.Errorf("save position: %w", err)
	}
	view := s.positionView(position, true)
	s.log.Debug("position committed",
		"user_id", userID.String(), "position", position, "level", view.Level.Name)
	return view, nil
}

// CommitSliderValue converts a slider value to a position and persists it.
func (s *Service) CommitSliderValue(ctx context.Context, userID uuid.UUID, value float64) (PositionView, error) {
	if math.IsNaN(value) || value < 0 || value > s.scale.TotalVisualWidth() {
		return PositionView{}, fmt.Errorf("%w: slider value %g not in [0, %g]",
			ErrPositionOutOfRange, value, s.scale.TotalVisualWidth())
	}
	return s.CommitPosition(ctx, userID, s.scale.SliderValueToPosition(value))
}

// OnboardingView is the learner's onboarding state and the gate's verdict.
type OnboardingView struct {
	Progress    onboarding.Progress `json:"progress"`
	MissingStep onboarding.Step     `json:"missingStep"`
	IsOnboarded bool                `json:"isOnboarded"`
}

func (s *Service) onboardingView(p onboarding.Progress) OnboardingView {
	step := onboarding.MissingStep(p, s.catalog)
	return OnboardingView{
		Progress:    p,
		MissingStep: step,
		IsOnboarded: step == onboarding.StepNone,
	}
}

func (s *Service) loadProgress(ctx context.Context, userID uuid.UUID) (onboarding.Progress, error) {
	p, err := s.progress.Load(ctx, userID)
	if err != nil {
		return onboarding.Progress{}, fmt.Errorf("load progress: %w", err)
	}
	if p == nil {
		return onboarding.DefaultProgress(), nil
	}
	return *p, nil
}

// Onboarding returns the learner's progress and next missing step.
func (s *Service) Onboarding(ctx context.Context, userID uuid.UUID) (OnboardingView, error) {
	p, err := s.loadProgress(ctx, userID)
	if err != nil {
		return OnboardingView{}, err
	}
	return s.onboardingView(p), nil
}

// UpdateOnboarding validates and applies a screen-completion patch.
func (s *Service) UpdateOnboarding(ctx context.Context, userID uuid.UUID, patch onboarding.Patch) (OnboardingView, error) {
	p, err := s.loadProgress(ctx, userID)
	if err != nil {
		return OnboardingView{}, err
	}
	before := onboarding.MissingStep(p, s.catalog)

	p.Apply(patch)
	if err := s.validateProgress(p); err != nil {
		return OnboardingView{}, err
	}
	if err := s.progress.Save(ctx, userID, p); err != nil {
		return OnboardingView{}, fmt.Errorf("save progress: %w", err)
	}

	view := s.onboardingView(p)
	if view.MissingStep != before {
		s.log.Info("onboarding advanced",
			"user_id", userID.String(), "from", string(before), "to", string(view.MissingStep))
	}
	return view, nil
}

func (s *Service) validateProgress(p onboarding.Progress) error {
	if p.MotherLanguage != "" && !s.catalog.SupportedMother(p.MotherLanguage) {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, p.MotherLanguage)
	}
	if p.StudyLanguage != "" && !s.catalog.Supported(p.StudyLanguage) {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, p.StudyLanguage)
	}
	if p.Dialect != "" && !s.catalog.ValidDialect(p.StudyLanguage, p.Dialect) {
		return fmt.Errorf("%w: %q for %q", ErrUnknownDialect, p.Dialect, p.StudyLanguage)
	}
	if m := p.DailyStudyMinutes; m != nil && (*m < MinDailyStudyMinutes || *m > MaxDailyStudyMinutes) {
		return fmt.Errorf("%w: %d not in [%d, %d]",
			ErrInvalidStudyMinutes, *m, MinDailyStudyMinutes, MaxDailyStudyMinutes)
	}
	return nil
}

// ResetOnboarding drops the learner's progress, as on sign-out.
func (s *Service) ResetOnboarding(ctx context.Context, userID uuid.UUID) (OnboardingView, error) {
	if err := s.progress.Delete(ctx, userID); err != nil {
		return OnboardingView{}, fmt.Errorf("reset progress: %w", err)
	}
	s.log.Info("onboarding reset", "user_id", userID.String())
	return s.onboardingView(onboarding.DefaultProgress()), nil
}

// Navigation is the forward-navigation decision for a screen.
type Navigation struct {
	Current  onboarding.Step `json:"current"`
	Target   onboarding.Step `json:"target"`
	Navigate bool            `json:"navigate"`
}

// NextScreen tells a client sitting on current whether to move forward.
func (s *Service) NextScreen(ctx context.Context, userID uuid.UUID, current onboarding.Step) (Navigation, error) {
	if !current.Valid() {
		return Navigation{}, fmt.Errorf("%w: %q", ErrInvalidStep, current)
	}
	view, err := s.Onboarding(ctx, userID)
	if err != nil {
		return Navigation{}, err
	}
	target, nav := onboarding.ForwardTarget(current, view.MissingStep)
	return Navigation{Current: current, Target: target, Navigate: nav}, nil
}

// RecordWord stores a learned word. A zero at means now.
func (s *Service) RecordWord(ctx context.Context, userID uuid.UUID, word, language string, at time.Time) (int64, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidWord)
	}
	if !s.catalog.Supported(language) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
	}
	if at.IsZero() {
		at = s.now()
	}
	seq, err := s.words.AppendWord(ctx, store.WordEventData{
		UserID:    userID,
		Word:      word,
		Language:  language,
		LearnedAt: at,
	})
	if err != nil {
		return 0, fmt.Errorf("record word: %w", err)
	}
	return seq, nil
}

// StreakView is a streak summary plus the total word count.
type StreakView struct {
	streak.Summary
	Words int `json:"words"`
}

// Streak summarizes the learner's study streak in loc.
func (s *Service) Streak(ctx context.Context, userID uuid.UUID, loc *time.Location) (StreakView, error) {
	times, err := s.words.LearnedAt(ctx, userID, store.QueryOpts{})
	if err != nil {
		return StreakView{}, fmt.Errorf("load learned words: %w", err)
	}
	return StreakView{
		Summary: streak.Summarize(times, s.now(), loc),
		Words:   len(times),
	}, nil
}
