package httpapi

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/cefr"
	"github.com/TasseDeCafe/app-monorepo-template-sub005/internal/onboarding"
)

const maxBodyBytes = 1 << 16

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type levelsResponse struct {
	Levels           []cefr.Level `json:"levels"`
	TotalVisualWidth float64      `json:"totalVisualWidth"`
	MinPosition      int          `json:"minPosition"`
	MaxPosition      int          `json:"maxPosition"`
}

func (s *Server) listLevels(c *gin.Context) {
	scale := s.learner.Scale()
	c.JSON(http.StatusOK, levelsResponse{
		Levels:           scale.Levels(),
		TotalVisualWidth: scale.TotalVisualWidth(),
		MinPosition:      scale.MinPosition(),
		MaxPosition:      scale.MaxPosition(),
	})
}

type conversionResponse struct {
	Position    int        `json:"position"`
	SliderValue float64    `json:"sliderValue"`
	Level       cefr.Level `json:"level"`
}

func (s *Server) sliderForPosition(c *gin.Context) {
	raw := c.Query("position")
	pos, err := strconv.Atoi(raw)
	if err != nil {
		s.respondError(c, badRequest("invalid_position", "position must be an integer, got %q", raw))
		return
	}
	scale := s.learner.Scale()
	c.JSON(http.StatusOK, conversionResponse{
		Position:    pos,
		SliderValue: scale.PositionToSliderValue(pos),
		Level:       scale.CurrentLevel(pos),
	})
}

func (s *Server) positionForSlider(c *gin.Context) {
	raw := c.Query("value")
	value, err := parseFinite(raw)
	if err != nil {
		s.respondError(c, badRequest("invalid_slider_value", "value must be a finite number, got %q", raw))
		return
	}
	scale := s.learner.Scale()
	if total := scale.TotalVisualWidth(); value < -total || value > 2*total {
		s.respondError(c, badRequest("invalid_slider_value",
			"value %g outside [%g, %g]", value, -total, 2*total))
		return
	}
	pos := scale.SliderValueToPosition(value)
	c.JSON(http.StatusOK, conversionResponse{
		Position:    pos,
		SliderValue: value,
		Level:       scale.CurrentLevel(pos),
	})
}

func parseFinite(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}

func (s *Server) listLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"languages":       s.catalog.All(),
		"motherLanguages": s.catalog.MotherLanguages(),
	})
}

func (s *Server) getPosition(c *gin.Context) {
	view, err := s.learner.Position(c.Request.Context(), userID(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type positionRequest struct {
	Position    *int     `json:"position"`
	SliderValue *float64 `json:"sliderValue"`
}

func (s *Server) putPosition(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		s.respondError(c, err)
		return
	}
	var req positionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.respondError(c, badRequest("invalid_json", "decode body: %v", err))
		return
	}

	ctx := c.Request.Context()
	switch {
	case req.Position != nil && req.SliderValue != nil:
		s.respondError(c, badRequest("ambiguous_position", "send either position or sliderValue, not both"))
	case req.Position != nil:
		view, err := s.learner.CommitPosition(ctx, userID(c), *req.Position)
		if err != nil {
			s.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	case req.SliderValue != nil:
		view, err := s.learner.CommitSliderValue(ctx, userID(c), *req.SliderValue)
		if err != nil {
			s.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	default:
		s.respondError(c, badRequest("missing_position", "position or sliderValue is required"))
	}
}

func (s *Server) getOnboarding(c *gin.Context) {
	view, err := s.learner.Onboarding(c.Request.Context(), userID(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) patchOnboarding(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		s.respondError(c, err)
		return
	}
	var patch onboarding.Patch
	if err := decodeValidated("onboarding-patch", body, &patch); err != nil {
		s.respondError(c, err)
		return
	}
	view, err := s.learner.UpdateOnboarding(c.Request.Context(), userID(c), patch)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) deleteOnboarding(c *gin.Context) {
	view, err := s.learner.ResetOnboarding(c.Request.Context(), userID(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) nextScreen(c *gin.Context) {
	current := onboarding.Step(c.Query("current"))
	nav, err := s.learner.NextScreen(c.Request.Context(), userID(c), current)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, nav)
}

type wordRequest struct {
	Word      string `json:"word"`
	Language  string `json:"language"`
	LearnedAt string `json:"learnedAt"`
}

type wordResponse struct {
	Sequence int64 `json:"sequence"`
}

func (s *Server) postWord(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		s.respondError(c, err)
		return
	}
	var req wordRequest
	if err := decodeValidated("word", body, &req); err != nil {
		s.respondError(c, err)
		return
	}

	var at time.Time
	if req.LearnedAt != "" {
		at, err = time.Parse(time.RFC3339, req.LearnedAt)
		if err != nil {
			s.respondError(c, badRequest("invalid_learned_at", "learnedAt must be RFC 3339: %v", err))
			return
		}
	}

	seq, err := s.learner.RecordWord(c.Request.Context(), userID(c), req.Word, req.Language, at)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, wordResponse{Sequence: seq})
}

func (s *Server) getStreak(c *gin.Context) {
	loc := time.UTC
	if tz := c.Query("tz"); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			s.respondError(c, badRequest("invalid_timezone", "unknown time zone %q", tz))
			return
		}
		loc = l
	}
	view, err := s.learner.Streak(c.Request.Context(), userID(c), loc)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func readBody(c *gin.Context) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		return nil, newError(http.StatusRequestEntityTooLarge, "body_too_large", err)
	}
	return body, nil
}
