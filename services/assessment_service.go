//go:generate go run go.uber.org/mock/mockgen -source=assessment_service.go -destination=../mocks/mock_assessment_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"signal-lab/bias"
	"signal-lab/domain"
	apperrors "signal-lab/errors"
	"signal-lab/observability"
	"signal-lab/scoring"
	"signal-lab/search"
	"signal-lab/sentiment"
	"signal-lab/trajectory"
)

// AssessmentRequest carries everything one analysis run needs. Raw
// category scores and the evaluation text come from the caller; the
// core never talks to the upstream scorer itself.
type AssessmentRequest struct {
	SessionID      uuid.UUID `validate:"required"`
	Messages       []domain.Message
	RawScores      []domain.CategoryScore
	Weights        map[domain.Category]float64
	EvaluationText string
	BiasContext    bias.Context
	EvidenceTerms  []string
}

// Report is the combined result of all analysis branches.
type Report struct {
	SessionID  uuid.UUID                   `json:"sessionId"`
	Sentiment  domain.AggregateSentiment   `json:"sentiment"`
	Shifts     domain.ShiftReport          `json:"shifts"`
	Assessment domain.CalibratedAssessment `json:"assessment"`
	Bias       domain.BiasReport           `json:"bias"`
	Evidence   map[string][]string         `json:"evidence,omitempty"`
}

type IAssessmentService interface {
	Assess(ctx context.Context, request AssessmentRequest) (Report, error)
}

// AssessmentService validates input and composes the deterministic
// analysis branches into one report.
type AssessmentService struct {
	validate   *validator.Validate
	summarizer *sentiment.Summarizer
	scanner    *bias.Scanner
	stats      *observability.RunStats
	log        *slog.Logger
}

// NewAssessmentService wires the pipeline. The cache is optional; pass
// nil to disable result caching.
func NewAssessmentService(cache sentiment.ResultCache, stats *observability.RunStats, log *slog.Logger) (*AssessmentService, error) {
	if cache != nil && stats != nil {
		cache = &countingCache{next: cache, stats: stats}
	}
	summarizer, err := sentiment.NewSummarizer(cache, log)
	if err != nil {
		return nil, err
	}
	scanner, err := bias.NewScanner()
	if err != nil {
		return nil, err
	}
	return &AssessmentService{
		validate:   validator.New(),
		summarizer: summarizer,
		scanner:    scanner,
		stats:      stats,
		log:        log,
	}, nil
}

// Assess runs every analysis branch over one session. The only errors
// are boundary errors: invalid or unordered messages, or an evidence
// index failure. The analysis itself is total.
func (s *AssessmentService) Assess(ctx context.Context, request AssessmentRequest) (Report, error) {
	if err := s.validateRequest(request); err != nil {
		return Report{}, err
	}

	result := Report{SessionID: request.SessionID}
	result.Sentiment = s.summarizer.Summarize(request.Messages)
	result.Shifts = trajectory.DetectShifts(result.Sentiment.Trajectory)
	result.Assessment = scoring.Calibrate(request.RawScores, request.Weights)
	result.Bias = s.scanner.Scan(request.EvaluationText, request.BiasContext)

	if len(request.EvidenceTerms) > 0 {
		evidence, err := s.collectEvidence(ctx, request)
		if err != nil {
			return Report{}, fmt.Errorf("evidence collection: %w", err)
		}
		result.Evidence = evidence
	}

	if s.stats != nil {
		s.stats.IncrSessionsAnalyzed()
		s.stats.AddShiftsDetected(uint64(len(result.Shifts.Shifts)))
		s.stats.AddBiasFindings(uint64(len(result.Bias.Findings)))
	}

	s.log.Info("Session assessed",
		"session", request.SessionID,
		"overall_sentiment", result.Sentiment.Overall,
		"shifts", len(result.Shifts.Shifts),
		"qualified", result.Assessment.Qualified,
		"bias_findings", len(result.Bias.Findings),
	)
	return result, nil
}

func (s *AssessmentService) validateRequest(request AssessmentRequest) error {
	if err := s.validate.Struct(request); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidMessage, err)
	}
	for i, m := range request.Messages {
		if err := s.validate.Struct(m); err != nil {
			return fmt.Errorf("%w: message %d: %v", apperrors.ErrInvalidMessage, i, err)
		}
	}
	ordered := slices.IsSortedFunc(request.Messages, func(a, b domain.Message) int {
		switch {
		case a.Timestamp < b.Timestamp:
			return -1
		case a.Timestamp > b.Timestamp:
			return 1
		default:
			return 0
		}
	})
	if !ordered {
		return apperrors.ErrUnorderedMessages
	}
	return nil
}

// collectEvidence indexes the candidate messages and pulls supporting
// quotes for each caller-supplied term.
func (s *AssessmentService) collectEvidence(ctx context.Context, request AssessmentRequest) (map[string][]string, error) {
	index, err := search.NewEvidenceIndex(domain.UserMessages(request.Messages))
	if err != nil {
		return nil, err
	}
	defer func() { _ = index.Close() }()

	evidence := make(map[string][]string, len(request.EvidenceTerms))
	for _, term := range request.EvidenceTerms {
		quotes, err := index.Quotes(ctx, term, 3)
		if err != nil {
			return nil, err
		}
		if len(quotes) > 0 {
			evidence[term] = quotes
		}
	}
	return evidence, nil
}

// countingCache reports hit/miss counters without changing semantics.
type countingCache struct {
	next  sentiment.ResultCache
	stats *observability.RunStats
}

func (c *countingCache) Get(key string) (domain.AggregateSentiment, bool) {
	value, ok := c.next.Get(key)
	if ok {
		c.stats.IncrCacheHit()
	} else {
		c.stats.IncrCacheMiss()
	}
	return value, ok
}

func (c *countingCache) Set(key string, value domain.AggregateSentiment) {
	c.next.Set(key, value)
}
