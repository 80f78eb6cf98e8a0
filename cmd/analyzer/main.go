package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Netflix/go-env"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"signal-lab/bias"
	"signal-lab/domain"
	apperrors "signal-lab/errors"
	"signal-lab/observability"
	"signal-lab/services"
	"signal-lab/storage"
)

// Transcript is the JSON input of one interview session. Serialization
// belongs to callers of the core; this file is the CLI caller.
type Transcript struct {
	SessionID      uuid.UUID                   `json:"sessionId"`
	Messages       []domain.Message            `json:"messages"`
	RawScores      []domain.CategoryScore      `json:"rawScores"`
	Weights        map[domain.Category]float64 `json:"weights,omitempty"`
	EvaluationText string                      `json:"evaluationText,omitempty"`
	BiasContext    bias.Context                `json:"biasContext,omitempty"`
	EvidenceTerms  []string                    `json:"evidenceTerms,omitempty"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and centralizes error reporting, so
// every defer (cache shutdown included) executes before the process exits.
func run() error {
	file := flag.String("file", "", "path to the transcript JSON file")
	flag.Parse()
	if *file == "" {
		return fmt.Errorf("usage: analyzer -file <transcript.json>")
	}

	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Input sniffing & decoding
	transcript, err := readTranscript(*file)
	if err != nil {
		return err
	}

	// 3. Cache (BadgerDB, in-memory unless a path is configured)
	db, err := storage.Open(config.CacheFilepath)
	if err != nil {
		return fmt.Errorf("cache opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing cache...")
		_ = db.Close()
	}()

	// 4. Pipeline
	stats := observability.NewRunStats()
	service, err := services.NewAssessmentService(storage.NewResultCache(db, log), stats, log)
	if err != nil {
		return fmt.Errorf("pipeline setup failed: %w", err)
	}

	report, err := analyze(context.Background(), service, transcript)
	if err != nil {
		return fmt.Errorf("assessment failed: %w", err)
	}

	render(report)

	if config.Debug {
		snapshot := stats.Latest()
		log.Debug("Run stats",
			"sessions", snapshot.SessionsAnalyzed,
			"cache_hits", snapshot.CacheHits,
			"cache_misses", snapshot.CacheMisses,
			"rss_mb", snapshot.RssMb,
		)
	}
	return nil
}

// analyze maps the decoded transcript onto one assessment request.
func analyze(ctx context.Context, service services.IAssessmentService, transcript Transcript) (services.Report, error) {
	return service.Assess(ctx, services.AssessmentRequest{
		SessionID:      transcript.SessionID,
		Messages:       transcript.Messages,
		RawScores:      transcript.RawScores,
		Weights:        transcript.Weights,
		EvaluationText: transcript.EvaluationText,
		BiasContext:    transcript.BiasContext,
		EvidenceTerms:  transcript.EvidenceTerms,
	})
}

// readTranscript refuses binary input before decoding the session.
func readTranscript(path string) (Transcript, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return Transcript{}, fmt.Errorf("sniffing %s: %w", path, err)
	}
	if !mtype.Is("application/json") && !strings.HasPrefix(mtype.String(), "text/") {
		return Transcript{}, fmt.Errorf("%w: %s is %s", apperrors.ErrUnsupportedTranscript, path, mtype)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Transcript{}, err
	}
	var transcript Transcript
	if err := json.Unmarshal(raw, &transcript); err != nil {
		return Transcript{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return transcript, nil
}

func render(report services.Report) {
	fmt.Printf("Session %s\n\n", report.SessionID)

	scores := tablewriter.NewWriter(os.Stdout)
	scores.SetHeader([]string{"Category", "Calibrated Score", "Explanation"})
	scores.SetAutoWrapText(false)
	scores.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, s := range report.Assessment.Scores {
		scores.Append([]string{string(s.Category), fmt.Sprintf("%.1f", s.Score), s.Explanation})
	}
	scores.Append([]string{"overall", fmt.Sprintf("%.1f", report.Assessment.Overall), ""})
	scores.Render()

	if report.Assessment.Qualified {
		fmt.Println(color.New(color.FgGreen).Render("QUALIFIED"))
	} else {
		fmt.Println(color.New(color.FgRed).Render("NOT QUALIFIED"))
	}
	fmt.Println(report.Assessment.Reasoning)
	fmt.Println()

	metrics := tablewriter.NewWriter(os.Stdout)
	metrics.SetHeader([]string{"Sentiment", "Confidence", "Enthusiasm", "Nervousness", "Engagement", "Language"})
	metrics.Append([]string{
		string(report.Sentiment.Overall),
		fmt.Sprintf("%.1f", report.Sentiment.Confidence),
		fmt.Sprintf("%.1f", report.Sentiment.Enthusiasm),
		fmt.Sprintf("%.1f", report.Sentiment.Nervousness),
		fmt.Sprintf("%.1f", report.Sentiment.Engagement),
		report.Sentiment.Language,
	})
	metrics.Render()
	fmt.Println()

	if len(report.Shifts.Shifts) > 0 {
		shifts := tablewriter.NewWriter(os.Stdout)
		shifts.SetHeader([]string{"At (ms)", "From", "To", "Type"})
		for _, s := range report.Shifts.Shifts {
			shifts.Append([]string{
				fmt.Sprintf("%d", s.Timestamp),
				fmt.Sprintf("%s (%.1f)", s.From.Label, s.From.Intensity),
				fmt.Sprintf("%s (%.1f)", s.To.Label, s.To.Intensity),
				string(s.Type),
			})
		}
		shifts.Render()
		if report.Shifts.Significant {
			fmt.Println(color.New(color.FgYellow).Render("Significant emotional shift pattern detected"))
		}
		fmt.Println()
	}

	if len(report.Bias.Findings) > 0 {
		findings := tablewriter.NewWriter(os.Stdout)
		findings.SetHeader([]string{"Matched", "Category", "Severity", "Suggestions"})
		for _, f := range report.Bias.Findings {
			findings.Append([]string{f.MatchedText, string(f.Category), string(f.Severity), strings.Join(f.Suggestions, "; ")})
		}
		findings.Render()
	}
	fmt.Printf("Bias score: %.0f / Fairness score: %.0f\n%s\n", report.Bias.BiasScore, report.Bias.FairnessScore, report.Bias.Summary)

	for term, quotes := range report.Evidence {
		fmt.Printf("\nEvidence for %q:\n", term)
		for _, q := range quotes {
			fmt.Printf("  - %s\n", q)
		}
	}
}
