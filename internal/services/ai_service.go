package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rakhaanw/mindhaven/internal/models"
	"github.com/rakhaanw/mindhaven/internal/providers/llm"
	"github.com/sirupsen/logrus"
)

// Canned results returned when the model call fails or its output cannot be
// parsed. Callers treat these as "classification unavailable", not as a real
// neutral reading; the feature must keep working with the AI dependency down.
const (
	FallbackAnalysis = "Unable to analyze sentiment at the moment."
	FallbackReply    = "I'm having trouble connecting right now. Please try again later."
)

const historyLimit = 10

// AIService is the boundary to the external text-generation model. Both
// operations absorb every failure internally: they log the cause and hand the
// caller a fixed fallback instead of an error.
type AIService interface {
	ClassifySentiment(ctx context.Context, text string) models.SentimentResult
	GenerateCompanionReply(ctx context.Context, message string, history []models.ChatMessage) string
}

type aiService struct {
	gen     llm.TextGenerator
	log     *logrus.Logger
	timeout time.Duration
}

func NewAIService(gen llm.TextGenerator, log *logrus.Logger, timeout time.Duration) AIService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &aiService{gen: gen, log: log, timeout: timeout}
}

func (s *aiService) ClassifySentiment(ctx context.Context, text string) models.SentimentResult {
	const op = "AIService.ClassifySentiment"

	prompt := fmt.Sprintf(`Analyze the sentiment of the following journal entry.

Return ONLY valid JSON with these fields:
- mood: one word (Happy, Sad, Anxious, Calm, Angry, Exhausted, Neutral)
- sentimentScore: number between -1 and 1
- analysis: short, supportive, non-medical insight (max 2 sentences)

Journal Entry:
"%s"`, text)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.gen.GenerateText(ctx, prompt)
	if err != nil {
		s.log.WithError(err).WithField("op", op).Warn("sentiment generation failed, using fallback")
		return fallbackSentiment()
	}

	result, err := parseSentiment(raw)
	if err != nil {
		s.log.WithError(err).WithField("op", op).Warn("sentiment response unparseable, using fallback")
		return fallbackSentiment()
	}
	return result
}

func (s *aiService) GenerateCompanionReply(ctx context.Context, message string, history []models.ChatMessage) string {
	const op = "AIService.GenerateCompanionReply"

	var sb strings.Builder
	sb.WriteString(`You are a calm, supportive mental wellness companion.
- Be empathetic and friendly
- Do NOT give medical or clinical advice
- Keep responses concise (3-5 sentences)
- Offer gentle suggestions, not commands
`)

	if turns := recentTurns(history); len(turns) > 0 {
		sb.WriteString("\nRecent conversation:\n")
		for _, m := range turns {
			label := "User"
			if m.Role == models.RoleChatModel {
				label = "Companion"
			}
			fmt.Fprintf(&sb, "%s: %s\n", label, m.Text)
		}
	}

	fmt.Fprintf(&sb, "\nUser message:\n\"%s\"\n", message)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.gen.GenerateText(ctx, sb.String())
	if err != nil || strings.TrimSpace(reply) == "" {
		s.log.WithError(err).WithField("op", op).Warn("companion reply failed, using fallback")
		return FallbackReply
	}
	return reply
}

func fallbackSentiment() models.SentimentResult {
	return models.SentimentResult{
		Mood:           models.MoodNeutral,
		SentimentScore: 0,
		Analysis:       FallbackAnalysis,
	}
}

// recentTurns caps the history replayed into the prompt.
func recentTurns(history []models.ChatMessage) []models.ChatMessage {
	if len(history) <= historyLimit {
		return history
	}
	return history[len(history)-historyLimit:]
}

var fenceOpenRe = regexp.MustCompile("(?i)```[a-z]*")

// stripCodeFences removes markdown code-fence delimiters the model sometimes
// wraps around a JSON body, language-tagged or not.
func stripCodeFences(s string) string {
	s = fenceOpenRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// parseSentiment treats the completion as untrusted input: it must be a JSON
// object carrying exactly the three expected fields with the right types, or
// the whole thing is rejected. No partial extraction.
func parseSentiment(raw string) (models.SentimentResult, error) {
	clean := stripCodeFences(raw)

	var parsed struct {
		Mood           *string  `json:"mood"`
		SentimentScore *float64 `json:"sentimentScore"`
		Analysis       *string  `json:"analysis"`
	}
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		return models.SentimentResult{}, err
	}

	if parsed.Mood == nil || strings.TrimSpace(*parsed.Mood) == "" {
		return models.SentimentResult{}, fmt.Errorf("missing mood field")
	}
	if parsed.SentimentScore == nil {
		return models.SentimentResult{}, fmt.Errorf("missing sentimentScore field")
	}
	if parsed.Analysis == nil || strings.TrimSpace(*parsed.Analysis) == "" {
		return models.SentimentResult{}, fmt.Errorf("missing analysis field")
	}

	return models.SentimentResult{
		Mood:           strings.TrimSpace(*parsed.Mood),
		SentimentScore: clampScore(*parsed.SentimentScore),
		Analysis:       strings.TrimSpace(*parsed.Analysis),
	}, nil
}

func clampScore(v float64) float64 {
	switch {
	case v < -1:
		return -1
	case v > 1:
		return 1
	default:
		return v
	}
}
