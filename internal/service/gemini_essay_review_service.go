package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/Coursegate/config"
	"github.com/lshigami/Coursegate/internal/dto"
	"github.com/lshigami/Coursegate/internal/repository"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// EssayReviewService suggests feedback for essay answers. Suggestions are never persisted.
type EssayReviewService interface {
	SuggestEssayFeedback(ctx context.Context, submittedAnswerID uint) (*dto.EssayReviewDTO, error)
}

// contentGenerator is the part of *genai.GenerativeModel the review needs.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type geminiEssayReviewService struct {
	client              contentGenerator
	submittedAnswerRepo repository.SubmittedAnswerRepository
}

func NewGeminiEssayReviewService(cfg *config.Config, submittedAnswerRepo repository.SubmittedAnswerRepository) (EssayReviewService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Essay review will answer 503.")
		return &geminiEssayReviewService{submittedAnswerRepo: submittedAnswerRepo}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiEssayReviewService{
		client:              client.GenerativeModel("gemini-1.5-flash"),
		submittedAnswerRepo: submittedAnswerRepo,
	}, nil
}

func (s *geminiEssayReviewService) SuggestEssayFeedback(ctx context.Context, submittedAnswerID uint) (*dto.EssayReviewDTO, error) {
	answer, err := s.submittedAnswerRepo.FindByIDWithQuestion(ctx, submittedAnswerID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, fmt.Errorf("%w: submitted answer %d", ErrNotFound, submittedAnswerID)
		}
		log.Error().Err(err).Uint("submittedAnswerID", submittedAnswerID).Msg("SuggestEssayFeedback: Failed to load answer")
		return nil, fmt.Errorf("%w: loading submitted answer: %v", ErrTransientStore, err)
	}
	if !answer.Question.IsEssay() {
		return nil, fmt.Errorf("%w: submitted answer %d is not an essay answer", ErrNotFound, submittedAnswerID)
	}
	if s.client == nil {
		return nil, fmt.Errorf("%w: gemini client not initialized", ErrReviewUnavailable)
	}

	maxPoints := answer.Question.Points
	prompt := buildEssayPrompt(answer.Question.Content, maxPoints, valueOf(answer.AnswerText), valueOf(answer.LinkAnswer), valueOf(answer.FileName))

	resp, err := s.client.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Uint("submittedAnswerID", submittedAnswerID).Msg("Gemini API error during essay review")
		return nil, fmt.Errorf("%w: %v", ErrReviewUnavailable, err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Uint("submittedAnswerID", submittedAnswerID).Msg("Gemini returned no candidates or parts in response.")
		return nil, fmt.Errorf("%w: gemini returned no content", ErrReviewUnavailable)
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}

	scoreStr, feedback, err := parseScoreAndFeedback(text.String())
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", text.String()).Msg("Failed to parse score and feedback from Gemini response")
		return nil, fmt.Errorf("%w: %v", ErrReviewUnavailable, err)
	}
	score, err := strconv.ParseFloat(scoreStr, 64)
	if err != nil {
		log.Warn().Err(err).Str("scoreStr", scoreStr).Msg("Failed to parse score string to float")
		return nil, fmt.Errorf("%w: could not parse score value %q", ErrReviewUnavailable, scoreStr)
	}
	if score > maxPoints {
		score = maxPoints
	}
	if score < 0 {
		score = 0
	}

	return &dto.EssayReviewDTO{
		SubmittedAnswerID: answer.ID,
		QuestionID:        answer.QuestionID,
		MaxPoints:         maxPoints,
		SuggestedPoints:   score,
		Feedback:          feedback,
	}, nil
}

func buildEssayPrompt(question string, maxPoints float64, text, link, fileName string) string {
	var b strings.Builder
	b.WriteString("You are an experienced course instructor reviewing a learner's essay answer.\n\n")
	b.WriteString("Question:\n---\n")
	b.WriteString(question)
	b.WriteString("\n---\n\n")
	b.WriteString("Learner's answer:\n---\n")
	if strings.TrimSpace(text) == "" {
		b.WriteString("(no text submitted)")
	} else {
		b.WriteString(text)
	}
	b.WriteString("\n---\n")
	if link != "" {
		fmt.Fprintf(&b, "The learner also attached a link: %s\n", link)
	}
	if fileName != "" {
		fmt.Fprintf(&b, "The learner also uploaded a file named %q (its content is not available to you).\n", fileName)
	}
	fmt.Fprintf(&b, `
Please provide your evaluation in two distinct parts:
1. Score: A numerical score from 0.0 to %.1f.
2. Feedback: Strong points, concrete mistakes with a suggested correction, and advice for improvement.

Format your response strictly as:
Score: [Your Numerical Score Here]
Feedback:
[Your Detailed Feedback Here]
`, maxPoints)
	return b.String()
}

// parseScoreAndFeedback splits a "Score: ...\nFeedback: ..." reply.
func parseScoreAndFeedback(raw string) (scoreStr string, feedback string, err error) {
	const scorePrefix, feedbackPrefix = "Score:", "Feedback:"

	scoreIndex := strings.Index(raw, scorePrefix)
	if scoreIndex == -1 {
		return "", raw, fmt.Errorf("response does not contain %q prefix", scorePrefix)
	}
	rest := raw[scoreIndex+len(scorePrefix):]
	line := rest
	if nl := strings.Index(rest, "\n"); nl != -1 {
		line = rest[:nl]
		rest = rest[nl+1:]
	} else {
		rest = ""
	}
	if fields := strings.Fields(line); len(fields) > 0 {
		scoreStr = fields[0]
	}
	if scoreStr == "" {
		return "", raw, fmt.Errorf("response has an empty score")
	}

	if i := strings.Index(rest, feedbackPrefix); i != -1 {
		feedback = strings.TrimSpace(rest[i+len(feedbackPrefix):])
	} else {
		feedback = strings.TrimSpace(rest)
	}
	if feedback == "" {
		feedback = "Feedback not found in the expected format after the score."
	}
	return scoreStr, feedback, nil
}
