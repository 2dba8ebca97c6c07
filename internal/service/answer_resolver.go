package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lshigami/Coursegate/internal/dto"
	"github.com/lshigami/Coursegate/internal/model"
	"github.com/lshigami/Coursegate/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	invalidSelectionText = "Invalid selection"
	selectionErrorText   = "Error processing selection"
)

// AnswerLookup is the read-only access to stored answers the resolver needs.
// repository.AnswerRepository satisfies it.
type AnswerLookup interface {
	FindByID(ctx context.Context, id uint) (*model.Answer, error)
	FindByQuestionID(ctx context.Context, questionID uint) ([]model.Answer, error)
}

// AnswerResolver turns one submitted payload into the SubmittedAnswer to persist.
type AnswerResolver interface {
	Resolve(ctx context.Context, question *model.Question, payload dto.AnswerSubmissionDTO, answers AnswerLookup) (*model.SubmittedAnswer, error)
}

type answerResolver struct{}

func NewAnswerResolver() AnswerResolver {
	return &answerResolver{}
}

// answerPayload is one resolvable shape of a submitted answer.
type answerPayload interface {
	resolve(ctx context.Context, q *model.Question, answers AnswerLookup, out *model.SubmittedAnswer) error
}

type (
	answerIDChoice struct{ answerID uint }
	indexedChoice  struct{ index int }
	textChoice     struct{ text string }
	essayResponse  struct {
		text     *string
		link     string
		fileName string
		filePath string
	}
	blankResponse struct{}
)

// classifyPayload picks the payload variant. The order of the checks is the precedence.
func classifyPayload(q *model.Question, p dto.AnswerSubmissionDTO) answerPayload {
	switch {
	case p.AnswerID != nil:
		return answerIDChoice{answerID: *p.AnswerID}
	case p.SelectedIndex != nil && q.IsMultipleChoice():
		return indexedChoice{index: *p.SelectedIndex}
	case !isBlank(p.AnswerText) && q.IsMultipleChoice():
		return textChoice{text: *p.AnswerText}
	case q.IsEssay() && (!isBlank(p.AnswerText) || !isBlank(p.LinkAnswer) || !isBlank(p.FileName)):
		return essayResponse{
			text:     p.AnswerText,
			link:     valueOf(p.LinkAnswer),
			fileName: valueOf(p.FileName),
			filePath: valueOf(p.FilePath),
		}
	default:
		return blankResponse{}
	}
}

func (r *answerResolver) Resolve(ctx context.Context, question *model.Question, payload dto.AnswerSubmissionDTO, answers AnswerLookup) (*model.SubmittedAnswer, error) {
	out := &model.SubmittedAnswer{
		QuestionID: question.ID,
		Question:   *question,
	}
	variant := classifyPayload(question, payload)
	if err := variant.resolve(ctx, question, answers, out); err != nil {
		return nil, err
	}
	log.Debug().
		Uint("questionID", question.ID).
		Str("variant", fmt.Sprintf("%T", variant)).
		Interface("isCorrect", out.IsCorrect).
		Msg("Resolve: answer resolved")
	return out, nil
}

func (c answerIDChoice) resolve(ctx context.Context, q *model.Question, answers AnswerLookup, out *model.SubmittedAnswer) error {
	answer, err := answers.FindByID(ctx, c.answerID)
	if err != nil {
		if repository.IsNotFound(err) {
			return fmt.Errorf("%w: answer %d does not exist", ErrReferenceNotFound, c.answerID)
		}
		log.Warn().Err(err).Uint("answerID", c.answerID).Msg("Resolve: answer lookup failed, marking incorrect")
		out.IsCorrect = boolPtr(false)
		return nil
	}
	if answer.QuestionID != q.ID {
		return fmt.Errorf("%w: answer %d does not belong to question %d", ErrReferenceNotFound, c.answerID, q.ID)
	}
	out.AnswerID = &answer.ID
	out.Answer = answer
	out.IsCorrect = boolPtr(answer.IsCorrect)
	return nil
}

func (c indexedChoice) resolve(ctx context.Context, q *model.Question, answers AnswerLookup, out *model.SubmittedAnswer) error {
	options, err := answers.FindByQuestionID(ctx, q.ID)
	if err != nil {
		log.Warn().Err(err).Uint("questionID", q.ID).Msg("Resolve: answer list lookup failed, marking incorrect")
		out.AnswerText = strPtr(selectionErrorText)
		out.IsCorrect = boolPtr(false)
		return nil
	}
	options = sortedByOrder(options)
	if c.index < 0 || c.index >= len(options) {
		out.AnswerText = strPtr(invalidSelectionText)
		out.IsCorrect = boolPtr(false)
		return nil
	}
	selected := options[c.index]
	out.AnswerID = &selected.ID
	out.Answer = &selected
	out.IsCorrect = boolPtr(selected.IsCorrect)
	return nil
}

func (c textChoice) resolve(ctx context.Context, q *model.Question, answers AnswerLookup, out *model.SubmittedAnswer) error {
	options, err := answers.FindByQuestionID(ctx, q.ID)
	if err != nil {
		log.Warn().Err(err).Uint("questionID", q.ID).Msg("Resolve: answer list lookup failed, storing raw text")
		options = nil
	}
	options = sortedByOrder(options)
	for i := range options {
		if options[i].AnswerText == c.text {
			out.AnswerID = &options[i].ID
			out.Answer = &options[i]
			out.IsCorrect = boolPtr(options[i].IsCorrect)
			return nil
		}
	}
	out.AnswerText = strPtr(c.text)
	out.IsCorrect = boolPtr(false)
	return nil
}

func (c essayResponse) resolve(_ context.Context, _ *model.Question, _ AnswerLookup, out *model.SubmittedAnswer) error {
	if c.text != nil {
		out.AnswerText = strPtr(*c.text)
	}
	out.IsCorrect = nil
	if strings.TrimSpace(c.link) != "" {
		out.LinkAnswer = strPtr(c.link)
	}
	if strings.TrimSpace(c.fileName) != "" {
		out.FileName = strPtr(c.fileName)
		if strings.TrimSpace(c.filePath) != "" {
			out.FilePath = strPtr(c.filePath)
		}
	}
	return nil
}

func (blankResponse) resolve(_ context.Context, _ *model.Question, _ AnswerLookup, out *model.SubmittedAnswer) error {
	out.IsCorrect = nil
	return nil
}

// sortedByOrder returns a copy ordered by order number, ties by id. The input may be
// shared with other requests through the answer cache, so it is never sorted in place.
func sortedByOrder(answers []model.Answer) []model.Answer {
	sorted := make([]model.Answer, len(answers))
	copy(sorted, answers)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].OrderNumber != sorted[j].OrderNumber {
			return sorted[i].OrderNumber < sorted[j].OrderNumber
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
