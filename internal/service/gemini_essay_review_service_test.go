package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/Coursegate/config"
	"github.com/lshigami/Coursegate/internal/model"
	"github.com/lshigami/Coursegate/internal/repository"
	"github.com/lshigami/Coursegate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeGenerator struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	for _, p := range parts {
		if txt, ok := p.(genai.Text); ok {
			f.prompt += string(txt)
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{genai.Text(f.reply)}}}},
	}, nil
}

// seedInto stores one essay answer and one multiple-choice answer and returns their ids.
func seedInto(t *testing.T, db *gorm.DB, repo repository.SubmittedAnswerRepository) (essayID, choiceID uint) {
	t.Helper()
	ctx := context.Background()
	quiz := testutil.SeedQuiz(t, db, model.Quiz{CourseID: 1, Title: "Essay quiz", Questions: []model.Question{
		{Content: "Why is the sky blue?", Type: model.QuestionTypeEssay, Points: 4, OrderNumber: 1},
		{Content: "Pick one", Type: model.QuestionTypeMultipleChoice, Points: 1, OrderNumber: 2},
	}})
	attempt := model.QuizAttempt{UserID: 1, QuizID: quiz.ID, Status: model.AttemptStatusGraded, AttemptedAt: time.Now()}
	require.NoError(t, db.Create(&attempt).Error)

	essay := model.SubmittedAnswer{AttemptID: attempt.ID, QuestionID: quiz.Questions[0].ID, AnswerText: strPtr("Rayleigh scattering.")}
	choice := model.SubmittedAnswer{AttemptID: attempt.ID, QuestionID: quiz.Questions[1].ID, IsCorrect: boolPtr(false)}
	require.NoError(t, repo.Create(ctx, &essay))
	require.NoError(t, repo.Create(ctx, &choice))
	return essay.ID, choice.ID
}

func TestSuggestEssayFeedbackParsesReply(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewSubmittedAnswerRepository(db)
	essayID, _ := seedInto(t, db, repo)
	gen := &fakeGenerator{reply: "Score: 7.5 out of 4\nFeedback:\nGood start, cite the wavelength dependence."}
	svc := &geminiEssayReviewService{client: gen, submittedAnswerRepo: repo}

	review, err := svc.SuggestEssayFeedback(context.Background(), essayID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, review.MaxPoints)
	assert.Equal(t, 4.0, review.SuggestedPoints, "clamped to the question's points")
	assert.Equal(t, "Good start, cite the wavelength dependence.", review.Feedback)
	assert.Contains(t, gen.prompt, "Why is the sky blue?")
	assert.Contains(t, gen.prompt, "Rayleigh scattering.")
}

func TestSuggestEssayFeedbackErrors(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewSubmittedAnswerRepository(db)
	essayID, choiceID := seedInto(t, db, repo)
	ctx := context.Background()

	unconfigured, err := NewGeminiEssayReviewService(&config.Config{}, repo)
	require.NoError(t, err)
	_, err = unconfigured.SuggestEssayFeedback(ctx, essayID)
	assert.ErrorIs(t, err, ErrReviewUnavailable)

	svc := &geminiEssayReviewService{client: &fakeGenerator{reply: "Score: 1"}, submittedAnswerRepo: repo}
	_, err = svc.SuggestEssayFeedback(ctx, choiceID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.SuggestEssayFeedback(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	failing := &geminiEssayReviewService{client: &fakeGenerator{err: errors.New("quota exceeded")}, submittedAnswerRepo: repo}
	_, err = failing.SuggestEssayFeedback(ctx, essayID)
	assert.ErrorIs(t, err, ErrReviewUnavailable)

	garbled := &geminiEssayReviewService{client: &fakeGenerator{reply: "I cannot grade this."}, submittedAnswerRepo: repo}
	_, err = garbled.SuggestEssayFeedback(ctx, essayID)
	assert.ErrorIs(t, err, ErrReviewUnavailable)
}

func TestParseScoreAndFeedback(t *testing.T) {
	score, feedback, err := parseScoreAndFeedback("Score: 3.0\nFeedback: Clear and concise.")
	require.NoError(t, err)
	assert.Equal(t, "3.0", score)
	assert.Equal(t, "Clear and concise.", feedback)

	score, feedback, err = parseScoreAndFeedback("Score: 2\nNeeds more detail.")
	require.NoError(t, err)
	assert.Equal(t, "2", score)
	assert.Equal(t, "Needs more detail.", feedback)

	_, _, err = parseScoreAndFeedback("no score here")
	assert.Error(t, err)
}
