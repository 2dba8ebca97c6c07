package service

import (
	"context"
	"sync"
	"testing"

	"github.com/lshigami/Coursegate/internal/dto"
	"github.com/lshigami/Coursegate/internal/model"
	"github.com/lshigami/Coursegate/internal/repository"
	"github.com/lshigami/Coursegate/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// missedPrecheckAttempts hides existing attempts from the pre-check so only the unique index can stop a duplicate.
type missedPrecheckAttempts struct {
	repository.QuizAttemptRepository
}

func (missedPrecheckAttempts) FindByUserAndQuiz(context.Context, uint, uint) (*model.QuizAttempt, error) {
	return nil, gorm.ErrRecordNotFound
}

type submissionFixture struct {
	db      *gorm.DB
	svc     ExamSubmissionService
	quiz    model.Quiz
	correct uint // id of the correct answer of the first question
	wrong   uint // id of a wrong answer of the second question
}

// newSubmissionFixture seeds two multiple-choice questions worth 2 points and one essay worth 1.
func newSubmissionFixture(t *testing.T) *submissionFixture {
	t.Helper()
	db := testutil.NewDB(t)
	quiz := testutil.SeedQuiz(t, db, model.Quiz{
		CourseID:          1,
		Title:             "Unit 1",
		Published:         true,
		PassingPercentage: 50,
		Questions: []model.Question{
			{Content: "2+2?", Type: model.QuestionTypeMultipleChoice, Points: 2, OrderNumber: 1, Answers: []model.Answer{
				{AnswerText: "3", OrderNumber: 1},
				{AnswerText: "4", OrderNumber: 2, IsCorrect: true},
			}},
			{Content: "Capital of France?", Type: model.QuestionTypeMultipleChoice, Points: 2, OrderNumber: 2, Answers: []model.Answer{
				{AnswerText: "Paris", OrderNumber: 1, IsCorrect: true},
				{AnswerText: "Rome", OrderNumber: 2},
			}},
			{Content: "Explain gravity.", Type: model.QuestionTypeEssay, Points: 1, OrderNumber: 3},
		},
	})

	svc := NewExamSubmissionService(
		repository.NewQuizRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewAnswerRepository(db),
		repository.NewQuizAttemptRepository(db),
		repository.NewSubmittedAnswerRepository(db),
		NewAnswerResolver(),
		NewGradingService(),
		db,
	)
	return &submissionFixture{
		db:      db,
		svc:     svc,
		quiz:    quiz,
		correct: quiz.Questions[0].Answers[1].ID,
		wrong:   quiz.Questions[1].Answers[1].ID,
	}
}

func (f *submissionFixture) scenario() dto.ExamSubmissionDTO {
	q := f.quiz.Questions
	return dto.ExamSubmissionDTO{
		QuizID: f.quiz.ID,
		Answers: []dto.AnswerSubmissionDTO{
			{QuestionID: q[0].ID, AnswerID: &f.correct},
			{QuestionID: q[1].ID, SelectedIndex: intPtr(1)},
			{QuestionID: q[2].ID, LinkAnswer: strPtr("https://docs.example/essay")},
		},
	}
}

func TestSubmitExamGradesAndPersists(t *testing.T) {
	f := newSubmissionFixture(t)
	ctx := context.Background()

	result, err := f.svc.SubmitExam(ctx, 42, f.scenario())
	require.NoError(t, err)

	assert.Equal(t, 5.0, result.TotalPoints)
	assert.Equal(t, 2.0, result.EarnedPoints)
	assert.Equal(t, 40.0, result.Percentage)
	assert.False(t, result.Passed)
	assert.Equal(t, 1, result.PendingManualReview)
	require.Len(t, result.Questions, 3)
	assert.True(t, result.Questions[2].PendingReview)
	assert.Equal(t, f.wrong, *result.Questions[1].SelectedAnswerID)

	var attempt model.QuizAttempt
	require.NoError(t, f.db.Where("user_id = ? AND quiz_id = ?", 42, f.quiz.ID).First(&attempt).Error)
	assert.Equal(t, 2, attempt.Score)
	assert.Equal(t, model.AttemptStatusGraded, attempt.Status)

	var stored []model.SubmittedAnswer
	require.NoError(t, f.db.Where("attempt_id = ?", attempt.ID).Order("id").Find(&stored).Error)
	require.Len(t, stored, 3)
	assert.True(t, *stored[0].IsCorrect)
	assert.False(t, *stored[1].IsCorrect)
	assert.Nil(t, stored[2].IsCorrect)
	assert.Equal(t, "https://docs.example/essay", *stored[2].LinkAnswer)
}

func TestSubmitExamGradesEssayText(t *testing.T) {
	f := newSubmissionFixture(t)
	req := f.scenario()
	req.Answers[2] = dto.AnswerSubmissionDTO{QuestionID: f.quiz.Questions[2].ID, AnswerText: strPtr("Mass attracts mass.")}

	result, err := f.svc.SubmitExam(context.Background(), 42, req)
	require.NoError(t, err)
	assert.Equal(t, 5.0, result.TotalPoints)
	assert.Equal(t, 2.0, result.EarnedPoints)
	assert.Equal(t, 1, result.PendingManualReview)
	assert.Equal(t, "Mass attracts mass.", result.Questions[2].SubmittedValue)

	var essay model.SubmittedAnswer
	require.NoError(t, f.db.Where("question_id = ?", f.quiz.Questions[2].ID).First(&essay).Error)
	assert.Nil(t, essay.IsCorrect)
	require.NotNil(t, essay.AnswerText)
	assert.Equal(t, "Mass attracts mass.", *essay.AnswerText)
	assert.Nil(t, essay.LinkAnswer)
}

func TestSubmitExamRejectsRepeatedQuestion(t *testing.T) {
	f := newSubmissionFixture(t)
	q := f.quiz.Questions
	req := dto.ExamSubmissionDTO{QuizID: f.quiz.ID, Answers: []dto.AnswerSubmissionDTO{
		{QuestionID: q[0].ID, AnswerID: &f.correct},
		{QuestionID: q[0].ID, AnswerID: &f.correct},
		{QuestionID: q[0].ID, AnswerID: &f.correct},
		{QuestionID: q[0].ID, AnswerID: &f.correct},
	}}

	_, err := f.svc.SubmitExam(context.Background(), 42, req)
	assert.ErrorIs(t, err, ErrInvalidSubmission)

	var attempts, answers int64
	f.db.Model(&model.QuizAttempt{}).Count(&attempts)
	f.db.Model(&model.SubmittedAnswer{}).Count(&answers)
	assert.Zero(t, attempts)
	assert.Zero(t, answers)

	assert.False(t, f.svc.HasSubmitted(context.Background(), 42, f.quiz.ID).HasSubmitted)
}

func TestSubmitExamUniqueIndexStopsDuplicateAfterPrecheck(t *testing.T) {
	f := newSubmissionFixture(t)
	svc := NewExamSubmissionService(
		repository.NewQuizRepository(f.db),
		repository.NewQuestionRepository(f.db),
		repository.NewAnswerRepository(f.db),
		missedPrecheckAttempts{repository.NewQuizAttemptRepository(f.db)},
		repository.NewSubmittedAnswerRepository(f.db),
		NewAnswerResolver(),
		NewGradingService(),
		f.db,
	)
	ctx := context.Background()

	_, err := svc.SubmitExam(ctx, 42, f.scenario())
	require.NoError(t, err)

	_, err = svc.SubmitExam(ctx, 42, f.scenario())
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	var attempts, answers int64
	f.db.Model(&model.QuizAttempt{}).Count(&attempts)
	f.db.Model(&model.SubmittedAnswer{}).Count(&answers)
	assert.Equal(t, int64(1), attempts)
	assert.Equal(t, int64(3), answers)
}

func TestSubmitExamRejectsSecondSubmission(t *testing.T) {
	f := newSubmissionFixture(t)
	ctx := context.Background()

	_, err := f.svc.SubmitExam(ctx, 42, f.scenario())
	require.NoError(t, err)

	_, err = f.svc.SubmitExam(ctx, 42, f.scenario())
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	var attempts, answers int64
	f.db.Model(&model.QuizAttempt{}).Count(&attempts)
	f.db.Model(&model.SubmittedAnswer{}).Count(&answers)
	assert.Equal(t, int64(1), attempts)
	assert.Equal(t, int64(3), answers)

	// Another learner is unaffected.
	_, err = f.svc.SubmitExam(ctx, 43, f.scenario())
	assert.NoError(t, err)
}

func TestSubmitExamConcurrentDuplicatesCommitOnce(t *testing.T) {
	f := newSubmissionFixture(t)
	const workers = 4

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.SubmitExam(context.Background(), 42, f.scenario())
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrAlreadySubmitted)
	}
	assert.Equal(t, 1, succeeded)

	var attempts int64
	f.db.Model(&model.QuizAttempt{}).Count(&attempts)
	assert.Equal(t, int64(1), attempts)
}

func TestSubmitExamUnknownReferencesRollBack(t *testing.T) {
	f := newSubmissionFixture(t)
	ctx := context.Background()
	q := f.quiz.Questions

	cases := map[string]dto.ExamSubmissionDTO{
		"unknown quiz": {QuizID: 999, Answers: []dto.AnswerSubmissionDTO{{QuestionID: q[0].ID}}},
		"unknown question": {QuizID: f.quiz.ID, Answers: []dto.AnswerSubmissionDTO{
			{QuestionID: q[0].ID, AnswerID: &f.correct},
			{QuestionID: 999},
		}},
		"unknown answer": {QuizID: f.quiz.ID, Answers: []dto.AnswerSubmissionDTO{
			{QuestionID: q[0].ID, AnswerID: uintPtr(999)},
		}},
		"answer of another question": {QuizID: f.quiz.ID, Answers: []dto.AnswerSubmissionDTO{
			{QuestionID: q[0].ID, AnswerID: &f.wrong},
		}},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := f.svc.SubmitExam(ctx, 42, req)
			assert.ErrorIs(t, err, ErrReferenceNotFound)
		})
	}

	var attempts, answers int64
	f.db.Model(&model.QuizAttempt{}).Count(&attempts)
	f.db.Model(&model.SubmittedAnswer{}).Count(&answers)
	assert.Zero(t, attempts)
	assert.Zero(t, answers)

	// Nothing was written, so the learner can still submit.
	_, err := f.svc.SubmitExam(ctx, 42, f.scenario())
	assert.NoError(t, err)
}

func TestSubmitExamQuestionFromAnotherQuiz(t *testing.T) {
	f := newSubmissionFixture(t)
	other := testutil.SeedQuiz(t, f.db, model.Quiz{CourseID: 1, Title: "Other", Questions: []model.Question{
		{Content: "?", Type: model.QuestionTypeEssay, Points: 1, OrderNumber: 1},
	}})

	_, err := f.svc.SubmitExam(context.Background(), 42, dto.ExamSubmissionDTO{
		QuizID:  f.quiz.ID,
		Answers: []dto.AnswerSubmissionDTO{{QuestionID: other.Questions[0].ID, AnswerText: strPtr("text")}},
	})
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestHasSubmittedFlipsAfterSubmit(t *testing.T) {
	f := newSubmissionFixture(t)
	ctx := context.Background()

	before := f.svc.HasSubmitted(ctx, 42, f.quiz.ID)
	assert.False(t, before.HasSubmitted)
	assert.Zero(t, before.AttemptCount)

	_, err := f.svc.SubmitExam(ctx, 42, f.scenario())
	require.NoError(t, err)

	after := f.svc.HasSubmitted(ctx, 42, f.quiz.ID)
	assert.True(t, after.HasSubmitted)
	assert.Equal(t, int64(1), after.AttemptCount)
	assert.Equal(t, f.quiz.ID, after.QuizID)
}

func TestGetResultReplaysStoredGrade(t *testing.T) {
	f := newSubmissionFixture(t)
	ctx := context.Background()

	_, err := f.svc.GetResult(ctx, 42, f.quiz.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	submitted, err := f.svc.SubmitExam(ctx, 42, f.scenario())
	require.NoError(t, err)

	first, err := f.svc.GetResult(ctx, 42, f.quiz.ID)
	require.NoError(t, err)
	second, err := f.svc.GetResult(ctx, 42, f.quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, submitted.AttemptID, first.AttemptID)
	assert.Equal(t, submitted.EarnedPoints, first.EarnedPoints)
	assert.Equal(t, submitted.TotalPoints, first.TotalPoints)
	assert.Equal(t, submitted.Percentage, first.Percentage)
	assert.Equal(t, submitted.PendingManualReview, first.PendingManualReview)
	assert.Equal(t, "Unit 1", first.QuizTitle)
	require.Len(t, first.Questions, 3)
	assert.Equal(t, "4", first.Questions[0].SubmittedValue)
	assert.Equal(t, "Rome", first.Questions[1].SubmittedValue)
}
