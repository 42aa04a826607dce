package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mug4z/GoInfomaniakHackaton2025/internal/core/domain"
	"github.com/mug4z/GoInfomaniakHackaton2025/mocks"
)

type EventSuggestionServiceSuite struct {
	suite.Suite
	mailClient   *mocks.MailClient
	extractor    *mocks.Generator
	reviewer     *mocks.Generator
	eventService *EventSuggestionService
}

func TestEventSuggestionService(t *testing.T) {
	suite.Run(t, new(EventSuggestionServiceSuite))
}

func (suite *EventSuggestionServiceSuite) SetupTest() {
	suite.mailClient = &mocks.MailClient{}
	suite.extractor = &mocks.Generator{}
	suite.reviewer = &mocks.Generator{}
	suite.eventService = NewEventSuggestionService(suite.mailClient, suite.extractor, suite.reviewer)
}

func (suite *EventSuggestionServiceSuite) TearDownTest() {
	suite.mailClient.AssertExpectations(suite.T())
	suite.extractor.AssertExpectations(suite.T())
	suite.reviewer.AssertExpectations(suite.T())
}

func (suite *EventSuggestionServiceSuite) message(uid, from, to, body string) *domain.Message {
	return &domain.Message{
		UID:     uid,
		Date:    time.Date(2025, time.June, 2, 9, 30, 0, 0, time.UTC),
		Subject: "Project kickoff",
		From:    []domain.Address{{Name: "Alice", Email: from}},
		To:      []domain.Address{{Name: "Bob", Email: to}},
		Body:    body,
	}
}

func (suite *EventSuggestionServiceSuite) TestSuggest_GuardsAndReconciles() {
	ctx := context.Background()

	suite.mailClient.EXPECT().GetMessage(mock.Anything, "mb1", "7", "123").
		Return(suite.message("123", "a@x.com", "b@x.com", "Shall we meet Tuesday at 14:00?"), nil)

	// The extractor invents c@x.com, an address the corpus never saw.
	suite.extractor.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(p domain.Prompt) bool {
		return p.Schema == domain.EventSuggestionSchema
	})).Return(`{"emails": ["a@x.com", "c@x.com"], "title": "Kickoff", "description": "Team meeting", "date": "2025-06-03", "start_time": "14:00", "duration": 60}`, nil)

	suite.reviewer.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(p domain.Prompt) bool {
		return p.Schema == nil
	})).Return("```json\n{\"title\": \"Project kickoff\"}\n```", nil)

	event, err := suite.eventService.Suggest(ctx, "mb1", "7", []string{"123@7"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"a@x.com"}, event.Emails)
	assert.Equal(suite.T(), "Project kickoff", event.Title)
	assert.Equal(suite.T(), "Team meeting", event.Description)
	assert.Equal(suite.T(), "2025-06-03", event.Date)
	assert.Equal(suite.T(), "14:00", event.StartTime)
	assert.Equal(suite.T(), 60, event.Duration)
}

func (suite *EventSuggestionServiceSuite) TestSuggest_ValidVerdictKeepsFirstStage() {
	ctx := context.Background()

	suite.mailClient.EXPECT().GetMessage(mock.Anything, "mb1", "7", "123").
		Return(suite.message("123", "a@x.com", "b@x.com", "Lunch on Friday?"), nil)

	suite.extractor.EXPECT().Complete(mock.Anything, mock.Anything).
		Return(`{"emails": ["a@x.com", "b@x.com"], "title": "Lunch", "description": "Team lunch", "date": "2025-06-06"}`, nil)
	suite.reviewer.EXPECT().Complete(mock.Anything, mock.Anything).
		Return("```valid```", nil)

	event, err := suite.eventService.Suggest(ctx, "mb1", "7", []string{"123@7"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Lunch", event.Title)
	assert.Equal(suite.T(), []string{"a@x.com", "b@x.com"}, event.Emails)
	// Schema omissions get the documented defaults.
	assert.Equal(suite.T(), domain.DefaultEventStartTime, event.StartTime)
	assert.Equal(suite.T(), domain.DefaultEventDurationMinutes, event.Duration)
}

func (suite *EventSuggestionServiceSuite) TestSuggest_PatchedEmailsStayGuarded() {
	ctx := context.Background()

	suite.mailClient.EXPECT().GetMessage(mock.Anything, "mb1", "7", "123").
		Return(suite.message("123", "a@x.com", "b@x.com", "Planning session next week"), nil)

	suite.extractor.EXPECT().Complete(mock.Anything, mock.Anything).
		Return(`{"emails": ["a@x.com"], "title": "Planning", "description": "Sprint planning", "date": "2025-06-09"}`, nil)
	// The reviewer slips in an address the corpus never contained.
	suite.reviewer.EXPECT().Complete(mock.Anything, mock.Anything).
		Return("```json\n{\"emails\": [\"a@x.com\", \"intruder@evil.com\"]}\n```", nil)

	event, err := suite.eventService.Suggest(ctx, "mb1", "7", []string{"123@7"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"a@x.com"}, event.Emails)
}

func (suite *EventSuggestionServiceSuite) TestSuggest_AllFetchesFail() {
	ctx := context.Background()

	suite.mailClient.EXPECT().GetMessage(mock.Anything, "mb1", "7", mock.Anything).
		Return(nil, errors.New("boom")).Twice()

	event, err := suite.eventService.Suggest(ctx, "mb1", "7", []string{"123@7", "456@7"})

	assert.Nil(suite.T(), event)
	assert.ErrorIs(suite.T(), err, domain.ErrEmptyCorpus)
}

func (suite *EventSuggestionServiceSuite) TestSuggest_PartialFetchFailure() {
	ctx := context.Background()

	suite.mailClient.EXPECT().GetMessage(mock.Anything, "mb1", "7", "123").
		Return(nil, errors.New("boom"))
	suite.mailClient.EXPECT().GetMessage(mock.Anything, "mb1", "7", "456").
		Return(suite.message("456", "a@x.com", "b@x.com", "Still on for Thursday?"), nil)

	suite.extractor.EXPECT().Complete(mock.Anything, mock.Anything).
		Return(`{"emails": ["a@x.com"], "title": "Catch-up", "description": "Quick sync", "date": "2025-06-05"}`, nil)
	suite.reviewer.EXPECT().Complete(mock.Anything, mock.Anything).
		Return("```valid```", nil)

	event, err := suite.eventService.Suggest(ctx, "mb1", "7", []string{"123@7", "456@7"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Catch-up", event.Title)
}

func (suite *EventSuggestionServiceSuite) TestSuggest_MalformedRefsOnly() {
	ctx := context.Background()

	event, err := suite.eventService.Suggest(ctx, "mb1", "7", []string{"no-folder-part"})

	assert.Nil(suite.T(), event)
	assert.ErrorIs(suite.T(), err, domain.ErrEmptyCorpus)
}

func (suite *EventSuggestionServiceSuite) TestSuggest_ExtractorError() {
	ctx := context.Background()

	suite.mailClient.EXPECT().GetMessage(mock.Anything, "mb1", "7", "123").
		Return(suite.message("123", "a@x.com", "b@x.com", "body"), nil)

	expectedErr := errors.New("model unavailable")
	suite.extractor.EXPECT().Complete(mock.Anything, mock.Anything).Return("", expectedErr)

	event, err := suite.eventService.Suggest(ctx, "mb1", "7", []string{"123@7"})

	assert.Nil(suite.T(), event)
	assert.ErrorIs(suite.T(), err, expectedErr)
}

func (suite *EventSuggestionServiceSuite) TestSuggest_ExtractorMalformedJSON() {
	ctx := context.Background()

	suite.mailClient.EXPECT().GetMessage(mock.Anything, "mb1", "7", "123").
		Return(suite.message("123", "a@x.com", "b@x.com", "body"), nil)

	suite.extractor.EXPECT().Complete(mock.Anything, mock.Anything).Return("not json at all", nil)

	event, err := suite.eventService.Suggest(ctx, "mb1", "7", []string{"123@7"})

	assert.Nil(suite.T(), event)
	assert.Error(suite.T(), err)
}

func (suite *EventSuggestionServiceSuite) TestSuggest_ReviewerError() {
	ctx := context.Background()

	suite.mailClient.EXPECT().GetMessage(mock.Anything, "mb1", "7", "123").
		Return(suite.message("123", "a@x.com", "b@x.com", "body"), nil)

	suite.extractor.EXPECT().Complete(mock.Anything, mock.Anything).
		Return(`{"emails": ["a@x.com"], "title": "T", "description": "D", "date": "2025-06-03"}`, nil)

	expectedErr := errors.New("model unavailable")
	suite.reviewer.EXPECT().Complete(mock.Anything, mock.Anything).Return("", expectedErr)

	event, err := suite.eventService.Suggest(ctx, "mb1", "7", []string{"123@7"})

	assert.Nil(suite.T(), event)
	assert.ErrorIs(suite.T(), err, expectedErr)
}
