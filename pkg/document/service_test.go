package document_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"groupstudy/pkg/document"
	"groupstudy/pkg/document/mocks"
)

var (
	mockRepo *mocks.Repository
	service  *document.Service
)

func resetMock(m *mocks.Repository) {
	m.ExpectedCalls = nil
	m.Calls = nil
}

func TestMain(m *testing.M) {
	mockRepo = new(mocks.Repository)
	service = document.NewService(mockRepo)

	code := m.Run()
	os.Exit(code)
}

func TestListService(t *testing.T) {
	t.Run("passes the window through", func(t *testing.T) {
		defer resetMock(mockRepo)

		docs := []document.Document{{"title": "HW1"}}
		mockRepo.On("List", mock.Anything, int64(2), int64(5)).Return(docs, nil)

		results, err := service.List(context.Background(), 2, 5)

		assert.NoError(t, err)
		assert.Equal(t, docs, results)
		mockRepo.AssertExpectations(t)
	})

	t.Run("negative window lists everything", func(t *testing.T) {
		defer resetMock(mockRepo)

		mockRepo.On("List", mock.Anything, int64(-1), int64(-1)).Return([]document.Document{}, nil)

		_, err := service.List(context.Background(), -3, 5)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repo error", func(t *testing.T) {
		defer resetMock(mockRepo)

		mockRepo.On("List", mock.Anything, int64(-1), int64(-1)).Return(nil, errors.New("mongo_err"))

		results, err := service.ListAll(context.Background())

		assert.Error(t, err)
		assert.Nil(t, results)
		mockRepo.AssertExpectations(t)
	})
}

func TestGetByIDService(t *testing.T) {
	defer resetMock(mockRepo)

	docs := []document.Document{{"_id": "abc", "title": "HW1"}}
	mockRepo.On("GetByID", mock.Anything, "abc").Return(docs, nil)

	results, err := service.GetByID(context.Background(), "abc")

	assert.NoError(t, err)
	assert.Equal(t, docs, results)
	mockRepo.AssertExpectations(t)
}

func TestCreateService(t *testing.T) {
	defer resetMock(mockRepo)

	doc := document.Document{"title": "HW1"}
	expected := &document.CreateResult{Acknowledged: true, InsertedID: "abc"}
	mockRepo.On("Create", mock.Anything, doc).Return(expected, nil)

	result, err := service.Create(context.Background(), doc)

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
	mockRepo.AssertExpectations(t)
}

func TestUpsertService(t *testing.T) {
	defer resetMock(mockRepo)

	doc := document.Document{"title": "HW2"}
	expected := &document.UpsertResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}
	mockRepo.On("Upsert", mock.Anything, "abc", doc).Return(expected, nil)

	result, err := service.Upsert(context.Background(), "abc", doc)

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
	mockRepo.AssertExpectations(t)
}

func TestDeleteService(t *testing.T) {
	defer resetMock(mockRepo)

	expected := &document.DeleteResult{Acknowledged: true, DeletedCount: 0}
	mockRepo.On("Delete", mock.Anything, "abc").Return(expected, nil)

	result, err := service.Delete(context.Background(), "abc")

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
	mockRepo.AssertExpectations(t)
}

func TestCountService(t *testing.T) {
	defer resetMock(mockRepo)

	mockRepo.On("Count", mock.Anything).Return(int64(7), nil)

	count, err := service.Count(context.Background())

	assert.NoError(t, err)
	assert.EqualValues(t, 7, count)
	mockRepo.AssertExpectations(t)
}
