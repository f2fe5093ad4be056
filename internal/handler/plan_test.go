package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/wmateusz/mealweek/internal/domain"
	"github.com/wmateusz/mealweek/internal/handler"
	"github.com/wmateusz/mealweek/mocks"
)

func intPtr(i int) *int { return &i }

func testWeekPlan(t *testing.T, weekStart string) *domain.WeekPlan {
	t.Helper()
	monday, err := time.Parse("2006-01-02", weekStart)
	if err != nil {
		t.Fatalf("bad week start %q: %v", weekStart, err)
	}
	return domain.NewWeekPlan(monday)
}

func TestPlanHandler_LoadWeek(t *testing.T) {
	handler.InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*mocks.MockPlanService)
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "Success",
			requestBody: handler.LoadWeekRequest{WeekStart: "2024-03-04"},
			setupMock: func(m *mocks.MockPlanService) {
				m.On("LoadWeek", mock.Anything, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)).
					Return(testWeekPlan(t, "2024-03-04"), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing Week Start",
			requestBody:    handler.LoadWeekRequest{},
			setupMock:      func(m *mocks.MockPlanService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  handler.ErrMsgInvalidRequestSummary,
		},
		{
			name:           "Malformed Week Start",
			requestBody:    handler.LoadWeekRequest{WeekStart: "04-03-2024"},
			setupMock:      func(m *mocks.MockPlanService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  handler.ErrMsgInvalidRequestSummary,
		},
		{
			name:           "Malformed JSON",
			requestBody:    "not-json",
			setupMock:      func(m *mocks.MockPlanService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  handler.ErrMsgInvalidRequest,
		},
		{
			name:        "Storage Unavailable",
			requestBody: handler.LoadWeekRequest{WeekStart: "2024-03-04"},
			setupMock: func(m *mocks.MockPlanService) {
				m.On("LoadWeek", mock.Anything, mock.Anything).
					Return(nil, domain.ErrStorage)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  handler.ErrMsgStorageError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockPlanService(t)
			tt.setupMock(mockSvc)
			h := handler.NewPlanHandler(mockSvc)

			var body []byte
			if s, ok := tt.requestBody.(string); ok {
				body = []byte(s)
			} else {
				var err error
				body, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatalf("Failed to marshal request body: %v", err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/plan/week", bytes.NewReader(body))
			w := httptest.NewRecorder()

			h.LoadWeek(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, strings.ToLower(w.Body.String()), strings.ToLower(tt.expectedError))
			}
			if tt.expectedStatus == http.StatusOK {
				var got domain.WeekPlan
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, "2024-03-04", got.WeekStart)
				assert.Equal(t, "2024-03-10", got.Days[6].Date)
			}
		})
	}
}

func TestPlanHandler_CurrentWeek(t *testing.T) {
	t.Run("Returns loaded week", func(t *testing.T) {
		mockSvc := mocks.NewMockPlanService(t)
		mockSvc.On("CurrentWeek").Return(testWeekPlan(t, "2024-03-04"))
		h := handler.NewPlanHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/plan/week/current", nil)
		w := httptest.NewRecorder()

		h.CurrentWeek(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got domain.WeekPlan
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "2024-03-04", got.WeekStart)
	})

	t.Run("No week loaded", func(t *testing.T) {
		mockSvc := mocks.NewMockPlanService(t)
		mockSvc.On("CurrentWeek").Return(nil)
		h := handler.NewPlanHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/plan/week/current", nil)
		w := httptest.NewRecorder()

		h.CurrentWeek(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), handler.ErrMsgWeekNotFoundError)
	})
}

func TestPlanHandler_Assign(t *testing.T) {
	handler.InitValidator()

	tests := []struct {
		name           string
		requestBody    handler.AssignRequest
		setupMock      func(*mocks.MockPlanService)
		expectedStatus int
		expectedError  string
	}{
		{
			name:        "Success",
			requestBody: handler.AssignRequest{RecipeID: "r1", DayIndices: []int{0, 2, 4}},
			setupMock: func(m *mocks.MockPlanService) {
				m.On("AssignToDayIndices", mock.Anything, "r1", []int{0, 2, 4}).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing Recipe ID",
			requestBody:    handler.AssignRequest{DayIndices: []int{0}},
			setupMock:      func(m *mocks.MockPlanService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  handler.ErrMsgInvalidRequestSummary,
		},
		{
			name:           "Empty Day Indices",
			requestBody:    handler.AssignRequest{RecipeID: "r1", DayIndices: []int{}},
			setupMock:      func(m *mocks.MockPlanService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  handler.ErrMsgInvalidRequestSummary,
		},
		{
			name:           "Index Out Of Range",
			requestBody:    handler.AssignRequest{RecipeID: "r1", DayIndices: []int{0, 7}},
			setupMock:      func(m *mocks.MockPlanService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  handler.ErrMsgInvalidRequestSummary,
		},
		{
			name:        "No Week Loaded",
			requestBody: handler.AssignRequest{RecipeID: "r1", DayIndices: []int{0}},
			setupMock: func(m *mocks.MockPlanService) {
				m.On("AssignToDayIndices", mock.Anything, "r1", []int{0}).
					Return(domain.ErrPlanNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  handler.ErrMsgWeekNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockPlanService(t)
			tt.setupMock(mockSvc)
			h := handler.NewPlanHandler(mockSvc)

			body, err := json.Marshal(tt.requestBody)
			if err != nil {
				t.Fatalf("Failed to marshal request body: %v", err)
			}
			req := httptest.NewRequest(http.MethodPost, "/api/v1/plan/assign", bytes.NewReader(body))
			w := httptest.NewRecorder()

			h.Assign(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, strings.ToLower(w.Body.String()), strings.ToLower(tt.expectedError))
			}
		})
	}
}

func TestPlanHandler_AssignDate(t *testing.T) {
	handler.InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := mocks.NewMockPlanService(t)
		mockSvc.On("AssignToDate", mock.Anything, "r1", "2024-03-06").Return(nil)
		h := handler.NewPlanHandler(mockSvc)

		body, _ := json.Marshal(handler.AssignDateRequest{RecipeID: "r1", Date: "2024-03-06"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/plan/assign-date", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.AssignDate(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Rejects malformed date before service call", func(t *testing.T) {
		mockSvc := mocks.NewMockPlanService(t)
		h := handler.NewPlanHandler(mockSvc)

		body, _ := json.Marshal(handler.AssignDateRequest{RecipeID: "r1", Date: "2024-3-6"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/plan/assign-date", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.AssignDate(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPlanHandler_ClearDay(t *testing.T) {
	handler.InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := mocks.NewMockPlanService(t)
		mockSvc.On("ClearDay", mock.Anything, 3).Return(nil)
		h := handler.NewPlanHandler(mockSvc)

		body, _ := json.Marshal(handler.ClearDayRequest{DayIndex: 3})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/plan/clear-day", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.ClearDay(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Index out of range", func(t *testing.T) {
		mockSvc := mocks.NewMockPlanService(t)
		h := handler.NewPlanHandler(mockSvc)

		body, _ := json.Marshal(handler.ClearDayRequest{DayIndex: 9})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/plan/clear-day", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.ClearDay(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPlanHandler_CopyWeek(t *testing.T) {
	handler.InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := mocks.NewMockPlanService(t)
		mockSvc.On("CopyWeek", mock.Anything,
			time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)).Return(nil)
		h := handler.NewPlanHandler(mockSvc)

		body, _ := json.Marshal(handler.CopyWeekRequest{
			SourceWeekStart: "2024-03-04",
			DestWeekStart:   "2024-03-11",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/plan/copy-week", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.CopyWeek(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Source week missing", func(t *testing.T) {
		mockSvc := mocks.NewMockPlanService(t)
		mockSvc.On("CopyWeek", mock.Anything, mock.Anything, mock.Anything).
			Return(domain.ErrPlanNotFound)
		h := handler.NewPlanHandler(mockSvc)

		body, _ := json.Marshal(handler.CopyWeekRequest{
			SourceWeekStart: "2024-03-04",
			DestWeekStart:   "2024-03-11",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/plan/copy-week", bytes.NewReader(body))
		w := httptest.NewRecorder()

		h.CopyWeek(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), handler.ErrMsgWeekNotFoundError)
	})
}

func TestPlanHandler_Move(t *testing.T) {
	handler.InitValidator()

	tests := []struct {
		name           string
		requestBody    handler.MoveRequest
		setupMock      func(*mocks.MockPlanService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "Index to index",
			requestBody: handler.MoveRequest{
				Source: handler.SlotPayload{DayIndex: intPtr(1)},
				Dest:   handler.SlotPayload{DayIndex: intPtr(4)},
			},
			setupMock: func(m *mocks.MockPlanService) {
				m.On("MoveAssignment", mock.Anything, domain.SlotAtIndex(1), domain.SlotAtIndex(4)).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Date to other week index",
			requestBody: handler.MoveRequest{
				Source: handler.SlotPayload{Date: "2024-03-06"},
				Dest:   handler.SlotPayload{WeekStart: "2024-03-11", DayIndex: intPtr(0)},
			},
			setupMock: func(m *mocks.MockPlanService) {
				m.On("MoveAssignment", mock.Anything,
					domain.SlotAtDate("2024-03-06"),
					domain.SlotAtWeekIndex("2024-03-11", 0)).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Slot addresses nothing",
			requestBody: handler.MoveRequest{
				Source: handler.SlotPayload{DayIndex: intPtr(1)},
				Dest:   handler.SlotPayload{WeekStart: "2024-03-11"},
			},
			setupMock:      func(m *mocks.MockPlanService) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "day_index",
		},
		{
			name: "Partial move surfaces as unavailable",
			requestBody: handler.MoveRequest{
				Source: handler.SlotPayload{Date: "2024-03-06"},
				Dest:   handler.SlotPayload{Date: "2024-03-13"},
			},
			setupMock: func(m *mocks.MockPlanService) {
				m.On("MoveAssignment", mock.Anything, mock.Anything, mock.Anything).
					Return(domain.ErrPartialMove)
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  handler.ErrMsgPartialMoveError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockPlanService(t)
			tt.setupMock(mockSvc)
			h := handler.NewPlanHandler(mockSvc)

			body, err := json.Marshal(tt.requestBody)
			if err != nil {
				t.Fatalf("Failed to marshal request body: %v", err)
			}
			req := httptest.NewRequest(http.MethodPost, "/api/v1/plan/move", bytes.NewReader(body))
			w := httptest.NewRecorder()

			h.Move(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, strings.ToLower(w.Body.String()), strings.ToLower(tt.expectedError))
			}
		})
	}
}

func TestPlanHandler_MonthProjection(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := mocks.NewMockPlanService(t)
		mockSvc.On("BuildMonthProjection", mock.Anything, 2024, time.March).
			Return(map[string]string{"2024-03-06": "r1"}, nil)
		h := handler.NewPlanHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/plan/month?year=2024&month=3", nil)
		w := httptest.NewRecorder()

		h.MonthProjection(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, map[string]string{"2024-03-06": "r1"}, got)
	})

	t.Run("Missing year", func(t *testing.T) {
		mockSvc := mocks.NewMockPlanService(t)
		h := handler.NewPlanHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/plan/month?month=3", nil)
		w := httptest.NewRecorder()

		h.MonthProjection(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Month out of range", func(t *testing.T) {
		mockSvc := mocks.NewMockPlanService(t)
		h := handler.NewPlanHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/plan/month?year=2024&month=13", nil)
		w := httptest.NewRecorder()

		h.MonthProjection(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
