package checkin

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/libin99527/newapi-checkin/internal/dto"
	checkinservice "github.com/libin99527/newapi-checkin/internal/service/checkinservice"
	"github.com/libin99527/newapi-checkin/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*CheckinHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestCheckInHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedBody  *dto.CheckinResponseDTO
		expectedError string
	}{
		{
			name: "Successful check-in",
			body: `{"caller_id":"qq:1001"}`,
			prepareMock: func() {
				service.EXPECT().
					CheckIn(gomock.Any(), "qq:1001", gomock.Any()).
					Return(&checkinservice.CheckinResult{Account: "alice", Amount: 500000}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.CheckinResponseDTO{Account: "alice", Amount: 500000},
		},
		{
			name: "Caller not bound",
			body: `{"caller_id":"qq:9999"}`,
			prepareMock: func() {
				service.EXPECT().
					CheckIn(gomock.Any(), "qq:9999", gomock.Any()).
					Return(nil, checkinservice.ErrNotBound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "caller has no bound account",
		},
		{
			name: "Second check-in same day",
			body: `{"caller_id":"qq:1001"}`,
			prepareMock: func() {
				service.EXPECT().
					CheckIn(gomock.Any(), "qq:1001", gomock.Any()).
					Return(nil, checkinservice.ErrAlreadyCheckedIn)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "already checked in today",
		},
		{
			name: "Ledger unreachable",
			body: `{"caller_id":"qq:1001"}`,
			prepareMock: func() {
				service.EXPECT().
					CheckIn(gomock.Any(), "qq:1001", gomock.Any()).
					Return(nil, checkinservice.ErrRemoteUnavailable)
			},
			expectedCode:  http.StatusBadGateway,
			expectedError: "ledger unavailable, try again later",
		},
		{
			name: "Unexpected service error",
			body: `{"caller_id":"qq:1001"}`,
			prepareMock: func() {
				service.EXPECT().
					CheckIn(gomock.Any(), "qq:1001", gomock.Any()).
					Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing caller_id",
			body:          `{}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "caller_id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/checkin", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.CheckIn(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedBody != nil {
				var resp dto.CheckinResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, *tt.expectedBody, resp)
			}
			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}
