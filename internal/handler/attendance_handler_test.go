package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "ultihub/internal/errors"
	"ultihub/internal/models"
	"ultihub/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAttendanceHandler_RecordAttendance(t *testing.T) {
	coachID := primitive.NewObjectID()
	programmeID := primitive.NewObjectID()
	playerID := primitive.NewObjectID()
	sessionDate := time.Date(2026, 4, 2, 17, 0, 0, 0, time.UTC)

	validBody := models.RecordAttendanceRequest{
		PlayerID:    playerID.Hex(),
		SessionDate: sessionDate,
		Status:      models.AttendancePresent,
	}

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockAttendanceService)
		expectedStatus int
	}{
		{
			name: "successful record",
			body: validBody,
			mockSetup: func(m *mocks.MockAttendanceService) {
				m.RecordAttendanceFunc = func(ctx context.Context, pID, rID primitive.ObjectID, req *models.RecordAttendanceRequest) (*models.AttendanceRecord, error) {
					return &models.AttendanceRecord{
						ProgrammeID: pID,
						PlayerID:    playerID,
						RecordedBy:  rID,
						SessionDate: req.SessionDate,
						Status:      req.Status,
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "already recorded for the session",
			body: validBody,
			mockSetup: func(m *mocks.MockAttendanceService) {
				m.RecordAttendanceFunc = func(ctx context.Context, pID, rID primitive.ObjectID, req *models.RecordAttendanceRequest) (*models.AttendanceRecord, error) {
					return nil, apperrors.ErrAttendanceAlreadyTaken
				}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "unknown player",
			body: validBody,
			mockSetup: func(m *mocks.MockAttendanceService) {
				m.RecordAttendanceFunc = func(ctx context.Context, pID, rID primitive.ObjectID, req *models.RecordAttendanceRequest) (*models.AttendanceRecord, error) {
					return nil, apperrors.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "unknown attendance status",
			body: map[string]interface{}{
				"playerId":    playerID.Hex(),
				"sessionDate": sessionDate,
				"status":      "excused",
			},
			mockSetup:      func(m *mocks.MockAttendanceService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockAttendanceService{}
			tt.mockSetup(mockService)

			handler := NewAttendanceHandler(mockService)

			router := gin.New()
			router.POST("/programmes/:programmeId/attendance", setUserID(coachID.Hex()), handler.RecordAttendance)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/programmes/"+programmeID.Hex()+"/attendance", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAttendanceHandler_Summary(t *testing.T) {
	programmeID := primitive.NewObjectID()
	playerID := primitive.NewObjectID()

	tests := []struct {
		name           string
		programmeID    string
		mockSetup      func(*mocks.MockAttendanceService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:        "summary returned",
			programmeID: programmeID.Hex(),
			mockSetup: func(m *mocks.MockAttendanceService) {
				m.SummaryFunc = func(ctx context.Context, pID primitive.ObjectID) (*models.AttendanceSummaryResponse, error) {
					return &models.AttendanceSummaryResponse{
						ProgrammeID: pID,
						Players: []models.AttendanceSummary{
							{PlayerID: playerID, Sessions: 12, Present: 10, Absent: 1, Late: 1},
						},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				data := resp["data"].(map[string]interface{})
				players := data["players"].([]interface{})
				assert.Len(t, players, 1)
				first := players[0].(map[string]interface{})
				assert.Equal(t, float64(10), first["present"])
			},
		},
		{
			name:        "unknown programme",
			programmeID: primitive.NewObjectID().Hex(),
			mockSetup: func(m *mocks.MockAttendanceService) {
				m.SummaryFunc = func(ctx context.Context, pID primitive.ObjectID) (*models.AttendanceSummaryResponse, error) {
					return nil, apperrors.ErrProgrammeNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockAttendanceService{}
			tt.mockSetup(mockService)

			handler := NewAttendanceHandler(mockService)

			router := gin.New()
			router.GET("/programmes/:programmeId/attendance-summary", handler.Summary)

			req := httptest.NewRequest(http.MethodGet, "/programmes/"+tt.programmeID+"/attendance-summary", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}
