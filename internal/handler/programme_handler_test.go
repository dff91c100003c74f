package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "ultihub/internal/errors"
	"ultihub/internal/models"
	"ultihub/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProgrammeHandler_CreateProgramme(t *testing.T) {
	directorID := primitive.NewObjectID()
	programmeID := primitive.NewObjectID()

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockProgrammeService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "successful creation",
			body: models.CreateProgrammeRequest{Name: "Spring Juniors 2026", Season: "2026-spring"},
			mockSetup: func(m *mocks.MockProgrammeService) {
				m.CreateProgrammeFunc = func(ctx context.Context, dID primitive.ObjectID, req *models.CreateProgrammeRequest) (*models.Programme, error) {
					return &models.Programme{
						ID:         programmeID,
						Name:       req.Name,
						Slug:       "spring-juniors-2026",
						Season:     req.Season,
						DirectorID: dID,
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				data := resp["data"].(map[string]interface{})
				assert.Equal(t, "spring-juniors-2026", data["slug"])
				assert.Equal(t, directorID.Hex(), data["directorId"])
			},
		},
		{
			name: "duplicate slug",
			body: models.CreateProgrammeRequest{Name: "Spring Juniors 2026", Season: "2026-spring"},
			mockSetup: func(m *mocks.MockProgrammeService) {
				m.CreateProgrammeFunc = func(ctx context.Context, dID primitive.ObjectID, req *models.CreateProgrammeRequest) (*models.Programme, error) {
					return nil, apperrors.ErrProgrammeSlugTaken
				}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "missing season",
			body:           map[string]string{"name": "Spring Juniors 2026"},
			mockSetup:      func(m *mocks.MockProgrammeService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockProgrammeService{}
			tt.mockSetup(mockService)

			handler := NewProgrammeHandler(mockService)

			router := gin.New()
			router.POST("/programmes", setUserID(directorID.Hex()), handler.CreateProgramme)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/programmes", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestProgrammeHandler_UpdateProgramme(t *testing.T) {
	programmeID := primitive.NewObjectID()
	newName := "Summer Juniors 2026"

	tests := []struct {
		name           string
		programmeID    string
		mockSetup      func(*mocks.MockProgrammeService)
		expectedStatus int
	}{
		{
			name:        "rename keeps slug",
			programmeID: programmeID.Hex(),
			mockSetup: func(m *mocks.MockProgrammeService) {
				m.UpdateProgrammeFunc = func(ctx context.Context, id primitive.ObjectID, req *models.UpdateProgrammeRequest) (*models.Programme, error) {
					return &models.Programme{ID: id, Name: *req.Name, Slug: "spring-juniors-2026"}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "unknown programme",
			programmeID: primitive.NewObjectID().Hex(),
			mockSetup: func(m *mocks.MockProgrammeService) {
				m.UpdateProgrammeFunc = func(ctx context.Context, id primitive.ObjectID, req *models.UpdateProgrammeRequest) (*models.Programme, error) {
					return nil, apperrors.ErrProgrammeNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid id",
			programmeID:    "not-an-id",
			mockSetup:      func(m *mocks.MockProgrammeService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockProgrammeService{}
			tt.mockSetup(mockService)

			handler := NewProgrammeHandler(mockService)

			router := gin.New()
			router.PUT("/programmes/:programmeId", handler.UpdateProgramme)

			body, _ := json.Marshal(models.UpdateProgrammeRequest{Name: &newName})
			req := httptest.NewRequest(http.MethodPut, "/programmes/"+tt.programmeID, bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
