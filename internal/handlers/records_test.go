package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/dimitrije/kisan-api/internal/models"
	"github.com/dimitrije/kisan-api/internal/services"
	"github.com/dimitrije/kisan-api/pkg/dto"
	"github.com/dimitrije/kisan-api/tests/testutil"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCropService = testutil.MockRecordService[*models.Crop, dto.CreateCropRequest, dto.UpdateCropRequest]

var errCropNotFound = fmt.Errorf("crop %w", services.ErrNotFound)

func setupCropTest(t *testing.T) (*mockCropService, *testutil.HTTPTestClient) {
	t.Helper()
	svc := &mockCropService{
		KindName:   "crop",
		TitleName:  "Crop",
		ParamNames: []string{"season", "soil_type", "region", "search"},
	}
	handler := NewRecordHandler[*models.Crop, dto.CreateCropRequest, dto.UpdateCropRequest](svc, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Get("/crops", handler.List)
	app.Post("/crops", handler.Create)
	app.Get("/crops/:id", handler.Get)
	app.Patch("/crops/:id", handler.Update)
	app.Delete("/crops/:id", handler.Delete)

	return svc, testutil.NewHTTPTestClient(t, app)
}

func TestRecordHandler_List_PassesKnownParams(t *testing.T) {
	svc, client := setupCropTest(t)

	crops := []*models.Crop{testutil.Crop("crop_1")}
	svc.On("List", mock.Anything, map[string]string{"season": "rabi", "region": "all"}).Return(crops, nil)

	rec := client.GET("/crops?season=rabi&region=all&color=red&soil_type=", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response []models.Crop
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "crop_1", response[0].ID)
	assert.Equal(t, "Wheat", response[0].Crop.English)

	svc.AssertExpectations(t)
}

func TestRecordHandler_List_Empty(t *testing.T) {
	svc, client := setupCropTest(t)

	svc.On("List", mock.Anything, map[string]string{}).Return([]*models.Crop{}, nil)

	rec := client.GET("/crops", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestRecordHandler_List_InvalidFilter(t *testing.T) {
	svc, client := setupCropTest(t)

	svc.On("List", mock.Anything, map[string]string{"season": "x"}).
		Return(nil, fmt.Errorf("%w: date must be formatted as 2006-01-02", services.ErrInvalidFilter))

	rec := client.GET("/crops?season=x", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "date must be formatted as 2006-01-02")
}

func TestRecordHandler_List_StorageFault(t *testing.T) {
	svc, client := setupCropTest(t)

	svc.On("List", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: connection refused", services.ErrStorage))

	rec := client.GET("/crops", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to list crop")
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestRecordHandler_Get_Success(t *testing.T) {
	svc, client := setupCropTest(t)

	svc.On("Get", mock.Anything, "crop_1").Return(testutil.Crop("crop_1"), nil)

	rec := client.GET("/crops/crop_1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response models.Crop
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "crop_1", response.ID)
	assert.Equal(t, "Rabi", response.Season.English)
}

func TestRecordHandler_Get_NotFound(t *testing.T) {
	svc, client := setupCropTest(t)

	svc.On("Get", mock.Anything, "missing").Return(nil, errCropNotFound)

	rec := client.GET("/crops/missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Crop not found")
}

func TestRecordHandler_Create_Success(t *testing.T) {
	svc, client := setupCropTest(t)

	req := testutil.CropRequest()
	svc.On("Create", mock.Anything, req).Return(testutil.Crop("new-id"), nil)

	rec := client.POST("/crops", req, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var response models.Crop
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "new-id", response.ID)

	svc.AssertExpectations(t)
}

func TestRecordHandler_Create_ValidationFailure(t *testing.T) {
	svc, client := setupCropTest(t)

	req := testutil.CropRequest()
	req.Season = dto.BilingualInput{Hindi: testutil.Ptr("रबी")}

	rec := client.POST("/crops", req, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "season.english is required")
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecordHandler_Create_InvalidBody(t *testing.T) {
	svc, client := setupCropTest(t)

	rec := client.POST("/crops", "{not json", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid request body")
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecordHandler_Update_Success(t *testing.T) {
	svc, client := setupCropTest(t)

	updated := testutil.Crop("crop_1")
	updated.Region = "Punjab"
	svc.On("Update", mock.Anything, "crop_1", dto.UpdateCropRequest{Region: testutil.Ptr("Punjab")}).Return(updated, nil)

	rec := client.PATCH("/crops/crop_1", map[string]string{"region": "Punjab"}, nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response models.Crop
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Punjab", response.Region)
	assert.Equal(t, "Wheat", response.Crop.English)

	svc.AssertExpectations(t)
}

func TestRecordHandler_Update_NotFound(t *testing.T) {
	svc, client := setupCropTest(t)

	svc.On("Update", mock.Anything, "missing", mock.Anything).Return(nil, errCropNotFound)

	rec := client.PATCH("/crops/missing", map[string]string{"region": "Punjab"}, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Crop not found")
}

func TestRecordHandler_Update_ValidationFailure(t *testing.T) {
	svc, client := setupCropTest(t)

	rec := client.PATCH("/crops/crop_1", map[string]any{"season": map[string]string{"hindi": "रबी"}}, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "season.english is required")
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordHandler_Delete_Success(t *testing.T) {
	svc, client := setupCropTest(t)

	svc.On("Delete", mock.Anything, "crop_1").Return(nil)

	rec := client.DELETE("/crops/crop_1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Crop deleted successfully", response.Message)
}

func TestRecordHandler_Delete_NotFound(t *testing.T) {
	svc, client := setupCropTest(t)

	svc.On("Delete", mock.Anything, "missing").Return(errCropNotFound)

	rec := client.DELETE("/crops/missing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Crop not found")
}

func TestRecordHandler_Delete_StorageFault(t *testing.T) {
	svc, client := setupCropTest(t)

	svc.On("Delete", mock.Anything, "crop_1").Return(errors.Join(services.ErrStorage, errors.New("disk full")))

	rec := client.DELETE("/crops/crop_1", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to delete crop")
}
