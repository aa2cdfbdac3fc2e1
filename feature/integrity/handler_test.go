package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"follow-checker/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T, db *gorm.DB) (*fiber.App, *mocks.Client) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, testStorage, zap.NewNop(), db)
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, mockClient
}

func emptyListing(mockClient *mocks.Client) {
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	ch := make(chan minio.ObjectInfo)
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))
}

func TestHandleStructureCheck(t *testing.T) {
	app, mockClient := setupTestApp(t, nil)
	emptyListing(mockClient)

	req := httptest.NewRequest("GET", "/integrity/structure", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "checked", body["status"])
	assert.NotEmpty(t, body["missing"])
}

func TestHandleStructureCheck_Fix(t *testing.T) {
	app, mockClient := setupTestApp(t, nil)
	emptyListing(mockClient)
	mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

	req := httptest.NewRequest("GET", "/integrity/structure?fix=true", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "fixed", body["status"])
	mockClient.AssertNumberOfCalls(t, "PutObject", 2)
}

func TestHandleStructureCheck_BucketMissing(t *testing.T) {
	app, mockClient := setupTestApp(t, nil)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/structure", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleCacheCheck(t *testing.T) {
	app, _ := setupTestApp(t, setupSQLite(t, true))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/cache", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, true, body["matched"])
}

func TestHandleCacheCheck_NoDatabase(t *testing.T) {
	app, _ := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/cache", nil))
	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, mockClient := setupTestApp(t, nil)
	emptyListing(mockClient)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]map[string]any
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "ok", body["structure"]["status"])
	assert.Equal(t, "unavailable", body["cache"]["status"])
}
