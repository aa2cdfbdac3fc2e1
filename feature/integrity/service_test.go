package integrity

import (
	"context"
	"testing"

	"follow-checker/core/database"
	"follow-checker/core/resultcache"
	"follow-checker/core/storage"
	"follow-checker/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testStorage = storage.Config{Bucket: "test-bucket", ExportsPrefix: "exports", ResultsPrefix: "results"}

func setupSQLite(t *testing.T, migrate bool) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	if migrate {
		require.NoError(t, resultcache.NewGormStore(db).Migrate(context.Background()))
	}
	return db
}

func TestService_Structure(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, testStorage, zap.NewNop(), nil)

	t.Run("CheckStructure", func(t *testing.T) {
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		ch := make(chan minio.ObjectInfo)
		close(ch)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		missing, err := svc.CheckStructure(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []string{"exports", "results"}, missing)
	})

	t.Run("FixStructure", func(t *testing.T) {
		mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)
		err := svc.FixStructure(context.Background(), []string{"results"})
		assert.NoError(t, err)
	})
}

func TestService_RepairStructure(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, testStorage, zap.NewNop(), nil)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil).Once()
	mockClient.On("MakeBucket", mock.Anything, "test-bucket", mock.Anything).Return(nil)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	ch := make(chan minio.ObjectInfo)
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))
	mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

	fixed, err := svc.RepairStructure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"exports", "results"}, fixed)
	mockClient.AssertNumberOfCalls(t, "MakeBucket", 1)
	mockClient.AssertNumberOfCalls(t, "PutObject", 2)
}

func TestService_Unavailable(t *testing.T) {
	svc := NewService(nil, testStorage, nil, nil)

	_, err := svc.CheckStructure(context.Background())
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, svc.FixStructure(context.Background(), []string{"results"}), ErrStorageUnavailable)
	_, err = svc.RepairStructure(context.Background())
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	_, err = svc.CheckCache()
	assert.ErrorIs(t, err, ErrDatabaseUnavailable)
}

func TestService_Cache(t *testing.T) {
	svc := NewService(nil, testStorage, zap.NewNop(), setupSQLite(t, true))

	report, err := svc.CheckCache()
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Equal(t, resultcache.TableName, report.Table)
}
