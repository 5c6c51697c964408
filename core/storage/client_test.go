package storage_test

import (
	"context"
	"errors"
	"testing"

	"inventory-seeder/core/storage"
	"inventory-seeder/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Bucket:    "test-bucket",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestUpload(t *testing.T) {
	ctx := context.Background()
	data := []byte(`{"ok":true}`)

	t.Run("ExistingBucket", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "reports").Return(true, nil)
		m.On("PutObject", ctx, "reports", "r/1.json", mock.Anything, int64(len(data)), minio.PutObjectOptions{ContentType: "application/json"}).
			Return(minio.UploadInfo{}, nil)

		err := storage.Upload(ctx, m, "reports", "r/1.json", "application/json", data)
		assert.NoError(t, err)
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
		m.AssertExpectations(t)
	})

	t.Run("CreatesMissingBucket", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "reports").Return(false, nil)
		m.On("MakeBucket", ctx, "reports", minio.MakeBucketOptions{}).Return(nil)
		m.On("PutObject", ctx, "reports", "r/1.json", mock.Anything, int64(len(data)), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		assert.NoError(t, storage.Upload(ctx, m, "reports", "r/1.json", "application/json", data))
		m.AssertExpectations(t)
	})

	t.Run("BucketCheckFails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "reports").Return(false, errors.New("unreachable"))

		err := storage.Upload(ctx, m, "reports", "r/1.json", "application/json", data)
		assert.ErrorContains(t, err, "unreachable")
	})

	t.Run("PutFails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "reports").Return(true, nil)
		m.On("PutObject", ctx, "reports", "r/1.json", mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("denied"))

		err := storage.Upload(ctx, m, "reports", "r/1.json", "application/json", data)
		assert.ErrorContains(t, err, "failed to upload reports/r/1.json")
	})
}
