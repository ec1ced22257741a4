package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/url"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	bucketExists    bool
	bucketCheckErr  error
	makeBucketErr   error
	madeBucket      bool
	objects         map[string][]byte
	getErr          error
	statErr         error
	presignErr      error
	presignedExpiry time.Duration
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{bucketExists: true, objects: map[string][]byte{}}
}

func (f *fakeAPI) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return f.bucketExists, f.bucketCheckErr
}

func (f *fakeAPI) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	f.madeBucket = f.makeBucketErr == nil
	return f.makeBucketErr
}

func (f *fakeAPI) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.objects[objectName]
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeAPI) StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	if f.statErr != nil {
		return minio.ObjectInfo{}, f.statErr
	}
	if _, ok := f.objects[objectName]; !ok {
		return minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"}
	}
	return minio.ObjectInfo{Key: objectName}, nil
}

func (f *fakeAPI) PresignedGetObject(ctx context.Context, bucketName, objectName string, expiry time.Duration, reqParams url.Values) (*url.URL, error) {
	if f.presignErr != nil {
		return nil, f.presignErr
	}
	f.presignedExpiry = expiry
	return url.Parse("https://minio.local/" + bucketName + "/" + objectName + "?signed=1")
}

func TestNewClientWithAPI_CreatesBucket(t *testing.T) {
	api := newFakeAPI()
	api.bucketExists = false

	_, err := NewClientWithAPI(context.Background(), api, "documents")
	require.NoError(t, err)
	assert.True(t, api.madeBucket)
}

func TestNewClientWithAPI_BucketCheckError(t *testing.T) {
	api := newFakeAPI()
	api.bucketCheckErr = errors.New("connection refused")

	_, err := NewClientWithAPI(context.Background(), api, "documents")
	require.Error(t, err)
}

func TestClient_Download(t *testing.T) {
	api := newFakeAPI()
	api.objects["docs/informe.pdf"] = []byte("pdf content")

	client, err := NewClientWithAPI(context.Background(), api, "documents")
	require.NoError(t, err)

	rc, err := client.Download(context.Background(), "docs/informe.pdf")
	require.NoError(t, err)
	t.Cleanup(func() { _ = rc.Close() })

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf content"), data)
}

func TestClient_Exists(t *testing.T) {
	api := newFakeAPI()
	api.objects["docs/informe.pdf"] = []byte("pdf content")

	client, err := NewClientWithAPI(context.Background(), api, "documents")
	require.NoError(t, err)

	exists, err := client.Exists(context.Background(), "docs/informe.pdf")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = client.Exists(context.Background(), "docs/missing.pdf")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestClient_Exists_Error(t *testing.T) {
	api := newFakeAPI()
	api.statErr = errors.New("connection refused")

	client, err := NewClientWithAPI(context.Background(), api, "documents")
	require.NoError(t, err)

	_, err = client.Exists(context.Background(), "docs/informe.pdf")
	require.Error(t, err)
}

func TestClient_PresignedURL(t *testing.T) {
	api := newFakeAPI()
	api.objects["docs/informe.pdf"] = []byte("pdf content")

	client, err := NewClientWithAPI(context.Background(), api, "documents")
	require.NoError(t, err)

	u, err := client.PresignedURL(context.Background(), "docs/informe.pdf", 15*time.Minute)
	require.NoError(t, err)
	assert.Contains(t, u, "docs/informe.pdf")
	assert.Equal(t, 15*time.Minute, api.presignedExpiry)
}
