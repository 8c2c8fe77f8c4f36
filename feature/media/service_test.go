package media

import (
	"context"
	"io"
	"strings"
	"testing"

	"menu-builder/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEnsureBucket(t *testing.T) {
	t.Run("Existing bucket is left alone", func(t *testing.T) {
		client := &mocks.Client{}
		client.On("BucketExists", mock.Anything, "menu-media").Return(true, nil)

		svc := NewService(client, "menu-media", nil)
		require.NoError(t, svc.EnsureBucket(context.Background()))
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing bucket is created", func(t *testing.T) {
		client := &mocks.Client{}
		client.On("BucketExists", mock.Anything, "menu-media").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "menu-media", mock.Anything).Return(nil)

		svc := NewService(client, "menu-media", nil)
		require.NoError(t, svc.EnsureBucket(context.Background()))
		client.AssertExpectations(t)
	})
}

func TestUpload(t *testing.T) {
	client := &mocks.Client{}
	client.On("PutObject", mock.Anything, "menu-media",
		mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "logos/") && strings.HasSuffix(key, ".png")
		}),
		mock.Anything, int64(4), mock.Anything).
		Return(minio.UploadInfo{Size: 4}, nil)

	svc := NewService(client, "menu-media", nil)
	obj, err := svc.Upload(context.Background(), KindLogo, "image/png", 4, strings.NewReader("data"))
	require.NoError(t, err)
	assert.Equal(t, "image/png", obj.ContentType)
	assert.Equal(t, int64(4), obj.Size)
	client.AssertExpectations(t)
}

func TestUpload_Rejections(t *testing.T) {
	svc := NewService(&mocks.Client{}, "menu-media", nil)
	ctx := context.Background()

	_, err := svc.Upload(ctx, "avatars", "image/png", 4, strings.NewReader("data"))
	assert.ErrorContains(t, err, "unknown media kind")

	_, err = svc.Upload(ctx, KindDish, "application/pdf", 4, strings.NewReader("data"))
	assert.ErrorContains(t, err, "unsupported content type")

	_, err = svc.Upload(ctx, KindDish, "image/png", MaxUploadBytes+1, strings.NewReader("data"))
	assert.ErrorContains(t, err, "out of range")
}

func TestGet(t *testing.T) {
	client := &mocks.Client{}
	client.On("StatObject", mock.Anything, "menu-media", "dishes/abc.jpg", mock.Anything).
		Return(minio.ObjectInfo{ContentType: "image/jpeg", Size: 3}, nil)
	client.On("GetObject", mock.Anything, "menu-media", "dishes/abc.jpg", mock.Anything).
		Return(io.NopCloser(strings.NewReader("jpg")), nil)

	svc := NewService(client, "menu-media", nil)
	reader, obj, err := svc.Get(context.Background(), "dishes/abc.jpg")
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, "image/jpeg", obj.ContentType)
	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "jpg", string(content))
}

func TestDelete(t *testing.T) {
	client := &mocks.Client{}
	client.On("RemoveObject", mock.Anything, "menu-media", "logos/abc.png", mock.Anything).Return(nil)

	svc := NewService(client, "menu-media", nil)
	require.NoError(t, svc.Delete(context.Background(), "logos/abc.png"))
	client.AssertExpectations(t)
}

func TestKeyValidation(t *testing.T) {
	svc := NewService(&mocks.Client{}, "menu-media", nil)
	ctx := context.Background()

	for _, key := range []string{
		"logos/../secrets.txt",
		"etc/passwd",
		"logos//x.png",
		"avatars/abc.png",
	} {
		t.Run(key, func(t *testing.T) {
			err := svc.Delete(ctx, key)
			assert.ErrorContains(t, err, "invalid media key")
		})
	}
}
