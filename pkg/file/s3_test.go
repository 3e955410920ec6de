package file_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/censussample/pkg/file"
)

// MockS3Client is a mock implementation of the S3Client interface
type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params, optFns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

func newS3(t *testing.T, client *MockS3Client) *file.S3Storage {
	t.Helper()
	store, err := file.NewS3Storage(context.Background(), file.S3Config{Bucket: "census-sample", Region: "eu-west-2"},
		file.WithS3Client(client))
	require.NoError(t, err)
	return store
}

func TestNewS3Storage(t *testing.T) {
	t.Parallel()

	_, err := file.NewS3Storage(context.Background(), file.S3Config{Region: "eu-west-2"})
	assert.ErrorIs(t, err, file.ErrInvalidConfig)

	_, err = file.NewS3Storage(context.Background(), file.S3Config{Bucket: "b"})
	assert.ErrorIs(t, err, file.ErrInvalidConfig)

	store := newS3(t, &MockS3Client{})
	assert.Equal(t, "census-sample", store.Bucket())
}

func TestS3Storage_Download(t *testing.T) {
	t.Parallel()

	t.Run("streams object body", func(t *testing.T) {
		client := &MockS3Client{}
		client.On("GetObject", mock.Anything, mock.MatchedBy(func(in *s3.GetObjectInput) bool {
			return *in.Bucket == "census-sample" && *in.Key == "2021/sample.csv"
		}), mock.Anything).Return(&s3.GetObjectOutput{
			Body: io.NopCloser(strings.NewReader("ARID,UPRN\nA1,1\n")),
		}, nil).Once()

		buf := &bytes.Buffer{}
		n, err := newS3(t, client).Download(context.Background(), "/2021/sample.csv", buf)
		require.NoError(t, err)
		assert.Equal(t, int64(15), n)
		assert.Equal(t, "ARID,UPRN\nA1,1\n", buf.String())
		client.AssertExpectations(t)
	})

	t.Run("rejects traversal", func(t *testing.T) {
		client := &MockS3Client{}
		_, err := newS3(t, client).Download(context.Background(), "../secret.csv", io.Discard)
		assert.ErrorIs(t, err, file.ErrInvalidPath)
		client.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything)
	})

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no such key", &types.NoSuchKey{}, file.ErrFileNotFound},
		{"no such bucket", &types.NoSuchBucket{}, file.ErrBucketNotFound},
		{"access denied", &smithy.GenericAPIError{Code: "AccessDenied"}, file.ErrAccessDenied},
		{"slow down", &smithy.GenericAPIError{Code: "SlowDown"}, file.ErrServiceUnavailable},
		{"timeout", context.DeadlineExceeded, file.ErrOperationTimeout},
		{"canceled", context.Canceled, file.ErrOperationCanceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &MockS3Client{}
			client.On("GetObject", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			_, err := newS3(t, client).Download(context.Background(), "sample.csv", io.Discard)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("unknown error keeps cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		client := &MockS3Client{}
		client.On("GetObject", mock.Anything, mock.Anything, mock.Anything).Return(nil, cause).Once()

		_, err := newS3(t, client).Download(context.Background(), "sample.csv", io.Discard)
		assert.ErrorIs(t, err, cause)
	})
}
