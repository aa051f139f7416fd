package catalog

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"ledger-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const catalogJSON = `[
	{"id": "abc123abc123abc123abc123", "name": "Pallet"},
	{"id": "ABC123ABC123ABC123ABC123", "name": "Duplicate"},
	{"id": "0123456789abcdef01234567", "name": "Drum"},
	{"id": 123456789012345678901234, "name": "Crate"},
	{"id": "", "name": "No identifier"},
	{"id": null, "name": "Null identifier"},
	{"id": "ffffffffffffffffffffffff", "name": "  "}
]`

func catalogBody(payload string) io.ReadCloser {
	return io.NopCloser(bytes.NewReader([]byte(payload)))
}

func TestStorageSource_Lookup(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "catalog", "catalog/objects.json", mock.Anything).
		Return(catalogBody(catalogJSON), nil).Once()

	src := NewStorageSource(mockClient, "catalog", "catalog/objects.json", time.Minute)
	ctx := context.Background()

	name, found, err := src.Lookup(ctx, "ABC123abc123ABC123abc123")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Pallet", name, "first entry for a normalized identifier wins")

	name, found, err = src.Lookup(ctx, "0123456789ABCDEF01234567")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Drum", name)

	name, found, err = src.Lookup(ctx, "123456789012345678901234")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Crate", name, "numeric identifiers keep every digit")

	_, found, err = src.Lookup(ctx, "ffffffffffffffffffffffff")
	require.NoError(t, err)
	assert.False(t, found)

	// Index is cached: GetObject was only expected once
	mockClient.AssertNumberOfCalls(t, "GetObject", 1)
}

func TestStorageSource_ZeroTTLReloads(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "catalog", "objects.json", mock.Anything).
		Return(catalogBody(catalogJSON), nil).Once()
	mockClient.On("GetObject", mock.Anything, "catalog", "objects.json", mock.Anything).
		Return(catalogBody(`[]`), nil).Once()

	src := NewStorageSource(mockClient, "catalog", "objects.json", 0)
	ctx := context.Background()

	_, found, err := src.Lookup(ctx, "0123456789abcdef01234567")
	require.NoError(t, err)
	assert.True(t, found)

	_, found, err = src.Lookup(ctx, "0123456789abcdef01234567")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStorageSource_Invalidate(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "catalog", "objects.json", mock.Anything).
		Return(catalogBody(`[]`), nil).Once()
	mockClient.On("GetObject", mock.Anything, "catalog", "objects.json", mock.Anything).
		Return(catalogBody(catalogJSON), nil).Once()

	src := NewStorageSource(mockClient, "catalog", "objects.json", time.Hour)
	ctx := context.Background()

	_, found, _ := src.Lookup(ctx, "0123456789abcdef01234567")
	assert.False(t, found)

	src.Invalidate()

	name, found, err := src.Lookup(ctx, "0123456789abcdef01234567")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Drum", name)
}

func TestStorageSource_Errors(t *testing.T) {
	t.Run("GetObject fails", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "catalog", "objects.json", mock.Anything).
			Return(nil, assert.AnError)

		src := NewStorageSource(mockClient, "catalog", "objects.json", time.Minute)
		_, found, err := src.Lookup(context.Background(), "abc")
		assert.ErrorIs(t, err, assert.AnError)
		assert.False(t, found)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("GetObject", mock.Anything, "catalog", "objects.json", mock.Anything).
			Return(catalogBody(`{"not": "an array"`), nil)

		src := NewStorageSource(mockClient, "catalog", "objects.json", time.Minute)
		_, _, err := src.Lookup(context.Background(), "abc")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "decode")
	})
}

func TestStorageSource_ConcurrentLookupsShareIndex(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "catalog", "objects.json", mock.Anything).
		Return(catalogBody(catalogJSON), nil).Once()

	src := NewStorageSource(mockClient, "catalog", "objects.json", time.Minute)

	// Prime the cache so every goroutine hits the fast path
	_, _, err := src.Lookup(context.Background(), "abc")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name, found, err := src.Lookup(context.Background(), "0123456789abcdef01234567")
			assert.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "Drum", name)
		}()
	}
	wg.Wait()

	mockClient.AssertNumberOfCalls(t, "GetObject", 1)
}

func TestStorageSource_Check(t *testing.T) {
	tests := []struct {
		name      string
		exists    bool
		existsErr error
		statErr   error
		expectErr string
	}{
		{name: "Healthy", exists: true},
		{name: "Bucket check fails", existsErr: assert.AnError, expectErr: "failed to check bucket"},
		{name: "Bucket missing", exists: false, expectErr: "does not exist"},
		{name: "Object missing", exists: true, statErr: assert.AnError, expectErr: "not readable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := new(mocks.Client)
			mockClient.On("BucketExists", mock.Anything, "catalog").Return(tt.exists, tt.existsErr)
			mockClient.On("StatObject", mock.Anything, "catalog", "objects.json", mock.Anything).
				Return(minio.ObjectInfo{Key: "objects.json"}, tt.statErr)

			src := NewStorageSource(mockClient, "catalog", "objects.json", time.Minute)
			err := src.Check(context.Background())
			if tt.expectErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectErr)
		})
	}
}
