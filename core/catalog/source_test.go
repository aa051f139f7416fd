package catalog

import (
	"testing"

	"ledger-manager/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	db, _ := setupMockDB(t)
	client := new(mocks.Client)

	t.Run("Disabled", func(t *testing.T) {
		src, err := New(Config{Source: SourceNone}, db, client, "catalog")
		assert.NoError(t, err)
		assert.Nil(t, src)
	})

	t.Run("Database", func(t *testing.T) {
		src, err := New(testConfig(), db, nil, "")
		require.NoError(t, err)
		assert.Equal(t, SourceDatabase, src.Name())
	})

	t.Run("Database without connection", func(t *testing.T) {
		_, err := New(testConfig(), nil, nil, "")
		assert.ErrorIs(t, err, ErrSourceUnavailable)
	})

	t.Run("Storage", func(t *testing.T) {
		src, err := New(Config{Source: SourceStorage, Object: "objects.json", CacheTTLSeconds: 60}, nil, client, "catalog")
		require.NoError(t, err)
		assert.Equal(t, SourceStorage, src.Name())
	})

	t.Run("Storage without client", func(t *testing.T) {
		_, err := New(Config{Source: SourceStorage}, nil, nil, "catalog")
		assert.ErrorIs(t, err, ErrSourceUnavailable)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := New(Config{Source: "ftp"}, nil, nil, "")
		assert.Error(t, err)
	})
}

func TestConfig_IsValidSource(t *testing.T) {
	tests := []struct {
		source string
		want   bool
	}{
		{SourceNone, true},
		{SourceDatabase, true},
		{SourceStorage, true},
		{"", true},
		{"redis", false},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{Source: tt.source}.IsValidSource())
		})
	}
}
