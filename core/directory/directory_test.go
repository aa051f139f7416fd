package directory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_NormalizesIdentifier(t *testing.T) {
	dir := New()
	dir.Register(TrackedObject{ID: "abc123", Name: "Crate", Quantity: 7})

	obj, ok := dir.Lookup("ABC123")
	require.True(t, ok)
	assert.Equal(t, "ABC123", obj.ID)
	assert.Equal(t, "Crate", obj.Name)
	assert.Equal(t, 1, dir.Len())
}

func TestRegister_FirstWriteWins(t *testing.T) {
	dir := New()
	dir.Register(TrackedObject{ID: "abc123", Name: "first"})
	dir.Register(TrackedObject{ID: "ABC123", Name: "second"})
	dir.Register(TrackedObject{ID: "Abc123", Name: "third"})

	obj, ok := dir.Lookup("abc123")
	require.True(t, ok)
	assert.Equal(t, "first", obj.Name)
	assert.Equal(t, 1, dir.Len())
}

func TestLookup_CaseInsensitive(t *testing.T) {
	dir := New()
	dir.Register(TrackedObject{ID: "DEADBEEF", Name: "Box"})

	tests := []struct {
		name string
		id   string
	}{
		{"Upper", "DEADBEEF"},
		{"Lower", "deadbeef"},
		{"Mixed", "DeadBeef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj, ok := dir.Lookup(tt.id)
			assert.True(t, ok)
			assert.Equal(t, "Box", obj.Name)
		})
	}
}

func TestLookup_Absent(t *testing.T) {
	dir := New()

	obj, ok := dir.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, TrackedObject{}, obj)
}

func TestRegister_Concurrent(t *testing.T) {
	dir := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dir.Register(TrackedObject{ID: "feed", Name: "shared"})
			_, _ = dir.Lookup("FEED")
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, dir.Len())
}
