package repo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studioboard/internal/domain"
)

func TestActivityBufferNewestFirst(t *testing.T) {
	b := NewActivityBuffer()
	b.Append(domain.Activity{Description: "first"})
	b.Append(domain.Activity{Description: "second"})
	b.Append(domain.Activity{Description: "third"})

	got := b.Recent(2)
	require.Len(t, got, 2)
	assert.Equal(t, "third", got[0].Description)
	assert.Equal(t, "second", got[1].Description)
}

func TestActivityBufferCap(t *testing.T) {
	b := NewActivityBuffer()
	for i := 0; i < ActivityBufferCap+20; i++ {
		b.Append(domain.Activity{Description: fmt.Sprintf("entry %d", i)})
	}

	assert.Equal(t, ActivityBufferCap, b.Len())

	// The oldest entries are gone; the newest survive.
	got := b.Recent(ActivityBufferCap)
	require.Len(t, got, ActivityBufferCap)
	assert.Equal(t, fmt.Sprintf("entry %d", ActivityBufferCap+19), got[0].Description)
	assert.Equal(t, "entry 20", got[len(got)-1].Description)
}

func TestActivityBufferAssignsKey(t *testing.T) {
	b := NewActivityBuffer()
	out := b.Append(domain.Activity{Description: "keyless"})
	assert.NotEmpty(t, out.ID)

	kept := b.Append(domain.Activity{ID: "fixed", Description: "keyed"})
	assert.Equal(t, "fixed", kept.ID)
}

func TestActivityBufferRecentBeyondLen(t *testing.T) {
	b := NewActivityBuffer()
	b.Append(domain.Activity{Description: "only"})

	got := b.Recent(10)
	require.Len(t, got, 1)
	assert.Equal(t, "only", got[0].Description)

	assert.Empty(t, NewActivityBuffer().Recent(5))
}
