package mesh

import (
	"bytes"
	"testing"

	"github.com/notargets/gorefine/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGMF_RoundTrip2D(t *testing.T) {
	orig := unitTriangle(t)

	var buf bytes.Buffer
	require.NoError(t, WriteGMF(&buf, orig))

	loaded, err := ReadGMF(&buf, partition.Local{})
	require.NoError(t, err)

	assert.Equal(t, orig.Dim, loaded.Dim)
	assert.Equal(t, orig.VertexCount(), loaded.VertexCount())
	assert.Equal(t, orig.ElementCount(), loaded.ElementCount())
	for i := 0; i < orig.VertexCount(); i++ {
		assert.InDeltaSlice(t, orig.coords[i], loaded.coords[i], 1e-9)
		assert.InDeltaSlice(t, orig.metric[i], loaded.metric[i], 1e-9)
	}
	assert.Equal(t, orig.Elements[0], loaded.Elements[0])
}
