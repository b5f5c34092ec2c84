// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForBackend(t *testing.T) {
	tests := []struct {
		name     string
		backend  string
		wantName string
		wantCaps Capabilities
	}{
		{name: "default", backend: "", wantName: "tabula", wantCaps: Capabilities{Tables: true, Images: true}},
		{name: "tabula", backend: "tabula", wantName: "tabula", wantCaps: Capabilities{Tables: true, Images: true}},
		{name: "plaintext", backend: "plaintext", wantName: "plaintext", wantCaps: Capabilities{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opener, err := ForBackend(tt.backend)
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, opener.Name())
			assert.Equal(t, tt.wantCaps, opener.Capabilities())
		})
	}
}

func TestForBackend_Unknown(t *testing.T) {
	opener, err := ForBackend("mupdf")
	assert.Nil(t, opener)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mupdf")
}

func TestOpen_MissingFile(t *testing.T) {
	for _, backend := range []string{"tabula", "plaintext"} {
		t.Run(backend, func(t *testing.T) {
			opener, err := ForBackend(backend)
			require.NoError(t, err)

			doc, err := opener.Open("does-not-exist.pdf")
			assert.Nil(t, doc)
			require.Error(t, err)
		})
	}
}
