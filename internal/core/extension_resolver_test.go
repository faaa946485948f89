package core

import (
	"bytes"
	"context"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"galogen/internal/types"
)

func loggingContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	return logger.WithContext(t.Context()), &buf
}

func TestExtensionResolverAppliesSupportedRequest(t *testing.T) {
	ctx, logs := loggingContext(t)
	registry := sampleRegistry()
	store := loadStore(t, registry, "gl")
	selection := NewSelection()
	requested := NewRequestedExtensions("GL_EXT_vendor")

	report, err := NewExtensionResolver(NewOperationApplier(store, types.ProfileCore)).
		Resolve(ctx, registry.Extensions, requested, selection)
	require.NoError(t, err)

	if diff := cmp.Diff([]string{"GL_EXT_vendor"}, report.Applied); diff != "" {
		t.Fatalf("unexpected applied extensions (-want +got):\n%s", diff)
	}
	assert.Empty(t, report.Unsupported)
	assert.Empty(t, requested.Pending())
	assert.True(t, selection.Has(types.EntityKindEnum, "GL_VENDOR"))
	assert.NotContains(t, logs.String(), `"level":"warn"`)
}

func TestExtensionResolverUnsupportedRequestWarnsThenFails(t *testing.T) {
	ctx, logs := loggingContext(t)
	registry := sampleRegistry()
	store := loadStore(t, registry, "gl")
	selection := NewSelection()
	requested := NewRequestedExtensions("GL_OES_texture")

	report, err := NewExtensionResolver(NewOperationApplier(store, types.ProfileCore)).
		Resolve(ctx, registry.Extensions, requested, selection)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	assert.Contains(t, errorMessage(err), "GL_OES_texture")

	if diff := cmp.Diff([]string{"GL_OES_texture"}, report.Unsupported); diff != "" {
		t.Fatalf("unexpected unsupported extensions (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"GL_OES_texture"}, requested.Pending())
	assert.False(t, selection.Has(types.EntityKindEnum, "GL_TEXTURE_2D"))
	assert.Contains(t, logs.String(), `"level":"warn"`)
	assert.Contains(t, logs.String(), "GL_OES_texture")
}

func TestExtensionResolverListsEveryUnknownRequest(t *testing.T) {
	registry := sampleRegistry()
	store := loadStore(t, registry, "gl")
	requested := NewRequestedExtensions("GL_EXT_vendor", "GL_ARB_zzz", "GL_ARB_aaa")

	_, err := NewExtensionResolver(NewOperationApplier(store, types.ProfileCore)).
		Resolve(t.Context(), registry.Extensions, requested, NewSelection())
	require.Error(t, err)
	assert.Equal(t, "invalid extensions specified: GL_ARB_aaa, GL_ARB_zzz", errorMessage(err))
}

func TestExtensionResolverIgnoresUnrequested(t *testing.T) {
	registry := sampleRegistry()
	store := loadStore(t, registry, "gles2")
	selection := NewSelection()

	report, err := NewExtensionResolver(NewOperationApplier(store, types.ProfileCore)).
		Resolve(t.Context(), registry.Extensions, NewRequestedExtensions(), selection)
	require.NoError(t, err)
	assert.Empty(t, report.Applied)
	assert.Equal(t, 0, selection.Len(types.EntityKindEnum))
}

func TestExtensionResolverMissingAttributes(t *testing.T) {
	tests := []struct {
		name      string
		extension types.Extension
	}{
		{name: "name", extension: types.Extension{Supported: "gl"}},
		{name: "supported", extension: types.Extension{Name: "GL_EXT_x"}},
		{name: "bad pattern", extension: types.Extension{Name: "GL_EXT_x", Supported: "gl("}},
	}
	store := loadStore(t, sampleRegistry(), "gl")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewExtensionResolver(NewOperationApplier(store, types.ProfileCore)).
				Resolve(t.Context(), []types.Extension{tt.extension}, NewRequestedExtensions(), NewSelection())
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
		})
	}
}
