package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"galogen/internal/types"
)

func scalarTypes() []types.TypeInfo {
	return []types.TypeInfo{
		{Name: "GLenum", Declaration: "typedef unsigned int GLenum;"},
		{Name: "GLuint", Declaration: "typedef unsigned int GLuint;"},
		{Name: "GLsizei", Declaration: "typedef int GLsizei;"},
		{Name: "GLchar", Declaration: "typedef char GLchar;"},
	}
}

func requireBlock(refs ...types.EntityRef) types.OperationBlock {
	return types.OperationBlock{Op: types.OperationRequire, Refs: refs}
}

func removeBlock(refs ...types.EntityRef) types.OperationBlock {
	return types.OperationBlock{Op: types.OperationRemove, Refs: refs}
}

func typeRef(name string) types.EntityRef {
	return types.EntityRef{Kind: types.EntityKindType, Tag: "type", Name: name}
}

func enumRef(name string) types.EntityRef {
	return types.EntityRef{Kind: types.EntityKindEnum, Tag: "enum", Name: name}
}

func groupRef(name string) types.EntityRef {
	return types.EntityRef{Kind: types.EntityKindGroup, Tag: "group", Name: name}
}

func commandRef(name string) types.EntityRef {
	return types.EntityRef{Kind: types.EntityKindCommand, Tag: "command", Name: name}
}

func feature(api string, number string, blocks ...types.OperationBlock) types.Feature {
	return types.Feature{Name: "GL_VERSION_" + number, API: api, Number: number, Blocks: blocks}
}

// sampleRegistry is a small two-version registry: 1.0 adds glClear and
// GL_COLOR_BUFFER_BIT, 1.1 adds glGetString and glBindTexture, 2.0 removes
// glClear for the core profile.
func sampleRegistry() types.Registry {
	return types.Registry{
		Types: append(scalarTypes(),
			types.TypeInfo{Name: "GLbitfield", Declaration: "typedef unsigned int GLbitfield;"},
			types.TypeInfo{Name: "GLubyte", Declaration: "typedef unsigned char GLubyte;"},
		),
		Enums: []types.EnumerantInfo{
			{Name: "GL_COLOR_BUFFER_BIT", Value: "0x00004000"},
			{Name: "GL_TEXTURE_2D", Value: "0x0DE1"},
			{Name: "GL_VENDOR", Value: "0x1F00"},
		},
		Groups: []types.GroupDecl{
			{Name: "ClearBufferMask", Members: []string{"GL_COLOR_BUFFER_BIT"}},
			{Name: "StringName", Members: []string{"GL_VENDOR"}},
		},
		Commands: []types.CommandInfo{
			{
				Name:        "glClear",
				Prototype:   "void glClear",
				ReturnCType: "void",
				Params: []types.ParamInfo{
					{Name: "mask", CType: "GLbitfield", ReferencedType: "GLbitfield", Group: "ClearBufferMask"},
				},
			},
			{
				Name:           "glGetString",
				Prototype:      "const GLubyte *glGetString",
				ReturnCType:    "const GLubyte *",
				ReferencedType: "GLubyte",
				Params: []types.ParamInfo{
					{Name: "name", CType: "GLenum", ReferencedType: "GLenum", Group: "StringName"},
				},
			},
			{
				Name:        "glBindTexture",
				Prototype:   "void glBindTexture",
				ReturnCType: "void",
				Params: []types.ParamInfo{
					{Name: "target", CType: "GLenum", ReferencedType: "GLenum", Group: "TextureTarget"},
					{Name: "texture", CType: "GLuint", ReferencedType: "GLuint"},
				},
			},
		},
		Features: []types.Feature{
			feature("gl", "2.0", types.OperationBlock{
				Op:      types.OperationRemove,
				Profile: "core",
				Refs:    []types.EntityRef{commandRef("glClear")},
			}),
			feature("gl", "1.0", requireBlock(commandRef("glClear"), enumRef("GL_COLOR_BUFFER_BIT"))),
			feature("gl", "1.1", requireBlock(commandRef("glGetString"), commandRef("glBindTexture"), enumRef("GL_TEXTURE_2D"))),
			feature("gles2", "2.0", requireBlock(commandRef("glBindTexture"))),
		},
		Extensions: []types.Extension{
			{
				Name:      "GL_EXT_vendor",
				Supported: "gl|glcore",
				Blocks:    []types.OperationBlock{requireBlock(enumRef("GL_VENDOR"))},
			},
			{
				Name:      "GL_OES_texture",
				Supported: "gles1|gles2",
				Blocks:    []types.OperationBlock{requireBlock(enumRef("GL_TEXTURE_2D"))},
			},
		},
	}
}

func loadStore(t *testing.T, registry types.Registry, api string) *EntityStore {
	t.Helper()
	store, err := LoadEntityStore(t.Context(), registry, api, StoreOptions{})
	require.NoError(t, err)
	return store
}

func typeNames(infos []types.TypeInfo) []string {
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name)
	}
	return names
}
