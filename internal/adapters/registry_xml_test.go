package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"galogen/internal/types"
)

const testRegistryXML = `<?xml version="1.0" encoding="UTF-8"?>
<registry>
  <comment>sample</comment>
  <types>
    <type>typedef unsigned int <name>GLenum</name>;</type>
    <type requires="GLenum">typedef <name>GLmask</name>;</type>
    <type api="gles2">typedef int <name>GLfixed</name>;</type>
    <type name="khrplatform">#include &lt;KHR/khrplatform.h&gt;</type>
    <type>typedef void (<apientry/> *<name>GLDEBUGPROC</name>)(void);</type>
  </types>
  <groups>
    <group name="TextureTarget">
      <enum name="GL_TEXTURE_2D"/>
    </group>
  </groups>
  <enums namespace="GL">
    <enum value="0x0DE1" name="GL_TEXTURE_2D"/>
    <enum value="0xFFFFFFFF" name="GL_INVALID_INDEX" type="u"/>
    <enum value="0x8D65" name="GL_TEXTURE_EXTERNAL_OES" alias="GL_TEXTURE_EXTERNAL" api="gles2"/>
  </enums>
  <commands namespace="GL">
    <command>
      <proto>void <name>glBindTexture</name></proto>
      <param group="TextureTarget"><ptype>GLenum</ptype> <name>target</name></param>
      <param len="1">const <ptype>GLuint</ptype> *<name>texture</name></param>
      <alias name="glBindTextureEXT"/>
      <glx type="render" opcode="4117"/>
    </command>
    <command api="gles2">
      <proto>const <ptype>GLubyte</ptype> *<name>glGetString</name></proto>
      <param><ptype>GLenum</ptype> <name>name</name></param>
      <vecequiv name="glGetStringv"/>
    </command>
  </commands>
  <feature api="gl" name="GL_VERSION_1_0" number="1.0">
    <require comment="basics">
      <type name="GLenum"/>
      <enum name="GL_TEXTURE_2D"/>
      <command name="glBindTexture"/>
    </require>
    <remove profile="core" api="gl">
      <command name="glGetString"/>
    </remove>
    <comment>ignored</comment>
  </feature>
  <extensions>
    <extension name="GL_OES_texture" supported="gles1|gles2">
      <require>
        <enum name="GL_TEXTURE_EXTERNAL_OES"/>
        <unknown name="ignored"/>
      </require>
    </extension>
  </extensions>
</registry>
`

func TestParseRegistryTypes(t *testing.T) {
	registry, err := ParseRegistry([]byte(testRegistryXML))
	require.NoError(t, err)
	require.Len(t, registry.Types, 5)

	assert.Equal(t, "GLenum", registry.Types[0].Name)
	assert.Equal(t, "typedef unsigned int  GLenum;", registry.Types[0].Declaration)
	assert.True(t, registry.Types[0].API.IsDefault())
	assert.Equal(t, "GLenum", registry.Types[1].Requires)
	assert.Equal(t, "gles2", registry.Types[2].API.Name())
	assert.Equal(t, "khrplatform", registry.Types[3].Name)
	assert.Equal(t, "#include <KHR/khrplatform.h>", registry.Types[3].Declaration)
	assert.Equal(t, "GLDEBUGPROC", registry.Types[4].Name)
	assert.Equal(t, "typedef void ( GL_APIENTRY  * GLDEBUGPROC)(void);", registry.Types[4].Declaration)
	assert.Positive(t, registry.Types[0].Line)
}

func TestParseRegistryEnumsAndGroups(t *testing.T) {
	registry, err := ParseRegistry([]byte(testRegistryXML))
	require.NoError(t, err)

	want := []types.EnumerantInfo{
		{Name: "GL_TEXTURE_2D", Value: "0x0DE1", API: types.DefaultAPI()},
		{Name: "GL_INVALID_INDEX", Value: "0xFFFFFFFF", Suffix: "u", API: types.DefaultAPI()},
		{Name: "GL_TEXTURE_EXTERNAL_OES", Alias: "GL_TEXTURE_EXTERNAL", Value: "0x8D65", API: types.SpecificAPI("gles2")},
	}
	if diff := cmp.Diff(want, registry.Enums, cmp.AllowUnexported(types.APITag{})); diff != "" {
		t.Errorf("enums mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, registry.Groups, 1)
	assert.Equal(t, "TextureTarget", registry.Groups[0].Name)
	assert.Equal(t, []string{"GL_TEXTURE_2D"}, registry.Groups[0].Members)
}

func TestParseRegistryCommands(t *testing.T) {
	registry, err := ParseRegistry([]byte(testRegistryXML))
	require.NoError(t, err)
	require.Len(t, registry.Commands, 2)

	bind := registry.Commands[0]
	assert.Equal(t, "glBindTexture", bind.Name)
	assert.Equal(t, "void", bind.ReturnCType)
	assert.Equal(t, "void glBindTexture", bind.Prototype)
	assert.Empty(t, bind.ReferencedType)
	assert.Equal(t, "glBindTextureEXT", bind.Alias)
	require.Len(t, bind.Params, 2)
	assert.Equal(t, types.ParamInfo{
		Name:           "target",
		CType:          "GLenum ",
		ReferencedType: "GLenum",
		Group:          "TextureTarget",
	}, bind.Params[0])
	assert.Equal(t, "const GLuint *", bind.Params[1].CType)
	assert.Equal(t, "1", bind.Params[1].Len)

	get := registry.Commands[1]
	assert.Equal(t, "glGetString", get.Name)
	assert.Equal(t, "const GLubyte *", get.ReturnCType)
	assert.Equal(t, "GLubyte", get.ReferencedType)
	assert.Equal(t, "glGetStringv", get.VecEquiv)
	assert.Equal(t, "gles2", get.API.Name())
}

func TestParseRegistryFeaturesAndExtensions(t *testing.T) {
	registry, err := ParseRegistry([]byte(testRegistryXML))
	require.NoError(t, err)

	wantFeatures := []types.Feature{{
		Name:   "GL_VERSION_1_0",
		API:    "gl",
		Number: "1.0",
		Blocks: []types.OperationBlock{
			{
				Op: types.OperationRequire,
				Refs: []types.EntityRef{
					{Kind: types.EntityKindType, Tag: "type", Name: "GLenum"},
					{Kind: types.EntityKindEnum, Tag: "enum", Name: "GL_TEXTURE_2D"},
					{Kind: types.EntityKindCommand, Tag: "command", Name: "glBindTexture"},
				},
			},
			{
				Op:      types.OperationRemove,
				Profile: "core",
				API:     "gl",
				Refs: []types.EntityRef{
					{Kind: types.EntityKindCommand, Tag: "command", Name: "glGetString"},
				},
			},
		},
	}}
	if diff := cmp.Diff(wantFeatures, registry.Features); diff != "" {
		t.Errorf("features mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, registry.Extensions, 1)
	ext := registry.Extensions[0]
	assert.Equal(t, "GL_OES_texture", ext.Name)
	assert.Equal(t, "gles1|gles2", ext.Supported)
	require.Len(t, ext.Blocks, 1)
	assert.Equal(t, []types.EntityRef{
		{Kind: types.EntityKindEnum, Tag: "enum", Name: "GL_TEXTURE_EXTERNAL_OES"},
		{Tag: "unknown", Name: "ignored"},
	}, ext.Blocks[0].Refs)
}

func TestParseRegistryRejectsUnexpectedMarkup(t *testing.T) {
	cases := map[string]string{
		"type":  `<registry><types><type>typedef <bogus/> <name>GLx</name>;</type></types></registry>`,
		"proto": `<registry><commands><command><proto>void <bogus/></proto></command></commands></registry>`,
		"param": `<registry><commands><command><proto>void <name>glX</name></proto><param><bogus/></param></command></commands></registry>`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRegistry([]byte(doc))
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
			assert.Contains(t, err.Error(), "bogus")
		})
	}
}

func TestParseRegistryMalformedXML(t *testing.T) {
	_, err := ParseRegistry([]byte(`<registry><types>`))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestLoadRegistry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gl.xml")
	require.NoError(t, os.WriteFile(path, []byte(testRegistryXML), 0644))

	registry, err := NewRegistryXMLAdapter().LoadRegistry(path)
	require.NoError(t, err)
	assert.Len(t, registry.Commands, 2)

	_, err = NewRegistryXMLAdapter().LoadRegistry(filepath.Join(dir, "missing.xml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
