package adapters

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"galogen/internal/ports"
	"galogen/internal/types"
)

// CGenerator writes <name>.h and <name>.c. Every command becomes a function
// pointer whose initial value is a stub: the lazy variant resolves the real
// entry point on first call, the null driver returns a zero value.
type CGenerator struct {
	ports.NopGenerator

	out        ports.ArtifactPort
	nullDriver bool
	header     *bufio.Writer
	source     *bufio.Writer
	files      []io.WriteCloser
}

func NewCGenerator(out ports.ArtifactPort) *CGenerator {
	return &CGenerator{out: out}
}

func NewCNullDriverGenerator(out ports.ArtifactPort) *CGenerator {
	return &CGenerator{out: out, nullDriver: true}
}

func (g *CGenerator) Start(info types.GenerationInfo) error {
	header, err := g.create(info.Name + ".h")
	if err != nil {
		return err
	}
	source, err := g.create(info.Name + ".c")
	if err != nil {
		return err
	}
	g.header = header
	g.source = source

	fmt.Fprintf(g.header, "%s\n", headerPreamble)
	fmt.Fprintf(g.header,
		"#define GALOGEN_API_NAME \"%s\"\n"+
			"#define GALOGEN_API_PROFILE \"%s\"\n"+
			"#define GALOGEN_API_VER_MAJ %d\n"+
			"#define GALOGEN_API_VER_MIN %d\n",
		info.API, info.Profile, info.Version.Major, info.Version.Minor)
	fmt.Fprintf(g.source, "#include \"%s.h\"\n", info.Name)
	if !g.nullDriver {
		fmt.Fprintf(g.source, "%s\n", loaderPreamble)
	}
	return nil
}

func (g *CGenerator) Type(info types.TypeInfo) error {
	fmt.Fprintf(g.header, "%s\n", info.Declaration)
	return nil
}

func (g *CGenerator) Enumerant(info types.EnumerantInfo) error {
	fmt.Fprintf(g.header, "#define %s %s%s\n", info.Name, info.Value, info.Suffix)
	if info.Alias != "" {
		fmt.Fprintf(g.header, "#define %s %s%s\n", info.Alias, info.Value, info.Suffix)
	}
	return nil
}

func (g *CGenerator) Command(info types.CommandInfo) error {
	signature, call := parameterLists(info.Params)
	name := info.Name

	fmt.Fprintf(g.header, "\ntypedef %s (GL_APIENTRY *PFN_%s)(%s);\n", info.ReturnCType, name, signature)
	fmt.Fprintf(g.header, "extern PFN_%s _glptr_%s;\n", name, name)
	fmt.Fprintf(g.header, "#define %s _glptr_%s\n", name, name)
	if info.Alias != "" {
		fmt.Fprintf(g.header, "#define %s %s\n", info.Alias, name)
	}

	fmt.Fprintf(g.source, "static %s GL_APIENTRY _impl_%s (%s) {\n", info.ReturnCType, name, signature)
	if g.nullDriver {
		if info.ReturnCType != "void" {
			fmt.Fprintf(g.source, "  return (%s)0;\n", info.ReturnCType)
		}
		fmt.Fprintf(g.source, "}\n")
	} else {
		fmt.Fprintf(g.source, "  _glptr_%s = (PFN_%s)GalogenGetProcAddress(\"%s\");\n  ", name, name, name)
		ret := ""
		if info.ReturnCType != "void" {
			ret = "return"
		}
		fmt.Fprintf(g.source, "%s _glptr_%s(%s);\n}\n", ret, name, call)
	}
	fmt.Fprintf(g.source, "PFN_%s _glptr_%s = _impl_%s;\n\n", name, name, name)
	return nil
}

func (g *CGenerator) End() error {
	fmt.Fprintf(g.header, "#if defined(__cplusplus)\n}\n#endif\n")
	fmt.Fprintf(g.header, "#endif\n")
	for _, w := range []*bufio.Writer{g.header, g.source} {
		if err := w.Flush(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write generated code").
				WithCause(err)
		}
	}
	for _, file := range g.files {
		if err := file.Close(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to close generated file").
				WithCause(err)
		}
	}
	return nil
}

func (g *CGenerator) create(name string) (*bufio.Writer, error) {
	file, err := g.out.Create(name)
	if err != nil {
		return nil, err
	}
	g.files = append(g.files, file)
	return bufio.NewWriter(file), nil
}

// parameterLists returns the declaration list ("GLenum mode, GLint first")
// and the forwarding list ("mode, first") of a command.
func parameterLists(params []types.ParamInfo) (string, string) {
	signature := make([]string, 0, len(params))
	call := make([]string, 0, len(params))
	for _, param := range params {
		signature = append(signature, param.CType+" "+param.Name)
		call = append(call, param.Name)
	}
	return strings.Join(signature, ", "), strings.Join(call, ", ")
}

var _ ports.GeneratorPort = (*CGenerator)(nil)
