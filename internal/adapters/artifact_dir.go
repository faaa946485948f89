package adapters

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"galogen/internal/ports"
)

// ArtifactDirAdapter writes generated files into Dir.
type ArtifactDirAdapter struct {
	Dir string
}

func NewArtifactDirAdapter(dir string) ArtifactDirAdapter {
	return ArtifactDirAdapter{Dir: dir}
}

func (a ArtifactDirAdapter) Create(name string) (io.WriteCloser, error) {
	path, err := a.ensurePath(name)
	if err != nil {
		return nil, err
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output file " + path).
			WithCause(err)
	}
	return file, nil
}

func (a ArtifactDirAdapter) ensurePath(filename string) (string, error) {
	if a.Dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, filename), nil
}

var _ ports.ArtifactPort = ArtifactDirAdapter{}

// ArtifactMemoryAdapter keeps generated files in memory.
type ArtifactMemoryAdapter struct {
	files map[string]*bytes.Buffer
}

func NewArtifactMemoryAdapter() *ArtifactMemoryAdapter {
	return &ArtifactMemoryAdapter{files: map[string]*bytes.Buffer{}}
}

func (a *ArtifactMemoryAdapter) Create(name string) (io.WriteCloser, error) {
	buf := &bytes.Buffer{}
	a.files[name] = buf
	return nopCloser{buf}, nil
}

func (a *ArtifactMemoryAdapter) Contents(name string) (string, bool) {
	buf, ok := a.files[name]
	if !ok {
		return "", false
	}
	return buf.String(), true
}

func (a *ArtifactMemoryAdapter) Names() []string {
	names := make([]string, 0, len(a.files))
	for name := range a.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

var _ ports.ArtifactPort = (*ArtifactMemoryAdapter)(nil)
