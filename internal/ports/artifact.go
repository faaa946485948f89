package ports

import "io"

// ArtifactPort creates the output files a generator writes.
type ArtifactPort interface {
	Create(name string) (io.WriteCloser, error)
}
