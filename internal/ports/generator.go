package ports

import "galogen/internal/types"

// GeneratorPort receives the resolved entity set. Start is called once before
// any entity and End once after the last; types arrive in declaration order.
// Embed NopGenerator to implement only the callbacks you need.
type GeneratorPort interface {
	Start(info types.GenerationInfo) error
	Type(info types.TypeInfo) error
	EnumGroup(info types.GroupInfo) error
	Enumerant(info types.EnumerantInfo) error
	Command(info types.CommandInfo) error
	End() error
}

type NopGenerator struct{}

func (NopGenerator) Start(types.GenerationInfo) error { return nil }

func (NopGenerator) Type(types.TypeInfo) error { return nil }

func (NopGenerator) EnumGroup(types.GroupInfo) error { return nil }

func (NopGenerator) Enumerant(types.EnumerantInfo) error { return nil }

func (NopGenerator) Command(types.CommandInfo) error { return nil }

func (NopGenerator) End() error { return nil }

var _ GeneratorPort = NopGenerator{}

// GeneratorFactory builds a generator writing its artifacts through out.
type GeneratorFactory func(out ArtifactPort) GeneratorPort

type GeneratorCatalogPort interface {
	Lookup(name string) (GeneratorFactory, bool)
	Names() []string
}
