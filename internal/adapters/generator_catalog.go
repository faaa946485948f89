package adapters

import (
	"galogen/internal/ports"
	"galogen/internal/shared"
)

// GeneratorCatalog maps generator names to factories.
type GeneratorCatalog struct {
	factories map[string]ports.GeneratorFactory
}

func NewGeneratorCatalog() GeneratorCatalog {
	catalog := GeneratorCatalog{factories: map[string]ports.GeneratorFactory{}}
	catalog.Register("c_noload", func(out ports.ArtifactPort) ports.GeneratorPort {
		return NewCGenerator(out)
	})
	catalog.Register("c_nulldriver", func(out ports.ArtifactPort) ports.GeneratorPort {
		return NewCNullDriverGenerator(out)
	})
	catalog.Register("manifest", func(out ports.ArtifactPort) ports.GeneratorPort {
		return NewManifestGenerator(out)
	})
	return catalog
}

// Register adds or replaces the factory for name.
func (c GeneratorCatalog) Register(name string, factory ports.GeneratorFactory) {
	c.factories[name] = factory
}

func (c GeneratorCatalog) Lookup(name string) (ports.GeneratorFactory, bool) {
	factory, ok := c.factories[name]
	return factory, ok
}

func (c GeneratorCatalog) Names() []string {
	return shared.SortedKeys(c.factories)
}

var _ ports.GeneratorCatalogPort = GeneratorCatalog{}
