package app

import (
	"galogen/internal/adapters"
	"galogen/internal/policies"
	"galogen/internal/ports"
)

type Service struct {
	Registry   ports.RegistryPort
	Generators ports.GeneratorCatalogPort
	// Artifacts opens the destination for one run's output directory.
	Artifacts func(dir string) ports.ArtifactPort
	Policy    policies.APIPolicy
}

func NewService() Service {
	return Service{
		Registry:   adapters.NewRegistryXMLAdapter(),
		Generators: adapters.NewGeneratorCatalog(),
		Artifacts: func(dir string) ports.ArtifactPort {
			return adapters.NewArtifactDirAdapter(dir)
		},
		Policy: policies.NewAPIPolicy(),
	}
}
