package ports

import "galogen/internal/types"

type RegistryPort interface {
	LoadRegistry(path string) (types.Registry, error)
}
