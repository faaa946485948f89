package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"galogen/internal/types"
)

type ResolveRequest struct {
	API        string
	Version    types.Version
	Profile    types.Profile
	Extensions []string
	Strict     bool
}

// Resolution is the finished selection for one request. Types are in
// declaration order; the Selection is not modified after Resolve returns.
type Resolution struct {
	Store      *EntityStore
	Selection  *Selection
	Types      []types.TypeInfo
	Features   []types.Version
	Extensions ExtensionReport
}

// RegistryResolver runs load, version replay, extension merge and type
// closure in that order.
type RegistryResolver struct {
	Bootstrap []string
}

func NewRegistryResolver() RegistryResolver {
	return RegistryResolver{Bootstrap: DefaultBootstrapTypes}
}

func (r RegistryResolver) Resolve(ctx context.Context, registry types.Registry, req ResolveRequest) (Resolution, error) {
	store, err := LoadEntityStore(ctx, registry, req.API, StoreOptions{Strict: req.Strict})
	if err != nil {
		return Resolution{}, err
	}
	selection := NewSelection()
	applier := NewOperationApplier(store, req.Profile)

	features, err := NewVersionResolver(applier).Resolve(ctx, registry.Features, req.Version, selection)
	if err != nil {
		return Resolution{}, err
	}
	requested := NewRequestedExtensions(req.Extensions...)
	extensions, err := NewExtensionResolver(applier).Resolve(ctx, registry.Extensions, requested, selection)
	if err != nil {
		return Resolution{}, err
	}

	closure := NewTypeClosure(store)
	closure.Bootstrap = r.Bootstrap
	ordered, err := closure.Order(ctx, selection.Names(types.EntityKindType))
	if err != nil {
		return Resolution{}, err
	}
	log.Ctx(ctx).Debug().
		Int("features", len(features)).
		Strs("extensions", extensions.Applied).
		Msg("registry resolved")
	return Resolution{
		Store:      store,
		Selection:  selection,
		Types:      ordered,
		Features:   features,
		Extensions: extensions,
	}, nil
}
