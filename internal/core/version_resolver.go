package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"galogen/internal/types"
)

// VersionResolver rebuilds the feature set of one API version by replaying
// every feature diff up to and including it, oldest first.
type VersionResolver struct {
	Applier OperationApplier
}

func NewVersionResolver(applier OperationApplier) VersionResolver {
	return VersionResolver{Applier: applier}
}

// Resolve applies the features of the store's API whose version is at most
// target and returns the versions applied, in order.
func (r VersionResolver) Resolve(ctx context.Context, features []types.Feature, target types.Version, selection *Selection) ([]types.Version, error) {
	api := r.Applier.Store.API
	var candidates []versionedFeature
	for _, feature := range features {
		if feature.API == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("feature %s missing api attribute", feature.Name))
		}
		if feature.API != api {
			continue
		}
		version, err := ParseVersion(feature.Number)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("feature %s has invalid version %q", feature.Name, feature.Number)).
				WithCause(err)
		}
		candidates = append(candidates, versionedFeature{version: version, feature: feature})
	}
	sortFeatures(candidates)

	var applied []types.Version
	for _, candidate := range candidates {
		if candidate.version.Compare(target) > 0 {
			break
		}
		if err := r.Applier.Apply(ctx, candidate.feature.Blocks, selection); err != nil {
			return nil, err
		}
		applied = append(applied, candidate.version)
		log.Ctx(ctx).Debug().
			Str("feature", candidate.feature.Name).
			Str("version", candidate.version.String()).
			Msg("feature applied")
	}
	return applied, nil
}
