package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"galogen/internal/policies"
	"galogen/internal/shared"
	"galogen/internal/types"
)

// RequestedExtensions is the set of extension names asked for by the
// caller. Resolution removes every name it consumes.
type RequestedExtensions map[string]struct{}

func NewRequestedExtensions(names ...string) RequestedExtensions {
	requested := RequestedExtensions{}
	for _, name := range names {
		requested[name] = struct{}{}
	}
	return requested
}

func (r RequestedExtensions) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// Pending returns the names not consumed yet, sorted.
func (r RequestedExtensions) Pending() []string {
	return shared.SortedKeys(r)
}

type ExtensionReport struct {
	Applied     []string
	Unsupported []string
}

type ExtensionResolver struct {
	Applier OperationApplier
	Support *policies.SupportPolicy
}

func NewExtensionResolver(applier OperationApplier) ExtensionResolver {
	return ExtensionResolver{
		Applier: applier,
		Support: policies.NewSupportPolicy(applier.Store.API),
	}
}

// Resolve applies every requested extension whose supported pattern matches
// the API. A requested extension for another API only warns, but any name
// still pending once all extensions were scanned is an error.
func (r ExtensionResolver) Resolve(ctx context.Context, extensions []types.Extension, requested RequestedExtensions, selection *Selection) (ExtensionReport, error) {
	report := ExtensionReport{}
	for _, extension := range extensions {
		if extension.Name == "" {
			return report, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(`extension missing "name" attribute`)
		}
		if extension.Supported == "" {
			return report, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf(`extension %s missing "supported" attribute`, extension.Name))
		}
		supported, err := r.Support.Supports(extension.Supported)
		if err != nil {
			return report, err
		}
		if !requested.Has(extension.Name) {
			continue
		}
		if !supported {
			log.Ctx(ctx).Warn().
				Str("extension", extension.Name).
				Str("api", r.Support.API).
				Msg("extension requested, but not supported by API")
			report.Unsupported = append(report.Unsupported, extension.Name)
			continue
		}
		if err := r.Applier.Apply(ctx, extension.Blocks, selection); err != nil {
			return report, err
		}
		delete(requested, extension.Name)
		report.Applied = append(report.Applied, extension.Name)
		log.Ctx(ctx).Debug().Str("extension", extension.Name).Msg("extension applied")
	}
	if pending := requested.Pending(); len(pending) > 0 {
		return report, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("invalid extensions specified: %s", strings.Join(pending, ", ")))
	}
	return report, nil
}
