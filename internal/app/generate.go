package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"galogen/internal/core"
	"galogen/internal/policies"
	"galogen/internal/ports"
	"galogen/internal/shared"
	"galogen/internal/types"
)

// generationPlan is a validated request. Everything in it is checked before
// the registry is opened.
type generationPlan struct {
	registryPath string
	info         types.GenerationInfo
	profile      types.Profile
	generator    string
	factory      ports.GeneratorFactory
	extensions   []string
	outputDir    string
	strict       bool
}

func (s Service) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	plan, err := s.plan(req)
	if err != nil {
		return GenerateResult{}, err
	}
	logger := log.Ctx(ctx)
	logger.Debug().
		Str("registry", plan.registryPath).
		Str("api", plan.info.API).
		Str("version", plan.info.Version.String()).
		Str("profile", plan.info.Profile).
		Str("generator", plan.generator).
		Strs("extensions", plan.extensions).
		Msg("generation planned")

	registry, err := s.Registry.LoadRegistry(plan.registryPath)
	if err != nil {
		return GenerateResult{}, err
	}
	resolution, err := core.NewRegistryResolver().Resolve(ctx, registry, core.ResolveRequest{
		API:        plan.info.API,
		Version:    plan.info.Version,
		Profile:    plan.profile,
		Extensions: plan.extensions,
		Strict:     plan.strict,
	})
	if err != nil {
		return GenerateResult{}, err
	}

	generator := plan.factory(s.Artifacts(plan.outputDir))
	summary, err := core.NewEmitter(resolution.Store).Emit(ctx, generator, plan.info, resolution)
	if err != nil {
		return GenerateResult{}, err
	}
	result := GenerateResult{
		Name:       plan.info.Name,
		Generator:  plan.generator,
		OutputDir:  plan.outputDir,
		Info:       plan.info,
		Summary:    summary,
		Features:   resolution.Features,
		Extensions: resolution.Extensions.Applied,
	}
	logger.Info().
		Str("name", result.Name).
		Str("generator", result.Generator).
		Int("types", summary.Types).
		Int("groups", summary.Groups).
		Int("enumerants", summary.Enumerants).
		Int("commands", summary.Commands).
		Int("features", len(result.Features)).
		Strs("extensions", result.Extensions).
		Msg("generation complete")
	return result, nil
}

// ListGenerators returns the registered generator names, sorted.
func (s Service) ListGenerators() []string {
	return s.Generators.Names()
}

func (s Service) plan(req GenerateRequest) (generationPlan, error) {
	registryPath := strings.TrimSpace(req.RegistryPath)
	if registryPath == "" {
		return generationPlan{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("registry path is required")
	}

	api := valueOr(req.API, policies.DefaultAPI)
	if err := s.Policy.ValidateAPI(api); err != nil {
		return generationPlan{}, err
	}
	version, err := core.ParseVersion(valueOr(req.Version, s.Policy.DefaultVersion(api)))
	if err != nil {
		return generationPlan{}, err
	}
	profile, err := s.Policy.ValidateProfile(valueOr(req.Profile, string(policies.DefaultProfile)))
	if err != nil {
		return generationPlan{}, err
	}

	generator := valueOr(req.Generator, policies.DefaultGenerator)
	factory, ok := s.Generators.Lookup(generator)
	if !ok {
		return generationPlan{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown generator %s (expected one of %s)", generator, strings.Join(s.Generators.Names(), ", ")))
	}

	name := valueOr(req.Filename, shared.BaseName(api, version.String(), string(profile)))
	return generationPlan{
		registryPath: registryPath,
		info: types.GenerationInfo{
			Name:    name,
			API:     api,
			Profile: string(profile),
			Version: version,
		},
		profile:    profile,
		generator:  generator,
		factory:    factory,
		extensions: s.Policy.ExtensionNames(shared.FlattenList(req.Extensions)),
		outputDir:  valueOr(req.OutputDir, "."),
		strict:     req.Strict,
	}, nil
}

func valueOr(value string, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
