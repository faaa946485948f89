package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"galogen/internal/ports"
	"galogen/internal/types"
)

// Emitter drives a generator over a finished resolution.
type Emitter struct {
	Store *EntityStore
}

func NewEmitter(store *EntityStore) Emitter {
	return Emitter{Store: store}
}

// Emit sends types in closure order, then groups, enumerants and commands.
// Selected groups without a definition are skipped; a missing enumerant or
// command is an error.
func (e Emitter) Emit(ctx context.Context, generator ports.GeneratorPort, info types.GenerationInfo, resolution Resolution) (types.GenerationSummary, error) {
	assert.NotEmpty(ctx, info.API, "generation api must be set")
	assert.NotEmpty(ctx, info.Profile, "generation profile must be set")

	summary := types.GenerationSummary{}
	if err := generator.Start(info); err != nil {
		return summary, err
	}
	for _, typeInfo := range resolution.Types {
		if err := generator.Type(typeInfo); err != nil {
			return summary, err
		}
		summary.Types++
	}
	for _, name := range resolution.Selection.Names(types.EntityKindGroup) {
		if !e.Store.HasGroup(name) {
			continue
		}
		group, err := e.Store.Group(name)
		if err != nil {
			return summary, err
		}
		if err := generator.EnumGroup(group); err != nil {
			return summary, err
		}
		summary.Groups++
	}
	for _, name := range resolution.Selection.Names(types.EntityKindEnum) {
		enumerant, err := e.Store.Enumerant(name)
		if err != nil {
			return summary, err
		}
		if err := generator.Enumerant(enumerant); err != nil {
			return summary, err
		}
		summary.Enumerants++
	}
	for _, name := range resolution.Selection.Names(types.EntityKindCommand) {
		command, err := e.Store.Command(name)
		if err != nil {
			return summary, err
		}
		if err := generator.Command(command); err != nil {
			return summary, err
		}
		summary.Commands++
	}
	if err := generator.End(); err != nil {
		return summary, err
	}
	log.Ctx(ctx).Debug().
		Int("types", summary.Types).
		Int("groups", summary.Groups).
		Int("enumerants", summary.Enumerants).
		Int("commands", summary.Commands).
		Msg("generation emitted")
	return summary, nil
}
