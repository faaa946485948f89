package core

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"galogen/internal/types"
)

// OperationApplier replays require/remove blocks onto a Selection. Version
// features and extensions share it.
type OperationApplier struct {
	Store   *EntityStore
	Profile types.Profile
}

func NewOperationApplier(store *EntityStore, profile types.Profile) OperationApplier {
	return OperationApplier{
		Store:   store,
		Profile: profile,
	}
}

func (a OperationApplier) Apply(ctx context.Context, blocks []types.OperationBlock, selection *Selection) error {
	for _, block := range blocks {
		if !a.applies(block) {
			continue
		}
		for _, ref := range block.Refs {
			if ref.Kind == "" {
				log.Ctx(ctx).Debug().Str("element", ref.Tag).Msg("ignoring unknown directive element")
				continue
			}
			if ref.Name == "" {
				return errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(string(ref.Kind) + " missing name attribute")
			}
			switch block.Op {
			case types.OperationRequire:
				if err := a.require(ref, selection); err != nil {
					return err
				}
			case types.OperationRemove:
				selection.Remove(ref.Kind, ref.Name)
			}
		}
	}
	return nil
}

func (a OperationApplier) applies(block types.OperationBlock) bool {
	if block.Profile != "" && block.Profile != string(a.Profile) {
		return false
	}
	if block.API != "" && block.API != a.Store.API {
		return false
	}
	return true
}

// require selects ref. Commands also pull in the API types named by their
// signature and the groups of their parameters, which the registry never
// lists explicitly.
func (a OperationApplier) require(ref types.EntityRef, selection *Selection) error {
	selection.Add(ref.Kind, ref.Name)
	if ref.Kind != types.EntityKindCommand {
		return nil
	}
	command, err := a.Store.Command(ref.Name)
	if err != nil {
		return err
	}
	if command.ReferencedType != "" {
		selection.Add(types.EntityKindType, command.ReferencedType)
	}
	for _, param := range command.Params {
		if param.ReferencedType != "" {
			selection.Add(types.EntityKindType, param.ReferencedType)
		}
		if param.Group != "" {
			selection.Add(types.EntityKindGroup, param.Group)
		}
	}
	return nil
}
