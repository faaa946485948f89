package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"galogen/internal/types"
)

type StoreOptions struct {
	// Strict turns two variants qualifying for the same lookup into an
	// error instead of letting the last one win.
	Strict bool
}

// EntityStore holds every entity of a registry keyed by name. It is built
// once and never modified afterwards.
type EntityStore struct {
	API      string
	Strict   bool
	types    map[string]*APIEntity[types.TypeInfo]
	enums    map[string]*APIEntity[types.EnumerantInfo]
	groups   map[string]*APIEntity[types.GroupInfo]
	commands map[string]*APIEntity[types.CommandInfo]
}

// LoadEntityStore indexes the registry for api. Groups are resolved against
// the enumerants while loading, so a group naming an undefined enumerant
// fails here. Groups tagged for another API are not loaded.
func LoadEntityStore(ctx context.Context, registry types.Registry, api string, opts StoreOptions) (*EntityStore, error) {
	store := &EntityStore{
		API:      api,
		Strict:   opts.Strict,
		types:    map[string]*APIEntity[types.TypeInfo]{},
		enums:    map[string]*APIEntity[types.EnumerantInfo]{},
		groups:   map[string]*APIEntity[types.GroupInfo]{},
		commands: map[string]*APIEntity[types.CommandInfo]{},
	}
	for _, info := range registry.Types {
		if info.Name == "" {
			return nil, missingAttribute("type", "name", info.Line)
		}
		addEntity(store.types, info.Name, info.API, info)
	}
	for _, info := range registry.Commands {
		if info.Name == "" {
			return nil, missingAttribute("command", "name", info.Line)
		}
		addEntity(store.commands, info.Name, info.API, info)
	}
	for _, info := range registry.Enums {
		if info.Name == "" || info.Value == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("enumerant missing name or value attribute (name=%q value=%q)", info.Name, info.Value))
		}
		addEntity(store.enums, info.Name, info.API, info)
	}
	for _, decl := range registry.Groups {
		if !decl.API.IsDefault() && decl.API.Name() != api {
			continue
		}
		group, err := store.resolveGroup(decl)
		if err != nil {
			return nil, err
		}
		addEntity(store.groups, group.Name, group.API, group)
	}
	log.Ctx(ctx).Debug().
		Str("api", api).
		Int("types", len(store.types)).
		Int("enums", len(store.enums)).
		Int("groups", len(store.groups)).
		Int("commands", len(store.commands)).
		Msg("registry indexed")
	return store, nil
}

func (s *EntityStore) resolveGroup(decl types.GroupDecl) (types.GroupInfo, error) {
	if decl.Name == "" {
		return types.GroupInfo{}, missingAttribute("group", "name", 0)
	}
	group := types.GroupInfo{Name: decl.Name, API: decl.API}
	for _, member := range decl.Members {
		if member == "" {
			return types.GroupInfo{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("enum reference missing name attribute in group %s", decl.Name))
		}
		info, err := s.Enumerant(member)
		if err != nil {
			return types.GroupInfo{}, errbuilder.New().
				WithCode(errbuilder.CodeOf(err)).
				WithMsg(fmt.Sprintf("group %s: %s", decl.Name, errorMessage(err))).
				WithCause(err)
		}
		group.Enums = append(group.Enums, info)
	}
	return group, nil
}

func (s *EntityStore) Type(name string) (types.TypeInfo, error) {
	return lookupEntity(s, s.types, types.EntityKindType, name)
}

func (s *EntityStore) Enumerant(name string) (types.EnumerantInfo, error) {
	return lookupEntity(s, s.enums, types.EntityKindEnum, name)
}

func (s *EntityStore) Group(name string) (types.GroupInfo, error) {
	return lookupEntity(s, s.groups, types.EntityKindGroup, name)
}

func (s *EntityStore) Command(name string) (types.CommandInfo, error) {
	return lookupEntity(s, s.commands, types.EntityKindCommand, name)
}

// HasGroup reports whether the group has a definition usable for the API.
func (s *EntityStore) HasGroup(name string) bool {
	entity, ok := s.groups[name]
	return ok && entity.lookup(s.API).found
}

func addEntity[T any](entities map[string]*APIEntity[T], name string, api types.APITag, value T) {
	entity, ok := entities[name]
	if !ok {
		entity = &APIEntity[T]{}
		entities[name] = entity
	}
	entity.Add(api, value)
}

func lookupEntity[T any](s *EntityStore, entities map[string]*APIEntity[T], kind types.EntityKind, name string) (T, error) {
	var zero T
	entity, ok := entities[name]
	if !ok {
		return zero, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("reference to undefined %s %s", kind, name))
	}
	match := entity.lookup(s.API)
	if !match.found {
		return zero, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("failed to find %s %s for api %s", kind, name, s.API))
	}
	if s.Strict && match.candidates > 1 {
		return zero, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("%s %s has %d definitions for api %s", kind, name, match.candidates, s.API))
	}
	return match.value, nil
}

func missingAttribute(element string, attribute string, line int) error {
	msg := fmt.Sprintf("%s missing %q attribute", element, attribute)
	if line > 0 {
		msg = fmt.Sprintf("%s on line %d", msg, line)
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(msg)
}
