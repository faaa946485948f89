package adapters

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"galogen/internal/ports"
	"galogen/internal/types"
)

// RegistryXMLAdapter reads a Khronos-style XML API registry.
type RegistryXMLAdapter struct{}

func NewRegistryXMLAdapter() RegistryXMLAdapter {
	return RegistryXMLAdapter{}
}

type registryXML struct {
	XMLName    xml.Name          `xml:"registry"`
	Types      typesSection      `xml:"types"`
	Commands   commandsSection   `xml:"commands"`
	Enums      []enumsSection    `xml:"enums"`
	Groups     groupsSection     `xml:"groups"`
	Features   []featureXML      `xml:"feature"`
	Extensions extensionsSection `xml:"extensions"`
}

type typesSection struct {
	Types []typeXML `xml:"type"`
}

type commandsSection struct {
	Commands []commandXML `xml:"command"`
}

type enumsSection struct {
	Enums []enumXML `xml:"enum"`
}

type enumXML struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
	Type  string `xml:"type,attr"`
	Alias string `xml:"alias,attr"`
	API   string `xml:"api,attr"`
}

type groupsSection struct {
	Groups []groupXML `xml:"group"`
}

type groupXML struct {
	Name  string    `xml:"name,attr"`
	API   string    `xml:"api,attr"`
	Enums []nameRef `xml:"enum"`
}

type nameRef struct {
	Name string `xml:"name,attr"`
}

type featureXML struct {
	API    string     `xml:"api,attr"`
	Name   string     `xml:"name,attr"`
	Number string     `xml:"number,attr"`
	Blocks []blockXML `xml:",any"`
}

type extensionsSection struct {
	Extensions []extensionXML `xml:"extension"`
}

type extensionXML struct {
	Name      string     `xml:"name,attr"`
	Supported string     `xml:"supported,attr"`
	Blocks    []blockXML `xml:",any"`
}

type blockXML struct {
	XMLName xml.Name
	Profile string      `xml:"profile,attr"`
	API     string      `xml:"api,attr"`
	Refs    []entityXML `xml:",any"`
}

type entityXML struct {
	XMLName xml.Name
	Name    string `xml:"name,attr"`
}

func (a RegistryXMLAdapter) LoadRegistry(path string) (types.Registry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.Registry{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("failed to load file %s", path)).
			WithCause(err)
	}
	return ParseRegistry(content)
}

// ParseRegistry decodes registry XML. It checks markup only; attribute
// presence and references are checked when the registry is resolved.
func ParseRegistry(content []byte) (types.Registry, error) {
	var doc registryXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		var builder *errbuilder.ErrBuilder
		if errors.As(err, &builder) {
			return types.Registry{}, err
		}
		return types.Registry{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse registry: %v", err)).
			WithCause(err)
	}

	registry := types.Registry{}
	for _, t := range doc.Types.Types {
		registry.Types = append(registry.Types, t.info)
	}
	for _, c := range doc.Commands.Commands {
		registry.Commands = append(registry.Commands, c.info)
	}
	for _, section := range doc.Enums {
		for _, e := range section.Enums {
			registry.Enums = append(registry.Enums, types.EnumerantInfo{
				Name:   e.Name,
				Alias:  e.Alias,
				Value:  e.Value,
				Suffix: e.Type,
				API:    types.ParseAPITag(e.API),
			})
		}
	}
	for _, g := range doc.Groups.Groups {
		decl := types.GroupDecl{Name: g.Name, API: types.ParseAPITag(g.API)}
		for _, ref := range g.Enums {
			decl.Members = append(decl.Members, ref.Name)
		}
		registry.Groups = append(registry.Groups, decl)
	}
	for _, f := range doc.Features {
		registry.Features = append(registry.Features, types.Feature{
			Name:   f.Name,
			API:    f.API,
			Number: f.Number,
			Blocks: convertBlocks(f.Blocks),
		})
	}
	for _, e := range doc.Extensions.Extensions {
		registry.Extensions = append(registry.Extensions, types.Extension{
			Name:      e.Name,
			Supported: e.Supported,
			Blocks:    convertBlocks(e.Blocks),
		})
	}
	return registry, nil
}

func convertBlocks(blocks []blockXML) []types.OperationBlock {
	var out []types.OperationBlock
	for _, block := range blocks {
		op := types.OperationKind(block.XMLName.Local)
		if op != types.OperationRequire && op != types.OperationRemove {
			continue
		}
		converted := types.OperationBlock{
			Op:      op,
			Profile: strings.TrimSpace(block.Profile),
			API:     strings.TrimSpace(block.API),
		}
		for _, ref := range block.Refs {
			kind, _ := types.ParseEntityKind(ref.XMLName.Local)
			converted.Refs = append(converted.Refs, types.EntityRef{
				Kind: kind,
				Tag:  ref.XMLName.Local,
				Name: ref.Name,
			})
		}
		out = append(out, converted)
	}
	return out
}

var _ ports.RegistryPort = RegistryXMLAdapter{}
