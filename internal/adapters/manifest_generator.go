package adapters

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"galogen/internal/ports"
	"galogen/internal/types"
)

type manifest struct {
	Name       string              `yaml:"name"`
	API        string              `yaml:"api"`
	Profile    string              `yaml:"profile"`
	Version    string              `yaml:"version"`
	Types      []manifestType      `yaml:"types"`
	Groups     []manifestGroup     `yaml:"groups,omitempty"`
	Enumerants []manifestEnumerant `yaml:"enumerants"`
	Commands   []manifestCommand   `yaml:"commands"`
}

type manifestType struct {
	Name        string `yaml:"name"`
	Requires    string `yaml:"requires,omitempty"`
	Declaration string `yaml:"declaration"`
}

type manifestGroup struct {
	Name  string   `yaml:"name"`
	Enums []string `yaml:"enums"`
}

type manifestEnumerant struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
	Alias string `yaml:"alias,omitempty"`
}

type manifestCommand struct {
	Name   string          `yaml:"name"`
	Return string          `yaml:"return"`
	Alias  string          `yaml:"alias,omitempty"`
	Params []manifestParam `yaml:"params,omitempty"`
}

type manifestParam struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Group string `yaml:"group,omitempty"`
}

// ManifestGenerator writes <name>.yaml describing the resolved selection
// rather than code.
type ManifestGenerator struct {
	out ports.ArtifactPort
	doc manifest
}

func NewManifestGenerator(out ports.ArtifactPort) *ManifestGenerator {
	return &ManifestGenerator{out: out}
}

func (g *ManifestGenerator) Start(info types.GenerationInfo) error {
	g.doc = manifest{
		Name:    info.Name,
		API:     info.API,
		Profile: info.Profile,
		Version: info.Version.String(),
	}
	return nil
}

func (g *ManifestGenerator) Type(info types.TypeInfo) error {
	g.doc.Types = append(g.doc.Types, manifestType{
		Name:        info.Name,
		Requires:    info.Requires,
		Declaration: info.Declaration,
	})
	return nil
}

func (g *ManifestGenerator) EnumGroup(info types.GroupInfo) error {
	group := manifestGroup{Name: info.Name, Enums: []string{}}
	for _, enum := range info.Enums {
		group.Enums = append(group.Enums, enum.Name)
	}
	g.doc.Groups = append(g.doc.Groups, group)
	return nil
}

func (g *ManifestGenerator) Enumerant(info types.EnumerantInfo) error {
	g.doc.Enumerants = append(g.doc.Enumerants, manifestEnumerant{
		Name:  info.Name,
		Value: info.Value + info.Suffix,
		Alias: info.Alias,
	})
	return nil
}

func (g *ManifestGenerator) Command(info types.CommandInfo) error {
	command := manifestCommand{
		Name:   info.Name,
		Return: info.ReturnCType,
		Alias:  info.Alias,
	}
	for _, param := range info.Params {
		command.Params = append(command.Params, manifestParam{
			Name:  param.Name,
			Type:  param.CType,
			Group: param.Group,
		})
	}
	g.doc.Commands = append(g.doc.Commands, command)
	return nil
}

func (g *ManifestGenerator) End() error {
	file, err := g.out.Create(g.doc.Name + ".yaml")
	if err != nil {
		return err
	}
	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(g.doc); err != nil {
		_ = file.Close()
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write manifest").
			WithCause(err)
	}
	if err := encoder.Close(); err != nil {
		_ = file.Close()
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write manifest").
			WithCause(err)
	}
	if err := file.Close(); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to close manifest").
			WithCause(err)
	}
	return nil
}

var _ ports.GeneratorPort = (*ManifestGenerator)(nil)
