package app

import "galogen/internal/types"

// GenerateRequest mirrors the command line. Empty fields take their
// defaults: API gl, the API's default version, the compatibility profile,
// the c_noload generator and the current directory.
type GenerateRequest struct {
	RegistryPath string
	API          string
	Version      string
	Profile      string
	Filename     string
	Generator    string
	Extensions   []string
	OutputDir    string
	Strict       bool
}

type GenerateResult struct {
	Name       string
	Generator  string
	OutputDir  string
	Info       types.GenerationInfo
	Summary    types.GenerationSummary
	Features   []types.Version
	Extensions []string
}
