package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"galogen/internal/shared"
	"galogen/internal/types"
)

// ExtensionPrefix is prepended to every short extension name given on the
// command line before it is looked up in the registry.
const ExtensionPrefix = "GL_"

const (
	DefaultAPI       = "gl"
	DefaultProfile   = types.ProfileCompatibility
	DefaultGenerator = "c_noload"
)

var defaultAPIVersions = map[string]string{
	"gl":    "4.0",
	"gles1": "1.0",
	"gles2": "2.0",
	"glsc2": "2.0",
}

var validProfiles = map[types.Profile]struct{}{
	types.ProfileCore:          {},
	types.ProfileCompatibility: {},
}

// APIPolicy holds the fixed set of API names the generator accepts and the
// version each one defaults to.
type APIPolicy struct {
	versions map[string]string
}

func NewAPIPolicy() APIPolicy {
	return APIPolicy{versions: defaultAPIVersions}
}

func (p APIPolicy) ValidateAPI(api string) error {
	if _, ok := p.versions[api]; !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid API name %s (expected one of %s)", api, strings.Join(p.APINames(), ", ")))
	}
	return nil
}

// DefaultVersion returns the version used when none is given for api.
func (p APIPolicy) DefaultVersion(api string) string {
	return p.versions[api]
}

func (p APIPolicy) APINames() []string {
	return shared.SortedKeys(p.versions)
}

func (p APIPolicy) ValidateProfile(profile string) (types.Profile, error) {
	value := types.Profile(strings.TrimSpace(profile))
	if _, ok := validProfiles[value]; !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(`profile must be either "core" or "compatibility"`)
	}
	return value, nil
}

// ExtensionNames expands short names such as "ARB_debug_output" into the
// registry's full names. Empty entries are dropped.
func (p APIPolicy) ExtensionNames(short []string) []string {
	var names []string
	for _, name := range short {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		names = append(names, ExtensionPrefix+trimmed)
	}
	return names
}
