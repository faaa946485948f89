package core

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"galogen/internal/types"
)

var versionPattern = regexp.MustCompile(`^([0-9]+)\.([0-9]+)$`)

// ParseVersion parses a "major.minor" string. Anything else, including
// whitespace or a third component, is rejected.
func ParseVersion(value string) (types.Version, error) {
	match := versionPattern.FindStringSubmatch(value)
	if match == nil {
		return types.Version{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid version %q", value))
	}
	major, err := strconv.Atoi(match[1])
	if err != nil {
		return types.Version{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid version %q", value)).
			WithCause(err)
	}
	minor, err := strconv.Atoi(match[2])
	if err != nil {
		return types.Version{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid version %q", value)).
			WithCause(err)
	}
	return types.Version{Major: major, Minor: minor}, nil
}

// versionedFeature pairs a feature with its parsed number so sorting does
// not reparse.
type versionedFeature struct {
	version types.Version
	feature types.Feature
}

// sortFeatures orders features by ascending version. Features sharing a
// version keep their document order.
func sortFeatures(features []versionedFeature) {
	sort.SliceStable(features, func(i, j int) bool {
		return features[i].version.Compare(features[j].version) < 0
	})
}
