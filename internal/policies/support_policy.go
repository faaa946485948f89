package policies

import (
	"fmt"
	"regexp"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// SupportPolicy decides whether an extension's "supported" pattern covers the
// target API. Patterns must match the whole API name, so "gl" does not
// accept "gles2". Compiled patterns are cached by source text.
type SupportPolicy struct {
	API      string
	patterns map[string]*regexp.Regexp
}

func NewSupportPolicy(api string) *SupportPolicy {
	return &SupportPolicy{
		API:      api,
		patterns: map[string]*regexp.Regexp{},
	}
}

func (p *SupportPolicy) Supports(pattern string) (bool, error) {
	compiled, err := p.compile(pattern)
	if err != nil {
		return false, err
	}
	return compiled.MatchString(p.API), nil
}

func (p *SupportPolicy) compile(pattern string) (*regexp.Regexp, error) {
	if compiled, ok := p.patterns[pattern]; ok {
		return compiled, nil
	}
	compiled, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid supported API pattern %q", pattern)).
			WithCause(err)
	}
	p.patterns[pattern] = compiled
	return compiled, nil
}
