package core

import "galogen/internal/types"

type variant[T any] struct {
	api   types.APITag
	value T
}

// APIEntity holds every definition sharing one name, one per API variant.
type APIEntity[T any] struct {
	variants []variant[T]
}

func (e *APIEntity[T]) Add(api types.APITag, value T) {
	e.variants = append(e.variants, variant[T]{api: api, value: value})
}

// variantMatch is the outcome of selecting a variant for one API.
type variantMatch[T any] struct {
	value T
	found bool
	// candidates counts the variants that qualified for the winning case.
	candidates int
}

// Get returns the variant tagged for api if there is one, otherwise the
// default variant. When several qualify the last one added wins.
func (e *APIEntity[T]) Get(api string) (T, bool) {
	match := e.lookup(api)
	return match.value, match.found
}

func (e *APIEntity[T]) lookup(api string) variantMatch[T] {
	var specific, fallback variantMatch[T]
	for _, v := range e.variants {
		switch {
		case v.api.IsDefault():
			fallback.value = v.value
			fallback.found = true
			fallback.candidates++
		case v.api.Name() == api:
			specific.value = v.value
			specific.found = true
			specific.candidates++
		}
	}
	if specific.found {
		return specific
	}
	return fallback
}
