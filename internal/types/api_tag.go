package types

// APITag says which API an entity variant applies to. The zero value is the
// default variant, used when no variant is tagged for the requested API.
type APITag struct {
	name string
}

func DefaultAPI() APITag {
	return APITag{}
}

func SpecificAPI(name string) APITag {
	return APITag{name: name}
}

// ParseAPITag maps an optional "api" attribute to a tag; empty means default.
func ParseAPITag(value string) APITag {
	if value == "" {
		return DefaultAPI()
	}
	return SpecificAPI(value)
}

func (t APITag) IsDefault() bool {
	return t.name == ""
}

func (t APITag) Name() string {
	return t.name
}

func (t APITag) String() string {
	if t.IsDefault() {
		return "default"
	}
	return t.name
}
