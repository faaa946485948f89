package types

type EntityKind string

const (
	EntityKindType    EntityKind = "type"
	EntityKindEnum    EntityKind = "enum"
	EntityKindGroup   EntityKind = "group"
	EntityKindCommand EntityKind = "command"
)

// EntityKinds lists every kind a directive block may reference.
var EntityKinds = []EntityKind{
	EntityKindType,
	EntityKindEnum,
	EntityKindGroup,
	EntityKindCommand,
}

func ParseEntityKind(value string) (EntityKind, bool) {
	for _, kind := range EntityKinds {
		if string(kind) == value {
			return kind, true
		}
	}
	return "", false
}

type OperationKind string

const (
	OperationRequire OperationKind = "require"
	OperationRemove  OperationKind = "remove"
)

type Profile string

const (
	ProfileCore          Profile = "core"
	ProfileCompatibility Profile = "compatibility"
)
