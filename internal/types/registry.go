package types

// Registry is the parsed registry document before any resolution.
type Registry struct {
	Types      []TypeInfo
	Commands   []CommandInfo
	Enums      []EnumerantInfo
	Groups     []GroupDecl
	Features   []Feature
	Extensions []Extension
}

// GroupDecl is a group as written in the document: member names only.
type GroupDecl struct {
	Name    string
	Members []string
	API     APITag
}

// Feature is the require/remove diff introducing one API version.
type Feature struct {
	Name   string
	API    string
	Number string
	Blocks []OperationBlock
}

type Extension struct {
	Name string
	// Supported is a regular expression matched against the whole API name.
	Supported string
	Blocks    []OperationBlock
}

// OperationBlock is one <require> or <remove> element.
type OperationBlock struct {
	Op      OperationKind
	Profile string
	API     string
	Refs    []EntityRef
}

type EntityRef struct {
	Kind EntityKind
	// Tag is the raw element name, kept for diagnostics when Kind is empty.
	Tag  string
	Name string
}
