package types

// TypeInfo describes an API type such as GLuint.
type TypeInfo struct {
	Name string
	// Declaration is legal C text declaring the type.
	Declaration string
	// Requires names another type that must be declared first.
	Requires string
	API      APITag
	Line     int
}

// EnumerantInfo describes a named constant such as GL_TEXTURE_2D.
type EnumerantInfo struct {
	Name   string
	Alias  string
	Value  string
	Suffix string
	API    APITag
}

// GroupInfo is a named collection of enumerants, resolved for one API.
type GroupInfo struct {
	Name  string
	Enums []EnumerantInfo
	API   APITag
}

type ParamInfo struct {
	Name string
	// CType is the full C type, e.g. "const GLfloat *".
	CType string
	// ReferencedType is the API type named inside CType, empty for plain C types.
	ReferencedType string
	Group          string
	Len            string
}

// CommandInfo describes an entry point such as glBindTexture.
type CommandInfo struct {
	Name string
	// Prototype is the C prototype up to and including the function name.
	Prototype      string
	ReturnCType    string
	ReferencedType string
	Params         []ParamInfo
	Alias          string
	VecEquiv       string
	API            APITag
	Line           int
}
