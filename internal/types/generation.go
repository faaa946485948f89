package types

// GenerationInfo is handed to an output generator before any entity.
type GenerationInfo struct {
	Name    string
	API     string
	Profile string
	Version Version
}

// GenerationSummary counts what was emitted.
type GenerationSummary struct {
	Types      int
	Groups     int
	Enumerants int
	Commands   int
}
