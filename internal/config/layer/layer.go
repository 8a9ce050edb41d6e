// Package layer merges configuration maps from several sources by
// priority. Higher priority layers override values from lower ones.
package layer

// Layer represents a single configuration layer.
type Layer struct {
	// Name identifies the layer (e.g., "defaults", "user").
	Name string

	// Priority determines merge order (higher overrides lower).
	Priority int

	// Source indicates where this layer was loaded from.
	Source Source

	// Path is the file path (if loaded from file).
	Path string

	// Data holds the configuration values as a nested map.
	Data map[string]any
}

// New creates a layer for source with its standard name and priority.
func New(source Source, data map[string]any) *Layer {
	if data == nil {
		data = make(map[string]any)
	}
	return &Layer{
		Name:     source.String(),
		Source:   source,
		Priority: source.Priority(),
		Data:     data,
	}
}

// Source indicates where a configuration layer came from.
type Source uint8

const (
	// SourceBuiltin represents built-in default configuration.
	SourceBuiltin Source = iota
	// SourceUser represents the user's config file.
	SourceUser
	// SourceEnv represents environment variables.
	SourceEnv
	// SourceArgs represents command-line flags.
	SourceArgs
)

// String returns the standard layer name for the source.
func (s Source) String() string {
	switch s {
	case SourceBuiltin:
		return "defaults"
	case SourceUser:
		return "user"
	case SourceEnv:
		return "environment"
	case SourceArgs:
		return "arguments"
	default:
		return "unknown"
	}
}

// Priority returns the standard merge priority for the source.
func (s Source) Priority() int {
	switch s {
	case SourceUser:
		return 100
	case SourceEnv:
		return 500
	case SourceArgs:
		return 600
	default:
		return 0
	}
}
