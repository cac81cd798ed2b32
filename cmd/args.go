package cmd

// CommandArgs contains parsed command arguments
type CommandArgs struct {
	// Positional arguments (command-specific)
	Args []string

	// Parsed flags
	Flags map[string]any

	// Raw unparsed arguments (for custom parsing)
	Raw []string
}

// Bool returns the value of a bool flag, or false if it is unset.
func (ca *CommandArgs) Bool(name string) bool {
	v, _ := ca.Flags[name].(bool)
	return v
}

// String returns the value of a string flag, or fallback if it is unset.
func (ca *CommandArgs) String(name, fallback string) string {
	if v, ok := ca.Flags[name].(string); ok {
		return v
	}
	return fallback
}

// Int returns the value of an int flag, or fallback if it is unset.
func (ca *CommandArgs) Int(name string, fallback int64) int64 {
	if v, ok := ca.Flags[name].(int64); ok {
		return v
	}
	return fallback
}

// Arg returns the positional argument at index, or fallback if there is none.
func (ca *CommandArgs) Arg(index int, fallback string) string {
	if index < len(ca.Args) {
		return ca.Args[index]
	}
	return fallback
}

// CommandFlagSet defines the expected flags for a command
type CommandFlagSet struct {
	Flags map[string]*CommandFlag
}

// CommandFlag represents a single command-line flag
type CommandFlag struct {
	Name        string `json:"name"`              // e.g., "recursive"
	Short       string `json:"short"`             // Single-char shorthand (e.g., "r")
	Type        string `json:"type"`              // "string", "bool", "int"
	Default     any    `json:"default,omitempty"` // Default value
	Required    bool   `json:"required"`          // Must be provided
	Description string `json:"description"`       // Help text
}

// NewFlagSet builds a flag set keyed by each flag's long name.
func NewFlagSet(flags ...*CommandFlag) *CommandFlagSet {
	set := &CommandFlagSet{
		Flags: make(map[string]*CommandFlag, len(flags)),
	}
	for _, flag := range flags {
		set.Flags[flag.Name] = flag
	}

	return set
}
