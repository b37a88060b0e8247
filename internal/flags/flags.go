// File: internal/flags/flags.go
package flags

// Centralized definitions for CLI flags used across the application

const (
	// Provider flags select the media provider an operation targets
	Provider      = "provider"
	ProviderShort = "p"

	// Folder flags set the remote folder (or key prefix) uploads land in
	Folder = "folder"

	// Tag flags attach tags to uploaded assets; repeatable
	Tag      = "tag"
	TagShort = "t"

	// Timeout flags bound each individual upload. Zero disables the limit
	Timeout = "timeout"

	// Output flags select the report format
	Output      = "output"
	OutputShort = "o"

	// NoColor flags disable styled status output even on a terminal
	NoColor = "no-color"

	ResourceType = "resource-type"

	// Check flags make the providers command ping every configured provider
	Check = "check"

	// Force flags are used to bypass interactive confirmation prompts for destructive operations
	Force      = "force"
	ForceShort = "f"

	// Debug flags are used to enable verbose logging
	Debug      = "debug"
	DebugShort = "d"
)
