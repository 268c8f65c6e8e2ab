package ui

import "github.com/mitchellh/mapstructure"

// Command types emitted by the UI toward the application loop.
const (
	CommandAddFile      = "add_file"
	CommandAddFolder    = "add_folder"
	CommandListTargets  = "list_targets"
	CommandClearTargets = "clear_targets"
	CommandStart        = "start"
	CommandStop         = "stop"
)

// Command is a user action parsed from the input line.
// Args carries the raw string arguments; handlers decode them into typed
// structs via DecodeArgs.
type Command struct {
	Type string
	Args map[string]string
}

// DecodeArgs decodes the raw argument map into a typed struct using
// mapstructure tags.
func (c Command) DecodeArgs(out any) error {
	return mapstructure.Decode(c.Args, out)
}

// AddTargetArgs is the argument set for add_file and add_folder.
type AddTargetArgs struct {
	Path string `mapstructure:"path"`
}
