package config

// Args is the list of positional arguments passed to the executed command.
type Args []string
