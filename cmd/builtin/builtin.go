// Package builtin provides the standard commands of the flatvfs shell.
package builtin

import (
	"github.com/mwantia/flatvfs/cmd"
	"github.com/mwantia/flatvfs/log"
)

// Commands returns a fresh instance of every builtin command.
func Commands(logger *log.Logger) []cmd.Command {
	if logger == nil {
		logger = log.Nop()
	}

	return []cmd.Command{
		&LsCommand{},
		&CatCommand{},
		&RmCommand{},
		&MvCommand{},
		&CpCommand{},
		&StatCommand{},
		&SaveCommand{log: logger},
		&LoadCommand{log: logger},
	}
}

// Register adds every builtin command to cm.
func Register(cm *cmd.CommandManager, logger *log.Logger) error {
	for _, c := range Commands(logger) {
		if err := cm.Register(c); err != nil {
			return err
		}
	}

	return nil
}

var (
	recursiveFlag = &cmd.CommandFlag{
		Name:        "recursive",
		Short:       "r",
		Type:        "bool",
		Description: "Include subdirectories",
	}
	forceFlag = &cmd.CommandFlag{
		Name:        "force",
		Short:       "f",
		Type:        "bool",
		Description: "Overwrite existing files",
	}
)
