// Package all imports all shell commands.
package all

import (
	_ "github.com/robotalks/phone.go/pkg/cli/cmds/phone"
)
