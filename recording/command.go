// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"fmt"
	"strings"
)

// CommandType identifies the gl.Context method a command was recorded for.
type CommandType uint8

const (
	// State writes
	CmdActiveTexture CommandType = iota
	CmdBindTexture
	CmdUseProgram
	CmdEnable
	CmdDisable

	// State reads
	CmdIsEnabled
	CmdGetParameter
	CmdGetError

	// Objects
	CmdCreateTexture
	CmdDeleteTexture
	CmdCreateProgram
	CmdDeleteProgram

	// Drawing
	CmdClearColor
	CmdClear
	CmdScissor
	CmdViewport
	CmdBlendFunc
	CmdDrawArrays

	numCommandTypes
)

// commandTypeNames maps CommandType values to the gl.Context method name.
var commandTypeNames = [...]string{
	CmdActiveTexture: "ActiveTexture",
	CmdBindTexture:   "BindTexture",
	CmdUseProgram:    "UseProgram",
	CmdEnable:        "Enable",
	CmdDisable:       "Disable",
	CmdIsEnabled:     "IsEnabled",
	CmdGetParameter:  "GetParameter",
	CmdGetError:      "GetError",
	CmdCreateTexture: "CreateTexture",
	CmdDeleteTexture: "DeleteTexture",
	CmdCreateProgram: "CreateProgram",
	CmdDeleteProgram: "DeleteProgram",
	CmdClearColor:    "ClearColor",
	CmdClear:         "Clear",
	CmdScissor:       "Scissor",
	CmdViewport:      "Viewport",
	CmdBlendFunc:     "BlendFunc",
	CmdDrawArrays:    "DrawArrays",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// IsQuery reports whether the command reads state back from the context.
// These are the calls that cost a round trip on a remote implementation.
func (c CommandType) IsQuery() bool {
	switch c {
	case CmdIsEnabled, CmdGetParameter, CmdGetError:
		return true
	}
	return false
}

// Command is one recorded call with its arguments in call order.
type Command struct {
	Type CommandType
	Args []any
}

// String formats the command as a call expression, e.g. "Enable(BLEND)".
func (c Command) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return c.Type.String() + "(" + strings.Join(args, ", ") + ")"
}
