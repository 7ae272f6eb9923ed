// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"testing"

	"github.com/gogpu/glmirror/gl"
)

func TestCommandType_String(t *testing.T) {
	tests := []struct {
		cmd  CommandType
		want string
	}{
		{CmdActiveTexture, "ActiveTexture"},
		{CmdGetParameter, "GetParameter"},
		{CmdDrawArrays, "DrawArrays"},
		{CommandType(255), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.cmd.String(); got != tt.want {
				t.Errorf("CommandType(%d).String() = %q, want %q", int(tt.cmd), got, tt.want)
			}
		})
	}
}

func TestCommandTypeNamesComplete(t *testing.T) {
	for c := CommandType(0); c < numCommandTypes; c++ {
		if c.String() == "" {
			t.Errorf("CommandType(%d) has no name", int(c))
		}
	}
}

func TestCommandType_IsQuery(t *testing.T) {
	for _, c := range []CommandType{CmdIsEnabled, CmdGetParameter, CmdGetError} {
		if !c.IsQuery() {
			t.Errorf("%v.IsQuery() = false, want true", c)
		}
	}
	for _, c := range []CommandType{CmdEnable, CmdBindTexture, CmdClear} {
		if c.IsQuery() {
			t.Errorf("%v.IsQuery() = true, want false", c)
		}
	}
}

func TestCommand_String(t *testing.T) {
	c := Command{Type: CmdBindTexture, Args: []any{gl.Enum(gl.TEXTURE_2D), gl.Texture{V: 3}}}
	if got, want := c.String(), "BindTexture(TEXTURE_2D, {3})"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
