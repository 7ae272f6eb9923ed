// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"time"

	"github.com/gogpu/glmirror/gl"
)

// Option configures a Recorder.
type Option func(*Recorder)

// WithQueryLatency makes every state read (GetParameter, IsEnabled) sleep
// for d before forwarding, modelling the synchronous round trip a browser
// or remote driver pays for a query.
func WithQueryLatency(d time.Duration) Option {
	return func(r *Recorder) {
		r.latency = d
	}
}

// WithoutLog keeps per-type counts but does not retain commands. Use it
// for long runs where only the totals matter.
func WithoutLog() Option {
	return func(r *Recorder) {
		r.noLog = true
	}
}

// Recorder is a gl.Context that forwards every call to an inner context
// and records it as a Command.
//
// Example:
//
//	rec := recording.New(glsoft.New(800, 600))
//	rec.Enable(gl.BLEND)
//	rec.Count(recording.CmdEnable) // 1
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	inner    gl.Context
	commands []Command
	counts   [numCommandTypes]int
	latency  time.Duration
	noLog    bool
}

var _ gl.Context = (*Recorder)(nil)

// New creates a Recorder in front of inner.
func New(inner gl.Context, opts ...Option) *Recorder {
	r := &Recorder{
		inner:    inner,
		commands: make([]Command, 0, 256),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Recorder) record(t CommandType, args ...any) {
	r.counts[t]++
	if r.noLog {
		return
	}
	r.commands = append(r.commands, Command{Type: t, Args: args})
}

func (r *Recorder) wait() {
	if r.latency > 0 {
		time.Sleep(r.latency)
	}
}

// Inner returns the context the recorder forwards to.
func (r *Recorder) Inner() gl.Context {
	return r.inner
}

// Commands returns the recorded commands in call order.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Count returns how many calls of type t were recorded since the last Reset.
func (r *Recorder) Count(t CommandType) int {
	if int(t) >= len(r.counts) {
		return 0
	}
	return r.counts[t]
}

// Queries returns the number of recorded state reads.
func (r *Recorder) Queries() int {
	n := 0
	for t, c := range r.counts {
		if CommandType(t).IsQuery() {
			n += c
		}
	}
	return n
}

// Reset discards recorded commands and counts.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.counts = [numCommandTypes]int{}
}

func (r *Recorder) ActiveTexture(unit gl.Enum) {
	r.record(CmdActiveTexture, unit)
	r.inner.ActiveTexture(unit)
}

func (r *Recorder) BindTexture(target gl.Enum, t gl.Texture) {
	r.record(CmdBindTexture, target, t)
	r.inner.BindTexture(target, t)
}

func (r *Recorder) UseProgram(p gl.Program) {
	r.record(CmdUseProgram, p)
	r.inner.UseProgram(p)
}

func (r *Recorder) Enable(capability gl.Enum) {
	r.record(CmdEnable, capability)
	r.inner.Enable(capability)
}

func (r *Recorder) Disable(capability gl.Enum) {
	r.record(CmdDisable, capability)
	r.inner.Disable(capability)
}

func (r *Recorder) IsEnabled(capability gl.Enum) bool {
	r.record(CmdIsEnabled, capability)
	r.wait()
	return r.inner.IsEnabled(capability)
}

func (r *Recorder) GetParameter(pname gl.Enum) any {
	r.record(CmdGetParameter, pname)
	r.wait()
	return r.inner.GetParameter(pname)
}

func (r *Recorder) GetError() gl.Enum {
	r.record(CmdGetError)
	return r.inner.GetError()
}

func (r *Recorder) CreateTexture() gl.Texture {
	r.record(CmdCreateTexture)
	return r.inner.CreateTexture()
}

func (r *Recorder) DeleteTexture(t gl.Texture) {
	r.record(CmdDeleteTexture, t)
	r.inner.DeleteTexture(t)
}

func (r *Recorder) CreateProgram() gl.Program {
	r.record(CmdCreateProgram)
	return r.inner.CreateProgram()
}

func (r *Recorder) DeleteProgram(p gl.Program) {
	r.record(CmdDeleteProgram, p)
	r.inner.DeleteProgram(p)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record(CmdClearColor, red, green, blue, alpha)
	r.inner.ClearColor(red, green, blue, alpha)
}

func (r *Recorder) Clear(mask gl.Enum) {
	r.record(CmdClear, mask)
	r.inner.Clear(mask)
}

func (r *Recorder) Scissor(x, y, width, height int) {
	r.record(CmdScissor, x, y, width, height)
	r.inner.Scissor(x, y, width, height)
}

func (r *Recorder) Viewport(x, y, width, height int) {
	r.record(CmdViewport, x, y, width, height)
	r.inner.Viewport(x, y, width, height)
}

func (r *Recorder) BlendFunc(sfactor, dfactor gl.Enum) {
	r.record(CmdBlendFunc, sfactor, dfactor)
	r.inner.BlendFunc(sfactor, dfactor)
}

func (r *Recorder) DrawArrays(mode gl.Enum, first, count int) {
	r.record(CmdDrawArrays, mode, first, count)
	r.inner.DrawArrays(mode, first, count)
}

// Resize forwards to the inner context when it can resize its drawing
// buffer. It is not recorded.
func (r *Recorder) Resize(width, height int) {
	if s, ok := r.inner.(interface{ Resize(width, height int) }); ok {
		s.Resize(width, height)
	}
}
