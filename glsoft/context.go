// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glsoft

import (
	"image"
	"image/color"

	"github.com/gogpu/glmirror/gl"
	"golang.org/x/image/draw"
)

const (
	// MaxTextureUnits is the number of texture units the context exposes.
	MaxTextureUnits = 16

	// MaxTextureSize is the value reported for MAX_TEXTURE_SIZE.
	MaxTextureSize = 4096

	version  = "WebGL 2.0 (glsoft)"
	vendor   = "gogpu"
	renderer = "glsoft"
)

// Context is a software implementation of gl.Context that keeps every
// piece of state it is asked about, so its GetParameter answers are the
// ground truth that cached answers can be compared against.
//
// Context is not safe for concurrent use.
type Context struct {
	fb *image.RGBA

	nextName uint
	textures map[uint]bool
	programs map[uint]bool

	activeUnit gl.Enum
	bindings   map[binding]gl.Texture
	program    gl.Program
	caps       map[gl.Enum]bool

	clearColor [4]float32
	viewport   [4]int
	scissor    [4]int
	blendSrc   gl.Enum
	blendDst   gl.Enum

	errs  []gl.Enum
	draws int
}

type binding struct {
	unit   gl.Enum
	target gl.Enum
}

var _ gl.Context = (*Context)(nil)

// New creates a context with a width x height default framebuffer and the
// initial state GL specifies: TEXTURE0 active, no program, every capability
// off except DITHER, viewport and scissor box covering the framebuffer.
func New(width, height int) *Context {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Context{
		fb:         image.NewRGBA(image.Rect(0, 0, width, height)),
		textures:   make(map[uint]bool),
		programs:   make(map[uint]bool),
		activeUnit: gl.TEXTURE0,
		bindings:   make(map[binding]gl.Texture),
		caps: map[gl.Enum]bool{
			gl.BLEND:               false,
			gl.CULL_FACE:           false,
			gl.DEPTH_TEST:          false,
			gl.DITHER:              true,
			gl.POLYGON_OFFSET_FILL: false,
			gl.SCISSOR_TEST:        false,
			gl.STENCIL_TEST:        false,
		},
		viewport: [4]int{0, 0, width, height},
		scissor:  [4]int{0, 0, width, height},
		blendSrc: gl.ONE,
		blendDst: gl.ZERO,
	}
}

func (c *Context) setError(code gl.Enum) {
	c.errs = append(c.errs, code)
}

func (c *Context) ActiveTexture(unit gl.Enum) {
	if unit < gl.TEXTURE0 || unit >= gl.TEXTURE0+MaxTextureUnits {
		c.setError(gl.INVALID_ENUM)
		return
	}
	c.activeUnit = unit
}

func (c *Context) BindTexture(target gl.Enum, t gl.Texture) {
	switch target {
	case gl.TEXTURE_2D, gl.TEXTURE_3D, gl.TEXTURE_2D_ARRAY, gl.TEXTURE_CUBE_MAP:
	default:
		c.setError(gl.INVALID_ENUM)
		return
	}
	if t.Valid() && !c.textures[t.V] {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	c.bindings[binding{unit: c.activeUnit, target: target}] = t
}

func (c *Context) UseProgram(p gl.Program) {
	if p.Valid() && !c.programs[p.V] {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	c.program = p
}

func (c *Context) Enable(capability gl.Enum) {
	c.setCap(capability, true)
}

func (c *Context) Disable(capability gl.Enum) {
	c.setCap(capability, false)
}

func (c *Context) setCap(capability gl.Enum, on bool) {
	if _, ok := c.caps[capability]; !ok {
		c.setError(gl.INVALID_ENUM)
		return
	}
	c.caps[capability] = on
}

func (c *Context) IsEnabled(capability gl.Enum) bool {
	on, ok := c.caps[capability]
	if !ok {
		c.setError(gl.INVALID_ENUM)
	}
	return on
}

func (c *Context) GetParameter(pname gl.Enum) any {
	if on, ok := c.caps[pname]; ok {
		return on
	}
	switch pname {
	case gl.ACTIVE_TEXTURE:
		return c.activeUnit
	case gl.CURRENT_PROGRAM:
		return c.program
	case gl.TEXTURE_BINDING_2D:
		return c.bindings[binding{unit: c.activeUnit, target: gl.TEXTURE_2D}]
	case gl.VIEWPORT:
		return c.viewport
	case gl.SCISSOR_BOX:
		return c.scissor
	case gl.COLOR_CLEAR_VALUE:
		return c.clearColor
	case gl.BLEND_SRC_RGB:
		return c.blendSrc
	case gl.BLEND_DST_RGB:
		return c.blendDst
	case gl.MAX_TEXTURE_SIZE:
		return MaxTextureSize
	case gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS:
		return MaxTextureUnits
	case gl.VERSION:
		return version
	case gl.VENDOR:
		return vendor
	case gl.RENDERER:
		return renderer
	}
	c.setError(gl.INVALID_ENUM)
	return nil
}

func (c *Context) CreateTexture() gl.Texture {
	c.nextName++
	c.textures[c.nextName] = true
	return gl.Texture{V: c.nextName}
}

// DeleteTexture deletes t and unbinds it from every unit it is bound to.
func (c *Context) DeleteTexture(t gl.Texture) {
	if !c.textures[t.V] {
		return
	}
	delete(c.textures, t.V)
	for b, bound := range c.bindings {
		if bound.Equal(t) {
			delete(c.bindings, b)
		}
	}
}

func (c *Context) CreateProgram() gl.Program {
	c.nextName++
	c.programs[c.nextName] = true
	return gl.Program{V: c.nextName}
}

// DeleteProgram deletes p. A program that is in use stays current until
// another UseProgram call replaces it.
func (c *Context) DeleteProgram(p gl.Program) {
	delete(c.programs, p.V)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.clearColor = [4]float32{clamp01(r), clamp01(g), clamp01(b), clamp01(a)}
}

// Clear fills the color buffer with the clear color when mask includes
// COLOR_BUFFER_BIT. With SCISSOR_TEST enabled only the scissor box is
// cleared.
func (c *Context) Clear(mask gl.Enum) {
	if mask&^(gl.COLOR_BUFFER_BIT|gl.DEPTH_BUFFER_BIT|gl.STENCIL_BUFFER_BIT) != 0 {
		c.setError(gl.INVALID_VALUE)
		return
	}
	if mask&gl.COLOR_BUFFER_BIT == 0 {
		return
	}
	r := c.fb.Bounds()
	if c.caps[gl.SCISSOR_TEST] {
		r = r.Intersect(c.glRect(c.scissor))
	}
	col := color.RGBA{
		R: uint8(c.clearColor[0]*255 + 0.5),
		G: uint8(c.clearColor[1]*255 + 0.5),
		B: uint8(c.clearColor[2]*255 + 0.5),
		A: uint8(c.clearColor[3]*255 + 0.5),
	}
	draw.Draw(c.fb, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// glRect converts a bottom-left origin box to image coordinates.
func (c *Context) glRect(box [4]int) image.Rectangle {
	h := c.fb.Bounds().Dy()
	return image.Rect(box[0], h-box[1]-box[3], box[0]+box[2], h-box[1])
}

func (c *Context) Scissor(x, y, width, height int) {
	if width < 0 || height < 0 {
		c.setError(gl.INVALID_VALUE)
		return
	}
	c.scissor = [4]int{x, y, width, height}
}

func (c *Context) Viewport(x, y, width, height int) {
	if width < 0 || height < 0 {
		c.setError(gl.INVALID_VALUE)
		return
	}
	c.viewport = [4]int{x, y, width, height}
}

func (c *Context) BlendFunc(sfactor, dfactor gl.Enum) {
	c.blendSrc = sfactor
	c.blendDst = dfactor
}

// DrawArrays validates the call and counts it. Geometry is not rasterized.
func (c *Context) DrawArrays(mode gl.Enum, first, count int) {
	if first < 0 || count < 0 {
		c.setError(gl.INVALID_VALUE)
		return
	}
	if !c.program.Valid() {
		c.setError(gl.INVALID_OPERATION)
		return
	}
	c.draws++
}

func (c *Context) GetError() gl.Enum {
	if len(c.errs) == 0 {
		return gl.NO_ERROR
	}
	code := c.errs[0]
	c.errs = c.errs[1:]
	return code
}

// Draws returns the number of accepted DrawArrays calls.
func (c *Context) Draws() int {
	return c.draws
}

// Image returns a copy of the color buffer.
func (c *Context) Image() *image.RGBA {
	img := image.NewRGBA(c.fb.Bounds())
	copy(img.Pix, c.fb.Pix)
	return img
}

// Resize replaces the framebuffer. Contents are discarded; viewport and
// scissor box are left for the caller to update, as in GL.
func (c *Context) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c.fb = image.NewRGBA(image.Rect(0, 0, width, height))
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
