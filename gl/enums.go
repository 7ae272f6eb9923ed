// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl

import "fmt"

// Enum is a GL enumerant: a capability, a parameter name, a binding target
// or an error code.
type Enum uint

const (
	ACTIVE_TEXTURE                   Enum = 0x84E0
	BLEND                            Enum = 0x0BE2
	BLEND_DST_RGB                    Enum = 0x80C8
	BLEND_SRC_RGB                    Enum = 0x80C9
	COLOR_BUFFER_BIT                 Enum = 0x4000
	COLOR_CLEAR_VALUE                Enum = 0x0C22
	CULL_FACE                        Enum = 0x0B44
	CURRENT_PROGRAM                  Enum = 0x8B8D
	DEPTH_BUFFER_BIT                 Enum = 0x0100
	DEPTH_TEST                       Enum = 0x0B71
	DITHER                           Enum = 0x0BD0
	INVALID_ENUM                     Enum = 0x0500
	INVALID_OPERATION                Enum = 0x0502
	INVALID_VALUE                    Enum = 0x0501
	MAX_COMBINED_TEXTURE_IMAGE_UNITS Enum = 0x8B4D
	MAX_TEXTURE_SIZE                 Enum = 0x0D33
	NO_ERROR                         Enum = 0x0
	ONE                              Enum = 0x1
	ONE_MINUS_SRC_ALPHA              Enum = 0x0303
	POLYGON_OFFSET_FILL              Enum = 0x8037
	RENDERER                         Enum = 0x1F01
	SCISSOR_BOX                      Enum = 0x0C10
	SCISSOR_TEST                     Enum = 0x0C11
	SRC_ALPHA                        Enum = 0x0302
	STENCIL_BUFFER_BIT               Enum = 0x0400
	STENCIL_TEST                     Enum = 0x0B90
	TEXTURE_2D                       Enum = 0x0DE1
	TEXTURE_2D_ARRAY                 Enum = 0x8C1A
	TEXTURE_3D                       Enum = 0x806F
	TEXTURE_BINDING_2D               Enum = 0x8069
	TEXTURE_CUBE_MAP                 Enum = 0x8513
	TEXTURE0                         Enum = 0x84C0
	TEXTURE1                         Enum = 0x84C1
	TEXTURE2                         Enum = 0x84C2
	TEXTURE3                         Enum = 0x84C3
	TRIANGLES                        Enum = 0x4
	VENDOR                           Enum = 0x1F00
	VERSION                          Enum = 0x1F02
	VIEWPORT                         Enum = 0x0BA2
	ZERO                             Enum = 0x0
)

var enumNames = map[Enum]string{
	ACTIVE_TEXTURE:                   "ACTIVE_TEXTURE",
	BLEND:                            "BLEND",
	BLEND_DST_RGB:                    "BLEND_DST_RGB",
	BLEND_SRC_RGB:                    "BLEND_SRC_RGB",
	COLOR_BUFFER_BIT:                 "COLOR_BUFFER_BIT",
	COLOR_CLEAR_VALUE:                "COLOR_CLEAR_VALUE",
	CULL_FACE:                        "CULL_FACE",
	CURRENT_PROGRAM:                  "CURRENT_PROGRAM",
	DEPTH_BUFFER_BIT:                 "DEPTH_BUFFER_BIT",
	DEPTH_TEST:                       "DEPTH_TEST",
	DITHER:                           "DITHER",
	INVALID_ENUM:                     "INVALID_ENUM",
	INVALID_OPERATION:                "INVALID_OPERATION",
	INVALID_VALUE:                    "INVALID_VALUE",
	MAX_COMBINED_TEXTURE_IMAGE_UNITS: "MAX_COMBINED_TEXTURE_IMAGE_UNITS",
	MAX_TEXTURE_SIZE:                 "MAX_TEXTURE_SIZE",
	POLYGON_OFFSET_FILL:              "POLYGON_OFFSET_FILL",
	RENDERER:                         "RENDERER",
	SCISSOR_BOX:                      "SCISSOR_BOX",
	SCISSOR_TEST:                     "SCISSOR_TEST",
	STENCIL_BUFFER_BIT:               "STENCIL_BUFFER_BIT",
	STENCIL_TEST:                     "STENCIL_TEST",
	TEXTURE_2D:                       "TEXTURE_2D",
	TEXTURE_2D_ARRAY:                 "TEXTURE_2D_ARRAY",
	TEXTURE_3D:                       "TEXTURE_3D",
	TEXTURE_BINDING_2D:               "TEXTURE_BINDING_2D",
	TEXTURE_CUBE_MAP:                 "TEXTURE_CUBE_MAP",
	TEXTURE0:                         "TEXTURE0",
	TEXTURE1:                         "TEXTURE1",
	TEXTURE2:                         "TEXTURE2",
	TEXTURE3:                         "TEXTURE3",
	VENDOR:                           "VENDOR",
	VERSION:                          "VERSION",
	VIEWPORT:                         "VIEWPORT",
}

// String returns the constant name, or the hex value for enumerants
// without a name in this package. Zero prints as NO_ERROR.
func (e Enum) String() string {
	if e == NO_ERROR {
		return "NO_ERROR"
	}
	if name, ok := enumNames[e]; ok {
		return name
	}
	return fmt.Sprintf("0x%04X", uint(e))
}
