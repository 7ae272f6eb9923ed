// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl

// Object is a GL object name. Name zero means "no object", so the zero
// value of every handle type is the unbound handle.
type Object struct{ V uint }

type (
	Program Object
	Texture Object
)

func (o Object) valid() bool {
	return o.V != 0
}

func (o Object) equal(o2 Object) bool {
	return o == o2
}

func (p Program) Valid() bool {
	return Object(p).valid()
}

func (p Program) Equal(p2 Program) bool {
	return Object(p).equal(Object(p2))
}

func (t Texture) Valid() bool {
	return Object(t).valid()
}

func (t Texture) Equal(t2 Texture) bool {
	return Object(t).equal(Object(t2))
}
