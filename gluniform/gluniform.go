// Package gluniform uploads pxlmath values to the uniforms of a linked
// OpenGL program.
//
// The caller owns the GL context and the program; gl.Init must have been
// called on the current thread. Matrices are sent with transpose set because
// pxlmath.Mat4 is stored row-major.
package gluniform

import (
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"

	"pxlmath"
)

// Program caches the uniform locations of one shader program.
type Program struct {
	id        uint32
	locations map[string]int32
	locate    func(program uint32, name string) int32
}

// New wraps a linked program.
func New(program uint32) *Program {
	return &Program{
		id:        program,
		locations: make(map[string]int32),
		locate:    glLocate,
	}
}

func glLocate(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(cstr(name)))
}

func cstr(name string) string {
	if strings.HasSuffix(name, "\x00") {
		return name
	}
	return name + "\x00"
}

// ID returns the GL program name.
func (p *Program) ID() uint32 { return p.id }

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Location returns the location of the named uniform, or -1 when the program
// has no such active uniform. Lookups are cached, so a missing uniform is
// reported once.
func (p *Program) Location(name string) int32 {
	name = strings.TrimSuffix(name, "\x00")
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := p.locate(p.id, name)
	p.locations[name] = loc
	if loc < 0 {
		pxlmath.Logger().Warn("gluniform: uniform not found", "program", p.id, "name", name)
	}
	return loc
}

// Each setter targets the program that is current; uniforms that do not
// exist are skipped.

func (p *Program) SetFloat(name string, v float32) {
	if loc := p.Location(name); loc >= 0 {
		gl.Uniform1f(loc, v)
	}
}

func (p *Program) SetVec2(name string, v pxlmath.Vec2) {
	if loc := p.Location(name); loc >= 0 {
		gl.Uniform2f(loc, v.X, v.Y)
	}
}

func (p *Program) SetVec3(name string, v pxlmath.Vec3) {
	if loc := p.Location(name); loc >= 0 {
		gl.Uniform3f(loc, v.X, v.Y, v.Z)
	}
}

func (p *Program) SetVec4(name string, v pxlmath.Vec4) {
	if loc := p.Location(name); loc >= 0 {
		gl.Uniform4f(loc, v.X, v.Y, v.Z, v.W)
	}
}

// SetQuat uploads q as a vec4 (x, y, z, w).
func (p *Program) SetQuat(name string, q pxlmath.Quat) {
	if loc := p.Location(name); loc >= 0 {
		gl.Uniform4f(loc, q.X, q.Y, q.Z, q.W)
	}
}

// SetMat4 uploads m so that the shader sees the same matrix Mat4.Mul works
// with.
func (p *Program) SetMat4(name string, m pxlmath.Mat4) {
	if loc := p.Location(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, true, &m[0])
	}
}
