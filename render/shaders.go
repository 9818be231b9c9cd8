package render

import (
	"fmt"
	"os"
)

// Attribute and uniform names the shaders must declare.
const (
	AttribPosition     = "a_position"
	AttribColor        = "a_color"
	UniformMatrix      = "u_matrix"
	UniformFudgeFactor = "u_fudgeFactor"
)

// Sources is a vertex/fragment shader pair.
type Sources struct {
	Vertex   string
	Fragment string
}

const defaultVertexSource = `#version 410 core

in vec4 a_position;
in vec4 a_color;

uniform mat4 u_matrix;
uniform float u_fudgeFactor;

out vec4 v_color;

void main() {
    vec4 position = u_matrix * a_position;

    // Divide x and y by a z-dependent factor.
    float zToDivideBy = 1.0 + position.z * u_fudgeFactor;
    gl_Position = vec4(position.xyz, zToDivideBy);

    v_color = a_color;
}
`

const defaultFragmentSource = `#version 410 core

in vec4 v_color;

out vec4 outColor;

void main() {
    outColor = v_color;
}
`

// DefaultSources returns the built-in shader pair.
func DefaultSources() Sources {
	return Sources{Vertex: defaultVertexSource, Fragment: defaultFragmentSource}
}

// LoadSources reads a shader pair from disk. An empty path keeps the
// built-in source for that stage.
func LoadSources(vertexPath, fragmentPath string) (Sources, error) {
	src := DefaultSources()
	if vertexPath != "" {
		b, err := os.ReadFile(vertexPath)
		if err != nil {
			return Sources{}, fmt.Errorf("read vertex shader: %w", err)
		}
		src.Vertex = string(b)
	}
	if fragmentPath != "" {
		b, err := os.ReadFile(fragmentPath)
		if err != nil {
			return Sources{}, fmt.Errorf("read fragment shader: %w", err)
		}
		src.Fragment = string(b)
	}
	return src, nil
}
