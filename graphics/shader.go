package graphics

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/ggez-dev/ggez"
	"github.com/ggez-dev/ggez/internal/gpuutil"
)

//go:embed shaders/quad.wgsl
var quadShaderSource string

// ShaderID identifies a registered shader. The zero value is the built-in
// default quad shader.
type ShaderID int

// DefaultShader is the built-in textured-quad shader.
const DefaultShader ShaderID = 0

// shaderEntry is one registered shader: its compiled module, the blend mode
// currently associated with it, and the render pipelines built from it.
// Blend state is baked into pipelines, so each (shader, blend mode) pair
// gets its own pipeline, built lazily on first use and cached for the
// lifetime of the context.
type shaderEntry struct {
	label     string
	module    hal.ShaderModule
	blend     BlendMode
	pipelines map[BlendMode]hal.RenderPipeline
}

// quadVertexLayout describes the vertex buffer consumed by every shader:
// interleaved position and uv, two float32x2 attributes per vertex.
func quadVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{{
		ArrayStride: 16,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
		},
	}}
}

// newShaderEntry compiles WGSL source and prepares an entry with no
// pipelines built yet.
func newShaderEntry(device hal.Device, label, source string, blend BlendMode) (*shaderEntry, error) {
	module, err := gpuutil.CreateShaderModule(device, label, source)
	if err != nil {
		return nil, fmt.Errorf("%w: shader %s: %v", ggez.ErrRender, label, err)
	}
	return &shaderEntry{
		label:     label,
		module:    module,
		blend:     blend,
		pipelines: make(map[BlendMode]hal.RenderPipeline),
	}, nil
}

// ensurePipeline returns the pipeline for the entry's shader and the given
// blend mode, building it on first use.
func (e *shaderEntry) ensurePipeline(device hal.Device, layout hal.PipelineLayout, format gputypes.TextureFormat, blend BlendMode) (hal.RenderPipeline, error) {
	if p, ok := e.pipelines[blend]; ok {
		return p, nil
	}
	blendState := blend.blendState()
	pipeline, err := device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  fmt.Sprintf("%s_%s", e.label, blend),
		Layout: layout,
		Vertex: hal.VertexState{
			Module:     e.module,
			EntryPoint: "vs_main",
			Buffers:    quadVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     e.module,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{{
				Format:    format,
				Blend:     &blendState,
				WriteMask: gputypes.ColorWriteMaskAll,
			}},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: pipeline %s/%s: %v", ggez.ErrRender, e.label, blend, err)
	}
	e.pipelines[blend] = pipeline
	return pipeline, nil
}

// destroy releases the entry's module and pipelines.
func (e *shaderEntry) destroy(device hal.Device) {
	for mode, p := range e.pipelines {
		device.DestroyRenderPipeline(p)
		delete(e.pipelines, mode)
	}
	if e.module != nil {
		device.DestroyShaderModule(e.module)
		e.module = nil
	}
}
