package graphics

import "github.com/gogpu/gputypes"

// BlendMode selects the pixel-combination function used when a fragment is
// written to the render target. The blend mode is a property of the active
// shader: switching shaders can implicitly switch blend mode, so callers
// needing continuity must save and restore around shader changes.
type BlendMode int

const (
	// BlendAlpha is standard alpha blending, the default.
	BlendAlpha BlendMode = iota

	// BlendAdd adds source to destination.
	BlendAdd

	// BlendSubtract subtracts source from destination.
	BlendSubtract

	// BlendInvert inverts the destination where the source is opaque.
	BlendInvert

	// BlendMultiply multiplies source and destination.
	BlendMultiply

	// BlendReplace overwrites the destination with the source.
	BlendReplace

	// BlendLighten keeps the per-channel maximum.
	BlendLighten

	// BlendDarken keeps the per-channel minimum.
	BlendDarken

	numBlendModes int = iota
)

func (m BlendMode) String() string {
	switch m {
	case BlendAlpha:
		return "Alpha"
	case BlendAdd:
		return "Add"
	case BlendSubtract:
		return "Subtract"
	case BlendInvert:
		return "Invert"
	case BlendMultiply:
		return "Multiply"
	case BlendReplace:
		return "Replace"
	case BlendLighten:
		return "Lighten"
	case BlendDarken:
		return "Darken"
	}
	return "Unknown"
}

func (m BlendMode) valid() bool {
	return m >= BlendAlpha && m < BlendMode(numBlendModes)
}

// blendState maps the mode onto the GPU blend equation used when building
// the render pipeline for a (shader, blend mode) pair.
func (m BlendMode) blendState() gputypes.BlendState {
	switch m {
	case BlendAdd:
		return gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationAdd,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationAdd,
			},
		}
	case BlendSubtract:
		return gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationReverseSubtract,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorZero,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationAdd,
			},
		}
	case BlendInvert:
		return gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOneMinusDst,
				DstFactor: gputypes.BlendFactorZero,
				Operation: gputypes.BlendOperationAdd,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorZero,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationAdd,
			},
		}
	case BlendMultiply:
		return gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorDst,
				DstFactor: gputypes.BlendFactorZero,
				Operation: gputypes.BlendOperationAdd,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorDstAlpha,
				DstFactor: gputypes.BlendFactorZero,
				Operation: gputypes.BlendOperationAdd,
			},
		}
	case BlendReplace:
		return gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorZero,
				Operation: gputypes.BlendOperationAdd,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorZero,
				Operation: gputypes.BlendOperationAdd,
			},
		}
	case BlendLighten:
		return gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationMax,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationMax,
			},
		}
	case BlendDarken:
		return gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationMin,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationMin,
			},
		}
	default: // BlendAlpha
		return gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorSrcAlpha,
				DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
				Operation: gputypes.BlendOperationAdd,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
				Operation: gputypes.BlendOperationAdd,
			},
		}
	}
}
