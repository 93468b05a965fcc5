// Package graphics provides the GPU drawing API of the ggez framework:
// the graphics context with its transform/view/projection matrix stacks,
// images and offscreen canvases, a pluggable shader registry with
// per-shader blend modes, and the Drawable contract shared by images,
// canvases, meshes, text, and sprite batches.
//
// The package does not own a window. The host hands in a GPU device through
// a gpucontext.DeviceProvider and drives the clear/draw/present cycle; see
// NewContext.
//
// Matrix mutations follow an explicit two-phase protocol: mutate the stacks
// (PushTransform, SetProjectionRect, ...) and then commit with
// ApplyTransformations (or CalculateTransformMatrix followed by
// UpdateGlobals) before the next draw that depends on them. This allows
// several stack changes to be batched into a single GPU upload.
package graphics
