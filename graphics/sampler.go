package graphics

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/ggez-dev/ggez"
)

// FilterMode selects texture magnification/minification filtering.
type FilterMode int

const (
	// FilterLinear is bilinear filtering, the default.
	FilterLinear FilterMode = iota

	// FilterNearest is nearest-neighbor filtering.
	FilterNearest
)

// WrapMode selects how texture coordinates outside [0, 1] are resolved.
type WrapMode int

const (
	// WrapClamp clamps coordinates to the edge, the default.
	WrapClamp WrapMode = iota

	// WrapRepeat tiles the texture.
	WrapRepeat

	// WrapMirror tiles the texture with alternating reflections.
	WrapMirror
)

// SamplerSpec describes a sampler configuration: filter mode plus per-axis
// wrap modes. Equal specs resolve to the same GPU sampler through the
// sampler cache.
type SamplerSpec struct {
	Filter FilterMode
	WrapX  WrapMode
	WrapY  WrapMode
}

// defaultSamplerSpec is bilinear filtering with clamp-to-edge wrapping.
func defaultSamplerSpec() SamplerSpec {
	return SamplerSpec{Filter: FilterLinear, WrapX: WrapClamp, WrapY: WrapClamp}
}

func (s SamplerSpec) filterMode() gputypes.FilterMode {
	if s.Filter == FilterNearest {
		return gputypes.FilterModeNearest
	}
	return gputypes.FilterModeLinear
}

func wrapAddressMode(w WrapMode) gputypes.AddressMode {
	switch w {
	case WrapRepeat:
		return gputypes.AddressModeRepeat
	case WrapMirror:
		return gputypes.AddressModeMirrorRepeat
	default:
		return gputypes.AddressModeClampToEdge
	}
}

// descriptor expands the spec into a hal sampler descriptor.
func (s SamplerSpec) descriptor(label string) *hal.SamplerDescriptor {
	return &hal.SamplerDescriptor{
		Label:        label,
		AddressModeU: wrapAddressMode(s.WrapX),
		AddressModeV: wrapAddressMode(s.WrapY),
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    s.filterMode(),
		MinFilter:    s.filterMode(),
		MipmapFilter: s.filterMode(),
	}
}

// SamplerCache deduplicates GPU samplers by spec. Samplers are created
// lazily on first use and live for the lifetime of the context; the spec
// space is small (filter x wrap combinations), so there is no eviction.
type SamplerCache struct {
	samplers map[SamplerSpec]hal.Sampler
}

// newSamplerCache creates an empty sampler cache.
func newSamplerCache() *SamplerCache {
	return &SamplerCache{samplers: make(map[SamplerSpec]hal.Sampler)}
}

// GetOrInsert returns the sampler for the spec, creating it on first use.
// It is idempotent: equal specs return the same handle.
func (c *SamplerCache) GetOrInsert(device hal.Device, spec SamplerSpec) (hal.Sampler, error) {
	if s, ok := c.samplers[spec]; ok {
		return s, nil
	}
	s, err := device.CreateSampler(spec.descriptor("sampler_cache"))
	if err != nil {
		return nil, fmt.Errorf("%w: create sampler %+v: %v", ggez.ErrRender, spec, err)
	}
	c.samplers[spec] = s
	return s, nil
}

// Len returns the number of cached samplers.
func (c *SamplerCache) Len() int {
	return len(c.samplers)
}

// destroy releases all cached samplers.
func (c *SamplerCache) destroy(device hal.Device) {
	for spec, s := range c.samplers {
		device.DestroySampler(s)
		delete(c.samplers, spec)
	}
}
