package graphics

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestDefaultSamplerSpec(t *testing.T) {
	spec := defaultSamplerSpec()
	if spec.Filter != FilterLinear || spec.WrapX != WrapClamp || spec.WrapY != WrapClamp {
		t.Errorf("got %+v", spec)
	}
}

func TestWrapAddressMode(t *testing.T) {
	cases := []struct {
		in   WrapMode
		want gputypes.AddressMode
	}{
		{WrapClamp, gputypes.AddressModeClampToEdge},
		{WrapRepeat, gputypes.AddressModeRepeat},
		{WrapMirror, gputypes.AddressModeMirrorRepeat},
	}
	for _, c := range cases {
		if got := wrapAddressMode(c.in); got != c.want {
			t.Errorf("wrapAddressMode(%v): got %v, want %v", c.in, got, c.want)
		}
	}
}

func TestSamplerSpecDescriptor(t *testing.T) {
	spec := SamplerSpec{Filter: FilterNearest, WrapX: WrapRepeat, WrapY: WrapClamp}
	d := spec.descriptor("test")
	if d.MagFilter != gputypes.FilterModeNearest || d.MinFilter != gputypes.FilterModeNearest {
		t.Errorf("filter: %+v", d)
	}
	if d.AddressModeU != gputypes.AddressModeRepeat || d.AddressModeV != gputypes.AddressModeClampToEdge {
		t.Errorf("address modes: %+v", d)
	}
}

func TestSamplerCacheStartsEmpty(t *testing.T) {
	c := newSamplerCache()
	if c.Len() != 0 {
		t.Errorf("got %d", c.Len())
	}
}
