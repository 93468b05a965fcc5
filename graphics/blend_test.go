package graphics

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestBlendAlphaState(t *testing.T) {
	s := BlendAlpha.blendState()
	if s.Color.SrcFactor != gputypes.BlendFactorSrcAlpha ||
		s.Color.DstFactor != gputypes.BlendFactorOneMinusSrcAlpha ||
		s.Color.Operation != gputypes.BlendOperationAdd {
		t.Errorf("alpha color component: %+v", s.Color)
	}
}

func TestBlendStateOperations(t *testing.T) {
	cases := []struct {
		mode BlendMode
		op   gputypes.BlendOperation
	}{
		{BlendAdd, gputypes.BlendOperationAdd},
		{BlendSubtract, gputypes.BlendOperationReverseSubtract},
		{BlendLighten, gputypes.BlendOperationMax},
		{BlendDarken, gputypes.BlendOperationMin},
	}
	for _, c := range cases {
		if got := c.mode.blendState().Color.Operation; got != c.op {
			t.Errorf("%v color op: got %v, want %v", c.mode, got, c.op)
		}
	}
}

func TestBlendReplaceIgnoresDestination(t *testing.T) {
	s := BlendReplace.blendState()
	if s.Color.SrcFactor != gputypes.BlendFactorOne || s.Color.DstFactor != gputypes.BlendFactorZero {
		t.Errorf("replace color: %+v", s.Color)
	}
}

func TestBlendModeString(t *testing.T) {
	if BlendMultiply.String() != "Multiply" {
		t.Errorf("got %q", BlendMultiply.String())
	}
	if BlendMode(99).String() != "Unknown" {
		t.Errorf("got %q", BlendMode(99).String())
	}
}

func TestBlendModeValid(t *testing.T) {
	for m := BlendAlpha; m < BlendMode(numBlendModes); m++ {
		if !m.valid() {
			t.Errorf("%v should be valid", m)
		}
	}
	if BlendMode(-1).valid() || BlendMode(numBlendModes).valid() {
		t.Errorf("out-of-range mode reported valid")
	}
}
