package path

import (
	"github.com/ceewaigit/bokeh-sub013/internal/camera"
	"github.com/ceewaigit/bokeh-sub013/internal/timeline"
)

// TransformAt derives the renderer-facing transform for one path frame:
// scale, pan, and refocus blur. Transforms are derived on demand and never
// persisted.
func TransformAt(p *timeline.Project, f timeline.CameraPathFrame, index int) camera.Transform {
	if f.Block == nil {
		tMs := frameTime(p, index)
		if bg := p.ActiveBackground(tMs); bg != nil && bg.PanWithoutZoom {
			return camera.ComposeStatic(p.Width, p.Height, f.Center())
		}
		return camera.Identity()
	}

	params := f.Block.Params()
	tMs := frameTime(p, index)
	tr := camera.Compose(&params, tMs, p.Width, p.Height, f.Center(), nil)
	tr.RefocusBlur = camera.Refocus(
		tMs-params.StartMs,
		params.DurationMs(),
		params.TargetScale,
		params.IntroMs,
		params.OutroMs,
		params.Style,
		p.Settings.RefocusMaxBlur,
	)
	return tr
}

// MotionBlurAt derives the directional blur for the frame at index from the
// centers and scales of it and its predecessor. The first frame of a clip,
// and the first frame after a cut between recordings, carry no motion: the
// camera does not travel across a cut.
func MotionBlurAt(p *timeline.Project, prev, cur timeline.CameraPathFrame, index int) camera.MotionBlurState {
	if index <= 0 {
		return camera.MotionBlurState{}
	}
	if index < len(p.Layout) && p.Layout[index-1].RecordingID != p.Layout[index].RecordingID {
		return camera.MotionBlurState{}
	}

	set := camera.BlurSettings{
		Enabled:   p.Settings.MotionBlurEnabled,
		Intensity: p.Settings.MotionBlurIntensity,
		Threshold: p.Settings.MotionBlurThreshold,
	}
	prevScale := scaleAt(p, prev, index-1)
	curScale := scaleAt(p, cur, index)
	return camera.DeriveMotionBlur(prev.Center(), cur.Center(), prevScale, curScale, p.Width, p.Height, set)
}

func scaleAt(p *timeline.Project, f timeline.CameraPathFrame, index int) float64 {
	if f.Block == nil {
		return 1
	}
	params := f.Block.Params()
	tMs := frameTime(p, index)
	return camera.Scale(tMs-params.StartMs, params.DurationMs(), params.TargetScale,
		params.IntroMs, params.OutroMs, params.Style)
}

func frameTime(p *timeline.Project, index int) float64 {
	if index < 0 {
		index = 0
	}
	if index < len(p.Layout) {
		return timeline.FrameTimeMs(p.Layout[index].Frame, p.Settings.FPS)
	}
	return timeline.FrameTimeMs(index, p.Settings.FPS)
}
