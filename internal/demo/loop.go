// Package demo implements the fixed-cadence input/update/render loop
// the interactive driver runs, decoupled from any particular windowing
// library so it can be driven by a test harness or a real window.
package demo

import (
	"time"

	"go3drender/internal/camera"
	"go3drender/internal/pipeline"
)

// InputState mirrors the keys the driver polls once per frame. A real
// front end fills this in from its own event/keystate source; nothing
// here depends on a specific windowing library.
type InputState struct {
	RenderModeKey int // 1..6, 0 for none pressed this frame
	CullBackface  bool
	CullNone      bool

	Forward   bool
	Backward  bool
	YawLeft   bool
	YawRight  bool
	PitchUp   bool
	PitchDown bool

	Exit bool
}

// Loop runs the fixed-cadence update/render cycle: apply input, step
// the camera, render a frame, then sleep to hit FPSTarget.
type Loop struct {
	Pipeline  *pipeline.Pipeline
	MoveSpeed float32
	TurnSpeed float32
	FPSTarget int

	lastFrame time.Time
}

// NewLoop returns a Loop bound to p.
func NewLoop(p *pipeline.Pipeline, moveSpeed, turnSpeed float32, fpsTarget int) *Loop {
	return &Loop{Pipeline: p, MoveSpeed: moveSpeed, TurnSpeed: turnSpeed, FPSTarget: fpsTarget}
}

// Step applies one frame's input against deltaTime (seconds), then
// renders. It does not sleep; callers that want fixed-cadence pacing
// should call Wait after Step.
func (l *Loop) Step(in InputState, deltaTime float32) {
	l.applyRenderMode(in)
	l.applyCull(in)
	l.applyMotion(in, deltaTime)
	l.Pipeline.RenderFrame()
}

func (l *Loop) applyRenderMode(in InputState) {
	switch in.RenderModeKey {
	case 1:
		l.Pipeline.RenderMode = pipeline.WireVertex
	case 2:
		l.Pipeline.RenderMode = pipeline.Wire
	case 3:
		l.Pipeline.RenderMode = pipeline.FillTriangle
	case 4:
		l.Pipeline.RenderMode = pipeline.FillTriangleWire
	case 5:
		l.Pipeline.RenderMode = pipeline.Textured
	case 6:
		l.Pipeline.RenderMode = pipeline.TexturedWire
	}
}

func (l *Loop) applyCull(in InputState) {
	if in.CullBackface {
		l.Pipeline.CullMode = pipeline.CullBackface
	}
	if in.CullNone {
		l.Pipeline.CullMode = pipeline.CullNone
	}
}

func (l *Loop) applyMotion(in InputState, deltaTime float32) {
	cam := l.Pipeline.World.Camera

	if in.YawLeft {
		cam.RotateYaw(-l.TurnSpeed * deltaTime)
	}
	if in.YawRight {
		cam.RotateYaw(l.TurnSpeed * deltaTime)
	}
	if in.PitchUp {
		cam.RotatePitch(l.TurnSpeed * deltaTime)
	}
	if in.PitchDown {
		cam.RotatePitch(-l.TurnSpeed * deltaTime)
	}

	if in.Forward {
		moveCamera(cam, l.MoveSpeed*deltaTime)
	}
	if in.Backward {
		moveCamera(cam, -l.MoveSpeed*deltaTime)
	}
}

func moveCamera(cam *camera.Camera, distance float32) {
	cam.SetForwardVelocity(cam.Direction.Scale(distance))
	cam.UpdatePosition(cam.ForwardVelocity)
}

// Wait sleeps long enough to hit FPSTarget given when the previous
// frame started, then records the new frame start time. The first
// call never sleeps (there is no previous frame to measure against).
func (l *Loop) Wait() {
	now := time.Now()
	if l.lastFrame.IsZero() {
		l.lastFrame = now
		return
	}

	targetFrame := time.Second / time.Duration(l.FPSTarget)
	elapsed := now.Sub(l.lastFrame)
	if wait := targetFrame - elapsed; wait > 0 {
		time.Sleep(wait)
	}
	l.lastFrame = time.Now()
}
