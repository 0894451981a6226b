// Package scene holds the engine-neutral view state the controller writes
// and renderers read: the camera transform, the overlay tint and
// post-process toggles.
package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	forward = mgl64.Vec3{0, 0, 1}
	up      = mgl64.Vec3{0, 1, 0}
	// flipZ converts the +Z-forward world into the right-handed view space
	// LookAtV expects.
	flipZ = mgl64.Scale3D(1, 1, -1)
)

// Camera is a transform local to the body it rides on.
type Camera struct {
	local mgl64.Vec3
	rot   mgl64.Quat
}

func NewCamera(local mgl64.Vec3) *Camera {
	return &Camera{local: local, rot: mgl64.QuatIdent()}
}

func (c *Camera) LocalPosition() mgl64.Vec3 {
	return c.local
}

func (c *Camera) SetLocalPosition(p mgl64.Vec3) {
	c.local = p
}

func (c *Camera) SetLocalRotation(q mgl64.Quat) {
	c.rot = q
}

// Eye is the camera position in world space.
func (c *Camera) Eye(bodyPos mgl64.Vec3, body mgl64.Quat) mgl64.Vec3 {
	return bodyPos.Add(body.Rotate(c.local))
}

// View is the world-to-view matrix for a body at bodyPos with orientation body.
func (c *Camera) View(bodyPos mgl64.Vec3, body mgl64.Quat) mgl64.Mat4 {
	rot := body.Mul(c.rot)
	eye := c.Eye(bodyPos, body)
	target := eye.Add(rot.Rotate(forward))
	return mgl64.LookAtV(flip(eye), flip(target), flip(rot.Rotate(up))).Mul4(flipZ)
}

func flip(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), v.Y(), -v.Z()}
}

// Overlay holds the full-screen tint color.
type Overlay struct {
	c color.NRGBA
}

func (o *Overlay) SetColor(c color.Color) {
	o.c = color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (o *Overlay) Color() color.NRGBA {
	return o.c
}

// PostProcess holds the screen-space effect toggles.
type PostProcess struct {
	motionBlur bool
}

func (p *PostProcess) SetMotionBlur(enabled bool) {
	p.motionBlur = enabled
}

func (p *PostProcess) MotionBlur() bool {
	return p.motionBlur
}
