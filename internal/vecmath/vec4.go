package vecmath

// Vec4 is a homogeneous 4-component vector (value type, stack-allocated).
type Vec4 [4]float32

// ToVec3 drops the w component.
func (v Vec4) ToVec3() Vec3 { return Vec3{v[0], v[1], v[2]} }
