package trajectory

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// axisEpsilon: below this squared cross-product length the reference and
// target are treated as (anti-)parallel.
const axisEpsilon = 1e-6

// localUp is the vehicle's long axis in model space.
var localUp = mgl32.Vec3{0, 1, 0}

// alignY builds the rotation taking the vehicle's local +Y axis onto target,
// which must be a unit vector. The general case is the axis-angle (Rodrigues)
// rotation about cross(up, target) by acos(dot). When the vectors are
// parallel the result is identity; when they are anti-parallel there is no
// unique axis, and a fixed 180° turn about the world vertical is used so the
// output stays finite.
func alignY(target mgl32.Vec3) mgl32.Mat4 {
	dot := mgl32.Clamp(localUp.Dot(target), -1, 1)
	axis := localUp.Cross(target)

	if axis.LenSqr() < axisEpsilon {
		if dot < 0 {
			return mgl32.HomogRotate3D(math32.Pi, localUp)
		}
		return mgl32.Ident4()
	}

	angle := math32.Acos(dot)
	return mgl32.HomogRotate3D(angle, axis.Normalize())
}
