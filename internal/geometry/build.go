package geometry

import "github.com/slalter/dreamscape/internal/world"

// Build maps a geometry descriptor to a mesh buffer. It never fails: an
// unrecognized type tag, or a custom descriptor too malformed to use, falls
// back to the unit box so one bad object cannot abort a scene update.
func Build(p world.GeometryParams) MeshData {
	switch p.Type {
	case world.GeometryBox, "":
		return Box(
			world.FloatOr(p.Width, defaultBoxSide),
			world.FloatOr(p.Height, defaultBoxSide),
			world.FloatOr(p.Depth, defaultBoxSide),
		)
	case world.GeometrySphere:
		return Sphere(
			world.FloatOr(p.Radius, defaultSphereRadius),
			clampSegments(world.IntOr(p.WidthSegments, defaultSphereWidthSeg), 3, 128),
			clampSegments(world.IntOr(p.HeightSegments, defaultSphereHeightSeg), 2, 128),
		)
	case world.GeometryCylinder:
		return Cylinder(
			world.FloatOr(p.RadiusTop, world.FloatOr(p.Radius, defaultCylinderRadius)),
			world.FloatOr(p.RadiusBottom, world.FloatOr(p.Radius, defaultCylinderRadius)),
			world.FloatOr(p.Height, defaultCylinderHeight),
			clampSegments(world.IntOr(p.RadialSegments, defaultRadialSegments), 3, 512),
		)
	case world.GeometryCone:
		// A cone is a cylinder whose top radius collapses to zero.
		return Cylinder(
			0,
			world.FloatOr(p.RadiusBottom, world.FloatOr(p.Radius, defaultCylinderRadius)),
			world.FloatOr(p.Height, defaultCylinderHeight),
			clampSegments(world.IntOr(p.RadialSegments, defaultRadialSegments), 3, 512),
		)
	case world.GeometryTorus:
		return Torus(
			world.FloatOr(p.Radius, defaultTorusRadius),
			world.FloatOr(p.Tube, defaultTorusTube),
			clampSegments(world.IntOr(p.RadialSegments, defaultTorusRadialSeg), 3, 128),
			clampSegments(world.IntOr(p.TubularSegments, defaultTorusTubularSeg), 3, 256),
		)
	case world.GeometryPlane:
		return Plane(
			world.FloatOr(p.Width, defaultPlaneSide),
			world.FloatOr(p.Depth, world.FloatOr(p.Height, defaultPlaneSide)),
		)
	case world.GeometryCustom:
		if m, ok := Custom(p.Vertices, p.Indices, p.Normals, p.UVs); ok {
			return m
		}
		return Box(defaultBoxSide, defaultBoxSide, defaultBoxSide)
	default:
		return Box(defaultBoxSide, defaultBoxSide, defaultBoxSide)
	}
}
