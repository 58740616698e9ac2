// Package kernel defines the abstract geometry kernel interface.
// The sdfx implementation provides solid modeling and boolean
// operations behind this interface; the drawing layer stays decoupled
// from the CAD library, so swapping backends never touches tile
// geometry.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface. All primitives
// rest on the z=0 plane and grow upward, so tile bodies and the
// cutouts applied to them share a base plane: Box sits with its
// minimum corner at the origin, Cylinder and Cone stand on z=0
// centered on the Z axis, and Extrude sweeps its XY profile from z=0
// to the given height.
type Kernel interface {
	// Primitives
	Box(x, y, z float64) Solid
	Cylinder(height, radius float64) Solid
	Cone(height, bottomRadius, topRadius float64) Solid
	Extrude(profile [][2]float64, height float64) Solid

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees

	// Output
	ToMesh(s Solid) (*Mesh, error)
	SaveSTL(s Solid, path string) error
}
