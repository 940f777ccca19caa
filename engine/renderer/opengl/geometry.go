package opengl

import (
	gomath "math"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/tableau/engine/core"
	"github.com/spaghettifunk/tableau/engine/renderer/metadata"
)

const (
	// position(3) + normal(3) + uv(2)
	vertexFloats = 8
	vertexStride = vertexFloats * 4

	defaultSegments    = 36
	defaultStacks      = 18
	defaultTorusMinor  = 0.05
	extraTorus1Minor   = 0.2
	verticesPerBoxFace = 6
)

type drawRange struct {
	first int32
	count int32
}

// gpuMesh is one uploaded primitive: a VAO/VBO pair plus optional named
// sub-ranges for per-face and per-cap draws.
type gpuMesh struct {
	vao         uint32
	vbo         uint32
	vertexCount int32

	boxFaces  [metadata.BOX_FACE_COUNT]drawRange
	cylSides  drawRange
	cylTop    drawRange
	cylBottom drawRange
}

type meshLibrary struct {
	meshes map[metadata.ShapeKind]*gpuMesh
}

func newMeshLibrary() *meshLibrary {
	return &meshLibrary{
		meshes: make(map[metadata.ShapeKind]*gpuMesh),
	}
}

// load generates the shape on the CPU and uploads it once. Loading an
// already loaded kind is a no-op; the first upload wins.
func (ml *meshLibrary) load(kind metadata.ShapeKind, config metadata.ShapeConfig) error {
	if _, ok := ml.meshes[kind]; ok {
		return nil
	}

	segments := config.Segments
	if segments == 0 {
		segments = defaultSegments
	}

	mesh := &gpuMesh{}
	var vertices []float32

	switch kind {
	case metadata.ShapePlane:
		vertices = planeVertices()
	case metadata.ShapeBox:
		vertices = boxVertices(mesh)
	case metadata.ShapeCone:
		vertices = coneVertices(segments)
	case metadata.ShapeCylinder:
		vertices = cylinderVertices(mesh, segments)
	case metadata.ShapeSphere:
		vertices = sphereVertices(segments, defaultStacks)
	case metadata.ShapeTorus, metadata.ShapeExtraTorus1, metadata.ShapeExtraTorus2:
		minor := config.TorusMinorRadius
		if minor <= 0 {
			if kind == metadata.ShapeExtraTorus1 {
				minor = extraTorus1Minor
			} else {
				minor = defaultTorusMinor
			}
		}
		vertices = torusVertices(minor, segments, defaultStacks)
	default:
		core.LogError("unknown shape kind %d, nothing loaded", kind)
		return nil
	}

	mesh.vertexCount = int32(len(vertices) / vertexFloats)
	uploadMesh(mesh, vertices)
	ml.meshes[kind] = mesh

	core.LogDebug("loaded %s mesh (%d vertices)", kind, mesh.vertexCount)
	return nil
}

func (ml *meshLibrary) draw(kind metadata.ShapeKind, options metadata.DrawOptions) {
	mesh, ok := ml.meshes[kind]
	if !ok {
		core.LogWarn("draw of unloaded shape '%s' skipped", kind)
		return
	}

	gl.BindVertexArray(mesh.vao)

	switch {
	case options.HasFace && kind == metadata.ShapeBox:
		r := mesh.boxFaces[options.Face]
		gl.DrawArrays(gl.TRIANGLES, r.first, r.count)
	case options.HasCaps && kind == metadata.ShapeCylinder:
		if options.DrawSides {
			gl.DrawArrays(gl.TRIANGLES, mesh.cylSides.first, mesh.cylSides.count)
		}
		if options.DrawTop {
			gl.DrawArrays(gl.TRIANGLES, mesh.cylTop.first, mesh.cylTop.count)
		}
		if options.DrawBottom {
			gl.DrawArrays(gl.TRIANGLES, mesh.cylBottom.first, mesh.cylBottom.count)
		}
	default:
		gl.DrawArrays(gl.TRIANGLES, 0, mesh.vertexCount)
	}

	gl.BindVertexArray(0)
}

func (ml *meshLibrary) destroyAll() {
	for kind, mesh := range ml.meshes {
		gl.DeleteBuffers(1, &mesh.vbo)
		gl.DeleteVertexArrays(1, &mesh.vao)
		delete(ml.meshes, kind)
	}
}

func uploadMesh(mesh *gpuMesh, vertices []float32) {
	gl.GenVertexArrays(1, &mesh.vao)
	gl.GenBuffers(1, &mesh.vbo)

	gl.BindVertexArray(mesh.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	// position
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	// normal
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, 3*4)
	// uv
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride, 6*4)

	gl.BindVertexArray(0)
}

func appendVertex(dst []float32, px, py, pz, nx, ny, nz, u, v float32) []float32 {
	return append(dst, px, py, pz, nx, ny, nz, u, v)
}

// planeVertices builds a 2x2 quad on the XZ plane facing +Y.
func planeVertices() []float32 {
	var v []float32
	v = appendVertex(v, -1, 0, 1, 0, 1, 0, 0, 0)
	v = appendVertex(v, 1, 0, 1, 0, 1, 0, 1, 0)
	v = appendVertex(v, 1, 0, -1, 0, 1, 0, 1, 1)
	v = appendVertex(v, 1, 0, -1, 0, 1, 0, 1, 1)
	v = appendVertex(v, -1, 0, -1, 0, 1, 0, 0, 1)
	v = appendVertex(v, -1, 0, 1, 0, 1, 0, 0, 0)
	return v
}

// boxVertices builds a unit cube centered at the origin, six vertices per
// face, ordered so each face is an addressable sub-range.
func boxVertices(mesh *gpuMesh) []float32 {
	const h = 0.5

	type face struct {
		which      metadata.BoxFace
		corners    [4][3]float32 // bl, br, tr, tl in uv space
		nx, ny, nz float32
	}

	faces := []face{
		{metadata.BoxFaceTop, [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}, 0, 1, 0},
		{metadata.BoxFaceBottom, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}, 0, -1, 0},
		{metadata.BoxFaceLeft, [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}, -1, 0, 0},
		{metadata.BoxFaceRight, [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}, 1, 0, 0},
		{metadata.BoxFaceFront, [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}, 0, 0, 1},
		{metadata.BoxFaceBack, [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}, 0, 0, -1},
	}

	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	// Two triangles per quad: bl-br-tr, tr-tl-bl.
	order := [6]int{0, 1, 2, 2, 3, 0}

	var v []float32
	for i, f := range faces {
		mesh.boxFaces[f.which] = drawRange{
			first: int32(i * verticesPerBoxFace),
			count: verticesPerBoxFace,
		}
		for _, idx := range order {
			c := f.corners[idx]
			uv := uvs[idx]
			v = appendVertex(v, c[0], c[1], c[2], f.nx, f.ny, f.nz, uv[0], uv[1])
		}
	}
	return v
}

// coneVertices builds a cone with base radius 1 at y=0 and apex at y=1,
// sides plus a bottom cap.
func coneVertices(segments int) []float32 {
	var v []float32

	for i := 0; i < segments; i++ {
		a0 := float64(i) / float64(segments) * 2 * gomath.Pi
		a1 := float64(i+1) / float64(segments) * 2 * gomath.Pi

		x0, z0 := float32(gomath.Cos(a0)), float32(gomath.Sin(a0))
		x1, z1 := float32(gomath.Cos(a1)), float32(gomath.Sin(a1))

		// Slant normal: for a unit cone the normal tilts 45 degrees.
		inv := float32(1.0 / gomath.Sqrt2)
		n0x, n0z := x0*inv, z0*inv
		n1x, n1z := x1*inv, z1*inv
		ny := inv

		u0 := float32(i) / float32(segments)
		u1 := float32(i+1) / float32(segments)

		// Side triangle up to the apex.
		v = appendVertex(v, x0, 0, z0, n0x, ny, n0z, u0, 0)
		v = appendVertex(v, x1, 0, z1, n1x, ny, n1z, u1, 0)
		v = appendVertex(v, 0, 1, 0, (n0x+n1x)/2, ny, (n0z+n1z)/2, (u0+u1)/2, 1)

		// Bottom cap fan.
		v = appendVertex(v, 0, 0, 0, 0, -1, 0, 0.5, 0.5)
		v = appendVertex(v, x1, 0, z1, 0, -1, 0, 0.5+x1/2, 0.5+z1/2)
		v = appendVertex(v, x0, 0, z0, 0, -1, 0, 0.5+x0/2, 0.5+z0/2)
	}
	return v
}

// cylinderVertices builds a cylinder with radius 1, base at y=0, top at y=1.
// Sides, top cap and bottom cap are addressable ranges so callers can draw
// open-topped or open-bottomed variants.
func cylinderVertices(mesh *gpuMesh, segments int) []float32 {
	var v []float32

	sideStart := int32(0)
	for i := 0; i < segments; i++ {
		a0 := float64(i) / float64(segments) * 2 * gomath.Pi
		a1 := float64(i+1) / float64(segments) * 2 * gomath.Pi

		x0, z0 := float32(gomath.Cos(a0)), float32(gomath.Sin(a0))
		x1, z1 := float32(gomath.Cos(a1)), float32(gomath.Sin(a1))

		u0 := float32(i) / float32(segments)
		u1 := float32(i+1) / float32(segments)

		v = appendVertex(v, x0, 0, z0, x0, 0, z0, u0, 0)
		v = appendVertex(v, x1, 0, z1, x1, 0, z1, u1, 0)
		v = appendVertex(v, x1, 1, z1, x1, 0, z1, u1, 1)
		v = appendVertex(v, x1, 1, z1, x1, 0, z1, u1, 1)
		v = appendVertex(v, x0, 1, z0, x0, 0, z0, u0, 1)
		v = appendVertex(v, x0, 0, z0, x0, 0, z0, u0, 0)
	}
	mesh.cylSides = drawRange{first: sideStart, count: int32(segments * 6)}

	topStart := int32(len(v) / vertexFloats)
	for i := 0; i < segments; i++ {
		a0 := float64(i) / float64(segments) * 2 * gomath.Pi
		a1 := float64(i+1) / float64(segments) * 2 * gomath.Pi
		x0, z0 := float32(gomath.Cos(a0)), float32(gomath.Sin(a0))
		x1, z1 := float32(gomath.Cos(a1)), float32(gomath.Sin(a1))

		v = appendVertex(v, 0, 1, 0, 0, 1, 0, 0.5, 0.5)
		v = appendVertex(v, x0, 1, z0, 0, 1, 0, 0.5+x0/2, 0.5+z0/2)
		v = appendVertex(v, x1, 1, z1, 0, 1, 0, 0.5+x1/2, 0.5+z1/2)
	}
	mesh.cylTop = drawRange{first: topStart, count: int32(segments * 3)}

	bottomStart := int32(len(v) / vertexFloats)
	for i := 0; i < segments; i++ {
		a0 := float64(i) / float64(segments) * 2 * gomath.Pi
		a1 := float64(i+1) / float64(segments) * 2 * gomath.Pi
		x0, z0 := float32(gomath.Cos(a0)), float32(gomath.Sin(a0))
		x1, z1 := float32(gomath.Cos(a1)), float32(gomath.Sin(a1))

		v = appendVertex(v, 0, 0, 0, 0, -1, 0, 0.5, 0.5)
		v = appendVertex(v, x1, 0, z1, 0, -1, 0, 0.5+x1/2, 0.5+z1/2)
		v = appendVertex(v, x0, 0, z0, 0, -1, 0, 0.5+x0/2, 0.5+z0/2)
	}
	mesh.cylBottom = drawRange{first: bottomStart, count: int32(segments * 3)}

	return v
}

// sphereVertices builds a UV sphere of radius 1 centered at the origin.
func sphereVertices(sectors, stacks int) []float32 {
	point := func(stack, sector int) (x, y, z, u, w float32) {
		phi := float64(stack)/float64(stacks)*gomath.Pi - gomath.Pi/2
		theta := float64(sector) / float64(sectors) * 2 * gomath.Pi
		x = float32(gomath.Cos(phi) * gomath.Cos(theta))
		y = float32(gomath.Sin(phi))
		z = float32(gomath.Cos(phi) * gomath.Sin(theta))
		u = float32(sector) / float32(sectors)
		w = float32(stack) / float32(stacks)
		return
	}

	var v []float32
	for i := 0; i < stacks; i++ {
		for j := 0; j < sectors; j++ {
			x0, y0, z0, u0, w0 := point(i, j)
			x1, y1, z1, u1, w1 := point(i, j+1)
			x2, y2, z2, u2, w2 := point(i+1, j+1)
			x3, y3, z3, u3, w3 := point(i+1, j)

			// On a unit sphere the position doubles as the normal.
			v = appendVertex(v, x0, y0, z0, x0, y0, z0, u0, w0)
			v = appendVertex(v, x1, y1, z1, x1, y1, z1, u1, w1)
			v = appendVertex(v, x2, y2, z2, x2, y2, z2, u2, w2)
			v = appendVertex(v, x2, y2, z2, x2, y2, z2, u2, w2)
			v = appendVertex(v, x3, y3, z3, x3, y3, z3, u3, w3)
			v = appendVertex(v, x0, y0, z0, x0, y0, z0, u0, w0)
		}
	}
	return v
}

// torusVertices builds a torus in the XY plane (hole along Z) with major
// radius 1 and the given minor radius. The scene rotates it 90 degrees
// around X to stand it upright.
func torusVertices(minor float32, rings, sides int) []float32 {
	point := func(ring, side int) (px, py, pz, nx, ny, nz, u, w float32) {
		u64 := float64(ring) / float64(rings) * 2 * gomath.Pi
		v64 := float64(side) / float64(sides) * 2 * gomath.Pi

		cu, su := gomath.Cos(u64), gomath.Sin(u64)
		cv, sv := gomath.Cos(v64), gomath.Sin(v64)

		r := 1 + float64(minor)*cv
		px = float32(r * cu)
		py = float32(r * su)
		pz = float32(float64(minor) * sv)
		nx = float32(cv * cu)
		ny = float32(cv * su)
		nz = float32(sv)
		u = float32(ring) / float32(rings)
		w = float32(side) / float32(sides)
		return
	}

	var v []float32
	for i := 0; i < rings; i++ {
		for j := 0; j < sides; j++ {
			p0 := [8]float32{}
			p1 := [8]float32{}
			p2 := [8]float32{}
			p3 := [8]float32{}
			p0[0], p0[1], p0[2], p0[3], p0[4], p0[5], p0[6], p0[7] = point(i, j)
			p1[0], p1[1], p1[2], p1[3], p1[4], p1[5], p1[6], p1[7] = point(i+1, j)
			p2[0], p2[1], p2[2], p2[3], p2[4], p2[5], p2[6], p2[7] = point(i+1, j+1)
			p3[0], p3[1], p3[2], p3[3], p3[4], p3[5], p3[6], p3[7] = point(i, j+1)

			v = append(v, p0[:]...)
			v = append(v, p1[:]...)
			v = append(v, p2[:]...)
			v = append(v, p2[:]...)
			v = append(v, p3[:]...)
			v = append(v, p0[:]...)
		}
	}
	return v
}
