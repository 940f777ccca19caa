package testbed

import (
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/tableau/engine/renderer/metadata"
	"github.com/spaghettifunk/tableau/engine/scene"
	"github.com/spaghettifunk/tableau/engine/systems"
)

// sceneTextures maps registry tags to files under the assets directory.
// Registration order fixes the slot assignment.
var sceneTextures = []struct {
	File string
	Tag  string
}{
	{"desk_texture.jpg", "desk"},
	{"cork_stopper.jpg", "cork_stopper"},
	{"black_rubber.jpg", "rubber"},
	{"book_fabric.jpg", "book_fabric"},
	{"paper.jpg", "paper"},
	{"chest.jpg", "chest"},
	{"leather.jpg", "leather"},
	{"chest_top.jpg", "chest_top"},
	{"leather_seam.jpg", "leather_seam"},
	{"metal_dark.jpg", "metal_dark"},
	{"metal_mug.jpg", "metal_mug"},
	{"metal_mug_body.jpg", "metal_mug_body"},
	{"tile.jpg", "tile_wall"},
}

func registerTextures(textures *systems.TextureSystem, assetsDir string) {
	for _, t := range sceneTextures {
		textures.RegisterTexture(filepath.Join(assetsDir, t.File), t.Tag)
	}
	textures.BindAll()
}

func defineMaterials(materials *systems.MaterialSystem) {
	materials.Define(metadata.Material{
		Tag:             "desk",
		AmbientColor:    mgl32.Vec3{0.25, 0.25, 0.25},
		AmbientStrength: 0.15,
		DiffuseColor:    mgl32.Vec3{0.55, 0.55, 0.55},
		SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.1},
		Shininess:       0.05,
	})
	materials.Define(metadata.Material{
		Tag:             "rubber",
		AmbientColor:    mgl32.Vec3{0.05, 0.05, 0.05},
		AmbientStrength: 0.2,
		DiffuseColor:    mgl32.Vec3{0.1, 0.1, 0.1},
		SpecularColor:   mgl32.Vec3{0.05, 0.05, 0.05},
		Shininess:       0.02,
	})
	materials.Define(metadata.Material{
		Tag:             "metal",
		AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.2},
		AmbientStrength: 0.1,
		DiffuseColor:    mgl32.Vec3{0.4, 0.4, 0.4},
		SpecularColor:   mgl32.Vec3{0.9, 0.9, 0.9},
		Shininess:       64.0,
	})
	materials.Define(metadata.Material{
		Tag:             "book_fabric",
		AmbientColor:    mgl32.Vec3{0.15, 0.15, 0.15},
		AmbientStrength: 0.2,
		DiffuseColor:    mgl32.Vec3{0.3, 0.3, 0.3},
		SpecularColor:   mgl32.Vec3{0.05, 0.05, 0.05},
		Shininess:       0.1,
	})
	materials.Define(metadata.Material{
		Tag:             "paper",
		AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.2},
		AmbientStrength: 0.3,
		DiffuseColor:    mgl32.Vec3{0.8, 0.8, 0.8},
		SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.1},
		Shininess:       0.05,
	})
	materials.Define(metadata.Material{
		Tag:             "glass",
		AmbientColor:    mgl32.Vec3{0.4, 0.4, 0.4},
		AmbientStrength: 0.3,
		DiffuseColor:    mgl32.Vec3{0.3, 0.3, 0.3},
		SpecularColor:   mgl32.Vec3{0.6, 0.6, 0.6},
		Shininess:       85.0,
	})
	materials.Define(metadata.Material{
		Tag:             "leather",
		AmbientColor:    mgl32.Vec3{0.22, 0.14, 0.10},
		AmbientStrength: 0.25,
		DiffuseColor:    mgl32.Vec3{0.45, 0.28, 0.18},
		SpecularColor:   mgl32.Vec3{0.08, 0.05, 0.04},
		Shininess:       1.0,
	})
	materials.Define(metadata.Material{
		Tag:             "tile",
		AmbientColor:    mgl32.Vec3{0.25, 0.25, 0.45},
		AmbientStrength: 0.25,
		DiffuseColor:    mgl32.Vec3{0.4, 0.5, 0.6},
		SpecularColor:   mgl32.Vec3{0.1, 0.15, 0.2},
		Shininess:       6.0,
	})
}

// setupLights configures the fixed lights: a warm point light above the
// scene and a soft directional fill.
func setupLights(shader *systems.ShaderSystem) {
	shader.SetLightingEnabled(true)

	shader.SetPointLight(0, metadata.PointLight{
		Position: mgl32.Vec3{5.0, 12.0, 8.0},
		Ambient:  mgl32.Vec3{0.28, 0.25, 0.26},
		Diffuse:  mgl32.Vec3{0.35, 0.35, 0.35},
		Specular: mgl32.Vec3{0.3, 0.3, 0.3},
		Active:   true,
	})

	shader.SetDirectionalLight(metadata.DirectionalLight{
		Direction: mgl32.Vec3{-0.3, -1.0, -0.4},
		Ambient:   mgl32.Vec3{0.20, 0.18, 0.17},
		Diffuse:   mgl32.Vec3{0.2, 0.2, 0.2},
		Specular:  mgl32.Vec3{0.4, 0.4, 0.4},
		Active:    true,
	})
}

// boxFace builds the options for drawing a single face of the box mesh.
func boxFace(face metadata.BoxFace) metadata.DrawOptions {
	return metadata.DrawOptions{Face: face, HasFace: true}
}

// cylinder builds the options for a cylinder with a cap selection.
func cylinder(top, bottom, sides bool) metadata.DrawOptions {
	return metadata.DrawOptions{HasCaps: true, DrawTop: top, DrawBottom: bottom, DrawSides: sides}
}

// sceneAssemblies is the full still-life table: a desk platform with a
// backdrop wall, a cork stopper, a fabric-bound book with a candle on
// top, a leather-strapped chest and a metal mug.
func sceneAssemblies() []scene.Assembly {
	return []scene.Assembly{
		platformAssembly(),
		corkStopperAssembly(),
		bookAssembly(),
		candleAssembly(),
		chestAssembly(),
		mugAssembly(),
	}
}

func platformAssembly() scene.Assembly {
	return scene.Assembly{
		Name: "platform",
		Parts: []scene.Part{
			{
				Shape:       metadata.ShapePlane,
				Scale:       mgl32.Vec3{35.0, 1.0, 12.0},
				LocalOffset: mgl32.Vec3{0.0, 0.0, 2.0},
				Texture:     "desk",
				Material:    "desk",
				UVScale:     mgl32.Vec2{10.0, 4.0},
			},
			{
				// rotated upright to act as the backdrop wall
				Shape:       metadata.ShapePlane,
				Scale:       mgl32.Vec3{35.0, 1.0, 12.0},
				RotationDeg: mgl32.Vec3{90.0, 0.0, 0.0},
				LocalOffset: mgl32.Vec3{0.0, 2.0, -10.0},
				Texture:     "tile_wall",
				Material:    "metal",
				UVScale:     mgl32.Vec2{10.0, 4.0},
			},
		},
	}
}

func corkStopperAssembly() scene.Assembly {
	return scene.Assembly{
		Name:   "cork stopper",
		Origin: mgl32.Vec3{2.0, 0.0, 0.0},
		Parts: []scene.Part{
			{
				Shape:       metadata.ShapeExtraTorus1,
				Scale:       mgl32.Vec3{0.3, 0.3, 0.3},
				RotationDeg: mgl32.Vec3{90.0, 0.0, 0.0},
				LocalOffset: mgl32.Vec3{0.0, 0.35, 0.0},
				Texture:     "rubber",
				Material:    "rubber",
				UVScale:     mgl32.Vec2{0.64, 0.64},
			},
			{
				Shape:       metadata.ShapeExtraTorus1,
				Scale:       mgl32.Vec3{0.24, 0.24, 0.24},
				RotationDeg: mgl32.Vec3{90.0, 0.0, 0.0},
				LocalOffset: mgl32.Vec3{0.0, 0.65, 0.0},
				Texture:     "rubber",
				Material:    "rubber",
				UVScale:     mgl32.Vec2{0.55, 0.55},
			},
			{
				Shape:    metadata.ShapeCone,
				Scale:    mgl32.Vec3{0.4, 2.0, 0.4},
				Texture:  "cork_stopper",
				Material: "metal",
				UVScale:  mgl32.Vec2{1.0, 2.0},
			},
		},
	}
}

func bookAssembly() scene.Assembly {
	return scene.Assembly{
		Name:   "book",
		Origin: mgl32.Vec3{7.0, 0.6, 0.0},
		YawDeg: -25.0,
		Parts: []scene.Part{
			{
				Shape:       metadata.ShapeBox,
				Scale:       mgl32.Vec3{6.0, 0.2, 9.0},
				RotationDeg: mgl32.Vec3{0.0, -25.0, 0.0},
				LocalOffset: mgl32.Vec3{0.0, -0.5, 0.0},
				Texture:     "book_fabric",
				Material:    "book_fabric",
				UVScale:     mgl32.Vec2{1.0, 3.0},
			},
			{
				Shape:       metadata.ShapeBox,
				Scale:       mgl32.Vec3{6.0, 0.2, 9.0},
				RotationDeg: mgl32.Vec3{0.0, -25.0, 0.0},
				LocalOffset: mgl32.Vec3{0.0, 0.5, 0.0},
				Texture:     "book_fabric",
				Material:    "book_fabric",
				UVScale:     mgl32.Vec2{1.0, 3.0},
			},
			{
				// spine; the offset co-rotates so it hugs the covers
				Shape:       metadata.ShapeBox,
				Scale:       mgl32.Vec3{0.2, 1.2, 9.0},
				RotationDeg: mgl32.Vec3{0.0, -25.0, 0.0},
				LocalOffset: mgl32.Vec3{-3.0, 0.0, 0.0},
				CoRotate:    true,
				Texture:     "book_fabric",
				Material:    "book_fabric",
				UVScale:     mgl32.Vec2{1.0, 3.0},
			},
			{
				Shape:       metadata.ShapeBox,
				Scale:       mgl32.Vec3{5.8, 0.8, 8.8},
				RotationDeg: mgl32.Vec3{0.0, -25.0, 0.0},
				Texture:     "paper",
				Material:    "paper",
				UVScale:     mgl32.Vec2{1.0, 3.0},
			},
		},
	}
}

func candleAssembly() scene.Assembly {
	glassDim := mgl32.Vec4{0.3, 0.3, 0.4, 0.6}
	glassThread := mgl32.Vec4{0.3, 0.3, 0.4, 0.8}
	return scene.Assembly{
		Name:   "candle",
		Origin: mgl32.Vec3{7.0, 0.6, 0.0},
		Parts: []scene.Part{
			{
				// wax body, sitting on the book
				Shape:       metadata.ShapeCylinder,
				Scale:       mgl32.Vec3{1.1, 2.0, 1.1},
				LocalOffset: mgl32.Vec3{0.0, 0.6, 0.0},
				Color:       mgl32.Vec4{1.0, 0.1, 0.3, 1.0},
				HasColor:    true,
				Material:    "glass",
			},
			{
				Shape:       metadata.ShapeCylinder,
				Scale:       mgl32.Vec3{1.2, 0.3, 1.2},
				LocalOffset: mgl32.Vec3{0.0, 0.6, 0.0},
				Color:       glassDim,
				HasColor:    true,
				Material:    "glass",
				Draw:        cylinder(true, false, true),
			},
			{
				Shape:       metadata.ShapeCylinder,
				Scale:       mgl32.Vec3{1.2, 1.4, 1.2},
				LocalOffset: mgl32.Vec3{0.0, 0.9, 0.0},
				Texture:     "paper",
				Material:    "paper",
				UVScale:     mgl32.Vec2{1.2, 1.4},
				Draw:        cylinder(false, false, true),
			},
			{
				// burned wick
				Shape:       metadata.ShapeCylinder,
				Scale:       mgl32.Vec3{0.05, 0.4, 0.05},
				LocalOffset: mgl32.Vec3{0.0, 2.6, 0.0},
				Texture:     "rubber",
				Material:    "book_fabric",
				UVScale:     mgl32.Vec2{1.0, 1.0},
				Draw:        cylinder(true, false, true),
			},
			{
				Shape:       metadata.ShapeCylinder,
				Scale:       mgl32.Vec3{1.2, 0.8, 1.2},
				LocalOffset: mgl32.Vec3{0.0, 2.3, 0.0},
				Color:       glassDim,
				HasColor:    true,
				Material:    "glass",
				Draw:        cylinder(true, false, true),
			},
			{
				Shape:       metadata.ShapeCylinder,
				Scale:       mgl32.Vec3{1.0, 0.4, 1.0},
				LocalOffset: mgl32.Vec3{0.0, 3.1, 0.0},
				Color:       glassDim,
				HasColor:    true,
				Material:    "glass",
				Draw:        cylinder(false, false, true),
			},
			{
				// jar threads around the neck
				Shape:       metadata.ShapeTorus,
				Scale:       mgl32.Vec3{1.05, 1.05, 0.3},
				RotationDeg: mgl32.Vec3{90.0, 0.0, 0.0},
				LocalOffset: mgl32.Vec3{0.0, 3.2, 0.0},
				Color:       glassThread,
				HasColor:    true,
				Material:    "glass",
			},
			{
				Shape:       metadata.ShapeTorus,
				Scale:       mgl32.Vec3{1.05, 1.05, 0.3},
				RotationDeg: mgl32.Vec3{90.0, 0.0, 0.0},
				LocalOffset: mgl32.Vec3{0.0, 3.3, 0.0},
				Color:       glassThread,
				HasColor:    true,
				Material:    "glass",
			},
		},
	}
}

// chestTopFaces is the per-face draw sequence shared by the chest lid and
// the strap tops: seamed texture on the vertical faces, plain on top.
func chestTopFaces(seamed, plain string, material string) []scene.Part {
	lidScale := mgl32.Vec3{9.0, 2.0, 3.5}
	lidOffset := mgl32.Vec3{0.0, 4.5, 0.0}
	rotation := mgl32.Vec3{0.0, 15.0, 0.0}
	return []scene.Part{
		{
			Shape: metadata.ShapeBox, Scale: lidScale, RotationDeg: rotation, LocalOffset: lidOffset,
			Texture: seamed, Material: material, UVScale: mgl32.Vec2{2.0, 1.0}, Draw: boxFace(metadata.BoxFaceLeft),
		},
		{
			Shape: metadata.ShapeBox, Scale: lidScale, RotationDeg: rotation, LocalOffset: lidOffset,
			Texture: seamed, Material: material, UVScale: mgl32.Vec2{2.0, 1.0}, Draw: boxFace(metadata.BoxFaceRight),
		},
		{
			Shape: metadata.ShapeBox, Scale: lidScale, RotationDeg: rotation, LocalOffset: lidOffset,
			Texture: seamed, Material: material, UVScale: mgl32.Vec2{4.5, 1.0}, Draw: boxFace(metadata.BoxFaceFront),
		},
		{
			Shape: metadata.ShapeBox, Scale: lidScale, RotationDeg: rotation, LocalOffset: lidOffset,
			Texture: seamed, Material: material, UVScale: mgl32.Vec2{4.5, 1.0}, Draw: boxFace(metadata.BoxFaceBack),
		},
		{
			Shape: metadata.ShapeBox, Scale: lidScale, RotationDeg: rotation, LocalOffset: lidOffset,
			Texture: plain, Material: material, UVScale: mgl32.Vec2{4.5, 1.0}, Draw: boxFace(metadata.BoxFaceTop),
		},
	}
}

// strapTopFaces renders one strap segment wrapping the lid, seamed on the
// visible faces.
func strapTopFaces(offset mgl32.Vec3) []scene.Part {
	scale := mgl32.Vec3{0.75, 2.0, 0.1}
	rotation := mgl32.Vec3{0.0, 15.0, 0.0}
	return []scene.Part{
		{
			Shape: metadata.ShapeBox, Scale: scale, RotationDeg: rotation, LocalOffset: offset, CoRotate: true,
			Texture: "leather_seam", Material: "leather", UVScale: mgl32.Vec2{2.0, 1.0}, Draw: boxFace(metadata.BoxFaceLeft),
		},
		{
			Shape: metadata.ShapeBox, Scale: scale, RotationDeg: rotation, LocalOffset: offset, CoRotate: true,
			Texture: "leather_seam", Material: "leather", UVScale: mgl32.Vec2{2.0, 1.0}, Draw: boxFace(metadata.BoxFaceRight),
		},
		{
			Shape: metadata.ShapeBox, Scale: scale, RotationDeg: rotation, LocalOffset: offset, CoRotate: true,
			Texture: "leather_seam", Material: "leather", UVScale: mgl32.Vec2{4.5, 1.0}, Draw: boxFace(metadata.BoxFaceFront),
		},
		{
			Shape: metadata.ShapeBox, Scale: scale, RotationDeg: rotation, LocalOffset: offset, CoRotate: true,
			Texture: "leather", Material: "leather", UVScale: mgl32.Vec2{4.5, 1.0}, Draw: boxFace(metadata.BoxFaceBack),
		},
		{
			Shape: metadata.ShapeBox, Scale: scale, RotationDeg: rotation, LocalOffset: offset, CoRotate: true,
			Texture: "leather", Material: "leather", UVScale: mgl32.Vec2{4.5, 1.0}, Draw: boxFace(metadata.BoxFaceTop),
		},
	}
}

func chestAssembly() scene.Assembly {
	rotation := mgl32.Vec3{0.0, 15.0, 0.0}
	parts := []scene.Part{
		{
			Shape:       metadata.ShapeBox,
			Scale:       mgl32.Vec3{9.0, 3.5, 3.5},
			RotationDeg: rotation,
			LocalOffset: mgl32.Vec3{0.0, 1.75, 0.0},
			Texture:     "chest",
			Material:    "desk",
			UVScale:     mgl32.Vec2{4.5, 1.0},
		},
	}

	// lid, one face at a time so the seam lines up
	parts = append(parts, chestTopFaces("chest_top", "chest", "desk")...)

	// vertical straps on the body
	for _, x := range []float32{-2.0, 2.0} {
		parts = append(parts, scene.Part{
			Shape:       metadata.ShapeBox,
			Scale:       mgl32.Vec3{0.75, 3.5, 0.1},
			RotationDeg: rotation,
			LocalOffset: mgl32.Vec3{x, 1.75, 1.8},
			CoRotate:    true,
			Texture:     "leather",
			Material:    "leather",
			UVScale:     mgl32.Vec2{0.75, 5.5},
		})
		parts = append(parts, strapTopFaces(mgl32.Vec3{x, 4.5, 1.8})...)
	}

	// strap runs over the lid
	for _, x := range []float32{2.0, -2.0} {
		parts = append(parts, scene.Part{
			Shape:       metadata.ShapeBox,
			Scale:       mgl32.Vec3{0.75, 0.1, 3.6},
			RotationDeg: rotation,
			LocalOffset: mgl32.Vec3{x, 5.55, 0.05},
			CoRotate:    true,
			Texture:     "leather",
			Material:    "leather",
			UVScale:     mgl32.Vec2{0.75, 3.6},
		})
	}

	// latch plates
	for _, y := range []float32{3.75, 3.25} {
		parts = append(parts, scene.Part{
			Shape:       metadata.ShapeBox,
			Scale:       mgl32.Vec3{1.75, 0.3, 0.1},
			RotationDeg: rotation,
			LocalOffset: mgl32.Vec3{0.0, y, 1.8},
			CoRotate:    true,
			Texture:     "metal_dark",
			Material:    "metal",
			UVScale:     mgl32.Vec2{1.75, 0.3},
		})
	}

	// the lock itself
	lock := []struct {
		Offset mgl32.Vec3
		Scale  mgl32.Vec3
	}{
		{mgl32.Vec3{0.0, 3.75, 1.9}, mgl32.Vec3{0.5, 0.1, 0.1}},
		{mgl32.Vec3{0.125, 3.25, 1.9}, mgl32.Vec3{0.25, 0.1, 0.1}},
		{mgl32.Vec3{0.2, 3.5, 1.9}, mgl32.Vec3{0.1, 0.4, 0.1}},
	}
	for _, l := range lock {
		parts = append(parts, scene.Part{
			Shape:       metadata.ShapeBox,
			Scale:       l.Scale,
			RotationDeg: rotation,
			LocalOffset: l.Offset,
			CoRotate:    true,
			Texture:     "cork_stopper",
			Material:    "metal",
			UVScale:     mgl32.Vec2{1.0, 1.0},
		})
	}

	return scene.Assembly{
		Name:   "chest",
		Origin: mgl32.Vec3{-3.0, 0.0, -2.0},
		YawDeg: 15.0,
		Parts:  parts,
	}
}

func mugAssembly() scene.Assembly {
	bodyRotation := mgl32.Vec3{0.0, 145.0, 0.0}
	handleRotation := mgl32.Vec3{0.0, -45.0, 0.0}
	return scene.Assembly{
		Name:   "mug",
		Origin: mgl32.Vec3{-7.0, 0.0, 3.0},
		Parts: []scene.Part{
			{
				// the logo faces the camera at this yaw
				Shape:       metadata.ShapeCylinder,
				Scale:       mgl32.Vec3{1.6, 3.4, 1.6},
				RotationDeg: bodyRotation,
				Texture:     "metal_mug_body",
				Material:    "metal",
				UVScale:     mgl32.Vec2{1.0, 1.0},
				Draw:        cylinder(false, false, true),
			},
			{
				Shape:       metadata.ShapeCylinder,
				Scale:       mgl32.Vec3{1.4, 3.0, 1.4},
				RotationDeg: bodyRotation,
				LocalOffset: mgl32.Vec3{0.0, 0.4, 0.0},
				Texture:     "metal_mug",
				Material:    "metal",
				UVScale:     mgl32.Vec2{1.0, 1.0},
				Draw:        cylinder(false, true, true),
			},
			{
				Shape:       metadata.ShapeCylinder,
				Scale:       mgl32.Vec3{1.6, 0.2, 1.6},
				RotationDeg: bodyRotation,
				LocalOffset: mgl32.Vec3{0.0, 3.4, 0.0},
				Texture:     "cork_stopper",
				Material:    "metal",
				UVScale:     mgl32.Vec2{1.0, 1.0},
				Draw:        cylinder(false, false, true),
			},
			{
				// rolled rim
				Shape:       metadata.ShapeExtraTorus2,
				Scale:       mgl32.Vec3{1.5, 1.5, 1.1},
				RotationDeg: mgl32.Vec3{90.0, 0.0, 90.0},
				LocalOffset: mgl32.Vec3{0.0, 3.6, 0.0},
				Texture:     "cork_stopper",
				Material:    "metal",
				UVScale:     mgl32.Vec2{1.0, 1.0},
			},
			{
				Shape:       metadata.ShapeBox,
				Scale:       mgl32.Vec3{0.5, 0.1, 1.3},
				RotationDeg: handleRotation,
				LocalOffset: mgl32.Vec3{-1.5, 2.9, 1.5},
				Texture:     "metal_mug",
				Material:    "metal",
				UVScale:     mgl32.Vec2{1.0, 1.0},
			},
			{
				Shape:       metadata.ShapeBox,
				Scale:       mgl32.Vec3{0.5, 0.1, 1.3},
				RotationDeg: handleRotation,
				LocalOffset: mgl32.Vec3{-1.5, 0.8, 1.5},
				Texture:     "metal_mug",
				Material:    "metal",
				UVScale:     mgl32.Vec2{1.0, 1.0},
			},
			{
				Shape:       metadata.ShapeBox,
				Scale:       mgl32.Vec3{0.5, 2.0, 0.1},
				RotationDeg: handleRotation,
				LocalOffset: mgl32.Vec3{-1.925, 1.85, 1.925},
				Texture:     "metal_mug",
				Material:    "metal",
				UVScale:     mgl32.Vec2{1.0, 1.0},
			},
		},
	}
}
