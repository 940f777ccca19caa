package testbed

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/tableau/engine/renderer/metadata"
	"github.com/spaghettifunk/tableau/engine/scene"
)

func findAssembly(t *testing.T, assemblies []scene.Assembly, name string) scene.Assembly {
	t.Helper()
	for _, a := range assemblies {
		if a.Name == name {
			return a
		}
	}
	t.Fatalf("assembly %q not in the scene table", name)
	return scene.Assembly{}
}

func TestSceneTableShape(t *testing.T) {
	assemblies := sceneAssemblies()
	require.Len(t, assemblies, 6)

	names := make([]string, len(assemblies))
	total := 0
	for i, a := range assemblies {
		names[i] = a.Name
		total += len(a.Parts)
	}
	assert.Equal(t, []string{"platform", "cork stopper", "book", "candle", "chest", "mug"}, names)
	assert.Equal(t, 49, total)
}

func TestSceneTableTextureTagsAreRegistered(t *testing.T) {
	registered := make(map[string]bool, len(sceneTextures))
	for _, tex := range sceneTextures {
		registered[tex.Tag] = true
	}
	require.Len(t, registered, 13)

	for _, assembly := range sceneAssemblies() {
		for i, part := range assembly.Parts {
			if part.Texture == "" {
				assert.True(t, part.HasColor, "%s part %d has neither texture nor color", assembly.Name, i)
				continue
			}
			assert.True(t, registered[part.Texture], "%s part %d references unregistered texture %q", assembly.Name, i, part.Texture)
		}
	}
}

func TestSceneTableEveryPartHasMaterial(t *testing.T) {
	for _, assembly := range sceneAssemblies() {
		for i, part := range assembly.Parts {
			assert.NotEmpty(t, part.Material, "%s part %d has no material", assembly.Name, i)
			assert.NotEqual(t, mgl32.Vec3{}, part.Scale, "%s part %d has zero scale", assembly.Name, i)
		}
	}
}

func TestSceneTableCoRotationPlacesBookSpine(t *testing.T) {
	book := findAssembly(t, sceneAssemblies(), "book")

	var spine *scene.Part
	for i := range book.Parts {
		if book.Parts[i].CoRotate {
			spine = &book.Parts[i]
			break
		}
	}
	require.NotNil(t, spine, "book has no co-rotating part")

	position := scene.PartPosition(&book, spine)
	// with a -25 degree yaw the spine swings off the pure -X offset
	assert.Less(t, float64(position.X()), 7.0-3.0+0.4)
	assert.Greater(t, math.Abs(float64(position.Z())), 1e-3)
}

func TestSceneTableChestFaceDraws(t *testing.T) {
	chest := findAssembly(t, sceneAssemblies(), "chest")

	faceDraws := 0
	for _, part := range chest.Parts {
		if part.Draw.HasFace {
			faceDraws++
		}
	}
	// five lid faces plus five faces for each of the two strap tops
	assert.Equal(t, 15, faceDraws)
}

func TestSceneTableMugCapSelections(t *testing.T) {
	mug := findAssembly(t, sceneAssemblies(), "mug")

	var inner *scene.Part
	for i := range mug.Parts {
		part := &mug.Parts[i]
		if part.Shape == metadata.ShapeCylinder && part.Draw.DrawBottom {
			inner = part
			break
		}
	}
	require.NotNil(t, inner, "mug has no cylinder with a bottom cap")
	assert.False(t, inner.Draw.DrawTop)
	assert.True(t, inner.Draw.DrawSides)
	assert.Equal(t, "metal_mug", inner.Texture)
}
