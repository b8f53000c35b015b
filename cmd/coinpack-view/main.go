package main

import (
	"fmt"
	"math"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/coinpack/pkg/analysis"
	"github.com/philipparndt/coinpack/pkg/geometry"
	"github.com/philipparndt/coinpack/pkg/mesh"
	"github.com/philipparndt/coinpack/pkg/stl"
)

type App struct {
	model          *stl.Model
	mesh           rl.Mesh
	material       rl.Material
	camera         rl.Camera3D
	cameraDistance float32
	cameraAngleX   float32
	cameraAngleY   float32
	cameraTarget   rl.Vector3
	showWireframe  bool
	showFilled     bool
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: coinpack-view <mesh.stl>")
		os.Exit(1)
	}

	model, err := stl.Parse(os.Args[1])
	if err != nil {
		fmt.Printf("Error loading STL file: %v\n", err)
		os.Exit(1)
	}

	rl.InitWindow(1400, 900, "coinpack - Mesh Viewer")
	rl.SetTargetFPS(60)

	app := &App{
		model:      model,
		showFilled: true,
	}

	app.mesh = stlToRaylibMesh(model)
	app.material = rl.LoadMaterialDefault()

	bbox := model.BoundingBox()
	center := bbox.Center()
	size := bbox.Size()
	maxDim := max(size.X, size.Y, size.Z)
	if model.TriangleCount() == 0 {
		center, maxDim = geometry.Vector3{}, 1
	}

	app.cameraTarget = rl.Vector3{X: center.X, Y: center.Y, Z: center.Z}
	app.cameraDistance = maxDim * 2
	app.cameraAngleX = 0.4
	app.camera = rl.Camera3D{
		Target:     app.cameraTarget,
		Up:         rl.Vector3{X: 0, Y: 0, Z: 1},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}

	result := analysis.AnalyzeModel(model)

	for !rl.WindowShouldClose() {
		app.handleInput()
		app.updateCamera()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.camera)
		if app.showFilled {
			rl.DrawMesh(app.mesh, app.material, rl.MatrixIdentity())
		}
		if app.showWireframe {
			for _, t := range app.model.Triangles {
				v1, v2, v3 := toRaylib(t.V1), toRaylib(t.V2), toRaylib(t.V3)
				rl.DrawLine3D(v1, v2, rl.White)
				rl.DrawLine3D(v2, v3, rl.White)
				rl.DrawLine3D(v3, v1, rl.White)
			}
		}
		rl.EndMode3D()

		app.drawUI(result)
		rl.EndDrawing()
	}

	rl.UnloadMesh(&app.mesh)
	rl.CloseWindow()
}

func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// stlToRaylibMesh converts an STL model to a Raylib mesh with baked lighting
func stlToRaylibMesh(model *stl.Model) rl.Mesh {
	triangleCount := len(model.Triangles)
	vertexCount := triangleCount * 3

	m := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, 0, vertexCount*3)
	normals := make([]float32, 0, vertexCount*3)
	colors := make([]uint8, 0, vertexCount*4)
	texcoords := make([]float32, vertexCount*2)

	lightDir := geometry.NewVector3(-0.5, -0.5, -1.0).Normalize()

	for _, triangle := range model.Triangles {
		normal := triangle.CalculateNormal()

		// Min 30% ambient
		intensity := math.Max(0.3, float64(-normal.Dot(lightDir)))
		r := uint8(212 * intensity)
		g := uint8(154 * intensity)
		b := uint8(52 * intensity)

		for _, v := range [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3} {
			vertices = append(vertices, v.X, v.Y, v.Z)
			normals = append(normals, normal.X, normal.Y, normal.Z)
			colors = append(colors, r, g, b, 255)
		}
	}

	if len(vertices) > 0 {
		m.Vertices = &vertices[0]
		m.Normals = &normals[0]
		m.Colors = &colors[0]
		m.Texcoords = &texcoords[0]
		rl.UploadMesh(&m, false)
	}

	return m
}

// handleInput processes user input
func (app *App) handleInput() {
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		app.cameraAngleY += delta.X * 0.01
		app.cameraAngleX += delta.Y * 0.01

		// Clamp vertical rotation
		app.cameraAngleX = min(max(app.cameraAngleX, -1.5), 1.5)
	}

	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		app.cameraDistance *= 1.0 - wheel*0.03
		if app.cameraDistance < 1.0 {
			app.cameraDistance = 1.0
		}
	}

	if rl.IsKeyPressed(rl.KeyW) {
		app.showWireframe = !app.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.showFilled = !app.showFilled
	}
}

// updateCamera orbits around the target with Z up
func (app *App) updateCamera() {
	ax, ay := float64(app.cameraAngleX), float64(app.cameraAngleY)
	d := app.cameraDistance

	app.camera.Position = rl.Vector3{
		X: app.cameraTarget.X + d*float32(math.Cos(ax)*math.Sin(ay)),
		Y: app.cameraTarget.Y - d*float32(math.Cos(ax)*math.Cos(ay)),
		Z: app.cameraTarget.Z + d*float32(math.Sin(ax)),
	}
	app.camera.Target = app.cameraTarget
}

// drawUI draws the user interface
func (app *App) drawUI(result *analysis.MeasurementResult) {
	y := int32(10)
	lineHeight := int32(20)

	rl.DrawText(fmt.Sprintf("Model: %s", app.model.Name), 10, y, 16, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("Triangles: %d", result.TriangleCount), 10, y, 16, rl.White)
	y += lineHeight
	if result.TriangleCount%mesh.TrianglesPerCylinder == 0 {
		rl.DrawText(fmt.Sprintf("Coins: %d", result.TriangleCount/mesh.TrianglesPerCylinder), 10, y, 16, rl.White)
		y += lineHeight
	}
	rl.DrawText(fmt.Sprintf("Volume: %.2f", result.Volume), 10, y, 16, rl.White)
	y += lineHeight * 2

	rl.DrawText("Dimensions:", 10, y, 16, rl.Yellow)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("  X: %.2f", result.Dimensions.X), 10, y, 16, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("  Y: %.2f", result.Dimensions.Y), 10, y, 16, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("  Z: %.2f", result.Dimensions.Z), 10, y, 16, rl.White)
	y += lineHeight * 2

	rl.DrawText("Controls:", 10, y, 16, rl.Yellow)
	y += lineHeight
	rl.DrawText("  Left Drag: Rotate view", 10, y, 14, rl.LightGray)
	y += lineHeight
	rl.DrawText("  Mouse Wheel: Zoom", 10, y, 14, rl.LightGray)
	y += lineHeight
	rl.DrawText("  W: Toggle wireframe", 10, y, 14, rl.LightGray)
	y += lineHeight
	rl.DrawText("  F: Toggle fill", 10, y, 14, rl.LightGray)

	rl.DrawText(fmt.Sprintf("FPS: %d", rl.GetFPS()), 10, int32(rl.GetScreenHeight())-30, 20, rl.Lime)
}
