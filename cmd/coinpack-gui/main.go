package main

import (
	"fmt"
	"image"
	"os"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/coinpack/internal/config"
	"github.com/philipparndt/coinpack/pkg/coinpack"
	"github.com/philipparndt/coinpack/pkg/mesh"
	"github.com/philipparndt/coinpack/pkg/preview"
	"github.com/philipparndt/coinpack/pkg/viewer"
)

const previewSize = 768

type App struct {
	window fyne.Window
	result *coinpack.Result
	extent float32

	image        *canvas.Image
	meshView     *viewer.MeshView
	slider       *widget.Slider
	layerLabel   *widget.Label
	statsLabel   *widget.Label
	summaryLabel *widget.Label
}

func main() {
	a := app.New()
	w := a.NewWindow("coinpack - Layer Browser")

	appInstance := &App{window: w}
	appInstance.setupUI()

	cfg := config.Defaults()
	if len(os.Args) > 1 {
		loaded, err := config.Load(os.Args[1])
		if err != nil {
			dialog.ShowError(err, w)
		} else {
			cfg = loaded
		}
	}
	appInstance.run(cfg)

	w.Resize(fyne.NewSize(1100, 800))
	w.ShowAndRun()
}

func (a *App) setupUI() {
	a.image = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	a.image.FillMode = canvas.ImageFillContain
	a.image.SetMinSize(fyne.NewSize(400, 400))

	a.meshView = viewer.NewMeshView()

	a.slider = widget.NewSlider(0, 0)
	a.slider.Step = 1
	a.slider.OnChanged = func(v float64) {
		a.showLayer(int(v))
	}

	a.layerLabel = widget.NewLabel("")
	a.layerLabel.TextStyle = fyne.TextStyle{Bold: true}
	a.statsLabel = widget.NewLabel("")
	a.summaryLabel = widget.NewLabel("")

	openButton := widget.NewButton("Open Config", func() {
		a.showFileDialog()
	})
	defaultsButton := widget.NewButton("Reset to Defaults", func() {
		a.run(config.Defaults())
	})

	infoPanel := container.NewVBox(
		widget.NewLabel("Run Summary:"),
		widget.NewSeparator(),
		a.summaryLabel,
		widget.NewSeparator(),
		widget.NewLabel("Layer:"),
		widget.NewSeparator(),
		a.layerLabel,
		a.statsLabel,
		widget.NewSeparator(),
		openButton,
		defaultsButton,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	content := container.NewBorder(
		nil,
		a.slider,
		nil,
		infoScroll,
		container.NewAppTabs(
			container.NewTabItem("Cross-section", a.image),
			container.NewTabItem("3D", a.meshView),
		),
	)
	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		cfg, err := config.Load(reader.URI().Path())
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.run(cfg)
	}, a.window)
}

// run packs the ellipsoid without building a mesh and shows the middle
// layer.
func (a *App) run(cfg config.Config) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	params := cfg.Params()
	result, err := coinpack.Run(params, coinpack.Options{Workers: workers, SkipMesh: true})
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to pack: %w", err), a.window)
		return
	}

	a.result = result
	a.extent = max(params.Ellipsoid.A, params.Ellipsoid.B) * 1.05

	s := result.Summary
	a.summaryLabel.SetText(fmt.Sprintf(
		"Coin: r=%g h=%g\nEllipsoid: a=%g b=%g c=%g\n\nLayers: %d (%d skipped)\nCoins: %d\nFilled: %.2f%%",
		params.Coin.Radius, params.Coin.Height,
		params.Ellipsoid.A, params.Ellipsoid.B, params.Ellipsoid.C,
		s.Layers, s.SkippedLayers, s.Circles, s.FillPercent,
	))

	if len(result.Layers) == 0 {
		a.slider.Hide()
		a.showLayer(0)
		return
	}

	a.slider.Show()
	a.slider.Max = float64(len(result.Layers) - 1)
	middle := len(result.Layers) / 2
	a.slider.SetValue(float64(middle))
	a.showLayer(middle)
}

func (a *App) showLayer(index int) {
	if a.result == nil {
		return
	}

	layer, err := a.result.Layer(index)
	if err != nil {
		a.layerLabel.SetText(err.Error())
		a.statsLabel.SetText("")
		a.image.Image = image.NewRGBA(image.Rect(0, 0, 1, 1))
		a.image.Refresh()
		a.meshView.SetTriangles(nil)
		return
	}

	a.layerLabel.SetText(fmt.Sprintf("Layer %d of %d", layer.Layer.Index+1, len(a.result.Layers)))

	coins := fmt.Sprintf("%d", len(layer.Circles))
	if layer.Skipped {
		coins = "none (start offset not found)"
	}
	a.statsLabel.SetText(fmt.Sprintf(
		"z: %.3f\nThickness: %.3f\nSemi-axes: %.3f x %.3f\nCoins: %s\nCoverage: %.2f%%",
		layer.Layer.Z, layer.Layer.Thickness, layer.Layer.A, layer.Layer.B, coins, layer.Coverage()*100,
	))

	a.image.Image = preview.Render(layer, preview.Options{Size: previewSize, Extent: a.extent})
	a.image.Refresh()
	a.meshView.SetTriangles(mesh.Layer(layer))
}
