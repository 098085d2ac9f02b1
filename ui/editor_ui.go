package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/automoto/blockhop/components"
	cfg "github.com/automoto/blockhop/config"
	"github.com/automoto/blockhop/shared/leveldata"
	"github.com/automoto/blockhop/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// EditorUI is the toolbar across the top of the level editor.
type EditorUI struct {
	UI     *ebitenui.UI
	Editor *components.EditorData

	OnSave func(asNew bool)
	OnPlay func()
	OnQuit func()

	toolButtons map[leveldata.Kind]*widget.Button
	saveButton  *widget.Button
	statusLabel *widget.Label

	normalFace text.Face
	smallFace  text.Face
}

// NewEditorUI builds the toolbar for ed.
func NewEditorUI(ed *components.EditorData, onSave func(asNew bool), onPlay, onQuit func()) *EditorUI {
	eui := &EditorUI{
		Editor:      ed,
		OnSave:      onSave,
		OnPlay:      onPlay,
		OnQuit:      onQuit,
		toolButtons: make(map[leveldata.Kind]*widget.Button, len(systems.EditorTools)),
	}

	eui.loadFonts()
	eui.buildUI()

	return eui
}

func (eui *EditorUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	eui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	eui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (eui *EditorUI) buildUI() {
	// Transparent root so the grid drawn underneath shows through
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	toolbar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.PanelGray)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.C.Width, systems.EditorToolbarHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchHorizontal:  true,
			}),
		),
	)

	for i, kind := range systems.EditorTools {
		k := kind
		btn := eui.button(fmt.Sprintf("%d %s", i+1, systems.ToolName(k)), func() {
			eui.Editor.Tool = k
			eui.UpdateUI()
		})
		eui.toolButtons[k] = btn
		toolbar.AddChild(btn)
	}

	eui.saveButton = eui.button("Save", func() {
		if eui.OnSave != nil {
			eui.OnSave(false)
		}
		eui.UpdateUI()
	})
	toolbar.AddChild(eui.saveButton)

	toolbar.AddChild(eui.button("Save New", func() {
		if eui.OnSave != nil {
			eui.OnSave(true)
		}
		eui.UpdateUI()
	}))

	toolbar.AddChild(eui.button("Play", func() {
		if eui.OnPlay != nil {
			eui.OnPlay()
		}
	}))

	toolbar.AddChild(eui.button("Quit", func() {
		if eui.OnQuit != nil {
			eui.OnQuit()
		}
	}))

	eui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &eui.smallFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	toolbar.AddChild(eui.statusLabel)

	rootContainer.AddChild(toolbar)

	eui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (eui *EditorUI) button(label string, clicked func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(64, 28),
		),
		widget.ButtonOpts.Image(eui.buttonImage()),
		widget.ButtonOpts.Text(label, &eui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			clicked()
		}),
	)
}

func (eui *EditorUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.ButtonPress),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

// UpdateUI syncs labels with the editor state.
func (eui *EditorUI) UpdateUI() {
	for kind, btn := range eui.toolButtons {
		// The selected tool is shown disabled
		btn.GetWidget().Disabled = kind == eui.Editor.Tool
	}

	if eui.saveButton != nil {
		eui.saveButton.GetWidget().Disabled = !eui.Editor.Dirty() && eui.Editor.Path != ""
	}

	if eui.statusLabel != nil {
		eui.statusLabel.Label = eui.status()
	}
}

func (eui *EditorUI) status() string {
	name := eui.Editor.Name
	if eui.Editor.Path != "" {
		name = filepath.Base(eui.Editor.Path)
	}
	if eui.Editor.Dirty() {
		name += " *"
	}
	if eui.Editor.Status != "" {
		return name + "  " + eui.Editor.Status
	}
	return name
}

// Update runs the UI and refreshes widget state every frame.
func (eui *EditorUI) Update() {
	eui.UI.Update()
	eui.UpdateUI()
}

// Draw renders the toolbar.
func (eui *EditorUI) Draw(screen *ebiten.Image) {
	eui.UI.Draw(screen)
}
