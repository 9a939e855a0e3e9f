package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuEntry is one button on the title menu.
type MenuEntry struct {
	Label    string
	OnSelect func()
}

// MenuUI holds the ebitenui interface for the title menu
type MenuUI struct {
	UI *ebitenui.UI

	hint *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI builds a centred column: title, one button per entry, then a
// hint line that can be changed with SetHint.
func NewMenuUI(title string, entries []MenuEntry) *MenuUI {
	mui := &MenuUI{}
	mui.loadFonts()
	mui.buildUI(title, entries)
	return mui
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{Source: fontSource, Size: 28}
	mui.normalFace = &text.GoTextFace{Source: fontSource, Size: 16}
	mui.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (mui *MenuUI) buildUI(title string, entries []MenuEntry) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	for _, entry := range entries {
		onSelect := entry.OnSelect
		contentContainer.AddChild(widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(220, 36),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Stretch: true,
				}),
			),
			widget.ButtonOpts.Image(buttonImage()),
			widget.ButtonOpts.Text(entry.Label, &mui.normalFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{255, 255, 200, 255},
				Pressed: color.RGBA{200, 200, 200, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onSelect != nil {
					onSelect()
				}
			}),
		))
	}

	mui.hint = widget.NewLabel(
		widget.LabelOpts.Text("", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{160, 160, 170, 255},
		}),
	)
	contentContainer.AddChild(mui.hint)

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// SetHint replaces the line under the buttons.
func (mui *MenuUI) SetHint(s string) {
	mui.hint.Label = s
}

func (mui *MenuUI) Update() {
	mui.UI.Update()
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}
