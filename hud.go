package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/scroller/game"
)

var (
	hudTextColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	hudButtonIdle = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xdd}
	hudButtonDown = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	hudPanelColor = color.NRGBA{A: 200}
)

// HUD is the score readout, the Restart and Music buttons and the win
// overlay.
type HUD struct {
	ui *ebitenui.UI

	score    *widget.Text
	fps      *widget.Text
	music    *widget.Button
	winPanel *widget.Container
	winScore *widget.Text
	shown    bool
}

func NewHUD(frameW, frameH float64, onRestart, onMusic func()) *HUD {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(hudButtonIdle),
		Pressed: imageui.NewNineSliceColor(hudButtonDown),
	}
	btnTextColor := &widget.ButtonTextColor{Idle: hudTextColor}
	btnPadding := widget.NewInsetsSimple(6)

	h := &HUD{}

	h.score = widget.NewText(widget.TextOpts.Text("Score: 0", &face, hudTextColor))
	h.fps = widget.NewText(widget.TextOpts.Text("FPS: 0", &face, hudTextColor))

	restart := widget.NewButton(
		widget.ButtonOpts.Image(btnImg),
		widget.ButtonOpts.Text("Restart", &face, btnTextColor),
		widget.ButtonOpts.TextPadding(btnPadding),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onRestart()
		}),
	)
	h.music = widget.NewButton(
		widget.ButtonOpts.Image(btnImg),
		widget.ButtonOpts.Text("Music: Off", &face, btnTextColor),
		widget.ButtonOpts.TextPadding(btnPadding),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onMusic()
		}),
	)

	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	for _, w := range []widget.PreferredSizeLocateableWidget{h.score, h.fps, restart, h.music} {
		bar.AddChild(w)
	}

	title := widget.NewText(
		widget.TextOpts.Text("YOU WIN", &face, hudTextColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	h.winScore = widget.NewText(
		widget.TextOpts.Text("", &face, hudTextColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	again := widget.NewButton(
		widget.ButtonOpts.Image(btnImg),
		widget.ButtonOpts.Text("Play Again", &face, btnTextColor),
		widget.ButtonOpts.TextPadding(btnPadding),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onRestart()
		}),
	)

	h.winPanel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(hudPanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(frameW/3), int(frameH/4)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	h.winPanel.AddChild(title)
	h.winPanel.AddChild(h.winScore)
	h.winPanel.AddChild(again)
	h.winPanel.GetWidget().Visibility = widget.Visibility_Hide

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(bar)
	root.AddChild(h.winPanel)

	h.ui = &ebitenui.UI{Container: root}
	return h
}

// Update refreshes the labels from this frame's signals and runs the UI.
func (h *HUD) Update(sig game.Signals, fps float64, musicOn bool) {
	h.score.Label = fmt.Sprintf("Score: %d", sig.Score)
	h.fps.Label = fmt.Sprintf("FPS: %.0f", fps)
	if text := h.music.Text(); text != nil {
		if musicOn {
			text.Label = "Music: On"
		} else {
			text.Label = "Music: Off"
		}
	}

	won := sig.State == game.StateWon
	if won != h.shown {
		h.shown = won
		if won {
			h.winScore.Label = fmt.Sprintf("Score: %d", sig.Score)
			h.winPanel.GetWidget().Visibility = widget.Visibility_Show
		} else {
			h.winPanel.GetWidget().Visibility = widget.Visibility_Hide
		}
		h.winPanel.RequestRelayout()
	}

	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}
