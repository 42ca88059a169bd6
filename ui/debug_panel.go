package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/brawlcore/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DebugPanel is the sandbox overlay for debug toggles and resets.
type DebugPanel struct {
	UI      *ebitenui.UI
	Visible bool

	options cfg.DebugOptions
	arenas  []string
	arena   int

	// Callbacks
	OnOptions    func(cfg.DebugOptions)
	OnResetStale func()
	OnRestart    func(arena string)

	hitboxButton  *widget.Button
	hurtboxButton *widget.Button
	logButton     *widget.Button
	arenaButton   *widget.Button

	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewDebugPanel builds the panel. arenas lists the selectable arena names and
// current is the one loaded now.
func NewDebugPanel(opts cfg.DebugOptions, arenas []string, current string) *DebugPanel {
	p := &DebugPanel{
		options: opts,
		arenas:  arenas,
	}
	for i, name := range arenas {
		if name == current {
			p.arena = i
		}
	}

	p.loadFonts()
	p.buildUI()
	return p
}

// Options returns the current toggles.
func (p *DebugPanel) Options() cfg.DebugOptions {
	return p.options
}

// SetOptions replaces the toggles, e.g. after a keyboard shortcut.
func (p *DebugPanel) SetOptions(opts cfg.DebugOptions) {
	p.options = opts
	p.UpdateUI()
}

func (p *DebugPanel) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	p.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	p.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (p *DebugPanel) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	content.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("DEBUG", &p.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	p.hitboxButton = p.button("Hitboxes", func() {
		p.options.ShowHitboxes = !p.options.ShowHitboxes
		p.optionsChanged()
	})
	p.hurtboxButton = p.button("Hurtboxes", func() {
		p.options.ShowHurtboxes = !p.options.ShowHurtboxes
		p.optionsChanged()
	})
	p.logButton = p.button("Log hits", func() {
		p.options.LogHits = !p.options.LogHits
		p.optionsChanged()
	})
	p.arenaButton = p.button("Arena", func() {
		if len(p.arenas) > 0 {
			p.arena = (p.arena + 1) % len(p.arenas)
		}
		p.UpdateUI()
	})
	resetButton := p.button("Reset staling", func() {
		if p.OnResetStale != nil {
			p.OnResetStale()
		}
	})
	restartButton := p.button("Restart", func() {
		if p.OnRestart != nil {
			p.OnRestart(p.selectedArena())
		}
	})

	for _, b := range []*widget.Button{p.hitboxButton, p.hurtboxButton, p.logButton, p.arenaButton, resetButton, restartButton} {
		content.AddChild(b)
	}

	rootContainer.AddChild(content)
	p.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (p *DebugPanel) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(150, 20),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &p.smallFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (p *DebugPanel) optionsChanged() {
	p.UpdateUI()
	if p.OnOptions != nil {
		p.OnOptions(p.options)
	}
}

func (p *DebugPanel) selectedArena() string {
	if len(p.arenas) == 0 {
		return ""
	}
	return p.arenas[p.arena]
}

// UpdateUI refreshes button labels from the current state.
func (p *DebugPanel) UpdateUI() {
	setLabel(p.hitboxButton, "Hitboxes: "+onOff(p.options.ShowHitboxes))
	setLabel(p.hurtboxButton, "Hurtboxes: "+onOff(p.options.ShowHurtboxes))
	setLabel(p.logButton, "Log hits: "+onOff(p.options.LogHits))
	setLabel(p.arenaButton, "Arena: "+p.selectedArena())
	if p.arenaButton != nil {
		p.arenaButton.GetWidget().Disabled = len(p.arenas) < 2
	}
}

func setLabel(b *widget.Button, label string) {
	if b == nil {
		return
	}
	if textWidget := b.Text(); textWidget != nil {
		textWidget.Label = label
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// Update runs the widgets while the panel is visible.
func (p *DebugPanel) Update() {
	if !p.Visible {
		return
	}
	p.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !p.initialized {
		p.initialized = true
		p.UpdateUI()
	}
}
