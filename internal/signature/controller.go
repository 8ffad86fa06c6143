package signature

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"SignaturePad/internal/render"
	"SignaturePad/internal/state"

	"github.com/google/uuid"
)

// DefaultPlaceholder is shown in empty draw and type surfaces.
const DefaultPlaceholder = "Signature"

// Config configures a Controller. Only OnSave is required.
type Config struct {
	Placeholder      string
	Tabs             []Mode
	OnSave           func(image.Image)
	OnCancel         func()
	Color            color.Color
	ShowColorOptions bool

	// Persister, when set, receives every Result before OnSave.
	Persister Persister
	// Now stamps results; defaults to time.Now.
	Now func() time.Time
}

// Controller holds the content of every mode and commits the active one.
//
// Switching modes never discards content; Clear resets all of it. The commit
// guard is per instance, so several widgets can coexist.
type Controller struct {
	id        string
	cfg       Config
	active    Mode
	capture   *state.Capture
	strokeLen int
	drawn     bool

	image    image.Image
	imageSet bool
	text     string
	family   string
	color    color.Color

	// OnChange is called whenever CanCommit or the visible content may
	// have changed.
	OnChange func()
}

// New validates cfg and returns a controller with its first tab active.
func New(cfg Config) (*Controller, error) {
	if cfg.OnSave == nil {
		return nil, ErrNoSaveHandler
	}
	if len(cfg.Tabs) == 0 {
		cfg.Tabs = AllModes
	}
	seen := make(map[Mode]bool, len(cfg.Tabs))
	for _, m := range cfg.Tabs {
		if !m.valid() || seen[m] {
			return nil, fmt.Errorf("tab %v: %w", m, ErrInvalidTabs)
		}
		seen[m] = true
	}
	cfg.Tabs = append([]Mode(nil), cfg.Tabs...)
	if cfg.Placeholder == "" {
		cfg.Placeholder = DefaultPlaceholder
	}
	if cfg.OnCancel == nil {
		cfg.OnCancel = func() {}
	}
	if cfg.Color == nil {
		cfg.Color = color.Black
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	c := &Controller{
		id:     uuid.NewString(),
		cfg:    cfg,
		active: cfg.Tabs[0],
		family: render.DefaultFamily,
		color:  cfg.Color,
	}
	c.capture = state.NewCapture(nil)
	c.capture.OnChange = c.strokeChanged
	return c, nil
}

// ID identifies this controller in logs.
func (c *Controller) ID() string { return c.id }

// Placeholder returns the hint text for empty surfaces.
func (c *Controller) Placeholder() string { return c.cfg.Placeholder }

// ShowColorOptions reports whether the color picker should be offered.
func (c *Controller) ShowColorOptions() bool { return c.cfg.ShowColorOptions }

// Tabs returns the available modes in order.
func (c *Controller) Tabs() []Mode { return append([]Mode(nil), c.cfg.Tabs...) }

// Active returns the active mode.
func (c *Controller) Active() Mode { return c.active }

// SelectMode activates m without touching any content.
func (c *Controller) SelectMode(m Mode) error {
	if !c.hasTab(m) {
		return fmt.Errorf("select %v: %w", m, ErrModeUnavailable)
	}
	if m != c.active {
		c.active = m
		c.notify()
	}
	return nil
}

func (c *Controller) hasTab(m Mode) bool {
	for _, t := range c.cfg.Tabs {
		if t == m {
			return true
		}
	}
	return false
}

// Capture returns the draw mode's gesture capture.
func (c *Controller) Capture() *state.Capture { return c.capture }

// SetImage stores a picked image. A nil image means the picker was
// dismissed and leaves the previous selection in place.
func (c *Controller) SetImage(img image.Image) {
	if img == nil {
		return
	}
	c.image = img
	c.imageSet = true
	c.notify()
}

// Image returns the picked image and whether one is set.
func (c *Controller) Image() (image.Image, bool) { return c.image, c.imageSet }

// SetText sets the typed signature.
func (c *Controller) SetText(s string) {
	if s != c.text {
		c.text = s
		c.notify()
	}
}

// Text returns the typed signature.
func (c *Controller) Text() string { return c.text }

// SetFont selects the type mode's font family. Unknown names are accepted
// here and reported by the rasterizer at commit time.
func (c *Controller) SetFont(family string) {
	if family != c.family {
		c.family = family
		c.notify()
	}
}

// Font returns the type mode's font family.
func (c *Controller) Font() string { return c.family }

// SetColor sets the ink color for drawn and typed signatures.
func (c *Controller) SetColor(col color.Color) {
	if col == nil {
		col = color.Black
	}
	c.color = col
	c.notify()
}

// Color returns the ink color.
func (c *Controller) Color() color.Color { return c.color }

// CanCommit reports whether Done is enabled. Draw mode needs a point added
// since the last commit or clear; image and type modes are always enabled.
func (c *Controller) CanCommit() bool {
	if c.active == Draw {
		return c.drawn && !c.capture.Path().Empty()
	}
	return true
}

// Input returns what the active mode would rasterize and with which options.
func (c *Controller) Input() (render.Input, render.Options) {
	opts := render.Options{Color: c.color}
	switch c.active {
	case Image:
		if !c.imageSet {
			return render.ImageInput{}, opts
		}
		return render.ImageInput{Image: c.image}, opts
	case Type:
		return render.TextInput{Text: c.text, Family: c.family}, opts
	default:
		return render.StrokeInput{Stroke: c.capture.Path().Render()}, opts
	}
}

// Commit rasterizes the active mode, persists the result if configured and
// hands the image to OnSave. Persistence errors are logged, not returned.
func (c *Controller) Commit() (*Result, error) {
	if !c.CanCommit() {
		return nil, ErrCommitDisabled
	}

	in, opts := c.Input()
	img, err := render.Rasterize(in, opts)
	if err != nil {
		var re *render.RenderError
		if errors.As(err, &re) {
			log.Printf("[SIGN %s] Render failed in %v mode: %v", c.id, c.active, re)
		}
		return nil, fmt.Errorf("commit %v: %w", c.active, err)
	}

	res := &Result{Image: img, Mode: c.active, CreatedAt: c.cfg.Now()}
	b := img.Bounds()
	log.Printf("[SIGN %s] Committed %v signature %dx%d", c.id, res.Mode, b.Dx(), b.Dy())

	if c.cfg.Persister != nil {
		if err := c.cfg.Persister.Persist(res); err != nil {
			log.Printf("[SIGN %s] Persist failed, ignoring: %v", c.id, err)
		}
	}
	c.cfg.OnSave(img)

	c.drawn = false
	c.notify()
	return res, nil
}

// Cancel invokes the host's OnCancel.
func (c *Controller) Cancel() {
	log.Printf("[SIGN %s] Cancelled", c.id)
	c.cfg.OnCancel()
}

// Clear resets every mode to its initial content, whichever is active.
func (c *Controller) Clear() {
	c.image = nil
	c.imageSet = false
	c.text = ""
	c.drawn = false
	c.strokeLen = 0
	// Reset notifies through strokeChanged.
	c.capture.Reset()
}

func (c *Controller) strokeChanged() {
	n := c.capture.Path().Len()
	if n > c.strokeLen {
		c.drawn = true
	}
	c.strokeLen = n
	c.notify()
}

func (c *Controller) notify() {
	if c.OnChange != nil {
		c.OnChange()
	}
}
