package panel

// Folder groups controllers under a collapsible header
type Folder struct {
	Name        string
	Open        bool
	Controllers []Controller
}

// AddNumber appends a slider with value initialized to min
func (f *Folder) AddNumber(label string, min, max, step float64) *NumberController {
	c := newNumber(label, min, max, step)
	f.Controllers = append(f.Controllers, c)
	return c
}

// AddOption appends an option picker with the first option selected
func (f *Folder) AddOption(label string, options []string) *OptionController {
	c := newOption(label, options)
	f.Controllers = append(f.Controllers, c)
	return c
}

// Panel is the whole control surface
type Panel struct {
	Folders []*Folder
	Visible bool

	focus int // index into Focusable()
	rows  []row
	x, w  int
}

// New returns a visible, empty panel
func New() *Panel {
	return &Panel{Visible: true}
}

// AddFolder appends an open folder
func (p *Panel) AddFolder(name string) *Folder {
	f := &Folder{Name: name, Open: true}
	p.Folders = append(p.Folders, f)
	return f
}

// Folder looks up a folder by name
func (p *Panel) Folder(name string) *Folder {
	for _, f := range p.Folders {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Controller looks up a controller by label across all folders
func (p *Panel) Controller(label string) Controller {
	for _, f := range p.Folders {
		for _, c := range f.Controllers {
			if c.Label() == label {
				return c
			}
		}
	}
	return nil
}

// Number looks up a slider by label
func (p *Panel) Number(label string) *NumberController {
	c, _ := p.Controller(label).(*NumberController)
	return c
}

// Option looks up an option picker by label
func (p *Panel) Option(label string) *OptionController {
	c, _ := p.Controller(label).(*OptionController)
	return c
}

// Focusable lists controllers in open folders, in display order
func (p *Panel) Focusable() []Controller {
	var out []Controller
	for _, f := range p.Folders {
		if !f.Open {
			continue
		}
		out = append(out, f.Controllers...)
	}
	return out
}

// Focused returns the controller receiving keyboard adjustments, nil when hidden or empty
func (p *Panel) Focused() Controller {
	if !p.Visible {
		return nil
	}
	list := p.Focusable()
	if len(list) == 0 {
		return nil
	}
	if p.focus >= len(list) {
		p.focus = len(list) - 1
	}
	return list[p.focus]
}

// FocusNext moves focus by delta, wrapping around
func (p *Panel) FocusNext(delta int) {
	n := len(p.Focusable())
	if n == 0 || !p.Visible {
		return
	}
	p.focus = ((p.focus+delta)%n + n) % n
}

// Adjust nudges the focused controller by steps increments
func (p *Panel) Adjust(steps int) {
	if c := p.Focused(); c != nil {
		c.Adjust(steps)
	}
}

// Cycle advances the focused option controller
func (p *Panel) Cycle() {
	if c := p.Focused(); c != nil {
		c.Cycle()
	}
}

// Toggle shows or hides the panel
func (p *Panel) Toggle() {
	p.Visible = !p.Visible
}

func (p *Panel) focusController(target Controller) {
	for i, c := range p.Focusable() {
		if c == target {
			p.focus = i
			return
		}
	}
}
