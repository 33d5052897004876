package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/blackcoderx/weburl/pkg/endpoint"
	"github.com/blackcoderx/weburl/pkg/meta"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// AllMethods is the method choice that selects the whole class.
const AllMethods = ""

// ErrPickerAborted is returned when the user quits the picker.
var ErrPickerAborted = errors.New("selection aborted")

// Pick is the result of the interactive picker.
type Pick struct {
	Class  string
	Method string
	Format string
}

// Selector returns the pick as a CLI selector, "Class" or "Class#method".
func (p Pick) Selector() string {
	if p.Method == AllMethods {
		return p.Class
	}
	return p.Class + "#" + p.Method
}

// ClassOptions lists the controllers of a source.
func ClassOptions(src meta.Source) []huh.Option[string] {
	var opts []huh.Option[string]
	for _, c := range src.Classes() {
		if !endpoint.IsController(c) {
			continue
		}
		opts = append(opts, huh.NewOption(c.Name, classKey(c)))
	}
	return opts
}

func classKey(c *meta.Class) string {
	if c.QualifiedName != "" {
		return c.QualifiedName
	}
	return c.Name
}

// MethodOptions lists the request methods of a class, led by a whole-class
// entry.
func MethodOptions(class *meta.Class) []huh.Option[string] {
	opts := []huh.Option[string]{huh.NewOption("all endpoints", AllMethods)}
	for _, m := range endpoint.RequestMethods(class) {
		label := fmt.Sprintf("%-7s %s", endpoint.BuildVerb(m), m.Name)
		opts = append(opts, huh.NewOption(label, m.Name))
	}
	return opts
}

// FormatOptions lists output formats by name.
func FormatOptions(formats []string) []huh.Option[string] {
	return huh.NewOptions(formats...)
}

// pickerKeyMap lets esc quit as well as ctrl+c.
func pickerKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	)
	return km
}

// RunPicker walks the user through class, method and format. The form is
// drawn on stderr so the rendered artifact can be piped from stdout.
func RunPicker(src meta.Source, formats []string, defaultFormat string) (Pick, error) {
	classes := ClassOptions(src)
	if len(classes) == 0 {
		return Pick{}, fmt.Errorf("no controllers in catalog")
	}

	var pick Pick
	if err := runForm(huh.NewSelect[string]().
		Title("Controller").
		Options(classes...).
		Value(&pick.Class)); err != nil {
		return Pick{}, err
	}

	class, ok := src.Class(pick.Class)
	if !ok {
		return Pick{}, fmt.Errorf("class not found: %s", pick.Class)
	}

	pick.Format = defaultFormat
	if err := runForm(
		huh.NewSelect[string]().
			Title("Endpoint").
			Options(MethodOptions(class)...).
			Value(&pick.Method),
		huh.NewSelect[string]().
			Title("Format").
			Options(FormatOptions(formats)...).
			Value(&pick.Format),
	); err != nil {
		return Pick{}, err
	}
	return pick, nil
}

func runForm(fields ...huh.Field) error {
	form := huh.NewForm(huh.NewGroup(fields...)).
		WithKeyMap(pickerKeyMap()).
		WithProgramOptions(tea.WithOutput(os.Stderr))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrPickerAborted
		}
		return fmt.Errorf("failed to run picker: %w", err)
	}
	return nil
}
