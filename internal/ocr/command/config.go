package command

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// Selection is what the user picks in the form
type Selection struct {
	ImagePath string
	OutputDir string
}

var (
	// ErrConfigCancelled is returned when the user cancels the form
	ErrConfigCancelled = fmt.Errorf("configuration cancelled")
)

// imageTypes are the extensions offered by the file picker
var imageTypes = []string{".png", ".jpg", ".jpeg"}

// configCollector collects the image and output directory using huh
type configCollector struct {
	baseDir string
	last    Selection
}

// newConfigCollector creates a new configCollector starting in baseDir
func newConfigCollector(baseDir, outputDir string) *configCollector {
	return &configCollector{
		baseDir: baseDir,
		last:    Selection{OutputDir: outputDir},
	}
}

// Collect asks for an image and where to save exports.
// The previous answers are offered as defaults.
func (c *configCollector) Collect() (*Selection, error) {
	sel := &Selection{OutputDir: c.last.OutputDir}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewFilePicker().
				Title("🖼️  Image").
				Description("Supported formats: PNG, JPG, JPEG").
				CurrentDirectory(c.baseDir).
				AllowedTypes(imageTypes).
				Picking(true).
				Value(&sel.ImagePath).
				Validate(validateNotEmpty("image")),

			huh.NewInput().
				Title("💾 Output Directory").
				Description("Where exported .txt and .csv files are saved").
				Value(&sel.OutputDir).
				Placeholder(c.last.OutputDir).
				Validate(validateNotEmpty("output directory")),
		),
	).WithTheme(huh.ThemeBase16())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrConfigCancelled
		}
		return nil, fmt.Errorf("error collecting configuration: %w", err)
	}

	c.last = *sel
	return sel, nil
}

func validateNotEmpty(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}
