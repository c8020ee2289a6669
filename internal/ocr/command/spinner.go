package command

import (
	"context"

	huhSpinner "github.com/charmbracelet/huh/spinner"
)

// withSpinner shows a spinner titled title until action returns
func withSpinner(ctx context.Context, title string, action func()) error {
	return huhSpinner.New().
		Type(huhSpinner.Dots).
		Title(title).
		Context(ctx).
		Action(action).
		Run()
}
