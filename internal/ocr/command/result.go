package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/marksalpeter/visionocr/internal/ocr"
	"github.com/marksalpeter/visionocr/internal/ocr/export"
)

// resultAction is what the user asked for when leaving the result screen
type resultAction int

const (
	actionQuit resultAction = iota
	actionChooseAnother
)

const (
	defaultViewportWidth  = 80
	defaultViewportHeight = 15
	// headerLines is the room left for metadata, diagnostic and help around the text
	headerLines = 12
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	textStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62"))
)

// notice is a one-line message about a save attempt
type notice struct {
	text string
	err  bool
}

// exportSaver saves one export of the session's current result
type exportSaver interface {
	SaveExport(s *ocr.Session, kind string) (string, error)
}

// resultModel shows the extraction result of one session and lets the user save exports
type resultModel struct {
	saver    exportSaver
	session  *ocr.Session
	viewport viewport.Model
	notices  []notice
	action   resultAction
}

// newResultModel creates a new result model for the session's current state
func newResultModel(saver exportSaver, session *ocr.Session) *resultModel {
	vp := viewport.New(defaultViewportWidth, defaultViewportHeight)
	if text, ok := ocr.ExtractedText(session.Outcome()); ok {
		vp.SetContent(text)
	}
	return &resultModel{
		saver:    saver,
		session:  session,
		viewport: vp,
	}
}

func (m *resultModel) Init() tea.Cmd {
	return nil
}

func (m *resultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width - 2
		m.viewport.Height = max(msg.Height-headerLines, 3)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "enter":
			m.action = actionQuit
			return m, tea.Quit
		case "n":
			m.action = actionChooseAnother
			return m, tea.Quit
		case "t":
			m.save(export.KindText)
			return m, nil
		case "c":
			m.save(export.KindCSV)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// save writes one export. Each kind is saved independently so a failure
// in one never hides the other.
func (m *resultModel) save(kind string) {
	if _, ok := ocr.ExtractedText(m.session.Outcome()); !ok {
		return
	}
	path, err := m.saver.SaveExport(m.session, kind)
	if err != nil {
		m.notices = append(m.notices, notice{text: err.Error(), err: true})
		return
	}
	m.notices = append(m.notices, notice{text: fmt.Sprintf("Saved %s export to %s", kind, path)})
}

func (m *resultModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("OCR Result"))
	b.WriteString("\n\n")

	if upload := m.session.Upload(); upload != nil {
		b.WriteString(fmt.Sprintf("File: %s\n", upload.Name))
		b.WriteString(fmt.Sprintf("Type: %s\n", upload.ContentType))
		b.WriteString(fmt.Sprintf("Size: %s\n", humanize.Bytes(uint64(upload.Size))))
		b.WriteString(fmt.Sprintf("Dimensions: %dx%d\n", upload.Width, upload.Height))
		b.WriteString("\n")
	}

	if err := m.session.Err(); err != nil {
		b.WriteString(errorStyle.Render("✗ Vision API client is not initialized. Cannot extract text."))
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(err.Error()))
		b.WriteString("\n\n")
		b.WriteString(infoStyle.Render("n: choose another file • q: quit"))
		return b.String()
	}

	outcome := m.session.Outcome()
	b.WriteString(ocr.Match(outcome,
		func(ocr.ServiceError) string { return errorStyle.Render("✗ " + ocr.Diagnostic(outcome)) },
		func(ocr.TextFound) string { return successStyle.Render("✓ " + ocr.Diagnostic(outcome)) },
		func(ocr.NoTextFound) string { return warnStyle.Render("! " + ocr.Diagnostic(outcome)) },
	))
	b.WriteString("\n")

	if _, ok := ocr.ExtractedText(outcome); !ok {
		b.WriteString("\n")
		b.WriteString(infoStyle.Render("n: choose another file • q: quit"))
		return b.String()
	}

	b.WriteString(textStyle.Render(m.viewport.View()))
	b.WriteString("\n")

	for _, n := range m.notices {
		if n.err {
			b.WriteString(errorStyle.Render("✗ " + n.text))
		} else {
			b.WriteString(successStyle.Render("✓ " + n.text))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(infoStyle.Render("t: save .txt • c: save .csv • n: choose another file • q: quit"))
	return b.String()
}

// runResultModel runs the result screen and returns what the user chose next
func runResultModel(ctx context.Context, saver exportSaver, session *ocr.Session) (resultAction, error) {
	model := newResultModel(saver, session)
	program := tea.NewProgram(model, tea.WithContext(ctx))

	finalModel, err := program.Run()
	if err != nil {
		return actionQuit, fmt.Errorf("error running result model: %w", err)
	}

	result, ok := finalModel.(*resultModel)
	if !ok {
		return actionQuit, fmt.Errorf("unexpected model type")
	}
	return result.action, nil
}
