package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// interactiveCommand creates the interactive command.
func (c *CLI) interactiveCommand() *cobra.Command {
	var opts translateOpts

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Translate declarations as you type",
		Long: `Open a prompt that previews the translation of the declarations being
typed. Enter records the translation in the history; esc quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := c.open(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			tOpts := opts.options()
			preview := func(text string) (string, bool) {
				return s.runner.Engine.Translate(text, s.ix.Index.Reverse, tOpts)
			}
			commit := func(text string) (string, bool, error) {
				tr, err := s.runner.Translate(ctx, s.ix, text, tOpts)
				if err != nil || !opts.sort || tr.Classes == "" {
					return tr.Classes, tr.Matched, err
				}
				sorted, err := s.runner.Sort(s.ix, tr.Classes)
				return sorted, tr.Matched, err
			}

			p := tea.NewProgram(newInteractiveModel(preview, commit),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.keepDefaults, "keep-defaults", false, "keep classes that restate a property's initial value")
	cmd.Flags().BoolVar(&opts.noShorthand, "no-shorthand", false, "emit color opacity as a separate class")
	cmd.Flags().BoolVar(&opts.noSnap, "no-snap", false, "require exact opacity matches")
	cmd.Flags().BoolVar(&opts.sort, "sort", false, "sort recorded translations into authoring order")

	return cmd
}

// =============================================================================
// interactiveModel - live translation prompt
// =============================================================================

const maxHistory = 10

var (
	promptStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	previewStyle = lipgloss.NewStyle().Foreground(colorGreen)
	cursorStyle  = lipgloss.NewStyle().Foreground(colorCyan)
)

type historyEntry struct {
	declarations string
	classes      string
}

type interactiveModel struct {
	preview func(string) (string, bool)
	commit  func(string) (string, bool, error)

	input   []rune
	classes string
	matched bool
	err     error
	history []historyEntry
	width   int
}

func newInteractiveModel(preview func(string) (string, bool), commit func(string) (string, bool, error)) interactiveModel {
	return interactiveModel{preview: preview, commit: commit, width: 80}
}

func (m interactiveModel) Init() tea.Cmd {
	return nil
}

func (m interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.record()
		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
			m.refresh()
		case tea.KeyCtrlU:
			m.input = nil
			m.refresh()
		case tea.KeySpace:
			m.input = append(m.input, ' ')
			m.refresh()
		case tea.KeyRunes:
			m.input = append(m.input, msg.Runes...)
			m.refresh()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m *interactiveModel) refresh() {
	m.err = nil
	text := strings.TrimSpace(string(m.input))
	if text == "" {
		m.classes, m.matched = "", false
		return
	}
	m.classes, m.matched = m.preview(text)
}

func (m *interactiveModel) record() {
	text := strings.TrimSpace(string(m.input))
	if text == "" {
		return
	}
	classes, matched, err := m.commit(text)
	if err != nil {
		m.err = err
		return
	}
	if !matched {
		classes = ""
	}
	m.history = append([]historyEntry{{declarations: text, classes: classes}}, m.history...)
	if len(m.history) > maxHistory {
		m.history = m.history[:maxHistory]
	}
	m.input = nil
	m.refresh()
}

func (m interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("figwind"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("type declarations  ⏎ record  ctrl+u clear  esc quit"))
	b.WriteString("\n\n")

	b.WriteString(promptStyle.Render("› ") + string(m.input) + cursorStyle.Render("█"))
	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString("  " + StyleWarning.Render(m.err.Error()))
	case m.matched:
		b.WriteString("  " + previewStyle.Render(m.classes))
	case len(m.input) > 0:
		b.WriteString("  " + StyleDim.Render("no match"))
	}
	b.WriteString("\n")

	if len(m.history) == 0 {
		return b.String()
	}

	rows := make([][]string, len(m.history))
	for i, h := range m.history {
		classes := h.classes
		if classes == "" {
			classes = "-"
		}
		rows[i] = []string{h.declarations, classes}
	}
	t := newTable("Declarations", "Classes").
		Width(min(m.width, 120)).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return cellStyle(styleHeader)
			case col == 1:
				return cellStyle(StyleHighlight)
			default:
				return cellStyle(StyleValue)
			}
		})

	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d recorded", len(m.history))))
	b.WriteString("\n")
	return b.String()
}
