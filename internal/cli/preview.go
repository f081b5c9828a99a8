package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/boxgrid/pkg/box"
	"github.com/matzehuels/boxgrid/pkg/errors"
)

// alignCycle is the order the preview steps through alignments.
var alignCycle = []box.Alignment{box.AlignFirst, box.AlignCenter1, box.AlignCenter2, box.AlignLast}

// previewModel is the bubbletea model for the interactive wrap preview.
// Arrow keys adjust the wrap width, "a" cycles the alignment, and the
// paragraph re-renders live.
type previewModel struct {
	text     string
	width    int
	alignIdx int
	maxWidth int // terminal width cap, updated on resize
}

func newPreviewModel(text string, width int) previewModel {
	return previewModel{text: text, width: width, maxWidth: 120}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.width > 1 {
				m.width--
			}
		case "right", "l":
			if m.width < m.maxWidth {
				m.width++
			}
		case "a":
			m.alignIdx = (m.alignIdx + 1) % len(alignCycle)
		}
	case tea.WindowSizeMsg:
		m.maxWidth = max(msg.Width-2, 1)
		if m.width > m.maxWidth {
			m.width = m.maxWidth
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	a := alignCycle[m.alignIdx]
	b := box.Para(a, m.width, m.text)

	var sb strings.Builder
	sb.WriteString(styleTitle.Render("Wrap Preview"))
	sb.WriteString("\n")
	sb.WriteString(styleDim.Render("←/→ width  a alignment  q quit"))
	sb.WriteString("\n\n")

	// Ruler marks the wrap width above the paragraph.
	sb.WriteString(styleDim.Render(strings.Repeat("-", m.width)))
	sb.WriteString("\n")
	sb.WriteString(box.Render(b))
	sb.WriteString(styleDim.Render(strings.Repeat("-", m.width)))
	sb.WriteString("\n\n")

	status := fmt.Sprintf("width %s  align %s  size %dx%d",
		styleHighlight.Render(fmt.Sprintf("%d", m.width)),
		styleHighlight.Render(a.String()),
		b.Rows(), b.Cols())
	sb.WriteString(styleDim.Render(status))
	return sb.String()
}

// newPreviewCmd creates the preview command. It needs a file argument:
// standard input belongs to the TUI.
func newPreviewCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Interactively preview word wrapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			if width <= 0 {
				width = cfg.Width
			}

			text, _, err := readInput(args)
			if err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				return errors.New(errors.ErrCodeInvalidInput, "%s is empty", args[0])
			}

			p := tea.NewProgram(newPreviewModel(text, width))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "initial wrap width in cells")

	return cmd
}
