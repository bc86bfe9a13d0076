package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mixplan/executor"
	"mixplan/planner"
	"mixplan/report"
)

var (
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// docDoneMsg reports one document's Execute call finishing, successfully
// or not.
type docDoneMsg struct {
	index  int
	result executor.Result
	err    error
}

// watchModel drives an interactive progress view over a sequential run of
// executor.Execute calls, one per document, the way playlist-sorter's tui
// model drives a background GA run over a channel of updates.
type watchModel struct {
	spinner spinner.Model

	docs   []document
	mixes  []planner.OptimalMix
	outDir string

	ctx    context.Context
	cancel context.CancelFunc

	index    int
	results  []executor.Result
	errs     []error
	done     bool
	quitting bool
}

func newWatchModel(ctx context.Context, cancel context.CancelFunc, docs []document, mixes []planner.OptimalMix, outDir string) watchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return watchModel{
		spinner: s,
		docs:    docs,
		mixes:   mixes,
		outDir:  outDir,
		ctx:     ctx,
		cancel:  cancel,
		results: make([]executor.Result, len(docs)),
		errs:    make([]error, len(docs)),
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, executeOneCmd(m.ctx, m.docs, m.mixes, m.outDir, 0))
}

// executeOneCmd runs one document's executeOne and reports the result as
// a docDoneMsg — the bubbletea equivalent of startGA's goroutine-wrapped
// work function.
func executeOneCmd(ctx context.Context, docs []document, mixes []planner.OptimalMix, outDir string, index int) tea.Cmd {
	return func() tea.Msg {
		d := docs[index]
		result, err := executeOne(ctx, d, mixes[index], outputPath(outDir, d.path))
		return docDoneMsg{index: index, result: result, err: err}
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.cancel()
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case docDoneMsg:
		m.results[msg.index] = msg.result
		m.errs[msg.index] = msg.err

		if msg.err != nil {
			m.done = true
			return m, tea.Quit
		}

		next := msg.index + 1
		if next >= len(m.docs) {
			m.index = next - 1
			m.done = true
			return m, tea.Quit
		}
		m.index = next
		return m, executeOneCmd(m.ctx, m.docs, m.mixes, m.outDir, next)

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m watchModel) View() string {
	var b strings.Builder
	for i, d := range m.docs {
		switch {
		case m.errs[i] != nil:
			b.WriteString(failStyle.Render(fmt.Sprintf(" ✗ %s: %v", d.path, m.errs[i])) + "\n")
		case i < m.index || (i == m.index && m.done):
			b.WriteString(doneStyle.Render(fmt.Sprintf(" ✓ %s (%d bytes, %s)", d.path, m.results[i].BytesWritten, m.results[i].Elapsed)) + "\n")
		case i == m.index:
			b.WriteString(fmt.Sprintf(" %s %s\n", m.spinner.View(), d.path))
		default:
			b.WriteString(pendingStyle.Render(fmt.Sprintf("   %s", d.path)) + "\n")
		}
	}
	if m.quitting {
		b.WriteString("\ncancelled\n")
	}
	return b.String()
}

// runWatch runs docs through watchModel's interactive progress view and
// surfaces the first execution error (if any) after the program exits.
func runWatch(ctx context.Context, docs []document, mixes []planner.OptimalMix, outDir string) error {
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := newWatchModel(watchCtx, cancel, docs, mixes, outDir)
	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("interactive progress view: %w", err)
	}

	final, ok := finalModel.(watchModel)
	if !ok {
		return nil
	}

	for i, d := range final.docs {
		if final.errs[i] != nil {
			return fmt.Errorf("execute %s: %w", d.path, final.errs[i])
		}
		if warning := report.RenderDivergenceWarning(final.results[i].DivergenceWarning); warning != "" {
			fmt.Fprint(os.Stderr, warning)
		}
	}
	return nil
}
