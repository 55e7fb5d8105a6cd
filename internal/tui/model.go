package tui

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"textcorpus/internal/corpus"
	"textcorpus/internal/domain"
	"textcorpus/internal/service"
)

// CorpusPort is the TUI-facing subset of the corpus service.
type CorpusPort interface {
	Corpus() *corpus.Corpus
	Search(query string) (*corpus.Corpus, error)
}

// Model is the Bubble Tea model for browsing a processed corpus.
type Model struct {
	service       CorpusPort
	input         textinput.Model
	viewport      viewport.Model
	all           *corpus.Corpus
	results       *corpus.Corpus
	status        string
	cursor        int
	ready         bool
	lastQuery     string
	previewLength int
}

// New creates a new TUI model instance showing every document of the corpus.
func New(service CorpusPort, previewLength int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type words to filter and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	all := service.Corpus()
	if all == nil {
		all = corpus.New()
	}
	return Model{
		service:       service,
		input:         ti,
		viewport:      vp,
		all:           all,
		results:       all,
		previewLength: previewLength,
		status:        fmt.Sprintf("%d documents. Type to filter.", all.NDocs()),
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := documentBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header, status, query box, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderCurrentDocument())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			m.runQuery(strings.TrimSpace(m.input.Value()))
			m.viewport.SetContent(m.renderCurrentDocument())
			return m, nil
		case "down":
			if n := m.results.NDocs(); n > 0 {
				m.cursor = (m.cursor + 1) % n
				m.viewport.SetContent(m.renderCurrentDocument())
				return m, nil
			}
		case "up":
			if n := m.results.NDocs(); n > 0 {
				m.cursor = (m.cursor - 1 + n) % n
				m.viewport.SetContent(m.renderCurrentDocument())
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) runQuery(q string) {
	res, err := m.service.Search(q)
	if err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	m.results = res
	m.cursor = 0
	m.lastQuery = q
	if q == "" {
		m.status = fmt.Sprintf("%d documents.", res.NDocs())
		return
	}
	m.status = fmt.Sprintf("%d documents match %q", res.NDocs(), q)
}

// View renders the TUI layout and current document.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Text Corpus")
	counts := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).
		Render(fmt.Sprintf("%d of %d documents", m.results.NDocs(), m.all.NDocs()))
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	doc := documentBoxStyle.Render(m.viewport.View())
	return header + "\n" + counts + "\n" + doc + "\n" + input + "\n" + status
}

func (m Model) renderCurrentDocument() string {
	d := m.results.Doc(m.cursor)
	if d == nil {
		return "No documents."
	}
	title := fmt.Sprintf("Document %d/%d", m.cursor+1, m.results.NDocs())
	if attrs := formatAttributes(d.Attributes); attrs != "" {
		title += "  " + attributeStyle.Render(attrs)
	}
	body := highlightTerms(corpus.Truncate(d.Text, m.previewLength), m.lastQuery)
	return title + "\n\n" + body
}

var (
	documentBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	attributeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func highlightTerms(text, query string) string {
	terms := service.QueryTerms(query)
	if len(terms) == 0 {
		return text
	}
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = regexp.QuoteMeta(t)
	}
	re := regexp.MustCompile(`(?i)` + strings.Join(quoted, "|"))
	return re.ReplaceAllStringFunc(text, func(s string) string {
		return highlightStyle.Render(s)
	})
}

func formatAttributes(attrs domain.Attributes) string {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, attrs[k])
	}
	return strings.Join(parts, " ")
}
