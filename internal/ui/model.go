package ui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"deckgrip/internal/deck"
	"deckgrip/internal/domain"
	"deckgrip/internal/presentation"
	"deckgrip/internal/ui/input"
	"deckgrip/internal/ui/views"
)

type textMode int

const (
	modeNone textMode = iota
	modeNoteEditor
	modeGoTo
)

// Options wires the model to the rest of the program
type Options struct {
	Store    *presentation.Store
	Deck     *deck.Deck
	Renderer *deck.Renderer
	Display  *TerminalDisplay
	Registry *input.Registry // nil uses DefaultShortcuts
	Input    input.Options
	Clock    presentation.Clock
	Logger   *zap.Logger

	EstimatedDuration time.Duration
	StartPresenter    bool
	// AutoStart starts the talk timer as soon as the model is built
	AutoStart bool
}

// Model represents the UI state
type Model struct {
	store     *presentation.Store
	deck      *deck.Deck
	renderer  *deck.Renderer
	display   *TerminalDisplay
	registry  *input.Registry
	input     *input.Handler
	clock     presentation.Clock
	log       *zap.Logger
	estimated time.Duration

	width  int
	height int

	mode       textMode
	noteEditor textarea.Model
	noteSlide  string
	gotoInput  textinput.Model
	help       help.Model

	styles *views.Styles
	bar    *views.ProgressBar

	overviewCursor int
	settingsCursor int

	status     string
	statusKind views.StatusKind
	lastSlide  int

	pager    *PagerOps
	pending  []tea.Cmd
	quitting bool
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	m := &Model{
		store:     opts.Store,
		deck:      opts.Deck,
		renderer:  opts.Renderer,
		display:   opts.Display,
		registry:  opts.Registry,
		clock:     opts.Clock,
		log:       opts.Logger,
		estimated: opts.EstimatedDuration,
		help:      help.New(),
		lastSlide: -1,
	}
	if m.registry == nil {
		m.registry = input.NewRegistry(DefaultShortcuts()...)
	}
	if m.renderer == nil {
		m.renderer = deck.NewRenderer()
	}
	if m.display == nil {
		m.display = NewTerminalDisplay(m.store.Settings().Theme)
	}
	if m.clock == nil {
		m.clock = presentation.SystemClock{}
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	m.log = m.log.Named("ui")
	m.input = input.New(m.registry, m, opts.Input)

	m.noteEditor = textarea.New()
	m.noteEditor.Placeholder = "Speaker notes for this slide"
	m.noteEditor.ShowLineNumbers = false

	m.gotoInput = textinput.New()
	m.gotoInput.Placeholder = "slide number or title"
	m.gotoInput.CharLimit = 80

	m.store.SetTotalSlides(m.deck.Len())
	if opts.AutoStart {
		m.store.StartPresentation()
	}
	if opts.StartPresenter {
		m.store.SetPresenterViewOpen(true)
	}
	m.announce()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager = NewPagerOps(p)
}

// TextEntryFocused reports whether a text field owns the keyboard
func (m *Model) TextEntryFocused() bool {
	return m.mode != modeNone
}

// Apply routes a shortcut command. UI commands are handled here, the rest
// go to the store.
func (m *Model) Apply(cmd presentation.Command) {
	switch cmd.(type) {
	case QuitCommand:
		m.quitting = true
		m.pending = append(m.pending, tea.Quit)
	case EditNoteCommand:
		m.openNoteEditor()
	case GoToPromptCommand:
		m.openGoTo()
	case OutlinePagerCommand:
		outline := m.deck.Outline(m.store.NoteForSlide)
		m.pending = append(m.pending, m.pager.showCmd(outline))
	case TogglePresenterViewCommand:
		m.store.SetPresenterViewOpen(!m.store.State().PresenterViewOpen)
	case presentation.ToggleOverviewMode:
		st := m.store.State()
		if !st.OverviewMode {
			m.overviewCursor = st.CurrentSlide
		}
		m.store.Apply(cmd)
	case presentation.ToggleAccessibilityPanel:
		m.settingsCursor = 0
		m.store.Apply(cmd)
	default:
		m.store.Apply(cmd)
	}
	m.announce()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.noteEditor.SetWidth(max(20, min(80, msg.Width-10)))
		m.noteEditor.SetHeight(max(3, min(12, msg.Height-12)))
		m.gotoInput.Width = max(10, min(40, msg.Width-14))

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		m.store.Tick()
		m.announce()
		return m, tick()

	case DeckReloadedMsg:
		m.reloadDeck(msg)

	case EventMsg:
		m.handleEvent(msg.Event)

	case pagerMsg:
		if msg.err != nil {
			m.setStatus("Pager failed: "+msg.err.Error(), views.StatusError)
		}

	case tea.KeyMsg:
		if m.mode != modeNone {
			return m, m.updateTextEntry(msg)
		}
		st := m.store.State()
		switch {
		case st.AccessibilityPanelOpen && m.handleSettingsKey(msg):
		case st.OverviewMode && !st.ShortcutsVisible && m.handleOverviewKey(msg):
		default:
			m.input.HandleKey(msg, m)
		}
		return m, m.flush()

	case tea.MouseMsg:
		m.input.HandleMouse(msg, m, m.clock.Now())
		return m, m.flush()
	}

	return m, nil
}

func (m *Model) flush() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

func (m *Model) reloadDeck(msg DeckReloadedMsg) {
	if msg.Err != nil {
		m.setStatus("Reload failed, keeping previous deck: "+msg.Err.Error(), views.StatusError)
		return
	}
	if msg.Deck == nil {
		return
	}
	m.deck = msg.Deck
	m.renderer.Reset()
	m.store.SetTotalSlides(m.deck.Len())
	// total changed under us; clamp the current slide into range
	m.store.SetCurrentSlide(m.store.State().CurrentSlide)
	m.overviewCursor = min(m.overviewCursor, max(0, m.deck.Len()-1))
	m.lastSlide = -1
	m.announce()
	m.setStatus(fmt.Sprintf("Deck reloaded, %d slides", m.deck.Len()), views.StatusSuccess)
}

func (m *Model) handleEvent(e domain.DomainEvent) {
	switch ev := e.(type) {
	case domain.PersistFailedEvent:
		m.setStatus("Could not save notes and settings: "+ev.Err.Error(), views.StatusError)
	case domain.PresentationStartedEvent:
		m.setStatus("Timer started", views.StatusSuccess)
	case domain.PresentationResetEvent:
		m.setStatus("Presentation reset", views.StatusInfo)
	}
}

// announce updates the status line when the slide changed, like a live
// region would
func (m *Model) announce() {
	st := m.store.State()
	if st.CurrentSlide == m.lastSlide {
		return
	}
	m.lastSlide = st.CurrentSlide
	s, ok := m.deck.Slide(st.CurrentSlide)
	if !ok {
		m.setStatus("No slides", views.StatusInfo)
		return
	}
	m.setStatus(fmt.Sprintf("Slide %d of %d: %s", st.CurrentSlide+1, st.TotalSlides, s.Title), views.StatusInfo)
}

func (m *Model) setStatus(text string, kind views.StatusKind) {
	m.status = text
	m.statusKind = kind
	if kind == views.StatusError {
		m.log.Warn(text)
	}
}

// Status returns the current status line text
func (m *Model) Status() string {
	return m.status
}

func (m *Model) openNoteEditor() {
	s, ok := m.deck.Slide(m.store.State().CurrentSlide)
	if !ok {
		return
	}
	m.noteSlide = s.ID
	existing := m.store.NoteForSlide(s.ID)
	if existing == "" {
		existing = s.Notes
	}
	m.noteEditor.SetValue(existing)
	m.mode = modeNoteEditor
	m.pending = append(m.pending, m.noteEditor.Focus())
}

func (m *Model) openGoTo() {
	m.gotoInput.SetValue("")
	m.mode = modeGoTo
	m.pending = append(m.pending, m.gotoInput.Focus())
}

func (m *Model) closeTextEntry() {
	m.noteEditor.Blur()
	m.gotoInput.Blur()
	m.mode = modeNone
}

func (m *Model) updateTextEntry(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.mode {
	case modeGoTo:
		switch msg.Type {
		case tea.KeyEsc:
			m.closeTextEntry()
			return nil
		case tea.KeyEnter:
			query := m.gotoInput.Value()
			m.closeTextEntry()
			if idx, ok := deck.Find(m.deck, query); ok {
				m.store.GoToSlide(idx)
				m.announce()
			} else {
				m.setStatus(fmt.Sprintf("No slide matches %q", query), views.StatusError)
			}
			return nil
		}
		m.gotoInput, cmd = m.gotoInput.Update(msg)

	case modeNoteEditor:
		switch msg.Type {
		case tea.KeyEsc:
			m.closeTextEntry()
			m.setStatus("Note discarded", views.StatusInfo)
			return nil
		case tea.KeyCtrlS:
			m.store.UpdateNote(m.noteSlide, m.noteEditor.Value())
			m.closeTextEntry()
			m.setStatus("Note saved", views.StatusSuccess)
			return nil
		}
		m.noteEditor, cmd = m.noteEditor.Update(msg)
	}
	return cmd
}

func (m *Model) handleOverviewKey(msg tea.KeyMsg) bool {
	total := m.deck.Len()
	if total == 0 {
		return false
	}
	cols := views.OverviewColumns(m.width)
	switch msg.String() {
	case "left", "h":
		m.overviewCursor--
	case "right", "l":
		m.overviewCursor++
	case "up", "k":
		m.overviewCursor -= cols
	case "down", "j":
		m.overviewCursor += cols
	case "enter", " ", "space":
		m.store.GoToSlide(m.overviewCursor)
		m.announce()
		return true
	default:
		return false
	}
	m.overviewCursor = min(max(m.overviewCursor, 0), total-1)
	return true
}

const settingsRows = 7

func (m *Model) settingsRows() []views.SettingRow {
	s := m.store.Settings()
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	return []views.SettingRow{
		{Label: "Theme", Value: string(s.Theme)},
		{Label: "Reduced motion", Value: onOff(s.ReducedMotion)},
		{Label: "Auto-advance", Value: onOff(s.AutoProgress)},
		{Label: "Auto-advance delay", Value: strconv.Itoa(s.AutoProgressDurationSeconds) + "s"},
		{Label: "Speaker notes", Value: onOff(s.ShowNotes)},
		{Label: "Progress bar", Value: onOff(s.ShowProgress)},
		{Label: "Slide numbers", Value: onOff(s.ShowSlideNumbers)},
	}
}

func ptr[T any](v T) *T { return &v }

func (m *Model) handleSettingsKey(msg tea.KeyMsg) bool {
	s := m.store.Settings()
	switch msg.String() {
	case "up", "k":
		m.settingsCursor = (m.settingsCursor + settingsRows - 1) % settingsRows
	case "down", "j":
		m.settingsCursor = (m.settingsCursor + 1) % settingsRows
	case "enter", " ", "space":
		m.toggleSetting(s)
	case "left", "h":
		if m.settingsCursor == 3 {
			m.store.UpdateSettings(domain.SettingsPatch{AutoProgressDurationSeconds: ptr(max(5, s.AutoProgressDurationSeconds-5))})
		}
	case "right", "l":
		if m.settingsCursor == 3 {
			m.store.UpdateSettings(domain.SettingsPatch{AutoProgressDurationSeconds: ptr(s.AutoProgressDurationSeconds + 5)})
		}
	default:
		return false
	}
	return true
}

func (m *Model) toggleSetting(s domain.Settings) {
	var p domain.SettingsPatch
	switch m.settingsCursor {
	case 0:
		m.store.ToggleTheme()
		return
	case 1:
		p.ReducedMotion = ptr(!s.ReducedMotion)
	case 2:
		p.AutoProgress = ptr(!s.AutoProgress)
	case 3:
		return
	case 4:
		p.ShowNotes = ptr(!s.ShowNotes)
	case 5:
		p.ShowProgress = ptr(!s.ShowProgress)
	case 6:
		p.ShowSlideNumbers = ptr(!s.ShowSlideNumbers)
	}
	m.store.UpdateSettings(p)
}
