package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"teletext/internal/config"
	"teletext/internal/eventbus"
	"teletext/internal/fetch"
	"teletext/internal/indicators"
	"teletext/internal/logging"
	"teletext/internal/navigation"
	"teletext/internal/pagelayout"
	"teletext/internal/ui/input"
	inputtypes "teletext/internal/ui/input/types"
	"teletext/internal/ui/views"
)

const (
	highlightDuration = 800 * time.Millisecond
	messageDuration   = 3 * time.Second
	chainTimeout      = 30 * time.Second
)

// Options configures a Model
type Options struct {
	Config        *config.Config
	ConfigService config.ConfigService // nil disables hot reload
	Fetcher       fetch.Fetcher
	Bus           eventbus.EventBus
	Favorites     [navigation.FavoriteSlots]string
	Indicators    []indicators.Option
}

// Model is the Bubble Tea model of the teletext terminal
type Model struct {
	nav           *navigation.Service
	fetcher       fetch.Fetcher
	layout        *pagelayout.Processor
	layoutOpts    pagelayout.Options
	indicatorOpts []indicators.Option
	cfg           *config.Config
	configService config.ConfigService
	bus           eventbus.EventBus

	inputHandler *input.Handler
	keys         inputtypes.KeyMap
	help         help.Model
	spinner      spinner.Model
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	pager        *PagerOps
	program      *tea.Program

	width       int
	height      int
	inPagerMode bool
	message     string
	messageID   int
	ready       bool
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	bus := opts.Bus
	if bus == nil {
		bus = eventbus.NullBus{}
	}

	layout, layoutOpts := NewLayout(cfg, opts.Indicators...)
	nav := navigation.NewService(opts.Fetcher, layout, bus,
		navigation.WithFavorites(opts.Favorites),
		navigation.WithLayoutOptions(layoutOpts),
	)

	keys := inputtypes.DefaultKeyMap()

	s := spinner.New()
	s.Spinner = spinner.Line
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	return &Model{
		nav:           nav,
		fetcher:       opts.Fetcher,
		layout:        layout,
		layoutOpts:    layoutOpts,
		indicatorOpts: opts.Indicators,
		cfg:           cfg,
		configService: opts.ConfigService,
		bus:           bus,
		inputHandler:  input.New(keys),
		keys:          keys,
		help:          help.New(),
		spinner:       s,
		renderer:      views.NewRenderer(),
		helpRenderer:  NewHelpRenderer(),
		pager:         NewPagerOps(nil),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Navigation returns the session the model drives
func (m *Model) Navigation() *navigation.Service {
	return m.nav
}

// Init loads the initial page and starts the spinner and config watcher
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.nav.CurrentPage() == nil {
		cmds = append(cmds, m.runJob(m.nav.NavigateToPage(m.cfg.InitialPage)))
	}
	if m.configService != nil && m.configService.Path() != "" {
		cmds = append(cmds, WatchConfigCmd(m.configService.Path()))
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}

		ctx := &input.ModelContext{Nav: m.nav}
		actions := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	page := m.nav.CurrentPage()
	state := views.ViewState{
		Width:       m.width,
		Height:      m.height,
		Page:        page,
		Highlight:   m.nav.HighlightBreadcrumb(),
		Input:       m.nav.Input(),
		InputDigits: page.InputMode().MaxDigits(),
		ModeName:    m.modeName(),
		Loading:     m.nav.Status() == navigation.StatusLoading,
		PendingPage: m.nav.PendingPage(),
		Spinner:     m.spinner.View(),
		Message:     m.message,
		ContextHelp: m.contextHelp(),
		HelpView:    m.help.View(m.keys),
	}
	if page != nil && page.Meta.Offline {
		state.Error = fmt.Sprintf("P%s unavailable", page.ID)
	}

	return m.renderer.Render(state)
}

func (m *Model) modeName() string {
	if m.inputHandler.CurrentMode() == inputtypes.ModeNormal {
		return ""
	}
	return m.inputHandler.ModeName()
}

func (m *Model) contextHelp() []string {
	page := m.nav.CurrentPage()
	if page == nil {
		return nil
	}
	hasArrows := page.Meta.Continuation != nil
	hasButtons := len(page.ColoredLinks()) > 0
	return m.layout.Renderer().ContextualHelp(m.nav.Category(), hasArrows, hasButtons)
}

// runJob turns a navigation job into a command whose result comes back
// through Update
func (m *Model) runJob(job navigation.Job) tea.Cmd {
	if job == nil {
		return nil
	}
	return func() tea.Msg {
		return pageResultMsg{result: job()}
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.DigitAction:
		return m.runJob(m.nav.HandleDigitPress(a.Digit))

	case inputtypes.EnterAction:
		return m.runJob(m.nav.HandleEnter())

	case inputtypes.BackspaceAction:
		return m.runJob(m.nav.HandleBackspace())

	case inputtypes.CancelAction:
		if m.nav.Input() != "" {
			m.nav.CancelInput()
			return nil
		}
		m.nav.Abort()
		m.nav.ClearHighlight()
		return nil

	case inputtypes.NavigateAction:
		return m.runJob(m.nav.HandleNavigate(navigation.Direction(a.Direction)))

	case inputtypes.ColorAction:
		return m.runJob(m.nav.HandleColorButton(a.Color))

	case inputtypes.FavoriteJumpAction:
		slot := navigation.FavoriteSlot(a.Digit)
		if m.nav.Favorites()[slot] == "" {
			return m.setMessage(fmt.Sprintf("Favorite %d is empty", a.Digit))
		}
		return m.runJob(m.nav.HandleFavoriteKey(slot))

	case inputtypes.StoreFavoriteAction:
		page := m.nav.CurrentPage()
		if page == nil {
			return nil
		}
		if err := m.nav.SetFavorite(navigation.FavoriteSlot(a.Digit), page.ID); err != nil {
			log.Printf("ui: failed to store favorite: %v", err)
			return m.setMessage("Cannot store this page")
		}
		return m.setMessage(fmt.Sprintf("P%s stored as favorite %d", page.ID, a.Digit))

	case inputtypes.ShowHelpAction:
		return m.fetchHelpPager(m.helpRenderer.RenderHelpContentPlain())

	case inputtypes.ShowChainAction:
		return m.fetchChainPager()

	case inputtypes.QuitAction:
		m.nav.Abort()
		return tea.Quit
	}

	return nil
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageResultMsg:
		if !m.nav.Complete(msg.result) {
			return m, nil
		}
		if !m.ready {
			m.ready = true
			m.bus.Publish(eventbus.AppReadyEvent{})
		}
		if m.nav.HighlightBreadcrumb() {
			return m, tea.Tick(highlightDuration, func(time.Time) tea.Msg {
				return clearHighlightMsg{}
			})
		}
		return m, nil

	case clearHighlightMsg:
		m.nav.ClearHighlight()
		return m, nil

	case clearMessageMsg:
		if msg.id == m.messageID {
			m.message = ""
		}
		return m, nil

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case ConfigChangedMsg:
		return m, m.reloadConfig(msg.Path)

	case spinner.TickMsg:
		// Don't continue the tick loop while the pager owns the terminal
		if m.inPagerMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, m.spinner.Tick

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("ui: help pager failed: %v", msg.err)
			return m, m.setMessage("Help unavailable")
		}
		return m, nil

	case chainPagerMsg:
		if msg.err != nil {
			log.Printf("ui: article pager for %s failed: %v", msg.pageID, msg.err)
			return m, m.setMessage(fmt.Sprintf("Cannot open article P%s", msg.pageID))
		}
		return m, nil
	}

	return m, nil
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.NavigationRejectedEvent:
		return m.setMessage(fmt.Sprintf("No such page %s", e.PageID))
	case eventbus.FavoritesChangedEvent:
		logging.Debugf("ui: favorites now %v", e.Favorites)
	}
	return nil
}

// reloadConfig applies a changed config file and re-arms the watcher
func (m *Model) reloadConfig(path string) tea.Cmd {
	watch := WatchConfigCmd(path)

	cfg, err := m.configService.LoadFromPath(path)
	if err != nil {
		log.Printf("ui: failed to reload config: %v", err)
		return tea.Batch(watch, m.setMessage("Config error, keeping previous settings"))
	}

	m.cfg = cfg
	logging.DebugEnabled = cfg.Debug
	m.layout, m.layoutOpts = NewLayout(cfg, m.indicatorOpts...)
	m.nav.SetLayoutProcessor(m.layout, m.layoutOpts)
	m.bus.Publish(eventbus.ConfigChangedEvent{Path: path})

	log.Printf("ui: config reloaded from %s", path)
	return tea.Batch(watch, m.setMessage("Settings reloaded"))
}

// setMessage shows text in the status line for a few seconds
func (m *Model) setMessage(text string) tea.Cmd {
	m.messageID++
	m.message = text
	id := m.messageID
	return tea.Tick(messageDuration, func(time.Time) tea.Msg {
		return clearMessageMsg{id: id}
	})
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil {
		return nil
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.ShowInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{
			err: err,
		}
	}
}

// fetchChainPager returns a command that loads the whole article on screen
// and shows it using ov pager
func (m *Model) fetchChainPager() tea.Cmd {
	page := m.nav.CurrentPage()
	if page == nil || page.Meta.Continuation == nil {
		return m.setMessage("Not an article")
	}
	if m.program == nil || m.fetcher == nil {
		return nil
	}

	start := page.Clone()
	fetcher, layout, opts, sessionID := m.fetcher, m.layout, m.layoutOpts, m.nav.SessionID()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), chainTimeout)
		defer cancel()

		pages, err := fetch.LoadChain(ctx, fetcher, start, sessionID)
		if err != nil {
			return chainPagerMsg{pageID: start.ID, err: err}
		}
		for i := range pages {
			pages[i] = layout.Process(pages[i], opts)
		}

		m.program.Send(pauseRenderingMsg{})
		err = m.pager.ShowInPager(RenderChain(pages))
		m.program.Send(resumeRenderingMsg{})

		return chainPagerMsg{pageID: start.ID, err: err}
	}
}

var _ tea.Model = (*Model)(nil)
