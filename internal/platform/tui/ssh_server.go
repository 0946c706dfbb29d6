// Package tui provides terminal UI components including SSH server support via Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// sessionIDKey stores the per-connection ID in the ssh context.
type sessionIDKey struct{}

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.arcade/host_key.
	HostKeyPath string

	// DBPath is the path to the records database. Empty disables records.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Logger receives session lifecycle events. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.arcade/records.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server for the arcade.
// Every connection runs its own SessionModel; sessions share only the
// records database.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "arcade-ssh",
		})
	}

	var store *storage.Store
	if cfg.DBPath != "" {
		var err error
		store, err = storage.Open(cfg.DBPath)
		if err != nil {
			logger.Warn("could not open records database", "error", err)
			// Continue without records
			store = nil
		}
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("ssh: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".arcade", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("ssh: cannot create host key directory: %w", mkdirErr)
	}

	// The last middleware runs first, so sessions are tagged before the
	// Bubble Tea handler sees them.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("ssh: cannot create server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		wish.Fatalln(sshSession, "arcade needs an interactive terminal (try ssh -t)")
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
	}

	sessionID, _ := sshSession.Context().Value(sessionIDKey{}).(string)
	logger := s.logger.With("session_id", sessionID)

	model := NewSessionModel(SessionOptions{
		Records:  s.store,
		Player:   sshSession.User(),
		Logger:   logger,
		Renderer: bubbletea.MakeRenderer(sshSession),
	}, cfg)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware tags each session with an ID and logs its lifecycle.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		sessionID := uuid.NewString()
		sshSession.Context().SetValue(sessionIDKey{}, sessionID)

		start := time.Now()
		s.logger.Info("session started",
			"session_id", sessionID,
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"session_id", sessionID,
			"user", sshSession.User(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionState is the screen a SessionModel is showing.
type sessionState int

const (
	stateMenu sessionState = iota
	stateLevels
	stateGame
	stateRecords
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Records  *storage.Store // Nil disables records
	Player   string
	Logger   *log.Logger
	Renderer *lipgloss.Renderer
}

// SessionModel manages the full arcade session flow:
// menu -> level picker -> game -> menu, with the records board reachable
// from the menu. It is the top-level model used for SSH sessions.
//
// Child models end themselves with tea.Quit when run standalone; the session
// swallows those commands and switches screens instead.
type SessionModel struct {
	opts    SessionOptions
	config  core.RuntimeConfig
	state   sessionState
	menu    MenuModel
	levels  SokobanLevelModel
	records RecordsModel
	game    *GameModel
	pack    *sokoban.Pack

	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions, cfg core.RuntimeConfig) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return SessionModel{
		opts:   opts,
		config: cfg,
		state:  stateMenu,
		menu:   NewMenuModel(cfg),
		pack:   sokoban.CurrentPack(),
	}
}

// solveStore returns the session store as a SolveStore.
func (m SessionModel) solveStore() SolveStore {
	return RecordsFrom(m.opts.Records)
}

// recordsSource returns the session store as a RecordsSource.
func (m SessionModel) recordsSource() RecordsSource {
	if m.opts.Records == nil {
		return nil
	}
	return m.opts.Records
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.state {
	case stateLevels:
		return m.updateLevels(msg)
	case stateGame:
		return m.updateGame(msg)
	case stateRecords:
		return m.updateRecords(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.records = NewRecordsModel(m.pack, m.recordsSource(), m.config.ScreenW, m.config.ScreenH)
		m.state = stateRecords
		return m, m.records.Init()

	case m.menu.Selected() != nil:
		selected := m.menu.Selected()
		if selected.GameID == sokoban.GameID {
			m.levels = NewSokobanLevelModel(m.pack, m.solveStore(), m.config.ScreenW, m.config.ScreenH)
			m.state = stateLevels
			return m, m.levels.Init()
		}
		return m.startGame(selected.GameID, nil)
	}

	return m, cmd
}

// updateLevels handles updates in the Sokoban level picker.
func (m SessionModel) updateLevels(msg tea.Msg) (tea.Model, tea.Cmd) {
	newLevels, cmd := m.levels.Update(msg)
	if levelModel, ok := newLevels.(SokobanLevelModel); ok {
		m.levels = levelModel
	}

	switch {
	case m.levels.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.levels.WantsBack():
		return m.backToMenu()
	case m.levels.Selected() != nil:
		return m.startGame(sokoban.GameID, m.levels.Selected())
	}

	return m, cmd
}

// startGame creates a fresh game for this session and switches to it.
func (m SessionModel) startGame(gameID string, sel *SokobanSelection) (tea.Model, tea.Cmd) {
	game, err := registry.Create(gameID)
	if err != nil {
		m.opts.Logger.Error("could not create game", "game", gameID, "error", err)
		return m.backToMenu()
	}

	gameModel := NewGameModel(game, m.config, GameOptions{
		Records:  m.solveStore(),
		Logger:   m.opts.Logger,
		Player:   m.opts.Player,
		Renderer: m.opts.Renderer,
	})
	cmd := gameModel.Init()

	// Jump after Init so the first Reset does not override the choice
	if sel != nil {
		if ls, ok := game.(LevelSelector); ok {
			ls.SelectLevel(sel.Level - 1)
		}
	}

	m.opts.Logger.Info("game started", "game", gameID)
	m.game = &gameModel
	m.state = stateGame
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		m.game = nil
		return m.backToMenu()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateRecords handles updates on the records board.
func (m SessionModel) updateRecords(msg tea.Msg) (tea.Model, tea.Cmd) {
	newRecords, cmd := m.records.Update(msg)
	if recordsModel, ok := newRecords.(RecordsModel); ok {
		m.records = recordsModel
	}

	switch {
	case m.records.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.records.IsGoingBack():
		return m.backToMenu()
	}

	return m, cmd
}

// backToMenu resets the menu with the current window size.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.config)
	m.state = stateMenu
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateLevels:
		return m.levels.View()
	case stateGame:
		if m.game != nil {
			return m.game.View()
		}
	case stateRecords:
		return m.records.View()
	}

	return m.menu.View()
}
