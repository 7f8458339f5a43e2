package remote

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode"

	"terrasky/internal/config"
	"terrasky/internal/game"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
)

// maxNameBytes bounds user names before they reach the logs.
const maxNameBytes = 16

// ErrServerFull is returned when MaxSessions games are already running.
var ErrServerFull = errors.New("server is full")

// Session is one connected player. Each has its own simulation; sessions
// never share state.
type Session struct {
	ID      uuid.UUID
	Name    string
	Started time.Time
}

// Server runs one independent game per SSH connection.
type Server struct {
	// SaveRuns appends a run summary per finished session to the data dir.
	SaveRuns bool

	cfg         *config.Config
	logger      *slog.Logger
	maxSessions int

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session

	// newScreen is replaced in tests.
	newScreen func(gossh.Session) (tcell.Screen, error)
}

// NewServer creates a Server. maxSessions <= 0 means no limit; a nil
// logger means slog.Default().
func NewServer(cfg *config.Config, maxSessions int, logger *slog.Logger) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:         cfg,
		logger:      logger,
		maxSessions: maxSessions,
		sessions:    make(map[uuid.UUID]*Session),
		newScreen:   NewScreen,
	}
}

// Handle is the gliderlabs handler for one connection. It blocks until the
// player quits or the connection closes.
func (srv *Server) Handle(s gossh.Session) {
	sess, err := srv.register(s.User())
	if err != nil {
		fmt.Fprintf(s, "%v, try again later\n", err)
		srv.logger.Warn("session refused", "user", sanitizeName(s.User()), "error", err)
		return
	}
	defer srv.unregister(sess)
	log := srv.logger.With("session", sess.ID, "user", sess.Name)

	screen, err := srv.newScreen(s)
	if errors.Is(err, ErrNoPty) {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p <port> <host>")
		return
	}
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		log.Error("terminal setup", "error", err)
		return
	}

	g, err := game.NewWithOptions(game.Options{Screen: screen, Config: srv.cfg, Logger: log, SaveRun: srv.SaveRuns})
	if err != nil {
		screen.Fini()
		log.Error("create game", "error", err)
		return
	}
	log.Info("session started", "seed", g.Seed(), "remote", s.RemoteAddr())
	g.Run(s.Context())
	log.Info("session ended", "duration", time.Since(sess.Started).Round(time.Second), "tick", g.Sim().Tick)
}

func (srv *Server) register(user string) (*Session, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	if srv.maxSessions > 0 && len(srv.sessions) >= srv.maxSessions {
		return nil, ErrServerFull
	}
	sess := &Session{ID: uuid.New(), Name: sanitizeName(user), Started: time.Now()}
	if sess.Name == "" {
		sess.Name = "player-" + sess.ID.String()[:8]
	}
	srv.sessions[sess.ID] = sess
	return sess, nil
}

func (srv *Server) unregister(sess *Session) {
	srv.mu.Lock()
	delete(srv.sessions, sess.ID)
	srv.mu.Unlock()
}

// Sessions returns a snapshot of the connected players.
func (srv *Server) Sessions() []Session {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	out := make([]Session, 0, len(srv.sessions))
	for _, s := range srv.sessions {
		out = append(out, *s)
	}
	return out
}

// sanitizeName drops control characters and truncates to maxNameBytes
// without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) {
			continue
		}
		if b.Len()+len(string(r)) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}
