// Package server exposes games over HTTP and WebSocket. It is a thin
// shell: all rules live in the engine, all driving in the runner; the
// server only routes requests, serializes snapshots, and fans events out
// to subscribers.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/openmonopoly/monopoly-server-go/internal/agent"
	"github.com/openmonopoly/monopoly-server-go/internal/config"
	"github.com/openmonopoly/monopoly-server-go/internal/game"
	"github.com/openmonopoly/monopoly-server-go/internal/historian"
	"github.com/openmonopoly/monopoly-server-go/internal/runner"
)

// Server hosts game sessions.
type Server struct {
	cfg     config.ServerConfig
	gameCfg config.GameConfig
	hist    *historian.Historian
	logger  *zap.Logger

	upgrader websocket.Upgrader

	mu       sync.RWMutex
	sessions map[uuid.UUID]*session

	httpServer *http.Server
}

// session is one hosted game: its runner plus WebSocket subscribers.
type session struct {
	id     uuid.UUID
	runner *runner.Runner

	subMu sync.Mutex
	subs  map[*websocket.Conn]struct{}
}

// New creates a server. hist may be nil to disable persistence; logger
// may be nil.
func New(cfg config.ServerConfig, gameCfg config.GameConfig, hist *historian.Historian, logger *zap.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		gameCfg:  gameCfg,
		hist:     hist,
		logger:   logger,
		sessions: make(map[uuid.UUID]*session),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /games", s.handleCreateGame)
	mux.HandleFunc("GET /games/{id}", s.handleSnapshot)
	mux.HandleFunc("GET /games/{id}/actions", s.handleLegalActions)
	mux.HandleFunc("POST /games/{id}/actions", s.handleApplyAction)
	mux.HandleFunc("GET /games/{id}/events", s.handleEvents)
	mux.HandleFunc("GET /games/{id}/ws", s.handleWebSocket)

	s.httpServer = &http.Server{
		Addr:         cfg.Address,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// ListenAndServe blocks serving HTTP until Shutdown.
func (s *Server) ListenAndServe() error {
	if s.logger != nil {
		s.logger.Info("http server listening", zap.String("address", s.cfg.Address))
	}
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops the HTTP server and closes all subscriber connections.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.RLock()
	for _, sess := range s.sessions {
		sess.closeSubscribers()
	}
	s.mu.RUnlock()
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) session(id uuid.UUID) *session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// createSession builds a game, its agents, and a runner, and registers
// the session. Bot seats are driven in the background; human seats act
// through the HTTP action endpoint.
func (s *Server) createSession(playerNames []string, agentKinds []string, seed int64) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sessions) >= s.cfg.MaxGames {
		return nil, errors.New("game limit reached")
	}

	g := game.NewGameState(playerNames, s.gameCfg.ToOptions(), seed, s.logger)
	agents := make([]agent.Agent, 0, len(playerNames))
	autoPlay := true
	for i, name := range playerNames {
		kind := "random"
		if i < len(agentKinds) {
			kind = agentKinds[i]
		}
		switch kind {
		case "greedy":
			agents = append(agents, agent.NewGreedyAgent(i, name))
		case "human":
			autoPlay = false
		default:
			agents = append(agents, agent.NewRandomAgent(i, name, seed+int64(i)+1))
		}
	}

	r := runner.New(g, agents, s.logger)
	sess := &session{
		id:     r.GameID,
		runner: r,
		subs:   make(map[*websocket.Conn]struct{}),
	}
	s.sessions[sess.id] = sess

	if autoPlay {
		go s.autoPlay(sess, g, playerNames)
	}
	return sess, nil
}

// autoPlay drives an all-bot game to completion, broadcasting snapshots
// and recording the final log.
func (s *Server) autoPlay(sess *session, g *game.GameState, playerNames []string) {
	for sess.runner.Step() {
		sess.broadcast(sess.runner.Snapshot())
	}

	final := sess.runner.Snapshot()
	sess.broadcast(final)
	if s.logger != nil {
		s.logger.Info("game finished",
			zap.String("game_id", sess.id.String()),
			zap.Int("winner", final.Winner),
			zap.Int("turns", final.TurnNumber))
	}

	if s.hist != nil {
		if err := s.hist.RecordGame(context.Background(), sess.id, g, playerNames); err != nil && s.logger != nil {
			s.logger.Error("recording game failed",
				zap.String("game_id", sess.id.String()),
				zap.Error(err))
		}
	}
}

func (sess *session) subscribe(conn *websocket.Conn) {
	sess.subMu.Lock()
	sess.subs[conn] = struct{}{}
	sess.subMu.Unlock()
}

func (sess *session) unsubscribe(conn *websocket.Conn) {
	sess.subMu.Lock()
	delete(sess.subs, conn)
	sess.subMu.Unlock()
	conn.Close()
}

func (sess *session) broadcast(snapshot game.Snapshot) {
	sess.subMu.Lock()
	defer sess.subMu.Unlock()
	for conn := range sess.subs {
		if err := conn.WriteJSON(snapshotMessage{Type: "snapshot", Snapshot: snapshot}); err != nil {
			delete(sess.subs, conn)
			conn.Close()
		}
	}
}

func (sess *session) closeSubscribers() {
	sess.subMu.Lock()
	defer sess.subMu.Unlock()
	for conn := range sess.subs {
		conn.Close()
		delete(sess.subs, conn)
	}
}

type snapshotMessage struct {
	Type     string        `json:"type"`
	Snapshot game.Snapshot `json:"snapshot"`
}
