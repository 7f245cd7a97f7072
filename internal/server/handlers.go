package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openmonopoly/monopoly-server-go/internal/game"
	"github.com/openmonopoly/monopoly-server-go/internal/game/rules"
)

type createGameRequest struct {
	Players []string `json:"players"`
	Agents  []string `json:"agents,omitempty"`
	Seed    *int64   `json:"seed,omitempty"`
}

type createGameResponse struct {
	GameID   string        `json:"game_id"`
	Snapshot game.Snapshot `json:"snapshot"`
}

type applyActionRequest struct {
	PlayerID int          `json:"player_id"`
	Action   rules.Action `json:"action"`
}

type applyActionResponse struct {
	Applied  bool          `json:"applied"`
	Snapshot game.Snapshot `json:"snapshot"`
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Players) < 2 {
		http.Error(w, "at least two players required", http.StatusBadRequest)
		return
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	sess, err := s.createSession(req.Players, req.Agents, seed)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusCreated, createGameResponse{
		GameID:   sess.id.String(),
		Snapshot: sess.runner.Snapshot(),
	})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFromRequest(w, r)
	if sess == nil {
		return
	}
	writeJSON(w, http.StatusOK, sess.runner.Snapshot())
}

func (s *Server) handleLegalActions(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFromRequest(w, r)
	if sess == nil {
		return
	}
	playerID, err := strconv.Atoi(r.URL.Query().Get("player"))
	if err != nil {
		http.Error(w, "missing or invalid player query parameter", http.StatusBadRequest)
		return
	}
	actions := sess.runner.LegalActions(playerID)
	if actions == nil {
		actions = []rules.Action{}
	}
	writeJSON(w, http.StatusOK, actions)
}

func (s *Server) handleApplyAction(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFromRequest(w, r)
	if sess == nil {
		return
	}
	var req applyActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	applied := sess.runner.Apply(req.PlayerID, req.Action)
	snapshot := sess.runner.Snapshot()
	if applied {
		sess.broadcast(snapshot)
	} else if s.logger != nil {
		s.logger.Debug("action rejected",
			zap.String("game_id", sess.id.String()),
			zap.Int("player", req.PlayerID),
			zap.String("action", string(req.Action.Type)))
	}
	writeJSON(w, http.StatusOK, applyActionResponse{Applied: applied, Snapshot: snapshot})
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFromRequest(w, r)
	if sess == nil {
		return
	}
	writeJSON(w, http.StatusOK, sess.runner.Events())
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFromRequest(w, r)
	if sess == nil {
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("websocket upgrade failed", zap.Error(err))
		}
		return
	}
	// First frame before subscribing keeps all writes serialized under the
	// subscriber lock.
	if err := conn.WriteJSON(snapshotMessage{Type: "snapshot", Snapshot: sess.runner.Snapshot()}); err != nil {
		conn.Close()
		return
	}
	sess.subscribe(conn)

	// Drain client frames so pings and closes are processed; the stream
	// is server-to-client only.
	go func() {
		defer sess.unsubscribe(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *Server) sessionFromRequest(w http.ResponseWriter, r *http.Request) *session {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid game id", http.StatusBadRequest)
		return nil
	}
	sess := s.session(id)
	if sess == nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return nil
	}
	return sess
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
