// internal/httpserver/routes_game.go
//
// HTTP routes for game sessions: the thin I/O wrapper over the discovery
// engine. The core exposes data; formatting is the client's job.
//
//   - POST /game/new                  → create a session (optional initial state)
//   - GET  /game/{id}                 → pool + existing words
//   - POST /game/{id}/letters         → add letters to the pool
//   - POST /game/{id}/letters/delete  → remove letters from the pool
//   - POST /game/{id}/claim           → claim a possible word
//   - GET  /game/{id}/possible        → all currently formable words
//   - GET  /game/{id}/potential       → words one letter away, by missing letter
//   - GET  /game/{id}/export          → serialized state token
//   - POST /game/import               → new session from a token
//
// Sessions live in the in-memory store for active play; every mutation
// best-effort persists the serialized snapshot to SQLite, and GET /game/{id}
// rehydrates from that snapshot when the memory store misses (e.g. after a
// restart).

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/grabble/internal/game"
	"github.com/robalobadob/grabble/internal/store"
)

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Post("/game/new", s.handleNewGame)
	r.Post("/game/import", s.handleImport)
	r.Route("/game/{id}", func(r chi.Router) {
		r.Get("/", s.handleGetGame)
		r.Post("/letters", s.handleAddLetters)
		r.Post("/letters/delete", s.handleDeleteLetters)
		r.Post("/claim", s.handleClaim)
		r.Get("/possible", s.handlePossible)
		r.Get("/potential", s.handlePotential)
		r.Get("/export", s.handleExport)
	})
}

// gameView is the state surfaced for display: plain pool and word list.
type gameView struct {
	GameID string   `json:"gameId"`
	Pool   string   `json:"pool"`
	Words  []string `json:"words"`
}

func viewOf(sess *store.Session) gameView {
	return gameView{GameID: sess.ID, Pool: sess.Game.Pool(), Words: sess.Game.ExistingWords()}
}

// ------------------------------ lifecycle ----------------------------------

// newGameReq optionally seeds the session with letters and placed words.
type newGameReq struct {
	Letters string   `json:"letters"`
	Words   []string `json:"words"`
}

// handleNewGame creates a new in-memory session and persists a DB "owner"
// row (either user_id or anonymous_id) plus the initial snapshot.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	sess := &store.Session{ID: genID(), Game: game.NewState(s.dict)}
	sess.Game.AddLetters(req.Letters)
	sess.Game.AddExistingWords(req.Words)

	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	s.insertGameRow(w, r, sess, "")
	_ = json.NewEncoder(w).Encode(viewOf(sess))
}

// handleImport builds a new session from an exported state token.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		State string `json:"state"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess := &store.Session{ID: genID(), Game: game.NewState(s.dict)}
	if err := sess.Game.Deserialize(req.State); err != nil {
		http.Error(w, `{"error":"invalid_format"}`, http.StatusBadRequest)
		return
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	s.insertGameRow(w, r, sess, "")
	_ = json.NewEncoder(w).Encode(viewOf(sess))
}

// handleGetGame returns the session view, rehydrating from the persisted
// snapshot if the in-memory store misses.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()
	_ = json.NewEncoder(w).Encode(viewOf(sess))
}

// ------------------------------ mutations ----------------------------------

type lettersReq struct {
	Letters string `json:"letters"`
}

// handleAddLetters appends letters to the pool. Single alphabetic characters
// are the UI's contract; the engine drops anything else.
func (s *Server) handleAddLetters(w http.ResponseWriter, r *http.Request) {
	s.mutateGame(w, r, func(g *game.State, req lettersReq) error {
		g.AddLetters(req.Letters)
		return nil
	})
}

// handleDeleteLetters removes one pool occurrence per given letter;
// absent letters are skipped.
func (s *Server) handleDeleteLetters(w http.ResponseWriter, r *http.Request) {
	s.mutateGame(w, r, func(g *game.State, req lettersReq) error {
		g.DeleteLetters(req.Letters)
		return nil
	})
}

// mutateGame decodes a letters payload, applies fn under the session lock,
// persists the snapshot, and returns the updated view.
func (s *Server) mutateGame(w http.ResponseWriter, r *http.Request, fn func(*game.State, lettersReq) error) {
	var req lettersReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()
	if err := fn(sess.Game, req); err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	s.persistState(sess)
	_ = json.NewEncoder(w).Encode(viewOf(sess))
}

// claimReq identifies the candidate to claim by word + provenance.
type claimReq struct {
	Word         string `json:"word"`
	ExistingWord string `json:"existingWord"`
}

// handleClaim moves a word from "possible" to "existing". The candidate is
// resolved against the engine's own possible-words result, so a stale or
// fabricated claim is rejected rather than corrupting the pool.
func (s *Server) handleClaim(w http.ResponseWriter, r *http.Request) {
	var req claimReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()

	possible, err := sess.Game.PossibleWords()
	if err != nil {
		s.discoveryError(w, err)
		return
	}
	var target *game.Candidate
	for i := range possible {
		if possible[i].Word == req.Word && possible[i].ExistingWord == req.ExistingWord {
			target = &possible[i]
			break
		}
	}
	if target == nil {
		http.Error(w, `{"error":"not_claimable"}`, http.StatusBadRequest)
		return
	}
	if err := sess.Game.Claim(*target); err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	s.persistState(sess)
	_ = json.NewEncoder(w).Encode(viewOf(sess))
}

// ------------------------------ queries ------------------------------------

// handlePossible returns every currently formable word.
func (s *Server) handlePossible(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()
	possible, err := sess.Game.PossibleWords()
	if err != nil {
		s.discoveryError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"possible": possible})
}

// handlePotential returns words one letter short, grouped by missing letter.
func (s *Server) handlePotential(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()
	potential, err := sess.Game.PotentialWords()
	if err != nil {
		s.discoveryError(w, err)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"potential": potential})
}

// handleExport returns the serialized state token.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	sess.Lock()
	defer sess.Unlock()
	token, err := sess.Game.Serialize()
	if err != nil {
		http.Error(w, `{"error":"serialize_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"state": token})
}

// ------------------------------ plumbing -----------------------------------

// session resolves the {id} URL param against the live store, falling back
// to the persisted snapshot. Writes the error response itself on failure.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*store.Session, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, `{"error":"missing_id"}`, http.StatusBadRequest)
		return nil, false
	}
	sess, err := s.store.Get(r.Context(), id)
	if err == nil {
		return sess, true
	}
	if !errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"error":"store_error"}`, http.StatusInternalServerError)
		return nil, false
	}

	// Rehydrate from the persisted snapshot.
	var token string
	if err := s.db.QueryRowContext(r.Context(), `SELECT state FROM games WHERE id=?`, id).Scan(&token); err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return nil, false
	}
	sess = &store.Session{ID: id, Game: game.NewState(s.dict)}
	if token != "" {
		if err := sess.Game.Deserialize(token); err != nil {
			log.Warn().Str("gameId", id).Msg("persisted state is corrupt")
			http.Error(w, `{"error":"invalid_format"}`, http.StatusInternalServerError)
			return nil, false
		}
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return nil, false
	}
	return sess, true
}

// discoveryError maps engine query failures: an unloaded dictionary is a
// deployment bug, not a client error.
func (s *Server) discoveryError(w http.ResponseWriter, err error) {
	if errors.Is(err, game.ErrDictionaryEmpty) {
		http.Error(w, `{"error":"dictionary_not_loaded"}`, http.StatusServiceUnavailable)
		return
	}
	http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
}

// insertGameRow persists the owner row + initial snapshot (best effort).
// Caller passes dailyDate for daily-mode sessions, "" otherwise.
func (s *Server) insertGameRow(w http.ResponseWriter, r *http.Request, sess *store.Session, dailyDate string) {
	token, err := sess.Game.Serialize()
	if err != nil {
		log.Warn().Err(err).Str("gameId", sess.ID).Msg("serialize initial state")
		token = ""
	}
	now := time.Now().UTC().Format(time.RFC3339)
	var daily any
	if dailyDate != "" {
		daily = dailyDate
	}
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		_, err = s.db.Exec(`INSERT INTO games (id, user_id, state, daily_date, created_at, updated_at)
		                    VALUES (?,?,?,?,?,?)`, sess.ID, me.ID, token, daily, now, now)
	} else {
		anon := s.ensureAnonID(w, r)
		_, err = s.db.Exec(`INSERT INTO games (id, anonymous_id, state, daily_date, created_at, updated_at)
		                    VALUES (?,?,?,?,?,?)`, sess.ID, anon, token, daily, now, now)
	}
	if err != nil {
		log.Warn().Err(err).Str("gameId", sess.ID).Msg("insert game row")
	}
}

// persistState updates the snapshot column (best effort, non-fatal).
// Caller holds the session lock.
func (s *Server) persistState(sess *store.Session) {
	token, err := sess.Game.Serialize()
	if err != nil {
		log.Warn().Err(err).Str("gameId", sess.ID).Msg("serialize state")
		return
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.Exec(`UPDATE games SET state=?, updated_at=? WHERE id=?`, token, now, sess.ID); err != nil {
		log.Warn().Err(err).Str("gameId", sess.ID).Msg("persist state")
	}
}
