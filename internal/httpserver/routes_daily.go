// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Pool" mode.
// Exposes three endpoints under /daily:
//   - POST /daily/new         → start today's game (creates or reuses session)
//   - POST /daily/submit      → submit the day's result (longest claimed word)
//   - GET  /daily/leaderboard → fetch top results for today (or a given date)
//
// Everyone gets the same deterministic letter pool for a date (HMAC of
// date + salt shuffles the tile bag). Each user can submit once per day
// (enforced by DB + in-memory session). Sessions are the ordinary game
// sessions, so all /game/{id}/* endpoints work on them.

package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/grabble/internal/daily"
	"github.com/robalobadob/grabble/internal/game"
	"github.com/robalobadob/grabble/internal/store"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	store    *daily.Store
	salt     string
	poolSize int
	sessions map[string]string // userID|date → gameID
	mu       sync.Mutex        // guards sessions
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	size := 12
	if v := getEnv("DAILY_POOL_SIZE", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			size = n
		}
	}
	dd := &dailyServer{
		srv:      s,
		store:    daily.NewStore(s.db),
		salt:     getEnv("DAILY_SALT", "local_dev_salt"),
		poolSize: size,
		sessions: make(map[string]string),
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Post("/submit", dd.handleSubmit)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// userIDWithAnon returns the authenticated user ID if logged in,
// otherwise ensures an anonymous ID via Server.ensureAnonID.
func (d *dailyServer) userIDWithAnon(w http.ResponseWriter, r *http.Request) string {
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		return me.ID
	}
	return d.srv.ensureAnonID(w, r)
}

// -----------------------------------------------------------------------------
// /daily/new

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	GameID string `json:"gameId"`
	Date   string `json:"date"`
	Pool   string `json:"pool"`
	Played bool   `json:"played"`
}

// handleNew creates or reuses today's daily session.
// - If user already submitted a result for today → return Played=true.
// - Otherwise create/reuse a session seeded with the deterministic pool.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)
	now := time.Now().UTC()
	date := daily.DateKey(now)

	if played, err := d.store.AlreadyPlayed(r.Context(), uid, date); err == nil && played {
		_ = json.NewEncoder(w).Encode(dailyNewRes{Date: date, Played: true})
		return
	}

	key := uid + "|" + date
	d.mu.Lock()
	if id, ok := d.sessions[key]; ok {
		d.mu.Unlock()
		if sess, err := d.srv.store.Get(r.Context(), id); err == nil {
			sess.Lock()
			pool := sess.Game.Pool()
			sess.Unlock()
			_ = json.NewEncoder(w).Encode(dailyNewRes{GameID: id, Date: date, Pool: pool})
			return
		}
		// fall through and rebuild if the session evaporated
		d.mu.Lock()
		delete(d.sessions, key)
	}
	d.mu.Unlock()

	sess := &store.Session{ID: genID(), Game: game.NewState(d.srv.dict)}
	sess.Game.AddLetters(daily.Letters(now, d.salt, d.poolSize))
	if err := d.srv.store.Save(r.Context(), sess); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	d.srv.insertGameRow(w, r, sess, date)

	d.mu.Lock()
	d.sessions[key] = sess.ID
	d.mu.Unlock()

	_ = json.NewEncoder(w).Encode(dailyNewRes{GameID: sess.ID, Date: date, Pool: sess.Game.Pool()})
}

// -----------------------------------------------------------------------------
// /daily/submit

// dailySubmitReq is the request payload for /daily/submit.
type dailySubmitReq struct {
	GameID string `json:"gameId"`
}

// dailySubmitRes is the response payload for /daily/submit.
type dailySubmitRes struct {
	Date     string `json:"date"`
	BestWord string `json:"bestWord"`
	BestLen  int    `json:"bestLen"`
}

// handleSubmit records the longest word claimed in today's daily session.
// Repeated submissions are ignored by the UNIQUE(user_id, date) constraint.
func (d *dailyServer) handleSubmit(w http.ResponseWriter, r *http.Request) {
	uid := d.userIDWithAnon(w, r)

	var p dailySubmitReq
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	date := daily.DateKey(time.Now().UTC())

	key := uid + "|" + date
	d.mu.Lock()
	id, ok := d.sessions[key]
	d.mu.Unlock()
	if !ok || id != p.GameID {
		http.Error(w, `{"error":"no_session"}`, http.StatusConflict)
		return
	}
	sess, err := d.srv.store.Get(r.Context(), id)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return
	}

	sess.Lock()
	var best string
	for _, word := range sess.Game.ExistingWords() {
		if len(word) > len(best) {
			best = word
		}
	}
	sess.Unlock()
	if best == "" {
		http.Error(w, `{"error":"no_words_claimed"}`, http.StatusBadRequest)
		return
	}

	_ = d.store.InsertResult(r.Context(), daily.Result{
		UserID: uid, Date: date, BestWord: best, BestLen: len(best),
	})
	_ = json.NewEncoder(w).Encode(dailySubmitRes{Date: date, BestWord: best, BestLen: len(best)})
}

// -----------------------------------------------------------------------------
// /daily/leaderboard

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(time.Now().UTC())
	}
	rows, err := d.store.Leaderboard(r.Context(), date, 20)
	if err != nil {
		http.Error(w, `{"error":"server_error"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(lbRes{Date: date, Top: rows})
}
