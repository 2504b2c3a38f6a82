package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"
)

const maxWordsPerRequest = 100

// rateLimiter is a simple per-IP token bucket rate limiter.
type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*bucket
	rate     int           // tokens per interval
	interval time.Duration // refill interval
}

type bucket struct {
	tokens   int
	lastSeen time.Time
}

func newRateLimiter(rate int, interval time.Duration) *rateLimiter {
	rl := &rateLimiter{
		visitors: make(map[string]*bucket),
		rate:     rate,
		interval: interval,
	}
	// Cleanup stale entries every minute.
	go func() {
		for {
			time.Sleep(time.Minute)
			rl.mu.Lock()
			for ip, b := range rl.visitors {
				if time.Since(b.lastSeen) > 5*time.Minute {
					delete(rl.visitors, ip)
				}
			}
			rl.mu.Unlock()
		}
	}()
	return rl
}

func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.visitors[ip]
	if !ok {
		rl.visitors[ip] = &bucket{tokens: rl.rate - 1, lastSeen: time.Now()}
		return true
	}

	// Refill tokens based on elapsed time.
	elapsed := time.Since(b.lastSeen)
	refill := int(elapsed / rl.interval)
	if refill > 0 {
		b.tokens += refill * rl.rate
		if b.tokens > rl.rate {
			b.tokens = rl.rate
		}
		b.lastSeen = time.Now()
	}

	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

// Server exposes the placement engine over HTTP.
type Server struct {
	mux     *http.ServeMux
	store   *Store
	gemini  *GeminiClient
	sse     *Broadcaster
	genRL   *rateLimiter
	solveRL *rateLimiter
}

// NewServer creates a configured HTTP server. gemini may be nil, which
// disables themed word-list generation.
func NewServer(store *Store, gemini *GeminiClient) *Server {
	s := &Server{
		mux:     http.NewServeMux(),
		store:   store,
		gemini:  gemini,
		sse:     NewBroadcaster(),
		genRL:   newRateLimiter(5, time.Minute),  // 5 generations/min per IP
		solveRL: newRateLimiter(30, time.Second), // 30 solves/sec per IP
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /api/puzzles", s.handleCreatePuzzle)
	s.mux.HandleFunc("GET /api/puzzles", s.handleListPuzzles)
	s.mux.HandleFunc("GET /api/puzzles/{id}", s.handleGetPuzzle)
	s.mux.HandleFunc("GET /api/puzzles/{id}/key", s.handleGetKey)
	s.mux.HandleFunc("POST /api/puzzles/{id}/solve", s.handleSolve)
	s.mux.HandleFunc("GET /api/puzzles/{id}/events", s.handlePuzzleEvents)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
	w.Header().Set("Content-Security-Policy", "default-src 'self'")
	s.mux.ServeHTTP(w, r)
}

// --- Puzzle handlers ---

// POST /api/puzzles — generate a puzzle from a word list or a theme.
func (s *Server) handleCreatePuzzle(w http.ResponseWriter, r *http.Request) {
	if !s.genRL.allow(r.RemoteAddr) {
		jsonError(w, "too many requests, retry later", http.StatusTooManyRequests)
		return
	}

	var req struct {
		Rows  int      `json:"rows"`
		Cols  int      `json:"cols"`
		Words []string `json:"words"`
		Theme string   `json:"theme"`
		Count int      `json:"count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	grid, err := NewGrid(req.Rows, req.Cols)
	if errors.Is(err, ErrInvalidDimension) {
		jsonError(w, "'rows' and 'cols' must be positive", http.StatusBadRequest)
		return
	}

	words := make([]string, 0, len(req.Words))
	for _, word := range req.Words {
		if word = normalizeWord(word); word != "" {
			words = append(words, word)
		}
	}

	if len(words) == 0 && req.Theme != "" {
		if s.gemini == nil {
			jsonError(w, "themed generation not configured", http.StatusServiceUnavailable)
			return
		}
		count := req.Count
		if count <= 0 {
			count = 12
		}
		words, err = s.gemini.GenerateWordList(r.Context(), req.Theme, count)
		if err != nil {
			log.Printf("gemini word list error: %v", err)
			jsonError(w, "word list generation failed", http.StatusInternalServerError)
			return
		}
	}
	if len(words) == 0 {
		jsonError(w, "'words' or 'theme' required", http.StatusBadRequest)
		return
	}
	if len(words) > maxWordsPerRequest {
		jsonError(w, "too many words", http.StatusBadRequest)
		return
	}

	engine := NewEngine(grid)
	placements, unplaced := engine.PlaceAll(words)
	engine.Fill()

	p := s.store.SavePuzzle(&Puzzle{
		Rows:       grid.Rows,
		Cols:       grid.Cols,
		Grid:       grid.Lines(),
		Words:      words,
		Unplaced:   unplaced,
		board:      grid,
		placements: placements,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// GET /api/puzzles — list all puzzles.
func (s *Server) handleListPuzzles(w http.ResponseWriter, _ *http.Request) {
	puzzles := s.store.ListPuzzles()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(puzzles)
}

// GET /api/puzzles/{id} — get a single puzzle.
func (s *Server) handleGetPuzzle(w http.ResponseWriter, r *http.Request) {
	p := s.store.GetPuzzle(r.PathValue("id"))
	if p == nil {
		jsonError(w, "puzzle not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

// GET /api/puzzles/{id}/key — the answer key as plain text.
func (s *Server) handleGetKey(w http.ResponseWriter, r *http.Request) {
	p := s.store.GetPuzzle(r.PathValue("id"))
	if p == nil {
		jsonError(w, "puzzle not found", http.StatusNotFound)
		return
	}

	key, err := RenderKey(p.Rows, p.Cols, p.placements)
	if err != nil {
		log.Printf("render key error: %v", err)
		jsonError(w, "answer key rendering failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(key.String()))
}

// POST /api/puzzles/{id}/solve — locate words on a stored puzzle.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	if !s.solveRL.allow(r.RemoteAddr) {
		jsonError(w, "too many requests, retry later", http.StatusTooManyRequests)
		return
	}

	p := s.store.GetPuzzle(r.PathValue("id"))
	if p == nil {
		jsonError(w, "puzzle not found", http.StatusNotFound)
		return
	}

	var req struct {
		Words []string `json:"words"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Words) == 0 {
		jsonError(w, "'words' required", http.StatusBadRequest)
		return
	}
	if len(req.Words) > maxWordsPerRequest {
		jsonError(w, "too many words", http.StatusBadRequest)
		return
	}

	// Solving is a read-only query over the stored board.
	results := NewEngine(p.board).FindAll(req.Words)

	for _, res := range results {
		if !res.Found {
			continue
		}
		evt, _ := json.Marshal(map[string]any{
			"type":      "word_found",
			"word":      res.Word,
			"direction": res.Placement.Direction.Name,
			"start":     [2]int{res.Placement.Start.Row, res.Placement.Start.Col},
			"end":       [2]int{res.Placement.End.Row, res.Placement.End.Col},
		})
		s.sse.Broadcast(p.ID, string(evt))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(solutionDocument(results))
}

// GET /api/puzzles/{id}/events — SSE stream of solve events.
func (s *Server) handlePuzzleEvents(w http.ResponseWriter, r *http.Request) {
	p := s.store.GetPuzzle(r.PathValue("id"))
	if p == nil {
		jsonError(w, "puzzle not found", http.StatusNotFound)
		return
	}

	s.sse.ServeSSE(w, r, p.ID, func(c *client) {
		// Send the puzzle snapshot on connect.
		evt, _ := json.Marshal(map[string]any{
			"type":  "puzzle_state",
			"grid":  p.Grid,
			"words": p.Words,
		})
		c.ch <- string(evt)
	})
}

// --- Helpers ---

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
