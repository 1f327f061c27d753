package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/CTAG07/namethingy/pkg/corpus"
	"github.com/CTAG07/namethingy/pkg/markov"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	// maxNamesPerRequest caps the count parameter of /api/names.
	maxNamesPerRequest = 1000
	// maxTrainBody caps the size of a /api/train request body.
	maxTrainBody = 8 << 20
)

// NameAPI serves a trained model over HTTP. The model is shared, so every
// access goes through mu: generation takes the read lock and training the
// write lock.
type NameAPI struct {
	mu     sync.RWMutex
	model  *markov.Model
	config *Config
	logger *slog.Logger
}

// NamesResponse is the body returned by GET /api/names.
type NamesResponse struct {
	Names []string `json:"names"`
	Seed  uint64   `json:"seed"`
}

// NewNameAPI creates a NameAPI serving model.
func NewNameAPI(model *markov.Model, config *Config, logger *slog.Logger) *NameAPI {
	return &NameAPI{
		model:  model,
		config: config,
		logger: logger,
	}
}

// RegisterRoutes sets up the routing for all /api endpoints.
func (n *NameAPI) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/names", n.handleNames)
	mux.HandleFunc("/api/stats", n.handleStats)
	mux.HandleFunc("/api/train", n.handleTrain)
	mux.HandleFunc("/api/health", n.handleHealth)
}

// Handler returns the full API handler with request IDs and access logging.
func (n *NameAPI) Handler() http.Handler {
	mux := http.NewServeMux()
	n.RegisterRoutes(mux)
	return withRequestID(n.logRequests(mux))
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}

// handleNames generates names. Each request draws from its own source,
// seeded from ?seed= when given so results can be reproduced.
func (n *NameAPI) handleNames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	count, err := queryInt(r, "count", max(n.config.Limit, 1))
	if err != nil || count < 1 || count > maxNamesPerRequest {
		respondWithError(w, http.StatusBadRequest, "count must be between 1 and "+strconv.Itoa(maxNamesPerRequest))
		return
	}
	maxLength, err := queryInt(r, "max_length", n.config.MaxLength)
	if err != nil || maxLength < 0 {
		respondWithError(w, http.StatusBadRequest, "max_length must be a non-negative integer")
		return
	}
	seed := rand.Uint64()
	if v := r.URL.Query().Get("seed"); v != "" {
		if seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			respondWithError(w, http.StatusBadRequest, "seed must be an unsigned integer")
			return
		}
	}

	config := *n.config
	config.MaxLength = maxLength
	opts := []markov.GenerateOption{
		markov.WithMaxLength(maxLength),
		markov.WithSource(markov.NewRand(seed)),
	}

	names := make([]string, 0, count)
	n.mu.RLock()
	for range count {
		var name string
		name, err = nextName(n.model, &config, opts)
		if err != nil {
			break
		}
		names = append(names, name)
	}
	n.mu.RUnlock()

	switch {
	case errors.Is(err, markov.ErrNoTrainingData):
		respondWithError(w, http.StatusConflict, "Model has no training data")
	case errors.Is(err, markov.ErrMaxLength):
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case err != nil:
		n.logger.Error("Failed to generate names", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to generate names")
	default:
		respondWithJSON(w, http.StatusOK, NamesResponse{Names: names, Seed: seed})
	}
}

func (n *NameAPI) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	n.mu.RLock()
	stats := n.model.Stats()
	n.mu.RUnlock()
	respondWithJSON(w, http.StatusOK, stats)
}

// readWords reads every word of r before any lock is taken, so a slow
// client cannot stall generation.
func readWords(r corpus.Reader) ([]string, error) {
	var words []string
	for {
		word, err := r.Next()
		if errors.Is(err, io.EOF) {
			return words, nil
		}
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}
}

// handleTrain adds the newline-separated words in the request body to the
// model.
func (n *NameAPI) handleTrain(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	body := http.MaxBytesReader(w, r.Body, maxTrainBody)
	words, err := readWords(corpus.NewLineReader(body, corpus.WithTrimSpace(true)))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			respondWithError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		n.logger.Error("Failed to read training words", "error", err)
		respondWithError(w, http.StatusBadRequest, "Failed to read training words")
		return
	}

	n.mu.Lock()
	summary, err := corpus.Train(r.Context(), n.model, corpus.NewSliceReader(words...), n.logger.With("request_id", requestID(r.Context())))
	n.mu.Unlock()
	if err != nil {
		n.logger.Error("Failed to train from request", "error", err)
		respondWithError(w, http.StatusServiceUnavailable, "Training was interrupted")
		return
	}
	respondWithJSON(w, http.StatusOK, summary)
}

func (n *NameAPI) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": Version,
	})
}

type requestIDKey struct{}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// withRequestID tags every request with an X-Request-Id, keeping a valid one
// sent by the client.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (n *NameAPI) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		n.logger.Debug("Handled request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
			"request_id", requestID(r.Context()),
		)
	})
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			slog.Error("Failed to encode JSON response", "error", err)
		}
	}
}
