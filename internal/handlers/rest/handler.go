// Package rest exposes the game as request/response operations behind the
// hosting platform's gateway. The gateway authenticates the user and injects
// the username header; this layer has no identity logic of its own.
package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/ssupppp/bowldem-reddit/internal/game"
	"github.com/ssupppp/bowldem-reddit/internal/models"
	"github.com/ssupppp/bowldem-reddit/internal/services/play"
)

// UsernameHeader is set by the platform gateway on every request
const UsernameHeader = "X-Platform-User"

// anonymousUser is used when the gateway supplies no username
const anonymousUser = "anonymous"

// Config holds configuration for the REST handler
type Config struct {
	// PlayService executes the game operations
	PlayService play.Service

	// Logger receives request and error logs
	Logger *logrus.Logger

	// Debug enables the reset endpoint
	Debug bool
}

// Handler serves the game's HTTP API
type Handler struct {
	service play.Service
	logger  *logrus.Logger
	debug   bool
}

// New creates a new REST handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.PlayService == nil {
		return nil, errors.New("play service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Handler{
		service: cfg.PlayService,
		logger:  logger,
		debug:   cfg.Debug,
	}, nil
}

func currentUsername(r *http.Request) string {
	if username := r.Header.Get(UsernameHeader); username != "" {
		return username
	}
	return anonymousUser
}

// initResponse is the body of GET /api/init
type initResponse struct {
	Type            string                  `json:"type"`
	Username        string                  `json:"username"`
	PuzzleNumber    int                     `json:"puzzleNumber"`
	PuzzleDate      string                  `json:"puzzleDate"`
	Puzzle          *play.PuzzleSummary     `json:"puzzle"`
	GameState       *models.GameState       `json:"gameState"`
	Stats           *models.UserStats       `json:"stats"`
	FeedbackHistory []*models.GuessFeedback `json:"feedbackHistory"`
	MatchSummary    *models.MatchSummary    `json:"matchSummary,omitempty"`
	NextPuzzleIn    string                  `json:"nextPuzzleIn"`
}

// Init handles GET /api/init
func (h *Handler) Init(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetDailyGame(r.Context(), &play.GetDailyGameInput{
		Username: currentUsername(r),
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &initResponse{
		Type:            "init",
		Username:        out.Username,
		PuzzleNumber:    out.PuzzleNumber,
		PuzzleDate:      out.PuzzleDate,
		Puzzle:          out.Puzzle,
		GameState:       out.GameState,
		Stats:           out.Stats,
		FeedbackHistory: out.FeedbackHistory,
		MatchSummary:    out.MatchSummary,
		NextPuzzleIn:    out.NextPuzzleIn,
	})
}

// guessRequest is the body of POST /api/guess
type guessRequest struct {
	PlayerKey string `json:"playerKey"`
}

// guessResponse is the body of POST /api/guess
type guessResponse struct {
	Type         string                `json:"type"`
	Feedback     *models.GuessFeedback `json:"feedback"`
	GameState    *models.GameState     `json:"gameState"`
	Stats        *models.UserStats     `json:"stats"`
	MatchSummary *models.MatchSummary  `json:"matchSummary,omitempty"`
	ShareText    string                `json:"shareText,omitempty"`
}

// Guess handles POST /api/guess
func (h *Handler) Guess(w http.ResponseWriter, r *http.Request) {
	var req guessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := h.service.SubmitGuess(r.Context(), &play.SubmitGuessInput{
		Username: currentUsername(r),
		PlayerID: req.PlayerKey,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &guessResponse{
		Type:         "guess",
		Feedback:     out.Feedback,
		GameState:    out.GameState,
		Stats:        out.Stats,
		MatchSummary: out.MatchSummary,
		ShareText:    out.ShareText,
	})
}

// leaderboardResponse is the body of GET /api/leaderboard
type leaderboardResponse struct {
	Type         string                     `json:"type"`
	PuzzleNumber int                        `json:"puzzleNumber"`
	Entries      []*models.LeaderboardEntry `json:"entries"`
	UserEntry    *models.LeaderboardEntry   `json:"userEntry,omitempty"`
	TotalWinners int64                      `json:"totalWinners"`
}

// Leaderboard handles GET /api/leaderboard
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.GetLeaderboard(r.Context(), &play.GetLeaderboardInput{
		Username: currentUsername(r),
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &leaderboardResponse{
		Type:         "leaderboard",
		PuzzleNumber: out.PuzzleNumber,
		Entries:      out.Entries,
		UserEntry:    out.UserEntry,
		TotalWinners: out.TotalWinners,
	})
}

// playersResponse is the body of GET /api/players
type playersResponse struct {
	Type    string           `json:"type"`
	Players []*models.Player `json:"players"`
}

// Players handles GET /api/players
func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ListPlayers(r.Context(), &play.ListPlayersInput{})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &playersResponse{
		Type:    "players",
		Players: out.Players,
	})
}

// Reset handles POST /api/debug/reset
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ResetGame(r.Context(), &play.ResetGameInput{
		Username: currentUsername(r),
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":     "success",
		"puzzleDate": out.PuzzleDate,
	})
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeServiceError maps service errors onto the HTTP taxonomy. Expected
// gameplay rejections surface verbatim as 400s and are not logged as
// failures; everything else is a 500 with a generic message.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if msg, ok := rejectionMessage(err); ok {
		h.logger.WithFields(logrus.Fields{
			"path":   r.URL.Path,
			"reason": msg,
		}).Info("request rejected")
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"path":  r.URL.Path,
		"error": err,
	}).Error("request failed")
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func rejectionMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, play.ErrMissingUsername):
		return "username is required", true
	case errors.Is(err, play.ErrMissingPlayerID):
		return "playerKey is required", true
	case errors.Is(err, game.ErrGameCompleted):
		return "Game already completed", true
	case errors.Is(err, game.ErrDuplicateGuess):
		return "Player already guessed", true
	case errors.Is(err, game.ErrUnknownPlayer):
		return "Invalid player", true
	}
	return "", false
}
