package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/duongpm13/cat-battle/internal/game/app"
	"github.com/duongpm13/cat-battle/internal/game/lucky"
	apperrors "github.com/duongpm13/cat-battle/internal/platform/errors"
	"github.com/duongpm13/cat-battle/internal/session"
	"github.com/duongpm13/cat-battle/internal/storage"
)

var errInvalidCredentials = apperrors.New(apperrors.CodeInvalidCredentials, "invalid credentials")

// Handler serves the JSON API.
type Handler struct {
	accounts storage.AccountStore
	game     *app.GameService
	sessions *session.Manager
	log      *slog.Logger
}

// NewHandler builds the API handler.
func NewHandler(accounts storage.AccountStore, game *app.GameService, sessions *session.Manager, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		accounts: accounts,
		game:     game,
		sessions: sessions,
		log:      log,
	}
}

type loginRequest struct {
	TelegramID string `json:"telegram_id"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
}

// handleLogin exchanges a telegram id for a signed session token carrying
// the account identity and aggregate balances.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.CodeInvalidCredentials, "invalid credentials", err))
		return
	}
	if strings.TrimSpace(req.TelegramID) == "" {
		h.writeError(w, r, errInvalidCredentials)
		return
	}

	account, err := h.accounts.AccountByTelegramID(r.Context(), req.TelegramID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.writeError(w, r, errInvalidCredentials)
			return
		}
		h.writeError(w, r, apperrors.Wrap(apperrors.CodeStorageFailure, "load account", err))
		return
	}

	statistic, err := h.accounts.StatisticByAccountID(r.Context(), account.AccountID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.writeError(w, r, errInvalidCredentials)
			return
		}
		h.writeError(w, r, apperrors.Wrap(apperrors.CodeStorageFailure, "load statistic", err))
		return
	}

	token, err := h.sessions.Issue(session.Identity{
		AccountID:   account.AccountID,
		TelegramID:  account.TelegramID,
		DisplayName: account.DisplayName,
		Ton:         statistic.Ton,
		Bnb:         statistic.Bnb,
		Plays:       statistic.Plays,
	})
	if err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.CodeUnknown, "issue session token", err))
		return
	}

	h.writeJSON(w, http.StatusOK, loginResponse{AccessToken: token})
}

type protectedResponse struct {
	Message string        `json:"message"`
	User    protectedUser `json:"user"`
}

type protectedUser struct {
	TelegramID  string  `json:"telegram_id"`
	DisplayName string  `json:"display_name"`
	Ton         float64 `json:"ton"`
	Bnb         float64 `json:"bnb"`
	Plays       int64   `json:"plays"`
}

// handleProtected echoes the verified identity claims.
func (h *Handler) handleProtected(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, apperrors.New(apperrors.CodeSessionMissing, "session is required"))
		return
	}
	h.writeJSON(w, http.StatusOK, protectedResponse{
		Message: "This is a protected route",
		User: protectedUser{
			TelegramID:  claims.TelegramID,
			DisplayName: claims.DisplayName,
			Ton:         claims.Ton,
			Bnb:         claims.Bnb,
			Plays:       claims.Plays,
		},
	})
}

type statusResponse struct {
	Result LedgerView `json:"result"`
}

// handleGetStatus returns the account's live ledger (or the default when
// the account has never played).
func (h *Handler) handleGetStatus(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, apperrors.New(apperrors.CodeSessionMissing, "session is required"))
		return
	}
	ledger, err := h.game.GetStatus(r.Context(), claims.AccountID)
	if err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.CodeStorageFailure, "load ledger", err))
		return
	}
	h.writeJSON(w, http.StatusOK, statusResponse{Result: NewLedgerView(ledger)})
}

type playStageRequest struct {
	Stage   int  `json:"stage"`
	EndGame bool `json:"end_game"`
}

// handlePlayStage applies one move and returns the resulting ledger. A
// stale stage is not an error; the current ledger is echoed back so the
// client can resynchronize.
func (h *Handler) handlePlayStage(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, apperrors.New(apperrors.CodeSessionMissing, "session is required"))
		return
	}

	var req playStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.CodePlayStageInvalid, "play stage body is malformed", err))
		return
	}
	if req.Stage < 0 {
		h.writeError(w, r, apperrors.New(apperrors.CodePlayStageInvalid, "stage must be non-negative"))
		return
	}

	ledger, _, err := h.game.Play(r.Context(), claims.AccountID, req.Stage, req.EndGame)
	if err != nil {
		if errors.Is(err, lucky.ErrGameLocked) {
			h.writeLocked(w, r, claims.AccountID)
			return
		}
		// Engine errors already carry a code; only uncoded store errors
		// fall back to the storage failure code.
		code := apperrors.CodeOf(err)
		if code == apperrors.CodeUnknown {
			code = apperrors.CodeStorageFailure
		}
		h.writeError(w, r, apperrors.Wrap(code, "play stage", err))
		return
	}
	h.writeJSON(w, http.StatusOK, statusResponse{Result: NewLedgerView(ledger)})
}

type lockedResponse struct {
	Error  apperrors.Code `json:"error"`
	Result LedgerView     `json:"result"`
}

// writeLocked reports the cooldown refusal together with the current
// ledger so the caller can compute the remaining wait from lock_until.
func (h *Handler) writeLocked(w http.ResponseWriter, r *http.Request, accountID string) {
	ledger, err := h.game.GetStatus(r.Context(), accountID)
	if err != nil {
		h.writeError(w, r, apperrors.Wrap(apperrors.CodeStorageFailure, "load ledger", err))
		return
	}
	h.writeJSON(w, http.StatusLocked, lockedResponse{
		Error:  apperrors.CodeGameLocked,
		Result: NewLedgerView(ledger),
	})
}

type errorResponse struct {
	Error   apperrors.Code `json:"error"`
	Message string         `json:"message"`
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatusOf(err)
	code := apperrors.CodeOf(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "code", code, "err", err)
	}
	h.writeJSON(w, status, errorResponse{Error: code, Message: err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Error("encode response", "err", err)
	}
}
