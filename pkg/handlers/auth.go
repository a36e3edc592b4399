package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"groupstudy/pkg/middleware"
	"groupstudy/pkg/session"
	"groupstudy/pkg/user"
)

type CredentialsForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type FieldError struct {
	Location string `json:"location"`
	Param    string `json:"param"`
	Value    string `json:"value"`
	Msg      string `json:"msg"`
}

type AuthHandler struct {
	Codec  *session.Codec
	Users  user.ServiceInterface
	Logger *slog.Logger
}

func NewAuthHandler(codec *session.Codec, users user.ServiceInterface, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		Codec:  codec,
		Users:  users,
		Logger: logger,
	}
}

// IssueToken signs whatever claims payload the caller supplied. Nothing
// here checks the caller is who the claims say; authenticated issuance
// lives on /register and /login.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	payload := make(map[string]any)
	if ok := DecodeJSONBody(w, r, &payload); !ok {
		return
	}

	h.issueCookie(w, payload, "jwt")
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	account, err := h.Users.Register(req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, user.ErrExists) {
			h.Logger.Error("register", "error", err.Error())
			writeError(w, http.StatusInternalServerError, typeError, "registration failed")
			return
		}
		if ok := WriteResp(w, h.Logger, map[string]any{
			"errors": []FieldError{
				{
					Location: "body",
					Param:    "email",
					Value:    req.Email,
					Msg:      "already exists",
				},
			},
		}, http.StatusUnprocessableEntity); ok {
			h.Logger.Error("register", "error", err.Error(), "email", req.Email)
		}
		return
	}

	h.issueCookie(w, map[string]any{"email": account.Email, "id": account.ID}, "register")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	account, err := h.Users.Login(req.Email, req.Password)
	if err != nil {
		var msg string
		if errors.Is(err, user.ErrNotFound) {
			msg = "user not found"
		} else {
			msg = "invalid password"
		}
		if ok := WriteResp(w, h.Logger, map[string]any{"message": msg}, http.StatusUnauthorized); ok {
			h.Logger.Error("login", "error", "unauthorized", "email", req.Email)
		}
		return
	}

	h.issueCookie(w, map[string]any{"email": account.Email, "id": account.ID}, "login")
}

func (h *AuthHandler) issueCookie(w http.ResponseWriter, payload map[string]any, action string) {
	token, err := h.Codec.Issue(payload)
	if err != nil {
		h.Logger.Error("token signing", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "token signing failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	if ok := WriteResp(w, h.Logger, map[string]any{"msg": "Succeed", "token": token}, http.StatusOK); ok {
		h.Logger.Info(action, "claims", len(payload))
	}
}

func Liveness(w http.ResponseWriter, r *http.Request) {
	if _, err := w.Write([]byte("Online Group Study Platform")); err != nil {
		return
	}
}

func DecodeJSONBody(w http.ResponseWriter, r *http.Request, req any) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		writeError(w, http.StatusBadRequest, typeError, "invalid Content-Type")
		return false
	}

	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, typeError, "bad json")
		return false
	}

	return true
}

func WriteResp(w http.ResponseWriter, logger *slog.Logger, body map[string]any, status int) bool {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to write JSON response", slog.Any("err", err))
		return false
	}
	return true
}
