// Package user provides HTTP handlers for account registration and profile
// access.
package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"project-board/internal/domain/entity"
	"project-board/internal/handler/http/respond"
	userUC "project-board/internal/usecase/user"
)

type RegisterHandler struct{ Svc *userUC.Service }

// ServeHTTP registers a new user account. The endpoint is public; a taken
// user id answers 409.
func (h RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID   string `json:"user_id"`
		Password string `json:"password"`
		Email    string `json:"email"`
		Nickname string `json:"nickname"`
		Memo     string `json:"memo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	account, err := h.Svc.Register(r.Context(), userUC.RegisterInput{
		UserID:   req.UserID,
		Password: req.Password,
		Email:    req.Email,
		Nickname: req.Nickname,
		Memo:     req.Memo,
	})
	if err != nil {
		var ve *entity.ValidationError
		switch {
		case errors.Is(err, userUC.ErrDuplicateUserID):
			respond.SafeErrorV2(w, http.StatusConflict,
				respond.NewAppError(http.StatusConflict, "user id already taken", err))
		case errors.As(err, &ve):
			respond.SafeError(w, http.StatusBadRequest, err)
		default:
			respond.SafeError(w, http.StatusInternalServerError, err)
		}
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(account))
}

// Register registers the user account handlers with the given mux.
func Register(mux *http.ServeMux, svc *userUC.Service) {
	mux.Handle("POST   /users", RegisterHandler{svc})
	mux.Handle("GET    /users/{id}", GetHandler{svc})
	mux.Handle("PUT    /users/me", UpdateProfileHandler{svc})
}
