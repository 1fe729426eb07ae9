package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"project-board/internal/domain/entity"
	"project-board/internal/handler/http/auth"
	"project-board/internal/handler/http/respond"
	userUC "project-board/internal/usecase/user"
)

// DTO represents the JSON structure for a user profile. The password hash
// never leaves the persistence layer boundary.
type DTO struct {
	UserID     string    `json:"user_id" example:"uno"`
	Email      string    `json:"email" example:"uno@example.com"`
	Nickname   string    `json:"nickname" example:"Uno"`
	Memo       string    `json:"memo" example:"likes Go"`
	CreatedAt  time.Time `json:"created_at" example:"2025-10-26T12:00:00Z"`
	ModifiedAt time.Time `json:"modified_at" example:"2025-10-26T12:00:00Z"`
}

func toDTO(a *entity.UserAccount) DTO {
	return DTO{
		UserID:     a.UserID,
		Email:      a.Email,
		Nickname:   a.Nickname,
		Memo:       a.Memo,
		CreatedAt:  a.CreatedAt,
		ModifiedAt: a.ModifiedAt,
	}
}

type GetHandler struct{ Svc *userUC.Service }

// ServeHTTP returns a user's public profile.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	account, err := h.Svc.Get(r.Context(), userID)
	if err != nil {
		code := http.StatusInternalServerError
		var nf *entity.NotFoundError
		if errors.As(err, &nf) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(account))
}

type UpdateProfileHandler struct{ Svc *userUC.Service }

// ServeHTTP updates the authenticated user's own profile. Blank fields keep
// their stored values.
func (h UpdateProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserFromContext(r.Context())
	if userID == "" {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("authentication required"))
		return
	}

	var req struct {
		Email    string `json:"email"`
		Nickname string `json:"nickname"`
		Memo     string `json:"memo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	account, err := h.Svc.UpdateProfile(r.Context(), userID, userUC.UpdateProfileInput{
		Email:    req.Email,
		Nickname: req.Nickname,
		Memo:     req.Memo,
	})
	if err != nil {
		code := http.StatusInternalServerError
		var nf *entity.NotFoundError
		var ve *entity.ValidationError
		if errors.As(err, &nf) {
			code = http.StatusNotFound
		} else if errors.As(err, &ve) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(account))
}
