package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"katgen/internal/auth"
	"katgen/internal/models"
)

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var u models.User
		email := strings.TrimSpace(strings.ToLower(req.Email))
		if err := db.Preload("Roles").First(&u, "email = ?", email).Error; err != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		if !u.IsActive {
			http.Error(w, "account disabled", http.StatusUnauthorized)
			return
		}
		if err := auth.CheckPassword(u.PasswordHash, req.Password); err != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		var roleNames []string
		for _, role := range u.Roles {
			roleNames = append(roleNames, role.Name)
		}
		tok, jti, exp, err := auth.Sign(u.ID, roleNames)
		if err != nil {
			http.Error(w, "token error", http.StatusInternalServerError)
			return
		}
		sess := models.Session{JTI: jti, UserID: u.ID, ExpiresAt: exp, CreatedAt: time.Now()}
		if err := db.Create(&sess).Error; err != nil {
			http.Error(w, "session error", http.StatusInternalServerError)
			return
		}
		_ = db.Create(&models.AuditLog{UserID: &u.ID, Action: "LOGIN", Metadata: models.Metadata(map[string]any{"jti": jti})}).Error
		respondJSON(w, map[string]any{"token": tok, "expires_at": exp})
	}
}

// Logout revokes the session behind the presented token. The token keeps
// validating cryptographically but the middleware rejects it from now on.
func Logout(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.FromContext(r.Context())
		now := time.Now()
		if err := db.Model(&models.Session{}).Where("jti = ?", claims.JWTID).Update("revoked_at", &now).Error; err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		uid := claims.Subject
		_ = db.Create(&models.AuditLog{UserID: &uid, Action: "LOGOUT", Metadata: models.Metadata(map[string]any{"jti": claims.JWTID})}).Error
		respondJSON(w, map[string]any{"revoked": true})
	}
}

func ChangePassword(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Current string `json:"current_password"`
			New     string `json:"new_password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := auth.ValidateNewPassword(req.New); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		uid := auth.Subject(r.Context())
		var u models.User
		if err := db.First(&u, "id = ?", uid).Error; err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if err := auth.CheckPassword(u.PasswordHash, req.Current); err != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		hash, err := auth.HashPassword(req.New)
		if err != nil {
			http.Error(w, "hash error", http.StatusInternalServerError)
			return
		}
		u.PasswordHash = hash
		u.UpdatedAt = time.Now()
		if err := db.Save(&u).Error; err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = db.Create(&models.AuditLog{UserID: &uid, Action: "PASSWORD_CHANGE"}).Error
		respondJSON(w, map[string]any{"updated": true})
	}
}

func Me(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub := auth.Subject(r.Context())
		var u models.User
		if err := db.Preload("Roles").First(&u, "id = ?", sub).Error; err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		respondJSON(w, map[string]any{
			"id": u.ID, "email": u.Email, "roles": u.Roles, "is_active": u.IsActive,
		})
	}
}
