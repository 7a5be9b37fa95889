package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"katgen/internal/auth"
	"katgen/internal/models"
	"katgen/internal/oracle"
	"katgen/internal/services/vector"
)

type runReq struct {
	Count  int    `json:"count"`
	Oracle string `json:"oracle,omitempty"`
}

// CreateRun generates a fresh vector set and stores it together with its
// vectors. Bad requests get 400; an oracle that cannot produce a trusted
// set gets 502 and nothing is stored. ?format=txt returns the vectors as
// a text attachment instead of JSON.
func CreateRun(db *gorm.DB, lg *zap.SugaredLogger, defaultOracle string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := runReq{Count: vector.DefaultCount}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		name := req.Oracle
		if name == "" {
			name = defaultOracle
		}
		orc, err := oracle.Select(name, os.Getenv("KATGEN_OPENSSL_BIN"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		set, err := vector.NewGenerator(orc).Generate(req.Count)
		if err != nil {
			if errors.Is(err, vector.ErrCount) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}

		uid := auth.Subject(r.Context())
		run := models.Run{UserID: uid, Count: len(set), Oracle: name}
		var rows []models.Vector
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&run).Error; err != nil {
				return err
			}
			rows = make([]models.Vector, 0, len(set))
			for i, v := range set {
				rows = append(rows, models.Vector{
					RunID:         run.ID,
					Position:      i,
					KeyHex:        v.Key.Hex(),
					PlaintextHex:  v.Plaintext.Hex(),
					CiphertextHex: v.Ciphertext.Hex(),
					KnownAnswer:   i == 0,
				})
			}
			return tx.Create(&rows).Error
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		_ = db.Create(&models.AuditLog{UserID: &uid, Action: "RUN_GENERATE", Metadata: models.Metadata(map[string]any{
			"run_id": run.ID, "count": run.Count, "oracle": run.Oracle,
		})}).Error

		if r.URL.Query().Get("format") == "txt" {
			respondTXT(w, fmt.Sprintf("vectors_%s.txt", run.ID), set.ToTXT())
			return
		}
		respondJSON(w, map[string]any{"run_id": run.ID, "count": run.Count, "oracle": run.Oracle, "vectors": rows})
	}
}

// ListRuns returns the caller's runs, newest first. Administrators can
// pass ?all=1 to list everyone's.
func ListRuns(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all := r.URL.Query().Get("all") == "1"
		var runs []models.Run
		q := db.Order("created_at desc").Limit(100)
		if !(all && auth.FromContext(r.Context()).HasRole("Administrator")) {
			q = q.Where("user_id = ?", auth.Subject(r.Context()))
		}
		_ = q.Find(&runs).Error
		respondJSON(w, runs)
	}
}

func GetRun(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		run, ok := loadRun(db, w, r)
		if !ok {
			return
		}
		respondJSON(w, run)
	}
}

// DownloadRun serves a run in the one-line-per-vector text format.
func DownloadRun(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		run, ok := loadRun(db, w, r)
		if !ok {
			return
		}
		set := make(vector.Set, 0, len(run.Vectors))
		for _, row := range run.Vectors {
			v, err := rowToVector(row)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			set = append(set, v)
		}
		respondTXT(w, fmt.Sprintf("vectors_%s.txt", run.ID), set.ToTXT())
	}
}

// loadRun fetches the run in the URL with its vectors in position order
// and enforces that the caller owns it or is an administrator. On failure
// it writes the error response and returns ok=false.
func loadRun(db *gorm.DB, w http.ResponseWriter, r *http.Request) (models.Run, bool) {
	id := chi.URLParam(r, "id")
	if uuid.Validate(id) != nil {
		http.Error(w, "invalid run id", http.StatusBadRequest)
		return models.Run{}, false
	}
	var run models.Run
	err := db.Preload("Vectors", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position asc")
	}).First(&run, "id = ?", id).Error
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return models.Run{}, false
	}
	claims := auth.FromContext(r.Context())
	if run.UserID != claims.Subject && !claims.HasRole("Administrator") {
		http.Error(w, "forbidden", http.StatusForbidden)
		return models.Run{}, false
	}
	return run, true
}

func rowToVector(row models.Vector) (vector.Vector, error) {
	var v vector.Vector
	var err error
	if v.Key, err = vector.BlockFromHex(row.KeyHex); err != nil {
		return v, fmt.Errorf("vector %d key: %w", row.Position, err)
	}
	if v.Plaintext, err = vector.BlockFromHex(row.PlaintextHex); err != nil {
		return v, fmt.Errorf("vector %d plaintext: %w", row.Position, err)
	}
	if v.Ciphertext, err = vector.BlockFromHex(row.CiphertextHex); err != nil {
		return v, fmt.Errorf("vector %d ciphertext: %w", row.Position, err)
	}
	return v, nil
}
