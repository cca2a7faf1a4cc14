package handlers

import (
	"context"
	"net/http"
)

// Pinger は *sql.DB の PingContext
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Health はDBに接続できるかを返します (認証不要)
func Health(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			loggerFrom(r).Error("Health check failed: could not ping DB", "error", err)
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
