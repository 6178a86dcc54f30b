package idempotency

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"storefront/internal/commons"
)

const (
	HeaderKey      = "Idempotency-Key"
	HeaderReplayed = "Idempotent-Replayed"

	lockTTL = 30 * time.Second
)

type Store interface {
	Get(ctx context.Context, key string) (*Response, error)
	Save(ctx context.Context, key string, resp *Response, ttl time.Duration) error
	Lock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}

// Middleware replays the first successful response recorded for an
// Idempotency-Key. Requests without the header pass straight through, and
// store failures fall back to normal processing.
func Middleware(store Store, ttl time.Duration, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(HeaderKey)
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			key := r.Method + ":" + r.URL.Path + ":" + header
			log := logger.With(zap.String("idempotencyKey", header))

			stored, err := store.Get(ctx, key)
			if err != nil {
				log.Warn("idempotency store unavailable", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			if stored != nil {
				replay(w, stored)
				return
			}

			locked, err := store.Lock(ctx, key, lockTTL)
			if err != nil {
				log.Warn("idempotency store unavailable", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			if !locked {
				commons.WriteJSON(w, http.StatusConflict, map[string]string{
					"error":   "CONFLICT",
					"message": "a request with this Idempotency-Key is already in progress",
				}, log)
				return
			}
			defer func() {
				if err := store.Unlock(context.WithoutCancel(ctx), key); err != nil {
					log.Warn("idempotency lock not released", zap.Error(err))
				}
			}()

			// A request holding the lock may have finished between Get and Lock.
			stored, err = store.Get(ctx, key)
			if err != nil {
				log.Warn("idempotency store unavailable", zap.Error(err))
			} else if stored != nil {
				replay(w, stored)
				return
			}

			var body bytes.Buffer
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Tee(&body)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status < 200 || status >= 300 {
				return
			}

			err = store.Save(context.WithoutCancel(ctx), key, &Response{
				Status:      status,
				ContentType: ww.Header().Get("Content-Type"),
				Body:        body.Bytes(),
			}, ttl)
			if err != nil {
				log.Warn("response not stored for replay", zap.Error(err))
			}
		})
	}
}

func replay(w http.ResponseWriter, resp *Response) {
	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	w.Header().Set(HeaderReplayed, "true")
	w.WriteHeader(resp.Status)
	_, _ = w.Write(resp.Body)
}
