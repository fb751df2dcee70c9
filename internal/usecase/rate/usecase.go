// Package rate quotes the current per-gram gold rate for a purity grade.
// Quotes are cached in redis so the pricing source is not hit on every
// dashboard refresh.
package rate

import (
	"context"
	"encoding/json"
	"time"

	"goldloan-backend/internal/domain/asset"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type Quote struct {
	Purity      string    `json:"purity"`
	RatePerGram float64   `json:"rate_per_gram"`
	AsOf        time.Time `json:"as_of"`
}

type Usecase struct {
	rdb      *redis.Client
	base24K  float64
	cacheTTL time.Duration
	log      *logrus.Logger
}

// NewUsecase: base24K is the configured per-gram rate for 24 carat gold;
// lower grades scale linearly by karat.
func NewUsecase(rdb *redis.Client, base24K float64, cacheTTL time.Duration, log *logrus.Logger) *Usecase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Usecase{rdb: rdb, base24K: base24K, cacheTTL: cacheTTL, log: log}
}

func cacheKey(p asset.Purity) string { return "rate:gold:" + string(p) }

// Get returns the quote for a purity code, serving from cache when possible.
func (u *Usecase) Get(ctx context.Context, purityCode string) (*Quote, error) {
	p, err := asset.ParsePurityCode(purityCode)
	if err != nil {
		return nil, err
	}

	if u.rdb != nil {
		if raw, err := u.rdb.Get(ctx, cacheKey(p)).Bytes(); err == nil {
			var q Quote
			if json.Unmarshal(raw, &q) == nil {
				return &q, nil
			}
		} else if err != redis.Nil {
			u.log.WithError(err).Warn("rate cache read failed")
		}
	}

	q := &Quote{
		Purity:      p.Label(),
		RatePerGram: round2(u.base24K * float64(p.Karat()) / 24.0),
		AsOf:        time.Now().UTC(),
	}

	if u.rdb != nil {
		payload, _ := json.Marshal(q)
		if err := u.rdb.Set(ctx, cacheKey(p), payload, u.cacheTTL).Err(); err != nil {
			u.log.WithError(err).Warn("rate cache write failed")
		}
	}
	return q, nil
}

func round2(f float64) float64 {
	return float64(int64(f*100+0.5)) / 100
}
