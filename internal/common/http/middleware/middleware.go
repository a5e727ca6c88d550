package middleware

import (
	"github.com/trustbooks/go-trust-ledger/internal/config"
	"github.com/trustbooks/go-trust-ledger/internal/repositories"
)

type AppMiddleware struct {
	conf      config.Config
	cacheRepo repositories.CacheRepository
}

func NewMiddleware(conf config.Config, cacheRepo repositories.CacheRepository) AppMiddleware {
	return AppMiddleware{
		conf:      conf,
		cacheRepo: cacheRepo,
	}
}
