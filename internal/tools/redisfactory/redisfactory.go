package redisfactory

import (
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// One shared connection for the suggestion cache; introduce a new method
// here if another concern ever needs its own database.

type Factory struct {
	suggestionsCache *redis.Client
}

func New() *Factory {
	opt, err := redis.ParseURL(os.Getenv("SUGGESTIONS_REDIS_URI"))
	if err != nil {
		panic(err)
	}

	opt.DialTimeout = 4 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	return &Factory{
		suggestionsCache: redis.NewClient(opt),
	}
}

func (f *Factory) SuggestionsClient() *redis.Client {
	return f.suggestionsCache
}
