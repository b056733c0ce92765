package nba

import (
	"context"
	"errors"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/briangreenhill/courtside/cache"
)

// GetGames returns the games played or scheduled on date (YYYY-MM-DD).
func (c *Client) GetGames(ctx context.Context, date string) ([]Game, error) {
	log := zerolog.Ctx(ctx)

	key := cache.KeyFor(prefixGames, map[string]string{"date": date})
	if games, ok := c.games.Get(key); ok {
		log.Debug().Str("key", key).Msg("cache hit")
		return games, nil
	}
	log.Debug().Str("key", key).Msg("cache miss")

	var body gamesBody
	if err := c.getJSON(ctx, "get games", "/v1/games", url.Values{"dates[]": {date}}, &body); err != nil {
		return nil, err
	}
	if body.Data == nil {
		return nil, &ParseError{Op: "get games", Err: errors.New(`missing "data" field`)}
	}

	c.games.Set(key, body.Data)
	return body.Data, nil
}
