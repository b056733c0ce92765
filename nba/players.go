package nba

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/briangreenhill/courtside/cache"
)

// playerIndexPageSize is how many players are pulled from the index per search.
const playerIndexPageSize = 100

// SearchPlayers returns the players whose name or team name contains query,
// ignoring case. query must contain a non-space character.
func (c *Client) SearchPlayers(ctx context.Context, query string) ([]Player, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	log := zerolog.Ctx(ctx)

	key := cache.KeyFor(prefixPlayerSearch, map[string]string{"query": query})
	if players, ok := c.players.Get(key); ok {
		log.Debug().Str("key", key).Msg("cache hit")
		return players, nil
	}
	log.Debug().Str("key", key).Msg("cache miss")

	var body playersBody
	q := url.Values{"per_page": {strconv.Itoa(playerIndexPageSize)}}
	if err := c.getJSON(ctx, "search players", "/v1/players", q, &body); err != nil {
		return nil, err
	}
	if body.Data == nil {
		return nil, &ParseError{Op: "search players", Err: errors.New(`missing "data" field`)}
	}

	matched := make([]Player, 0, len(body.Data))
	for _, p := range body.Data {
		if p.Name == "" {
			p.Name = strings.TrimSpace(p.FirstName + " " + p.LastName)
		}
		if matchesPlayer(p, query) {
			matched = append(matched, p)
		}
	}

	c.players.Set(key, matched)
	return matched, nil
}

func matchesPlayer(p Player, query string) bool {
	q := strings.ToLower(query)
	for _, field := range []string{p.Name, p.FirstName, p.LastName, p.Team.Name} {
		if field != "" && strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// GetPlayerStats returns the season averages for playerID in the client's
// configured season.
func (c *Client) GetPlayerStats(ctx context.Context, playerID string) (*PlayerStats, error) {
	log := zerolog.Ctx(ctx)
	season := strconv.Itoa(c.season)

	key := cache.KeyFor(prefixPlayerStats, map[string]string{"player_id": playerID, "season": season})
	if stats, ok := c.stats.Get(key); ok {
		log.Debug().Str("key", key).Msg("cache hit")
		return stats, nil
	}
	log.Debug().Str("key", key).Msg("cache miss")

	var body statsBody
	q := url.Values{"season": {season}, "player_id": {playerID}}
	if err := c.getJSON(ctx, "get player stats", "/v1/season_averages", q, &body); err != nil {
		return nil, err
	}
	if len(body.Data) == 0 {
		return nil, &ParseError{Op: "get player stats", Err: ErrNoRows}
	}

	stats := body.Data[0].toStats()
	c.stats.Set(key, &stats)
	return &stats, nil
}
