package nba

// Team is the team reference nested in players and games.
type Team struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// Player is a player record as returned by the stats service.
type Player struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Position  string `json:"position"`
	Team      Team   `json:"team"`
}

// PlayerStats holds a player's per-game season averages.
type PlayerStats struct {
	PlayerID        int     `json:"player_id"`
	Season          int     `json:"season"`
	GamesPlayed     int     `json:"games_played"`
	PointsPerGame   float64 `json:"points_per_game"`
	AssistsPerGame  float64 `json:"assists_per_game"`
	ReboundsPerGame float64 `json:"rebounds_per_game"`
	MinutesPerGame  string  `json:"minutes_per_game,omitempty"`
}

// Game is a single scheduled or finished game.
type Game struct {
	ID               int    `json:"id"`
	Date             string `json:"date"`
	Status           string `json:"status"`
	HomeTeam         Team   `json:"home_team"`
	VisitorTeam      Team   `json:"visitor_team"`
	HomeTeamScore    int    `json:"home_team_score"`
	VisitorTeamScore int    `json:"visitor_team_score"`
}

// upstream envelopes; Data is nil when the field is missing entirely
type playersBody struct {
	Data []Player `json:"data"`
}

// seasonAverageRow is one row of /v1/season_averages as the service sends it
type seasonAverageRow struct {
	PlayerID    int     `json:"player_id"`
	Season      int     `json:"season"`
	GamesPlayed int     `json:"games_played"`
	Pts         float64 `json:"pts"`
	Ast         float64 `json:"ast"`
	Reb         float64 `json:"reb"`
	Min         string  `json:"min"`
}

func (r seasonAverageRow) toStats() PlayerStats {
	return PlayerStats{
		PlayerID:        r.PlayerID,
		Season:          r.Season,
		GamesPlayed:     r.GamesPlayed,
		PointsPerGame:   r.Pts,
		AssistsPerGame:  r.Ast,
		ReboundsPerGame: r.Reb,
		MinutesPerGame:  r.Min,
	}
}

type statsBody struct {
	Data []seasonAverageRow `json:"data"`
}

type gamesBody struct {
	Data []Game `json:"data"`
}
