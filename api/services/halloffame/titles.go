package halloffameservice

// Title ids of the queries that can't be expressed as a single ordered
// column.
const (
	TitleWorstWinRate = "worst_win_rate"
	TitleNeverMvp     = "never_mvp"
	TitleNeverAce     = "never_ace"
)

// A win rate based title only makes sense with a minimum sample size.
const MinWorstWinRateGames = 10

// SimpleTitle is a hall of fame title decided by ordering a single ratings
// column.
type SimpleTitle struct {
	Id        string
	Column    string
	Ascending bool
}

// SimpleTitles is every column ordered title of the hall of fame, the
// flattering ones first, the shameful ones after.
var SimpleTitles = []SimpleTitle{
	{Id: "most_kills", Column: "avg_kills"},
	{Id: "most_assists", Column: "avg_assists"},
	{Id: "best_farm", Column: "avg_cs"},
	{Id: "cannon_fodder", Column: "avg_deaths"},
	{Id: "mvp", Column: "mvp_games"},
	{Id: "penta_hunter", Column: "total_penta_kills"},
	{Id: "vision_master", Column: "avg_vision_score"},
	{Id: "damage_dealer", Column: "avg_damage_to_champions"},
	{Id: "gold_hoarder", Column: "avg_gold_earned"},
	{Id: "ace", Column: "ace_games"},
	{Id: "quadra_killer", Column: "total_quadra_kills"},
	{Id: "triple_threat", Column: "total_triple_kills"},
	{Id: "tank", Column: "avg_damage_taken"},
	{Id: "life_saver", Column: "avg_heal"},
	{Id: "cc_king", Column: "avg_cc_time"},
	{Id: "tower_crusher", Column: "avg_turret_kills"},
	{Id: "jungle_clearer", Column: "avg_neutral_minions"},
	{Id: "op_score", Column: "avg_op_score"},
	{Id: "big_spender", Column: "avg_gold_spent"},
	{Id: "level_lead", Column: "avg_champ_level"},
	{Id: "tilted", Column: "lose_streak"},
	{Id: "veteran_of_defeat", Column: "losses"},
	{Id: "feeder", Column: "avg_kda", Ascending: true},
	{Id: "pacifist", Column: "avg_kills", Ascending: true},
	{Id: "lone_wolf", Column: "avg_assists", Ascending: true},
	{Id: "blind", Column: "avg_vision_score", Ascending: true},
	{Id: "tower_hugger", Column: "avg_turret_kills", Ascending: true},
	{Id: "behind", Column: "avg_champ_level", Ascending: true},
	{Id: "broke", Column: "avg_gold_earned", Ascending: true},
	{Id: "no_heals", Column: "avg_heal", Ascending: true},
	{Id: "bottom_of_ladder", Column: "rating", Ascending: true},
	{Id: "cold", Column: "best_streak", Ascending: true},
	{Id: "peashooter", Column: "avg_damage_to_champions", Ascending: true},
	{Id: "hoarder", Column: "avg_gold_spent", Ascending: true},
}

// AllTitleIds returns every title id, simple and gated alike.
func AllTitleIds() []string {
	ids := make([]string, 0, len(SimpleTitles)+3)
	for _, title := range SimpleTitles {
		ids = append(ids, title.Id)
	}
	return append(ids, TitleWorstWinRate, TitleNeverMvp, TitleNeverAce)
}
