package duoservice

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"time"

	"riftrank/api/cache"
	"riftrank/api/dto"
	"riftrank/api/filters"
	"riftrank/api/repositories"
	"riftrank/pkg/database/models"

	"gorm.io/gorm"
)

const (
	DuoMemoryCacheDuration = 15 * time.Minute
	DuoRedisCacheDuration  = time.Hour
)

type DuoRedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// DuoService builds the duo and rivalry summaries out of the raw
// participant and kill rows.
type DuoService struct {
	db                    *gorm.DB
	memCache              cache.MemCache[[]*dto.PlayerDuos]
	redis                 DuoRedisClient
	ParticipantRepository repositories.ParticipantRepository
	PlayerRepository      repositories.PlayerRepository
}

// DuoServiceDeps is the dependency list for the duo service.
type DuoServiceDeps struct {
	DB       *gorm.DB
	MemCache cache.MemCache[[]*dto.PlayerDuos]
	Redis    DuoRedisClient
}

// NewDuoService creates a duo service.
func NewDuoService(deps *DuoServiceDeps) *DuoService {
	return &DuoService{
		db:                    deps.DB,
		memCache:              deps.MemCache,
		redis:                 deps.Redis,
		ParticipantRepository: repositories.NewParticipantRepository(deps.DB),
		PlayerRepository:      repositories.NewPlayerRepository(deps.DB),
	}
}

// teamKey identifies one side of one match.
type teamKey struct {
	matchId int64
	teamId  int
}

// seatKey identifies a participant seat inside one match.
type seatKey struct {
	matchId       int64
	participantId int
}

// partnerCount is a teammate with the shared game count.
type partnerCount struct {
	puuid string
	count int
}

type outcomeFilter int

const (
	allGames outcomeFilter = iota
	wonGames
	lostGames
)

// GetDuos returns the duo summary of every known player.
// When the kill table is missing the teammate lists are still served and
// the kill rivalries stay null.
func (ds *DuoService) GetDuos(ctx context.Context, filter *filters.DuoFilter) ([]*dto.PlayerDuos, error) {
	key := "duos:partner_limit_" + strconv.Itoa(filter.PartnerLimit)

	if mem := ds.memCache.Get(key); mem != nil {
		return mem, nil
	}

	if redisData := ds.getFromRedis(ctx, key); redisData != nil {
		ds.memCache.Set(key, redisData, DuoMemoryCacheDuration)
		return redisData, nil
	}

	rows, err := ds.ParticipantRepository.GetDuoRows(ctx)
	if err != nil {
		return nil, err
	}

	playerPuuids := collectPuuids(rows)

	mostGamesWith := buildTeammateCounts(rows, allGames, filter.PartnerLimit)
	mostWinsWith := buildTeammateCounts(rows, wonGames, filter.PartnerLimit)
	mostLossesWith := buildTeammateCounts(rows, lostGames, filter.PartnerLimit)

	mostKilled, mostlyKilledBy, err := ds.buildKillStats(ctx, rows)
	if err != nil {
		return nil, err
	}

	players, err := ds.fetchProfiles(ctx, playerPuuids, mostGamesWith, mostWinsWith, mostLossesWith, mostKilled, mostlyKilledBy)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PlayerDuos, 0, len(playerPuuids))
	for _, puuid := range playerPuuids {
		result = append(result, &dto.PlayerDuos{
			Puuid:          puuid,
			Player:         dto.NewPlayerInfo(players[puuid]),
			MostGamesWith:  newPartners(mostGamesWith[puuid], players),
			MostWinsWith:   newPartners(mostWinsWith[puuid], players),
			MostLossesWith: newPartners(mostLossesWith[puuid], players),
			MostKilled:     newRival(mostKilled[puuid], players),
			MostlyKilledBy: newRival(mostlyKilledBy[puuid], players),
		})
	}

	ds.populateCaches(ctx, key, result)

	return result, nil
}

// collectPuuids returns the sorted unique puuids of the rows, so the output
// order is stable between runs.
func collectPuuids(rows []repositories.DuoParticipantRow) []string {
	seen := make(map[string]bool, len(rows))
	puuids := make([]string, 0, len(rows))
	for _, row := range rows {
		if !seen[row.Puuid] {
			seen[row.Puuid] = true
			puuids = append(puuids, row.Puuid)
		}
	}
	sort.Strings(puuids)
	return puuids
}

// buildTeammateCounts counts, per player, the shared games with every
// teammate under the given outcome filter, keeping the top partners by
// count with the puuid as tiebreak.
func buildTeammateCounts(rows []repositories.DuoParticipantRow, filter outcomeFilter, partnerLimit int) map[string][]partnerCount {
	byMatchTeam := make(map[teamKey][]string)
	for _, row := range rows {
		if row.TeamId == nil {
			continue
		}
		if filter == wonGames && (row.Win == nil || !*row.Win) {
			continue
		}
		if filter == lostGames && (row.Win == nil || *row.Win) {
			continue
		}
		key := teamKey{matchId: row.MatchId, teamId: *row.TeamId}
		byMatchTeam[key] = append(byMatchTeam[key], row.Puuid)
	}

	perPlayer := make(map[string]map[string]int)
	for _, puuids := range byMatchTeam {
		unique := uniqueStrings(puuids)
		for _, puuid := range unique {
			counts := perPlayer[puuid]
			if counts == nil {
				counts = make(map[string]int)
				perPlayer[puuid] = counts
			}
			for _, other := range unique {
				if other != puuid {
					counts[other]++
				}
			}
		}
	}

	result := make(map[string][]partnerCount, len(perPlayer))
	for puuid, counts := range perPlayer {
		partners := make([]partnerCount, 0, len(counts))
		for other, count := range counts {
			partners = append(partners, partnerCount{puuid: other, count: count})
		}
		sort.Slice(partners, func(i, j int) bool {
			if partners[i].count != partners[j].count {
				return partners[i].count > partners[j].count
			}
			return partners[i].puuid < partners[j].puuid
		})
		if len(partners) > partnerLimit {
			partners = partners[:partnerLimit]
		}
		result[puuid] = partners
	}

	return result
}

// buildKillStats maps each kill event back to puuids through the
// participant seats and keeps, per player, the single most killed victim
// and the single most frequent killer.
func (ds *DuoService) buildKillStats(ctx context.Context, rows []repositories.DuoParticipantRow) (map[string]*partnerCount, map[string]*partnerCount, error) {
	kills, err := ds.ParticipantRepository.GetKillRows(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrKillTableMissing) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	seatToPuuid := make(map[seatKey]string, len(rows))
	for _, row := range rows {
		if row.ParticipantId != nil {
			seatToPuuid[seatKey{matchId: row.MatchId, participantId: *row.ParticipantId}] = row.Puuid
		}
	}

	killerToVictims := make(map[string]map[string]int)
	victimToKillers := make(map[string]map[string]int)
	for _, kill := range kills {
		killerPuuid := seatToPuuid[seatKey{matchId: kill.MatchId, participantId: kill.KillerParticipantId}]
		victimPuuid := seatToPuuid[seatKey{matchId: kill.MatchId, participantId: kill.VictimParticipantId}]
		if killerPuuid == "" || victimPuuid == "" {
			continue
		}

		if killerToVictims[killerPuuid] == nil {
			killerToVictims[killerPuuid] = make(map[string]int)
		}
		killerToVictims[killerPuuid][victimPuuid]++

		if victimToKillers[victimPuuid] == nil {
			victimToKillers[victimPuuid] = make(map[string]int)
		}
		victimToKillers[victimPuuid][killerPuuid]++
	}

	return topOfEach(killerToVictims), topOfEach(victimToKillers), nil
}

// topOfEach reduces each count map to its single top entry, breaking count
// ties by puuid.
func topOfEach(counts map[string]map[string]int) map[string]*partnerCount {
	result := make(map[string]*partnerCount, len(counts))
	for puuid, others := range counts {
		var top *partnerCount
		for other, count := range others {
			if top == nil || count > top.count || (count == top.count && other < top.puuid) {
				top = &partnerCount{puuid: other, count: count}
			}
		}
		result[puuid] = top
	}
	return result
}

// fetchProfiles batch loads the profile of every player and partner showing
// up anywhere in the response.
func (ds *DuoService) fetchProfiles(
	ctx context.Context,
	playerPuuids []string,
	partnerLists ...any,
) (map[string]*models.Player, error) {
	seen := make(map[string]bool, len(playerPuuids))
	puuids := make([]string, 0, len(playerPuuids))

	add := func(puuid string) {
		if !seen[puuid] {
			seen[puuid] = true
			puuids = append(puuids, puuid)
		}
	}

	for _, puuid := range playerPuuids {
		add(puuid)
	}
	for _, list := range partnerLists {
		switch typed := list.(type) {
		case map[string][]partnerCount:
			for _, partners := range typed {
				for _, partner := range partners {
					add(partner.puuid)
				}
			}
		case map[string]*partnerCount:
			for _, partner := range typed {
				if partner != nil {
					add(partner.puuid)
				}
			}
		}
	}

	return ds.PlayerRepository.GetPlayersByPuuids(ctx, puuids)
}

// newPartners converts the internal partner counts into their DTOs.
func newPartners(partners []partnerCount, players map[string]*models.Player) []*dto.DuoPartner {
	result := make([]*dto.DuoPartner, 0, len(partners))
	for _, partner := range partners {
		result = append(result, &dto.DuoPartner{
			Puuid:  partner.puuid,
			Player: dto.NewPlayerInfo(players[partner.puuid]),
			Count:  partner.count,
		})
	}
	return result
}

// newRival converts the internal top rival into its DTO.
func newRival(rival *partnerCount, players map[string]*models.Player) *dto.KillRival {
	if rival == nil {
		return nil
	}
	return &dto.KillRival{
		Puuid:  rival.puuid,
		Player: dto.NewPlayerInfo(players[rival.puuid]),
		Count:  rival.count,
	}
}

// uniqueStrings removes duplicates keeping the first occurrence order.
func uniqueStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	unique := make([]string, 0, len(values))
	for _, value := range values {
		if !seen[value] {
			seen[value] = true
			unique = append(unique, value)
		}
	}
	return unique
}

// getFromRedis retrieves the duo summary from the redis.
func (ds *DuoService) getFromRedis(ctx context.Context, key string) []*dto.PlayerDuos {
	redisCtx, cancel := context.WithTimeout(ctx, time.Millisecond*200)
	defer cancel()

	redisCached, err := ds.redis.Get(redisCtx, key)
	if err != nil || redisCached == "" {
		return nil
	}

	var duos []*dto.PlayerDuos
	if err := json.Unmarshal([]byte(redisCached), &duos); err != nil {
		return nil
	}

	return duos
}

// populateCaches sets the mem cache and redis cache.
func (ds *DuoService) populateCaches(ctx context.Context, key string, data []*dto.PlayerDuos) {
	ds.memCache.Set(key, data, DuoMemoryCacheDuration)

	if j, err := json.Marshal(data); err == nil {
		ds.redis.Set(ctx, key, string(j), DuoRedisCacheDuration)
	}
}
