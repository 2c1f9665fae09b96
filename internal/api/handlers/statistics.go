package handlers

import (
	"net/http"

	"github.com/loga/gacha-backend/internal/service"
)

type StatisticsHandler struct {
	statisticsService *service.StatisticsService
}

func NewStatisticsHandler(statisticsService *service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

type StatisticsResponse struct {
	TotalUsers       int64                      `json:"totalUsers"`
	TotalRosters     int64                      `json:"totalRosters"`
	TotalPlayers     int64                      `json:"totalPlayers"`
	TopPickedPlayers []PlayerResponse           `json:"topPickedPlayers"`
	TopByPosition    map[string]*PlayerResponse `json:"topByPosition"`
}

// Overall handles GET /statistics.
func (h *StatisticsHandler) Overall(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statisticsService.GetOverallStatistics(r.Context())
	if err != nil {
		writeError(w, "statistics.Overall", err)
		return
	}

	topByPosition := make(map[string]*PlayerResponse, len(stats.TopByPosition))
	for pos, player := range stats.TopByPosition {
		resp := toPlayerResponse(player)
		topByPosition[string(pos)] = &resp
	}

	writeJSON(w, http.StatusOK, StatisticsResponse{
		TotalUsers:       stats.TotalUsers,
		TotalRosters:     stats.TotalRosters,
		TotalPlayers:     stats.TotalPlayers,
		TopPickedPlayers: toPlayerResponses(stats.TopPickedPlayers),
		TopByPosition:    topByPosition,
	})
}
