package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Brushtail/internal/dto"
	"github.com/rs/zerolog/log"
)

const defaultLeaderboardLimit = 10

// GetLeaderboardHandler godoc
// @Summary Get the points leaderboard
// @Description Profiles ordered by total points descending. limit <= 0 returns everything.
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Result cap" default(10)
// @Success 200 {object} dto.LeaderboardResponse
// @Router /leaderboard/top [get]
func (ctrl *Controller) GetLeaderboardHandler(c *gin.Context) {
	limit := parseLimit(c)
	profiles, err := ctrl.profileSvc.GetLeaderboard(limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get leaderboard")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LeaderboardResponse{
		Success:     true,
		Leaderboard: profiles,
		Total:       len(profiles),
	})
}

// GetStreakLeaderboardHandler godoc
// @Summary Get the streak leaderboard
// @Description Profiles ordered by current streak descending. limit <= 0 returns everything.
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Result cap" default(10)
// @Success 200 {object} dto.LeaderboardResponse
// @Router /leaderboard/streaks [get]
func (ctrl *Controller) GetStreakLeaderboardHandler(c *gin.Context) {
	limit := parseLimit(c)
	profiles, err := ctrl.profileSvc.GetStreakLeaderboard(limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get streak leaderboard")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LeaderboardResponse{
		Success:     true,
		Leaderboard: profiles,
		Total:       len(profiles),
	})
}

func parseLimit(c *gin.Context) int {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultLeaderboardLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		return defaultLeaderboardLimit
	}
	return limit
}
