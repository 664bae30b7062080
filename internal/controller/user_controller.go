package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Brushtail/internal/dto"
	"github.com/rs/zerolog/log"
)

// GetAllProfilesHandler godoc
// @Summary Get all profiles
// @Tags user
// @Produce json
// @Success 200 {array} dto.ProfileResponse
// @Router /user/profiles [get]
func (ctrl *Controller) GetAllProfilesHandler(c *gin.Context) {
	profiles, err := ctrl.profileSvc.GetAllProfiles()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// GetProfileHandler godoc
// @Summary Get a profile by ID
// @Tags user
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /user/profile/{id} [get]
func (ctrl *Controller) GetProfileHandler(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	profile, err := ctrl.profileSvc.GetProfileByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetProfileByEmailHandler godoc
// @Summary Get a profile by email
// @Tags user
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /user/profile/email/{email} [get]
func (ctrl *Controller) GetProfileByEmailHandler(c *gin.Context) {
	profile, err := ctrl.profileSvc.GetProfileByEmail(c.Param("email"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// CreateProfileHandler godoc
// @Summary Create a profile
// @Tags user
// @Accept json
// @Produce json
// @Param profile body dto.CreateProfileRequest true "Profile data"
// @Success 201 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /user/profile [post]
func (ctrl *Controller) CreateProfileHandler(c *gin.Context) {
	var req dto.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	profile, err := ctrl.profileSvc.CreateProfile(req)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create profile")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// SyncProfileHandler godoc
// @Summary Sync a profile after external signup
// @Description Idempotent create-or-patch reconciling the profile with an external identity provider's record
// @Tags user
// @Accept json
// @Produce json
// @Param request body dto.SyncProfileRequest true "Sync data"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /user/profile/sync [post]
func (ctrl *Controller) SyncProfileHandler(c *gin.Context) {
	var req dto.SyncProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Invalid profile sync request")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	profile, err := ctrl.profileSvc.SyncProfile(req)
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Failed to sync profile")
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler godoc
// @Summary Update a profile
// @Tags user
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param profile body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /user/profile/{id} [put]
func (ctrl *Controller) UpdateProfileHandler(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	profile, err := ctrl.profileSvc.UpdateProfile(id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteProfileHandler godoc
// @Summary Delete a profile
// @Tags user
// @Param id path string true "Profile ID"
// @Success 204 "No Content"
// @Router /user/profile/{id} [delete]
func (ctrl *Controller) DeleteProfileHandler(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.profileSvc.DeleteProfile(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetUserStatsHandler godoc
// @Summary Get a user's statistics
// @Description The profile row doubles as the stats record
// @Tags user
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} dto.ProfileResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /user/stats/{userId} [get]
func (ctrl *Controller) GetUserStatsHandler(c *gin.Context) {
	userID, ok := parseUUIDParam(c, "userId")
	if !ok {
		return
	}
	profile, err := ctrl.profileSvc.GetProfileByID(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
