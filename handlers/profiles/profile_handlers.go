package profiles

import (
    "errors"
    "net/http"

    "gamediary/middleware"
    "gamediary/models"
    "gamediary/services"
    "gamediary/utils/permissions"
    "gamediary/utils/response"

    "github.com/gin-gonic/gin"
)

// GetProfiles lists all profiles with diary-wide aggregates
// @Summary List profiles
// @Description List all diary profiles with profile and card aggregates
// @Tags Profiles
// @Produce json
// @Success 200 {object} ProfileListResponse
// @Failure 500 {object} map[string]string
// @Router /profiles [get]
// @Security Bearer
func GetProfiles(c *gin.Context) {
    _, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    profiles, err := services.AllProfiles()
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToGetProfile)
        return
    }
    profileStats, err := services.CollectProfileStats()
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToGetProfile)
        return
    }
    cardStats, err := services.CollectGameCardStats()
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToGetProfile)
        return
    }

    c.JSON(http.StatusOK, ProfileListResponse{
        Profiles: profiles,
        Stats:    profileStats,
        Cards:    cardStats,
    })
}

// GetProfile returns one profile with its scoped game cards
// @Summary Profile detail
// @Description Get a profile and its game cards. display=all returns every card, display=<letter> filters by the game's starting letter. Private profiles are visible to their owner and administrators only
// @Tags Profiles
// @Produce json
// @Param profileID path int true "Profile ID"
// @Param display query string false "all or a single letter"
// @Success 200 {object} ProfileResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /profiles/{profileID} [get]
// @Security Bearer
func GetProfile(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    profileID, err := services.ParseID(c.Param("profileID"))
    if err != nil {
        response.Error(c, http.StatusNotFound, ErrProfileNotFound)
        return
    }

    profile, err := services.GetProfile(profileID)
    if err != nil {
        if errors.Is(err, services.ErrNotFound) {
            response.Error(c, http.StatusNotFound, ErrProfileNotFound)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrFailedToGetProfile)
        return
    }

    if !permissions.CanViewProfile(&user, profile) {
        response.Error(c, http.StatusForbidden, ErrProfileIsPrivate)
        return
    }

    display := c.DefaultQuery("display", "all")
    var cards []models.GameCard
    if display == "all" {
        cards, err = services.GameCardsForProfile(profile)
    } else {
        cards, err = services.GameCardsForProfileStartingWith(profile, display)
    }
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToGetProfile)
        return
    }

    total, err := services.GameCardsForProfile(profile)
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToGetProfile)
        return
    }

    c.JSON(http.StatusOK, ProfileResponse{
        Profile:        profile,
        GameCards:      cards,
        TotalGameCards: int64(len(total)),
    })
}

// TogglePrivacy flips a profile's privacy flag
// @Summary Toggle profile privacy
// @Description Flip is_private on the target profile. Owner or administrator only. Two identical calls restore the original value
// @Tags Profiles
// @Produce json
// @Param profileID path int true "Profile ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /profiles/{profileID}/privacy [post]
// @Security Bearer
func TogglePrivacy(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    profileID, err := services.ParseID(c.Param("profileID"))
    if err != nil {
        response.Error(c, http.StatusNotFound, ErrProfileNotFound)
        return
    }

    profile, err := services.GetProfile(profileID)
    if err != nil {
        if errors.Is(err, services.ErrNotFound) {
            response.Error(c, http.StatusNotFound, ErrProfileNotFound)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrFailedToGetProfile)
        return
    }

    if !permissions.OwnsProfile(&user, profile) {
        response.Error(c, http.StatusForbidden, ErrNoPermissionEdit)
        return
    }

    isPrivate, err := services.ToggleProfilePrivacy(profile)
    if err != nil {
        response.Error(c, http.StatusInternalServerError, "Failed to change privacy")
        return
    }

    middleware.InvalidateUserCache(c, profile.UserID)
    c.JSON(http.StatusOK, gin.H{"profile_id": profile.UserID, "is_private": isPrivate})
}
