package requests

import (
    "errors"
    "log"
    "net/http"

    "gamediary/config"
    "gamediary/metrics"
    "gamediary/middleware"
    "gamediary/models"
    "gamediary/realtime"
    "gamediary/services"
    "gamediary/utils/permissions"
    "gamediary/utils/response"

    "github.com/gin-gonic/gin"
)

// CreateRequest files a new support request for the acting user
// @Summary Create a support request
// @Description File a free-text support request. A profile may hold a limited number of pending requests at once
// @Tags Requests
// @Accept json
// @Produce json
// @Param request body RequestCreateRequest true "Request text"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /requests [post]
// @Security Bearer
func CreateRequest(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    var request RequestCreateRequest
    if err := c.ShouldBindJSON(&request); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    created, err := services.CreateRequest(user.Profile, request.Text)
    if err != nil {
        if errors.Is(err, services.ErrQuotaExceeded) {
            response.Error(c, http.StatusTooManyRequests, ErrQuotaReached)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrFailedToCreate)
        return
    }

    metrics.PlayerRequestsCreated.Inc()
    realtime.BroadcastRequestUpdate(realtime.RequestUpdate{Request: *created, UpdateType: "new"})

    // Notification email is best effort
    if err := services.NewEmailService().SendRequestNotification(user.Username, created.Text); err != nil {
        log.Printf("Failed to send request notification: %v", err)
    }

    pending, err := services.PendingCountForProfile(user.Profile)
    if err != nil {
        pending = 0
    }

    c.JSON(http.StatusCreated, gin.H{
        "message":            "Request successfully created. Thank you!",
        "request":            created,
        "requests_remaining": int64(config.MaxPendingRequests) - pending,
    })
}

// GetRequests lists support requests, optionally narrowed by status
// @Summary List support requests
// @Description List support requests newest first (admin only). display=active returns pending, display=solved returns solved, anything else returns all
// @Tags Requests
// @Produce json
// @Param display query string false "active, solved or all"
// @Success 200 {array} models.PlayerRequest
// @Failure 403 {object} map[string]string
// @Router /requests [get]
// @Security Bearer
func GetRequests(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }
    if !permissions.IsMemberOf(&user, []models.Role{models.RoleAdmin}) {
        response.Error(c, http.StatusForbidden, ErrUnauthorized)
        return
    }

    var list []models.PlayerRequest
    switch c.Query("display") {
    case "active":
        list, err = services.PendingRequests()
    case "solved":
        list, err = services.SolvedRequests()
    default:
        list, err = services.AllRequests()
    }
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrFailedToGetList)
        return
    }
    c.JSON(http.StatusOK, list)
}

// SwitchRequestStatus flips a request between pending and solved
// @Summary Switch request status
// @Description Flip one request between pending and solved (admin only). Always reversible
// @Tags Requests
// @Produce json
// @Param requestID path int true "Request ID"
// @Success 200 {object} models.PlayerRequest
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /requests/{requestID}/switch [post]
// @Security Bearer
func SwitchRequestStatus(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }
    if !permissions.IsMemberOf(&user, []models.Role{models.RoleAdmin}) {
        response.Error(c, http.StatusForbidden, ErrUnauthorized)
        return
    }

    requestID, err := services.ParseID(c.Param("requestID"))
    if err != nil {
        response.Error(c, http.StatusNotFound, ErrRequestNotFound)
        return
    }

    switched, err := services.SwitchRequestStatus(requestID)
    if err != nil {
        if errors.Is(err, services.ErrNotFound) {
            response.Error(c, http.StatusNotFound, ErrRequestNotFound)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrFailedToSwitch)
        return
    }

    realtime.BroadcastRequestUpdate(realtime.RequestUpdate{Request: *switched, UpdateType: "status"})
    c.JSON(http.StatusOK, switched)
}
