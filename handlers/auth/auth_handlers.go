package auth

import (
    "errors"
    "net/http"
    "time"

    "gamediary/database"
    "gamediary/middleware"
    "gamediary/models"
    "gamediary/utils"
    "gamediary/utils/response"

    "github.com/gin-gonic/gin"
    "gorm.io/gorm"
)

// setCookieToken sets the authentication token as a secure HTTP-only cookie
func setCookieToken(c *gin.Context, token string, rememberMe bool) {
    var maxAge time.Duration
    if rememberMe {
        maxAge = 30 * 24 * time.Hour // 30 days
    } else {
        maxAge = 1 * 24 * time.Hour // 1 day
    }

    c.SetSameSite(http.SameSiteLaxMode)
    c.SetCookie(
        "auth_token",
        token,
        int(maxAge.Seconds()),
        "/",
        "",
        true,
        true,
    )
}

// Login authenticates a user and issues a session token
// @Summary Login
// @Description Authenticate with username and password, sets the auth cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /auth/login [post]
func Login(c *gin.Context) {
    // Anonymous callers only
    if _, ok := middleware.AuthenticatedUserID(c); ok {
        response.Error(c, http.StatusForbidden, ErrAlreadyLoggedIn)
        return
    }

    var request LoginRequest
    if err := c.ShouldBindJSON(&request); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    var user models.User
    if err := database.DB.Preload("Profile").First(&user, "username = ?", request.Username).Error; err != nil {
        response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
        return
    }
    if !utils.CheckPasswordHash(request.Password, user.Password) {
        response.Error(c, http.StatusUnauthorized, ErrInvalidCredentials)
        return
    }

    lifetime := 24 * time.Hour
    if request.RememberMe {
        lifetime = 30 * 24 * time.Hour
    }
    token, err := middleware.GenerateToken(&user, lifetime)
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrTokenGenerateFailed)
        return
    }
    setCookieToken(c, token, request.RememberMe)

    userTitle := ""
    if user.IsAdmin() {
        userTitle = AdminTitle
    }

    c.JSON(http.StatusOK, AuthResponse{
        UserID:    user.ID,
        ProfileID: user.ID,
        Username:  user.Username,
        Role:      user.Role.String(),
        Message:   "Nice to see you, " + userTitle + user.Username + "!",
    })
}

// RegisterUser creates a new account with its diary profile
// @Summary Register
// @Description Create a new player account and its profile
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func RegisterUser(c *gin.Context) {
    // Anonymous callers only
    if _, ok := middleware.AuthenticatedUserID(c); ok {
        response.Error(c, http.StatusForbidden, ErrAlreadyLoggedIn)
        return
    }

    var request RegisterRequest
    if err := c.ShouldBindJSON(&request); err != nil {
        response.Error(c, http.StatusBadRequest, err.Error())
        return
    }

    hashed, err := utils.HashPassword(request.Password)
    if err != nil {
        response.Error(c, http.StatusInternalServerError, ErrHashPasswordFailed)
        return
    }

    user := models.User{
        Username: request.Username,
        Password: hashed,
        Role:     models.RolePlayer,
    }

    // Account and profile are created together or not at all
    err = database.DB.Transaction(func(tx *gorm.DB) error {
        if err := tx.Create(&user).Error; err != nil {
            return err
        }
        profile := models.Profile{
            UserID:       user.ID,
            RegisterDate: time.Now(),
        }
        return tx.Create(&profile).Error
    })
    if err != nil {
        if errors.Is(err, gorm.ErrDuplicatedKey) {
            response.Error(c, http.StatusConflict, ErrUsernameInUse)
            return
        }
        response.Error(c, http.StatusInternalServerError, ErrUserCreateFailed)
        return
    }

    c.JSON(http.StatusCreated, AuthResponse{
        UserID:    user.ID,
        ProfileID: user.ID,
        Username:  user.Username,
        Role:      user.Role.String(),
        Message:   "Registration successful. Welcome, " + user.Username + "! Please login.",
    })
}

// CheckAuth returns the acting user when the session is valid
// @Summary Check authentication
// @Description Return the authenticated user's account
// @Tags Auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /auth/check [get]
// @Security Bearer
func CheckAuth(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }
    user.Password = ""
    c.JSON(http.StatusOK, user)
}

// Logout clears the session cookie and the cached session
// @Summary Logout
// @Description Clear the auth cookie and drop the cached session
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
// @Security Bearer
func Logout(c *gin.Context) {
    user, err := middleware.GetUserFromRequest(c)
    if err != nil {
        return // Error already handled by middleware
    }

    middleware.InvalidateUserCache(c, user.ID)
    c.SetCookie("auth_token", "", -1, "/", "", true, true)

    userTitle := ""
    if user.IsAdmin() {
        userTitle = AdminTitle
    }
    c.JSON(http.StatusOK, gin.H{"message": "See you later, " + userTitle + user.Username + "!"})
}
