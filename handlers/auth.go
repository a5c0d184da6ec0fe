package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"shopapi/models"
	"shopapi/service"
	"shopapi/storage"
	"shopapi/utils"
)

// AuthHandler serves the auth and user endpoints.
type AuthHandler struct {
	store     storage.Store
	jwtSecret []byte
}

func NewAuthHandler(store storage.Store, jwtSecret []byte) *AuthHandler {
	return &AuthHandler{store: store, jwtSecret: jwtSecret}
}

// GoogleAuth upserts a user by email after a Google sign-in. An existing
// record is returned unchanged: repeat sign-ins do not refresh name or
// picture, even when they changed upstream.
func (h *AuthHandler) GoogleAuth(c *gin.Context) {
	var input models.GoogleAuthInput

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Email == "" {
		respondError(c, service.Invalid("email is required"))
		return
	}

	var user models.User
	err := h.store.FindOne(c.Request.Context(), storage.Users, bson.M{"email": input.Email}, &user)
	if err == storage.ErrNotFound {
		user = models.User{
			GoogleID: input.ID,
			Name:     input.Name,
			Email:    input.Email,
			Picture:  input.Picture,
		}

		id, err := h.store.Create(c.Request.Context(), storage.Users, user)
		if err != nil {
			if storage.IsDuplicate(err) {
				// lost a concurrent upsert race; the record exists now
				respondError(c, service.Conflict("email already exists"))
				return
			}
			respondError(c, err)
			return
		}
		user.ID = id
	} else if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User saved",
		"user":    user,
	})
}

// Signup creates a user account with a hashed password
func (h *AuthHandler) Signup(c *gin.Context) {
	var input models.UserSignup

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Email == "" || input.Password == "" {
		respondError(c, service.Invalid("email and password are required"))
		return
	}

	// Check if email or username already exists
	filter := bson.M{"$or": []bson.M{
		{"email": input.Email},
		{"username": input.Username},
	}}
	var existing models.User
	err := h.store.FindOne(c.Request.Context(), storage.Users, filter, &existing)
	if err == nil {
		respondError(c, service.Conflict("email or username already exists"))
		return
	}
	if err != storage.ErrNotFound {
		respondError(c, err)
		return
	}

	// Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, err)
		return
	}

	user := models.User{
		Username: input.Username,
		Name:     input.Name,
		Email:    input.Email,
		Role:     "user",
		Password: string(hash),
	}

	id, err := h.store.Create(c.Request.Context(), storage.Users, user)
	if err != nil {
		if storage.IsDuplicate(err) {
			// concurrent signup passed the existence check; unique index wins
			respondError(c, service.Conflict("email or username already exists"))
			return
		}
		respondError(c, err)
		return
	}
	user.ID = id

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created",
		"user":    user,
	})
}

// Login authenticates a user and returns a JWT token
func (h *AuthHandler) Login(c *gin.Context) {
	var input models.UserLogin

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	err := h.store.FindOne(c.Request.Context(), storage.Users, bson.M{"email": input.Email}, &user)
	if err == storage.ErrNotFound {
		respondError(c, service.Auth("invalid credentials"))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	// Compare password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		respondError(c, service.Auth("invalid credentials"))
		return
	}

	// Generate JWT token
	token, err := utils.GenerateJWT(h.jwtSecret, user.ID.Hex(), user.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"token":   token,
		"user":    user,
	})
}

// ForgotPassword stores a reset token on the user record. The reset link is
// logged rather than emailed; delivery is out of scope.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var input struct {
		Email string `json:"email"`
	}

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Email == "" {
		respondError(c, service.Invalid("email is required"))
		return
	}

	var user models.User
	err := h.store.FindOne(c.Request.Context(), storage.Users, bson.M{"email": input.Email}, &user)
	if err == storage.ErrNotFound {
		respondError(c, service.NotFound("user not found"))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	// Generate a reset token, valid for 1 hour
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		respondError(c, err)
		return
	}
	token := hex.EncodeToString(raw)
	expiry := time.Now().Add(1 * time.Hour)

	update := bson.M{"$set": bson.M{
		"resetPasswordToken":   token,
		"resetPasswordExpires": expiry,
	}}
	if err := h.store.UpdateOne(c.Request.Context(), storage.Users, bson.M{"_id": user.ID}, update); err != nil {
		respondError(c, err)
		return
	}

	log.Printf("Password reset link: /reset-password/%s", token)

	c.JSON(http.StatusOK, gin.H{"message": "Password reset link sent to email"})
}

// GetUsers retrieves all users. Password and reset fields never serialize.
func (h *AuthHandler) GetUsers(c *gin.Context) {
	users := []models.User{}

	if err := h.store.Find(c.Request.Context(), storage.Users, bson.M{}, nil, &users); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// SearchUsers looks up users whose name or email starts with the query
func (h *AuthHandler) SearchUsers(c *gin.Context) {
	q := c.Query("q")
	if len(q) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "please provide at least 3 characters to search"})
		return
	}

	pattern := primitive.Regex{Pattern: "^" + regexp.QuoteMeta(q), Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"name": pattern},
		{"email": pattern},
	}}

	users := []models.User{}
	if err := h.store.Find(c.Request.Context(), storage.Users, filter, nil, &users); err != nil {
		respondError(c, err)
		return
	}

	if len(users) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "no users found"})
		return
	}

	c.JSON(http.StatusOK, users)
}
