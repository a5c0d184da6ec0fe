package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"shopapi/models"
	"shopapi/storage"
)

func authRouter(store storage.Store) *gin.Engine {
	r := gin.New()
	h := NewAuthHandler(store, []byte("test-secret"))
	r.POST("/api/auth/google", h.GoogleAuth)
	r.POST("/api/auth/signup", h.Signup)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/forgot-password", h.ForgotPassword)
	return r
}

func TestSignupConflict(t *testing.T) {
	created := false
	store := &fakeStore{
		findOneFn: func(ctx context.Context, collection string, filter any, out any) error {
			*out.(*models.User) = models.User{
				ID:    primitive.NewObjectID(),
				Email: "rahul@example.com",
			}
			return nil
		},
		createFn: func(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
			created = true
			return primitive.NewObjectID(), nil
		},
	}

	w := performRequest(t, authRouter(store), http.MethodPost, "/api/auth/signup", map[string]any{
		"username": "rahul",
		"email":    "rahul@example.com",
		"password": "secret",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if created {
		t.Error("conflicting signup must not create a record")
	}
	if _, ok := decodeBody(t, w)["error"]; !ok {
		t.Error("conflict response missing error field")
	}
}

func TestSignupHashesPassword(t *testing.T) {
	var stored models.User
	store := &fakeStore{
		createFn: func(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
			stored = doc.(models.User)
			return primitive.NewObjectID(), nil
		},
	}

	w := performRequest(t, authRouter(store), http.MethodPost, "/api/auth/signup", map[string]any{
		"username": "rahul",
		"email":    "rahul@example.com",
		"password": "secret",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	if stored.Password == "secret" || stored.Password == "" {
		t.Error("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestSignupCannotSetRole(t *testing.T) {
	var stored models.User
	store := &fakeStore{
		createFn: func(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
			stored = doc.(models.User)
			return primitive.NewObjectID(), nil
		},
	}

	// a self-granted admin role must not survive signup
	w := performRequest(t, authRouter(store), http.MethodPost, "/api/auth/signup", map[string]any{
		"username": "rahul",
		"email":    "rahul@example.com",
		"password": "secret",
		"role":     "admin",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}
	if stored.Role != "user" {
		t.Errorf("role = %q, want %q regardless of the request body", stored.Role, "user")
	}
}

func TestGoogleAuthCreatesWhenAbsent(t *testing.T) {
	var stored models.User
	store := &fakeStore{
		createFn: func(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
			stored = doc.(models.User)
			return primitive.NewObjectID(), nil
		},
	}

	w := performRequest(t, authRouter(store), http.MethodPost, "/api/auth/google", map[string]any{
		"id":      "google-123",
		"name":    "Rahul",
		"email":   "rahul@example.com",
		"picture": "https://example.com/p.png",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if stored.GoogleID != "google-123" || stored.Email != "rahul@example.com" {
		t.Errorf("created user = %+v", stored)
	}
}

func TestGoogleAuthDoesNotRefreshProfile(t *testing.T) {
	created := false
	store := &fakeStore{
		findOneFn: func(ctx context.Context, collection string, filter any, out any) error {
			*out.(*models.User) = models.User{
				ID:      primitive.NewObjectID(),
				Name:    "Old Name",
				Email:   "rahul@example.com",
				Picture: "https://example.com/old.png",
			}
			return nil
		},
		createFn: func(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
			created = true
			return primitive.NewObjectID(), nil
		},
	}

	// repeat sign-in with a changed picture
	w := performRequest(t, authRouter(store), http.MethodPost, "/api/auth/google", map[string]any{
		"id":      "google-123",
		"name":    "New Name",
		"email":   "rahul@example.com",
		"picture": "https://example.com/new.png",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if created {
		t.Error("repeat sign-in must not create a record")
	}

	user := decodeBody(t, w)["user"].(map[string]any)
	if user["picture"] != "https://example.com/old.png" {
		t.Errorf("picture = %v, want the stored value (no refresh on repeat sign-in)", user["picture"])
	}
	if user["name"] != "Old Name" {
		t.Errorf("name = %v, want the stored value", user["name"])
	}
}

func TestLoginBadCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatal(err)
	}

	store := &fakeStore{
		findOneFn: func(ctx context.Context, collection string, filter any, out any) error {
			*out.(*models.User) = models.User{
				ID:       primitive.NewObjectID(),
				Email:    "rahul@example.com",
				Password: string(hash),
			}
			return nil
		},
	}
	r := authRouter(store)

	w := performRequest(t, r, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "rahul@example.com",
		"password": "wrong",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("wrong password: status = %d, want 400", w.Code)
	}

	// unknown email takes the same path
	w = performRequest(t, authRouter(&fakeStore{}), http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "nobody@example.com",
		"password": "whatever",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown email: status = %d, want 400", w.Code)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatal(err)
	}

	store := &fakeStore{
		findOneFn: func(ctx context.Context, collection string, filter any, out any) error {
			*out.(*models.User) = models.User{
				ID:       primitive.NewObjectID(),
				Email:    "rahul@example.com",
				Password: string(hash),
				Role:     "admin",
			}
			return nil
		},
	}

	w := performRequest(t, authRouter(store), http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "rahul@example.com",
		"password": "secret",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if tok, _ := body["token"].(string); tok == "" {
		t.Error("login response missing token")
	}
}

func TestForgotPasswordStoresToken(t *testing.T) {
	userID := primitive.NewObjectID()
	updated := false
	store := &fakeStore{
		findOneFn: func(ctx context.Context, collection string, filter any, out any) error {
			*out.(*models.User) = models.User{ID: userID, Email: "rahul@example.com"}
			return nil
		},
		updateOneFn: func(ctx context.Context, collection string, filter any, update any) error {
			updated = true
			return nil
		},
	}

	w := performRequest(t, authRouter(store), http.MethodPost, "/api/auth/forgot-password", map[string]any{
		"email": "rahul@example.com",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if !updated {
		t.Error("forgot-password must persist the reset token")
	}
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	w := performRequest(t, authRouter(&fakeStore{}), http.MethodPost, "/api/auth/forgot-password", map[string]any{
		"email": "nobody@example.com",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
