package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/zenithapp/zenith-server/internal/models"
	"github.com/zenithapp/zenith-server/internal/prayer"
	"github.com/zenithapp/zenith-server/internal/repository"
	"github.com/zenithapp/zenith-server/pkg/email"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService encapsulates the business logic for user operations.
type UserService struct {
	repo     *repository.UserRepository
	geocoder *prayer.Geocoder
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo *repository.UserRepository, geocoder *prayer.Geocoder) *UserService {
	return &UserService{
		repo:     repo,
		geocoder: geocoder,
	}
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// RegisterUser registers a new user after hashing their password.
func (s *UserService) RegisterUser(ctx context.Context, user *models.User) (*models.User, error) {
	logrus.Info("Registering new user")

	if user.Email == "" || user.Username == "" || user.HashedPassword == "" {
		logrus.Warn("Missing required fields during registration")
		return nil, fmt.Errorf("missing required user fields")
	}

	if !emailRegex.MatchString(user.Email) {
		logrus.WithField("email", user.Email).Warn("Invalid email format during registration")
		return nil, fmt.Errorf("invalid email format")
	}

	existingUser, _ := s.repo.GetUserByEmail(ctx, user.Email)
	if existingUser != nil {
		logrus.WithField("email", user.Email).Warn("Email already in use")
		return nil, fmt.Errorf("email already in use")
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(user.HashedPassword), bcrypt.DefaultCost)
	if err != nil {
		logrus.WithError(err).Error("Password hashing failed")
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	user.HashedPassword = string(hashedPwd)
	if user.Role == "" {
		user.Role = "user"
	}
	if user.Gender == "" {
		user.Gender = "male"
	}
	if user.Preferences.ActiveHabits == nil {
		user.Preferences.ActiveHabits = map[string]bool{}
	}

	user.VerifyToken = uuid.NewString()
	user.IsVerified = false

	createdUser, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		logrus.WithError(err).Error("User registration failed")
		return nil, fmt.Errorf("failed to register user: %v", err)
	}

	verificationLink := fmt.Sprintf("http://localhost:8080/users/verify?token=%s", createdUser.VerifyToken)
	body := fmt.Sprintf("Assalamu'alaikum!\n\nSelamat datang di Zenith. Verifikasi email kamu lewat tautan berikut:\n%s", verificationLink)
	if err := email.SendEmail(user.Email, "Verifikasi Email Zenith", body); err != nil {
		// Verification mail failure should not lose the account.
		logrus.WithError(err).Warn("Failed to send verification email")
	}

	logrus.WithField("userID", createdUser.ID.Hex()).Info("User registered successfully")
	return createdUser, nil
}

// VerifyEmail confirms the account behind a verification token.
func (s *UserService) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.repo.GetUserByVerificationToken(ctx, token)
	if err != nil {
		return fmt.Errorf("invalid or expired verification token")
	}

	update := map[string]interface{}{
		"is_verified":  true,
		"verify_token": "",
		"updated_at":   time.Now(),
	}

	if _, err := s.repo.UpdateUser(ctx, user.ID, update); err != nil {
		return fmt.Errorf("failed to update user verification status: %v", err)
	}
	return nil
}

// AuthenticateUser verifies the email and password and returns the user
// if credentials are valid.
func (s *UserService) AuthenticateUser(ctx context.Context, userEmail, password string) (*models.User, error) {
	logrus.WithField("email", userEmail).Info("Authenticating user")

	user, err := s.repo.GetUserByEmail(ctx, userEmail)
	if err != nil {
		logrus.WithField("email", userEmail).Warn("User not found")
		return nil, fmt.Errorf("user not found")
	}

	if !user.IsVerified {
		logrus.WithField("email", userEmail).Warn("Attempt to login with unverified email")
		return nil, fmt.Errorf("email not verified. Please check your inbox")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		logrus.WithField("email", userEmail).Warn("Invalid credentials")
		return nil, fmt.Errorf("invalid credentials")
	}

	logrus.WithField("userID", user.ID.Hex()).Info("User authenticated successfully")
	return user, nil
}

// GetUser retrieves a user by their ID.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		logrus.WithError(err).Warn("Invalid user ID")
		return nil, fmt.Errorf("invalid user ID: %v", err)
	}

	user, err := s.repo.GetUserByID(ctx, objID)
	if err != nil {
		logrus.WithError(err).Warn("Failed to retrieve user")
		return nil, fmt.Errorf("failed to get user: %v", err)
	}
	return user, nil
}

// UpdateProfile updates display fields of a user.
func (s *UserService) UpdateProfile(ctx context.Context, id string, displayName, username, gender, photoURL string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %v", err)
	}

	if gender != "" && gender != "male" && gender != "female" {
		return nil, fmt.Errorf("invalid gender value")
	}

	update := map[string]interface{}{"updated_at": time.Now()}
	if displayName != "" {
		update["display_name"] = displayName
	}
	if username != "" {
		update["username"] = username
	}
	if gender != "" {
		update["gender"] = gender
	}
	if photoURL != "" {
		update["photo_url"] = photoURL
	}

	user, err := s.repo.UpdateUser(ctx, objID, update)
	if err != nil {
		logrus.WithError(err).Error("Failed to update user profile")
		return nil, fmt.Errorf("failed to update user: %v", err)
	}

	logrus.WithField("userID", user.ID.Hex()).Info("User profile updated")
	return user, nil
}

// PreferencesUpdate is the accepted shape for preference changes. Nil
// fields are left untouched.
type PreferencesUpdate struct {
	IsMenstruating *bool           `json:"isMenstruating,omitempty"`
	ActiveHabits   map[string]bool `json:"activeHabits,omitempty"`
	HijriOffset    *int            `json:"hijriOffset,omitempty"`
	Onboarded      *bool           `json:"onboarded,omitempty"`
}

// UpdatePreferences applies worship preference changes. The per-user
// Hijri offset obeys the same +/-3 bound as the global knob.
func (s *UserService) UpdatePreferences(ctx context.Context, id string, prefs PreferencesUpdate) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %v", err)
	}

	update := map[string]interface{}{"updated_at": time.Now()}
	if prefs.IsMenstruating != nil {
		update["preferences.is_menstruating"] = *prefs.IsMenstruating
	}
	if prefs.ActiveHabits != nil {
		update["preferences.active_habits"] = prefs.ActiveHabits
	}
	if prefs.HijriOffset != nil {
		if *prefs.HijriOffset < -models.MaxHijriOffset || *prefs.HijriOffset > models.MaxHijriOffset {
			return nil, fmt.Errorf("hijri offset must be between -%d and %d", models.MaxHijriOffset, models.MaxHijriOffset)
		}
		update["hijri_offset"] = *prefs.HijriOffset
	}
	if prefs.Onboarded != nil {
		update["onboarded"] = *prefs.Onboarded
	}

	user, err := s.repo.UpdateUser(ctx, objID, update)
	if err != nil {
		logrus.WithError(err).Error("Failed to update preferences")
		return nil, fmt.Errorf("failed to update preferences: %v", err)
	}

	logrus.WithField("userID", user.ID.Hex()).Info("Preferences updated")
	return user, nil
}

// UpdateLocation stores a coordinate and resolves its display label via
// reverse geocoding. Geocoding failure degrades to a generic label.
func (s *UserService) UpdateLocation(ctx context.Context, id string, lat, lng float64) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID: %v", err)
	}

	city := s.geocoder.ReverseGeocode(ctx, prayer.Location{Lat: lat, Lng: lng})

	update := map[string]interface{}{
		"location":   models.GeoPoint{Lat: lat, Lng: lng, City: city},
		"updated_at": time.Now(),
	}

	user, err := s.repo.UpdateUser(ctx, objID, update)
	if err != nil {
		logrus.WithError(err).Error("Failed to update location")
		return nil, fmt.Errorf("failed to update location: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"userID": user.ID.Hex(),
		"city":   city,
	}).Info("Location updated")
	return user, nil
}

// UpdateLastActive stamps activity; errors are swallowed by the caller.
func (s *UserService) UpdateLastActive(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.UpdateLastActive(ctx, id)
}

// GetAllUsers lists every account (admin).
func (s *UserService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.repo.GetAllUsers(ctx)
}
