package services

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"wardrobe-api/internal/apperrors"
	"wardrobe-api/internal/database"
	"wardrobe-api/internal/models"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	CreateUser(username, password, role string) (models.User, error)
	GetUserByUsername(username string) (models.User, error)
	AuthenticateUser(username, password string) (models.User, error)
}

// UserService provides business logic for the credential store.
type UserService struct {
	db         *sql.DB
	bcryptCost int
}

// NewUserService creates a new UserService hashing passwords at the given
// bcrypt cost.
func NewUserService(db *sql.DB, bcryptCost int) *UserService {
	return &UserService{db: db, bcryptCost: bcryptCost}
}

// CreateUser hashes the password and inserts a new user. The role defaults to
// "user" when empty. A duplicate username surfaces as a conflict error from
// the store's unique constraint.
func (s *UserService) CreateUser(username, password, role string) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: username and password are required", apperrors.ErrValidation)
	}
	switch role {
	case "":
		role = models.RoleUser
	case models.RoleUser, models.RoleAdmin:
	default:
		return models.User{}, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New().String(),
		Username: username,
		Password: string(hashed),
		Role:     role,
	}

	stmt, err := s.db.Prepare("INSERT INTO users(id, username, password, role) VALUES(?, ?, ?, ?)")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(user.ID, user.Username, user.Password, user.Role)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return models.User{}, fmt.Errorf("%w: username %q is taken", apperrors.ErrConflict, username)
		}
		return models.User{}, err
	}
	return user, nil
}

// GetUserByUsername retrieves a single user, including the password digest.
func (s *UserService) GetUserByUsername(username string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username, password, role, created_at FROM users WHERE username = ?", username)
	err := row.Scan(&user.ID, &user.Username, &user.Password, &user.Role, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, fmt.Errorf("%w: user %q", apperrors.ErrNotFound, username)
		}
		return models.User{}, err
	}
	return user, nil
}

// AuthenticateUser verifies a user's credentials. Any failure — unknown
// username, wrong password, malformed digest — comes back as an
// authentication error.
func (s *UserService) AuthenticateUser(username, password string) (models.User, error) {
	user, err := s.GetUserByUsername(username)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: user not found", apperrors.ErrAuthentication)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, fmt.Errorf("%w: password mismatch", apperrors.ErrAuthentication)
	}
	return user, nil
}
