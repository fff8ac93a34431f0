package services

import (
	"fmt"
	"log"
	"time"

	"pasar/internal/models"
	"pasar/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and token validation for the three
// marketplace actor types. Tokens carry an actor_id and a role claim; route
// groups check the role in middleware.
type AuthService struct {
	userRepo   repositories.UserRepository
	vendorRepo repositories.VendorRepository
	riderRepo  repositories.RiderRepository
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, vendorRepo repositories.VendorRepository, riderRepo repositories.RiderRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		vendorRepo: vendorRepo,
		riderRepo:  riderRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
	}
}

// RegisterUser registers a new customer, hashes their password, and saves
// them to the database.
func (s *AuthService) RegisterUser(user *models.User) error {
	if existingUser, err := s.userRepo.GetByUsername(user.Username); err == nil && existingUser != nil {
		return fmt.Errorf("username '%s' already taken", user.Username)
	}
	if existingUser, err := s.userRepo.GetByEmail(user.Email); err == nil && existingUser != nil {
		return fmt.Errorf("email '%s' already registered", user.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashedPassword) // Store the hashed password

	if err := s.userRepo.Create(user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// RegisterVendor registers a new vendor account.
func (s *AuthService) RegisterVendor(vendor *models.Vendor) error {
	if existing, err := s.vendorRepo.GetByName(vendor.Name); err == nil && existing != nil {
		return fmt.Errorf("vendor name '%s' already taken", vendor.Name)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(vendor.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	vendor.Password = string(hashedPassword)

	if err := s.vendorRepo.Create(vendor); err != nil {
		return fmt.Errorf("failed to register vendor: %w", err)
	}
	return nil
}

// RegisterRider registers a new rider account.
func (s *AuthService) RegisterRider(rider *models.Rider) error {
	if existing, err := s.riderRepo.GetByName(rider.Name); err == nil && existing != nil {
		return fmt.Errorf("rider name '%s' already taken", rider.Name)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(rider.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	rider.Password = string(hashedPassword)

	if err := s.riderRepo.Create(rider); err != nil {
		return fmt.Errorf("failed to register rider: %w", err)
	}
	return nil
}

// LoginUser authenticates a customer and returns a JWT token if successful.
func (s *AuthService) LoginUser(username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		// Do not reveal whether the username exists
		return "", fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}
	return s.issueToken(user.ID, user.Username, models.RoleCustomer)
}

// LoginVendor authenticates a vendor and returns a JWT token if successful.
func (s *AuthService) LoginVendor(name, password string) (string, error) {
	vendor, err := s.vendorRepo.GetByName(name)
	if err != nil {
		return "", fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(vendor.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}
	return s.issueToken(vendor.ID, vendor.Name, models.RoleVendor)
}

// LoginRider authenticates a rider and returns a JWT token if successful.
func (s *AuthService) LoginRider(name, password string) (string, error) {
	rider, err := s.riderRepo.GetByName(name)
	if err != nil {
		return "", fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rider.Password), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}
	return s.issueToken(rider.ID, rider.Name, models.RoleRider)
}

// IssueAdminToken mints an admin token. Admin credentials are checked by the
// caller (config-driven); this only signs the claims.
func (s *AuthService) IssueAdminToken(name string) (string, error) {
	return s.issueToken("admin", name, models.RoleAdmin)
}

func (s *AuthService) issueToken(actorID, name, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"actor_id": actorID,
		"name":     name,
		"role":     role,
		"exp":      time.Now().Add(s.tokenDurat).Unix(), // Token expiration time
		"iat":      time.Now().Unix(),                   // Issued at time
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
