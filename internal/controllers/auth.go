package controllers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/adamanr/hrdesk/internal/config"
	"github.com/adamanr/hrdesk/internal/entity"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const accessTokenPrefix = "access_token:"

type AuthController struct {
	deps *Dependens
}

func NewAuthController(deps *Dependens) *AuthController {
	return &AuthController{
		deps: deps,
	}
}

func (c *AuthController) tokenTTL() time.Duration {
	if c.deps.Config.Redis.AccessTokenTTL > 0 {
		return c.deps.Config.Redis.AccessTokenTTL
	}

	return config.DefaultTokenTTL
}

// Login checks the credentials and issues an access token registered in Redis.
func (c *AuthController) Login(ctx context.Context, req *entity.LoginRequest) (*entity.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrCredentialsRequired
	}

	var (
		id                               uint64
		firstName, lastName, email, hash string
		role, active                     string
	)

	if err := c.deps.DB.QueryRow(ctx,
		"SELECT employee_id, first_name, last_name, email, password_hash, role, active FROM employees WHERE email = $1",
		req.Email,
	).Scan(&id, &firstName, &lastName, &email, &hash, &role, &active); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.deps.Logger.Warn("User with this email not found", slog.String("email", req.Email))
			return nil, ErrInvalidCredentials
		}

		c.deps.Logger.Error("Error querying employee", slog.String("error", err.Error()))
		return nil, err
	}

	if hash == "" || bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		c.deps.Logger.Warn("Invalid password", slog.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	if active == entity.ActiveNo {
		c.deps.Logger.Warn("Login to deactivated account", slog.String("email", req.Email))
		return nil, ErrAccountDeactivated
	}

	name := firstName + " " + lastName
	claims := entity.Claims{
		ID:    id,
		Email: email,
		Role:  role,
		Name:  name,
	}

	accessToken, err := c.createToken(claims)
	if err != nil {
		return nil, err
	}

	if err = c.deps.Redis.Set(ctx, accessTokenPrefix+accessToken, "valid", c.tokenTTL()).Err(); err != nil {
		c.deps.Logger.Error("Error setting access token", slog.String("error", err.Error()))
		return nil, err
	}

	return &entity.LoginResponse{
		AccessToken: accessToken,
		EmployeeID:  id,
		Role:        role,
		Name:        name,
	}, nil
}

func (c *AuthController) createToken(claims entity.Claims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   strconv.FormatUint(claims.ID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.tokenTTL())),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString([]byte(c.deps.Config.Server.JWTSecret))
	if err != nil {
		c.deps.Logger.Error("Error signing token", slog.String("error", err.Error()))
		return "", err
	}

	return tokenStr, nil
}

func bearerToken(authHeader string) (string, bool) {
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenStr == authHeader || tokenStr == "" {
		return "", false
	}

	return tokenStr, true
}

// CheckUserToken validates a "Bearer <jwt>" header against the signature and the Redis allow-list.
func (c *AuthController) CheckUserToken(ctx context.Context, authHeader string) (*entity.Claims, error) {
	tokenStr, ok := bearerToken(authHeader)
	if !ok {
		c.deps.Logger.Warn("Invalid bearer token")
		return nil, ErrInvalidToken
	}

	if err := c.deps.Redis.Get(ctx, accessTokenPrefix+tokenStr).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			c.deps.Logger.Warn("Token revoked")
			return nil, ErrTokenRevoked
		}

		c.deps.Logger.Error("Error reading token from Redis", slog.String("error", err.Error()))
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenStr, &entity.Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(c.deps.Config.Server.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		c.deps.Logger.Warn("Error parsing token", slog.String("error", err.Error()))
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*entity.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// Logout removes the token from the allow-list.
func (c *AuthController) Logout(ctx context.Context, authHeader string) error {
	tokenStr, ok := bearerToken(authHeader)
	if !ok {
		return ErrInvalidToken
	}

	if err := c.deps.Redis.Del(ctx, accessTokenPrefix+tokenStr).Err(); err != nil {
		c.deps.Logger.Error("Error deleting access token from Redis", slog.String("error", err.Error()))
		return err
	}

	return nil
}

func (c *AuthController) Profile(ctx context.Context, id uint64) (*entity.Profile, error) {
	var profile entity.Profile

	if err := c.deps.DB.QueryRow(ctx,
		"SELECT employee_id, first_name, last_name, email, job_name, fk_department, role FROM employees WHERE employee_id = $1",
		id,
	).Scan(&profile.ID, &profile.FirstName, &profile.LastName, &profile.Email, &profile.JobName, &profile.DepartmentID, &profile.Role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEmployeeNotFound
		}

		c.deps.Logger.Error("Error querying profile", slog.String("error", err.Error()))
		return nil, err
	}

	return &profile, nil
}

func (c *AuthController) SetPassword(ctx context.Context, id uint64, password string) error {
	if password == "" {
		return ErrPasswordRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.deps.Logger.Error("Error hashing password", slog.String("error", err.Error()))
		return err
	}

	tag, err := c.deps.DB.Exec(ctx, "UPDATE employees SET password_hash = $1 WHERE employee_id = $2", string(hash), id)
	if err != nil {
		c.deps.Logger.Error("Error updating password", slog.String("error", err.Error()))
		return fmt.Errorf("set password: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}

	c.deps.Logger.Info("Password updated", slog.Uint64("employee_id", id))
	return nil
}
