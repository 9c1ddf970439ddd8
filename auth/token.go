package auth

import (
	"fmt"
	"time"

	"kazrockets/config"
	"kazrockets/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type Claims struct {
	UserId    uuid.UUID
	Role      repository.Role
	TokenType string
	Exp       int64
}

func (claims *Claims) FromJWTClaims(jwtClaims jwt.Claims) error {
	mapClaims, ok := jwtClaims.(jwt.MapClaims)
	if !ok {
		return fmt.Errorf("unexpected claims format")
	}
	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return fmt.Errorf("token has no subject")
	}
	userId, err := uuid.Parse(sub)
	if err != nil {
		return fmt.Errorf("token subject is not a user id")
	}
	claims.UserId = userId
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = repository.Role(role)
	}
	if tokenType, ok := mapClaims["token_type"].(string); ok {
		claims.TokenType = tokenType
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.Exp = int64(exp)
	}
	return nil
}

func (claims *Claims) Valid() error {
	if time.Now().Unix() > claims.Exp {
		return jwt.ErrTokenExpired
	}
	return nil
}

// CreateTokenPair issues a short-lived access token carrying the user's
// role and a longer-lived refresh token carrying only the subject.
func CreateTokenPair(user *repository.User) (*TokenPair, error) {
	cfg := config.Env()
	accessToken, err := signToken(jwt.MapClaims{
		"sub":        user.Id.String(),
		"role":       string(user.Role),
		"token_type": TokenTypeAccess,
		"exp":        time.Now().Add(time.Duration(cfg.AccessTokenExpiryMinutes) * time.Minute).Unix(),
	})
	if err != nil {
		return nil, err
	}
	refreshToken, err := signToken(jwt.MapClaims{
		"sub":        user.Id.String(),
		"token_type": TokenTypeRefresh,
		"exp":        time.Now().Add(time.Duration(cfg.RefreshTokenExpiryDays) * 24 * time.Hour).Unix(),
	})
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

func signToken(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Env().JWTSecret))
}

// ParseToken verifies the signature and expiry of tokenString and checks
// that it is of the expected type (access or refresh).
func ParseToken(tokenString string, tokenType string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(config.Env().JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	claims := &Claims{}
	if err := claims.FromJWTClaims(token.Claims); err != nil {
		return nil, err
	}
	if err := claims.Valid(); err != nil {
		return nil, err
	}
	if claims.TokenType != tokenType {
		return nil, fmt.Errorf("expected %s token, got %s", tokenType, claims.TokenType)
	}
	return claims, nil
}
