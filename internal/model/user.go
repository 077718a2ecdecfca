package model

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User - игрок. Партии привязываются к ID, Password хранит bcrypt-хеш
type User struct {
	ID       int
	Name     string
	Login    string
	Password string
}

// UserClaims - claims access-токена, subject = ID игрока
type UserClaims struct {
	jwt.RegisteredClaims
}

// NewUserClaims собирает claims игрока на интервал [issuedAt, expiresAt)
func NewUserClaims(userID int, issuer string, issuedAt, expiresAt time.Time) UserClaims {
	return UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
}

// UserID - владелец партий из subject
func (c *UserClaims) UserID() (int, error) {
	id, err := strconv.Atoi(c.Subject)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid token subject %q", c.Subject)
	}
	return id, nil
}
