package services

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bidserver/database"
	apperrors "bidserver/server/errors"
)

// AuthService выдает и проверяет токены доступа.
// К нормализации фида отношения не имеет: тендеры доступны и без токена,
// токен нужен только для персональных операций (сохраненные тендеры).
type AuthService struct {
	db          *database.DB
	jwtSecret   []byte
	tokenExpiry time.Duration
}

// NewAuthService создает сервис аутентификации
func NewAuthService(db *database.DB, jwtSecret string, tokenExpiry time.Duration) *AuthService {
	return &AuthService{
		db:          db,
		jwtSecret:   []byte(jwtSecret),
		tokenExpiry: tokenExpiry,
	}
}

// Register создает пользователя. Пароль хранится как sha256 с индивидуальной солью.
func (s *AuthService) Register(username, password string) (int64, error) {
	if username == "" || password == "" {
		return 0, apperrors.NewValidationError("имя пользователя и пароль обязательны", nil)
	}

	saltBytes := make([]byte, 16)
	if _, err := rand.Read(saltBytes); err != nil {
		return 0, apperrors.NewInternalError("генерация соли", err)
	}
	salt := hex.EncodeToString(saltBytes)

	id, err := s.db.CreateUser(username, hashPassword(password, salt), salt)
	if err != nil {
		if errors.Is(err, database.ErrUserExists) {
			return 0, apperrors.NewConflictError("пользователь уже существует", err)
		}
		return 0, apperrors.NewInternalError("создание пользователя", err)
	}
	return id, nil
}

// Login проверяет учетные данные и выдает JWT
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.db.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return "", apperrors.NewUnauthorizedError("неверное имя пользователя или пароль", err)
		}
		return "", apperrors.NewInternalError("поиск пользователя", err)
	}

	expected := hashPassword(password, user.Salt)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(user.PasswordHash)) != 1 {
		return "", apperrors.NewUnauthorizedError("неверное имя пользователя или пароль", nil)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": user.Username,
		"uid": user.ID,
		"iat": now.Unix(),
		"exp": now.Add(s.tokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", apperrors.NewInternalError("подпись токена", err)
	}
	return signed, nil
}

// ValidateToken разбирает и проверяет JWT, возвращая идентификатор и имя пользователя
func (s *AuthService) ValidateToken(tokenString string) (int64, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", apperrors.NewUnauthorizedError("недействительный токен", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", apperrors.NewUnauthorizedError("недействительный токен", nil)
	}

	uid, ok := claims["uid"].(float64)
	if !ok {
		return 0, "", apperrors.NewUnauthorizedError("недействительный токен", nil)
	}
	username, _ := claims["sub"].(string)

	return int64(uid), username, nil
}

func hashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}
