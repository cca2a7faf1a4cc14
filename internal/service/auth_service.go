//go:generate mockery --name AuthService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go_5_quiz_keep/internal/config"
	"go_5_quiz_keep/internal/middleware"
	"go_5_quiz_keep/internal/model"
	"go_5_quiz_keep/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	// RequestMagicLink はプロフィールを取得(なければ作成)し、ログインリンクをメールで送信します
	RequestMagicLink(ctx context.Context, email string) error
	// VerifyMagicLink はリンクのトークンを検証し、アクセストークンを発行します。トークンは一度しか使えません
	VerifyMagicLink(ctx context.Context, token string) (*model.LoginResponse, error)
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

type authService struct {
	db        *gorm.DB
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	mailer    Mailer
	cfg       *config.Config
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, tokenRepo repository.TokenRepository, mailer Mailer, cfg *config.Config) AuthService {
	return &authService{
		db:        db,
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		mailer:    mailer,
		cfg:       cfg,
	}
}

var (
	errInvalidMagicLink = model.NewAppError("INVALID_TOKEN", "このリンクは無効か、既に使用されています", "token", model.ErrInvalidInput)
	errMagicLinkExpired = model.NewAppError("TOKEN_EXPIRED", "このリンクの有効期限が切れています", "token", model.ErrInvalidInput)
)

func (s *authService) RequestMagicLink(ctx context.Context, email string) error {
	logger := middleware.GetLogger(ctx)
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.findOrCreateUser(ctx, email)
	if err != nil {
		return err
	}

	token, err := s.generateAndSaveToken(ctx, user.ID)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/auth/callback?token=%s", strings.TrimRight(s.cfg.App.FrontendURL, "/"), url.QueryEscape(token))
	subject := fmt.Sprintf("【%s】ログインリンク", s.cfg.App.Name)
	body := fmt.Sprintf("以下のリンクからログインしてください:\n%s\n\nこのリンクの有効期限は%d分です。", link, int(s.cfg.MagicLink.TTL.Minutes()))

	if err := s.mailer.Send(ctx, email, subject, body); err != nil {
		logger.Error("Failed to send magic link email", "error", err, "user_id", user.ID)
		return model.NewAppError("EMAIL_SEND_FAILED", "メールの送信に失敗しました", "", fmt.Errorf("%w: %v", model.ErrInternalServer, err))
	}

	logger.Info("Magic link sent", "user_id", user.ID)
	return nil
}

func (s *authService) findOrCreateUser(ctx context.Context, email string) (*model.UserProfile, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.userRepo.FindByEmail(ctx, s.db, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバーエラーが発生しました", "", err)
	}

	user = &model.UserProfile{ID: uuid.New(), Email: email}
	if err := s.userRepo.Create(ctx, s.db, user); err != nil {
		// 同じメールアドレスで同時にリクエストされた場合は作成済みのものを使う
		if errors.Is(err, model.ErrConflict) {
			logger.Warn("User profile created concurrently, refetching")
			existing, findErr := s.userRepo.FindByEmail(ctx, s.db, email)
			if findErr == nil {
				return existing, nil
			}
			err = findErr
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバーエラーが発生しました", "", err)
	}
	logger.Info("User profile created", "user_id", user.ID)
	return user, nil
}

// generateAndSaveToken は "<トークンID>.<verifier>" を返します。DBには verifier のハッシュのみ保存
func (s *authService) generateAndSaveToken(ctx context.Context, userID uuid.UUID) (string, error) {
	logger := middleware.GetLogger(ctx)

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		logger.Error("Failed to generate random bytes for token", "error", err)
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました", "", err)
	}
	verifier := hex.EncodeToString(secret)

	hash, err := bcrypt.GenerateFromPassword([]byte(verifier), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Failed to hash token verifier", "error", err)
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました", "", err)
	}

	token := &model.MagicLinkToken{
		ID:         uuid.New(),
		UserID:     userID,
		SecretHash: string(hash),
		ExpiresAt:  time.Now().Add(s.cfg.MagicLink.TTL),
	}
	if err := s.tokenRepo.Create(ctx, s.db, token); err != nil {
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの保存に失敗しました", "", err)
	}
	return token.ID.String() + "." + verifier, nil
}

func (s *authService) VerifyMagicLink(ctx context.Context, tokenString string) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx)

	selector, verifier, ok := strings.Cut(tokenString, ".")
	if !ok || verifier == "" {
		logger.Warn("Malformed magic link token")
		return nil, errInvalidMagicLink
	}
	tokenID, err := uuid.Parse(selector)
	if err != nil {
		logger.Warn("Malformed magic link token ID")
		return nil, errInvalidMagicLink
	}

	var (
		userID  uuid.UUID
		expired bool
	)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		token, err := s.tokenRepo.FindByID(ctx, tx, tokenID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("Magic link token not found", "token_id", tokenID)
				return errInvalidMagicLink
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバーエラーが発生しました", "", err)
		}

		if time.Now().After(token.ExpiresAt) {
			logger.Warn("Magic link token expired", "token_id", tokenID, "expires_at", token.ExpiresAt)
			expired = true
			return errMagicLinkExpired
		}

		if err := bcrypt.CompareHashAndPassword([]byte(token.SecretHash), []byte(verifier)); err != nil {
			logger.Warn("Magic link verifier mismatch", "token_id", tokenID)
			return errInvalidMagicLink
		}

		if err := s.tokenRepo.Delete(ctx, tx, tokenID); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバーエラーが発生しました", "", err)
		}
		userID = token.UserID
		return nil
	})
	if err != nil {
		// エラーを返すとトランザクションはロールバックされるため、期限切れトークンの削除は外で行う
		if expired {
			if delErr := s.tokenRepo.Delete(ctx, s.db, tokenID); delErr != nil {
				logger.Warn("Failed to delete expired magic link token", "error", delErr, "token_id", tokenID)
			}
		}
		return nil, err
	}

	accessToken, err := s.issueAccessToken(userID)
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", userID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの生成に失敗しました", "", err)
	}

	logger.Info("Login successful", "user_id", userID)
	return &model.LoginResponse{AccessToken: accessToken}, nil
}

func (s *authService) issueAccessToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    s.cfg.App.Name,
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWT.AccessTokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWT.SecretKey))
}

// IsAdmin はプロフィールがないユーザーを管理者ではないとみなします
func (s *authService) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return false, nil
		}
		return false, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバーエラーが発生しました", "", err)
	}
	return user.IsAdmin, nil
}
