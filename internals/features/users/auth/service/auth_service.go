package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"churchhub_backend/internals/configs"
	authDto "churchhub_backend/internals/features/users/auth/dto"
	authHelper "churchhub_backend/internals/features/users/auth/helper"
	authRepo "churchhub_backend/internals/features/users/auth/repository"
	userModel "churchhub_backend/internals/features/users/user/model"
	helpers "churchhub_backend/internals/helpers"
)

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountInactive     = errors.New("account deactivated")
	ErrGoogleDisabled      = errors.New("google sign-in is not configured")
	ErrInvalidGoogleToken  = errors.New("invalid google id token")
	ErrGoogleEmailRequired = errors.New("google account has no email")
)

type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      userModel.UserModel
}

// Register creates a plain member (no ministry or role flags) and logs them in.
func Register(ctx context.Context, db *gorm.DB, req authDto.RegisterRequest) (*AuthResult, error) {
	user, err := req.ToModel(false)
	if err != nil {
		return nil, err
	}
	hashed, err := authHelper.HashPassword(req.Senha)
	if err != nil {
		return nil, err
	}
	user.Senha = hashed

	if err := authRepo.CreateUser(db.WithContext(ctx), user); err != nil {
		if helpers.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return issue(user)
}

func Login(ctx context.Context, db *gorm.DB, email, senha string) (*AuthResult, error) {
	user, err := authRepo.FindUserByEmail(db.WithContext(ctx), email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := authHelper.CheckPasswordHash(user.Senha, senha); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountInactive
	}
	return issue(user)
}

// LoginGoogle verifies a Google ID token. Lookup order: google_id, then email
// (linking the account), otherwise a new member is created.
func LoginGoogle(ctx context.Context, db *gorm.DB, idToken string) (*AuthResult, error) {
	if configs.GoogleClientID == "" {
		return nil, ErrGoogleDisabled
	}
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		log.Println("[WARN] google token rejected:", err)
		return nil, ErrInvalidGoogleToken
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, ErrInvalidGoogleToken
	}
	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	if email == "" {
		return nil, ErrGoogleEmailRequired
	}
	return loginWithGoogleIdentity(ctx, db, claimSet.Sub, email, claimSet.Name)
}

func loginWithGoogleIdentity(ctx context.Context, db *gorm.DB, googleID, email, name string) (*AuthResult, error) {
	tx := db.WithContext(ctx)

	user, err := authRepo.FindUserByGoogleID(tx, googleID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if user == nil {
		user, err = authRepo.FindUserByEmail(tx, email)
		switch {
		case err == nil:
			if err := authRepo.LinkGoogleID(tx, user.ID, googleID); err != nil {
				return nil, err
			}
			user.GoogleID = &googleID
		case errors.Is(err, gorm.ErrRecordNotFound):
			// no password login until the member sets one via change-password
			hashed, herr := authHelper.HashPassword(uuid.NewString())
			if herr != nil {
				return nil, herr
			}
			if strings.TrimSpace(name) == "" {
				name = email
			}
			user = &userModel.UserModel{
				Nome:     name,
				Email:    email,
				Senha:    hashed,
				GoogleID: &googleID,
				IsActive: true,
			}
			if err := authRepo.CreateUser(tx, user); err != nil {
				if helpers.IsUniqueViolation(err) {
					return nil, ErrEmailTaken
				}
				return nil, err
			}
		default:
			return nil, err
		}
	}

	if !user.IsActive {
		return nil, ErrAccountInactive
	}
	return issue(user)
}

// Logout blacklists the token until its own expiry.
func Logout(ctx context.Context, db *gorm.DB, token string) error {
	exp, err := TokenExpiry(token)
	if err != nil {
		exp = time.Now().Add(configs.TokenTTL)
	}
	tx := db.WithContext(ctx)
	already, err := authRepo.IsTokenBlacklisted(tx, token)
	if err != nil || already {
		return err
	}
	return authRepo.BlacklistToken(tx, token, exp)
}

func issue(user *userModel.UserModel) (*AuthResult, error) {
	token, exp, err := IssueToken(user, time.Now())
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, ExpiresAt: exp, User: *user}, nil
}
