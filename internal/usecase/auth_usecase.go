package usecase

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// パスワードが違う
var ErrInvalidCredentials = errors.New("invalid credentials")

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(role string, now time.Time) (token string, expiresAt time.Time, err error)
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

type BcryptPasswordVerifier struct{}

func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

type AdminLoginInput struct {
	Password string
}

// handlerがJSONにして返す
type AdminTokenOutput struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// AdminLoginUsecase は管理画面のパスワードを照合してトークンを発行する
type AdminLoginUsecase struct {
	passwordHash string
	verifier     PasswordVerifier
	issuer       AccessTokenIssuer
	clock        Clock
}

func NewAdminLoginUsecase(
	passwordHash string,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	clock Clock,
) *AdminLoginUsecase {
	return &AdminLoginUsecase{
		passwordHash: passwordHash,
		verifier:     verifier,
		issuer:       issuer,
		clock:        clock,
	}
}

func (u *AdminLoginUsecase) Execute(ctx context.Context, in AdminLoginInput) (AdminTokenOutput, error) {
	//パスワード照合
	if in.Password == "" || !u.verifier.Verify(in.Password, u.passwordHash) {
		return AdminTokenOutput{}, ErrInvalidCredentials
	}

	//AccessToken発行
	now := u.clock.Now()
	token, expiresAt, err := u.issuer.Issue("ADMIN", now)
	if err != nil {
		return AdminTokenOutput{}, err
	}

	return AdminTokenOutput{
		AccessToken: token,
		ExpiresIn:   int(expiresAt.Sub(now).Seconds()),
	}, nil
}
