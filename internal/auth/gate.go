package auth

import (
	"golang.org/x/crypto/bcrypt"

	"project-tracker-api/internal/apperr"
	"project-tracker-api/internal/cache"
	"project-tracker-api/internal/config"
)

// AdminUserID is the id of the built-in principal. It matches the
// seeded admin user.
const AdminUserID uint = 1

// Gate validates credentials and issued tokens. Authorize accepts only
// tokens this gate handed out: a token must carry a valid signature AND
// still be present in the issued-token cache.
type Gate struct {
	jwtCfg     config.JWTConfig
	login      string
	credential []byte // bcrypt hash of the admin password
	issued     *cache.TTLCache[string, uint]
}

// NewGate builds the access gate for the configured admin principal.
func NewGate(jwtCfg config.JWTConfig, admin config.AdminConfig) (*Gate, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Gate{
		jwtCfg:     jwtCfg,
		login:      admin.Login,
		credential: hash,
		issued:     cache.New[string, uint](),
	}, nil
}

// Authenticate checks the credential pair and returns a fresh bearer
// token on success.
func (g *Gate) Authenticate(login, password string) (string, error) {
	if login != g.login {
		return "", apperr.Auth("invalid login or password")
	}
	if err := bcrypt.CompareHashAndPassword(g.credential, []byte(password)); err != nil {
		return "", apperr.Auth("invalid login or password")
	}

	token, err := generateToken(g.jwtCfg, AdminUserID, g.login)
	if err != nil {
		return "", err
	}
	g.issued.Set(token, AdminUserID, g.jwtCfg.TokenTTL)
	return token, nil
}

// Authorize validates a bearer token previously issued by Authenticate.
func (g *Gate) Authorize(token string) (*Claims, error) {
	if token == "" {
		return nil, apperr.Auth("authorization token is required")
	}
	claims, err := validateToken(g.jwtCfg, token)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindAuth, "invalid or expired token", err)
	}
	if !g.issued.Has(token) {
		return nil, apperr.Auth("token was not issued by this server")
	}
	return claims, nil
}
