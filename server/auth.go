package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-jose/go-jose/v3/jwt"
	"golang.org/x/crypto/bcrypt"

	"github.com/solidground/facade/internal/ezhttp"
	"github.com/solidground/facade/internal/httperr"
)

type claimsKey struct{}

// GetClaims returns the verified token claims Authenticate stored on the
// request context.
func GetClaims(ctx context.Context) jwt.Claims {
	claims, _ := ctx.Value(claimsKey{}).(jwt.Claims)
	return claims
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks the submitted credentials against the stored admin records and
// answers with a fresh bearer token. Unknown username and wrong password
// produce the same response, nothing leaks about which one failed.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var rq loginRequest
	if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
		s.error(w, r, httperr.BadRequest(ErrInvalidJSON))
		return
	}

	for _, admin := range s.documents.Admins() {
		if admin.Username != rq.Username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(rq.Password)) != nil {
			break
		}
		token, err := s.NewToken(admin.ID, admin.Username)
		if err != nil {
			s.error(w, r, err)
			return
		}
		s.ok(w, r, LoginResponse{
			Token:   token,
			Message: "Login successful",
		})
		return
	}

	s.error(w, r, httperr.Unauthorized(ErrInvalidCredentials))
}

func (s *Server) NewToken(adminID string, username string) (string, error) {
	now := time.Now()
	claims := jwt.Claims{
		Subject:  adminID,
		Issuer:   Name,
		IssuedAt: jwt.NewNumericDate(now),
		Expiry:   jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
	}
	return jwt.Signed(s.signer).Claims(claims).Claims(map[string]any{
		"username": username,
	}).CompactSerialize()
}

// Authenticate guards mutating routes: it requires a valid, unexpired bearer
// token and rejects everything else with a 401.
func (s *Server) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := TokenFromHeader(r)
		if tokenString == "" {
			s.error(w, r, httperr.Unauthorized(ErrNoToken))
			return
		}

		token, err := jwt.ParseSigned(tokenString)
		if err != nil {
			s.error(w, r, httperr.Unauthorized(ErrInvalidToken))
			return
		}

		var claims jwt.Claims
		if err = token.Claims([]byte(s.cfg.JWTSecret), &claims); err != nil {
			s.error(w, r, httperr.Unauthorized(ErrInvalidToken))
			return
		}
		if err = claims.Validate(jwt.Expected{Time: time.Now()}); err != nil {
			s.error(w, r, httperr.Unauthorized(ErrInvalidToken))
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
	})
}

func TokenFromHeader(r *http.Request) string {
	auth := r.Header.Get(ezhttp.HeaderAuthorization)
	if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return auth[7:]
	}
	return ""
}
