package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"golang.org/x/oauth2"
)

const (
	sessionCookie  = "centers_session"
	stateCookie    = "auth_state"
	redirectCookie = "auth_redirect"

	loginPath         = "/auth/login"
	notAuthorizedPath = "/not-authorized"

	// the state/redirect cookie pair only needs to survive one round trip
	// to the identity provider
	stateCookieMaxAge = 300
)

// AuthGate holds the relying-party state of the hosted OIDC login flow.
type AuthGate struct {
	verifier *oidc.IDTokenVerifier
	oauth    oauth2.Config

	// membership in this provider group grants the is-admin flag
	adminGroup string

	// hosted UI domain used to build the provider logout URL
	hostedDomain  string
	postLogoutURI string
}

// NewAuthGate discovers the provider configuration from its issuer URL.
func NewAuthGate(ctx context.Context, issuer, clientID, clientSecret, redirectURL, adminGroup, hostedDomain, postLogoutURI string) (*AuthGate, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, err
	}

	return &AuthGate{
		verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
		oauth: oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     provider.Endpoint(),
			RedirectURL:  redirectURL,
			Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		},
		adminGroup:    adminGroup,
		hostedDomain:  hostedDomain,
		postLogoutURI: postLogoutURI,
	}, nil
}

// SessionClaims is the content of the session cookie minted after a
// successful provider callback.
type SessionClaims struct {
	jwt.StandardClaims
	Email  string   `json:"email"`
	Groups []string `json:"groups"`
	Admin  bool     `json:"admin"`
}

// loginRedirect starts the code flow. The post-login destination travels
// in a short-lived cookie keyed by the opaque state nonce.
func (s *Server) loginRedirect(c *gin.Context) {
	if s.authGate == nil {
		abortWithEncoding(c, http.StatusInternalServerError,
			withDetail(errorConfigMissing, "CENTERS_OIDC_ISSUER is not set"))
		return
	}

	target := c.DefaultQuery("redirect", "/")
	if !strings.HasPrefix(target, "/") {
		target = "/"
	}

	state := uuid.New().String()
	secure := viper.GetBool("server.securecookie")
	c.SetCookie(stateCookie, state, stateCookieMaxAge, "/", "", secure, true)
	c.SetCookie(redirectCookie, target, stateCookieMaxAge, "/", "", secure, true)

	c.Redirect(http.StatusFound, s.authGate.oauth.AuthCodeURL(state))
}

// authCallback finishes the code flow: exchange, ID-token verification,
// session cookie. Any exchange failure returns the user to the sign-in
// entry point instead of rendering an error.
func (s *Server) authCallback(c *gin.Context) {
	if s.authGate == nil || s.jwtPrivateKey == nil {
		abortWithEncoding(c, http.StatusInternalServerError,
			withDetail(errorConfigMissing, "CENTERS_OIDC_ISSUER or CENTERS_JWT_KEYFILE is not set"))
		return
	}

	if errCode := c.Query("error"); errCode != "" {
		log.WithField("error", errCode).Warn("provider returned an authorization error")
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	wantState, err := c.Cookie(stateCookie)
	if err != nil || wantState == "" || c.Query("state") != wantState {
		log.Warn("state mismatch on auth callback")
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	ctx := c.Request.Context()
	token, err := s.authGate.oauth.Exchange(ctx, c.Query("code"))
	if err != nil {
		log.WithError(err).Warn("code exchange failed")
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		log.Warn("token response missing id_token")
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	idToken, err := s.authGate.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		log.WithError(err).Warn("id token verification failed")
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	var claims struct {
		Email  string      `json:"email"`
		Groups interface{} `json:"cognito:groups"`
	}
	if err := idToken.Claims(&claims); err != nil {
		log.WithError(err).Warn("cannot decode id token claims")
		c.Redirect(http.StatusFound, loginPath)
		return
	}

	groups := normalizeGroups(claims.Groups)
	now := time.Now()
	expire := time.Duration(viper.GetInt("jwt.expire")) * time.Hour

	session := SessionClaims{
		StandardClaims: jwt.StandardClaims{
			Subject:   idToken.Subject,
			ExpiresAt: now.Add(expire).Unix(),
			IssuedAt:  now.Unix(),
			Id:        uuid.New().String(),
		},
		Email:  claims.Email,
		Groups: groups,
		Admin:  s.authGate.isAdmin(groups),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, session).SignedString(s.jwtPrivateKey)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	secure := viper.GetBool("server.securecookie")
	c.SetCookie(sessionCookie, signed, int(expire.Seconds()), "/", "", secure, true)
	c.SetCookie(stateCookie, "", -1, "/", "", secure, true)

	target, err := c.Cookie(redirectCookie)
	if err != nil || !strings.HasPrefix(target, "/") {
		target = "/"
	}
	c.SetCookie(redirectCookie, "", -1, "/", "", secure, true)

	c.Redirect(http.StatusFound, target)
}

// logout drops the local session and sends the browser to the provider's
// hosted logout with the registered return URL.
func (s *Server) logout(c *gin.Context) {
	secure := viper.GetBool("server.securecookie")
	c.SetCookie(sessionCookie, "", -1, "/", "", secure, true)

	if s.authGate != nil && s.authGate.hostedDomain != "" {
		c.Redirect(http.StatusFound, fmt.Sprintf("%s/logout?client_id=%s&logout_uri=%s",
			strings.TrimRight(s.authGate.hostedDomain, "/"),
			s.authGate.oauth.ClientID,
			url.QueryEscape(s.authGate.postLogoutURI)))
		return
	}

	c.Redirect(http.StatusFound, loginPath)
}

// authMe exposes the session claims so the UI can re-check the admin flag
// on every route change.
func (s *Server) authMe(c *gin.Context) {
	claims, err := s.sessionFromRequest(c)
	if err != nil {
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidToken, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subject": claims.Subject,
		"email":   claims.Email,
		"groups":  claims.Groups,
		"admin":   claims.Admin,
	})
}

// authMiddleware is a middleware to authorize users from using the
// private APIs. The session travels either as a cookie (browser) or as an
// Authorization bearer token.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := s.sessionFromRequest(c)
		if err != nil {
			if wantsHTML(c) {
				c.Redirect(http.StatusFound, loginPath+"?redirect="+url.QueryEscape(c.Request.URL.RequestURI()))
				c.Abort()
				return
			}
			abortWithEncoding(c, http.StatusUnauthorized, errorInvalidToken, err)
			return
		}

		c.Set("session", claims)
		c.Next()
	}
}

// adminOnlyMiddleware requires the is-admin flag on top of a valid
// session. Browsers land on the not-authorized page, API callers get 403.
func (s *Server) adminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("session").(*SessionClaims)
		if !ok {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
			return
		}

		if !claims.Admin {
			if wantsHTML(c) {
				c.Redirect(http.StatusFound, notAuthorizedPath)
				c.Abort()
				return
			}
			abortWithEncoding(c, http.StatusForbidden, errorNotAdmin)
			return
		}

		c.Next()
	}
}

func (s *Server) sessionFromRequest(c *gin.Context) (*SessionClaims, error) {
	if s.jwtPrivateKey == nil {
		return nil, fmt.Errorf("session key not configured (CENTERS_JWT_KEYFILE)")
	}

	tokenString, err := c.Cookie(sessionCookie)
	if err != nil || tokenString == "" {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return nil, fmt.Errorf("no session")
		}
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return &s.jwtPrivateKey.PublicKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	return claims, nil
}

func (g *AuthGate) isAdmin(groups []string) bool {
	for _, group := range groups {
		if group == g.adminGroup {
			return true
		}
	}
	return false
}

// normalizeGroups tolerates the two shapes the provider uses for the
// groups claim: a JSON array or a comma-separated string.
func normalizeGroups(raw interface{}) []string {
	switch v := raw.(type) {
	case []interface{}:
		groups := make([]string, 0, len(v))
		for _, g := range v {
			if s, ok := g.(string); ok {
				groups = append(groups, s)
			}
		}
		return groups
	case string:
		parts := strings.Split(v, ",")
		groups := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				groups = append(groups, trimmed)
			}
		}
		return groups
	}
	return nil
}

func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}
