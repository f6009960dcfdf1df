package api

import (
	"crypto/rand"
	"encoding/base64"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
	"github.com/ougirez/milkdigit/internal/domain"
	"github.com/ougirez/milkdigit/internal/pkg/constants"
	"net/http"
)

const (
	sessionKeyPage    = "page"
	sessionKeyProduct = "product_id"
	sessionKeyStep    = "step_id"
)

// sessionStore keeps the navigation state in a signed cookie.
type sessionStore struct {
	store *sessions.CookieStore
}

// newSessionStore uses the base64 secret when it decodes to at least 32 bytes, a random key otherwise.
func newSessionStore(secret string) *sessionStore {
	var key []byte
	if secret != "" {
		key, _ = base64.StdEncoding.DecodeString(secret)
	}
	if len(key) < 32 {
		key = make([]byte, 32)
		_, _ = rand.Read(key)
	}

	cs := sessions.NewCookieStore(key)
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &sessionStore{store: cs}
}

func (s *sessionStore) get(r *http.Request) *sessions.Session {
	// битая кука даёт новую пустую сессию
	sess, _ := s.store.Get(r, constants.SessionName)
	return sess
}

func (s *sessionStore) Load(ctx echo.Context) domain.Navigation {
	nav := domain.NewNavigation()
	sess := s.get(ctx.Request())

	if page, ok := sess.Values[sessionKeyPage].(string); ok && domain.Page(page).Valid() {
		nav.Page = domain.Page(page)
	}
	if id, ok := sess.Values[sessionKeyProduct].(int64); ok && id > 0 {
		nav.ProductID = &id
	}
	if step, ok := sess.Values[sessionKeyStep].(string); ok {
		nav.StepID = step
	}
	return nav
}

func (s *sessionStore) Save(ctx echo.Context, nav domain.Navigation) error {
	sess := s.get(ctx.Request())

	sess.Values[sessionKeyPage] = string(nav.Page)
	if nav.ProductID != nil {
		sess.Values[sessionKeyProduct] = *nav.ProductID
	} else {
		delete(sess.Values, sessionKeyProduct)
	}
	sess.Values[sessionKeyStep] = nav.StepID

	ctx.Set(constants.CtxKeyNavigation, nav)
	return sess.Save(ctx.Request(), ctx.Response())
}
