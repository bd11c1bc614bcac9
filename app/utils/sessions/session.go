package sessions

import (
	"encoding/gob"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

func init() {
	// The cart id sequence travels through securecookie's gob encoder.
	gob.Register([]uint{})
}

const (
	sessionCookieName = "shopkart-session"

	userIDSessionKey   = "userID"
	userNameSessionKey = "userName"
	adminSessionKey    = "admin"
	cartSessionKey     = "cart"
)

// SessionStore holds everything the storefront keeps per browser session:
// the cart id sequence, at most one end-user identity, and at most one
// admin identity.
type SessionStore interface {
	GetCart(r *http.Request) []uint
	SetCart(w http.ResponseWriter, r *http.Request, ids []uint) error
	ClearCart(w http.ResponseWriter, r *http.Request) error

	GetUserID(r *http.Request) uint
	GetUserName(r *http.Request) string
	SetUser(w http.ResponseWriter, r *http.Request, userID uint, userName string) error
	ClearUser(w http.ResponseWriter, r *http.Request) error

	GetAdmin(r *http.Request) string
	SetAdmin(w http.ResponseWriter, r *http.Request, username string) error
	ClearAdmin(w http.ResponseWriter, r *http.Request) error
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

func NewCookieSessionStore(keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store}
}

func (c *CookieSessionStore) getSession(r *http.Request) (*sessions.Session, error) {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		log.Printf("Error getting session: %v", err)
	}
	return session, nil
}

func (c *CookieSessionStore) GetCart(r *http.Request) []uint {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return nil
	}
	ids, ok := session.Values[cartSessionKey].([]uint)
	if !ok {
		return nil
	}
	return ids
}

func (c *CookieSessionStore) SetCart(w http.ResponseWriter, r *http.Request, ids []uint) error {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return err
	}
	session.Values[cartSessionKey] = ids
	return session.Save(r, w)
}

func (c *CookieSessionStore) ClearCart(w http.ResponseWriter, r *http.Request) error {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return err
	}
	delete(session.Values, cartSessionKey)
	return session.Save(r, w)
}

func (c *CookieSessionStore) GetUserID(r *http.Request) uint {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return 0
	}
	userID, ok := session.Values[userIDSessionKey].(uint)
	if !ok {
		return 0
	}
	return userID
}

func (c *CookieSessionStore) GetUserName(r *http.Request) string {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return ""
	}
	name, ok := session.Values[userNameSessionKey].(string)
	if !ok {
		return ""
	}
	return name
}

func (c *CookieSessionStore) SetUser(w http.ResponseWriter, r *http.Request, userID uint, userName string) error {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return err
	}
	session.Values[userIDSessionKey] = userID
	session.Values[userNameSessionKey] = userName
	return session.Save(r, w)
}

func (c *CookieSessionStore) ClearUser(w http.ResponseWriter, r *http.Request) error {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return err
	}
	delete(session.Values, userIDSessionKey)
	delete(session.Values, userNameSessionKey)
	return session.Save(r, w)
}

func (c *CookieSessionStore) GetAdmin(r *http.Request) string {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return ""
	}
	admin, ok := session.Values[adminSessionKey].(string)
	if !ok {
		return ""
	}
	return admin
}

func (c *CookieSessionStore) SetAdmin(w http.ResponseWriter, r *http.Request, username string) error {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return err
	}
	session.Values[adminSessionKey] = username
	return session.Save(r, w)
}

func (c *CookieSessionStore) ClearAdmin(w http.ResponseWriter, r *http.Request) error {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return err
	}
	delete(session.Values, adminSessionKey)
	return session.Save(r, w)
}
