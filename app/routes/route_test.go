package routes

import (
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"shopkart/app/configs"
	"shopkart/app/db/seeders"
	"shopkart/app/models"
	"shopkart/app/models/migrations"
	"shopkart/app/utils/renderer"
	"shopkart/app/utils/sessions"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testApp struct {
	server *httptest.Server
	db     *gorm.DB
	client *http.Client
}

var testDBSeq int64

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dsn := fmt.Sprintf("file:routetest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))
	require.NoError(t, seeders.EnsureDefaultAdmin(db))

	store := sessions.NewCookieSessionStore([]byte("test-secret"))
	rnd := renderer.New("../../templates")
	router := NewRouter(db, configs.ENV{}, rnd, store)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testApp{
		server: server,
		db:     db,
		client: &http.Client{Jar: jar},
	}
}

// noRedirect returns a client sharing the app's cookie jar that stops at the
// first response instead of following redirects.
func (a *testApp) noRedirect() *http.Client {
	return &http.Client{
		Jar: a.client.Jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (a *testApp) seedProduct(t *testing.T, name, category string, price float64) models.Product {
	t.Helper()

	product := models.Product{
		Name:     name,
		Category: category,
		Price:    decimal.NewFromFloat(price),
		Image:    "/static/images/placeholder1.jpg",
	}
	require.NoError(t, a.db.Create(&product).Error)
	return product
}

func (a *testApp) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()

	resp, err := a.client.Get(a.server.URL + path)
	require.NoError(t, err)
	return resp, readBody(t, resp)
}

func (a *testApp) postForm(t *testing.T, path string, form url.Values) (*http.Response, string) {
	t.Helper()

	resp, err := a.client.PostForm(a.server.URL+path, form)
	require.NoError(t, err)
	return resp, readBody(t, resp)
}

func (a *testApp) signupAndLogin(t *testing.T, name, email, password string) {
	t.Helper()

	_, _ = a.postForm(t, "/signup", url.Values{
		"name":     {name},
		"email":    {email},
		"password": {password},
	})
	resp, body := a.postForm(t, "/login", url.Values{
		"email":    {email},
		"password": {password},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body, "Welcome")
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestHomeSearchAndCategoryFilter(t *testing.T) {
	app := newTestApp(t)
	app.seedProduct(t, "Wireless Mouse", "Electronics", 799)
	app.seedProduct(t, "Cotton T-Shirt", "Clothing", 499)

	_, body := app.get(t, "/?search=Mouse")
	assert.Contains(t, body, "Wireless Mouse")
	assert.NotContains(t, body, "Cotton T-Shirt")

	_, body = app.get(t, "/?category=Clothing")
	assert.Contains(t, body, "Cotton T-Shirt")
	assert.NotContains(t, body, "Wireless Mouse")
}

func TestProductDetailAndNotFound(t *testing.T) {
	app := newTestApp(t)
	product := app.seedProduct(t, "Wireless Mouse", "Electronics", 799)
	app.seedProduct(t, "USB Keyboard", "Electronics", 999)

	resp, body := app.get(t, fmt.Sprintf("/product/%d", product.ID))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Wireless Mouse")
	assert.Contains(t, body, "USB Keyboard") // related, same category

	resp, _ = app.get(t, "/product/9999")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCartDuplicateLinesAndTotal(t *testing.T) {
	app := newTestApp(t)
	product := app.seedProduct(t, "Test Product", "Electronics", 499)

	_, _ = app.get(t, fmt.Sprintf("/add_to_cart/%d", product.ID))
	_, _ = app.get(t, fmt.Sprintf("/add_to_cart/%d", product.ID))

	_, body := app.get(t, "/cart")
	assert.Equal(t, 2, strings.Count(body, ">Test Product</a>"))
	assert.Contains(t, body, "998.00")
}

func TestRemoveFromCartDropsFirstOccurrence(t *testing.T) {
	app := newTestApp(t)
	product := app.seedProduct(t, "Test Product", "Electronics", 499)

	_, _ = app.get(t, fmt.Sprintf("/add_to_cart/%d", product.ID))
	_, _ = app.get(t, fmt.Sprintf("/add_to_cart/%d", product.ID))
	_, body := app.get(t, fmt.Sprintf("/remove_from_cart/%d", product.ID))

	assert.Equal(t, 1, strings.Count(body, ">Test Product</a>"))
	assert.Contains(t, body, "499.00")
}

func TestCheckoutEmptyCartRedirects(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.noRedirect().PostForm(app.server.URL+"/checkout", url.Values{
		"name":  {"Asha"},
		"total": {"499"},
	})
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	location, err := resp.Location()
	require.NoError(t, err)
	assert.Equal(t, "/", location.Path)
	assert.Contains(t, location.RawQuery, "message=")

	var orders int64
	require.NoError(t, app.db.Model(&models.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)
}

func TestCheckoutCreatesOrderAndClearsCart(t *testing.T) {
	app := newTestApp(t)
	product := app.seedProduct(t, "Test Product", "Electronics", 499)

	_, _ = app.get(t, fmt.Sprintf("/add_to_cart/%d", product.ID))

	resp, body := app.postForm(t, "/checkout", url.Values{
		"name":           {"Asha"},
		"email":          {"a@x.com"},
		"address":        {"12 MG Road"},
		"payment_method": {"cod"},
		"total":          {"499"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "placed successfully")

	var orders []models.Order
	require.NoError(t, app.db.Find(&orders).Error)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].Total.Equal(decimal.NewFromInt(499)), "total = %s", orders[0].Total)
	assert.Equal(t, models.OrderStatusPending, orders[0].Status)
	assert.NotEmpty(t, orders[0].Code)

	_, body = app.get(t, "/cart")
	assert.Contains(t, body, "Your cart is empty")
}

func TestSignupDuplicateEmail(t *testing.T) {
	app := newTestApp(t)

	form := url.Values{
		"name":     {"Asha"},
		"email":    {"a@x.com"},
		"password": {"secret"},
	}
	_, _ = app.postForm(t, "/signup", form)

	resp, err := app.noRedirect().PostForm(app.server.URL+"/signup", form)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	location, err := resp.Location()
	require.NoError(t, err)
	assert.Equal(t, "/signup", location.Path)
	assert.Contains(t, location.Query().Get("message"), "already registered")

	var count int64
	require.NoError(t, app.db.Model(&models.User{}).Where("email = ?", "a@x.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLoginSuccessAndFailure(t *testing.T) {
	app := newTestApp(t)
	app.signupAndLogin(t, "Asha", "a@x.com", "secret")

	resp, body := app.get(t, "/dashboard")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Welcome, Asha")

	fresh := newTestApp(t)
	_, _ = fresh.postForm(t, "/signup", url.Values{
		"name":     {"Asha"},
		"email":    {"a@x.com"},
		"password": {"secret"},
	})
	resp, err := fresh.noRedirect().PostForm(fresh.server.URL+"/login", url.Values{
		"email":    {"a@x.com"},
		"password": {"wrong"},
	})
	require.NoError(t, err)
	defer resp.Body.Close()

	location, err := resp.Location()
	require.NoError(t, err)
	assert.Equal(t, "/login", location.Path)

	// No identity was established; the dashboard still redirects to login.
	resp, err = fresh.noRedirect().Get(fresh.server.URL + "/dashboard")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

func TestLogoutClearsIdentity(t *testing.T) {
	app := newTestApp(t)
	app.signupAndLogin(t, "Asha", "a@x.com", "secret")

	_, _ = app.get(t, "/user_logout")

	resp, err := app.noRedirect().Get(app.server.URL + "/dashboard")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

func TestWishlistAddAndRemove(t *testing.T) {
	app := newTestApp(t)
	product := app.seedProduct(t, "Test Product", "Electronics", 499)
	app.signupAndLogin(t, "Asha", "a@x.com", "secret")

	resp, body := app.get(t, fmt.Sprintf("/add_to_wishlist/%d", product.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Test Product")

	var items []models.WishlistItem
	require.NoError(t, app.db.Find(&items).Error)
	require.Len(t, items, 1)

	_, body = app.get(t, fmt.Sprintf("/remove_wishlist/%d", items[0].ID))
	assert.Contains(t, body, "Your wishlist is empty")
}

func TestContactMessageStored(t *testing.T) {
	app := newTestApp(t)

	resp, body := app.postForm(t, "/contact", url.Values{
		"name":    {"Asha"},
		"email":   {"a@x.com"},
		"message": {"Where is my order?"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Message sent successfully")

	var count int64
	require.NoError(t, app.db.Model(&models.ContactMessage{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAdminLoginAndGate(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.noRedirect().Get(app.server.URL + "/admin_dashboard")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	location, err := resp.Location()
	require.NoError(t, err)
	assert.Equal(t, "/admin_login", location.Path)

	resp2, body := app.postForm(t, "/admin_login", url.Values{
		"username": {"admin"},
		"password": {"1234"},
	})
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	assert.Contains(t, body, "Admin Dashboard")

	_, body = app.get(t, "/admin_contacts")
	assert.Contains(t, body, "Contact Messages")
}

func TestAdminLoginBadCredentials(t *testing.T) {
	app := newTestApp(t)

	resp, body := app.postForm(t, "/admin_login", url.Values{
		"username": {"admin"},
		"password": {"nope"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Invalid Credentials")

	resp2, err := app.noRedirect().Get(app.server.URL + "/admin_dashboard")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp2.StatusCode)
}

func TestAdminLogout(t *testing.T) {
	app := newTestApp(t)

	_, _ = app.postForm(t, "/admin_login", url.Values{
		"username": {"admin"},
		"password": {"1234"},
	})

	_, _ = app.get(t, "/admin_logout")

	resp, err := app.noRedirect().Get(app.server.URL + "/admin_dashboard")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
}
