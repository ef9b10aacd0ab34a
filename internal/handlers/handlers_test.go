package handlers_test

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/maddiejones03/Workah/internal/database"
	"github.com/maddiejones03/Workah/internal/handlers"
	"github.com/maddiejones03/Workah/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testTemplates stands in for web/templates: tiny bodies that echo just
// enough state for assertions.
const testTemplates = `
{{define "login.html"}}login error={{.error}}{{end}}
{{define "register.html"}}register error={{.error}}{{end}}
{{define "index.html"}}index:{{range .jobs}}[{{.Title}}@{{.CompanyName}}]{{end}}{{end}}
{{define "dashboard.html"}}dashboard:{{range .jobs}}[{{.ID}}:{{.Title}}]{{end}}{{end}}
{{define "job_form.html"}}job_form error={{.error}}{{end}}
{{define "apply.html"}}apply:{{.job.Title}}{{end}}
{{define "apply_done.html"}}application sent for {{.job.Title}}{{end}}
`

// newTestApp wires the same middleware and routes as server.NewRouter,
// against an in-memory sqlite DB and the inline templates above.
func newTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })

	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("test").Parse(testTemplates)))

	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("workah_session", store))
	r.Use(middleware.InjectUser())

	r.GET("/", handlers.Index)
	r.GET("/login", handlers.ShowLogin)
	r.POST("/login", handlers.Login)
	r.GET("/register", handlers.ShowRegister)
	r.POST("/register", handlers.Register)
	r.GET("/logout", handlers.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())
	auth.GET("/jobs/:id/apply", handlers.ShowApply)
	auth.POST("/jobs/:id/apply", handlers.Apply)

	manager := auth.Group("/")
	manager.Use(middleware.RequireManager())
	manager.GET("/dashboard", handlers.Dashboard)
	manager.GET("/jobs/add", handlers.ShowAddJob)
	manager.POST("/jobs/add", handlers.AddJob)
	manager.GET("/jobs/edit/:id", handlers.ShowEditJob)
	manager.POST("/jobs/edit/:id", handlers.EditJob)
	manager.POST("/jobs/delete/:id", handlers.DeleteJob)

	return r
}

func doGet(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doPost(r *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// registerManager registers a manager account and returns the session
// cookies from a follow-up login.
func registerManager(t *testing.T, r *gin.Engine, email, password, companyName string) []*http.Cookie {
	t.Helper()

	w := doPost(r, "/register", url.Values{
		"email":       {email},
		"password":    {password},
		"firstname":   {"Mel"},
		"role":        {"manager"},
		"companyname": {companyName},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code, "registration should redirect: %s", w.Body.String())

	return login(t, r, email, password)
}

func registerTeen(t *testing.T, r *gin.Engine, email, password string) []*http.Cookie {
	t.Helper()

	w := doPost(r, "/register", url.Values{
		"email":     {email},
		"password":  {password},
		"firstname": {"Tina"},
		"role":      {"teen"},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code, "registration should redirect: %s", w.Body.String())

	return login(t, r, email, password)
}

func login(t *testing.T, r *gin.Engine, email, password string) []*http.Cookie {
	t.Helper()

	w := doPost(r, "/login", url.Values{
		"email":    {email},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code, "login should redirect: %s", w.Body.String())

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "login should set a session cookie")
	return cookies
}
