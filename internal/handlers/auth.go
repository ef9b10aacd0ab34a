package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/maddiejones03/Workah/internal/database"
	"github.com/maddiejones03/Workah/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const loginFailedMsg = "Invalid email or password"

func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// Login deliberately renders the same error for an unknown email and a
// wrong password, so the form can't be used to probe which emails exist.
func Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": loginFailedMsg})
		return
	}

	form.Email = strings.TrimSpace(form.Email)

	user, err := database.UserByEmail(form.Email)
	if err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": loginFailedMsg})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": loginFailedMsg})
		return
	}

	if err := saveSession(c, user); err != nil {
		log.Printf("failed to save session: %v", err)
		c.String(http.StatusInternalServerError, "Server Error")
		return
	}

	// teens land on the search page, managers on their dashboard
	if user.Role == models.RoleManager {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{"error": ""})
}

type registerForm struct {
	Email       string `form:"email"`
	Password    string `form:"password"`
	FirstName   string `form:"firstname"`
	LastName    string `form:"lastname"`
	Role        string `form:"role"`
	CompanyName string `form:"companyname"`
	Address     string `form:"address"`
	City        string `form:"city"`
	State       string `form:"state"`
	Zipcode     string `form:"zipcode"`
	DateOfBirth string `form:"dateofbirth"`
}

func Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Invalid form data"})
		return
	}

	form.Email = strings.TrimSpace(form.Email)
	if form.Email == "" || len(form.Password) < 6 {
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Email and a password of at least 6 characters are required"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash password: %v", err)
		render(c, http.StatusInternalServerError, "register.html", gin.H{"error": "Registration failed"})
		return
	}

	user := models.User{
		Email:        form.Email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(form.FirstName),
		LastName:     strings.TrimSpace(form.LastName),
	}

	switch models.UserRole(form.Role) {
	case models.RoleTeen:
		user.Address = defaultIfBlank(form.Address, "N/A")
		user.City = defaultIfBlank(form.City, "N/A")
		user.State = defaultIfBlank(form.State, "N/A")
		user.Zipcode = defaultIfBlank(form.Zipcode, "00000")
		if dob, err := time.Parse("2006-01-02", form.DateOfBirth); err == nil {
			user.DateOfBirth = &dob
		}

		if err := database.CreateTeen(&user); err != nil {
			// duplicate email surfaces here; the DB constraint is the
			// only uniqueness check, and the message stays generic
			log.Printf("teen registration failed: %v", err)
			render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Registration failed. Email might be taken."})
			return
		}

	case models.RoleManager:
		company := models.Company{
			Name:         defaultIfBlank(form.CompanyName, "My Company"),
			Industry:     "General",
			Location:     "N/A",
			ContactEmail: form.Email,
			Phone:        "000-000-0000",
		}

		if err := database.RegisterManager(&user, &company); err != nil {
			log.Printf("manager registration failed: %v", err)
			render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Registration failed. Email might be taken."})
			return
		}

	default:
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Invalid role selected"})
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/")
}

func defaultIfBlank(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
