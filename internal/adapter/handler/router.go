package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/srgjo27/ticket_storefront/internal/core/services"
)

var ErrServerClosed = http.ErrServerClosed

type Deps struct {
	Storefront *services.Storefront
	Catalog    *services.CatalogService
	Auth       *services.AuthService
	Checkouts  *services.CheckoutRegistry
	History    *services.HistoryService
	Logger     logrus.FieldLogger

	// ProfileSecret signs the profile cookie.
	ProfileSecret []byte
}

func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(requestLogger(deps.Logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	catalog := NewCatalogHandler(deps.Catalog)
	e.GET("/events", catalog.ListEvents)
	e.GET("/events/:id", catalog.GetEvent)

	g := e.Group("", profileMiddleware(deps.Storefront, deps.ProfileSecret))

	cart := NewCartHandler(deps.Catalog)
	g.GET("/cart", cart.GetCart)
	g.POST("/cart/items", cart.AddItem)
	g.PUT("/cart/items/:id", cart.SetQuantity)
	g.DELETE("/cart/items/:id", cart.RemoveItem)
	g.DELETE("/cart", cart.ClearCart)

	auth := NewAuthHandler(deps.Auth)
	g.POST("/auth/signup", auth.SignUp)
	g.POST("/auth/signin", auth.SignIn)
	g.POST("/auth/signout", auth.SignOut)
	g.GET("/auth/me", auth.Me)
	g.PUT("/auth/me", auth.UpdateProfile)

	booking := NewBookingHandler(deps.Checkouts, deps.History)
	g.POST("/checkout", booking.Checkout)
	g.GET("/bookings", booking.ListBookings)

	return e
}

func requestLogger(logger logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			fields := logrus.Fields{
				"method":   c.Request().Method,
				"path":     c.Path(),
				"status":   c.Response().Status,
				"duration": time.Since(start).String(),
			}
			if p, ok := c.Get(profileContextKey).(*services.Profile); ok {
				fields["profile_id"] = p.ID
			}

			logger.WithFields(fields).Info("Handled request")
			return nil
		}
	}
}
