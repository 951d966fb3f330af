package httpgin

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/oleksiirud/skyport/internal/auth"
	"github.com/oleksiirud/skyport/internal/domain"
	"github.com/oleksiirud/skyport/internal/service"
	"github.com/oleksiirud/skyport/internal/service/accounts"
	"github.com/oleksiirud/skyport/internal/service/catalog"
	"github.com/oleksiirud/skyport/internal/service/flights"
	"github.com/oleksiirud/skyport/internal/service/orders"
	"github.com/oleksiirud/skyport/internal/service/routes"
)

func NewRouter(
	svcs *service.Services,
	tokens *auth.TokenManager,
	logger *slog.Logger,
	middlewares ...gin.HandlerFunc,
) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery(), LoggingMiddleware(logger), RequestIDMiddleware(), CORS())
	for _, m := range middlewares {
		if m != nil {
			r.Use(m)
		}
	}

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/auth/register", handleRegister(svcs))
	r.POST("/auth/login", handleLogin(svcs))

	// Authenticated users may read everything except crews; writes and the
	// crew roster are staff-only.
	authed := r.Group("", AuthMiddleware(tokens))
	staff := authed.Group("", RequireStaff())

	authed.GET("/auth/me", handleMe(svcs))

	authed.GET("/countries", handleListCountries(svcs))
	authed.GET("/countries/:id", handleGetCountry(svcs))
	staff.POST("/countries", handleCreateCountry(svcs))
	staff.PUT("/countries/:id", handleUpdateCountry(svcs))
	staff.DELETE("/countries/:id", handleDeleteCountry(svcs))

	authed.GET("/cities", handleListCities(svcs))
	authed.GET("/cities/:id", handleGetCity(svcs))
	staff.POST("/cities", handleCreateCity(svcs))
	staff.PUT("/cities/:id", handleUpdateCity(svcs))
	staff.DELETE("/cities/:id", handleDeleteCity(svcs))

	authed.GET("/airports", handleListAirports(svcs))
	authed.GET("/airports/:id", handleGetAirport(svcs))
	staff.POST("/airports", handleCreateAirport(svcs))
	staff.PUT("/airports/:id", handleUpdateAirport(svcs))
	staff.DELETE("/airports/:id", handleDeleteAirport(svcs))

	authed.GET("/airplane_types", handleListAirplaneTypes(svcs))
	authed.GET("/airplane_types/:id", handleGetAirplaneType(svcs))
	staff.POST("/airplane_types", handleCreateAirplaneType(svcs))
	staff.PUT("/airplane_types/:id", handleUpdateAirplaneType(svcs))
	staff.DELETE("/airplane_types/:id", handleDeleteAirplaneType(svcs))

	authed.GET("/airplanes", handleListAirplanes(svcs))
	authed.GET("/airplanes/:id", handleGetAirplane(svcs))
	staff.POST("/airplanes", handleCreateAirplane(svcs))
	staff.PUT("/airplanes/:id", handleUpdateAirplane(svcs))
	staff.DELETE("/airplanes/:id", handleDeleteAirplane(svcs))

	staff.GET("/crews", handleListCrews(svcs))
	staff.GET("/crews/:id", handleGetCrew(svcs))
	staff.POST("/crews", handleCreateCrew(svcs))
	staff.PUT("/crews/:id", handleUpdateCrew(svcs))
	staff.DELETE("/crews/:id", handleDeleteCrew(svcs))

	authed.GET("/routes", handleListRoutes(svcs))
	authed.GET("/routes/:id", handleGetRoute(svcs))
	staff.POST("/routes", handleCreateRoute(svcs))

	authed.GET("/flights", handleListFlights(svcs))
	authed.GET("/flights/:id", handleGetFlight(svcs))
	authed.GET("/flights/:id/seats", handleFlightSeatMap(svcs))
	staff.POST("/flights", handleCreateFlight(svcs))
	staff.PUT("/flights/:id", handleUpdateFlight(svcs))
	staff.DELETE("/flights/:id", handleDeleteFlight(svcs))

	authed.POST("/orders", handlePlaceOrder(svcs))
	authed.GET("/orders", handleListOrders(svcs))
	authed.GET("/orders/:id", handleGetOrder(svcs))

	return r
}

// --- auth ---

// @Summary  Register user
// @Param    req body  RegisterRequest true "payload"
// @Success  201 {object} domain.User
// @Failure  409 {object} ErrorResponse
// @Router   /auth/register [post]
func handleRegister(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		u, err := svcs.Accounts.Register(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, u)
	}
}

// @Summary  Login
// @Param    req body  LoginRequest true "payload"
// @Success  200 {object} LoginResponse
// @Failure  401 {object} ErrorResponse
// @Router   /auth/login [post]
func handleLogin(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		sess, err := svcs.Accounts.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, LoginResponse{
			Token:     sess.Token,
			ExpiresAt: sess.ExpiresAt,
			User:      sess.User,
		})
	}
}

// @Summary  Current user
// @Success  200 {object} domain.User
// @Router   /auth/me [get]
func handleMe(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := svcs.Accounts.Me(c.Request.Context(), callerID(c))
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// --- countries ---

// @Summary  List countries
// @Param    country query string false "name substring"
// @Success  200 {array} domain.Country
// @Router   /countries [get]
func handleListCountries(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := pageParams(c)
		out, err := svcs.Catalog.ListCountries(c.Request.Context(),
			c.Query("country"), limit, offset)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, emptyAsList(out), "public, max-age=60", true)
	}
}

// @Summary  Get country
// @Param    id  path  int  true  "Country ID"
// @Success  200 {object} domain.Country
// @Router   /countries/{id} [get]
func handleGetCountry(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		out, err := svcs.Catalog.GetCountry(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Create country
// @Param    req body  NameRequest true "payload"
// @Success  201 {object} domain.Country
// @Router   /countries [post]
func handleCreateCountry(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		out, err := svcs.Catalog.CreateCountry(c.Request.Context(), req.Name)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

// @Summary  Update country
// @Param    id  path  int  true  "Country ID"
// @Param    req body  NameRequest true "payload"
// @Success  200 {object} domain.Country
// @Router   /countries/{id} [put]
func handleUpdateCountry(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req NameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		out, err := svcs.Catalog.UpdateCountry(c.Request.Context(), id, req.Name)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Delete country
// @Param    id  path  int  true  "Country ID"
// @Success  204
// @Router   /countries/{id} [delete]
func handleDeleteCountry(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		if err := svcs.Catalog.DeleteCountry(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// --- cities ---

// @Summary  List cities
// @Param    country query string false "country name substring"
// @Success  200 {array} domain.CityDetail
// @Router   /cities [get]
func handleListCities(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := pageParams(c)
		out, err := svcs.Catalog.ListCities(c.Request.Context(),
			c.Query("country"), limit, offset)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, emptyAsList(out), "public, max-age=60", true)
	}
}

// @Summary  Get city
// @Param    id  path  int  true  "City ID"
// @Success  200 {object} domain.CityDetail
// @Router   /cities/{id} [get]
func handleGetCity(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		out, err := svcs.Catalog.GetCity(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Create city
// @Param    req body  CityRequest true "payload"
// @Success  201 {object} domain.City
// @Router   /cities [post]
func handleCreateCity(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		out, err := svcs.Catalog.CreateCity(c.Request.Context(), req.Name, req.CountryID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

// @Summary  Update city
// @Param    id  path  int  true  "City ID"
// @Param    req body  CityRequest true "payload"
// @Success  200 {object} domain.City
// @Router   /cities/{id} [put]
func handleUpdateCity(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req CityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		out, err := svcs.Catalog.UpdateCity(c.Request.Context(), id, req.Name, req.CountryID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Delete city
// @Param    id  path  int  true  "City ID"
// @Success  204
// @Router   /cities/{id} [delete]
func handleDeleteCity(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		if err := svcs.Catalog.DeleteCity(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// --- airports ---

// @Summary  List airports
// @Param    city query string false "city name substring"
// @Success  200 {array} domain.AirportDetail
// @Router   /airports [get]
func handleListAirports(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := pageParams(c)
		out, err := svcs.Catalog.ListAirports(c.Request.Context(),
			c.Query("city"), limit, offset)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, emptyAsList(out), "public, max-age=60", true)
	}
}

// @Summary  Get airport
// @Param    id  path  int  true  "Airport ID"
// @Success  200 {object} domain.AirportDetail
// @Router   /airports/{id} [get]
func handleGetAirport(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		out, err := svcs.Catalog.GetAirport(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Create airport
// @Param    req body  AirportRequest true "payload"
// @Success  201 {object} domain.Airport
// @Router   /airports [post]
func handleCreateAirport(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AirportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		out, err := svcs.Catalog.CreateAirport(c.Request.Context(), req.Name, req.CityID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

// @Summary  Update airport
// @Param    id  path  int  true  "Airport ID"
// @Param    req body  AirportRequest true "payload"
// @Success  200 {object} domain.Airport
// @Router   /airports/{id} [put]
func handleUpdateAirport(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req AirportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		out, err := svcs.Catalog.UpdateAirport(c.Request.Context(), id, req.Name, req.CityID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Delete airport
// @Param    id  path  int  true  "Airport ID"
// @Success  204
// @Router   /airports/{id} [delete]
func handleDeleteAirport(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		if err := svcs.Catalog.DeleteAirport(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// --- airplane types ---

// @Summary  List airplane types
// @Param    type query string false "name substring"
// @Success  200 {array} domain.AirplaneType
// @Router   /airplane_types [get]
func handleListAirplaneTypes(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := pageParams(c)
		out, err := svcs.Catalog.ListAirplaneTypes(c.Request.Context(),
			c.Query("type"), limit, offset)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, emptyAsList(out), "public, max-age=60", true)
	}
}

// @Summary  Get airplane type
// @Param    id  path  int  true  "Type ID"
// @Success  200 {object} domain.AirplaneType
// @Router   /airplane_types/{id} [get]
func handleGetAirplaneType(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		out, err := svcs.Catalog.GetAirplaneType(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Create airplane type
// @Param    req body  NameRequest true "payload"
// @Success  201 {object} domain.AirplaneType
// @Router   /airplane_types [post]
func handleCreateAirplaneType(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req NameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		out, err := svcs.Catalog.CreateAirplaneType(c.Request.Context(), req.Name)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

// @Summary  Update airplane type
// @Param    id  path  int  true  "Type ID"
// @Param    req body  NameRequest true "payload"
// @Success  200 {object} domain.AirplaneType
// @Router   /airplane_types/{id} [put]
func handleUpdateAirplaneType(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req NameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		out, err := svcs.Catalog.UpdateAirplaneType(c.Request.Context(), id, req.Name)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Delete airplane type
// @Param    id  path  int  true  "Type ID"
// @Success  204
// @Router   /airplane_types/{id} [delete]
func handleDeleteAirplaneType(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		if err := svcs.Catalog.DeleteAirplaneType(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// --- airplanes ---

// @Summary  List airplanes
// @Param    name query string false "name substring"
// @Success  200 {array} domain.Airplane
// @Router   /airplanes [get]
func handleListAirplanes(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := pageParams(c)
		out, err := svcs.Catalog.ListAirplanes(c.Request.Context(),
			c.Query("name"), limit, offset)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, emptyAsList(out), "public, max-age=60", true)
	}
}

// @Summary  Get airplane
// @Param    id  path  int  true  "Airplane ID"
// @Success  200 {object} domain.Airplane
// @Router   /airplanes/{id} [get]
func handleGetAirplane(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		out, err := svcs.Catalog.GetAirplane(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Create airplane
// @Param    req body  CreateAirplaneRequest true "payload"
// @Success  201 {object} domain.Airplane
// @Router   /airplanes [post]
func handleCreateAirplane(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateAirplaneRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		out, err := svcs.Catalog.CreateAirplane(c.Request.Context(), domain.Airplane{
			Name:   req.Name,
			TypeID: req.TypeID,
			Layout: domain.SeatLayout{Rows: req.Rows, SeatsPerRow: req.SeatsPerRow},
		})
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

// @Summary  Update airplane (name and type; the seat layout is immutable)
// @Param    id  path  int  true  "Airplane ID"
// @Param    req body  UpdateAirplaneRequest true "payload"
// @Success  200 {object} domain.Airplane
// @Router   /airplanes/{id} [put]
func handleUpdateAirplane(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req UpdateAirplaneRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		out, err := svcs.Catalog.UpdateAirplane(c.Request.Context(), id, req.Name, req.TypeID)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Delete airplane
// @Param    id  path  int  true  "Airplane ID"
// @Success  204
// @Router   /airplanes/{id} [delete]
func handleDeleteAirplane(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		if err := svcs.Catalog.DeleteAirplane(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// --- crews ---

// @Summary  List crews (staff only)
// @Param    full_name query string false "first or last name substring"
// @Success  200 {array} domain.Crew
// @Router   /crews [get]
func handleListCrews(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := pageParams(c)
		out, err := svcs.Catalog.ListCrews(c.Request.Context(),
			c.Query("full_name"), limit, offset)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, emptyAsList(out))
	}
}

// @Summary  Get crew (staff only)
// @Param    id  path  int  true  "Crew ID"
// @Success  200 {object} domain.Crew
// @Router   /crews/{id} [get]
func handleGetCrew(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		out, err := svcs.Catalog.GetCrew(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Create crew (staff only)
// @Param    req body  CrewRequest true "payload"
// @Success  201 {object} domain.Crew
// @Router   /crews [post]
func handleCreateCrew(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CrewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		out, err := svcs.Catalog.CreateCrew(c.Request.Context(), req.FirstName, req.LastName)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

// @Summary  Update crew (staff only)
// @Param    id  path  int  true  "Crew ID"
// @Param    req body  CrewRequest true "payload"
// @Success  200 {object} domain.Crew
// @Router   /crews/{id} [put]
func handleUpdateCrew(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req CrewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		out, err := svcs.Catalog.UpdateCrew(c.Request.Context(), id, req.FirstName, req.LastName)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Delete crew (staff only)
// @Param    id  path  int  true  "Crew ID"
// @Success  204
// @Router   /crews/{id} [delete]
func handleDeleteCrew(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		if err := svcs.Catalog.DeleteCrew(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// --- routes ---

// @Summary  List routes
// @Param    source      query string false "source city substring"
// @Param    destination query string false "destination city substring"
// @Success  200 {array} domain.RouteDetail
// @Router   /routes [get]
func handleListRoutes(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := pageParams(c)
		out, err := svcs.Routes.List(c.Request.Context(),
			c.Query("source"), c.Query("destination"), limit, offset)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, emptyAsList(out), "public, max-age=60", true)
	}
}

// @Summary  Get route
// @Param    id  path  int  true  "Route ID"
// @Success  200 {object} domain.RouteDetail
// @Router   /routes/{id} [get]
func handleGetRoute(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		out, err := svcs.Routes.Get(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Create route
// @Param    req body  CreateRouteRequest true "payload"
// @Success  201 {object} domain.Route
// @Failure  422 {object} ErrorResponse "distance could not be resolved"
// @Router   /routes [post]
func handleCreateRoute(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRouteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		out, err := svcs.Routes.Create(c.Request.Context(),
			req.SourceID, req.DestinationID, req.DistanceKM)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

// --- flights ---

// @Summary  List flights
// @Success  200 {array} domain.FlightDetail
// @Router   /flights [get]
func handleListFlights(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := pageParams(c)
		out, err := svcs.Flights.List(c.Request.Context(), limit, offset)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, emptyAsList(out), "public, max-age=15", true)
	}
}

// @Summary  Get flight
// @Param    id  path  int  true  "Flight ID"
// @Success  200 {object} domain.FlightDetail
// @Router   /flights/{id} [get]
func handleGetFlight(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		out, err := svcs.Flights.Get(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, out, "public, max-age=15", true)
	}
}

// @Summary  Flight seat map
// @Param    id  path  int  true  "Flight ID"
// @Success  200 {object} domain.FlightSeatMap
// @Router   /flights/{id}/seats [get]
func handleFlightSeatMap(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		out, err := svcs.Flights.SeatMap(c.Request.Context(), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		writeJSONWithCache(c, http.StatusOK, out, "public, max-age=5", true)
	}
}

func flightFromRequest(c *gin.Context, req FlightRequest) (domain.Flight, bool) {
	dep, err := parseRFC3339(req.DepartureTime)
	if err != nil {
		badRequest(c, "invalid departure_time (RFC3339)")
		return domain.Flight{}, false
	}
	arr, err := parseRFC3339(req.ArrivalTime)
	if err != nil {
		badRequest(c, "invalid arrival_time (RFC3339)")
		return domain.Flight{}, false
	}
	return domain.Flight{
		RouteID:       req.RouteID,
		AirplaneID:    req.AirplaneID,
		CrewIDs:       req.CrewIDs,
		DepartureTime: dep,
		ArrivalTime:   arr,
	}, true
}

// @Summary  Create flight
// @Param    req body  FlightRequest true "payload"
// @Success  201 {object} domain.Flight
// @Router   /flights [post]
func handleCreateFlight(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req FlightRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		f, ok := flightFromRequest(c, req)
		if !ok {
			return
		}
		out, err := svcs.Flights.Create(c.Request.Context(), f)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

// @Summary  Update flight
// @Param    id  path  int  true  "Flight ID"
// @Param    req body  FlightRequest true "payload"
// @Success  200 {object} domain.Flight
// @Router   /flights/{id} [put]
func handleUpdateFlight(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		var req FlightRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		f, ok := flightFromRequest(c, req)
		if !ok {
			return
		}
		f.ID = id
		out, err := svcs.Flights.Update(c.Request.Context(), f)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary  Delete flight
// @Param    id  path  int  true  "Flight ID"
// @Success  204
// @Router   /flights/{id} [delete]
func handleDeleteFlight(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		if err := svcs.Flights.Delete(c.Request.Context(), id); err != nil {
			respondErr(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// --- orders ---

// @Summary  Place order (idempotent via Idempotency-Key header)
// @Param    req body  PlaceOrderRequest true "payload"
// @Success  201 {object} domain.OrderWithTickets
// @Failure  400 {object} ErrorResponse "seat validation failed"
// @Failure  409 {object} ErrorResponse "seat already taken"
// @Router   /orders [post]
func handlePlaceOrder(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		items := make([]orders.Item, len(req.Tickets))
		for i, t := range req.Tickets {
			items[i] = orders.Item{FlightID: t.FlightID, Row: t.Row, Seat: t.Seat}
		}

		idemKey := strings.TrimSpace(c.GetHeader("Idempotency-Key"))

		out, err := svcs.Orders.Place(c.Request.Context(), callerID(c), items, idemKey)
		if err != nil {
			respondErr(c, err)
			return
		}
		if idemKey != "" {
			c.Header("Idempotency-Key", idemKey)
		}
		c.JSON(http.StatusCreated, out)
	}
}

// @Summary  List own orders
// @Success  200 {array} domain.OrderWithTickets
// @Router   /orders [get]
func handleListOrders(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := pageParams(c)
		out, err := svcs.Orders.List(c.Request.Context(), callerID(c), limit, offset)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, emptyAsList(out))
	}
}

// @Summary  Get own order
// @Param    id  path  int  true  "Order ID"
// @Success  200 {object} domain.OrderWithTickets
// @Router   /orders/{id} [get]
func handleGetOrder(svcs *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseInt64Param(c, "id")
		if !ok {
			return
		}
		out, err := svcs.Orders.Get(c.Request.Context(), callerID(c), id)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// --- Helpers ---

func parseInt64Param(c *gin.Context, name string) (int64, bool) {
	s := c.Param(name)
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return v, true
}

func pageParams(c *gin.Context) (limit, offset int) {
	return parseIntDefault(c.Query("limit"), 50), parseIntDefault(c.Query("offset"), 0)
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// emptyAsList keeps empty list responses as [] instead of null.
func emptyAsList[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func respondErr(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	// Order placement failures carry the index of the failing item.
	var ve *orders.ValidationError
	if errors.As(err, &ve) {
		idx := ve.Index
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:      "seat validation failed",
			Index:      &idx,
			Violations: ve.Violations,
		})
		return
	}
	var ste *orders.SeatTakenError
	if errors.As(err, &ste) {
		idx := ste.Index
		c.JSON(http.StatusConflict, ErrorResponse{
			Error: ste.Error(),
			Index: &idx,
		})
		return
	}
	var fnf *orders.FlightNotFoundError
	if errors.As(err, &fnf) {
		idx := fnf.Index
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: fnf.Error(),
			Index: &idx,
		})
		return
	}

	switch {
	// accounts service
	case errors.Is(err, accounts.ErrEmailTaken):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "email already registered"})
	case errors.Is(err, accounts.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
	case errors.Is(err, accounts.ErrUserNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
	case errors.Is(err, accounts.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	// catalog service
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, catalog.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "conflict with existing data"})
	case errors.Is(err, catalog.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	// routes service
	case errors.Is(err, routes.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "route not found"})
	case errors.Is(err, routes.ErrAirportNotFound):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "airport not found"})
	case errors.Is(err, routes.ErrDistanceUnavailable):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "distance could not be resolved"})
	case errors.Is(err, routes.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	// flights service
	case errors.Is(err, flights.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "flight not found"})
	case errors.Is(err, flights.ErrBadReference):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "referenced entity does not exist"})
	case errors.Is(err, flights.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	// orders service
	case errors.Is(err, orders.ErrEmptyOrder):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "order must contain at least one ticket"})
	case errors.Is(err, orders.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "order not found"})
	case errors.Is(err, orders.ErrRateLimited):
		c.Header("Retry-After", "60")
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "too many order attempts"})
	case errors.Is(err, orders.ErrInFlight):
		c.Header("Retry-After", "1")
		c.JSON(http.StatusConflict, ErrorResponse{Error: "identical order is being processed"})

	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
