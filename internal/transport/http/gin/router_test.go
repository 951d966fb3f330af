package httpgin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oleksiirud/skyport/internal/auth"
	"github.com/oleksiirud/skyport/internal/domain"
	"github.com/oleksiirud/skyport/internal/repository"
	"github.com/oleksiirud/skyport/internal/service"
	"github.com/oleksiirud/skyport/internal/service/catalog"
	"github.com/oleksiirud/skyport/internal/service/orders"
	"github.com/oleksiirud/skyport/internal/service/routes"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authedEngine(tokens *auth.TokenManager) *gin.Engine {
	r := gin.New()
	grp := r.Group("", AuthMiddleware(tokens))
	grp.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": callerID(c), "is_staff": c.GetBool(ctxIsStaff)})
	})
	staff := grp.Group("", RequireStaff())
	staff.GET("/staff-only", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Minute)
	r := authedEngine(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Minute)
	r := authedEngine(tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewarePassesIdentity(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Minute)
	r := authedEngine(tokens)

	token, _, err := tokens.Issue(42, false)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		UserID  int64 `json:"user_id"`
		IsStaff bool  `json:"is_staff"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.EqualValues(t, 42, body.UserID)
	assert.False(t, body.IsStaff)
}

func TestRequireStaff(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Minute)
	r := authedEngine(tokens)

	userToken, _, err := tokens.Issue(1, false)
	require.NoError(t, err)
	staffToken, _, err := tokens.Issue(2, true)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/staff-only", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/staff-only", nil)
	req.Header.Set("Authorization", "Bearer "+staffToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func respondErrStatus(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondErr(c, err)

	var body ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w.Code, body
}

func TestRespondErrSeatValidation(t *testing.T) {
	code, body := respondErrStatus(t, &orders.ValidationError{
		Index: 1,
		Violations: []domain.SeatViolation{
			{Field: "row", Value: 5, Min: 1, Max: 2},
		},
	})

	assert.Equal(t, http.StatusBadRequest, code)
	require.NotNil(t, body.Index)
	assert.Equal(t, 1, *body.Index)
	require.Len(t, body.Violations, 1)
	assert.Equal(t, "row", body.Violations[0].Field)
	assert.Equal(t, 2, body.Violations[0].Max)
}

func TestRespondErrSeatTaken(t *testing.T) {
	code, body := respondErrStatus(t, &orders.SeatTakenError{
		Index: 2, FlightID: 7, Row: 1, Seat: 1,
	})

	assert.Equal(t, http.StatusConflict, code)
	require.NotNil(t, body.Index)
	assert.Equal(t, 2, *body.Index)
}

func TestRespondErrSentinels(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{orders.ErrEmptyOrder, http.StatusBadRequest},
		{orders.ErrNotFound, http.StatusNotFound},
		{routes.ErrDistanceUnavailable, http.StatusUnprocessableEntity},
		{routes.ErrAirportNotFound, http.StatusBadRequest},
	}

	for _, tc := range cases {
		code, _ := respondErrStatus(t, tc.err)
		assert.Equal(t, tc.code, code, "error %v", tc.err)
	}
}

// catalogListCapture records the filter and page values the service hands to
// the store. Unoverridden methods panic via the embedded nil interface.
type catalogListCapture struct {
	repository.CatalogStore
	filter        string
	limit, offset int
}

func (s *catalogListCapture) record(filter string, limit, offset int) {
	s.filter, s.limit, s.offset = filter, limit, offset
}

func (s *catalogListCapture) ListCountries(_ context.Context, f string, l, o int) ([]domain.Country, error) {
	s.record(f, l, o)
	return nil, nil
}

func (s *catalogListCapture) ListCities(_ context.Context, f string, l, o int) ([]domain.CityDetail, error) {
	s.record(f, l, o)
	return nil, nil
}

func (s *catalogListCapture) ListAirports(_ context.Context, f string, l, o int) ([]domain.AirportDetail, error) {
	s.record(f, l, o)
	return nil, nil
}

func (s *catalogListCapture) ListAirplaneTypes(_ context.Context, f string, l, o int) ([]domain.AirplaneType, error) {
	s.record(f, l, o)
	return nil, nil
}

func (s *catalogListCapture) ListAirplanes(_ context.Context, f string, l, o int) ([]domain.Airplane, error) {
	s.record(f, l, o)
	return nil, nil
}

func (s *catalogListCapture) ListCrews(_ context.Context, f string, l, o int) ([]domain.Crew, error) {
	s.record(f, l, o)
	return nil, nil
}

func TestListFilterAndPagingReachStore(t *testing.T) {
	handlers := map[string]func(*service.Services) gin.HandlerFunc{
		"/countries":      handleListCountries,
		"/cities":         handleListCities,
		"/airports":       handleListAirports,
		"/airplane_types": handleListAirplaneTypes,
		"/airplanes":      handleListAirplanes,
		"/crews":          handleListCrews,
	}
	filterKeys := map[string]string{
		"/countries":      "country",
		"/cities":         "country",
		"/airports":       "city",
		"/airplane_types": "type",
		"/airplanes":      "name",
		"/crews":          "full_name",
	}

	for path, handler := range handlers {
		t.Run(path, func(t *testing.T) {
			store := &catalogListCapture{}
			svcs := &service.Services{Catalog: catalog.New(store)}

			r := gin.New()
			r.GET(path, handler(svcs))

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet,
				path+"?"+filterKeys[path]+"=Kyiv&limit=5&offset=10", nil)
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "Kyiv", store.filter)
			assert.Equal(t, 5, store.limit)
			assert.Equal(t, 10, store.offset)
		})
	}
}

func TestPlaceOrderEmptyTicketsGetsServiceMessage(t *testing.T) {
	svcs := &service.Services{Orders: orders.New(nil, nil, nil, nil, nil, nil)}

	r := gin.New()
	r.POST("/orders", handlePlaceOrder(svcs))

	for _, body := range []string{`{"tickets":[]}`, `{}`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "order must contain at least one ticket", resp.Error)
	}
}

func TestWriteJSONWithCacheETag(t *testing.T) {
	r := gin.New()
	r.GET("/thing", func(c *gin.Context) {
		writeJSONWithCache(c, http.StatusOK, gin.H{"v": 1}, "public, max-age=60", true)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/thing", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	tag := w.Header().Get("ETag")
	require.NotEmpty(t, tag)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/thing", nil)
	req.Header.Set("If-None-Match", tag)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotModified, w.Code)
}
