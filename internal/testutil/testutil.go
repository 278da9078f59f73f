// Package testutil holds the database, router and fixture helpers shared by
// handler and service tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"agroconsult/internal/database"
	"agroconsult/internal/domain"
	"agroconsult/internal/middleware"
	"agroconsult/internal/pkg/jwt"
)

const Actor = "tester"

// OpenDB returns a migrated in-memory SQLite database.
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:", database.WithLogLevel(logger.Silent))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// Router mounts register under /api behind the production middleware chain.
// Requests carry the Actor identity unless they set X-Actor themselves.
func Router(t testing.TB, register func(api *gin.RouterGroup)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := gin.New()
	r.Use(middleware.ErrorLogger(log), middleware.Actor(jwt.New("test-secret", time.Hour), Actor))
	register(r.Group("/api"))
	return r
}

// DoJSON sends body (marshalled unless it is a string) and records the reply.
func DoJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader = http.NoBody
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

// Decode unmarshals the recorded body into T.
func Decode[T any](t testing.TB, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func ptr[T any](v T) *T { return &v }

func CreateClient(t testing.TB, db *gorm.DB, name string) domain.Client {
	t.Helper()
	c := domain.Client{Name: name, Phone: ptr("11999990000"), CreatedBy: Actor}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func CreateProperty(t testing.TB, db *gorm.DB, clientID, name string) domain.Property {
	t.Helper()
	p := domain.Property{ClientID: clientID, Name: name, City: ptr("Rio Verde"), CreatedBy: Actor}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func CreatePlot(t testing.TB, db *gorm.DB, propertyID, name string) domain.Plot {
	t.Helper()
	p := domain.Plot{PropertyID: propertyID, Name: name, Crop: ptr("Soja"), AreaHectares: ptr(12.5), CreatedBy: Actor}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func CreateProduct(t testing.TB, db *gorm.DB, name string) domain.Product {
	t.Helper()
	p := domain.Product{Name: name, Type: domain.ProductFungicida, CreatedBy: Actor}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func CreateVisit(t testing.TB, db *gorm.DB, clientID, propertyID string, at time.Time) domain.Visit {
	t.Helper()
	v := domain.Visit{
		ClientID:      clientID,
		PropertyID:    propertyID,
		ScheduledDate: at.UTC(),
		Status:        domain.VisitScheduled,
		CreatedBy:     Actor,
	}
	require.NoError(t, db.Create(&v).Error)
	return v
}

func CreateEvaluation(t testing.TB, db *gorm.DB, visitID, plotID string) domain.PlotEvaluation {
	t.Helper()
	e := domain.PlotEvaluation{VisitID: visitID, PlotID: plotID, PestOrDisease: ptr("Ferrugem"), CreatedBy: Actor}
	require.NoError(t, db.Create(&e).Error)
	return e
}

// Farm is a client with one property and one plot.
type Farm struct {
	Client   domain.Client
	Property domain.Property
	Plot     domain.Plot
}

func CreateFarm(t testing.TB, db *gorm.DB, name string) Farm {
	t.Helper()
	c := CreateClient(t, db, name)
	p := CreateProperty(t, db, c.ID, "Fazenda "+name)
	return Farm{Client: c, Property: p, Plot: CreatePlot(t, db, p.ID, "Talhão "+name)}
}
