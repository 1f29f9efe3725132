package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gulfpulse/gulfpulse/charts"
	"github.com/gulfpulse/gulfpulse/dataset"
)

// ============================================================================
// ROUTES — JSON surface over the dataset and chart builders
// ============================================================================
// Every handler reads the immutable dataset and recomputes its chart spec
// per request; nothing is cached, nothing is mutated.
// ============================================================================

// RegisterRoutes wires the API onto the router.
func RegisterRoutes(r *gin.Engine, ds *dataset.Dataset) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/dataset", func(c *gin.Context) {
		c.JSON(http.StatusOK, ds)
	})
	api.GET("/charts", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"charts": charts.Names})
	})
	api.GET("/charts/:name", chartHandler(ds))
	api.GET("/world-ranking", worldRankingHandler(ds))
	api.GET("/narrative", narrativeHandler(ds))
}

func chartHandler(ds *dataset.Dataset) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := charts.Params{
			Method:  c.Query("method"),
			Entity:  c.Query("entity"),
			Compare: c.Query("compare"),
		}
		if h := c.Query("highlight"); h != "" {
			params.Highlight = strings.Split(h, ",")
		}

		spec, err := charts.Build(c.Param("name"), ds, params)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, spec)
	}
}

func worldRankingHandler(ds *dataset.Dataset) gin.HandlerFunc {
	return func(c *gin.Context) {
		method, err := methodOrDefault(c.Query("method"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		table, err := charts.WorldRankingTable(ds, method)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, table)
	}
}

func narrativeHandler(ds *dataset.Dataset) gin.HandlerFunc {
	return func(c *gin.Context) {
		method, err := methodOrDefault(c.Query("method"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		n, err := charts.BuildNarrative(ds, method)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, n)
	}
}

func methodOrDefault(s string) (dataset.Method, error) {
	if s == "" {
		return dataset.MethodWeighted, nil
	}
	return dataset.ParseMethod(s)
}

// abortWithError maps the dataset error taxonomy onto HTTP statuses.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, dataset.ErrEntityNotFound):
		status = http.StatusNotFound
	case errors.Is(err, dataset.ErrInvalidParameter):
		status = http.StatusBadRequest
	case errors.Is(err, dataset.ErrDataUnavailable):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
