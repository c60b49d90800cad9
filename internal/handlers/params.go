package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// uuidParam lê :name; em erro já respondeu 400.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Identificador inválido.")
		return uuid.Nil, false
	}
	return id, true
}

// optionalUUIDQuery: ausente → uuid.Nil.
func optionalUUIDQuery(c *gin.Context, name string) (uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return uuid.Nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Identificador inválido.")
		return uuid.Nil, false
	}
	return id, true
}

// clockOverride lê ?at=<epoch ms>; só vale fora de produção.
func clockOverride(c *gin.Context, allowed bool, tz string) *time.Time {
	if !allowed {
		return nil
	}
	raw := c.Query("at")
	if raw == "" {
		return nil
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	now := timezone.FromMillis(ms, tz)
	return &now
}
