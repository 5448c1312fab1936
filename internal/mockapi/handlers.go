package mockapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AssoGestion/asso_gestion_app/internal/adapters/memory"
	"github.com/AssoGestion/asso_gestion_app/internal/core/ports"
)

// The CRUD handlers share these helpers; gin methods cannot be generic, so
// each route closes over its store and entity name.

type sortable interface {
	EntityID() string
	Timestamps() (time.Time, time.Time)
}

// respondList sorts, paginates and wraps items in the list envelope.
func respondList[T sortable](c *gin.Context, items []T) {
	p := listParams(c)
	memory.SortRecords(items, p.Sort)
	c.JSON(http.StatusOK, memory.Paginate(items, p.Page, p.Limit))
}

func getByID[T any, PT interface {
	ports.Mutable
	*T
}](c *gin.Context, store *memory.Store[T, PT], entity string) {
	item, found, err := store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if !found {
		respondError(c, http.StatusNotFound, entity+" not found", nil)
		return
	}
	c.JSON(http.StatusOK, item)
}

func deleteByID[T any, PT interface {
	ports.Mutable
	*T
}](s *Server, c *gin.Context, store *memory.Store[T, PT], entity string) {
	id := c.Param("id")
	deleted, err := store.Delete(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if !deleted {
		respondError(c, http.StatusNotFound, entity+" not found", nil)
		return
	}
	s.audit(c, "delete", entity, id, "")
	c.Status(http.StatusNoContent)
}
