package works

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"flixhub/internal/auth"
	"flixhub/internal/filterstate"
	"flixhub/internal/workid"
	"flixhub/pkg/utils"
)

type Handler struct {
	Svc *Service

	// OnReload is called with the record count after a successful reload.
	OnReload func(records int)
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.index)                         // GET /?<filters>&work=..
	r.GET("/works", h.list)                     // GET /works?countries=..&search=..
	r.GET("/works/:id", h.getByID)              // GET /works/:id or /works/:id.html
	r.POST("/records/:id/select", h.selectByID) // POST /records/:id/select?<filters>
	r.GET("/facets", h.facets)                  // GET /facets
}

// RegisterAdmin adds the operator routes. Callers guard rg with
// auth.AuthMiddleware.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.POST("/reload", h.reload) // POST /admin/reload
}

func (h *Handler) list(c *gin.Context) {
	d := h.Svc.Decode(c.Request.URL.RawQuery)
	res := h.Svc.Search(d.State)

	limit := parseInt(c.Query("limit"), 0)
	offset := parseInt(c.Query("offset"), 0)
	items := page(res.Items, limit, offset)

	c.JSON(http.StatusOK, gin.H{
		"total":  res.Total,
		"query":  res.Query,
		"limit":  limit,
		"offset": offset,
		"items":  items,
	})
}

// index is where shared links land: the decoded state, its first page of
// results and, when the link names a work, that work or a not_found marker.
func (h *Handler) index(c *gin.Context) {
	d := h.Svc.Decode(c.Request.URL.RawQuery)
	res := h.Svc.Search(d.State)

	body := gin.H{
		"state": d.State,
		"total": res.Total,
		"query": res.Query,
		"items": page(res.Items, parseInt(c.Query("limit"), 0), 0),
	}
	if d.Work != "" {
		r, err := h.Svc.Resolve(d.Work)
		switch {
		case err == nil:
			body["work"] = r
		case errors.Is(err, workid.ErrWorkNotFound):
			body["not_found"] = d.Work
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "resolve failed"})
			return
		}
	}
	c.JSON(http.StatusOK, body)
}

func (h *Handler) getByID(c *gin.Context) {
	id := c.Param("id")
	workID, isPage := filterstate.WorkIDFromPage(id)
	if !isPage {
		workID = id
	}

	res, err := h.Svc.Resolve(workID)
	if err != nil {
		if errors.Is(err, workid.ErrWorkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found", "work": workID})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "resolve failed"})
		return
	}

	if isPage {
		c.Redirect(http.StatusFound, "/?"+filterstate.ParamWork+"="+url.QueryEscape(workID))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) selectByID(c *gin.Context) {
	id := c.Param("id")
	d := h.Svc.Decode(c.Request.URL.RawQuery)

	sel, err := h.Svc.Select(id, d.State)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found", "id": id})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "select failed"})
		return
	}
	c.JSON(http.StatusOK, sel)
}

func (h *Handler) facets(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.Facets())
}

func (h *Handler) reload(c *gin.Context) {
	log := utils.Named("works")
	if claims := auth.MustGetClaims(c); claims != nil {
		log.Info().Str("subject", claims.Subject).Msg("catalog reload requested")
	}

	n, err := h.Svc.Reload(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("reload failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "reload failed"})
		return
	}
	if h.OnReload != nil {
		h.OnReload(n)
	}
	c.JSON(http.StatusOK, gin.H{"records": n})
}

func page[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func parseInt(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
