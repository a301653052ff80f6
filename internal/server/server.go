// Package server exposes the window builders over HTTP.
package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/karvel/fenestra/pkg/kernel"
	"github.com/karvel/fenestra/pkg/tessellate"
	"github.com/karvel/fenestra/pkg/window"
)

// Server holds the shared dependencies for the HTTP handlers.
type Server struct {
	kernel kernel.Kernel
	cfg    window.Config
	log    *log.Logger
}

// New creates a Server building against k with cfg.
func New(k kernel.Kernel, cfg window.Config, logger *log.Logger) *Server {
	return &Server{kernel: k, cfg: cfg, log: logger}
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", s.healthz)

	v1 := r.Group("/api/v1")
	v1.POST("/windows", s.buildWindow)
	v1.POST("/sills", s.buildSill)
	return r
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// partInfo is the per-part summary returned for a build.
type partInfo struct {
	Name string      `json:"name"`
	Min  kernel.Vec3 `json:"min"`
	Max  kernel.Vec3 `json:"max"`
}

type windowReq struct {
	Params      window.Params `json:"params"`
	IncludeMesh bool          `json:"include_mesh"`
}

func (s *Server) buildWindow(c *gin.Context) {
	var req windowReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	asm, err := window.BuildWindow(s.kernel, s.cfg, req.Params)
	if err != nil {
		s.fail(c, err)
		return
	}

	resp := gin.H{
		"ok":           true,
		"light_factor": asm.LightFactor,
		"parts":        partInfos(asm.Parts),
	}
	if req.IncludeMesh {
		meshes, err := tessellate.Parts(asm.Parts, s.kernel)
		if err != nil {
			s.log.Error("tessellation failed", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
			return
		}
		resp["meshes"] = meshes
	}

	s.log.Info("built window",
		"width", req.Params.OpeningWidth,
		"height", req.Params.OpeningHeight,
		"panes", req.Params.Panes,
		"light_factor", asm.LightFactor)
	c.JSON(http.StatusOK, resp)
}

type sillReq struct {
	Params      window.SillParams `json:"params"`
	IncludeMesh bool              `json:"include_mesh"`
}

func (s *Server) buildSill(c *gin.Context) {
	var req sillReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	solid, err := window.BuildSill(s.kernel, req.Params)
	if err != nil {
		s.fail(c, err)
		return
	}

	parts := []window.Part{{Name: "sill", Solid: solid}}
	resp := gin.H{"ok": true, "parts": partInfos(parts)}
	if req.IncludeMesh {
		meshes, err := tessellate.Parts(parts, s.kernel)
		if err != nil {
			s.log.Error("tessellation failed", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
			return
		}
		resp["meshes"] = meshes
	}

	s.log.Info("built sill", "width", req.Params.OpeningWidth)
	c.JSON(http.StatusOK, resp)
}

// fail maps build errors to HTTP responses. Domain errors carry a kind
// so clients can distinguish bad input from server trouble.
func (s *Server) fail(c *gin.Context, err error) {
	if kind := window.ErrorKind(err); kind != "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"ok":    false,
			"kind":  kind,
			"error": err.Error(),
		})
		return
	}
	s.log.Error("build failed", "err", err)
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

func partInfos(parts []window.Part) []partInfo {
	infos := make([]partInfo, 0, len(parts))
	for _, p := range parts {
		min, max := p.Solid.BoundingBox()
		infos = append(infos, partInfo{Name: p.Name, Min: min, Max: max})
	}
	return infos
}
