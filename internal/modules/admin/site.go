// Package admin implements the administrative interface: a registry of
// declarative per-model configurations served as a JSON API.
package admin

import (
	"fmt"
	"sync"

	"github.com/blogicum/blogicum/internal/config"
	"github.com/blogicum/blogicum/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Registrant is a model configuration that can be served by a Site.
type Registrant interface {
	AdminName() string
	Info() ModelInfo
	mount(rg *gin.RouterGroup, env *env) error
}

// env is what a mounted model needs from its site.
type env struct {
	db          *gorm.DB
	log         *zap.Logger
	listPerPage int
}

// Site is the registry of model configurations. Registration happens once at startup.
type Site struct {
	mu          sync.RWMutex
	Header      string
	Title       string
	IndexTitle  string
	ListPerPage int

	order  []string
	models map[string]Registrant
}

// Default is the process-wide admin site.
var Default = NewSite()

func NewSite() *Site {
	return &Site{
		Header:      "Blog administration",
		Title:       "Blogicum admin",
		IndexTitle:  "Blog management",
		ListPerPage: 10,
		models:      make(map[string]Registrant),
	}
}

// Configure applies the admin section of the application config.
func (s *Site) Configure(cfg config.AdminConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cfg.SiteHeader != "" {
		s.Header = cfg.SiteHeader
	}
	if cfg.SiteTitle != "" {
		s.Title = cfg.SiteTitle
	}
	if cfg.IndexTitle != "" {
		s.IndexTitle = cfg.IndexTitle
	}
	if cfg.ListPerPage > 0 {
		s.ListPerPage = cfg.ListPerPage
	}
}

// Register adds a model configuration. Registering a name twice is a programming
// error and panics.
func (s *Site) Register(r Registrant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := r.AdminName()
	if _, ok := s.models[name]; ok {
		panic(fmt.Sprintf("admin: model %q is already registered", name))
	}
	s.models[name] = r
	s.order = append(s.order, name)
}

// IsRegistered reports whether a model name is registered.
func (s *Site) IsRegistered(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.models[name]
	return ok
}

// Models describes every registered model in registration order.
func (s *Site) Models() []ModelInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ModelInfo, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.models[name].Info())
	}
	return out
}

// Mount serves the site index and every registered model under rg.
func (s *Site) Mount(rg *gin.RouterGroup, db *gorm.DB, log *zap.Logger) error {
	s.mu.RLock()
	e := &env{db: db, log: log, listPerPage: s.ListPerPage}
	registrants := make([]Registrant, 0, len(s.order))
	for _, name := range s.order {
		registrants = append(registrants, s.models[name])
	}
	s.mu.RUnlock()

	rg.GET("", s.index)
	for _, r := range registrants {
		if err := r.mount(rg, e); err != nil {
			return fmt.Errorf("admin: mount %s: %w", r.AdminName(), err)
		}
	}
	return nil
}

func (s *Site) index(c *gin.Context) {
	s.mu.RLock()
	header, title, indexTitle := s.Header, s.Title, s.IndexTitle
	s.mu.RUnlock()
	response.OK(c, gin.H{
		"site_header": header,
		"site_title":  title,
		"index_title": indexTitle,
		"models":      s.Models(),
	})
}
