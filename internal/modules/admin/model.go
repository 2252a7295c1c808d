package admin

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/blogicum/blogicum/internal/middleware"
	"github.com/blogicum/blogicum/internal/models"
	"github.com/blogicum/blogicum/internal/pkg/pagination"
	"github.com/blogicum/blogicum/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// ModelAdmin declares how one model is listed, filtered, searched and edited.
type ModelAdmin[T any] struct {
	// Name is the URL segment, e.g. "posts".
	Name    string
	Verbose string

	// ListDisplay are JSON field names shown per row. Relations render as labels.
	ListDisplay []string
	ListFilter  []Filter
	// SearchFields are qualified columns matched by ?q=, e.g. "users.username".
	SearchFields []string
	// SearchJoins are joins needed by SearchFields outside the model's table.
	SearchJoins    []string
	ListEditable   []string
	ReadonlyFields []string
	// Ordering is the default order, "-" prefix for descending.
	Ordering    []string
	ListPerPage int
	Preload     []string
	// Actions defaults to PublishActions when the model has an is_published column.
	Actions []Action

	schema *schema.Schema
	env    *env
}

// ModelInfo is the public description of a registered model.
type ModelInfo struct {
	Name           string   `json:"name"`
	Verbose        string   `json:"verbose_name"`
	ListDisplay    []string `json:"list_display"`
	ListFilter     []Filter `json:"list_filter"`
	SearchFields   []string `json:"search_fields"`
	ListEditable   []string `json:"list_editable"`
	ReadonlyFields []string `json:"readonly_fields"`
	Ordering       []string `json:"ordering"`
	ListPerPage    int      `json:"list_per_page,omitempty"`
	Actions        []Action `json:"actions"`
}

func (m *ModelAdmin[T]) AdminName() string { return m.Name }

func (m *ModelAdmin[T]) Info() ModelInfo {
	return ModelInfo{
		Name:           m.Name,
		Verbose:        m.Verbose,
		ListDisplay:    nonNil(m.ListDisplay),
		ListFilter:     nonNil(m.ListFilter),
		SearchFields:   nonNil(m.SearchFields),
		ListEditable:   nonNil(m.ListEditable),
		ReadonlyFields: nonNil(m.ReadonlyFields),
		Ordering:       nonNil(m.Ordering),
		ListPerPage:    m.ListPerPage,
		Actions:        nonNil(m.actions()),
	}
}

// actions returns the configured actions, or PublishActions for publishable models.
func (m *ModelAdmin[T]) actions() []Action {
	if m.Actions != nil {
		return m.Actions
	}
	var zero T
	if _, ok := fieldByJSONName(reflect.ValueOf(zero), "is_published"); ok {
		return PublishActions
	}
	return nil
}

// mount serves a copy of m bound to e, so one registration can back several sites.
func (m *ModelAdmin[T]) mount(rg *gin.RouterGroup, e *env) error {
	stmt := &gorm.Statement{DB: e.db}
	if err := stmt.Parse(new(T)); err != nil {
		return err
	}
	bound := *m
	bound.schema = stmt.Schema
	bound.env = e
	bound.Actions = m.actions()
	return bound.serve(rg)
}

func (m *ModelAdmin[T]) serve(rg *gin.RouterGroup) error {
	for _, f := range m.ListFilter {
		if m.schema.LookUpField(f.Field) == nil {
			return fmt.Errorf("list filter %q is not a column", f.Field)
		}
	}
	for _, o := range m.Ordering {
		if m.column(strings.TrimPrefix(o, "-")) == nil {
			return fmt.Errorf("ordering %q is not a column", o)
		}
	}
	for _, f := range m.ListEditable {
		if m.column(f) == nil {
			return fmt.Errorf("list editable %q is not a column", f)
		}
	}

	g := rg.Group("/" + m.Name)
	g.GET("", m.changelist)
	g.GET("/:id", m.detail)
	g.PATCH("/:id", m.inlineEdit)
	g.POST("/actions/:action", m.runAction)
	return nil
}

// column resolves a JSON or column name to a persisted field.
func (m *ModelAdmin[T]) column(name string) *schema.Field {
	f := m.schema.LookUpField(name)
	if f == nil || f.DBName == "" {
		return nil
	}
	return f
}

func (m *ModelAdmin[T]) query(c *gin.Context) *gorm.DB {
	return m.env.db.WithContext(c.Request.Context()).Model(new(T))
}

func (m *ModelAdmin[T]) withPreload(tx *gorm.DB) *gorm.DB {
	for _, rel := range m.Preload {
		tx = tx.Preload(rel)
	}
	return tx
}

// changelist GET /{name}
func (m *ModelAdmin[T]) changelist(c *gin.Context) {
	table := m.schema.Table
	tx := m.query(c)

	for _, f := range m.ListFilter {
		var err error
		if tx, err = f.apply(tx, table, c.Request.URL.Query(), time.Local); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	if terms := strings.Fields(c.Query("q")); len(terms) > 0 && len(m.SearchFields) > 0 {
		for _, join := range m.SearchJoins {
			tx = tx.Joins(join)
		}
		for _, term := range terms {
			tx = tx.Where(m.searchClause(), m.searchArgs(term)...)
		}
	}

	ordering := m.Ordering
	if raw := c.Query("ordering"); raw != "" {
		ordering = strings.Split(raw, ",")
	}
	for _, o := range ordering {
		desc := strings.HasPrefix(o, "-")
		f := m.column(strings.TrimPrefix(o, "-"))
		if f == nil {
			response.BadRequest(c, fmt.Sprintf("cannot order by %q", o))
			return
		}
		expr := table + "." + f.DBName
		if desc {
			expr += " DESC"
		}
		tx = tx.Order(expr)
	}
	tx = tx.Order(table + ".id DESC")

	perPage := m.ListPerPage
	if perPage <= 0 {
		perPage = m.env.listPerPage
	}
	var rows []T
	pag, err := pagination.Paginate(tx, pagination.FromContext(c, perPage), &rows, m.withPreload)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	out := make([]map[string]any, len(rows))
	for i := range rows {
		out[i] = displayRow(&rows[i], m.ListDisplay)
	}
	response.Paged(c, out, pag, m.Info())
}

func (m *ModelAdmin[T]) searchClause() string {
	parts := make([]string, len(m.SearchFields))
	for i, f := range m.SearchFields {
		parts[i] = "LOWER(" + f + ") LIKE ?"
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

func (m *ModelAdmin[T]) searchArgs(term string) []any {
	pattern := "%" + strings.ToLower(term) + "%"
	args := make([]any, len(m.SearchFields))
	for i := range args {
		args[i] = pattern
	}
	return args
}

// detail GET /{name}/:id
func (m *ModelAdmin[T]) detail(c *gin.Context) {
	obj, ok := m.load(c, m.withPreload(m.query(c)))
	if !ok {
		return
	}
	response.OK(c, gin.H{
		"object":          obj,
		"label":           labelOf(obj),
		"readonly_fields": nonNil(m.ReadonlyFields),
	})
}

// inlineEdit PATCH /{name}/:id accepts only the list-editable fields.
func (m *ModelAdmin[T]) inlineEdit(c *gin.Context) {
	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if len(body) == 0 {
		response.BadRequest(c, "nothing to update")
		return
	}
	columns := make([]string, 0, len(body))
	fields := map[string]string{}
	for key := range body {
		f := m.column(key)
		if f == nil || !contains(m.ListEditable, key) {
			fields[key] = ErrNotEditable.Error()
			continue
		}
		columns = append(columns, f.DBName)
	}
	if len(fields) > 0 {
		response.ValidationFailed(c, fields)
		return
	}

	obj, ok := m.load(c, m.query(c))
	if !ok {
		return
	}
	raw, err := json.Marshal(body)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if err := json.Unmarshal(raw, obj); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := models.Validate(obj); err != nil {
		response.Error(c, err)
		return
	}
	if err := m.env.db.WithContext(c.Request.Context()).Model(obj).Select(columns).Updates(obj).Error; err != nil {
		response.InternalError(c, err)
		return
	}
	m.env.log.Info("admin inline edit",
		zap.String("model", m.Name),
		zap.Strings("fields", columns),
		zap.Uint("user_id", middleware.CurrentUserID(c)),
	)
	response.OK(c, displayRow(obj, m.ListDisplay))
}

type actionRequest struct {
	IDs []uint `json:"ids"`
}

// runAction POST /{name}/actions/:action
func (m *ModelAdmin[T]) runAction(c *gin.Context) {
	action, ok := m.action(c.Param("action"))
	if !ok {
		response.BadRequest(c, ErrUnknownAction.Error())
		return
	}
	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	result, err := action.run(m.env.db.WithContext(c.Request.Context()), new(T), req.IDs)
	if err != nil {
		if errors.Is(err, ErrNoSelection) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	m.env.log.Info("admin action",
		zap.String("model", m.Name),
		zap.String("action", action.Name),
		zap.Int64("count", result.Count),
		zap.Uint("user_id", middleware.CurrentUserID(c)),
	)
	response.OK(c, result)
}

func (m *ModelAdmin[T]) action(name string) (Action, bool) {
	for _, a := range m.Actions {
		if a.Name == name {
			return a, true
		}
	}
	return Action{}, false
}

// load fetches the row named by the :id parameter, writing a 404 when it is absent.
func (m *ModelAdmin[T]) load(c *gin.Context, tx *gorm.DB) (*T, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, strconv.IntSize)
	if err != nil {
		response.NotFound(c)
		return nil, false
	}
	obj := new(T)
	if err := tx.Take(obj, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return nil, false
		}
		response.InternalError(c, err)
		return nil, false
	}
	return obj, true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func nonNil[E any](s []E) []E {
	if s == nil {
		return []E{}
	}
	return s
}
