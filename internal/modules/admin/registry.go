package admin

import "github.com/blogicum/blogicum/internal/models"

func init() {
	RegisterModels(Default)
}

// RegisterModels registers the blog's models on site.
func RegisterModels(site *Site) {
	site.Register(&ModelAdmin[models.Category]{
		Name:           "categories",
		Verbose:        "Categories",
		ListDisplay:    []string{"id", "title", "slug", "is_published", "created_at"},
		ListFilter:     []Filter{{Field: "is_published", Kind: FilterBool}},
		SearchFields:   []string{"categories.title", "categories.slug"},
		ReadonlyFields: []string{"created_at"},
		Ordering:       []string{"title"},
	})

	site.Register(&ModelAdmin[models.Location]{
		Name:           "locations",
		Verbose:        "Locations",
		ListDisplay:    []string{"id", "name", "slug", "is_published", "created_at"},
		ListFilter:     []Filter{{Field: "is_published", Kind: FilterBool}},
		SearchFields:   []string{"locations.name"},
		ReadonlyFields: []string{"created_at"},
		Ordering:       []string{"name"},
	})

	site.Register(&ModelAdmin[models.Post]{
		Name:    "posts",
		Verbose: "Posts",
		ListDisplay: []string{
			"id", "title", "author", "category", "location",
			"is_published", "pub_date", "created_at",
		},
		ListFilter: []Filter{
			{Field: "is_published", Kind: FilterBool},
			{Field: "category_id", Kind: FilterRelation},
			{Field: "location_id", Kind: FilterRelation},
			{Field: "pub_date", Kind: FilterDate},
		},
		SearchFields:   []string{"posts.title", "posts.text", "users.username"},
		SearchJoins:    []string{"LEFT JOIN users ON users.id = posts.author_id"},
		ListEditable:   []string{"is_published"},
		ReadonlyFields: []string{"created_at"},
		Ordering:       []string{"-pub_date"},
		Preload:        []string{"Author", "Category", "Location"},
	})

	site.Register(&ModelAdmin[models.User]{
		Name:           "users",
		Verbose:        "Users",
		ListDisplay:    []string{"id", "username", "name", "is_staff", "is_superuser", "last_login"},
		ListFilter:     []Filter{{Field: "is_staff", Kind: FilterBool}},
		SearchFields:   []string{"users.username", "users.name"},
		ReadonlyFields: []string{"created_at", "last_login"},
		Ordering:       []string{"username"},
	})
}
