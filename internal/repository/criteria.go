package repository

import (
	"reflect"

	"gorm.io/gorm"
)

// Criteria is a dynamic query builder: every add is skipped when its value
// is absent, and everything that survives is folded with AND. Repositories
// apply the filter part for counting and the full criteria for fetching.
type Criteria struct {
	conds   []func(*gorm.DB) *gorm.DB
	sortCol string
	sortDsc bool
	page    int
	limit   int
	selects []string
}

func NewCriteria() *Criteria {
	return &Criteria{}
}

// present unwraps pointers and reports whether a filter value should bind.
// nil, nil pointers and empty strings all mean "no constraint".
func present(v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.String && rv.Len() == 0 {
		return nil, false
	}
	return rv.Interface(), true
}

func (c *Criteria) Eq(column string, value any) *Criteria {
	if v, ok := present(value); ok {
		c.conds = append(c.conds, func(db *gorm.DB) *gorm.DB {
			return db.Where(column+" = ?", v)
		})
	}
	return c
}

func (c *Criteria) Ne(column string, value any) *Criteria {
	if v, ok := present(value); ok {
		c.conds = append(c.conds, func(db *gorm.DB) *gorm.DB {
			return db.Where(column+" <> ?", v)
		})
	}
	return c
}

// Contains matches a case-insensitive substring.
func (c *Criteria) Contains(column string, value string) *Criteria {
	if value != "" {
		c.conds = append(c.conds, func(db *gorm.DB) *gorm.DB {
			return db.Where(column+" ILIKE ?", "%"+value+"%")
		})
	}
	return c
}

func (c *Criteria) In(column string, values any) *Criteria {
	if values == nil {
		return c
	}
	rv := reflect.ValueOf(values)
	if rv.Kind() != reflect.Slice || rv.Len() == 0 {
		return c
	}
	c.conds = append(c.conds, func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" IN ?", values)
	})
	return c
}

func (c *Criteria) Gte(column string, value any) *Criteria {
	if v, ok := present(value); ok {
		c.conds = append(c.conds, func(db *gorm.DB) *gorm.DB {
			return db.Where(column+" >= ?", v)
		})
	}
	return c
}

func (c *Criteria) Lte(column string, value any) *Criteria {
	if v, ok := present(value); ok {
		c.conds = append(c.conds, func(db *gorm.DB) *gorm.DB {
			return db.Where(column+" <= ?", v)
		})
	}
	return c
}

func (c *Criteria) Between(column string, from, to any) *Criteria {
	return c.Gte(column, from).Lte(column, to)
}

func (c *Criteria) NotNull(column string) *Criteria {
	c.conds = append(c.conds, func(db *gorm.DB) *gorm.DB {
		return db.Where(column + " IS NOT NULL")
	})
	return c
}

// Where appends a raw condition unconditionally.
func (c *Criteria) Where(query string, args ...any) *Criteria {
	c.conds = append(c.conds, func(db *gorm.DB) *gorm.DB {
		return db.Where(query, args...)
	})
	return c
}

// AddIf runs fn against the builder only when cond holds.
func (c *Criteria) AddIf(cond bool, fn func(*Criteria)) *Criteria {
	if cond {
		fn(c)
	}
	return c
}

func (c *Criteria) SortBy(column string, desc bool) *Criteria {
	c.sortCol = column
	c.sortDsc = desc
	return c
}

func (c *Criteria) Paginate(page PageRequest) *Criteria {
	page = page.Normalize()
	c.page = page.Page
	c.limit = page.Limit
	return c
}

func (c *Criteria) Select(columns ...string) *Criteria {
	c.selects = columns
	return c
}

// Filter applies only the accumulated predicates. With no predicates the
// query is unconstrained, never match-nothing.
func (c *Criteria) Filter(db *gorm.DB) *gorm.DB {
	for _, cond := range c.conds {
		db = cond(db)
	}
	return db
}

// Apply applies predicates plus sort, paging and projection.
func (c *Criteria) Apply(db *gorm.DB) *gorm.DB {
	db = c.Filter(db)
	if len(c.selects) > 0 {
		db = db.Select(c.selects)
	}
	if c.sortCol != "" {
		order := c.sortCol
		if c.sortDsc {
			order += " DESC"
		}
		db = db.Order(order)
	}
	if c.limit > 0 {
		db = db.Offset((c.page - 1) * c.limit).Limit(c.limit)
	}
	return db
}
