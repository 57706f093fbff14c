// Package orm is a thin fluent wrapper over the shared GORM handle. It keeps
// repositories free of gorm plumbing and gives one place to hook telemetry.
package orm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AhmedFathyMohamed10/crm-system/pkg/database"
)

type Query struct {
	db *gorm.DB
}

// DB returns a query rooted at the shared database handle.
func DB() *Query {
	return &Query{db: database.DB}
}

// With wraps an explicit *gorm.DB, typically a transaction handle.
func With(db *gorm.DB) *Query {
	return &Query{db: db}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(cond string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(cond, args...)}
}

func (q *Query) Order(expr string) *Query {
	return &Query{db: q.db.Order(expr)}
}

func (q *Query) Limit(n int) *Query {
	return &Query{db: q.db.Limit(n)}
}

// Preload eager-loads the named association on the result set.
func (q *Query) Preload(assoc string) *Query {
	return &Query{db: q.db.Preload(assoc)}
}

// Get loads all matching rows into dest.
func (q *Query) Get(dest interface{}) error {
	return q.db.Find(dest).Error
}

// First loads the first matching row into dest.
// Returns gorm.ErrRecordNotFound when no row matches.
func (q *Query) First(dest interface{}) error {
	return q.db.First(dest).Error
}

// Count returns the number of matching rows.
func (q *Query) Count() (int64, error) {
	var n int64
	err := q.db.Count(&n).Error
	return n, err
}

// Create inserts v.
func (q *Query) Create(v interface{}) error {
	return q.db.Create(v).Error
}

// Save writes all fields of v, inserting when the primary key is zero.
func (q *Query) Save(v interface{}) error {
	return q.db.Save(v).Error
}

// Delete removes v by primary key.
func (q *Query) Delete(v interface{}) error {
	return q.db.Delete(v).Error
}

// Transaction runs fn inside a database transaction. The callback receives a
// Query bound to the transaction handle; returning an error rolls back.
func Transaction(fn func(tx *Query) error) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		return fn(With(tx))
	})
}

// IsNotFound reports whether err means "no matching row".
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
