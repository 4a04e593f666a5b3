package dto

import "time"

// AsOfQuery binds reports keyed to a single as-of date. Callers wanting a
// consistent multi-report snapshot should pass the same asOf to each report.
type AsOfQuery struct {
	AsOf time.Time `form:"asOf" time_format:"2006-01-02" binding:"required"`
}

// DateRangeQuery binds reports keyed to a [from, to] window.
type DateRangeQuery struct {
	From time.Time `form:"from" time_format:"2006-01-02" binding:"required"`
	To   time.Time `form:"to" time_format:"2006-01-02" binding:"required"`
}
