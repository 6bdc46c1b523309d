package schemas

import (
	_ "embed"
)

// TaxonomySchema is the JSON Schema for taxonomy override files.
//
//go:embed taxonomy.schema.json
var TaxonomySchema string

// ReportSchema is the JSON Schema for analysis reports emitted as JSON.
//
//go:embed report.schema.json
var ReportSchema string
