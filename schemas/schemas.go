// Package schemas embeds the JSON Schemas used to validate study definition
// files and participant results files before analysis.
package schemas

import _ "embed"

//go:embed study.schema.json
var StudySchemaJSON string

//go:embed results.schema.json
var ResultsSchemaJSON string
