// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import "encoding/json"

var Columns = struct {
	Record struct {
		Resource, ID, Position, Body string
	}
}{
	Record: struct {
		Resource, ID, Position, Body string
	}{
		Resource: "resource",
		ID:       "id",
		Position: "position",
		Body:     "body",
	},
}

var Tables = struct {
	Record struct {
		Name, Alias string
	}
}{
	Record: struct {
		Name, Alias string
	}{
		Name:  "records",
		Alias: "t",
	},
}

type RecordRow struct {
	tableName struct{} `pg:"records,alias:t,discard_unknown_columns"`

	Resource string          `pg:"resource,pk"`
	ID       int             `pg:"id,pk"`
	Position int64           `pg:"position,use_zero"`
	Body     json.RawMessage `pg:"body,type:jsonb"`
}
