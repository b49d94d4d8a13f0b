package db

import sq "github.com/Masterminds/squirrel"

const (
	tableName   = "local_storage"
	columnKey   = "item_key"
	columnValue = "item_value"
)

// queries builds the statements shared by the SQL backends. Only the
// placeholder format differs between SQLite and PostgreSQL.
type queries struct {
	sb sq.StatementBuilderType
}

func newQueries(format sq.PlaceholderFormat) queries {
	return queries{sb: sq.StatementBuilder.PlaceholderFormat(format)}
}

func (q queries) get(key string) (string, []any, error) {
	return q.sb.Select(columnValue).
		From(tableName).
		Where(sq.Eq{columnKey: key}).
		ToSql()
}

func (q queries) upsert(key, value string) (string, []any, error) {
	return q.sb.Insert(tableName).
		Columns(columnKey, columnValue).
		Values(key, value).
		Suffix("ON CONFLICT (" + columnKey + ") DO UPDATE SET " +
			columnValue + " = excluded." + columnValue + ", updated_at = CURRENT_TIMESTAMP").
		ToSql()
}

func (q queries) remove(key string) (string, []any, error) {
	return q.sb.Delete(tableName).
		Where(sq.Eq{columnKey: key}).
		ToSql()
}

func (q queries) keys() (string, []any, error) {
	return q.sb.Select(columnKey).
		From(tableName).
		OrderBy(columnKey).
		ToSql()
}
