package repository

import sq "github.com/Masterminds/squirrel"

// psql builds PostgreSQL statements with dollar placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// emissionColumns is the select list shared by every emissions query, in scan order.
var emissionColumns = []string{"id", "target_path", "bytes", "fingerprint", "created_at"}
