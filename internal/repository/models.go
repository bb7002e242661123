package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Product struct {
	ID          int64
	Name        string
	Description string
	Category    string
	Price       pgtype.Numeric
}
