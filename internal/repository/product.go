package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertProduct = `
INSERT INTO products (name, description, category, price)
VALUES ($1, $2, $3, $4)
RETURNING id, name, description, category, price
`

type InsertProductParams struct {
	Name        string
	Description string
	Category    string
	Price       pgtype.Numeric
}

func (q *Queries) InsertProduct(c context.Context, arg InsertProductParams) (Product, error) {
	row := q.db.QueryRow(c, insertProduct,
		arg.Name,
		arg.Description,
		arg.Category,
		arg.Price,
	)
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price)
	return p, err
}

const findProducts = `
SELECT id, name, description, category, price FROM products
`

func (q *Queries) FindProducts(c context.Context) ([]Product, error) {
	rows, err := q.db.Query(c, findProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const findProductsByCategory = `
SELECT id, name, description, category, price FROM products
WHERE category = $1
`

func (q *Queries) FindProductsByCategory(c context.Context, category string) ([]Product, error) {
	rows, err := q.db.Query(c, findProductsByCategory, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const findProductById = `
SELECT id, name, description, category, price FROM products
WHERE id = $1
`

func (q *Queries) FindProductById(c context.Context, id int64) (Product, error) {
	row := q.db.QueryRow(c, findProductById, id)
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price)
	return p, err
}

const updateProduct = `
UPDATE products
SET name = $1, description = $2, category = $3, price = $4
WHERE id = $5
RETURNING id, name, description, category, price
`

type UpdateProductParams struct {
	Name        string
	Description string
	Category    string
	Price       pgtype.Numeric
	ID          int64
}

func (q *Queries) UpdateProduct(c context.Context, arg UpdateProductParams) (Product, error) {
	row := q.db.QueryRow(c, updateProduct,
		arg.Name,
		arg.Description,
		arg.Category,
		arg.Price,
		arg.ID,
	)
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price)
	return p, err
}

const deleteProduct = `
DELETE FROM products WHERE id = $1
`

// DeleteProduct removes the row when present. Deleting an absent id is
// not an error.
func (q *Queries) DeleteProduct(c context.Context, id int64) error {
	_, err := q.db.Exec(c, deleteProduct, id)
	return err
}
