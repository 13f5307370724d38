package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/Bodzaman/cottage-pos-menu-service/internal/item/dto"
	"github.com/Bodzaman/cottage-pos-menu-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, m *model.MenuItem) error {
	query := `
        INSERT INTO menu_items (
            id, category_id, name, item_name, variant_name, protein_type,
            kitchen_display_name, description, price, image_url,
            display_order, active, created_at, updated_at
        )
        VALUES (
            :id, :category_id, :name, :item_name, :variant_name, :protein_type,
            :kitchen_display_name, :description, :price, :image_url,
            :display_order, :active, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, m)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.MenuItem, error) {
	var item model.MenuItem
	query := `SELECT * FROM menu_items WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &item, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ItemFilters) ([]model.MenuItem, int, error) {
	var items []model.MenuItem
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.CategoryID != nil && *f.CategoryID != "" {
		conditions = append(conditions, "category_id = :category_id")
		args["category_id"] = *f.CategoryID
	}
	if f.Active != nil {
		conditions = append(conditions, "active = :active")
		args["active"] = *f.Active
	}
	if f.SearchQuery != "" {
		conditions = append(conditions, "(name ILIKE :search OR item_name ILIKE :search OR description ILIKE :search)")
		args["search"] = "%" + f.SearchQuery + "%"
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT count(*) FROM menu_items" + whereClause
	rows, err := r.DB.NamedQueryContext(ctx, countQuery, args)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	if rows.Next() {
		rows.Scan(&count)
	}

	query := "SELECT * FROM menu_items" + whereClause + " ORDER BY display_order ASC, name ASC"

	if f.PageSize > 0 {
		offset := (f.Page - 1) * f.PageSize
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, offset)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, &items, args); err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *PGRepository) Update(ctx context.Context, m *model.MenuItem) error {
	query := `
        UPDATE menu_items
        SET category_id = :category_id,
            name = :name,
            item_name = :item_name,
            variant_name = :variant_name,
            protein_type = :protein_type,
            kitchen_display_name = :kitchen_display_name,
            description = :description,
            price = :price,
            image_url = :image_url,
            display_order = :display_order,
            active = :active,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, m)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM menu_items WHERE id = $1", id)
	return err
}
