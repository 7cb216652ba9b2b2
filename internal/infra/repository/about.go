package repository

import (
	"context"

	"tripcart/internal/infra"
	"tripcart/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AboutRepository struct {
	db DBTX
}

func NewAboutRepository(db DBTX) *AboutRepository {
	return &AboutRepository{db: db}
}

const aboutColumns = `id, full_name, github, linkedin, image_url`

func (r *AboutRepository) List(ctx context.Context) ([]*readmodel.AboutEntryRM, error) {
	rows, err := r.db.Query(ctx, `SELECT `+aboutColumns+` FROM about_entries ORDER BY full_name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list about entries", err)
	}
	defer rows.Close()

	var result []*readmodel.AboutEntryRM
	for rows.Next() {
		rm, err := scanAboutEntry(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan about entry row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate about entries", err)
	}
	return result, nil
}

func (r *AboutRepository) Create(ctx context.Context, fullName string, github, linkedin, imageURL *string) (*readmodel.AboutEntryRM, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO about_entries (id, full_name, github, linkedin, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+aboutColumns,
		uuid.New(), fullName, github, linkedin, imageURL)

	rm, err := scanAboutEntry(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create about entry", err)
	}
	return rm, nil
}

func (r *AboutRepository) Update(ctx context.Context, id uuid.UUID, fullName string, github, linkedin, imageURL *string) (*readmodel.AboutEntryRM, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE about_entries
		SET full_name = $2, github = $3, linkedin = $4, image_url = $5
		WHERE id = $1
		RETURNING `+aboutColumns,
		id, fullName, github, linkedin, imageURL)

	rm, err := scanAboutEntry(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("about entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update about entry", err)
	}
	return rm, nil
}

func (r *AboutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM about_entries WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete about entry", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("about entry not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanAboutEntry(row pgx.Row) (*readmodel.AboutEntryRM, error) {
	var rm readmodel.AboutEntryRM
	if err := row.Scan(&rm.ID, &rm.FullName, &rm.GitHub, &rm.LinkedIn, &rm.ImageURL); err != nil {
		return nil, err
	}
	return &rm, nil
}
