package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"path/filepath"

	"lab-requests/internal/domain"
	"lab-requests/internal/service"

	_ "github.com/mattn/go-sqlite3"
)

type sqlRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string, migrationScriptPath string) (service.RequestRepository, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	script, err := os.ReadFile(migrationScriptPath)
	if err != nil {
		return nil, err
	}

	if _, err = db.Exec(string(script)); err != nil {
		return nil, err
	}

	log.Println("✅ Base de dados SQLite conectada e migrações aplicadas.")
	return &sqlRepository{db: db}, nil
}

func (r *sqlRepository) CreateRequest(ctx context.Context, req *domain.LabRequest) (int64, error) {
	query := `INSERT INTO lab_requests (title, description, student_name, deadline, status, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		req.Title,
		nullString(req.Description),
		req.StudentName,
		req.Deadline,
		string(req.Status),
		req.CreatedAt,
		req.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *sqlRepository) GetRequestByID(ctx context.Context, id int64) (*domain.LabRequest, error) {
	query := `SELECT id, title, description, student_name, deadline, status, created_at, updated_at
	          FROM lab_requests WHERE id = ?`

	row := r.db.QueryRowContext(ctx, query, id)

	req, err := scanRequest(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Nenhuma solicitação encontrada, não é um erro fatal
		}
		return nil, err
	}
	return req, nil
}

// ListRequests devolve a página pedida ordenada por deadline; o id desempata
// para manter a ordem estável entre chamadas.
func (r *sqlRepository) ListRequests(ctx context.Context, filter *domain.Status, skip, limit int) ([]*domain.LabRequest, error) {
	query := `SELECT id, title, description, student_name, deadline, status, created_at, updated_at
	          FROM lab_requests`
	args := []any{}

	if filter != nil {
		query += ` WHERE status = ?`
		args = append(args, string(*filter))
	}

	query += ` ORDER BY deadline, id LIMIT ? OFFSET ?`
	args = append(args, limit, skip)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*domain.LabRequest
	for rows.Next() {
		req, err := scanRequest(rows.Scan)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *sqlRepository) UpdateRequest(ctx context.Context, req *domain.LabRequest) error {
	query := `UPDATE lab_requests
	          SET title = ?, description = ?, student_name = ?, deadline = ?, status = ?, updated_at = ?
	          WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		req.Title,
		nullString(req.Description),
		req.StudentName,
		req.Deadline,
		string(req.Status),
		req.UpdatedAt,
		req.ID,
	)
	return err
}

func (r *sqlRepository) DeleteRequest(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM lab_requests WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *sqlRepository) CountRequests(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM lab_requests`).Scan(&total)
	return total, err
}

func (r *sqlRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *sqlRepository) Close() error {
	return r.db.Close()
}

func scanRequest(scan func(dest ...any) error) (*domain.LabRequest, error) {
	var req domain.LabRequest
	var description sql.NullString
	var status string

	err := scan(
		&req.ID,
		&req.Title,
		&description,
		&req.StudentName,
		&req.Deadline,
		&status,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		req.Description = &description.String
	}
	req.Status = domain.Status(status)

	return &req, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
