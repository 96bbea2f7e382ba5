package stubapi

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hanstar/webfront/internal/models"
)

// ErrNotFound — запрошенной записи нет.
var ErrNotFound = errors.New("not found")

// Store — SQLite-хранилище обращений и материалов.
type Store struct {
	db *sql.DB
}

// OpenStore открывает базу и создаёт схему, если её ещё нет.
func OpenStore(path string) (*Store, error) {
	const op = "stubapi.OpenStore"

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS inquiries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			serial TEXT NOT NULL,
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			email TEXT NOT NULL,
			message TEXT NOT NULL,
			password TEXT NOT NULL,
			answer TEXT,
			answer_date TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS materials (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			file_name TEXT NOT NULL,
			file_path TEXT NOT NULL,
			file_size TEXT,
			file_type TEXT,
			category TEXT NOT NULL,
			download_count INTEGER DEFAULT 0,
			is_active BOOLEAN DEFAULT 1,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, q := range schema {
		if _, err := db.Exec(q); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// inquiryRow — строка таблицы обращений целиком (вместе с паролем).
type inquiryRow struct {
	ID         int64
	Date       string
	Serial     string
	Name       string
	Phone      string
	Email      string
	Message    string
	Password   string
	Answer     string
	AnswerDate string
}

// SaveInquiry сохраняет обращение, выдавая ему двухзначный дневной
// серийный номер (первый за день — "01").
func (s *Store) SaveInquiry(name, phone, email, message, password string) (string, error) {
	const op = "stubapi.SaveInquiry"

	date := time.Now().Format("2006-01-02")

	var last sql.NullInt64
	err := s.db.QueryRow(
		`SELECT MAX(CAST(serial AS INTEGER)) FROM inquiries WHERE date = ?`, date,
	).Scan(&last)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	next := int64(1)
	if last.Valid {
		next = last.Int64 + 1
	}
	serial := fmt.Sprintf("%02d", next)

	_, err = s.db.Exec(
		`INSERT INTO inquiries (date, serial, name, phone, email, message, password)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		date, serial, name, phone, email, message, password,
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return serial, nil
}

// CountInquiries — общее число обращений.
func (s *Store) CountInquiries() (int, error) {
	const op = "stubapi.CountInquiries"

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM inquiries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

// ListInquiries — страница обращений в порядке «новые сверху».
func (s *Store) ListInquiries(limit, offset int) ([]inquiryRow, error) {
	const op = "stubapi.ListInquiries"

	rows, err := s.db.Query(
		`SELECT id, date, serial, name, phone, email, message, password,
		        COALESCE(answer, ''), COALESCE(answer_date, '')
		 FROM inquiries
		 ORDER BY date DESC, serial DESC
		 LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []inquiryRow
	for rows.Next() {
		var r inquiryRow
		if err := rows.Scan(&r.ID, &r.Date, &r.Serial, &r.Name, &r.Phone,
			&r.Email, &r.Message, &r.Password, &r.Answer, &r.AnswerDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// GetInquiry — обращение по идентификатору.
func (s *Store) GetInquiry(id int64) (inquiryRow, error) {
	const op = "stubapi.GetInquiry"

	var r inquiryRow
	err := s.db.QueryRow(
		`SELECT id, date, serial, name, phone, email, message, password,
		        COALESCE(answer, ''), COALESCE(answer_date, '')
		 FROM inquiries WHERE id = ?`, id,
	).Scan(&r.ID, &r.Date, &r.Serial, &r.Name, &r.Phone,
		&r.Email, &r.Message, &r.Password, &r.Answer, &r.AnswerDate)
	if errors.Is(err, sql.ErrNoRows) {
		return inquiryRow{}, ErrNotFound
	}
	if err != nil {
		return inquiryRow{}, fmt.Errorf("%s: %w", op, err)
	}

	return r, nil
}

// AddAnswer записывает (или заменяет) ответ на обращение.
func (s *Store) AddAnswer(id int64, answer string) (string, error) {
	const op = "stubapi.AddAnswer"

	answerDate := time.Now().Format("2006-01-02 15:04:05")
	res, err := s.db.Exec(
		`UPDATE inquiries SET answer = ?, answer_date = ? WHERE id = ?`,
		answer, answerDate, id)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return "", ErrNotFound
	}

	return answerDate, nil
}

// ListMaterials — материалы в порядке «новые сверху».
// При activeOnly отдаются только активные; category фильтрует
// по точному совпадению (пустая — без фильтра).
func (s *Store) ListMaterials(category string, activeOnly bool) ([]models.Material, error) {
	const op = "stubapi.ListMaterials"

	q := `SELECT id, title, COALESCE(description, ''), file_name,
	             COALESCE(file_size, ''), COALESCE(file_type, ''), category,
	             download_count, is_active, created_at
	      FROM materials`
	var args []any
	switch {
	case activeOnly && category != "":
		q += ` WHERE category = ? AND is_active = 1`
		args = append(args, category)
	case activeOnly:
		q += ` WHERE is_active = 1`
	case category != "":
		q += ` WHERE category = ?`
		args = append(args, category)
	}
	q += ` ORDER BY created_at DESC`

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := []models.Material{}
	for rows.Next() {
		var m models.Material
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &m.FileName,
			&m.FileSize, &m.FileType, &m.Category,
			&m.DownloadCount, &m.IsActive, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// CreateMaterial регистрирует материал с уже сохранённым файлом.
func (s *Store) CreateMaterial(title, description, category, fileName, filePath, fileSize, fileType string) error {
	const op = "stubapi.CreateMaterial"

	_, err := s.db.Exec(
		`INSERT INTO materials (title, description, file_name, file_path, file_size, file_type, category)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		title, description, fileName, filePath, fileSize, fileType, category)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// UpdateMaterialMeta правит метаданные материала.
func (s *Store) UpdateMaterialMeta(id int64, title, description, category string) error {
	const op = "stubapi.UpdateMaterialMeta"

	res, err := s.db.Exec(
		`UPDATE materials
		 SET title = ?, description = ?, category = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		title, description, category, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return affectedOrNotFound(res)
}

// SetMaterialActive переключает публичную видимость материала,
// не трогая метаданные.
func (s *Store) SetMaterialActive(id int64, active bool) error {
	const op = "stubapi.SetMaterialActive"

	res, err := s.db.Exec(
		`UPDATE materials SET is_active = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		active, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return affectedOrNotFound(res)
}

// DeleteMaterial удаляет материал безвозвратно.
func (s *Store) DeleteMaterial(id int64) error {
	const op = "stubapi.DeleteMaterial"

	res, err := s.db.Exec(`DELETE FROM materials WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return affectedOrNotFound(res)
}

// MaterialFile — имя и путь файла активного материала.
func (s *Store) MaterialFile(id int64) (fileName, filePath string, err error) {
	const op = "stubapi.MaterialFile"

	e := s.db.QueryRow(
		`SELECT file_name, file_path FROM materials WHERE id = ? AND is_active = 1`, id,
	).Scan(&fileName, &filePath)
	if errors.Is(e, sql.ErrNoRows) {
		return "", "", ErrNotFound
	}
	if e != nil {
		return "", "", fmt.Errorf("%s: %w", op, e)
	}

	return fileName, filePath, nil
}

// IncrementDownload увеличивает счётчик скачиваний.
func (s *Store) IncrementDownload(id int64) error {
	const op = "stubapi.IncrementDownload"

	if _, err := s.db.Exec(
		`UPDATE materials SET download_count = download_count + 1 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func affectedOrNotFound(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}
