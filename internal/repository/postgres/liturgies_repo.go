package postgres

import (
	"context"

	"github.com/baharkarakas/church-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type liturgiesRepo struct{ pool *pgxpool.Pool }

const liturgyCols = `id, igreja_id, titulo, data, created_at`

func scanLiturgy(row rowScanner) (models.Liturgy, error) {
	var l models.Liturgy
	err := row.Scan(&l.ID, &l.ChurchID, &l.Title, &l.Date, &l.CreatedAt)
	return l, mapErr(err)
}

func (r *liturgiesRepo) Create(ctx context.Context, l models.Liturgy) (models.Liturgy, error) {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return scanLiturgy(r.pool.QueryRow(ctx,
		`INSERT INTO liturgias(id, igreja_id, titulo, data) VALUES($1,$2,$3,$4) RETURNING `+liturgyCols,
		l.ID, l.ChurchID, l.Title, l.Date))
}

func (r *liturgiesRepo) GetByID(ctx context.Context, churchID, id string) (models.Liturgy, error) {
	return scanLiturgy(r.pool.QueryRow(ctx,
		`SELECT `+liturgyCols+` FROM liturgias WHERE id=$1 AND igreja_id=$2`, id, churchID))
}

func (r *liturgiesRepo) List(ctx context.Context, churchID string, limit, offset int) ([]models.Liturgy, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+liturgyCols+` FROM liturgias WHERE igreja_id=$1 ORDER BY data DESC LIMIT $2 OFFSET $3`,
		churchID, limit, offset)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []models.Liturgy{}
	for rows.Next() {
		l, err := scanLiturgy(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

const itemCols = `id, liturgia_id, ordem, tipo, referencia_id, titulo, duracao_min, observacoes`

func scanItem(row rowScanner) (models.LiturgyItem, error) {
	var it models.LiturgyItem
	err := row.Scan(&it.ID, &it.LiturgyID, &it.Position, &it.Type, &it.ReferenceID, &it.Title, &it.Minutes, &it.Notes)
	return it, mapErr(err)
}

// AddItem appends the item after the last one when Position is zero.
func (r *liturgiesRepo) AddItem(ctx context.Context, it models.LiturgyItem) (models.LiturgyItem, error) {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	return scanItem(r.pool.QueryRow(ctx,
		`INSERT INTO liturgia_itens(id, liturgia_id, ordem, tipo, referencia_id, titulo, duracao_min, observacoes)
		 VALUES($1, $2,
		        CASE WHEN $3::int > 0 THEN $3::int
		             ELSE (SELECT coalesce(max(ordem), 0) + 1 FROM liturgia_itens WHERE liturgia_id=$2) END,
		        $4, $5, $6, $7, $8)
		 RETURNING `+itemCols,
		it.ID, it.LiturgyID, it.Position, string(it.Type), it.ReferenceID, it.Title, it.Minutes, it.Notes,
	))
}

func (r *liturgiesRepo) Items(ctx context.Context, liturgyID string) ([]models.LiturgyItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+itemCols+` FROM liturgia_itens WHERE liturgia_id=$1 ORDER BY ordem, id`, liturgyID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []models.LiturgyItem{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

const songCols = `id, igreja_id, titulo, artista, tom, bpm, link_cifra, link_video`

func scanSong(row rowScanner) (models.Song, error) {
	var s models.Song
	err := row.Scan(&s.ID, &s.ChurchID, &s.Title, &s.Artist, &s.Key, &s.BPM, &s.ChordURL, &s.VideoURL)
	return s, mapErr(err)
}

func (r *liturgiesRepo) CreateSong(ctx context.Context, s models.Song) (models.Song, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return scanSong(r.pool.QueryRow(ctx,
		`INSERT INTO musicas(id, igreja_id, titulo, artista, tom, bpm, link_cifra, link_video)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8)
		 RETURNING `+songCols,
		s.ID, s.ChurchID, s.Title, s.Artist, s.Key, s.BPM, s.ChordURL, s.VideoURL))
}

func (r *liturgiesRepo) GetSong(ctx context.Context, churchID, id string) (models.Song, error) {
	return scanSong(r.pool.QueryRow(ctx,
		`SELECT `+songCols+` FROM musicas WHERE id=$1 AND igreja_id=$2`, id, churchID))
}

func (r *liturgiesRepo) ListSongs(ctx context.Context, churchID string) ([]models.Song, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+songCols+` FROM musicas WHERE igreja_id=$1 ORDER BY titulo`, churchID)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []models.Song{}
	for rows.Next() {
		s, err := scanSong(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

const announcementCols = `id, igreja_id, titulo, conteudo, created_at`

func scanAnnouncement(row rowScanner) (models.Announcement, error) {
	var a models.Announcement
	err := row.Scan(&a.ID, &a.ChurchID, &a.Title, &a.Content, &a.CreatedAt)
	return a, mapErr(err)
}

func (r *liturgiesRepo) CreateAnnouncement(ctx context.Context, a models.Announcement) (models.Announcement, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return scanAnnouncement(r.pool.QueryRow(ctx,
		`INSERT INTO avisos(id, igreja_id, titulo, conteudo) VALUES($1,$2,$3,$4) RETURNING `+announcementCols,
		a.ID, a.ChurchID, a.Title, a.Content))
}

func (r *liturgiesRepo) GetAnnouncement(ctx context.Context, churchID, id string) (models.Announcement, error) {
	return scanAnnouncement(r.pool.QueryRow(ctx,
		`SELECT `+announcementCols+` FROM avisos WHERE id=$1 AND igreja_id=$2`, id, churchID))
}

func (r *liturgiesRepo) ListAnnouncements(ctx context.Context, churchID string, limit int) ([]models.Announcement, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+announcementCols+` FROM avisos WHERE igreja_id=$1 ORDER BY created_at DESC LIMIT $2`, churchID, limit)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	out := []models.Announcement{}
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
