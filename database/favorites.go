package database

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bidserver/onbid"
)

// ErrFavoriteNotFound сохраненный тендер не найден
var ErrFavoriteNotFound = errors.New("сохраненный тендер не найден")

// ErrFavoriteExists тендер уже сохранен этим пользователем
var ErrFavoriteExists = errors.New("тендер уже сохранен")

// Favorite сохраненный пользователем тендер
type Favorite struct {
	ID        int64        `json:"id"`
	Tender    onbid.Tender `json:"tender"`
	CreatedAt time.Time    `json:"createdAt"`
}

// AddFavorite сохраняет снимок тендера для пользователя.
// Повторное сохранение того же номера управления объектом дает ErrFavoriteExists.
func (db *DB) AddFavorite(userID int64, t onbid.Tender) (int64, error) {
	res, err := db.conn.Exec(
		`INSERT INTO favorites
			(user_id, tender_id, auction_no, history_no, management_no, title, organization, bid_no, announced_at, deadline_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		userID, t.TenderID, t.AuctionNo, t.HistoryNo, t.ManagementNo,
		t.Title, t.Organization, t.BidNo, t.AnnouncedAt, t.DeadlineAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrFavoriteExists
		}
		return 0, fmt.Errorf("сохранение тендера: %w", err)
	}
	return res.LastInsertId()
}

// ListFavorites возвращает сохраненные тендеры пользователя, новые первыми
func (db *DB) ListFavorites(userID int64) ([]Favorite, error) {
	rows, err := db.conn.Query(
		`SELECT id, tender_id, auction_no, history_no, management_no, title, organization, bid_no, announced_at, deadline_at, created_at
		FROM favorites WHERE user_id = ? ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("чтение сохраненных тендеров: %w", err)
	}
	defer rows.Close()

	favorites := []Favorite{}
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(
			&f.ID, &f.Tender.TenderID, &f.Tender.AuctionNo, &f.Tender.HistoryNo,
			&f.Tender.ManagementNo, &f.Tender.Title, &f.Tender.Organization,
			&f.Tender.BidNo, &f.Tender.AnnouncedAt, &f.Tender.DeadlineAt, &f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("чтение строки: %w", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("обход строк: %w", err)
	}

	return favorites, nil
}

// DeleteFavorite удаляет сохраненный тендер пользователя
func (db *DB) DeleteFavorite(userID, favoriteID int64) error {
	res, err := db.conn.Exec(
		`DELETE FROM favorites WHERE id = ? AND user_id = ?`,
		favoriteID, userID,
	)
	if err != nil {
		return fmt.Errorf("удаление сохраненного тендера: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
