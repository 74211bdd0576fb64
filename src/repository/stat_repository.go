package repository

import (
	"database/sql"

	"gitlab.com/open-soft/go-volume-bot/src/model"
)

// StatRepository persists completed hour buckets and placed-order
// records. Optional: the engine runs without it when no DATABASE_DSN
// is configured.
type StatRepository struct {
	DB *sql.DB
}

func (s *StatRepository) EnsureSchema() error {
	_, err := s.DB.Exec(`
		CREATE TABLE IF NOT EXISTS volume_hourly_stats (
			id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
			symbol VARCHAR(32) NOT NULL,
			hour BIGINT NOT NULL,
			volume DOUBLE NOT NULL,
			trades BIGINT NOT NULL,
			behind TINYINT(1) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	_, err = s.DB.Exec(`
		CREATE TABLE IF NOT EXISTS volume_orders (
			id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
			order_id BIGINT NOT NULL,
			symbol VARCHAR(32) NOT NULL,
			side VARCHAR(8) NOT NULL,
			price DOUBLE NOT NULL,
			quantity DOUBLE NOT NULL,
			placed_at BIGINT NOT NULL
		)
	`)

	return err
}

func (s *StatRepository) WriteHourlyStat(symbol string, stat model.HourlyStat) error {
	_, err := s.DB.Exec(`
		INSERT INTO volume_hourly_stats (
			symbol,
			hour,
			volume,
			trades,
			behind
		) VALUES (?, ?, ?, ?, ?)
	`,
		symbol,
		stat.Hour,
		stat.Volume,
		stat.Trades,
		stat.Behind,
	)

	return err
}

func (s *StatRepository) WriteOrderRecord(record model.OrderRecord) error {
	_, err := s.DB.Exec(`
		INSERT INTO volume_orders (
			order_id,
			symbol,
			side,
			price,
			quantity,
			placed_at
		) VALUES (?, ?, ?, ?, ?, ?)
	`,
		record.OrderId,
		record.Symbol,
		record.Side,
		record.Price,
		record.Quantity,
		record.PlacedAt,
	)

	return err
}
