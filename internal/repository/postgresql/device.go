package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/campus-mis/attendance-backend-go/internal/domain/device"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type deviceRepositoryImpl struct {
	db *database.DB
}

// Create implements device.DeviceRepository. The unique constraint on
// ip resolves concurrent inserts atomically.
func (r *deviceRepositoryImpl) Create(ctx context.Context, dev device.Device) (device.Device, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO devices (id, name, ip, port, location, maintenance, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, false, NOW(), NOW())
		RETURNING id, name, ip, port, location, maintenance
	`

	var created device.Device
	err := q.QueryRow(ctx, insertQuery,
		dev.Name,
		dev.IP,
		dev.Port,
		dev.Location,
	).Scan(
		&created.ID,
		&created.Name,
		&created.IP,
		&created.Port,
		&created.Location,
		&created.Maintenance,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return device.Device{}, device.ErrDeviceIPExists
		}
		return device.Device{}, err
	}

	return created, nil
}

// GetByID implements device.DeviceRepository.
func (r *deviceRepositoryImpl) GetByID(ctx context.Context, id string) (device.Device, error) {
	q := GetQuerier(ctx, r.db)

	var dev device.Device
	err := q.QueryRow(ctx, `
		SELECT id, name, ip, port, location, maintenance
		FROM devices
		WHERE id = $1
	`, id).Scan(
		&dev.ID,
		&dev.Name,
		&dev.IP,
		&dev.Port,
		&dev.Location,
		&dev.Maintenance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return device.Device{}, device.ErrDeviceNotFound
		}
		return device.Device{}, err
	}

	return dev, nil
}

// List implements device.DeviceRepository.
func (r *deviceRepositoryImpl) List(ctx context.Context) ([]device.Device, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, ip, port, location, maintenance
		FROM devices
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var devices []device.Device
	for rows.Next() {
		var dev device.Device
		if err := rows.Scan(
			&dev.ID,
			&dev.Name,
			&dev.IP,
			&dev.Port,
			&dev.Location,
			&dev.Maintenance,
		); err != nil {
			return nil, err
		}
		devices = append(devices, dev)
	}

	return devices, rows.Err()
}

// Update implements device.DeviceRepository.
func (r *deviceRepositoryImpl) Update(ctx context.Context, req device.UpdateDeviceRequest) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argPos := 2

	addClause := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.Name != nil {
		addClause("name", *req.Name)
	}
	if req.IP != nil {
		addClause("ip", *req.IP)
	}
	if req.Port != nil {
		addClause("port", *req.Port)
	}
	if req.Location != nil {
		addClause("location", *req.Location)
	}

	query := fmt.Sprintf(`UPDATE devices SET %s WHERE id = $1`, strings.Join(setClauses, ", "))

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return device.ErrDeviceIPExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return device.ErrDeviceNotFound
	}

	return nil
}

// Delete implements device.DeviceRepository.
func (r *deviceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM devices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return device.ErrDeviceNotFound
	}

	return nil
}

// ToggleMaintenance implements device.DeviceRepository. The flip and
// read happen in one statement.
func (r *deviceRepositoryImpl) ToggleMaintenance(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var maintenance bool
	err := q.QueryRow(ctx, `
		UPDATE devices
		SET maintenance = NOT maintenance, updated_at = NOW()
		WHERE id = $1
		RETURNING maintenance
	`, id).Scan(&maintenance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, device.ErrDeviceNotFound
		}
		return false, err
	}

	return maintenance, nil
}

func NewDeviceRepository(db *database.DB) device.DeviceRepository {
	return &deviceRepositoryImpl{db: db}
}
