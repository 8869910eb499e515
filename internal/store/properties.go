package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/johnwards/propcat/internal/domain"
)

// PropertyStore persists listings.
type PropertyStore interface {
	Upsert(ctx context.Context, p *domain.Property) error
	Get(ctx context.Context, id string) (*domain.Property, error)
	List(ctx context.Context) ([]*domain.Property, error)
	Count(ctx context.Context) (int, error)
	SaveViews(ctx context.Context, id string, views int) error
}

// SQLitePropertyStore implements PropertyStore backed by SQLite.
type SQLitePropertyStore struct {
	db *sql.DB
}

// NewSQLitePropertyStore creates a new SQLitePropertyStore.
func NewSQLitePropertyStore(db *sql.DB) *SQLitePropertyStore {
	return &SQLitePropertyStore{db: db}
}

const propertyColumns = `id, title, description, type, transaction_type, status,
	price, currency, price_per_sqft, bedrooms, bathrooms, area, area_unit, parking,
	service_charge, roi, rental_yield, appreciation,
	location, community, building, developer, project_name, agent,
	payment_plan, dld_number, rera_number,
	furnished, luxury, beachfront, waterfront, golf_course, balcony, maid_room, study_room, laundry_room,
	features, images, amenities,
	listed_date, last_updated, completion_date, handover_date,
	views, inquiries`

// Upsert inserts p, or replaces every field of an existing listing with the
// same id. New listings go to the end of catalog order; replaced ones keep
// their place.
func (s *SQLitePropertyStore) Upsert(ctx context.Context, p *domain.Property) error {
	features, err := encodeList(p.Features)
	if err != nil {
		return err
	}
	images, err := encodeList(p.Images)
	if err != nil {
		return err
	}
	amenities, err := encodeList(p.Amenities)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO properties (`+propertyColumns+`, position)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
		         ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, `+nextPosition("properties")+`)
		 ON CONFLICT(id) DO UPDATE SET
			title = excluded.title, description = excluded.description, type = excluded.type,
			transaction_type = excluded.transaction_type, status = excluded.status,
			price = excluded.price, currency = excluded.currency, price_per_sqft = excluded.price_per_sqft,
			bedrooms = excluded.bedrooms, bathrooms = excluded.bathrooms, area = excluded.area,
			area_unit = excluded.area_unit, parking = excluded.parking, service_charge = excluded.service_charge,
			roi = excluded.roi, rental_yield = excluded.rental_yield, appreciation = excluded.appreciation,
			location = excluded.location, community = excluded.community, building = excluded.building,
			developer = excluded.developer, project_name = excluded.project_name, agent = excluded.agent,
			payment_plan = excluded.payment_plan, dld_number = excluded.dld_number, rera_number = excluded.rera_number,
			furnished = excluded.furnished, luxury = excluded.luxury, beachfront = excluded.beachfront,
			waterfront = excluded.waterfront, golf_course = excluded.golf_course, balcony = excluded.balcony,
			maid_room = excluded.maid_room, study_room = excluded.study_room, laundry_room = excluded.laundry_room,
			features = excluded.features, images = excluded.images, amenities = excluded.amenities,
			listed_date = excluded.listed_date, last_updated = excluded.last_updated,
			completion_date = excluded.completion_date, handover_date = excluded.handover_date,
			views = excluded.views, inquiries = excluded.inquiries`,
		p.ID, p.Title, p.Description, string(p.Type), string(p.TransactionType), string(p.Status),
		p.Price, p.Currency, p.PricePerSqft, p.Bedrooms, p.Bathrooms, p.Area, p.AreaUnit, p.Parking,
		p.ServiceCharge, p.ROI, p.RentalYield, p.Appreciation,
		p.Location, p.Community, p.Building, p.Developer, p.ProjectName, p.Agent,
		p.PaymentPlan, p.DLDNumber, p.RERANumber,
		p.Furnished, p.Luxury, p.Beachfront, p.Waterfront, p.GolfCourse, p.Balcony, p.MaidRoom, p.StudyRoom, p.LaundryRoom,
		features, images, amenities,
		encodeTime(p.ListedDate), encodeTime(p.LastUpdated), p.CompletionDate, p.HandoverDate,
		p.Views, p.Inquiries,
	)
	if err != nil {
		return fmt.Errorf("upsert property %s: %w", p.ID, err)
	}
	return nil
}

// Get returns the listing with the given id.
func (s *SQLitePropertyStore) Get(ctx context.Context, id string) (*domain.Property, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = ?`, id)
	p, err := scanProperty(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("property %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns every listing in catalog order.
func (s *SQLitePropertyStore) List(ctx context.Context) ([]*domain.Property, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+propertyColumns+` FROM properties ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	return out, nil
}

// Count returns the number of stored listings.
func (s *SQLitePropertyStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM properties`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count properties: %w", err)
	}
	return n, nil
}

// SaveViews overwrites the stored view counter of a listing.
func (s *SQLitePropertyStore) SaveViews(ctx context.Context, id string, views int) error {
	res, err := s.db.ExecContext(ctx, `UPDATE properties SET views = ? WHERE id = ?`, views, id)
	if err != nil {
		return fmt.Errorf("save views for %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save views for %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("property %s: %w", id, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProperty(sc scanner) (*domain.Property, error) {
	var (
		p                           domain.Property
		typ, txType, status         string
		features, images, amenities string
		listed, updated             sql.NullString
	)
	err := sc.Scan(
		&p.ID, &p.Title, &p.Description, &typ, &txType, &status,
		&p.Price, &p.Currency, &p.PricePerSqft, &p.Bedrooms, &p.Bathrooms, &p.Area, &p.AreaUnit, &p.Parking,
		&p.ServiceCharge, &p.ROI, &p.RentalYield, &p.Appreciation,
		&p.Location, &p.Community, &p.Building, &p.Developer, &p.ProjectName, &p.Agent,
		&p.PaymentPlan, &p.DLDNumber, &p.RERANumber,
		&p.Furnished, &p.Luxury, &p.Beachfront, &p.Waterfront, &p.GolfCourse, &p.Balcony, &p.MaidRoom, &p.StudyRoom, &p.LaundryRoom,
		&features, &images, &amenities,
		&listed, &updated, &p.CompletionDate, &p.HandoverDate,
		&p.Views, &p.Inquiries,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan property: %w", err)
	}

	p.Type = domain.PropertyType(typ)
	p.TransactionType = domain.TransactionType(txType)
	p.Status = domain.Status(status)

	if p.Features, err = decodeList(features); err != nil {
		return nil, err
	}
	if p.Images, err = decodeList(images); err != nil {
		return nil, err
	}
	if p.Amenities, err = decodeList(amenities); err != nil {
		return nil, err
	}
	if p.ListedDate, err = decodeTime(listed); err != nil {
		return nil, err
	}
	if p.LastUpdated, err = decodeTime(updated); err != nil {
		return nil, err
	}

	return domain.NewProperty(p), nil
}
