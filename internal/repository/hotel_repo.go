package repository

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"stayeasy/internal/domain"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

type hotelModel struct {
	ID          int64          `gorm:"column:id;primaryKey"`
	Name        string         `gorm:"column:name;size:200;not null"`
	Description string         `gorm:"column:description;type:text"`
	Location    string         `gorm:"column:location;size:200;not null"`
	Rating      float64        `gorm:"column:rating;default:0"`
	Amenities   datatypes.JSON `gorm:"column:amenities"`
	Image       *string        `gorm:"column:image;size:500"`
	Images      datatypes.JSON `gorm:"column:images"`
	Phone       *string        `gorm:"column:phone;size:20"`
	Email       *string        `gorm:"column:email;size:254"`
	Address     *string        `gorm:"column:address;type:text"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
}

func (hotelModel) TableName() string { return "hotels" }

// stringList round-trips []string through a datatypes.JSON column.
func toJSONList(ss []string) datatypes.JSON {
	if ss == nil {
		ss = []string{}
	}
	b, _ := json.Marshal(ss)
	return datatypes.JSON(b)
}

func fromJSONList(j datatypes.JSON) []string {
	if len(j) == 0 {
		return nil
	}
	var ss []string
	if err := json.Unmarshal(j, &ss); err != nil {
		return nil
	}
	return ss
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toDomainHotel(m hotelModel) *domain.Hotel {
	return &domain.Hotel{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Location:    m.Location,
		Rating:      m.Rating,
		Amenities:   fromJSONList(m.Amenities),
		Image:       strOrEmpty(m.Image),
		Images:      fromJSONList(m.Images),
		Phone:       strOrEmpty(m.Phone),
		Email:       strOrEmpty(m.Email),
		Address:     strOrEmpty(m.Address),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toHotelModel(h *domain.Hotel) hotelModel {
	return hotelModel{
		ID:          h.ID,
		Name:        h.Name,
		Description: h.Description,
		Location:    h.Location,
		Rating:      h.Rating,
		Amenities:   toJSONList(h.Amenities),
		Image:       strOrNil(h.Image),
		Images:      toJSONList(h.Images),
		Phone:       strOrNil(h.Phone),
		Email:       strOrNil(h.Email),
		Address:     strOrNil(h.Address),
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	m := toHotelModel(h)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*h = *toDomainHotel(m)
	return nil
}

func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var m hotelModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainHotel(m), nil
}

func (r *HotelRepository) List(ctx context.Context) ([]domain.Hotel, error) {
	var ms []hotelModel
	tx := r.db.WithContext(ctx).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Hotel, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainHotel(m))
	}
	return out, nil
}

func (r *HotelRepository) Update(ctx context.Context, h *domain.Hotel) error {
	m := toHotelModel(h)
	tx := r.db.WithContext(ctx).Model(&hotelModel{}).Where("id = ?", h.ID).Updates(map[string]any{
		"name":        m.Name,
		"description": m.Description,
		"location":    m.Location,
		"rating":      m.Rating,
		"amenities":   m.Amenities,
		"image":       m.Image,
		"images":      m.Images,
		"phone":       m.Phone,
		"email":       m.Email,
		"address":     m.Address,
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the hotel and its rooms in one transaction.
func (r *HotelRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m hotelModel
		if err := tx.First(&m, id).Error; err != nil {
			return err
		}
		if err := tx.Where("hotel_id = ?", id).Delete(&roomModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&hotelModel{}, id).Error
	})
}
