package repository

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"stayeasy/internal/domain"
	"stayeasy/internal/pkg/money"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID            int64          `gorm:"column:id;primaryKey"`
	HotelID       int64          `gorm:"column:hotel_id;index;not null"`
	RoomType      string         `gorm:"column:room_type;size:100;not null"`
	PricePerNight money.Amount   `gorm:"column:price_per_night;type:decimal(10,2);not null"`
	Availability  bool           `gorm:"column:availability;default:true"`
	Capacity      int            `gorm:"column:capacity;default:2"`
	Amenities     datatypes.JSON `gorm:"column:amenities"`
	Image         *string        `gorm:"column:image;size:500"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:            m.ID,
		HotelID:       m.HotelID,
		RoomType:      m.RoomType,
		PricePerNight: m.PricePerNight,
		Availability:  m.Availability,
		Capacity:      m.Capacity,
		Amenities:     fromJSONList(m.Amenities),
		Image:         strOrEmpty(m.Image),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toRoomModel(rm *domain.Room) roomModel {
	return roomModel{
		ID:            rm.ID,
		HotelID:       rm.HotelID,
		RoomType:      rm.RoomType,
		PricePerNight: rm.PricePerNight,
		Availability:  rm.Availability,
		Capacity:      rm.Capacity,
		Amenities:     toJSONList(rm.Amenities),
		Image:         strOrNil(rm.Image),
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, rm *domain.Room) error {
	m := toRoomModel(rm)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rm = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	var ms []roomModel
	tx := r.db.WithContext(ctx).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Room, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	var ms []roomModel
	tx := r.db.WithContext(ctx).Where("hotel_id = ?", hotelID).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Room, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *domain.Room) error {
	m := toRoomModel(rm)
	tx := r.db.WithContext(ctx).Model(&roomModel{}).Where("id = ?", rm.ID).Updates(map[string]any{
		"hotel_id":        m.HotelID,
		"room_type":       m.RoomType,
		"price_per_night": m.PricePerNight,
		"availability":    m.Availability,
		"capacity":        m.Capacity,
		"amenities":       m.Amenities,
		"image":           m.Image,
	})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&roomModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
