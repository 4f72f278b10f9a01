package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"stayeasy/internal/domain"
	"stayeasy/internal/pkg/validator"
	"stayeasy/internal/repository"
)

type Service struct {
	hotels *repository.HotelRepository
	rooms  *repository.RoomRepository
}

func NewService(hotels *repository.HotelRepository, rooms *repository.RoomRepository) *Service {
	return &Service{hotels: hotels, rooms: rooms}
}

// ListHotels returns every hotel with its rooms attached.
func (s *Service) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	hotels, err := s.hotels.List(ctx)
	if err != nil {
		return nil, err
	}

	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, err
	}

	byHotel := make(map[int64][]domain.Room, len(hotels))
	for _, r := range rooms {
		byHotel[r.HotelID] = append(byHotel[r.HotelID], r)
	}
	for i := range hotels {
		hotels[i].Rooms = byHotel[hotels[i].ID]
	}
	return hotels, nil
}

func (s *Service) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	hotel, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	rooms, err := s.rooms.ListByHotel(ctx, id)
	if err != nil {
		return nil, err
	}
	hotel.Rooms = rooms
	return hotel, nil
}

func (s *Service) CreateHotel(ctx context.Context, req CreateHotelRequest) (*domain.Hotel, error) {
	hotel := &domain.Hotel{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Rating:      req.Rating,
		Amenities:   req.Amenities,
		Image:       req.Image,
		Images:      req.Images,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
	}
	if fields := validator.Validate(hotel); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}
	if err := s.hotels.Create(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

func (s *Service) UpdateHotel(ctx context.Context, id int64, req UpdateHotelRequest) (*domain.Hotel, error) {
	hotel, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		hotel.Name = *req.Name
	}
	if req.Description != nil {
		hotel.Description = *req.Description
	}
	if req.Location != nil {
		hotel.Location = *req.Location
	}
	if req.Rating != nil {
		hotel.Rating = *req.Rating
	}
	if req.Amenities != nil {
		hotel.Amenities = *req.Amenities
	}
	if req.Image != nil {
		hotel.Image = *req.Image
	}
	if req.Images != nil {
		hotel.Images = *req.Images
	}
	if req.Phone != nil {
		hotel.Phone = *req.Phone
	}
	if req.Email != nil {
		hotel.Email = *req.Email
	}
	if req.Address != nil {
		hotel.Address = *req.Address
	}

	if fields := validator.Validate(hotel); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}
	if err := s.hotels.Update(ctx, hotel); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return hotel, nil
}

func (s *Service) DeleteHotel(ctx context.Context, id int64) error {
	if err := s.hotels.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHotelNotFound
		}
		return err
	}
	return nil
}

// ListRooms returns rooms, optionally narrowed to one hotel.
func (s *Service) ListRooms(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	if hotelID > 0 {
		return s.rooms.ListByHotel(ctx, hotelID)
	}
	return s.rooms.List(ctx)
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	if _, err := s.hotels.GetByID(ctx, req.HotelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	// New rooms are bookable unless the request says otherwise.
	available := true
	if req.Availability != nil {
		available = *req.Availability
	}

	room := &domain.Room{
		HotelID:       req.HotelID,
		RoomType:      req.RoomType,
		PricePerNight: req.PricePerNight,
		Availability:  available,
		Capacity:      req.Capacity,
		Amenities:     req.Amenities,
		Image:         req.Image,
	}
	if fields := validator.Validate(room); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if req.RoomType != nil {
		room.RoomType = *req.RoomType
	}
	if req.PricePerNight != nil {
		room.PricePerNight = *req.PricePerNight
	}
	if req.Availability != nil {
		room.Availability = *req.Availability
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.Amenities != nil {
		room.Amenities = *req.Amenities
	}
	if req.Image != nil {
		room.Image = *req.Image
	}

	if fields := validator.Validate(room); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}
	if err := s.rooms.Update(ctx, room); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	if err := s.rooms.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoomNotFound
		}
		return err
	}
	return nil
}
