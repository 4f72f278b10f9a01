package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"stayeasy/internal/config"
	"stayeasy/internal/database"
	"stayeasy/internal/domain"
	"stayeasy/internal/pkg/money"
	"stayeasy/internal/repository"
)

type roomSeed struct {
	roomType  string
	price     string
	capacity  int
	amenities []string
	image     string
}

type hotelSeed struct {
	hotel domain.Hotel
	rooms []roomSeed
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data, children before parents.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM hotels")
	db.Exec("DELETE FROM refresh_tokens")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	hotels := repository.NewHotelRepository(db)
	rooms := repository.NewRoomRepository(db)

	log.Println("Creating demo user...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	demo := &domain.User{
		Username:     "demo",
		Email:        "demo@stayeasy.dev",
		PasswordHash: string(hash),
		FirstName:    "Demo",
		LastName:     "Guest",
	}
	if err := users.Create(ctx, demo); err != nil {
		log.Fatal("demo user failed:", err)
	}
	log.Println("Demo user created: demo / demo1234")

	for _, seed := range hotelSeeds() {
		h := seed.hotel
		if err := hotels.Create(ctx, &h); err != nil {
			log.Fatal("hotel failed:", err)
		}
		for _, rs := range seed.rooms {
			room := domain.Room{
				HotelID:       h.ID,
				RoomType:      rs.roomType,
				PricePerNight: money.MustParse(rs.price),
				Availability:  true,
				Capacity:      rs.capacity,
				Amenities:     rs.amenities,
				Image:         rs.image,
			}
			if err := rooms.Create(ctx, &room); err != nil {
				log.Fatal("room failed:", err)
			}
		}
		log.Printf("Created hotel: %s with %d rooms", h.Name, len(seed.rooms))
	}

	log.Println("Database populated successfully!")
}

func hotelSeeds() []hotelSeed {
	return []hotelSeed{
		{
			hotel: domain.Hotel{
				Name:        "Grand Palace Hotel",
				Description: "Luxury hotel in the heart of Manhattan with world-class amenities",
				Location:    "New York, NY",
				Rating:      4.8,
				Amenities:   []string{"WiFi", "Pool", "Spa", "Restaurant", "Gym", "Parking"},
				Image:       "https://images.pexels.com/photos/258154/pexels-photo-258154.jpeg?auto=compress&cs=tinysrgb&w=800",
				Images: []string{
					"https://images.pexels.com/photos/258154/pexels-photo-258154.jpeg?auto=compress&cs=tinysrgb&w=800",
					"https://images.pexels.com/photos/271618/pexels-photo-271618.jpeg?auto=compress&cs=tinysrgb&w=800",
					"https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg?auto=compress&cs=tinysrgb&w=800",
				},
				Phone:   "+1 (555) 123-4567",
				Email:   "reservations@grandpalace.com",
				Address: "123 Fifth Avenue, New York, NY 10001",
			},
			rooms: []roomSeed{
				{"Standard Room", "199.00", 2, []string{"WiFi", "TV", "Mini Bar", "Coffee Maker"}, "https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg?auto=compress&cs=tinysrgb&w=400"},
				{"Deluxe Room", "299.00", 3, []string{"WiFi", "TV", "Mini Bar", "Coffee Maker", "Balcony"}, "https://images.pexels.com/photos/271618/pexels-photo-271618.jpeg?auto=compress&cs=tinysrgb&w=400"},
				{"Executive Suite", "499.00", 4, []string{"WiFi", "TV", "Mini Bar", "Coffee Maker", "Balcony", "Living Room"}, "https://images.pexels.com/photos/189296/pexels-photo-189296.jpeg?auto=compress&cs=tinysrgb&w=400"},
			},
		},
		{
			hotel: domain.Hotel{
				Name:        "Seaside Resort",
				Description: "Beautiful beachfront resort with stunning ocean views",
				Location:    "Miami, FL",
				Rating:      4.6,
				Amenities:   []string{"WiFi", "Pool", "Beach Access", "Restaurant", "Bar"},
				Image:       "https://images.pexels.com/photos/189296/pexels-photo-189296.jpeg?auto=compress&cs=tinysrgb&w=800",
				Images: []string{
					"https://images.pexels.com/photos/189296/pexels-photo-189296.jpeg?auto=compress&cs=tinysrgb&w=800",
					"https://images.pexels.com/photos/338504/pexels-photo-338504.jpeg?auto=compress&cs=tinysrgb&w=800",
					"https://images.pexels.com/photos/2506988/pexels-photo-2506988.jpeg?auto=compress&cs=tinysrgb&w=800",
				},
				Phone:   "+1 (555) 234-5678",
				Email:   "info@seasideresort.com",
				Address: "456 Ocean Drive, Miami, FL 33139",
			},
			rooms: []roomSeed{
				{"Ocean View Room", "189.00", 2, []string{"WiFi", "TV", "Ocean View", "Coffee Maker"}, "https://images.pexels.com/photos/338504/pexels-photo-338504.jpeg?auto=compress&cs=tinysrgb&w=400"},
				{"Beachfront Suite", "289.00", 4, []string{"WiFi", "TV", "Beach Access", "Kitchenette", "Balcony"}, "https://images.pexels.com/photos/2506988/pexels-photo-2506988.jpeg?auto=compress&cs=tinysrgb&w=400"},
				{"Penthouse", "589.00", 6, []string{"WiFi", "TV", "Private Pool", "Full Kitchen", "Roof Terrace"}, "https://images.pexels.com/photos/1579253/pexels-photo-1579253.jpeg?auto=compress&cs=tinysrgb&w=400"},
			},
		},
		{
			hotel: domain.Hotel{
				Name:        "Mountain Lodge",
				Description: "Cozy mountain retreat with breathtaking alpine views",
				Location:    "Aspen, CO",
				Rating:      4.7,
				Amenities:   []string{"WiFi", "Fireplace", "Restaurant", "Ski Access", "Spa"},
				Image:       "https://images.pexels.com/photos/338504/pexels-photo-338504.jpeg?auto=compress&cs=tinysrgb&w=800",
				Images: []string{
					"https://images.pexels.com/photos/338504/pexels-photo-338504.jpeg?auto=compress&cs=tinysrgb&w=800",
					"https://images.pexels.com/photos/189296/pexels-photo-189296.jpeg?auto=compress&cs=tinysrgb&w=800",
					"https://images.pexels.com/photos/258154/pexels-photo-258154.jpeg?auto=compress&cs=tinysrgb&w=800",
				},
				Phone:   "+1 (555) 345-6789",
				Email:   "stay@mountainlodge.com",
				Address: "789 Mountain Road, Aspen, CO 81611",
			},
			rooms: []roomSeed{
				{"Mountain View Room", "249.00", 2, []string{"WiFi", "TV", "Mountain View", "Fireplace"}, "https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg?auto=compress&cs=tinysrgb&w=400"},
				{"Deluxe Chalet", "349.00", 4, []string{"WiFi", "TV", "Fireplace", "Kitchen", "Balcony"}, "https://images.pexels.com/photos/271618/pexels-photo-271618.jpeg?auto=compress&cs=tinysrgb&w=400"},
				{"Premium Suite", "549.00", 6, []string{"WiFi", "TV", "Fireplace", "Full Kitchen", "Hot Tub", "Ski Storage"}, "https://images.pexels.com/photos/189296/pexels-photo-189296.jpeg?auto=compress&cs=tinysrgb&w=400"},
			},
		},
		{
			hotel: domain.Hotel{
				Name:        "City Center Hotel",
				Description: "Modern hotel in downtown with easy access to attractions",
				Location:    "San Francisco, CA",
				Rating:      4.4,
				Amenities:   []string{"WiFi", "Restaurant", "Gym", "Business Center"},
				Image:       "https://images.pexels.com/photos/271618/pexels-photo-271618.jpeg?auto=compress&cs=tinysrgb&w=800",
				Images: []string{
					"https://images.pexels.com/photos/271618/pexels-photo-271618.jpeg?auto=compress&cs=tinysrgb&w=800",
					"https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg?auto=compress&cs=tinysrgb&w=800",
					"https://images.pexels.com/photos/258154/pexels-photo-258154.jpeg?auto=compress&cs=tinysrgb&w=800",
				},
				Phone:   "+1 (555) 456-7890",
				Email:   "reservations@citycenter.com",
				Address: "321 Market Street, San Francisco, CA 94105",
			},
			rooms: []roomSeed{
				{"Standard Room", "179.00", 2, []string{"WiFi", "TV", "Work Desk", "Coffee Maker"}, "https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg?auto=compress&cs=tinysrgb&w=400"},
				{"Business Room", "229.00", 2, []string{"WiFi", "TV", "Work Desk", "Coffee Maker", "Printer"}, "https://images.pexels.com/photos/271618/pexels-photo-271618.jpeg?auto=compress&cs=tinysrgb&w=400"},
				{"Executive Room", "329.00", 3, []string{"WiFi", "TV", "Work Desk", "Coffee Maker", "Mini Bar", "Lounge Access"}, "https://images.pexels.com/photos/189296/pexels-photo-189296.jpeg?auto=compress&cs=tinysrgb&w=400"},
			},
		},
		{
			hotel: domain.Hotel{
				Name:        "Garden Inn",
				Description: "Peaceful retreat surrounded by beautiful gardens",
				Location:    "Portland, OR",
				Rating:      4.5,
				Amenities:   []string{"WiFi", "Garden", "Restaurant", "Bicycle Rental", "Yoga Studio"},
				Image:       "https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg?auto=compress&cs=tinysrgb&w=800",
				Images: []string{
					"https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg?auto=compress&cs=tinysrgb&w=800",
					"https://images.pexels.com/photos/271618/pexels-photo-271618.jpeg?auto=compress&cs=tinysrgb&w=800",
					"https://images.pexels.com/photos/258154/pexels-photo-258154.jpeg?auto=compress&cs=tinysrgb&w=800",
				},
				Phone:   "+1 (555) 567-8901",
				Email:   "hello@gardeninn.com",
				Address: "654 Garden Lane, Portland, OR 97205",
			},
			rooms: []roomSeed{
				{"Garden View Room", "159.00", 2, []string{"WiFi", "TV", "Garden View", "Coffee Maker"}, "https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg?auto=compress&cs=tinysrgb&w=400"},
				{"Deluxe Garden Room", "219.00", 3, []string{"WiFi", "TV", "Garden View", "Coffee Maker", "Balcony"}, "https://images.pexels.com/photos/271618/pexels-photo-271618.jpeg?auto=compress&cs=tinysrgb&w=400"},
				{"Premium Suite", "349.00", 4, []string{"WiFi", "TV", "Private Garden", "Kitchenette", "Fireplace"}, "https://images.pexels.com/photos/189296/pexels-photo-189296.jpeg?auto=compress&cs=tinysrgb&w=400"},
			},
		},
		{
			hotel: domain.Hotel{
				Name:        "Desert Oasis",
				Description: "Luxury resort in the heart of the desert with stunning views",
				Location:    "Phoenix, AZ",
				Rating:      4.9,
				Amenities:   []string{"WiFi", "Pool", "Spa", "Restaurant", "Golf Course", "Tennis Courts"},
				Image:       "https://images.pexels.com/photos/2506988/pexels-photo-2506988.jpeg?auto=compress&cs=tinysrgb&w=800",
				Images: []string{
					"https://images.pexels.com/photos/2506988/pexels-photo-2506988.jpeg?auto=compress&cs=tinysrgb&w=800",
					"https://images.pexels.com/photos/338504/pexels-photo-338504.jpeg?auto=compress&cs=tinysrgb&w=800",
					"https://images.pexels.com/photos/189296/pexels-photo-189296.jpeg?auto=compress&cs=tinysrgb&w=800",
				},
				Phone:   "+1 (555) 678-9012",
				Email:   "reservations@desertoasis.com",
				Address: "987 Desert Road, Phoenix, AZ 85001",
			},
			rooms: []roomSeed{
				{"Desert View Room", "279.00", 2, []string{"WiFi", "TV", "Desert View", "Coffee Maker"}, "https://images.pexels.com/photos/338504/pexels-photo-338504.jpeg?auto=compress&cs=tinysrgb&w=400"},
				{"Luxury Suite", "429.00", 4, []string{"WiFi", "TV", "Private Pool", "Kitchen", "Balcony"}, "https://images.pexels.com/photos/2506988/pexels-photo-2506988.jpeg?auto=compress&cs=tinysrgb&w=400"},
				{"Presidential Suite", "799.00", 6, []string{"WiFi", "TV", "Private Pool", "Full Kitchen", "Butler Service", "Private Gym"}, "https://images.pexels.com/photos/1579253/pexels-photo-1579253.jpeg?auto=compress&cs=tinysrgb&w=400"},
			},
		},
	}
}
