// Package seed loads the demo marketplace: three vendors, their categories
// and a small menu for each.
package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/kitchen-api/internal/domain"
	"github.com/phrazzld/kitchen-api/internal/platform/logger"
	"github.com/phrazzld/kitchen-api/internal/service/auth"
	"github.com/phrazzld/kitchen-api/internal/store"
)

// ErrPasswordCount is returned when the number of vendor passwords does not
// match the number of seeded vendors.
var ErrPasswordCount = errors.New("seed: one password per vendor is required")

// VendorChecker reports whether any vendor exists.
type VendorChecker interface {
	VendorsExist(ctx context.Context) (bool, error)
}

// Result summarizes a seeding run.
type Result struct {
	Skipped    bool
	Vendors    int
	Categories int
	MenuItems  int
}

type vendorSeed struct {
	name, address, phone, email string
}

type itemSeed struct {
	name, description string
	price             float64
	image             string
	vendor, category  int
}

var vendorSeeds = []vendorSeed{
	{"Delight Kitchens", "12 Okeafa Road, Isolo", "08132030908", "delight@gmail.com"},
	{"Pizza Place", "42 Sijuawade Street, Ijesha", "08198755412", "pizza@gmail.com"},
	{"Burger Bros", "7 Bun Ave", "08122334455", "burger@gmail.com"},
}

// categorySeeds[i] is created by vendorSeeds[i].
var categorySeeds = []string{"Main Dishes", "Fast Food", "Desserts"}

var itemSeeds = []itemSeed{
	{"Jollof Rice", "Spicy rice dish with vegetables and spices", 1500,
		"https://placehold.co/600x400/orange/white?text=Jollof+Rice", 0, 0},
	{"Fried Rice", "Delicious rice with mixed vegetables and protein", 1700,
		"https://placehold.co/600x400/yellow/black?text=Fried+Rice", 0, 0},
	{"Chocolate Cake", "Rich chocolate cake with frosting", 2500,
		"https://placehold.co/600x400/brown/white?text=Chocolate+Cake", 0, 2},
	{"Pepperoni Pizza", "Classic pizza with pepperoni toppings", 3500,
		"https://placehold.co/600x400/red/white?text=Pepperoni+Pizza", 1, 1},
	{"Vegetable Pizza", "Healthy pizza loaded with fresh vegetables", 3200,
		"https://placehold.co/600x400/green/white?text=Vegetable+Pizza", 1, 1},
	{"Cheesecake", "Creamy cheesecake with berry topping", 2800,
		"https://placehold.co/600x400/beige/black?text=Cheesecake", 1, 2},
	{"Classic Burger", "Beef patty with lettuce, tomato, and special sauce", 2000,
		"https://placehold.co/600x400/brown/white?text=Classic+Burger", 2, 1},
	{"Chicken Burger", "Grilled chicken with fresh toppings", 1800,
		"https://placehold.co/600x400/tan/black?text=Chicken+Burger", 2, 1},
	{"Ice Cream Sundae", "Vanilla ice cream with chocolate sauce and nuts", 1200,
		"https://placehold.co/600x400/white/black?text=Ice+Cream+Sundae", 2, 2},
}

// Seeder writes the demo data set.
type Seeder struct {
	checker    VendorChecker
	vendors    store.VendorStore
	categories store.CategoryStore
	menuItems  store.MenuItemStore
	hasher     auth.PasswordHasher
	db         *sql.DB
	logger     *slog.Logger
}

// NewSeeder creates a Seeder.
func NewSeeder(
	checker VendorChecker,
	vendors store.VendorStore,
	categories store.CategoryStore,
	menuItems store.MenuItemStore,
	hasher auth.PasswordHasher,
	db *sql.DB,
	log *slog.Logger,
) *Seeder {
	if log == nil {
		log = slog.Default()
	}
	return &Seeder{
		checker:    checker,
		vendors:    vendors,
		categories: categories,
		menuItems:  menuItems,
		hasher:     hasher,
		db:         db,
		logger:     log.With(slog.String("component", "seeder")),
	}
}

// Seed writes every vendor, category and menu item in one transaction.
// passwords[i] becomes the password of the i-th vendor. Nothing is written
// when any vendor already exists.
func (s *Seeder) Seed(ctx context.Context, passwords []string) (Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	exists, err := s.checker.VendorsExist(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("seed: %w", err)
	}
	if exists {
		log.Info("vendors already present, skipping seed")
		return Result{Skipped: true}, nil
	}
	if len(passwords) != len(vendorSeeds) {
		return Result{}, fmt.Errorf("%w: got %d, want %d", ErrPasswordCount, len(passwords), len(vendorSeeds))
	}

	hashes := make([]string, len(passwords))
	for i, pw := range passwords {
		if hashes[i], err = s.hasher.Hash(pw); err != nil {
			return Result{}, fmt.Errorf("seed: hash password for %s: %w", vendorSeeds[i].email, err)
		}
	}

	var res Result
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		vendors := s.vendors.WithTx(tx)
		categories := s.categories.WithTx(tx)
		menuItems := s.menuItems.WithTx(tx)

		vendorIDs := make([]uuid.UUID, len(vendorSeeds))
		for i, vs := range vendorSeeds {
			v, err := domain.NewVendor(vs.name, vs.email, vs.address, vs.phone, hashes[i])
			if err != nil {
				return err
			}
			if err := vendors.Create(ctx, v); err != nil {
				return fmt.Errorf("create vendor %s: %w", vs.name, err)
			}
			vendorIDs[i] = v.ID
			res.Vendors++
		}

		categoryIDs := make([]uuid.UUID, len(categorySeeds))
		for i, name := range categorySeeds {
			c, err := domain.NewCategory(name, &vendorIDs[i])
			if err != nil {
				return err
			}
			if err := categories.Create(ctx, c); err != nil {
				return fmt.Errorf("create category %s: %w", name, err)
			}
			categoryIDs[i] = c.ID
			res.Categories++
		}

		for _, is := range itemSeeds {
			description, image := is.description, is.image
			item, err := domain.NewMenuItem(vendorIDs[is.vendor], is.name, &description, is.price, &image,
				&categoryIDs[is.category])
			if err != nil {
				return err
			}
			if err := menuItems.Create(ctx, item); err != nil {
				return fmt.Errorf("create menu item %s: %w", is.name, err)
			}
			res.MenuItems++
		}
		return nil
	})
	if err != nil {
		log.Error("seed failed", slog.String("error", err.Error()))
		return Result{}, fmt.Errorf("seed: %w", err)
	}

	log.Info("seed complete",
		slog.Int("vendors", res.Vendors),
		slog.Int("categories", res.Categories),
		slog.Int("menu_items", res.MenuItems))
	return res, nil
}
