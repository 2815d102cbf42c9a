package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/profile-catalog/internal/domain/catalog"
	"github.com/BruksfildServices01/profile-catalog/internal/models"
	"github.com/BruksfildServices01/profile-catalog/internal/timezone"
)

// minPriceExpr is a profile's derived minimum price, NULL for profiles
// without price tiers.
const minPriceExpr = "(SELECT MIN(prices.current_cost) FROM prices WHERE prices.profile_id = profiles.id)"

const hasServiceExpr = "EXISTS (SELECT 1 FROM profile_services WHERE profile_services.profile_id = profiles.id AND profile_services.service_id = ?)"

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&CatalogGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Profile (listing)
// --------------------------------------------------

// FindProfiles applies every filter and the sort inside one query, then
// pages. Price bounds and price ordering are evaluated before OFFSET/LIMIT,
// so a page is short only at the end of the result. The returned total
// counts every match, ignoring the page.
func (r *CatalogGormRepository) FindProfiles(
	ctx context.Context,
	q domain.ProfileQuery,
) ([]models.Profile, int64, error) {

	q = q.Normalize()
	f := q.Filter

	db := r.db.WithContext(ctx).Model(&models.Profile{})

	if f.AgeMin != nil {
		db = db.Where("profiles.birth_date <= ?", domain.LatestBirthDateForAge(*f.AgeMin, q.Today))
	}
	if f.AgeMax != nil {
		db = db.Where("profiles.birth_date >= ?", domain.OldestBirthDateForAge(*f.AgeMax, q.Today))
	}

	if f.HeightMin != nil {
		db = db.Where("profiles.height >= ?", *f.HeightMin)
	}
	if f.HeightMax != nil {
		db = db.Where("profiles.height <= ?", *f.HeightMax)
	}

	if f.WeightMin != nil {
		db = db.Where("profiles.weight >= ?", *f.WeightMin)
	}
	if f.WeightMax != nil {
		db = db.Where("profiles.weight <= ?", *f.WeightMax)
	}

	if f.BreastMin != nil {
		db = db.Where("profiles.breast_size >= ?", *f.BreastMin)
	}
	if f.BreastMax != nil {
		db = db.Where("profiles.breast_size <= ?", *f.BreastMax)
	}

	if f.HasPriceBounds() {
		expr, args := priceTierInRange(f.PriceMin, f.PriceMax)
		db = db.Where(expr, args...)
	}

	if f.City != nil {
		db = db.Where("profiles.city = ?", string(*f.City))
	}

	// every requested service must be linked
	for _, serviceID := range f.UniqueServiceIDs() {
		db = db.Where(hasServiceExpr, serviceID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count profiles: %w", err)
	}

	for _, o := range profileOrder(q.Sort) {
		db = db.Order(o)
	}

	var profiles []models.Profile
	if err := db.
		Preload("Photos", orderedPhotos).
		Preload("Prices", orderedPrices).
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&profiles).Error; err != nil {
		return nil, 0, fmt.Errorf("find profiles: %w", err)
	}

	return profiles, total, nil
}

// profileOrder always ends with profiles.id so equal keys page stably.
func profileOrder(s domain.SortBy) []string {
	var primary []string

	switch s {
	case domain.SortAgeUp:
		primary = []string{"profiles.birth_date DESC"}
	case domain.SortAgeDown:
		primary = []string{"profiles.birth_date ASC"}
	case domain.SortWeightUp:
		primary = []string{"profiles.weight ASC"}
	case domain.SortWeightDown:
		primary = []string{"profiles.weight DESC"}
	case domain.SortBustUp:
		primary = []string{"profiles.breast_size ASC"}
	case domain.SortBustDown:
		primary = []string{"profiles.breast_size DESC"}
	case domain.SortPriceUp:
		primary = []string{minPriceExpr + " IS NULL", minPriceExpr + " ASC"}
	case domain.SortPriceDown:
		primary = []string{minPriceExpr + " IS NULL", minPriceExpr + " DESC"}
	}

	return append(primary, "profiles.id ASC")
}

// priceTierInRange matches profiles with at least one tier whose current
// cost lies within the bounds. Profiles without tiers never match.
func priceTierInRange(lo, hi *int) (string, []any) {
	expr := "EXISTS (SELECT 1 FROM prices WHERE prices.profile_id = profiles.id"
	var args []any
	if lo != nil {
		expr += " AND prices.current_cost >= ?"
		args = append(args, *lo)
	}
	if hi != nil {
		expr += " AND prices.current_cost <= ?"
		args = append(args, *hi)
	}
	return expr + ")", args
}

func orderedPhotos(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, id ASC")
}

func orderedPrices(db *gorm.DB) *gorm.DB {
	return db.Order("hours ASC, id ASC")
}

// --------------------------------------------------
// Profile (CRUD)
// --------------------------------------------------

func (r *CatalogGormRepository) GetProfile(
	ctx context.Context,
	id uint,
) (*models.Profile, error) {

	var p models.Profile
	if err := r.db.WithContext(ctx).
		Preload("Photos", orderedPhotos).
		Preload("Prices", orderedPrices).
		Preload("Services.Service").
		First(&p, id).Error; err != nil {
		return nil, notFound(err, domain.ErrProfileNotFound)
	}

	sort.SliceStable(p.Services, func(i, j int) bool {
		a, b := p.Services[i], p.Services[j]
		if a.Service.Order != b.Service.Order {
			return a.Service.Order < b.Service.Order
		}
		return a.ServiceID < b.ServiceID
	})

	return &p, nil
}

// CreateProfile stores only the profile row; photos, prices and services
// are attached through their own calls.
func (r *CatalogGormRepository) CreateProfile(
	ctx context.Context,
	p *models.Profile,
) error {
	p.BirthDate = timezone.DateOf(p.BirthDate)
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

// UpdateProfile overwrites every column of the stored profile with p.
func (r *CatalogGormRepository) UpdateProfile(
	ctx context.Context,
	id uint,
	p *models.Profile,
) (*models.Profile, error) {

	var existing models.Profile
	if err := r.db.WithContext(ctx).First(&existing, id).Error; err != nil {
		return nil, notFound(err, domain.ErrProfileNotFound)
	}

	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.BirthDate = timezone.DateOf(p.BirthDate)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(p).Error; err != nil {
		return nil, err
	}

	return r.GetProfile(ctx, id)
}

// DeleteProfile removes the profile with its photos, prices and service
// links in one transaction.
func (r *CatalogGormRepository) DeleteProfile(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Profile{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrProfileNotFound
		}

		if err := tx.Where("profile_id = ?", id).Delete(&models.Photo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("profile_id = ?", id).Delete(&models.Price{}).Error; err != nil {
			return err
		}
		return tx.Where("profile_id = ?", id).Delete(&models.ProfileService{}).Error
	})
}

func (r *CatalogGormRepository) HasProfiles(ctx context.Context) (bool, error) {
	return r.exists(ctx, &models.Profile{})
}

// --------------------------------------------------
// Photo / Price
// --------------------------------------------------

func (r *CatalogGormRepository) CreatePhoto(
	ctx context.Context,
	ph *models.Photo,
) error {
	if err := r.assertProfile(ctx, ph.ProfileID); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(ph).Error
}

func (r *CatalogGormRepository) DeletePhoto(
	ctx context.Context,
	id uint,
) (*models.Photo, error) {

	var ph models.Photo
	if err := r.db.WithContext(ctx).First(&ph, id).Error; err != nil {
		return nil, notFound(err, domain.ErrPhotoNotFound)
	}

	if err := r.db.WithContext(ctx).Delete(&ph).Error; err != nil {
		return nil, err
	}
	return &ph, nil
}

func (r *CatalogGormRepository) CreatePrice(
	ctx context.Context,
	pr *models.Price,
) error {
	if err := r.assertProfile(ctx, pr.ProfileID); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(pr).Error
}

func (r *CatalogGormRepository) UpdatePrice(
	ctx context.Context,
	id uint,
	pr *models.Price,
) (*models.Price, error) {

	var existing models.Price
	if err := r.db.WithContext(ctx).First(&existing, id).Error; err != nil {
		return nil, notFound(err, domain.ErrPriceNotFound)
	}

	existing.Hours = pr.Hours
	existing.CurrentCost = pr.CurrentCost
	existing.OldCost = pr.OldCost

	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *CatalogGormRepository) DeletePrice(
	ctx context.Context,
	id uint,
) error {
	res := r.db.WithContext(ctx).Delete(&models.Price{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrPriceNotFound
	}
	return nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *CatalogGormRepository) ListServices(
	ctx context.Context,
	offset int,
	limit int,
) ([]models.Service, int64, error) {

	db := r.db.WithContext(ctx).Model(&models.Service{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count services: %w", err)
	}

	var services []models.Service
	if err := db.
		Order("position ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&services).Error; err != nil {
		return nil, 0, fmt.Errorf("list services: %w", err)
	}
	return services, total, nil
}

func (r *CatalogGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, notFound(err, domain.ErrServiceNotFound)
	}
	return &s, nil
}

func (r *CatalogGormRepository) CreateService(
	ctx context.Context,
	s *models.Service,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *CatalogGormRepository) UpdateService(
	ctx context.Context,
	id uint,
	s *models.Service,
) (*models.Service, error) {

	var existing models.Service
	if err := r.db.WithContext(ctx).First(&existing, id).Error; err != nil {
		return nil, notFound(err, domain.ErrServiceNotFound)
	}

	s.ID = existing.ID
	s.CreatedAt = existing.CreatedAt

	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// DeleteService also drops the service from every profile offering it.
func (r *CatalogGormRepository) DeleteService(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Service{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrServiceNotFound
		}
		return tx.Where("service_id = ?", id).Delete(&models.ProfileService{}).Error
	})
}

func (r *CatalogGormRepository) HasServices(ctx context.Context) (bool, error) {
	return r.exists(ctx, &models.Service{})
}

// --------------------------------------------------
// Profile <-> Service
// --------------------------------------------------

// UpsertProfileService keeps one row per (profile, service): linking an
// already linked pair replaces its additional cost.
func (r *CatalogGormRepository) UpsertProfileService(
	ctx context.Context,
	ps *models.ProfileService,
) error {

	if err := r.assertProfile(ctx, ps.ProfileID); err != nil {
		return err
	}
	if _, err := r.GetService(ctx, ps.ServiceID); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile_id"}, {Name: "service_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"additional_cost"}),
		}).
		Create(ps).Error
}

func (r *CatalogGormRepository) DeleteProfileService(
	ctx context.Context,
	profileID uint,
	serviceID uint,
) error {
	res := r.db.WithContext(ctx).
		Where("profile_id = ? AND service_id = ?", profileID, serviceID).
		Delete(&models.ProfileService{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAssociationNotFound
	}
	return nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func (r *CatalogGormRepository) assertProfile(ctx context.Context, id uint) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *CatalogGormRepository) exists(ctx context.Context, model any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(model).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// Compile-time check
var _ domain.Repository = (*CatalogGormRepository)(nil)
