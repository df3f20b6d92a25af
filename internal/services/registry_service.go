package services

import (
	"context"
	"strings"

	"github.com/k12345663/Shop-Mauli/internal/apperrors"
	"github.com/k12345663/Shop-Mauli/internal/models"
	"github.com/k12345663/Shop-Mauli/internal/repositories"
)

// RegistryService covers the admin CRUD over renters, shops, complexes and
// assignments. Renter deletion cascades assignments and payments in the
// store.
type RegistryService struct {
	Renters     *repositories.RenterRepository
	Shops       *repositories.ShopRepository
	Complexes   *repositories.ComplexRepository
	Assignments *repositories.RenterShopRepository
}

func NewRegistryService(
	renters *repositories.RenterRepository,
	shops *repositories.ShopRepository,
	complexes *repositories.ComplexRepository,
	assignments *repositories.RenterShopRepository,
) *RegistryService {
	return &RegistryService{Renters: renters, Shops: shops, Complexes: complexes, Assignments: assignments}
}

func (s *RegistryService) CreateRenter(ctx context.Context, req models.CreateRenterRequest) (*models.Renter, error) {
	code := strings.TrimSpace(req.RenterCode)
	name := strings.TrimSpace(req.Name)
	if code == "" || name == "" {
		return nil, apperrors.Validation("renter code and name are required")
	}

	renter := &models.Renter{RenterCode: code, Name: name, Phone: req.Phone}
	if err := s.Renters.Create(ctx, renter); err != nil {
		return nil, err
	}
	return renter, nil
}

func (s *RegistryService) ListRenters(ctx context.Context) ([]*models.Renter, error) {
	return s.Renters.List(ctx)
}

func (s *RegistryService) UpdateRenter(ctx context.Context, renter *models.Renter) error {
	if strings.TrimSpace(renter.RenterCode) == "" || strings.TrimSpace(renter.Name) == "" {
		return apperrors.Validation("renter code and name are required")
	}
	return s.Renters.Update(ctx, renter)
}

func (s *RegistryService) DeleteRenter(ctx context.Context, id int) error {
	return s.Renters.Delete(ctx, id)
}

func (s *RegistryService) CreateShop(ctx context.Context, req models.CreateShopRequest) (*models.Shop, error) {
	if strings.TrimSpace(req.ShopNo) == "" {
		return nil, apperrors.Validation("shop number is required")
	}
	if req.RentAmount < 0 {
		return nil, apperrors.Validation("rent amount cannot be negative")
	}

	shop := &models.Shop{
		ShopNo:            strings.TrimSpace(req.ShopNo),
		ComplexID:         req.ComplexID,
		Category:          req.Category,
		RentAmount:        req.RentAmount,
		RentCollectionDay: req.RentCollectionDay,
		IsActive:          true,
	}
	if shop.Category == "" {
		shop.Category = "Numeric"
	}
	if shop.RentCollectionDay <= 0 {
		shop.RentCollectionDay = 1
	}
	if req.IsActive != nil {
		shop.IsActive = *req.IsActive
	}

	if err := s.Shops.Create(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

func (s *RegistryService) ListShops(ctx context.Context, activeOnly bool) ([]*models.Shop, error) {
	return s.Shops.List(ctx, activeOnly)
}

func (s *RegistryService) UpdateShop(ctx context.Context, shop *models.Shop) error {
	if strings.TrimSpace(shop.ShopNo) == "" {
		return apperrors.Validation("shop number is required")
	}
	if shop.RentAmount < 0 {
		return apperrors.Validation("rent amount cannot be negative")
	}
	return s.Shops.Update(ctx, shop)
}

func (s *RegistryService) DeleteShop(ctx context.Context, id int) error {
	return s.Shops.Delete(ctx, id)
}

func (s *RegistryService) CreateComplex(ctx context.Context, name string) (*models.Complex, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.Validation("complex name is required")
	}
	c := &models.Complex{Name: strings.TrimSpace(name)}
	if err := s.Complexes.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *RegistryService) ListComplexes(ctx context.Context) ([]*models.Complex, error) {
	return s.Complexes.List(ctx)
}

func (s *RegistryService) DeleteComplex(ctx context.Context, id int) error {
	return s.Complexes.Delete(ctx, id)
}

func (s *RegistryService) AssignShop(ctx context.Context, req models.CreateAssignmentRequest) (*models.RenterShop, error) {
	if req.RenterID <= 0 || req.ShopID <= 0 {
		return nil, apperrors.Validation("renter and shop are required")
	}
	if req.ExpectedDeposit < 0 {
		return nil, apperrors.Validation("expected deposit cannot be negative")
	}

	rs := &models.RenterShop{
		RenterID:        req.RenterID,
		ShopID:          req.ShopID,
		ExpectedDeposit: req.ExpectedDeposit,
	}
	if err := s.Assignments.Create(ctx, rs); err != nil {
		return nil, err
	}
	return rs, nil
}

func (s *RegistryService) ListAssignments(ctx context.Context) ([]models.AssignmentView, error) {
	return s.Assignments.ListViews(ctx)
}

func (s *RegistryService) UnassignShop(ctx context.Context, id int) error {
	return s.Assignments.Delete(ctx, id)
}
