package service

import (
	"context"
	"strings"

	"github.com/medilink/backend/internal/model"
)

type MedicineStore interface {
	ListMedicines(ctx context.Context, params model.MedicineListParams) ([]model.Medicine, int64, error)
	MedicineByID(ctx context.Context, id int64) (*model.Medicine, error)
	CreateMedicine(ctx context.Context, req model.MedicineRequest) (*model.Medicine, error)
	UpdateMedicine(ctx context.Context, id int64, req model.MedicineRequest) (*model.Medicine, error)
	DeleteMedicine(ctx context.Context, id int64) error
}

type MedicineService struct {
	store MedicineStore
}

func NewMedicineService(store MedicineStore) *MedicineService {
	return &MedicineService{store: store}
}

func (s *MedicineService) List(ctx context.Context, params model.MedicineListParams) (*model.ListResponse[model.Medicine], error) {
	params.ListParams = params.ListParams.Normalize()
	params.Search = strings.TrimSpace(params.Search)
	params.Category = strings.TrimSpace(params.Category)
	medicines, total, err := s.store.ListMedicines(ctx, params)
	if err != nil {
		return nil, storeError("service.ListMedicines", err)
	}
	return newListResponse(medicines, params.ListParams, total), nil
}

func (s *MedicineService) Get(ctx context.Context, id int64) (*model.Medicine, error) {
	m, err := s.store.MedicineByID(ctx, id)
	if err != nil {
		return nil, storeError("service.GetMedicine", err)
	}
	return m, nil
}

func (s *MedicineService) Create(ctx context.Context, req model.MedicineRequest) (*model.Medicine, error) {
	req = normalizeMedicine(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	m, err := s.store.CreateMedicine(ctx, req)
	if err != nil {
		return nil, storeError("service.CreateMedicine", err)
	}
	return m, nil
}

func (s *MedicineService) Update(ctx context.Context, id int64, req model.MedicineRequest) (*model.Medicine, error) {
	req = normalizeMedicine(req)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	m, err := s.store.UpdateMedicine(ctx, id, req)
	if err != nil {
		return nil, storeError("service.UpdateMedicine", err)
	}
	return m, nil
}

func (s *MedicineService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteMedicine(ctx, id); err != nil {
		return storeError("service.DeleteMedicine", err)
	}
	return nil
}

func normalizeMedicine(req model.MedicineRequest) model.MedicineRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.GenericName = strings.TrimSpace(req.GenericName)
	req.Category = strings.TrimSpace(req.Category)
	req.Manufacturer = strings.TrimSpace(req.Manufacturer)
	req.Description = strings.TrimSpace(req.Description)
	req.Dosage = strings.TrimSpace(req.Dosage)
	req.SideEffects = strings.TrimSpace(req.SideEffects)
	return req
}
