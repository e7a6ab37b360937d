package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/sgde-edu/sgde-api/internal/dto"
	"github.com/sgde-edu/sgde-api/internal/repository"
	"github.com/sgde-edu/sgde-api/internal/store"
)

func newSchoolFixture(t *testing.T) SchoolService {
	t.Helper()
	validate := validator.New(validator.WithRequiredStructEnabled())
	return NewSchoolService(repository.NewSchoolRepository(store.New()), validate, zerolog.Nop())
}

func TestSchoolSaveAndGet(t *testing.T) {
	svc := newSchoolFixture(t)

	saved, err := svc.Save(context.Background(), dto.SchoolSaveRequest{
		Manager:   "Maria Gestora",
		Name:      "Escola Municipal Central",
		LegalName: "Escola Municipal Central LTDA",
		CNPJ:      "12.345.678/0001-99",
		Address:   "Rua das Flores, 100",
		Region:    "Centro",
		INEPCode:  12345678,
	})
	require.NoError(t, err)
	require.Equal(t, "Escola Municipal Central", saved.Name)
	require.Equal(t, "12.345.678/0001-99", saved.CNPJ)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, saved, got)
}

func TestSchoolSaveOverwritesWholesale(t *testing.T) {
	svc := newSchoolFixture(t)

	_, err := svc.Save(context.Background(), dto.SchoolSaveRequest{Name: "Escola A", Region: "Norte"})
	require.NoError(t, err)

	_, err = svc.Save(context.Background(), dto.SchoolSaveRequest{Name: "Escola B"})
	require.NoError(t, err)

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Escola B", got.Name)
	require.Empty(t, got.Region)
}

func TestSchoolSaveRejectsInvalidCNPJ(t *testing.T) {
	svc := newSchoolFixture(t)

	_, err := svc.Save(context.Background(), dto.SchoolSaveRequest{Name: "Escola", CNPJ: "123"})
	require.ErrorIs(t, err, ErrSchoolInvalidCNPJ)

	_, err = svc.Get(context.Background())
	require.ErrorIs(t, err, ErrSchoolNotRegistered)
}

func TestSchoolSaveAllowsAbsentCNPJ(t *testing.T) {
	svc := newSchoolFixture(t)

	_, err := svc.Save(context.Background(), dto.SchoolSaveRequest{Name: "Escola Sem CNPJ"})
	require.NoError(t, err)
}

func TestSchoolSaveRequiresName(t *testing.T) {
	svc := newSchoolFixture(t)

	_, err := svc.Save(context.Background(), dto.SchoolSaveRequest{CNPJ: "12345678000199"})

	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
}

func TestSchoolSaveStripsMarkup(t *testing.T) {
	svc := newSchoolFixture(t)

	saved, err := svc.Save(context.Background(), dto.SchoolSaveRequest{
		Name:    "<b>Escola</b> Municipal",
		Address: "Rua <i>Principal</i>, 1",
	})
	require.NoError(t, err)
	require.Equal(t, "Escola Municipal", saved.Name)
	require.Equal(t, "Rua Principal, 1", saved.Address)
}

func TestSchoolGetBeforeSave(t *testing.T) {
	svc := newSchoolFixture(t)

	_, err := svc.Get(context.Background())
	require.ErrorIs(t, err, ErrSchoolNotRegistered)
}
