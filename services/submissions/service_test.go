package submissions

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wetopinie/models"
)

type fakePendingRepo struct {
	clinics []models.PendingClinic
	edits   []models.PendingEdit
}

func (f *fakePendingRepo) ListClinics(ctx context.Context) ([]models.PendingClinic, error) {
	return f.clinics, nil
}
func (f *fakePendingRepo) ListEdits(ctx context.Context) ([]models.PendingEdit, error) {
	return f.edits, nil
}
func (f *fakePendingRepo) ListReviews(ctx context.Context) ([]models.PendingReview, error) {
	return nil, nil
}
func (f *fakePendingRepo) GetClinic(ctx context.Context, id string) (*models.PendingClinic, error) {
	return nil, errors.New("not found")
}
func (f *fakePendingRepo) GetEdit(ctx context.Context, id string) (*models.PendingEdit, error) {
	return nil, errors.New("not found")
}
func (f *fakePendingRepo) GetReview(ctx context.Context, id string) (*models.PendingReview, error) {
	return nil, errors.New("not found")
}
func (f *fakePendingRepo) CreateClinic(ctx context.Context, item *models.PendingClinic) error {
	f.clinics = append(f.clinics, *item)
	return nil
}
func (f *fakePendingRepo) CreateEdit(ctx context.Context, item *models.PendingEdit) error {
	f.edits = append(f.edits, *item)
	return nil
}
func (f *fakePendingRepo) CreateReview(ctx context.Context, item *models.PendingReview) error {
	return nil
}
func (f *fakePendingRepo) Delete(ctx context.Context, kind models.SubmissionKind, id string) error {
	return nil
}

type fakeClinicRepo struct {
	clinics map[string]models.Clinic
}

func (f *fakeClinicRepo) GetAll(ctx context.Context) ([]models.Clinic, error) {
	var out []models.Clinic
	for _, c := range f.clinics {
		out = append(out, c)
	}
	return out, nil
}
func (f *fakeClinicRepo) GetByID(ctx context.Context, id string) (*models.Clinic, error) {
	if c, ok := f.clinics[id]; ok {
		return &c, nil
	}
	return nil, errors.New("not found")
}
func (f *fakeClinicRepo) Create(ctx context.Context, clinic *models.Clinic) error  { return nil }
func (f *fakeClinicRepo) Merge(ctx context.Context, id string, fields map[string]any) error {
	return nil
}
func (f *fakeClinicRepo) Delete(ctx context.Context, id string) error { return nil }
func (f *fakeClinicRepo) SetReviewsCount(ctx context.Context, id string, count int) error {
	return nil
}

func TestSubmitClinic(t *testing.T) {
	pending := &fakePendingRepo{}
	svc := &DefaultSubmissionService{Pending: pending, Clinics: &fakeClinicRepo{}}

	saved, err := svc.SubmitClinic(context.Background(), models.PendingClinic{
		Clinic: models.Clinic{Name: "Ala-Wet", City: "Kraków"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.SubmittedAt.IsZero())
	require.Len(t, pending.clinics, 1)
}

func TestSubmitClinicValidation(t *testing.T) {
	svc := &DefaultSubmissionService{Pending: &fakePendingRepo{}, Clinics: &fakeClinicRepo{}}

	_, err := svc.SubmitClinic(context.Background(), models.PendingClinic{
		Clinic: models.Clinic{City: "Kraków"},
	})
	assert.Error(t, err, "name required")

	_, err = svc.SubmitClinic(context.Background(), models.PendingClinic{
		Clinic: models.Clinic{Name: "Ala-Wet"},
	})
	assert.Error(t, err, "city required")
}

func TestSubmitEditSnapshotsPriorValues(t *testing.T) {
	pending := &fakePendingRepo{}
	clinics := &fakeClinicRepo{clinics: map[string]models.Clinic{
		"c1": {ID: "c1", Name: "Ala-Wet", City: "Kraków", Phone: "601 234 567"},
	}}
	svc := &DefaultSubmissionService{Pending: pending, Clinics: clinics}

	saved, err := svc.SubmitEdit(context.Background(), models.PendingEdit{
		ClinicID: "c1",
		Fields:   map[string]any{"phone": "789 456 123", "city": "Wieliczka"},
	})
	require.NoError(t, err)

	assert.Equal(t, "601 234 567", saved.OldData["phone"])
	assert.Equal(t, "Kraków", saved.OldData["city"])
	assert.NotContains(t, saved.OldData, "name", "only proposed fields are snapshotted")
	require.Len(t, pending.edits, 1)
}

func TestSubmitEditDropsNonEditableFields(t *testing.T) {
	pending := &fakePendingRepo{}
	clinics := &fakeClinicRepo{clinics: map[string]models.Clinic{
		"c1": {ID: "c1", Name: "Ala-Wet", City: "Warszawa", ReviewsCount: 7},
	}}
	svc := &DefaultSubmissionService{Pending: pending, Clinics: clinics}

	saved, err := svc.SubmitEdit(context.Background(), models.PendingEdit{
		ClinicID: "c1",
		Fields: map[string]any{
			"id":           "hijacked",
			"reviewsCount": 999,
			"approvedAt":   "2020-01-01",
			"city":         "Kraków",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"city": "Kraków"}, saved.Fields)
	assert.Equal(t, map[string]any{"city": "Warszawa"}, saved.OldData)
}

func TestSubmitEditOnlyNonEditableFields(t *testing.T) {
	clinics := &fakeClinicRepo{clinics: map[string]models.Clinic{
		"c1": {ID: "c1", Name: "Ala-Wet"},
	}}
	svc := &DefaultSubmissionService{Pending: &fakePendingRepo{}, Clinics: clinics}

	_, err := svc.SubmitEdit(context.Background(), models.PendingEdit{
		ClinicID: "c1",
		Fields:   map[string]any{"id": "hijacked", "reviewsCount": 999},
	})
	assert.Error(t, err)
}

func TestSubmitEditValidation(t *testing.T) {
	svc := &DefaultSubmissionService{Pending: &fakePendingRepo{}, Clinics: &fakeClinicRepo{}}

	_, err := svc.SubmitEdit(context.Background(), models.PendingEdit{
		Fields: map[string]any{"city": "Kraków"},
	})
	assert.Error(t, err, "clinic id required")

	_, err = svc.SubmitEdit(context.Background(), models.PendingEdit{ClinicID: "c1"})
	assert.Error(t, err, "empty field set")

	_, err = svc.SubmitEdit(context.Background(), models.PendingEdit{
		ClinicID: "ghost",
		Fields:   map[string]any{"city": "Kraków"},
	})
	assert.Error(t, err, "unknown clinic")
}
