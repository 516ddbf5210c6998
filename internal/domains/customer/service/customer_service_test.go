package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-backoffice/internal/domains/customer/model"
)

// fakeCustomerRepo is an in-memory RepositoryInterface. Create can be
// forced to fail with a conflict to simulate unique-index races.
type fakeCustomerRepo struct {
	customers map[int64]*model.Customer
	nextID    int64

	createErrs []error // popped per Create call
	updateErr  error

	// emailMisses makes the first N FindByEmail calls miss, so a competing
	// insert can "appear" between pre-check and refetch.
	emailMisses int
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[int64]*model.Customer{}, nextID: 1}
}

func (f *fakeCustomerRepo) add(c *model.Customer) *model.Customer {
	c.ID = f.nextID
	f.nextID++
	f.customers[c.ID] = c
	return c
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	f.add(c)
	return nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, c *model.Customer) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.customers[c.ID]; !ok {
		return model.ErrCustomerNotFound
	}
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, model.ErrCustomerNotFound
	}
	return c, nil
}

func (f *fakeCustomerRepo) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	if f.emailMisses > 0 {
		f.emailMisses--
		return nil, nil
	}
	for _, c := range f.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) FindByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	for _, c := range f.customers {
		if c.PhoneNumber != nil && *c.PhoneNumber == phone {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) List(ctx context.Context, filter *model.CustomerFilter) ([]model.Customer, int, error) {
	return nil, 0, nil
}
func (f *fakeCustomerRepo) ListActive(ctx context.Context) ([]model.Customer, error) { return nil, nil }
func (f *fakeCustomerRepo) Search(ctx context.Context, keyword string) ([]model.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) ListByCity(ctx context.Context, city string) ([]model.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) ListByCountry(ctx context.Context, country string) ([]model.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) SoftDelete(ctx context.Context, id int64) error { return nil }
func (f *fakeCustomerRepo) ToggleStatus(ctx context.Context, id int64) (*model.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) PermanentDelete(ctx context.Context, id int64) error { return nil }

func strPtr(s string) *string { return &s }

func validRequest() *model.CreateCustomerRequest {
	return &model.CreateCustomerRequest{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "Ada@Example.COM",
		PhoneNumber: strPtr("+3312345678"),
		Address:     "12 Rue des Livres",
		City:        "Paris",
		PostalCode:  "75001",
		Country:     "France",
	}
}

func TestCreateOrGetReturnsEmailMatchUntouched(t *testing.T) {
	repo := newFakeCustomerRepo()
	existing := repo.add(&model.Customer{
		FirstName: "Old",
		LastName:  "Name",
		Email:     "ada@example.com",
		IsActive:  true,
	})

	svc := NewCustomerService(repo)
	got, err := svc.CreateOrGet(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
	// an email match never overwrites the stored details
	assert.Equal(t, "Old", got.FirstName)
	assert.Len(t, repo.customers, 1)
}

func TestCreateOrGetEmailLookupIsCaseInsensitive(t *testing.T) {
	repo := newFakeCustomerRepo()
	existing := repo.add(&model.Customer{Email: "ada@example.com", IsActive: true})

	svc := NewCustomerService(repo)
	req := validRequest()
	req.Email = "  ADA@EXAMPLE.COM  "

	got, err := svc.CreateOrGet(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
}

func TestCreateOrGetPhoneMatchOverwritesDetails(t *testing.T) {
	repo := newFakeCustomerRepo()
	existing := repo.add(&model.Customer{
		FirstName:   "Stale",
		Email:       "old@example.com",
		PhoneNumber: strPtr("+3312345678"),
		IsActive:    true,
	})

	svc := NewCustomerService(repo)
	got, err := svc.CreateOrGet(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, existing.ID, got.ID)
	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Len(t, repo.customers, 1)
}

func TestCreateOrGetCreatesWhenNobodyMatches(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	got, err := svc.CreateOrGet(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotZero(t, got.ID)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.True(t, got.IsActive)
}

func TestCreateOrGetRefetchesAfterInsertRace(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	// First Create hits the unique index; by the time we refetch, the
	// competing row is visible.
	winner := repo.add(&model.Customer{Email: "ada@example.com", IsActive: true})
	repo.emailMisses = 1
	repo.createErrs = []error{model.ErrEmailTaken}

	req := validRequest()
	req.PhoneNumber = nil

	got, err := svc.CreateOrGet(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, winner.ID, got.ID)
}

func TestCreateOrGetFallsBackToPermissiveCreate(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	// Invalid email fails the validated create but must not lose the order.
	req := validRequest()
	req.Email = "not-an-email"
	req.PhoneNumber = nil

	got, err := svc.CreateOrGet(context.Background(), req)
	require.NoError(t, err)
	assert.NotZero(t, got.ID)
	assert.Equal(t, "not-an-email", got.Email)
}

func TestCreateOrGetFailsWhenEveryStrategyFails(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	req := validRequest()
	req.Email = "broken"
	req.PhoneNumber = nil
	repo.createErrs = []error{model.ErrEmailTaken}

	_, err := svc.CreateOrGet(context.Background(), req)
	assert.ErrorIs(t, err, model.ErrCustomerResolution)
}

func TestCreateCustomerNormalizesEmail(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	got, err := svc.CreateCustomer(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", got.Email)
}

func TestCreateCustomerRejectsInvalidEmail(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := NewCustomerService(repo)

	req := validRequest()
	req.Email = "nope"

	_, err := svc.CreateCustomer(context.Background(), req)
	assert.Error(t, err)
	assert.Empty(t, repo.customers)
}
